package main

import (
	"github.com/project-synapse/backend/internal/server"
	"github.com/project-synapse/backend/internal/util"
	"github.com/project-synapse/backend/pkg/logger"
	"github.com/project-synapse/backend/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
