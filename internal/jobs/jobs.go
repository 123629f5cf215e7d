package jobs

import (
	"fmt"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

type Status string

const (
	StatusParsing    Status = "parsing"
	StatusExtracting Status = "extracting"
	StatusDone       Status = "done"
	StatusError      Status = "error"
)

// Job tracks one asynchronous document ingestion.
type Job struct {
	ID                   string    `json:"id"`
	Status               Status    `json:"status"`
	Filename             string    `json:"filename"`
	TotalChunks          int       `json:"total_chunks,omitempty"`
	ChunksProcessed      int       `json:"chunks_processed,omitempty"`
	NodesCreated         int       `json:"nodes_created,omitempty"`
	RelationshipsCreated int       `json:"relationships_created,omitempty"`
	Detail               string    `json:"detail,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Tracker is an in-memory job registry. Jobs live for the process lifetime;
// a restart loses them, which is acceptable for a single-instance server.
type Tracker struct {
	mu   sync.RWMutex
	jobs map[string]Job
}

func NewTracker() *Tracker {
	return &Tracker{jobs: make(map[string]Job)}
}

// Create registers a new job in the parsing state and returns it.
func (t *Tracker) Create(filename string) (Job, error) {
	id, err := gonanoid.New()
	if err != nil {
		return Job{}, fmt.Errorf("generate job id: %w", err)
	}

	now := time.Now()
	job := Job{
		ID:        id,
		Status:    StatusParsing,
		Filename:  filename,
		CreatedAt: now,
		UpdatedAt: now,
	}

	t.mu.Lock()
	t.jobs[id] = job
	t.mu.Unlock()
	return job, nil
}

// Get looks a job up by id.
func (t *Tracker) Get(id string) (Job, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	job, ok := t.jobs[id]
	return job, ok
}

// Update applies fn to the stored job under the lock. Unknown ids are
// ignored.
func (t *Tracker) Update(id string, fn func(*Job)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	job, ok := t.jobs[id]
	if !ok {
		return
	}
	fn(&job)
	job.UpdatedAt = time.Now()
	t.jobs[id] = job
}
