package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedType is a hard failure: the file extension has no parser.
var ErrUnsupportedType = errors.New("unsupported file type")

var extensions = map[string]func([]byte) (string, error){
	".pdf":  parsePDF,
	".docx": parseDocx,
	".txt":  parsePlain,
	".md":   parsePlain,
}

// SupportedExtensions lists the file extensions ExtractText accepts.
func SupportedExtensions() []string {
	return []string{".pdf", ".docx", ".txt", ".md"}
}

// Supported reports whether a filename has a parseable extension.
func Supported(filename string) bool {
	_, ok := extensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// ExtractText converts raw document bytes into plain text based on the file
// extension. An empty string with a nil error means the document parsed but
// contained no extractable text; callers treat that as a soft failure. A
// non-nil error means the document itself is broken or unsupported.
func ExtractText(filename string, content []byte) (string, error) {
	parse, ok := extensions[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Ext(filename))
	}
	text, err := parse(content)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func parsePlain(content []byte) (string, error) {
	return string(content), nil
}
