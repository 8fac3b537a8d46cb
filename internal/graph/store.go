package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// NotFoundError reports that the sample graph document does not exist on disk.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("sample graph not found: %s", e.Path)
}

// Store reads the sample graph document from a fixed path.
//
// The document is re-read from disk on every Load so that edits to the file
// are visible on the next request without a restart. The store holds no
// mutable state and is safe for concurrent use.
type Store struct {
	path   string
	logger *zap.Logger
}

// NewStore creates a store for the sample graph document at path.
func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

// Path returns the document path the store reads from.
func (s *Store) Path() string {
	return s.path
}

// Load reads the sample graph document and re-indents it with two-space
// indentation. The document passes through byte-for-byte apart from
// whitespace: key order and numeric literals are preserved.
//
// A missing file yields a *NotFoundError. A file that exists but is not
// valid JSON yields the indent error; callers treat that as an internal
// failure rather than a missing document.
func (s *Store) Load() (json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: s.path}
		}
		return nil, fmt.Errorf("failed to read sample graph: %w", err)
	}

	var doc bytes.Buffer
	if err := json.Indent(&doc, data, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to decode sample graph %s: %w", s.path, err)
	}

	s.logger.Debug("loaded sample graph",
		zap.String("path", s.path),
		zap.Int("bytes", doc.Len()))

	return doc.Bytes(), nil
}
