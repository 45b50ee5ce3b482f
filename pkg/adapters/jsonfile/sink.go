// Package jsonfile persists extraction results as a JSON document on disk.
//
// The file holds one record per extracted path:
//
//	[
//	  {"message": "DL-Message", "path": ["DL-Message", "id"], "choices": []},
//	  ...
//	]
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/otabase/asnpath/pkg/extract"
	"github.com/otabase/asnpath/pkg/ports"
)

// Record is one serialized path, tagged with the message it belongs to.
type Record struct {
	Message string   `json:"message"`
	Path    []string `json:"path"`
	Choices []string `json:"choices"`
}

// Sink implements ports.PathSink over a single JSON file. Writes for
// different messages accumulate; rewriting a message replaces its records.
type Sink struct {
	mu      sync.Mutex
	path    string
	records map[string][]Record
	order   []string
}

var _ ports.PathSink = (*Sink)(nil)

// NewSink creates a sink writing to the given file path. The file is
// rewritten whole on every Write so readers never observe partial output.
func NewSink(path string) *Sink {
	return &Sink{
		path:    path,
		records: make(map[string][]Record),
	}
}

// Write stores the paths for the message and flushes the file.
func (s *Sink) Write(ctx context.Context, message string, paths []extract.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recs := make([]Record, 0, len(paths))
	for _, p := range paths {
		recs = append(recs, Record{
			Message: message,
			Path:    emptyIfNil(p.Fields),
			Choices: emptyIfNil(p.Decisions),
		})
	}
	if _, seen := s.records[message]; !seen {
		s.order = append(s.order, message)
	}
	s.records[message] = recs

	return s.flush()
}

func (s *Sink) flush() error {
	all := make([]Record, 0, len(s.records))
	for _, msg := range s.order {
		all = append(all, s.records[msg]...)
	}

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal paths: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Write-then-rename keeps the published file complete at all times.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write paths file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to publish paths file: %w", err)
	}
	return nil
}

// Load reads a previously written paths file.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read paths file: %w", err)
	}
	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("failed to parse paths file: %w", err)
	}
	return recs, nil
}

// emptyIfNil keeps the serialized form as [] rather than null, matching
// what downstream consumers of the paths file expect.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
