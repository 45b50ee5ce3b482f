package memory

import (
	"context"
	"sync"

	"github.com/otabase/asnpath/pkg/extract"
	"github.com/otabase/asnpath/pkg/ports"
)

// Sink implements ports.PathSink by collecting paths in memory.
// It is safe for concurrent writers.
type Sink struct {
	mu    sync.RWMutex
	paths map[string][]extract.Path
}

var _ ports.PathSink = (*Sink)(nil)

// NewSink creates an empty collecting sink.
func NewSink() *Sink {
	return &Sink{paths: make(map[string][]extract.Path)}
}

// Write stores the paths for the message, replacing any earlier list.
func (s *Sink) Write(_ context.Context, message string, paths []extract.Path) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]extract.Path, len(paths))
	copy(copied, paths)
	s.paths[message] = copied
	return nil
}

// Paths returns the collected list for the message, or nil.
func (s *Sink) Paths(message string) []extract.Path {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paths[message]
}

// Len returns the number of messages written so far.
func (s *Sink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.paths)
}
