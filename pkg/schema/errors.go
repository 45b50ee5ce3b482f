package schema

import "fmt"

// ShapeError reports a node that is not one of the recognized graph shapes.
// It is fatal to the operation that encountered it; cycles in a graph are
// expected and never reported as errors.
type ShapeError struct {
	Name   string // Positional name of the offending node, if known
	Reason string // Human-readable reason
}

func (e *ShapeError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("malformed schema: %s", e.Reason)
	}
	return fmt.Sprintf("malformed schema at %q: %s", e.Name, e.Reason)
}
