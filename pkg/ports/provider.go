package ports

import (
	"context"
	"errors"

	"github.com/otabase/asnpath/pkg/schema"
)

// ErrMessageNotFound is returned when a provider cannot resolve a message name.
var ErrMessageNotFound = errors.New("message not found")

// SchemaProvider resolves message type names to decoded type graphs.
// The returned graph is shared and read-only; callers must not mutate it.
type SchemaProvider interface {
	// Resolve returns the root node of the named message type.
	// It returns ErrMessageNotFound (possibly wrapped) for unknown names.
	Resolve(ctx context.Context, message string) (schema.Type, error)

	// Messages lists the message names the provider can resolve.
	Messages(ctx context.Context) ([]string, error)
}
