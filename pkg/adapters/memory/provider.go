// Package memory provides in-memory implementations of the extraction
// ports, primarily for tests and embedded use.
package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/otabase/asnpath/pkg/ports"
	"github.com/otabase/asnpath/pkg/schema"
)

// Provider implements ports.SchemaProvider over a map of message roots.
type Provider struct {
	roots map[string]schema.Type
}

var _ ports.SchemaProvider = (*Provider)(nil)

// NewProvider creates a provider serving the given message roots.
func NewProvider(roots map[string]schema.Type) *Provider {
	copied := make(map[string]schema.Type, len(roots))
	for name, root := range roots {
		copied[name] = root
	}
	return &Provider{roots: copied}
}

// Resolve returns the root node of the named message.
func (p *Provider) Resolve(_ context.Context, message string) (schema.Type, error) {
	root, ok := p.roots[message]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ports.ErrMessageNotFound, message)
	}
	return root, nil
}

// Messages returns the served message names in sorted order.
func (p *Provider) Messages(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(p.roots))
	for name := range p.roots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
