package dsl

import (
	"fmt"

	"github.com/otabase/asnpath/internal/compiler"
	"github.com/otabase/asnpath/pkg/ports"
)

// Builder accumulates named type definitions.
type Builder struct {
	types    map[string]compiler.TypeDef
	messages []string
}

// New creates a new schema builder.
func New() *Builder {
	return &Builder{
		types: make(map[string]compiler.TypeDef),
	}
}

// Define registers a named type. Later definitions with the same name
// replace earlier ones.
func (b *Builder) Define(name string, t Type) *Builder {
	b.types[name] = t.def
	return b
}

// Message registers a named type and exposes it as a message root.
func (b *Builder) Message(name string, t Type) *Builder {
	b.Define(name, t)
	for _, m := range b.messages {
		if m == name {
			return b
		}
	}
	b.messages = append(b.messages, name)
	return b
}

// Build compiles the accumulated definitions into a schema provider.
func (b *Builder) Build() (ports.SchemaProvider, error) {
	doc := &compiler.Document{
		Types:    b.types,
		Messages: b.messages,
	}
	compiled, err := compiler.Compile(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build schema: %w", err)
	}
	return compiled, nil
}
