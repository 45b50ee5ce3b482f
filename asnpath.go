package asnpath

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/otabase/asnpath/internal/compiler"
	"github.com/otabase/asnpath/internal/logging"
	"github.com/otabase/asnpath/pkg/extract"
	"github.com/otabase/asnpath/pkg/ports"
)

// Version is the library version reported by clients and servers.
const Version = "0.3.0"

// Extractor is the high-level entry point: it resolves message roots from
// a SchemaProvider, enumerates target paths, and optionally hands results
// to a PathSink.
type Extractor struct {
	provider ports.SchemaProvider
	sink     ports.PathSink
	enum     *extract.Enumerator
	logger   *slog.Logger
	budget   int
}

// Option defines a functional option for configuring the Extractor.
type Option func(*Extractor)

// WithSink forwards every extraction result to the given sink.
func WithSink(sink ports.PathSink) Option {
	return func(e *Extractor) {
		e.sink = sink
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// WithBudget caps the node visits of each enumeration; see extract.WithBudget.
func WithBudget(n int) Option {
	return func(e *Extractor) {
		e.budget = n
	}
}

// New creates an Extractor over the given provider.
func New(provider ports.SchemaProvider, opts ...Option) (*Extractor, error) {
	if provider == nil {
		return nil, fmt.Errorf("schema provider is required")
	}

	e := &Extractor{
		provider: provider,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.enum = extract.NewEnumerator(extract.WithBudget(e.budget))
	return e, nil
}

// Messages lists the message names the underlying provider can resolve.
func (e *Extractor) Messages(ctx context.Context) ([]string, error) {
	return e.provider.Messages(ctx)
}

// Extract enumerates the target paths of one message. When a sink is
// configured the result is forwarded to it before being returned.
func (e *Extractor) Extract(ctx context.Context, message string, targets extract.TargetSet) ([]extract.Path, error) {
	root, err := e.provider.Resolve(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve message %q: %w", message, err)
	}

	paths, err := e.enum.Enumerate(root, targets)
	if err != nil {
		return nil, fmt.Errorf("failed to extract paths from %q: %w", message, err)
	}
	e.logger.Debug("extracted paths",
		"message", message,
		"targets", targets.Strings(),
		"count", len(paths),
	)

	if e.sink != nil {
		if err := e.sink.Write(ctx, message, paths); err != nil {
			return nil, fmt.Errorf("failed to store paths for %q: %w", message, err)
		}
	}
	return paths, nil
}

// ExtractAll runs Extract for every message the provider serves and
// returns the results keyed by message name.
func (e *Extractor) ExtractAll(ctx context.Context, targets extract.TargetSet) (map[string][]extract.Path, error) {
	messages, err := e.provider.Messages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	out := make(map[string][]extract.Path, len(messages))
	for _, msg := range messages {
		paths, err := e.Extract(ctx, msg, targets)
		if err != nil {
			return nil, err
		}
		out[msg] = paths
	}
	return out, nil
}

// Load compiles a YAML schema document into a SchemaProvider.
func Load(data []byte) (ports.SchemaProvider, error) {
	doc, err := compiler.Parse(data)
	if err != nil {
		return nil, err
	}
	return compiler.Compile(doc)
}

// LoadFile compiles a YAML schema document from disk.
func LoadFile(path string) (ports.SchemaProvider, error) {
	doc, err := compiler.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return compiler.Compile(doc)
}
