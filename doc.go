/*
Package asnpath extracts target-field paths from ASN.1-style message
schemas.

Protocol schemas (RRC and friends) define deeply nested message types:
sequences containing choices containing repeated containers containing
opaque strings that themselves embed further structure. Tooling that
mutates, fuzzes or generates concrete messages needs to know every route
from a message root to a field of interest — and, because choices select
exactly one alternative, the sequence of alternative selections that makes
each route reachable.

The library is split along hexagonal lines:

  - pkg/schema models decoded type graphs (which may be cyclic).
  - pkg/extract walks a graph and enumerates matching paths.
  - pkg/ports defines the SchemaProvider and PathSink contracts.
  - pkg/adapters provides memory, JSON-file and Redis implementations.
  - pkg/dsl builds schemas programmatically.

This package ties them together:

	provider, err := asnpath.LoadFile("rrc.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	ex, err := asnpath.New(provider, asnpath.WithSink(jsonfile.NewSink("paths.json")))
	if err != nil {
	    log.Fatal(err)
	}

	paths, err := ex.Extract(ctx, "DL-Message", extract.AllTargets())

Schemas come from YAML documents (LoadFile) or the dsl package; extracted
paths can go to any PathSink. Everything in between is a pure computation
that is safe to run concurrently over the same schema.
*/
package asnpath
