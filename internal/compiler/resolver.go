package compiler

import (
	"context"
	"fmt"
	"sort"

	"github.com/otabase/asnpath/pkg/ports"
	"github.com/otabase/asnpath/pkg/schema"
)

// Schema is a compiled document: every message root fully resolved.
// It is immutable after Compile and safe for concurrent use.
type Schema struct {
	roots map[string]schema.Type
	names []string
}

var _ ports.SchemaProvider = (*Schema)(nil)

// Compile resolves every message declared by the document into a type
// graph. Recursive definitions compile into cyclic graphs; the cycle is in
// the node identities, not in the work done here, so compilation terminates.
func Compile(doc *Document) (*Schema, error) {
	messages := doc.Messages
	if len(messages) == 0 {
		messages = make([]string, 0, len(doc.Types))
		for name := range doc.Types {
			messages = append(messages, name)
		}
	}
	sort.Strings(messages)

	roots := make(map[string]schema.Type, len(messages))
	for _, msg := range messages {
		def, ok := doc.Types[msg]
		if !ok {
			return nil, fmt.Errorf("message %q is not a declared type", msg)
		}
		r := &resolver{doc: doc, expanding: make(map[string]schema.Type)}
		root, err := r.expand(msg, def, msg)
		if err != nil {
			return nil, fmt.Errorf("message %q: %w", msg, err)
		}
		if err := schema.Validate(root); err != nil {
			return nil, fmt.Errorf("message %q: %w", msg, err)
		}
		roots[msg] = root
	}

	return &Schema{roots: roots, names: messages}, nil
}

// Resolve returns the compiled root of the named message.
func (s *Schema) Resolve(_ context.Context, message string) (schema.Type, error) {
	root, ok := s.roots[message]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ports.ErrMessageNotFound, message)
	}
	return root, nil
}

// Messages lists the compiled message names in sorted order.
func (s *Schema) Messages(_ context.Context) ([]string, error) {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out, nil
}

// resolver expands one message root. expanding maps named types currently
// under expansion to their half-built nodes, so a reference back to one of
// them binds to the same node and closes the cycle.
type resolver struct {
	doc       *Document
	expanding map[string]schema.Type
}

func (r *resolver) resolve(def TypeDef, name string) (schema.Type, error) {
	if def.Ref != "" {
		if node, ok := r.expanding[def.Ref]; ok {
			return node, nil
		}
		target, ok := r.doc.Types[def.Ref]
		if !ok {
			return nil, fmt.Errorf("unknown type reference %q", def.Ref)
		}
		// Named types are expanded per position so the node carries the
		// name of the place it is used at.
		return r.expand(def.Ref, target, name)
	}
	return r.expand("", def, name)
}

func (r *resolver) expand(refName string, def TypeDef, name string) (schema.Type, error) {
	switch def.Kind {
	case "sequence":
		node := &schema.Sequence{Name: name}
		if refName != "" {
			r.expanding[refName] = node
			defer delete(r.expanding, refName)
		}
		for _, f := range def.Fields {
			fname := componentName(f)
			if fname == "" {
				return nil, fmt.Errorf("sequence %q has an unnamed field", name)
			}
			child, err := r.resolve(f, fname)
			if err != nil {
				return nil, err
			}
			node.Fields = append(node.Fields, schema.Field{Name: fname, Type: child})
		}
		return node, nil

	case "choice":
		node := &schema.Choice{Name: name}
		if refName != "" {
			r.expanding[refName] = node
			defer delete(r.expanding, refName)
		}
		for _, alt := range def.Alternatives {
			aname := componentName(alt)
			if aname == "" {
				return nil, fmt.Errorf("choice %q has an unnamed alternative", name)
			}
			child, err := r.resolve(alt, aname)
			if err != nil {
				return nil, err
			}
			node.Alternatives = append(node.Alternatives, schema.Field{Name: aname, Type: child})
		}
		return node, nil

	case "sequence-of":
		if def.Element == nil {
			return nil, fmt.Errorf("sequence-of %q has no element type", name)
		}
		node := &schema.SequenceOf{Name: name}
		if refName != "" {
			r.expanding[refName] = node
			defer delete(r.expanding, refName)
		}
		if def.Size != nil {
			node.SizeLower = def.Size.Min
			node.SizeUpper = def.Size.Max
		}
		ename := componentName(*def.Element)
		if ename == "" {
			ename = "item"
		}
		elem, err := r.resolve(*def.Element, ename)
		if err != nil {
			return nil, err
		}
		node.Element = elem
		return node, nil

	case "bit-string", "octet-string":
		kind, err := schema.ParseKind(def.Kind)
		if err != nil {
			return nil, err
		}
		if def.Contents == nil {
			return schema.NewLeaf(name, kind), nil
		}
		node := &schema.ConstrainedString{Name: name, Kind: kind}
		if refName != "" {
			r.expanding[refName] = node
			defer delete(r.expanding, refName)
		}
		// The contents node is labeled with its own type name; the
		// enumerator falls back to a generic label when it has none.
		contents, err := r.resolve(*def.Contents, componentName(*def.Contents))
		if err != nil {
			return nil, err
		}
		node.Contents = contents
		return node, nil

	case "integer", "boolean", "enumerated", "null", "other":
		kind, err := schema.ParseKind(def.Kind)
		if err != nil {
			return nil, err
		}
		return schema.NewLeaf(name, kind), nil

	case "":
		return nil, fmt.Errorf("type %q has neither kind nor ref", name)

	default:
		return nil, fmt.Errorf("type %q has unsupported kind %q", name, def.Kind)
	}
}

// componentName picks the positional name of a component definition: its
// declared field name, falling back to the referenced type name.
func componentName(def TypeDef) string {
	if def.Name != "" {
		return def.Name
	}
	return def.Ref
}
