// Package compiler turns YAML schema documents into resolved type graphs.
//
// A document declares named types; fields reference other named types with
// "ref". References to a type that is currently being expanded bind to the
// in-progress node, which is how recursive definitions become genuine
// cycles with shared node identity instead of infinite expansions.
package compiler

// Document is the decoded form of a schema definition file.
type Document struct {
	// Types maps declared type names to their definitions.
	Types map[string]TypeDef `json:"types" mapstructure:"types"`

	// Messages names the top-level message types to expose. Empty means
	// every declared type is a message.
	Messages []string `json:"messages" mapstructure:"messages"`
}

// TypeDef describes one type, either inline or as a reference to a named
// type. Exactly one of Ref or Kind is meaningful.
type TypeDef struct {
	Name string `json:"name" mapstructure:"name"`
	Kind string `json:"kind" mapstructure:"kind"`
	Ref  string `json:"ref" mapstructure:"ref"`

	// Fields holds sequence components in declaration order.
	Fields []TypeDef `json:"fields" mapstructure:"fields"`

	// Alternatives holds choice components in declaration order.
	Alternatives []TypeDef `json:"alternatives" mapstructure:"alternatives"`

	// Element is the repeated type of a sequence-of.
	Element *TypeDef `json:"element" mapstructure:"element"`

	// Size is the optional size constraint of a sequence-of.
	Size *SizeDef `json:"size" mapstructure:"size"`

	// Contents is the optional embedded structure of a bit/octet string.
	Contents *TypeDef `json:"contents" mapstructure:"contents"`
}

// SizeDef is a size constraint. A nil bound is absent (e.g. SIZE(1..MAX)).
type SizeDef struct {
	Min *int64 `json:"min" mapstructure:"min"`
	Max *int64 `json:"max" mapstructure:"max"`
}
