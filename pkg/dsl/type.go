package dsl

import "github.com/otabase/asnpath/internal/compiler"

// Type is an under-construction type expression.
type Type struct {
	def compiler.TypeDef
}

// Component pairs a field or alternative name with its type expression.
type Component struct {
	name string
	typ  Type
}

// F names a component of a sequence or choice.
func F(name string, t Type) Component {
	return Component{name: name, typ: t}
}

// Sequence builds a record of named fields, traversed in the given order.
func Sequence(fields ...Component) Type {
	def := compiler.TypeDef{Kind: "sequence"}
	for _, f := range fields {
		fd := f.typ.def
		fd.Name = f.name
		def.Fields = append(def.Fields, fd)
	}
	return Type{def: def}
}

// Choice builds a tagged union of named alternatives.
func Choice(alternatives ...Component) Type {
	def := compiler.TypeDef{Kind: "choice"}
	for _, alt := range alternatives {
		ad := alt.typ.def
		ad.Name = alt.name
		def.Alternatives = append(def.Alternatives, ad)
	}
	return Type{def: def}
}

// SequenceOf builds a repeated-element container without a size constraint.
func SequenceOf(element Type) Type {
	elem := element.def
	return Type{def: compiler.TypeDef{Kind: "sequence-of", Element: &elem}}
}

// BitString builds a BIT STRING leaf.
func BitString() Type {
	return Type{def: compiler.TypeDef{Kind: "bit-string"}}
}

// OctetString builds an OCTET STRING leaf.
func OctetString() Type {
	return Type{def: compiler.TypeDef{Kind: "octet-string"}}
}

// Integer builds an INTEGER leaf.
func Integer() Type {
	return Type{def: compiler.TypeDef{Kind: "integer"}}
}

// Boolean builds a BOOLEAN leaf.
func Boolean() Type {
	return Type{def: compiler.TypeDef{Kind: "boolean"}}
}

// Enumerated builds an ENUMERATED leaf.
func Enumerated() Type {
	return Type{def: compiler.TypeDef{Kind: "enumerated"}}
}

// Null builds a NULL leaf.
func Null() Type {
	return Type{def: compiler.TypeDef{Kind: "null"}}
}

// Ref references a named type registered on the builder. References may
// point at the type being defined; Build resolves them into cycles.
func Ref(name string) Type {
	return Type{def: compiler.TypeDef{Ref: name}}
}

// Named sets the positional name of the expression, used for sequence-of
// elements and embedded contents labels.
func (t Type) Named(name string) Type {
	t.def.Name = name
	return t
}

// Size constrains a sequence-of to between min and max elements.
func (t Type) Size(min, max int64) Type {
	t.def.Size = &compiler.SizeDef{Min: &min, Max: &max}
	return t
}

// MinSize constrains a sequence-of to at least min elements with no upper
// bound (SIZE(min..MAX)).
func (t Type) MinSize(min int64) Type {
	t.def.Size = &compiler.SizeDef{Min: &min}
	return t
}

// Containing attaches embedded contents to a bit/octet string, modeling an
// open type carried inside the string.
func (t Type) Containing(contents Type) Type {
	c := contents.def
	t.def.Contents = &c
	return t
}
