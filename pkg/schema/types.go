package schema

import "fmt"

// Kind classifies leaf field content.
type Kind int

const (
	// KindOther covers leaf content the toolkit carries but never targets
	// (booleans, enumerations, NULL, open placeholders).
	KindOther Kind = iota
	// KindBitString is an ASN.1 BIT STRING.
	KindBitString
	// KindOctetString is an ASN.1 OCTET STRING.
	KindOctetString
	// KindInteger is an ASN.1 INTEGER.
	KindInteger
)

// String returns the lowercase wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBitString:
		return "bit-string"
	case KindOctetString:
		return "octet-string"
	case KindInteger:
		return "integer"
	default:
		return "other"
	}
}

// Type is a node in a message type graph. It is a closed set: the only
// implementations are Sequence, Choice, SequenceOf, ConstrainedString and
// Leaf. Consumers switch over the concrete type; anything else is a
// malformed graph and reported as a ShapeError.
type Type interface {
	// TypeName returns the positional name of the node.
	TypeName() string

	node()
}

// Field pairs a component name with its type node. Sequences and choices
// list their components in declaration order; that order drives traversal
// and therefore output order.
type Field struct {
	Name string
	Type Type
}

// Sequence is a record of named fields (ASN.1 SEQUENCE / SET).
type Sequence struct {
	Name   string
	Fields []Field
}

func (s *Sequence) TypeName() string { return s.Name }
func (s *Sequence) node()            {}

// Choice is a tagged union (ASN.1 CHOICE). A concrete message instance
// selects exactly one alternative.
type Choice struct {
	Name         string
	Alternatives []Field
}

func (c *Choice) TypeName() string { return c.Name }
func (c *Choice) node()            {}

// SequenceOf is a repeated-element container (ASN.1 SEQUENCE OF / SET OF).
// A nil bound means the bound is absent from the size constraint; both nil
// means the type carries no size constraint at all.
type SequenceOf struct {
	Name      string
	Element   Type
	SizeLower *int64
	SizeUpper *int64
}

func (s *SequenceOf) TypeName() string { return s.Name }
func (s *SequenceOf) node()            {}

// VariableSize reports whether the container's element count can vary.
// A type without any size constraint is not variable for extraction
// purposes. With a constraint present, the container is variable when the
// bounds differ; an absent bound never equals a present one.
func (s *SequenceOf) VariableSize() bool {
	if s.SizeLower == nil && s.SizeUpper == nil {
		return false
	}
	if s.SizeLower == nil || s.SizeUpper == nil {
		return true
	}
	return *s.SizeLower != *s.SizeUpper
}

// ConstrainedString is a BIT STRING or OCTET STRING leaf that may carry an
// embedded sub-structure via a contents constraint (the open-type,
// container-within-blob pattern). Contents is nil when the schema declares
// no embedded structure.
type ConstrainedString struct {
	Name     string
	Kind     Kind
	Contents Type
}

func (c *ConstrainedString) TypeName() string { return c.Name }
func (c *ConstrainedString) node()            {}

// Leaf is a terminal field with no structural children.
type Leaf struct {
	Name string
	Kind Kind
}

func (l *Leaf) TypeName() string { return l.Name }
func (l *Leaf) node()            {}

// --- Constructors ---

// NewSequence creates a sequence node with fields in declaration order.
func NewSequence(name string, fields []Field) *Sequence {
	return &Sequence{Name: name, Fields: fields}
}

// NewChoice creates a choice node with alternatives in declaration order.
func NewChoice(name string, alternatives []Field) *Choice {
	return &Choice{Name: name, Alternatives: alternatives}
}

// NewSequenceOf creates a container node without a size constraint.
func NewSequenceOf(name string, element Type) *SequenceOf {
	return &SequenceOf{Name: name, Element: element}
}

// NewSizedSequenceOf creates a container node with a size constraint.
// Pass nil for an absent bound (e.g. SIZE(1..MAX)).
func NewSizedSequenceOf(name string, element Type, lower, upper *int64) *SequenceOf {
	return &SequenceOf{Name: name, Element: element, SizeLower: lower, SizeUpper: upper}
}

// NewConstrainedString creates a bit/octet string node carrying embedded
// contents.
func NewConstrainedString(name string, kind Kind, contents Type) *ConstrainedString {
	return &ConstrainedString{Name: name, Kind: kind, Contents: contents}
}

// NewLeaf creates a simple leaf node.
func NewLeaf(name string, kind Kind) *Leaf {
	return &Leaf{Name: name, Kind: kind}
}

// Size is a convenience for building size constraint bounds inline.
func Size(n int64) *int64 { return &n }

// ParseKind converts a wire name ("bit-string", "octet-string", "integer",
// "other") to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "bit-string":
		return KindBitString, nil
	case "octet-string":
		return KindOctetString, nil
	case "integer":
		return KindInteger, nil
	case "other", "boolean", "enumerated", "null":
		return KindOther, nil
	default:
		return KindOther, fmt.Errorf("unsupported kind: %s", s)
	}
}
