package extract

import "strings"

// Path is one extracted route from a message root to a targeted field.
// It is created once during enumeration and never mutated afterwards.
type Path struct {
	// Decisions lists the choice-alternative names that must be selected to
	// reach the field, outermost choice first.
	Decisions []string `json:"choices"`
	// Fields lists the node names from the message root down to the
	// targeted field.
	Fields []string `json:"path"`
}

// String renders the path as root.child.leaf for logs and reports.
func (p Path) String() string {
	return strings.Join(p.Fields, ".")
}

// Equal reports whether two paths have identical fields and decisions.
func (p Path) Equal(other Path) bool {
	if len(p.Fields) != len(other.Fields) || len(p.Decisions) != len(other.Decisions) {
		return false
	}
	for i := range p.Fields {
		if p.Fields[i] != other.Fields[i] {
			return false
		}
	}
	for i := range p.Decisions {
		if p.Decisions[i] != other.Decisions[i] {
			return false
		}
	}
	return true
}
