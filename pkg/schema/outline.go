package schema

import (
	"fmt"
	"strings"
)

// Outline renders a type graph as an indented structural outline, one node
// per line. Recursive references are marked instead of expanded, so the
// output is finite for cyclic graphs.
func Outline(root Type) string {
	var b strings.Builder
	outlineNode(&b, root, "", make(map[Type]bool))
	return b.String()
}

func outlineNode(b *strings.Builder, t Type, indent string, seen map[Type]bool) {
	if t == nil {
		fmt.Fprintf(b, "%s<nil>\n", indent)
		return
	}
	if seen[t] {
		fmt.Fprintf(b, "%s%s: (recursive)\n", indent, t.TypeName())
		return
	}
	seen[t] = true
	defer delete(seen, t)

	switch n := t.(type) {
	case *Sequence:
		fmt.Fprintf(b, "%s%s: sequence\n", indent, n.Name)
		for _, f := range n.Fields {
			outlineNode(b, f.Type, indent+"  ", seen)
		}
	case *Choice:
		fmt.Fprintf(b, "%s%s: choice\n", indent, n.Name)
		for _, alt := range n.Alternatives {
			outlineNode(b, alt.Type, indent+"  ", seen)
		}
	case *SequenceOf:
		fmt.Fprintf(b, "%s%s: sequence-of%s\n", indent, n.Name, sizeSuffix(n))
		outlineNode(b, n.Element, indent+"  ", seen)
	case *ConstrainedString:
		if n.Contents == nil {
			fmt.Fprintf(b, "%s%s: %s\n", indent, n.Name, n.Kind)
			return
		}
		fmt.Fprintf(b, "%s%s: %s (containing)\n", indent, n.Name, n.Kind)
		outlineNode(b, n.Contents, indent+"  ", seen)
	case *Leaf:
		fmt.Fprintf(b, "%s%s: %s\n", indent, n.Name, n.Kind)
	default:
		fmt.Fprintf(b, "%s%s: ?\n", indent, t.TypeName())
	}
}

func sizeSuffix(n *SequenceOf) string {
	if n.SizeLower == nil && n.SizeUpper == nil {
		return ""
	}
	lower, upper := "MIN", "MAX"
	if n.SizeLower != nil {
		lower = fmt.Sprintf("%d", *n.SizeLower)
	}
	if n.SizeUpper != nil {
		upper = fmt.Sprintf("%d", *n.SizeUpper)
	}
	return fmt.Sprintf(" SIZE(%s..%s)", lower, upper)
}
