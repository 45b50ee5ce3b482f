// Package graph renders message type graphs as Mermaid flowcharts.
package graph

import (
	"fmt"
	"strings"

	"github.com/otabase/asnpath/pkg/schema"
)

// GenerateMermaid produces a Mermaid flowchart syntax string from a type
// graph. It applies semantic shapes:
// - Sequence: [Rectangle]
// - Choice: {Diamond}
// - SequenceOf: [[Subroutine]]
// - ConstrainedString: [/Parallelogram/]
// - Leaf: (Round)
// Choice edges carry the alternative name, container edges are starred, and
// embedded-contents edges are dotted. Shared nodes and cycles come out as
// extra edges into an already drawn node.
func GenerateMermaid(root schema.Type) string {
	g := &mermaid{ids: make(map[schema.Type]string)}
	g.sb.WriteString("graph TD\n")
	g.visit(root)
	return g.sb.String()
}

type mermaid struct {
	sb  strings.Builder
	ids map[schema.Type]string
}

// visit draws the node if it has not been drawn yet and returns its ID.
func (g *mermaid) visit(t schema.Type) string {
	if t == nil {
		return ""
	}
	if id, ok := g.ids[t]; ok {
		return id
	}
	id := fmt.Sprintf("n%d", len(g.ids)+1)
	g.ids[t] = id

	switch n := t.(type) {
	case *schema.Sequence:
		g.node(id, "[", n.Name, "]")
		for _, f := range n.Fields {
			g.edge(id, g.visit(f.Type), "-->", "")
		}
	case *schema.Choice:
		g.node(id, "{", n.Name, "}")
		for _, alt := range n.Alternatives {
			g.edge(id, g.visit(alt.Type), "-->", alt.Name)
		}
	case *schema.SequenceOf:
		label := n.Name
		if n.SizeLower != nil || n.SizeUpper != nil {
			label = fmt.Sprintf("%s SIZE(%s..%s)", n.Name, bound(n.SizeLower, "MIN"), bound(n.SizeUpper, "MAX"))
		}
		g.node(id, "[[", label, "]]")
		g.edge(id, g.visit(n.Element), "-->", "*")
	case *schema.ConstrainedString:
		g.node(id, "[/", fmt.Sprintf("%s %s", n.Name, n.Kind), "/]")
		g.edge(id, g.visit(n.Contents), "-.->", "")
	case *schema.Leaf:
		g.node(id, "(", fmt.Sprintf("%s %s", n.Name, n.Kind), ")")
	}
	return id
}

func (g *mermaid) node(id, opener, label, closer string) {
	safe := strings.ReplaceAll(label, "\"", "'")
	g.sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, safe, closer))
}

func (g *mermaid) edge(from, to, arrow, label string) {
	if to == "" {
		return
	}
	if label != "" {
		safe := strings.ReplaceAll(label, "\"", "'")
		if arrow == "-.->" {
			arrow = fmt.Sprintf("-. \"%s\" .->", safe)
		} else {
			arrow = fmt.Sprintf("-- \"%s\" -->", safe)
		}
	}
	g.sb.WriteString(fmt.Sprintf("    %s %s %s\n", from, arrow, to))
}

func bound(n *int64, absent string) string {
	if n == nil {
		return absent
	}
	return fmt.Sprintf("%d", *n)
}
