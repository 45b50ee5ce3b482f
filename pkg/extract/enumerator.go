package extract

import (
	"fmt"

	"github.com/otabase/asnpath/pkg/schema"
)

// contentsLabel names an embedded open-type structure whose node carries no
// name of its own.
const contentsLabel = "CONTAINER"

// BudgetError reports that an enumeration visited more nodes than the
// configured budget allows. It is distinct from schema.ShapeError so
// callers can tell a pathological schema from a malformed one.
type BudgetError struct {
	Limit int
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("node visit budget exceeded (limit %d)", e.Limit)
}

// Enumerator walks message type graphs and collects target-field paths.
// The zero configuration (no budget) is valid; Enumerators are stateless
// between calls and safe for concurrent use.
type Enumerator struct {
	budget int
}

// Option configures an Enumerator.
type Option func(*Enumerator)

// WithBudget caps the number of node visits per Enumerate call. Zero or
// negative means unlimited. Cycles terminate on their own; the budget
// exists to fail fast on very large or deeply nested acyclic schemas.
func WithBudget(n int) Option {
	return func(e *Enumerator) {
		e.budget = n
	}
}

// NewEnumerator creates an Enumerator with the given options.
func NewEnumerator(opts ...Option) *Enumerator {
	e := &Enumerator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enumerate returns every path from root to a field matching targets,
// reachable through a finite cycle-free expansion of the graph. Output
// order follows declaration order and is deterministic. An empty target
// set yields an empty result. A node whose shape is not recognized fails
// the whole call with a schema.ShapeError; exceeding the visit budget
// fails with a BudgetError. Recursive edges are skipped silently.
func (e *Enumerator) Enumerate(root schema.Type, targets TargetSet) ([]Path, error) {
	if root == nil {
		return nil, &schema.ShapeError{Reason: "nil root node"}
	}

	w := &walker{
		targets: targets,
		budget:  e.budget,
		visited: map[schema.Type]struct{}{root: {}},
	}
	return w.walk(root, nil)
}

// walker carries the per-call traversal state: the visited-identity chain
// and the visit counter. It is discarded when Enumerate returns.
type walker struct {
	targets TargetSet
	budget  int
	visited map[schema.Type]struct{}
	visits  int
}

// walk enumerates the subgraph rooted at node. path holds the node names
// from the root down to node's parent; emitted paths copy it, never alias
// it, because sibling recursions reuse the same backing array.
func (w *walker) walk(node schema.Type, path []string) ([]Path, error) {
	w.visits++
	if w.budget > 0 && w.visits > w.budget {
		return nil, &BudgetError{Limit: w.budget}
	}

	switch n := node.(type) {
	case *schema.Sequence:
		var out []Path
		for _, f := range n.Fields {
			if w.onChain(f.Type) {
				continue
			}
			sub, err := w.descend(f.Type, extend(path, n.Name))
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
		return out, nil

	case *schema.Choice:
		var out []Path
		for _, alt := range n.Alternatives {
			if w.onChain(alt.Type) {
				continue
			}
			sub, err := w.descend(alt.Type, extend(path, n.Name))
			if err != nil {
				return nil, err
			}
			for i := range sub {
				sub[i].Decisions = prepend(alt.Name, sub[i].Decisions)
			}
			out = append(out, sub...)
		}
		return out, nil

	case *schema.SequenceOf:
		var out []Path
		if !w.onChain(n.Element) {
			sub, err := w.descend(n.Element, extend(path, n.Name))
			if err != nil {
				return nil, err
			}
			out = sub
		}
		// The container itself is a target only when its size can vary;
		// fixed-size containers contribute element paths alone.
		if w.targets.Has(TargetSequenceOf) && n.VariableSize() {
			out = append(out, Path{Fields: extend(path, n.Name)})
		}
		return out, nil

	case *schema.ConstrainedString:
		var out []Path
		if n.Contents != nil && !w.onChain(n.Contents) {
			// The contents node contributes its own type label to the
			// path; an unnamed contents node gets the generic label here
			// instead.
			childPath := extend(path, n.Name)
			if n.Contents.TypeName() == "" {
				childPath = extend(childPath, contentsLabel)
			}
			sub, err := w.descend(n.Contents, childPath)
			if err != nil {
				return nil, err
			}
			out = sub
		}
		// The string leaf is emitted alongside any embedded-structure
		// paths; neither replaces the other.
		if w.targets.MatchesKind(n.Kind) {
			out = append(out, Path{Fields: extend(path, n.Name)})
		}
		return out, nil

	case *schema.Leaf:
		if w.targets.MatchesKind(n.Kind) {
			return []Path{{Fields: extend(path, n.Name)}}, nil
		}
		return nil, nil

	case nil:
		return nil, &schema.ShapeError{Reason: "nil node"}

	default:
		return nil, &schema.ShapeError{Name: node.TypeName(), Reason: "unrecognized node shape"}
	}
}

// descend pushes child onto the visited chain, walks it, and pops it on
// return so sibling positions see the chain as it was.
func (w *walker) descend(child schema.Type, path []string) ([]Path, error) {
	w.visited[child] = struct{}{}
	sub, err := w.walk(child, path)
	delete(w.visited, child)
	return sub, err
}

// onChain reports whether child already sits on the current root-to-node
// chain, i.e. descending into it would re-enter a recursive type.
func (w *walker) onChain(child schema.Type) bool {
	_, ok := w.visited[child]
	return ok
}

// extend copies path and appends names. The copy is what keeps emitted
// paths immutable while the walk keeps appending to its own accumulator.
// Empty names are dropped: an unnamed node contributes no segment of its
// own, the contents label stands in for it.
func extend(path []string, names ...string) []string {
	out := make([]string, 0, len(path)+len(names))
	out = append(out, path...)
	for _, name := range names {
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

func prepend(name string, decisions []string) []string {
	out := make([]string, 0, len(decisions)+1)
	out = append(out, name)
	return append(out, decisions...)
}
