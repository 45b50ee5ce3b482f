package schema

// Validate checks that every node reachable from root has a recognized
// shape, a name, and non-nil children. The one place an unnamed node is
// legal is the contents of a ConstrainedString: anonymous embedded
// structure is labeled generically downstream. Validate visits each node
// once, so recursive type graphs terminate.
func Validate(root Type) error {
	if root == nil {
		return &ShapeError{Reason: "nil root node"}
	}
	seen := make(map[Type]struct{})
	return validate(root, seen, false)
}

// anon is true when node sits in a contents position, where a missing
// name is tolerated.
func validate(node Type, seen map[Type]struct{}, anon bool) error {
	if node == nil {
		return &ShapeError{Reason: "nil node"}
	}
	if _, ok := seen[node]; ok {
		return nil
	}
	seen[node] = struct{}{}

	if node.TypeName() == "" && !anon {
		return &ShapeError{Reason: "node has no name"}
	}

	switch n := node.(type) {
	case *Sequence:
		for _, f := range n.Fields {
			if f.Type == nil {
				return &ShapeError{Name: n.Name, Reason: "field " + f.Name + " has no type"}
			}
			if err := validate(f.Type, seen, false); err != nil {
				return err
			}
		}
	case *Choice:
		if len(n.Alternatives) == 0 {
			return &ShapeError{Name: n.Name, Reason: "choice has no alternatives"}
		}
		for _, alt := range n.Alternatives {
			if alt.Type == nil {
				return &ShapeError{Name: n.Name, Reason: "alternative " + alt.Name + " has no type"}
			}
			if err := validate(alt.Type, seen, false); err != nil {
				return err
			}
		}
	case *SequenceOf:
		if n.Element == nil {
			return &ShapeError{Name: n.Name, Reason: "sequence-of has no element type"}
		}
		if err := validate(n.Element, seen, false); err != nil {
			return err
		}
	case *ConstrainedString:
		if n.Contents != nil {
			if err := validate(n.Contents, seen, true); err != nil {
				return err
			}
		}
	case *Leaf:
		// Terminal.
	default:
		return &ShapeError{Name: node.TypeName(), Reason: "unrecognized node shape"}
	}
	return nil
}
