package extract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/otabase/asnpath/pkg/schema"
)

// Target names a field category the enumerator should extract.
type Target string

const (
	// TargetBitString matches BIT STRING leaves.
	TargetBitString Target = "bit-string"
	// TargetOctetString matches OCTET STRING leaves.
	TargetOctetString Target = "octet-string"
	// TargetInteger matches INTEGER leaves.
	TargetInteger Target = "integer"
	// TargetSequenceOf matches variable-size repeated containers. Fixed-size
	// containers never match; their elements are still recursed into.
	TargetSequenceOf Target = "sequence-of"
)

// ParseTarget converts a wire name to a Target.
func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case TargetBitString, TargetOctetString, TargetInteger, TargetSequenceOf:
		return Target(s), nil
	default:
		return "", fmt.Errorf("unsupported target: %s", s)
	}
}

// TargetSet is the caller-supplied selection of field categories. There are
// no implicit defaults: an empty set extracts nothing, and a caller wanting
// everything passes AllTargets().
type TargetSet map[Target]struct{}

// NewTargetSet builds a set from the given targets.
func NewTargetSet(targets ...Target) TargetSet {
	set := make(TargetSet, len(targets))
	for _, t := range targets {
		set[t] = struct{}{}
	}
	return set
}

// AllTargets returns a set containing every recognized target.
func AllTargets() TargetSet {
	return NewTargetSet(TargetBitString, TargetOctetString, TargetInteger, TargetSequenceOf)
}

// ParseTargets builds a set from wire names.
func ParseTargets(names []string) (TargetSet, error) {
	set := make(TargetSet, len(names))
	for _, name := range names {
		t, err := ParseTarget(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		set[t] = struct{}{}
	}
	return set, nil
}

// Has reports whether the set contains t.
func (s TargetSet) Has(t Target) bool {
	_, ok := s[t]
	return ok
}

// MatchesKind reports whether a leaf of the given kind is targeted.
// KindOther never matches any target.
func (s TargetSet) MatchesKind(k schema.Kind) bool {
	switch k {
	case schema.KindBitString:
		return s.Has(TargetBitString)
	case schema.KindOctetString:
		return s.Has(TargetOctetString)
	case schema.KindInteger:
		return s.Has(TargetInteger)
	default:
		return false
	}
}

// Strings returns the sorted wire names of the set, for logs and reports.
func (s TargetSet) Strings() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, string(t))
	}
	sort.Strings(out)
	return out
}
