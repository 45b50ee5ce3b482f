package schema

import (
	"strings"
	"testing"
)

func TestOutline(t *testing.T) {
	root := NewSequence("Msg", []Field{
		{Name: "id", Type: NewLeaf("id", KindInteger)},
		{Name: "list", Type: NewSizedSequenceOf("list", NewLeaf("item", KindOctetString), Size(1), Size(4))},
		{Name: "blob", Type: NewConstrainedString("blob", KindOctetString, NewLeaf("inner", KindBitString))},
	})

	got := Outline(root)
	want := strings.Join([]string{
		"Msg: sequence",
		"  id: integer",
		"  list: sequence-of SIZE(1..4)",
		"    item: octet-string",
		"  blob: octet-string (containing)",
		"    inner: bit-string",
		"",
	}, "\n")
	if got != want {
		t.Errorf("Outline() =\n%s\nwant\n%s", got, want)
	}
}

func TestOutline_Recursive(t *testing.T) {
	root := &Sequence{Name: "Node"}
	root.Fields = []Field{
		{Name: "value", Type: NewLeaf("value", KindInteger)},
		{Name: "next", Type: root},
	}

	got := Outline(root)
	if !strings.Contains(got, "Node: (recursive)") {
		t.Errorf("Outline() should mark the cycle, got:\n%s", got)
	}
}

func TestOutline_ContentlessConstrainedString(t *testing.T) {
	got := Outline(NewConstrainedString("raw", KindBitString, nil))
	want := "raw: bit-string\n"
	if got != want {
		t.Errorf("Outline() = %q, want %q", got, want)
	}
}

func TestOutline_UnboundedSize(t *testing.T) {
	got := Outline(NewSizedSequenceOf("list", NewLeaf("item", KindInteger), Size(1), nil))
	if !strings.Contains(got, "SIZE(1..MAX)") {
		t.Errorf("Outline() = %q, want SIZE(1..MAX) suffix", got)
	}
}
