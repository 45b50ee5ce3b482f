package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/otabase/asnpath/pkg/extract"
)

func TestBuild(t *testing.T) {
	paths := []extract.Path{
		{Fields: []string{"DL-Message", "transactionID"}},
		{Decisions: []string{"c1"}, Fields: []string{"DL-Message", "criticalExtensions", "c1", "nasList"}},
	}

	got := Build("DL-Message", []string{"integer", "sequence-of"}, paths)

	for _, want := range []string{
		"# DL-Message",
		"**2** path(s) for targets: integer, sequence-of",
		"| 1 | `DL-Message.transactionID` |  |",
		"| 2 | `DL-Message.criticalExtensions.c1.nasList` | c1 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Build() missing %q in:\n%s", want, got)
		}
	}
}

func TestBuild_Empty(t *testing.T) {
	got := Build("DL-Message", []string{"bit-string"}, nil)
	if !strings.Contains(got, "_No matching fields._") {
		t.Errorf("Build() = %q, want empty marker", got)
	}
}

func TestBuildAll_Order(t *testing.T) {
	results := map[string][]extract.Path{
		"B": {{Fields: []string{"B", "x"}}},
		"A": {{Fields: []string{"A", "y"}}},
	}

	got := BuildAll([]string{"integer"}, results, []string{"A", "B"})

	if strings.Index(got, "# A") > strings.Index(got, "# B") {
		t.Errorf("BuildAll() sections out of order:\n%s", got)
	}
	if !strings.Contains(got, "\n---\n") {
		t.Errorf("BuildAll() missing section separator:\n%s", got)
	}
}

func TestWrite_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	md := Build("DL-Message", []string{"integer"}, nil)
	if err := Write(&buf, md); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	// A plain buffer is not a TTY, so the markdown passes through as is.
	if buf.String() != md {
		t.Errorf("Write() = %q, want raw markdown", buf.String())
	}
}
