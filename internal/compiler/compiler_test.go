package compiler

import (
	"context"
	"errors"
	"testing"

	"github.com/otabase/asnpath/pkg/extract"
	"github.com/otabase/asnpath/pkg/ports"
	"github.com/otabase/asnpath/pkg/schema"
)

const sampleDoc = `
messages: [DL-Message]
types:
  DL-Message:
    kind: sequence
    fields:
      - name: transactionID
        kind: integer
      - name: criticalExtensions
        kind: choice
        alternatives:
          - name: c1
            ref: Payload
          - name: later
            kind: "null"
  Payload:
    kind: sequence
    fields:
      - name: nasList
        kind: sequence-of
        size: {min: 1, max: 11}
        element:
          name: dedicatedInfoNAS
          kind: octet-string
`

func TestParseAndCompile(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	compiled, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}

	ctx := context.Background()

	msgs, err := compiled.Messages(ctx)
	if err != nil {
		t.Fatalf("Messages() failed: %v", err)
	}
	if len(msgs) != 1 || msgs[0] != "DL-Message" {
		t.Errorf("Messages() = %v, want [DL-Message]", msgs)
	}

	root, err := compiled.Resolve(ctx, "DL-Message")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}

	paths, err := extract.NewEnumerator().Enumerate(root, extract.AllTargets())
	if err != nil {
		t.Fatalf("Enumerate() failed: %v", err)
	}

	want := []extract.Path{
		{Fields: []string{"DL-Message", "transactionID"}},
		{Decisions: []string{"c1"}, Fields: []string{"DL-Message", "criticalExtensions", "c1", "nasList", "dedicatedInfoNAS"}},
		{Decisions: []string{"c1"}, Fields: []string{"DL-Message", "criticalExtensions", "c1", "nasList"}},
	}
	if len(paths) != len(want) {
		t.Fatalf("got %d paths, want %d: %v", len(paths), len(want), paths)
	}
	for i := range want {
		if !paths[i].Equal(want[i]) {
			t.Errorf("path %d = %+v, want %+v", i, paths[i], want[i])
		}
	}
}

func TestCompile_RecursiveTypeSharesIdentity(t *testing.T) {
	doc, err := Parse([]byte(`
types:
  Tree:
    kind: sequence
    fields:
      - name: value
        kind: integer
      - name: child
        ref: Tree
`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	compiled, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}

	root, err := compiled.Resolve(context.Background(), "Tree")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}

	seq, ok := root.(*schema.Sequence)
	if !ok {
		t.Fatalf("root is %T, want *schema.Sequence", root)
	}
	if seq.Fields[1].Type != root {
		t.Error("recursive reference should bind to the in-progress node")
	}

	// The cyclic graph must still enumerate without looping.
	paths, err := extract.NewEnumerator().Enumerate(root, extract.NewTargetSet(extract.TargetInteger))
	if err != nil {
		t.Fatalf("Enumerate() failed: %v", err)
	}
	if len(paths) != 1 || paths[0].String() != "Tree.value" {
		t.Errorf("paths = %v, want [Tree.value]", paths)
	}
}

func TestCompile_SharedTypeClonedPerPosition(t *testing.T) {
	doc, err := Parse([]byte(`
messages: [Msg]
types:
  Msg:
    kind: sequence
    fields:
      - name: first
        ref: Blob
      - name: second
        ref: Blob
  Blob:
    kind: octet-string
`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	compiled, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}
	root, _ := compiled.Resolve(context.Background(), "Msg")

	paths, err := extract.NewEnumerator().Enumerate(root, extract.NewTargetSet(extract.TargetOctetString))
	if err != nil {
		t.Fatalf("Enumerate() failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2: %v", len(paths), paths)
	}
	if paths[0].String() != "Msg.first" || paths[1].String() != "Msg.second" {
		t.Errorf("paths = %v, want [Msg.first Msg.second]", paths)
	}
}

func TestCompile_EmbeddedContents(t *testing.T) {
	doc, err := Parse([]byte(`
messages: [Msg]
types:
  Msg:
    kind: sequence
    fields:
      - name: dedicatedInfo
        kind: octet-string
        contents:
          ref: NAS-Message
  NAS-Message:
    kind: sequence
    fields:
      - name: nasID
        kind: integer
`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	compiled, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}
	root, _ := compiled.Resolve(context.Background(), "Msg")

	paths, err := extract.NewEnumerator().Enumerate(root,
		extract.NewTargetSet(extract.TargetOctetString, extract.TargetInteger))
	if err != nil {
		t.Fatalf("Enumerate() failed: %v", err)
	}

	want := []string{"Msg.dedicatedInfo.NAS-Message.nasID", "Msg.dedicatedInfo"}
	if len(paths) != len(want) {
		t.Fatalf("got %d paths, want %d: %v", len(paths), len(want), paths)
	}
	for i, w := range want {
		if paths[i].String() != w {
			t.Errorf("path %d = %q, want %q", i, paths[i].String(), w)
		}
	}
}

func TestCompile_AnonymousContents(t *testing.T) {
	doc, err := Parse([]byte(`
messages: [Msg]
types:
  Msg:
    kind: sequence
    fields:
      - name: dedicatedInfo
        kind: octet-string
        contents:
          kind: sequence
          fields:
            - name: nasID
              kind: integer
`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	compiled, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}
	root, _ := compiled.Resolve(context.Background(), "Msg")

	paths, err := extract.NewEnumerator().Enumerate(root,
		extract.NewTargetSet(extract.TargetInteger))
	if err != nil {
		t.Fatalf("Enumerate() failed: %v", err)
	}

	// An inline contents block without name or ref compiles to an unnamed
	// node; the walk labels it CONTAINER.
	if len(paths) != 1 || paths[0].String() != "Msg.dedicatedInfo.CONTAINER.nasID" {
		t.Errorf("paths = %v, want [Msg.dedicatedInfo.CONTAINER.nasID]", paths)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", ":\nnot yaml"},
		{"no types", "messages: [A]\ntypes: {}"},
		{"unknown message", "messages: [Ghost]\ntypes:\n  A: {kind: integer}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Error("Parse() should fail")
			}
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown ref", "types:\n  A:\n    kind: sequence\n    fields:\n      - name: f\n        ref: Ghost"},
		{"unsupported kind", "types:\n  A: {kind: real}"},
		{"missing kind", "types:\n  A:\n    kind: sequence\n    fields:\n      - name: f"},
		{"unnamed field", "types:\n  A:\n    kind: sequence\n    fields:\n      - kind: integer"},
		{"sequence-of without element", "types:\n  A: {kind: sequence-of}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Parse() failed: %v", err)
			}
			if _, err := Compile(doc); err == nil {
				t.Error("Compile() should fail")
			}
		})
	}
}

func TestResolve_UnknownMessage(t *testing.T) {
	doc, _ := Parse([]byte("types:\n  A: {kind: integer}"))
	compiled, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}

	_, err = compiled.Resolve(context.Background(), "Ghost")
	if !errors.Is(err, ports.ErrMessageNotFound) {
		t.Errorf("Resolve() error = %v, want ErrMessageNotFound", err)
	}
}
