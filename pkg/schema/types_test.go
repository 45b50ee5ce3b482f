package schema

import (
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindBitString, "bit-string"},
		{KindOctetString, "octet-string"},
		{KindInteger, "integer"},
		{KindOther, "other"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"bit-string", KindBitString, false},
		{"octet-string", KindOctetString, false},
		{"integer", KindInteger, false},
		{"boolean", KindOther, false},
		{"enumerated", KindOther, false},
		{"null", KindOther, false},
		{"other", KindOther, false},
		{"float", KindOther, true},
		{"", KindOther, true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSequenceOfVariableSize(t *testing.T) {
	elem := NewLeaf("item", KindInteger)

	tests := []struct {
		name  string
		lower *int64
		upper *int64
		want  bool
	}{
		{"no constraint", nil, nil, false},
		{"fixed size", Size(5), Size(5), false},
		{"bounded range", Size(1), Size(16), true},
		{"unbounded upper", Size(1), nil, true},
		{"unbounded lower", nil, Size(8), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSizedSequenceOf("list", elem, tt.lower, tt.upper)
			if got := s.VariableSize(); got != tt.want {
				t.Errorf("VariableSize() = %v, want %v", got, tt.want)
			}
		})
	}

	if NewSequenceOf("list", elem).VariableSize() {
		t.Error("NewSequenceOf should produce an unconstrained, non-variable container")
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid graph", func(t *testing.T) {
		msg := NewSequence("msg", []Field{
			{Name: "a", Type: NewLeaf("a", KindInteger)},
			{Name: "b", Type: NewChoice("b", []Field{
				{Name: "x", Type: NewLeaf("x", KindBitString)},
			})},
		})
		if err := Validate(msg); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("recursive graph terminates", func(t *testing.T) {
		rec := &Sequence{Name: "rec"}
		rec.Fields = []Field{{Name: "self", Type: rec}}
		if err := Validate(rec); err != nil {
			t.Errorf("Validate() on recursive graph = %v, want nil", err)
		}
	})

	t.Run("nil root", func(t *testing.T) {
		if err := Validate(nil); err == nil {
			t.Error("Validate(nil) should fail")
		}
	})

	t.Run("nil field type", func(t *testing.T) {
		msg := NewSequence("msg", []Field{{Name: "a"}})
		if err := Validate(msg); err == nil {
			t.Error("Validate() should report a field without a type")
		}
	})

	t.Run("empty choice", func(t *testing.T) {
		msg := NewChoice("c", nil)
		if err := Validate(msg); err == nil {
			t.Error("Validate() should report a choice without alternatives")
		}
	})

	t.Run("unnamed node", func(t *testing.T) {
		msg := NewSequence("msg", []Field{
			{Name: "a", Type: NewLeaf("", KindInteger)},
		})
		if err := Validate(msg); err == nil {
			t.Error("Validate() should report an unnamed field node")
		}
	})

	t.Run("unnamed contents allowed", func(t *testing.T) {
		msg := NewConstrainedString("blob", KindOctetString,
			NewSequence("", []Field{
				{Name: "f", Type: NewLeaf("f", KindInteger)},
			}))
		if err := Validate(msg); err != nil {
			t.Errorf("Validate() on anonymous contents = %v, want nil", err)
		}
	})

	t.Run("unnamed node below contents still rejected", func(t *testing.T) {
		msg := NewConstrainedString("blob", KindOctetString,
			NewSequence("", []Field{
				{Name: "f", Type: NewLeaf("", KindInteger)},
			}))
		if err := Validate(msg); err == nil {
			t.Error("Validate() should report an unnamed node nested in contents")
		}
	})
}
