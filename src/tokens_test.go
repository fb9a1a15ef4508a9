package pawrpn

import (
	"testing"
)

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"1", true},
		{"42", true},
		{"-1", true},
		{"1.5", true},
		{".5", true},
		{"-.5", true},
		{"007", true},
		{"", false},
		{"-", false},
		{".", false},
		{"1.", false},
		{"+1", false},
		{"1e5", false},
		{"1.2.3", false},
		{"--1", false},
		{"abc", false},
		{" 1", false},
	}

	for _, tt := range tests {
		if got := IsNumeric(tt.token); got != tt.want {
			t.Errorf("IsNumeric(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestClassifyOrder(t *testing.T) {
	table := NewMacroTable(nil)
	if err := table.Define("TWO", []Instruction{NumberInstruction(2, 0)}); err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	// a numeric macro name can be stored but never wins over the literal
	if err := table.Define("5", []Instruction{NumberInstruction(6, 0)}); err != nil {
		t.Fatalf("Define failed: %v", err)
	}

	tests := []struct {
		token string
		kind  Kind
	}{
		{"5", KindNumber},
		{"-2.5", KindNumber},
		{"//", KindOperator},
		{"%", KindOperator},
		{"swap", KindIntrinsic},
		{"root", KindFunction},
		{"TWO", KindMacro},
		{"two", KindUnresolved},
		{"Dup", KindUnresolved},
	}

	for _, tt := range tests {
		if got := Classify(tt.token, table); got.Kind != tt.kind {
			t.Errorf("Classify(%q) = %s, want %s", tt.token, got.Kind, tt.kind)
		}
	}

	if got := Classify("TWO", nil); got.Kind != KindUnresolved {
		t.Errorf("Classify without a table = %s, want unresolved", got.Kind)
	}
}

func TestReadableRoundTrip(t *testing.T) {
	tokens := append(ReservedWords(), "0", "1", "-1", "0.5", "-2.25", "3.1415", "1024")

	for _, token := range tokens {
		in := Classify(token, nil)
		if in.Kind == KindUnresolved {
			t.Errorf("%q did not classify", token)
			continue
		}
		if got := Readable(in); got != token {
			t.Errorf("Readable(Classify(%q)) = %q", token, got)
		}
		again := Classify(Readable(in), nil)
		if again.Kind != in.Kind || Readable(again) != Readable(in) {
			t.Errorf("Reclassifying %q changed the instruction", token)
		}
	}
}

func TestReadableNormalizesLiterals(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{".5", "0.5"},
		{"-.25", "-0.25"},
		{"007", "7"},
		{"1.50", "1.5"},
		{"-0", "-0"},
		{"123456789012345678901234567890", "123456789012345680000000000000"},
	}

	for _, tt := range tests {
		in := Classify(tt.token, nil)
		if in.Kind != KindNumber {
			t.Errorf("%q classified as %s", tt.token, in.Kind)
			continue
		}
		got := Readable(in)
		if got != tt.want {
			t.Errorf("Readable(Classify(%q)) = %q, want %q", tt.token, got, tt.want)
		}
		if again := Classify(got, nil); again.Kind != KindNumber || again.Value != in.Value {
			t.Errorf("%q reads back as %v, want %v", got, again.Value, in.Value)
		}
	}
}

func TestReservedWords(t *testing.T) {
	words := ReservedWords()
	if len(words) != 23 {
		t.Errorf("Expected 23 reserved words, got %d: %v", len(words), words)
	}
	for _, w := range words {
		if !IsReserved(w) {
			t.Errorf("%q listed but not reserved", w)
		}
	}
	for _, w := range []string{"PI", "x", "1", ";", "(", ":exit"} {
		if IsReserved(w) {
			t.Errorf("%q should not be reserved", w)
		}
	}
}
