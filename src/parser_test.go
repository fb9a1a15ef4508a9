package pawrpn

import (
	"testing"
)

func TestCheckBrackets(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", true},
		{"1 2 +", true},
		{"(1 2 +)", true},
		{"((1) (2)) +", true},
		{"(", false},
		{")", false},
		{")(", false},
		{"(1 2 + ))(", false},
	}

	for _, tt := range tests {
		if got := CheckBrackets(tt.line); got != tt.want {
			t.Errorf("CheckBrackets(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestStripBrackets(t *testing.T) {
	if got := StripBrackets("((1 2) +)"); got != "1 2 +" {
		t.Errorf("StripBrackets = %q", got)
	}
	// brackets glue tokens together once removed
	if got := Tokenize(StripBrackets("1)(2")); len(got) != 1 || got[0] != "12" {
		t.Errorf("Expected a single token 12, got %q", got)
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("  1\t2 \n +  ")
	want := []string{"1", "2", "+"}
	if len(got) != len(want) {
		t.Fatalf("Tokenize = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokenColumn(t *testing.T) {
	tests := []struct {
		line  string
		index int
		want  int
	}{
		{"1 0 /", 0, 0},
		{"1 0 /", 2, 4},
		{"  a  bb c", 0, 2},
		{"  a  bb c", 2, 8},
		{"ä b", 1, 2},
		{"1 2", 5, -1},
		{"", 0, -1},
	}

	for _, tt := range tests {
		if got := TokenColumn(tt.line, tt.index); got != tt.want {
			t.Errorf("TokenColumn(%q, %d) = %d, want %d", tt.line, tt.index, got, tt.want)
		}
	}
}

func TestParseExpandsMacros(t *testing.T) {
	table := NewMacroTable(nil)
	body := []Instruction{
		NumberInstruction(1, 0),
		NumberInstruction(1, 1),
		OperatorInstruction(OpPlus, 2),
	}
	if err := table.Define("TWO", body); err != nil {
		t.Fatalf("Define failed: %v", err)
	}

	p := NewParser(table, nil)
	program, err := p.Parse("3 TWO *")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(program) != 5 {
		t.Fatalf("Expected 5 instructions, got %d", len(program))
	}

	wantFrom := []int{0, 1, 1, 1, 2}
	for i, in := range program {
		if in.From != wantFrom[i] {
			t.Errorf("instruction %d (%s) From = %d, want %d", i, in, in.From, wantFrom[i])
		}
	}

	// the stored body keeps its own positions
	stored, _ := table.Lookup("TWO")
	if stored[2].From != 2 {
		t.Errorf("Expansion modified the stored body: %+v", stored)
	}
}

func TestParseWithoutMacroTable(t *testing.T) {
	p := NewParser(nil, nil)
	program, err := p.Parse("1 2 + ; PI")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(program) != 3 {
		t.Errorf("Expected 3 instructions, got %d", len(program))
	}
	if _, err := p.Parse("PI"); !IsKind(err, ErrUnresolvedToken) {
		t.Errorf("Expected unresolved token, got %v", err)
	}
}
