package pawrpn

import (
	"bytes"
	"strings"
	"testing"
)

func newTestREPL() (*REPL, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewREPL(REPLConfig{}, &out, &errOut), &out, &errOut
}

func TestREPLEvaluate(t *testing.T) {
	repl, out, errOut := newTestREPL()

	if repl.HandleLine("2 2 +") {
		t.Fatal("Evaluation should not end the session")
	}
	if out.String() != "[4]\n" {
		t.Errorf("Expected [4], got %q", out.String())
	}

	repl.HandleLine("1 0 /")
	want := "ERROR:\n1 0 /\n    ^ division by zero\nstack: [1, 0]\n"
	if errOut.String() != want {
		t.Errorf("Expected %q, got %q", want, errOut.String())
	}
}

func TestREPLBlankLine(t *testing.T) {
	repl, out, errOut := newTestREPL()
	if repl.HandleLine("   ") {
		t.Error("Blank line should not end the session")
	}
	if out.Len() != 0 || errOut.Len() != 0 {
		t.Errorf("Blank line produced output: %q %q", out.String(), errOut.String())
	}
}

func TestREPLMacroDefinition(t *testing.T) {
	repl, out, errOut := newTestREPL()

	repl.HandleLine("!PI 3.1415")
	repl.HandleLine("!TAU PI 2 *")
	if errOut.Len() != 0 {
		t.Fatalf("Unexpected error output: %q", errOut.String())
	}
	repl.HandleLine("TAU")
	if out.String() != "[6.283]\n" {
		t.Errorf("Expected [6.283], got %q", out.String())
	}

	out.Reset()
	repl.HandleLine(":macros")
	want := "Macros:\n  PI -> 3.1415\n  TAU -> 3.1415 2 *\n"
	if out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}
}

func TestREPLMacroDefinitionErrors(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"!", "macro definition should start with a name"},
		{"!   ", "macro definition should start with a name"},
		{"!!x 1", "macro name can't start with a '!'"},
		{"!:x 1", "macro name can't start with a ':'"},
		{"!5 1", "macro name can't be a number"},
		{"!-2.5 1", "macro name can't be a number"},
		{"!dup 1", "dup is already reserved"},
		{"!X nope", "'nope' is undefined"},
		{"!X (1", "bracket placement is invalid"},
	}

	for _, tt := range tests {
		repl, _, errOut := newTestREPL()
		repl.HandleLine(tt.line)
		if errOut.String() != "ERROR:\n"+tt.want+"\n" {
			t.Errorf("%q: expected %q, got %q", tt.line, tt.want, errOut.String())
		}
		if repl.Calculator().Macros().Len() != 0 {
			t.Errorf("%q: nothing should have been defined", tt.line)
		}
	}
}

func TestREPLCommands(t *testing.T) {
	repl, out, _ := newTestREPL()

	repl.HandleLine(":debug")
	if !strings.HasPrefix(out.String(), "debug mode: ON\n") {
		t.Errorf("Expected debug on, got %q", out.String())
	}
	if !repl.Calculator().Debug() {
		t.Error("Calculator debug should be on")
	}

	out.Reset()
	repl.HandleLine("1 2 +")
	if !strings.Contains(out.String(), "[DEBUG:stack]") || !strings.HasSuffix(out.String(), "[3]\n") {
		t.Errorf("Expected trace followed by result, got %q", out.String())
	}

	out.Reset()
	repl.HandleLine(":d")
	if out.String() != "debug mode: OFF\n" {
		t.Errorf("Expected debug off, got %q", out.String())
	}

	out.Reset()
	repl.HandleLine(":m")
	if out.String() != "Macros:\n" {
		t.Errorf("Expected empty macro listing, got %q", out.String())
	}

	out.Reset()
	if !repl.HandleLine(":e") {
		t.Error(":e should end the session")
	}
	if out.String() != "exiting...\n" {
		t.Errorf("Expected exiting..., got %q", out.String())
	}

	repl, _, _ = newTestREPL()
	if !repl.HandleLine("  :exit  ") {
		t.Error(":exit should end the session")
	}
}

func TestREPLRunScript(t *testing.T) {
	repl, out, errOut := newTestREPL()

	script := "!SQ dup *\n3 SQ\n\n1 2 + ; sum\nfoo\n:exit\n4 SQ\n"
	if err := repl.RunScript(strings.NewReader(script)); err != nil {
		t.Fatalf("RunScript failed: %v", err)
	}

	want := "[9]\n[3]\nexiting...\n"
	if out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}
	if errOut.String() != "ERROR:\n'foo' is undefined\n" {
		t.Errorf("Unexpected error output %q", errOut.String())
	}
}
