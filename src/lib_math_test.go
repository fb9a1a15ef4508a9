package pawrpn

import (
	"math"
	"testing"
)

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    float64
		want float64
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{-4, -24},
		{20, 2432902008176640000},
	}
	for _, tt := range tests {
		if got := factorial(tt.n); got != tt.want {
			t.Errorf("factorial(%v) = %v, want %v", tt.n, got, tt.want)
		}
	}

	if got := factorial(170); math.IsInf(got, 0) {
		t.Errorf("factorial(170) should be finite, got %v", got)
	}
	if got := factorial(171); !math.IsInf(got, 1) {
		t.Errorf("factorial(171) = %v, want +Inf", got)
	}
	if got := factorial(math.Inf(-1)); !math.IsInf(got, -1) {
		t.Errorf("factorial(-Inf) = %v, want -Inf", got)
	}
}

func TestRootDefined(t *testing.T) {
	tests := []struct {
		radicand, degree float64
		want             bool
	}{
		{4, 2, true},
		{0, 2, true},
		{-8, 3, true},
		{-4, 2, false},
		{-4, 2.5, false},
		{-4, 0.5, true}, // 1/0.5 is an integer
		{-1, -3, true},
		{-1, 4, false},
	}
	for _, tt := range tests {
		if got := rootDefined(tt.radicand, tt.degree); got != tt.want {
			t.Errorf("rootDefined(%v, %v) = %v, want %v", tt.radicand, tt.degree, got, tt.want)
		}
	}
}

func TestRoots(t *testing.T) {
	calc := New(nil)

	tests := []struct {
		line string
		want string
	}{
		{"9 2 root", "[3]"},
		{"8 3 root", "[2]"},
		{"-8 3 root", "[-2]"},
		{"27 3 root", "[3]"},
		{"1000 3 root", "[10]"},
		{"8 -3 root", "[0.5]"},
		{"16 4 root", "[2]"},
		{"32 5 root", "[2]"},
		{"-32 5 root", "[-2]"},
		{"1024 10 root", "[2]"},
		{"-4 0.5 root", "[16]"},
		{"2 2 root", "[1.4142135623730951]"},
		{"1 0 root", "[NaN]"},
	}
	for _, tt := range tests {
		stack, err := calc.Evaluate(tt.line, false)
		if err != nil {
			t.Errorf("%s: %v", tt.line, err)
			continue
		}
		if got := FormatStack(stack); got != tt.want {
			t.Errorf("%s = %s, want %s", tt.line, got, tt.want)
		}
	}
}

func TestPowUnitBase(t *testing.T) {
	calc := New(nil)

	tests := []struct {
		line string
		want string
	}{
		{"1 1 0 // pow", "[NaN]"},
		{"-1 1 0 // pow", "[NaN]"},
		{"1 -1 0 // pow", "[NaN]"},
		{"1 2 atan pow", "[NaN]"},
		{"1 5 pow", "[1]"},
		{"-1 3 pow", "[-1]"},
		{"2 1 0 // pow", "[Infinity]"},
	}
	for _, tt := range tests {
		stack, err := calc.Evaluate(tt.line, false)
		if err != nil {
			t.Errorf("%s: %v", tt.line, err)
			continue
		}
		if got := FormatStack(stack); got != tt.want {
			t.Errorf("%s = %s, want %s", tt.line, got, tt.want)
		}
	}
}

func TestTrigonometry(t *testing.T) {
	calc := New(nil)

	tests := []struct {
		line string
		want float64
	}{
		{"0 sin", 0},
		{"0 cos", 1},
		{"0 tan", 0},
		{"1 ctan", 1 / math.Tan(1)},
		{"1 asin", math.Pi / 2},
		{"1 acos", 0},
		// atan evaluates acos
		{"0.5 atan", math.Acos(0.5)},
	}
	for _, tt := range tests {
		stack, err := calc.Evaluate(tt.line, false)
		if err != nil {
			t.Errorf("%s: %v", tt.line, err)
			continue
		}
		if len(stack) != 1 || math.Abs(stack[0]-tt.want) > 1e-12 {
			t.Errorf("%s = %v, want [%v]", tt.line, stack, tt.want)
		}
	}

	// no domain check on atan
	stack, err := calc.Evaluate("2 atan", false)
	if err != nil {
		t.Fatalf("atan should not check its domain: %v", err)
	}
	if len(stack) != 1 || !math.IsNaN(stack[0]) {
		t.Errorf("Expected [NaN], got %v", stack)
	}
	if FormatStack(stack) != "[NaN]" {
		t.Errorf("Expected [NaN], got %s", FormatStack(stack))
	}
}

func TestNonFiniteResults(t *testing.T) {
	calc := New(nil)

	stack, err := calc.Evaluate("1 0 //", false)
	if err != nil {
		t.Fatalf("floor division by zero should not fail: %v", err)
	}
	if FormatStack(stack) != "[Infinity]" {
		t.Errorf("Expected [Infinity], got %s", FormatStack(stack))
	}

	stack, err = calc.Evaluate("200 fact", false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if FormatStack(stack) != "[Infinity]" {
		t.Errorf("Expected [Infinity], got %s", FormatStack(stack))
	}
}
