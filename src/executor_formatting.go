package pawrpn

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Readable renders an instruction as the token that classifies back to it
func Readable(in Instruction) string {
	switch in.Kind {
	case KindNumber:
		return formatLiteral(in.Value)
	case KindOperator:
		return operatorToken(in.Operator)
	case KindIntrinsic:
		return intrinsicToken(in.Intrinsic)
	case KindFunction:
		return functionToken(in.Function)
	case KindMacro, KindUnresolved:
	}
	return fmt.Sprintf("<%s>", in.Kind)
}

func operatorToken(op Operator) string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpFloorDiv:
		return "//"
	case OpMod:
		return "%"
	}
	return fmt.Sprintf("<operator %d>", int(op))
}

func intrinsicToken(in Intrinsic) string {
	switch in {
	case IntrDup:
		return "dup"
	case IntrOver:
		return "over"
	case IntrDrop:
		return "drop"
	case IntrSwap:
		return "swap"
	}
	return fmt.Sprintf("<intrinsic %d>", int(in))
}

func functionToken(fn Function) string {
	switch fn {
	case FnSqrt:
		return "sqrt"
	case FnSin:
		return "sin"
	case FnCos:
		return "cos"
	case FnTan:
		return "tan"
	case FnCtan:
		return "ctan"
	case FnAsin:
		return "asin"
	case FnAcos:
		return "acos"
	case FnAtan:
		return "atan"
	case FnLog:
		return "log"
	case FnLn:
		return "ln"
	case FnFact:
		return "fact"
	case FnPow:
		return "pow"
	case FnRoot:
		return "root"
	}
	return fmt.Sprintf("<function %d>", int(fn))
}

// formatLiteral prints a number in plain decimal so it tokenizes as a
// numeric literal again
func formatLiteral(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatNumber prints a number for display: shortest round-trip form,
// switching to exponent notation for very large and very small values
func FormatNumber(v float64) string {
	abs := math.Abs(v)
	if math.IsNaN(v) || math.IsInf(v, 0) || v == 0 || (abs >= 1e-6 && abs < 1e21) {
		if v == 0 {
			return "0"
		}
		return formatLiteral(v)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	// 1e-07 -> 1e-7
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

// FormatStack prints a stack as [a, b, c]
func FormatStack(stack []float64) string {
	parts := make([]string, len(stack))
	for i, v := range stack {
		parts[i] = FormatNumber(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

var traceDumper = spew.ConfigState{
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// dumpInstruction renders the raw instruction record for trace output
func dumpInstruction(in Instruction) string {
	return traceDumper.Sprintf("%+v", in)
}
