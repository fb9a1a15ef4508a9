package pawrpn

import (
	"fmt"
	"math"
)

// check inspects the stack before an instruction runs. It must not
// modify the stack.
type check func(stack []float64) *Error

// rule describes how an instruction executes: its checks run in order
// and the first failure stops evaluation; apply runs only if all pass.
type rule struct {
	checks []check
	apply  func(stack []float64) []float64
}

// Executor runs resolved instructions against a private stack
type Executor struct {
	logger    *Logger
	showStack bool
}

// NewExecutor creates a new executor
func NewExecutor(logger *Logger) *Executor {
	if logger == nil {
		logger = NewLogger(false)
	}
	return &Executor{
		logger:    logger,
		showStack: true,
	}
}

// withLogger returns a copy of the executor that traces through logger
func (e *Executor) withLogger(logger *Logger) *Executor {
	cp := *e
	cp.logger = logger
	return &cp
}

// Run executes program on a fresh stack. line is the original input and
// is only used to position errors.
func (e *Executor) Run(line string, program []Instruction) ([]float64, error) {
	stack := make([]float64, 0, len(program))
	trace := e.logger.IsEnabled() && e.logger.IsCategoryEnabled(CatStack)

	for _, in := range program {
		if in.Kind == KindNumber {
			stack = append(stack, in.Value)
			if trace {
				e.logger.DebugCat(CatStack, "Encountered: %s -> current stack: %s", Readable(in), FormatStack(stack))
			}
			continue
		}

		r, err := ruleFor(in)
		if err != nil {
			return nil, err
		}

		for _, c := range r.checks {
			if failure := c(stack); failure != nil {
				return nil, e.positionError(failure, line, in, stack)
			}
		}
		stack = r.apply(stack)
		if trace {
			e.logger.DebugCat(CatStack, "Encountered: %s -> current stack: %s", Readable(in), FormatStack(stack))
		}
	}

	return stack, nil
}

// positionError attaches the source line, caret column and a snapshot
// of the stack to a failed check
func (e *Executor) positionError(failure *Error, line string, in Instruction, stack []float64) *Error {
	column := TokenColumn(line, in.From)
	if column < 0 {
		column = 0
	}
	snapshot := make([]float64, len(stack))
	copy(snapshot, stack)

	failure.Line = line
	failure.Column = column
	failure.Index = in.From
	failure.Stack = snapshot
	failure.hideStack = !e.showStack

	cat := CatStack
	if failure.Kind == ErrDomainViolation || failure.Kind == ErrDivisionByZero {
		cat = CatMath
	}
	e.logger.DebugCat(cat, "Check failed for %s at token %d: %s", Readable(in), in.From, failure.Message)
	return failure
}

// ruleFor returns the execution rule of a non-literal instruction
func ruleFor(in Instruction) (rule, error) {
	switch in.Kind {
	case KindOperator:
		return operatorRule(in.Operator), nil
	case KindIntrinsic:
		return intrinsicRule(in.Intrinsic), nil
	case KindFunction:
		return functionRule(in.Function), nil
	case KindNumber, KindMacro, KindUnresolved:
	}
	return rule{}, fmt.Errorf("instruction of kind %s cannot be executed", in.Kind)
}

// ==================== common checks ====================

func enoughItems(n int) check {
	return func(s []float64) *Error {
		if len(s) < n {
			return newError(ErrInsufficientOperands, "Expected at least %d items on the stack", n)
		}
		return nil
	}
}

func topAtLeast(n float64) check {
	return func(s []float64) *Error {
		if !(s[len(s)-1] >= n) {
			return newError(ErrDomainViolation, "Expected number that is greater or equal %s", FormatNumber(n))
		}
		return nil
	}
}

func topAtMost(n float64) check {
	return func(s []float64) *Error {
		if !(s[len(s)-1] <= n) {
			return newError(ErrDomainViolation, "Expected number that is lesser or equal %s", FormatNumber(n))
		}
		return nil
	}
}

func topNonZero(kind ErrorKind, message string) check {
	return func(s []float64) *Error {
		if s[len(s)-1] == 0 {
			return newError(kind, "%s", message)
		}
		return nil
	}
}

// binary pops b then a and pushes f(a, b)
func binary(f func(a, b float64) float64) func([]float64) []float64 {
	return func(s []float64) []float64 {
		n := len(s)
		a, b := s[n-2], s[n-1]
		return append(s[:n-2], f(a, b))
	}
}

// unary replaces the top item with f(top)
func unary(f func(x float64) float64) func([]float64) []float64 {
	return func(s []float64) []float64 {
		n := len(s)
		return append(s[:n-1], f(s[n-1]))
	}
}

// ==================== operators ====================

func operatorRule(op Operator) rule {
	switch op {
	case OpPlus:
		return rule{
			checks: []check{enoughItems(2)},
			apply:  binary(func(a, b float64) float64 { return a + b }),
		}
	case OpMinus:
		return rule{
			checks: []check{enoughItems(2)},
			apply:  binary(func(a, b float64) float64 { return a - b }),
		}
	case OpMul:
		return rule{
			checks: []check{enoughItems(2)},
			apply:  binary(func(a, b float64) float64 { return a * b }),
		}
	case OpDiv:
		return rule{
			checks: []check{enoughItems(2), topNonZero(ErrDivisionByZero, "division by zero")},
			apply:  binary(func(a, b float64) float64 { return a / b }),
		}
	case OpFloorDiv:
		// no zero check: floor(a/0) is ±Inf or NaN
		return rule{
			checks: []check{enoughItems(2)},
			apply:  binary(func(a, b float64) float64 { return math.Floor(a / b) }),
		}
	case OpMod:
		return rule{
			checks: []check{enoughItems(2), topNonZero(ErrDivisionByZero, "modulo by zero")},
			apply:  binary(math.Mod),
		}
	}
	panic(fmt.Sprintf("unknown operator %d", int(op)))
}

// ==================== intrinsics ====================

func intrinsicRule(intr Intrinsic) rule {
	switch intr {
	case IntrDup:
		return rule{
			checks: []check{enoughItems(1)},
			apply: func(s []float64) []float64 {
				return append(s, s[len(s)-1])
			},
		}
	case IntrDrop:
		return rule{
			checks: []check{enoughItems(1)},
			apply: func(s []float64) []float64 {
				return s[:len(s)-1]
			},
		}
	case IntrOver:
		return rule{
			checks: []check{enoughItems(2)},
			apply: func(s []float64) []float64 {
				return append(s, s[len(s)-2])
			},
		}
	case IntrSwap:
		return rule{
			checks: []check{enoughItems(2)},
			apply: func(s []float64) []float64 {
				n := len(s)
				s[n-1], s[n-2] = s[n-2], s[n-1]
				return s
			},
		}
	}
	panic(fmt.Sprintf("unknown intrinsic %d", int(intr)))
}
