package pawrpn

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Kind identifies which family an instruction belongs to
type Kind int

const (
	KindNumber    Kind = iota // Numeric literal
	KindOperator              // Arithmetic operator
	KindIntrinsic             // Stack manipulation primitive
	KindFunction              // Math function
	KindMacro                 // Macro reference (only produced by the classifier)
	KindUnresolved            // Token that is none of the above
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindOperator:
		return "operator"
	case KindIntrinsic:
		return "intrinsic"
	case KindFunction:
		return "function"
	case KindMacro:
		return "macro"
	case KindUnresolved:
		return "unresolved"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Operator is one of the six arithmetic operators
type Operator int

const (
	OpPlus Operator = iota
	OpMinus
	OpMul
	OpDiv
	OpFloorDiv
	OpMod
)

// Intrinsic is one of the stack manipulation primitives
type Intrinsic int

const (
	IntrDup Intrinsic = iota
	IntrOver
	IntrDrop
	IntrSwap
)

// Function is one of the math functions
type Function int

const (
	FnSqrt Function = iota
	FnSin
	FnCos
	FnTan
	FnCtan
	FnAsin
	FnAcos
	FnAtan
	FnLog
	FnLn
	FnFact
	FnPow
	FnRoot
)

// Instruction is one resolved unit of execution.
// Only the payload field matching Kind is meaningful.
type Instruction struct {
	Kind      Kind
	Value     float64
	Operator  Operator
	Intrinsic Intrinsic
	Function  Function
	// From is the whitespace-token index in the evaluated line this
	// instruction is attributed to. Macro bodies are re-tagged with the
	// index of the token that referenced the macro.
	From int
}

// NumberInstruction creates a numeric literal instruction
func NumberInstruction(v float64, from int) Instruction {
	return Instruction{Kind: KindNumber, Value: v, From: from}
}

// OperatorInstruction creates an operator instruction
func OperatorInstruction(op Operator, from int) Instruction {
	return Instruction{Kind: KindOperator, Operator: op, From: from}
}

// IntrinsicInstruction creates an intrinsic instruction
func IntrinsicInstruction(in Intrinsic, from int) Instruction {
	return Instruction{Kind: KindIntrinsic, Intrinsic: in, From: from}
}

// FunctionInstruction creates a function instruction
func FunctionInstruction(fn Function, from int) Instruction {
	return Instruction{Kind: KindFunction, Function: fn, From: from}
}

func (in Instruction) String() string {
	return Readable(in)
}

// Config holds configuration for a Calculator
type Config struct {
	Debug       bool      // Emit trace output for every evaluation
	AllowMacros bool      // Resolve macro references while parsing
	ShowStack   bool      // Include the stack contents in evaluation errors
	Output      io.Writer // Destination for debug trace output (nil = stdout)
	ErrOutput   io.Writer // Destination for warnings and errors (nil = stderr)

	// DebugCategories limits tracing to these categories (nil = all)
	DebugCategories []LogCategory
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Debug:       false,
		AllowMacros: true,
		ShowStack:   true,
	}
}

// ErrorKind classifies a failure
type ErrorKind int

const (
	ErrUnbalancedBrackets ErrorKind = iota + 1
	ErrUnresolvedToken
	ErrReservedName
	ErrInsufficientOperands
	ErrDivisionByZero
	ErrDomainViolation
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnbalancedBrackets:
		return "unbalanced brackets"
	case ErrUnresolvedToken:
		return "unresolved token"
	case ErrReservedName:
		return "reserved name"
	case ErrInsufficientOperands:
		return "insufficient operands"
	case ErrDivisionByZero:
		return "division by zero"
	case ErrDomainViolation:
		return "domain violation"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// IsEvaluation reports whether the kind is raised while executing
// instructions rather than while parsing or registering them
func (k ErrorKind) IsEvaluation() bool {
	return k == ErrInsufficientOperands || k == ErrDivisionByZero || k == ErrDomainViolation
}

// Error represents a parse, registration or evaluation failure.
// Evaluation failures also carry the position of the offending token
// and the stack at the moment of failure.
type Error struct {
	Kind    ErrorKind
	Message string
	Line    string    // Original input line (evaluation errors only)
	Column  int       // Character offset of the offending token in Line
	Index   int       // Token index of the offending instruction
	Stack   []float64 // Stack contents when the check failed
	// hideStack suppresses the stack line in Error()
	hideStack bool
}

func (e *Error) Error() string {
	if !e.Kind.IsEvaluation() {
		return e.Message
	}
	var sb strings.Builder
	sb.WriteString(e.Line)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", e.Column))
	sb.WriteString("^ ")
	sb.WriteString(e.Message)
	if !e.hideStack {
		sb.WriteString("\nstack: ")
		sb.WriteString(FormatStack(e.Stack))
	}
	return sb.String()
}

// IsKind reports whether err is an *Error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
