// Package pawrpn provides an interactive Reverse Polish Notation
// calculator that can be embedded in Go applications.
//
// This package re-exports the public API from the implementation in src/.
// For full documentation, see the implementation package.
//
// Basic usage:
//
//	calc := pawrpn.New(nil)
//	calc.AddMacro("PI", "3.1415")
//	stack, err := calc.Evaluate("PI 2 *", false)
package pawrpn

import (
	impl "github.com/phroun/pawrpn/src"
)

// =============================================================================
// CORE TYPES
// =============================================================================

// Calculator evaluates lines against its own macro table.
type Calculator = impl.Calculator

// Config holds configuration options for a Calculator.
type Config = impl.Config

// Instruction is one resolved unit of execution.
type Instruction = impl.Instruction

// Kind identifies the family of an instruction.
type Kind = impl.Kind

// Operator, Intrinsic and Function are the closed operation sets.
type (
	Operator  = impl.Operator
	Intrinsic = impl.Intrinsic
	Function  = impl.Function
)

// MacroTable maps macro names to resolved bodies.
type MacroTable = impl.MacroTable

// =============================================================================
// ERRORS
// =============================================================================

// Error is returned by parsing, macro registration and evaluation.
type Error = impl.Error

// ErrorKind classifies an Error.
type ErrorKind = impl.ErrorKind

const (
	ErrUnbalancedBrackets   = impl.ErrUnbalancedBrackets
	ErrUnresolvedToken      = impl.ErrUnresolvedToken
	ErrReservedName         = impl.ErrReservedName
	ErrInsufficientOperands = impl.ErrInsufficientOperands
	ErrDivisionByZero       = impl.ErrDivisionByZero
	ErrDomainViolation      = impl.ErrDomainViolation
)

// =============================================================================
// MACRO FILES
// =============================================================================

// MacroFileFormat selects the decoder for a macro file.
type MacroFileFormat = impl.MacroFileFormat

// MacroResult reports the outcome for one macro file entry.
type MacroResult = impl.MacroResult

const (
	FormatJSON = impl.FormatJSON
	FormatYAML = impl.FormatYAML
)

// =============================================================================
// REPL
// =============================================================================

// REPL is the interactive read-eval-print loop.
type REPL = impl.REPL

// REPLConfig configures a REPL.
type REPLConfig = impl.REPLConfig

// =============================================================================
// LOGGING
// =============================================================================

// Logger writes debug traces and diagnostics.
type Logger = impl.Logger

// LogCategory names the subsystem a message comes from.
type LogCategory = impl.LogCategory

const (
	CatParse = impl.CatParse
	CatMacro = impl.CatMacro
	CatStack = impl.CatStack
	CatMath  = impl.CatMath
	CatIO    = impl.CatIO
	CatApp   = impl.CatApp
)

// =============================================================================
// FUNCTIONS
// =============================================================================

var (
	// New creates a Calculator; a nil config uses DefaultConfig().
	New = impl.New

	// DefaultConfig returns the default configuration.
	DefaultConfig = impl.DefaultConfig

	// IsNumeric reports whether a token is a numeric literal.
	IsNumeric = impl.IsNumeric

	// IsReserved reports whether a word is an operator, intrinsic or function.
	IsReserved = impl.IsReserved

	// Readable renders an instruction as its canonical token.
	Readable = impl.Readable

	// FormatStack renders a stack as [a, b, c].
	FormatStack = impl.FormatStack

	// FormatNumber renders a single stack value.
	FormatNumber = impl.FormatNumber

	// ParseLogCategory looks up a log category by name.
	ParseLogCategory = impl.ParseLogCategory

	// IsKind reports whether err is an Error of the given kind.
	IsKind = impl.IsKind

	// FormatForPath picks a macro file format from its extension.
	FormatForPath = impl.FormatForPath

	// NewREPL creates a REPL with a fresh Calculator.
	NewREPL = impl.NewREPL

	// NewREPLWithCalculator creates a REPL around an existing Calculator.
	NewREPLWithCalculator = impl.NewREPLWithCalculator

	// IsInteractive reports whether a file is a terminal.
	IsInteractive = impl.IsInteractive
)
