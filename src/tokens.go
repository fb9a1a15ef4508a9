package pawrpn

import (
	"errors"
	"regexp"
	"sort"
	"strconv"
)

var numericPattern = regexp.MustCompile(`^-?\d*\.?\d+$`)

// IsNumeric reports whether token is a numeric literal: an optional
// leading minus, digits, an optional dot and at least one digit.
func IsNumeric(token string) bool {
	return token != "" && numericPattern.MatchString(token)
}

var operatorWords = map[string]Operator{
	"+":  OpPlus,
	"-":  OpMinus,
	"*":  OpMul,
	"/":  OpDiv,
	"//": OpFloorDiv,
	"%":  OpMod,
}

var intrinsicWords = map[string]Intrinsic{
	"dup":  IntrDup,
	"over": IntrOver,
	"drop": IntrDrop,
	"swap": IntrSwap,
}

var functionWords = map[string]Function{
	"sqrt": FnSqrt,
	"sin":  FnSin,
	"cos":  FnCos,
	"tan":  FnTan,
	"ctan": FnCtan,
	"asin": FnAsin,
	"acos": FnAcos,
	"atan": FnAtan,
	"log":  FnLog,
	"ln":   FnLn,
	"fact": FnFact,
	"pow":  FnPow,
	"root": FnRoot,
}

// IsReserved reports whether word is an operator symbol, intrinsic
// or function name and therefore cannot name a macro
func IsReserved(word string) bool {
	if _, ok := operatorWords[word]; ok {
		return true
	}
	if _, ok := intrinsicWords[word]; ok {
		return true
	}
	_, ok := functionWords[word]
	return ok
}

// ReservedWords returns every reserved word, sorted
func ReservedWords() []string {
	words := make([]string, 0, len(operatorWords)+len(intrinsicWords)+len(functionWords))
	for w := range operatorWords {
		words = append(words, w)
	}
	for w := range intrinsicWords {
		words = append(words, w)
	}
	for w := range functionWords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// classifyBuiltin resolves a token that does not depend on macro state.
// Returns KindUnresolved when the token is not a builtin.
func classifyBuiltin(token string, from int) Instruction {
	if IsNumeric(token) {
		v, err := strconv.ParseFloat(token, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Instruction{Kind: KindUnresolved, From: from}
		}
		return NumberInstruction(v, from)
	}
	if op, ok := operatorWords[token]; ok {
		return OperatorInstruction(op, from)
	}
	if in, ok := intrinsicWords[token]; ok {
		return IntrinsicInstruction(in, from)
	}
	if fn, ok := functionWords[token]; ok {
		return FunctionInstruction(fn, from)
	}
	return Instruction{Kind: KindUnresolved, From: from}
}

// Classify resolves a single token. Builtins win over macros; a token
// naming a macro in table yields KindMacro. table may be nil.
func Classify(token string, table *MacroTable) Instruction {
	in := classifyBuiltin(token, 0)
	if in.Kind != KindUnresolved {
		return in
	}
	if table != nil && table.Has(token) {
		return Instruction{Kind: KindMacro}
	}
	return in
}
