package pawrpn

import (
	"strings"
	"unicode"
)

// CommentMarker ends a line: tokens after it are ignored
const CommentMarker = ";"

// Parser resolves a line into instructions, expanding macro references
// from its macro table
type Parser struct {
	macros      *MacroTable
	logger      *Logger
	allowMacros bool
}

// NewParser creates a new parser. macros may be nil, in which case
// every non-builtin token is undefined.
func NewParser(macros *MacroTable, logger *Logger) *Parser {
	if logger == nil {
		logger = NewLogger(false)
	}
	return &Parser{
		macros:      macros,
		logger:      logger,
		allowMacros: macros != nil,
	}
}

// withLogger returns a copy of the parser that traces through logger
func (p *Parser) withLogger(logger *Logger) *Parser {
	cp := *p
	cp.logger = logger
	return &cp
}

// CheckBrackets reports whether every ')' closes an earlier '(' and
// every '(' is closed
func CheckBrackets(line string) bool {
	depth := 0
	for _, ch := range line {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// StripBrackets removes all brackets; they carry no grouping meaning
func StripBrackets(line string) string {
	return strings.Map(func(r rune) rune {
		if r == '(' || r == ')' {
			return -1
		}
		return r
	}, line)
}

// Tokenize splits a line on runs of whitespace
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, unicode.IsSpace)
}

// Parse resolves line into an instruction sequence. Parsing stops
// silently at the comment marker and fails at the first undefined token.
func (p *Parser) Parse(line string) ([]Instruction, error) {
	if !CheckBrackets(line) {
		p.logger.DebugCat(CatParse, "Bracket check failed for %q", line)
		return nil, newError(ErrUnbalancedBrackets, "bracket placement is invalid")
	}

	tokens := Tokenize(StripBrackets(line))
	p.logger.DebugCat(CatParse, "Split into %q", tokens)

	trace := p.logger.IsEnabled() &&
		(p.logger.IsCategoryEnabled(CatParse) || p.logger.IsCategoryEnabled(CatMacro))
	parsed := make([]Instruction, 0, len(tokens))
	for idx, token := range tokens {
		if token == CommentMarker {
			p.logger.DebugCat(CatParse, "Comment marker at token %d, ignoring %d remaining tokens", idx, len(tokens)-idx-1)
			break
		}

		in := classifyBuiltin(token, idx)
		if in.Kind != KindUnresolved {
			parsed = append(parsed, in)
			if trace {
				p.logger.TraceCat(CatParse, "Parsed %s - %s", dumpInstruction(in), Readable(in))
			}
			continue
		}

		if body, ok := p.lookupMacro(token); ok {
			p.logger.DebugCat(CatMacro, "Expanding macro %s at token %d", token, idx)
			for _, s := range body {
				// attribute the expansion to the referencing token
				s.From = idx
				parsed = append(parsed, s)
				if trace {
					p.logger.TraceCat(CatMacro, "  parsed %s - %s", dumpInstruction(s), Readable(s))
				}
			}
			continue
		}

		p.logger.DebugCat(CatParse, "Undefined token %q at %d", token, idx)
		return nil, newError(ErrUnresolvedToken, "'%s' is undefined", token)
	}

	return parsed, nil
}

func (p *Parser) lookupMacro(name string) ([]Instruction, bool) {
	if !p.allowMacros || p.macros == nil {
		return nil, false
	}
	return p.macros.Lookup(name)
}

// TokenColumn returns the character offset of the index-th
// whitespace-delimited token of line, or -1 if there is no such token
func TokenColumn(line string, index int) int {
	count := 0
	inToken := false
	col := 0
	for _, ch := range line {
		if unicode.IsSpace(ch) {
			inToken = false
		} else if !inToken {
			inToken = true
			if count == index {
				return col
			}
			count++
		}
		col++
	}
	return -1
}
