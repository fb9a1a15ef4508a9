package pawrpn

import (
	"sort"
	"sync"
)

// MacroTable maps macro names to their resolved instruction bodies.
// Bodies are expanded when they are defined, so a stored body never
// contains macro references.
type MacroTable struct {
	mu     sync.RWMutex
	macros map[string][]Instruction
	logger *Logger
}

// NewMacroTable creates an empty macro table
func NewMacroTable(logger *Logger) *MacroTable {
	if logger == nil {
		logger = NewLogger(false)
	}
	return &MacroTable{
		macros: make(map[string][]Instruction),
		logger: logger,
	}
}

// Define stores body under name, replacing any previous definition.
// Reserved words are rejected.
func (mt *MacroTable) Define(name string, body []Instruction) error {
	if IsReserved(name) {
		return newError(ErrReservedName, "%s is already reserved", name)
	}

	stored := make([]Instruction, len(body))
	copy(stored, body)

	mt.mu.Lock()
	_, replaced := mt.macros[name]
	mt.macros[name] = stored
	logger := mt.logger
	mt.mu.Unlock()

	if replaced {
		logger.DebugCat(CatMacro, "Replaced macro \"%s\" (%d instructions)", name, len(stored))
	} else {
		logger.DebugCat(CatMacro, "Defined macro \"%s\" (%d instructions)", name, len(stored))
	}
	return nil
}

func (mt *MacroTable) setLogger(logger *Logger) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.logger = logger
}

// Lookup returns a copy of the body stored under name
func (mt *MacroTable) Lookup(name string) ([]Instruction, bool) {
	mt.mu.RLock()
	defer mt.mu.RUnlock()

	body, exists := mt.macros[name]
	if !exists {
		return nil, false
	}
	out := make([]Instruction, len(body))
	copy(out, body)
	return out, true
}

// Has checks if a macro exists
func (mt *MacroTable) Has(name string) bool {
	mt.mu.RLock()
	defer mt.mu.RUnlock()

	_, exists := mt.macros[name]
	return exists
}

// Len returns the number of defined macros
func (mt *MacroTable) Len() int {
	mt.mu.RLock()
	defer mt.mu.RUnlock()
	return len(mt.macros)
}

// Names returns all macro names, sorted
func (mt *MacroTable) Names() []string {
	mt.mu.RLock()
	defer mt.mu.RUnlock()

	names := make([]string, 0, len(mt.macros))
	for name := range mt.macros {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Listing renders every macro body as canonical tokens
func (mt *MacroTable) Listing() map[string][]string {
	mt.mu.RLock()
	defer mt.mu.RUnlock()

	listing := make(map[string][]string, len(mt.macros))
	for name, body := range mt.macros {
		tokens := make([]string, len(body))
		for i, in := range body {
			tokens[i] = Readable(in)
		}
		listing[name] = tokens
	}
	return listing
}
