package pawrpn

import "sync"

// Calculator is an RPN evaluator with its own macro table. It may be
// shared by goroutines: the debug state is swapped, never mutated.
type Calculator struct {
	macros *MacroTable

	mu       sync.RWMutex
	debug    bool
	logger   *Logger
	parser   *Parser
	executor *Executor
}

// New creates a new Calculator
func New(config *Config) *Calculator {
	if config == nil {
		config = DefaultConfig()
	}

	logger := NewLogger(config.Debug)
	logger.SetOutput(config.Output, config.ErrOutput)
	if len(config.DebugCategories) > 0 {
		for _, cat := range allCategories {
			logger.DisableCategory(cat)
		}
		for _, cat := range config.DebugCategories {
			logger.EnableCategory(cat)
		}
	}

	macros := NewMacroTable(logger)
	parser := NewParser(macros, logger)
	parser.allowMacros = config.AllowMacros
	executor := NewExecutor(logger)
	executor.showStack = config.ShowStack

	return &Calculator{
		macros:   macros,
		debug:    config.Debug,
		logger:   logger,
		parser:   parser,
		executor: executor,
	}
}

// Logger returns the calculator's current logger
func (c *Calculator) Logger() *Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.logger
}

// current returns the parser, executor and logger in use and whether
// debug is on
func (c *Calculator) current() (*Parser, *Executor, *Logger, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.parser, c.executor, c.logger, c.debug
}

// Macros returns the calculator's macro table
func (c *Calculator) Macros() *MacroTable {
	return c.macros
}

// SetDebug switches tracing on or off for every later evaluation
func (c *Calculator) SetDebug(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.debug = enabled
	c.logger = c.logger.WithDebug(enabled)
	c.parser = c.parser.withLogger(c.logger)
	c.executor = c.executor.withLogger(c.logger)
	c.macros.setLogger(c.logger)
}

// Debug reports whether tracing is on
func (c *Calculator) Debug() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.debug
}

// Parse resolves line into instructions without executing them
func (c *Calculator) Parse(line string) ([]Instruction, error) {
	parser, _, _, _ := c.current()
	return parser.Parse(line)
}

// Evaluate parses and executes line on a fresh stack and returns the
// final stack. debug traces every step to the logger's output; it
// never changes the result.
func (c *Calculator) Evaluate(line string, debug bool) ([]float64, error) {
	parser, executor, logger, on := c.current()
	if debug && !on {
		logger = logger.WithDebug(true)
		parser = parser.withLogger(logger)
		executor = executor.withLogger(logger)
	}

	logger.DebugCat(CatParse, "Parsing %q", line)
	program, err := parser.Parse(line)
	if err != nil {
		return nil, err
	}
	return executor.Run(line, program)
}

// AddMacro parses body and stores the result under name. Reserved
// words are rejected; parse failures are returned unchanged.
func (c *Calculator) AddMacro(name, body string) error {
	if IsReserved(name) {
		return newError(ErrReservedName, "%s is already reserved", name)
	}
	parser, _, logger, _ := c.current()
	program, err := parser.Parse(body)
	if err != nil {
		logger.DebugCat(CatMacro, "Macro \"%s\" rejected: %v", name, err)
		return err
	}
	return c.macros.Define(name, program)
}

// ListMacros returns every macro as its canonical token sequence
func (c *Calculator) ListMacros() map[string][]string {
	return c.macros.Listing()
}

// MacroNames returns the defined macro names, sorted
func (c *Calculator) MacroNames() []string {
	return c.macros.Names()
}
