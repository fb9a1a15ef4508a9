package pawrpn

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterh/liner"
	"github.com/xyproto/env/v2"
	"golang.org/x/term"
)

// REPL color codes
const (
	replColorYellow    = "\x1b[93m"
	replColorDarkBrown = "\x1b[33m" // Dark yellow/brown for light backgrounds
	replColorDarkGray  = "\x1b[90m" // Dark gray for dark backgrounds
	replColorSilver    = "\x1b[37m" // Silver/light gray for light backgrounds
	replColorReset     = "\x1b[0m"
)

// History file constants
const (
	replMaxHistoryLines = 1000 // Maximum number of history entries to keep
	replPrompt          = "> "
)

// REPLConfig configures the REPL behavior
type REPLConfig struct {
	Debug          bool
	ShowBanner     bool   // Whether to show the startup banner
	HistoryFile    string // Persistent history for interactive sessions ("" = none)
	TermBackground string // "light", "dark" or "auto"
}

// REPL reads lines, handles the colon commands and macro definitions,
// and evaluates everything else
type REPL struct {
	calc   *Calculator
	config REPLConfig
	out    io.Writer
	errOut io.Writer
	color  bool
}

// NewREPL creates a REPL with a fresh Calculator
func NewREPL(config REPLConfig, out, errOut io.Writer) *REPL {
	calc := New(&Config{
		Debug:       config.Debug,
		AllowMacros: true,
		ShowStack:   true,
		Output:      out,
		ErrOutput:   errOut,
	})
	return NewREPLWithCalculator(calc, config, out, errOut)
}

// NewREPLWithCalculator creates a REPL around an existing Calculator,
// e.g. one already seeded from a macro file
func NewREPLWithCalculator(calc *Calculator, config REPLConfig, out, errOut io.Writer) *REPL {
	return &REPL{
		calc:   calc,
		config: config,
		out:    out,
		errOut: errOut,
		color:  isTerminalWriter(out) && colorAllowed(),
	}
}

// Calculator returns the underlying calculator
func (r *REPL) Calculator() *Calculator {
	return r.calc
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// colorAllowed respects NO_COLOR (https://no-color.org/) and TERM=dumb
func colorAllowed() bool {
	if env.Has("NO_COLOR") {
		return false
	}
	return env.Str("TERM") != "dumb"
}

// IsInteractive reports whether f is a terminal, in which case Run uses
// line editing and prompts
func IsInteractive(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// errorColor returns the color for error output based on background
func (r *REPL) errorColor() string {
	if r.config.TermBackground == "light" {
		return replColorDarkBrown
	}
	return replColorYellow
}

// resultColor returns the color for the stack display
func (r *REPL) resultColor() string {
	if r.config.TermBackground == "light" {
		return replColorSilver
	}
	return replColorDarkGray
}

func (r *REPL) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

func (r *REPL) printError(message string) {
	text := "ERROR:\n" + message
	if r.color && isTerminalWriter(r.errOut) {
		text = r.errorColor() + text + replColorReset
	}
	_, _ = fmt.Fprintln(r.errOut, text)
}

func (r *REPL) printStack(stack []float64) {
	text := FormatStack(stack)
	if r.color {
		text = r.resultColor() + text + replColorReset
	}
	r.printf("%s\n", text)
}

// HandleLine processes one line of input. It returns true when the
// session should end.
func (r *REPL) HandleLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	switch trimmed {
	case ":exit", ":e":
		r.printf("exiting...\n")
		return true
	case ":debug", ":d":
		r.calc.SetDebug(!r.calc.Debug())
		state := "OFF"
		if r.calc.Debug() {
			state = "ON"
		}
		r.printf("debug mode: %s\n", state)
		return false
	case ":macros", ":m":
		r.printMacros()
		return false
	case ":help", ":h":
		r.printHelp()
		return false
	}

	if strings.HasPrefix(trimmed, "!") {
		r.defineMacro(trimmed[1:])
		return false
	}

	stack, err := r.calc.Evaluate(line, r.calc.Debug())
	if err != nil {
		r.printError(err.Error())
		return false
	}
	r.printStack(stack)
	return false
}

// defineMacro handles "!name body..."
func (r *REPL) defineMacro(definition string) {
	fields := Tokenize(definition)
	if len(fields) == 0 {
		r.printError("macro definition should start with a name")
		return
	}
	name := fields[0]
	switch {
	case strings.HasPrefix(name, "!"):
		r.printError("macro name can't start with a '!'")
		return
	case strings.HasPrefix(name, ":"):
		r.printError("macro name can't start with a ':'")
		return
	case IsNumeric(name):
		r.printError("macro name can't be a number")
		return
	}

	if err := r.calc.AddMacro(name, strings.Join(fields[1:], " ")); err != nil {
		r.printError(err.Error())
	}
}

func (r *REPL) printMacros() {
	listing := r.calc.ListMacros()
	names := make([]string, 0, len(listing))
	for name := range listing {
		names = append(names, name)
	}
	sort.Strings(names)

	r.printf("Macros:\n")
	for _, name := range names {
		r.printf("  %s -> %s\n", name, strings.Join(listing[name], " "))
	}
}

func (r *REPL) printHelp() {
	r.printf(`Enter an expression in postfix notation, e.g. "2 3 + 4 *".
  !name body   define a macro
  ; text       ignore the rest of the line
  :macros :m   list macros
  :debug  :d   toggle debug tracing
  :exit   :e   leave
`)
}

// Run reads from in until EOF or an exit command. Terminals get line
// editing and history; anything else is read line by line.
func (r *REPL) Run(in *os.File) error {
	if IsInteractive(in) && in == os.Stdin {
		return r.runInteractive()
	}
	return r.RunScript(in)
}

// RunScript processes every line of in without prompts
func (r *REPL) RunScript(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if r.HandleLine(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

func (r *REPL) runInteractive() error {
	if r.config.ShowBanner {
		r.printf("Input your equation (:help for commands):\n")
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	r.loadHistory(ln)
	defer r.saveHistory(ln)

	for {
		line, err := ln.Prompt(replPrompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				r.printf("\n")
				return nil
			}
			return err
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if r.HandleLine(line) {
			return nil
		}
	}
}

// loadHistory loads command history from the history file
func (r *REPL) loadHistory(ln *liner.State) {
	if r.config.HistoryFile == "" {
		return
	}
	f, err := os.Open(r.config.HistoryFile)
	if err != nil {
		return // File doesn't exist or can't be read
	}
	defer f.Close()
	if _, err := ln.ReadHistory(f); err != nil {
		r.calc.Logger().WarnCat(CatIO, "Couldn't read history %s: %v", r.config.HistoryFile, err)
	}
}

// saveHistory saves command history to the history file
func (r *REPL) saveHistory(ln *liner.State) {
	if r.config.HistoryFile == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(r.config.HistoryFile), 0755); err != nil {
		return // Graceful failure
	}

	var sb strings.Builder
	if _, err := ln.WriteHistory(&sb); err != nil {
		return
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) > replMaxHistoryLines {
		lines = lines[len(lines)-replMaxHistoryLines:]
	}
	_ = os.WriteFile(r.config.HistoryFile, []byte(strings.Join(lines, "\n")+"\n"), 0644)
}
