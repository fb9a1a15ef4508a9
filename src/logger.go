package pawrpn

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// LogLevel represents the severity of a log message (higher value = higher severity)
type LogLevel int

const (
	LevelTrace  LogLevel = iota // Detailed tracing (requires enabled + category)
	LevelInfo                   // Informational messages (requires enabled + category)
	LevelDebug                  // Development debugging (requires enabled + category)
	LevelWarn                   // Warnings (always shown)
	LevelError                  // Runtime errors (always shown)
	LevelFatal                  // Unrecoverable errors (always shown)
)

// LogCategory represents the subsystem generating the message
type LogCategory string

const (
	CatNone  LogCategory = ""      // Uncategorized
	CatParse LogCategory = "parse" // Tokenizing and resolving
	CatMacro LogCategory = "macro" // Macro definition and expansion
	CatStack LogCategory = "stack" // Instruction execution
	CatMath  LogCategory = "math"  // Arithmetic domain problems
	CatIO    LogCategory = "io"    // Macro files, history, config
	CatApp   LogCategory = "app"   // Application specific
)

var allCategories = []LogCategory{CatParse, CatMacro, CatStack, CatMath, CatIO, CatApp}

// ParseLogCategory looks up a category by name
func ParseLogCategory(name string) (LogCategory, bool) {
	for _, cat := range allCategories {
		if string(cat) == name {
			return cat, true
		}
	}
	return CatNone, false
}

// ANSI color codes for terminal output
const (
	colorYellow = "\x1b[93m" // Bright yellow foreground
	colorReset  = "\x1b[0m"  // Reset to default
)

// Logger handles logging for the calculator. Its settings are fixed
// once it is shared; use WithDebug to get a changed copy.
type Logger struct {
	enabled           bool
	enabledCategories map[LogCategory]bool
	out               io.Writer
	errOut            io.Writer
	// colorEnabled is true if terminal colors should be used for stderr output
	colorEnabled bool
}

// stderrSupportsColor checks if stderr is a terminal that supports color output
func stderrSupportsColor() bool {
	stderrInfo, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	// ModeCharDevice indicates a terminal
	if (stderrInfo.Mode() & os.ModeCharDevice) == 0 {
		return false
	}

	return colorAllowed()
}

// NewLogger creates a new logger. When enabled, every category is
// switched on.
func NewLogger(enabled bool) *Logger {
	l := &Logger{
		enabled:           enabled,
		enabledCategories: make(map[LogCategory]bool),
		out:               os.Stdout,
		errOut:            os.Stderr,
		colorEnabled:      stderrSupportsColor(),
	}
	if enabled {
		l.EnableAllCategories()
	}
	return l
}

// SetOutput redirects debug output (out) and warnings/errors (errOut).
// A nil writer leaves the current destination unchanged.
func (l *Logger) SetOutput(out, errOut io.Writer) {
	if out != nil {
		l.out = out
	}
	if errOut != nil {
		l.errOut = errOut
		// only real terminals get colors
		l.colorEnabled = false
		if f, ok := errOut.(*os.File); ok && f == os.Stderr {
			l.colorEnabled = stderrSupportsColor()
		}
	}
}

// WithDebug returns a copy of the logger with debug output switched on
// or off. The copy has its own category set.
func (l *Logger) WithDebug(enabled bool) *Logger {
	cats := make(map[LogCategory]bool, len(l.enabledCategories))
	for k, v := range l.enabledCategories {
		cats[k] = v
	}
	cp := &Logger{
		enabled:           enabled,
		enabledCategories: cats,
		out:               l.out,
		errOut:            l.errOut,
		colorEnabled:      l.colorEnabled,
	}
	if enabled && len(cats) == 0 {
		cp.EnableAllCategories()
	}
	return cp
}

// writeOutput sends debug output to out and everything else to errOut
func (l *Logger) writeOutput(isDebug bool, output string) {
	if isDebug {
		_, _ = fmt.Fprintln(l.out, output)
		return
	}
	if l.colorEnabled {
		_, _ = fmt.Fprintf(l.errOut, "%s%s%s\n", colorYellow, output, colorReset)
	} else {
		_, _ = fmt.Fprintln(l.errOut, output)
	}
}

// IsEnabled reports whether debug logging is on
func (l *Logger) IsEnabled() bool {
	return l.enabled
}

// EnableCategory enables debug logging for a specific category
func (l *Logger) EnableCategory(cat LogCategory) {
	l.enabledCategories[cat] = true
}

// DisableCategory disables debug logging for a specific category
func (l *Logger) DisableCategory(cat LogCategory) {
	delete(l.enabledCategories, cat)
}

// EnableAllCategories enables all categories for debug logging
func (l *Logger) EnableAllCategories() {
	for _, cat := range allCategories {
		l.enabledCategories[cat] = true
	}
}

// IsCategoryEnabled checks if a category is enabled
func (l *Logger) IsCategoryEnabled(cat LogCategory) bool {
	return l.enabledCategories[cat]
}

// shouldLog determines if a message should be logged based on level and category
func (l *Logger) shouldLog(level LogLevel, cat LogCategory) bool {
	switch level {
	case LevelFatal, LevelError, LevelWarn:
		return true // Always shown
	case LevelDebug, LevelInfo, LevelTrace:
		return l.enabled && (cat == CatNone || l.enabledCategories[cat])
	default:
		return false
	}
}

// Log is the unified logging method
func (l *Logger) Log(level LogLevel, cat LogCategory, message string) {
	if !l.shouldLog(level, cat) {
		return
	}

	catSuffix := ""
	if cat != CatNone {
		catSuffix = fmt.Sprintf(":%s", cat)
	}

	var prefix string
	switch level {
	case LevelTrace:
		prefix = fmt.Sprintf("[TRACE%s]", catSuffix)
	case LevelInfo:
		prefix = fmt.Sprintf("[INFO%s]", catSuffix)
	case LevelDebug:
		prefix = fmt.Sprintf("[DEBUG%s]", catSuffix)
	case LevelWarn:
		prefix = fmt.Sprintf("[pawrpn%s WARN]", catSuffix)
	case LevelError, LevelFatal:
		prefix = fmt.Sprintf("[pawrpn%s ERROR]", catSuffix)
	}

	// indent continuation lines under the prefix
	message = strings.ReplaceAll(message, "\n", "\n  ")

	isLowSeverity := level == LevelTrace || level == LevelInfo || level == LevelDebug
	l.writeOutput(isLowSeverity, fmt.Sprintf("%s %s", prefix, message))
}

// Convenience methods that route through Log
// Ordered by severity: Fatal, Error, Warn, Debug, Info, Trace

// Fatal logs a fatal error message
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.Log(LevelFatal, CatNone, fmt.Sprintf(format, args...))
}

// ErrorCat logs a categorized error message
func (l *Logger) ErrorCat(cat LogCategory, format string, args ...interface{}) {
	l.Log(LevelError, cat, fmt.Sprintf(format, args...))
}

// WarnCat logs a categorized warning message
func (l *Logger) WarnCat(cat LogCategory, format string, args ...interface{}) {
	l.Log(LevelWarn, cat, fmt.Sprintf(format, args...))
}

// DebugCat logs a categorized debug message
func (l *Logger) DebugCat(cat LogCategory, format string, args ...interface{}) {
	if !l.shouldLog(LevelDebug, cat) {
		return
	}
	l.Log(LevelDebug, cat, fmt.Sprintf(format, args...))
}

// InfoCat logs a categorized informational message
func (l *Logger) InfoCat(cat LogCategory, format string, args ...interface{}) {
	l.Log(LevelInfo, cat, fmt.Sprintf(format, args...))
}

// TraceCat logs a categorized trace message
func (l *Logger) TraceCat(cat LogCategory, format string, args ...interface{}) {
	l.Log(LevelTrace, cat, fmt.Sprintf(format, args...))
}
