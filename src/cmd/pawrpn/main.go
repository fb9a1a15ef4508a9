package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/phroun/pawrpn"
	"github.com/xyproto/env/v2"
)

var version = "dev" // set via -ldflags at build time

func main() {
	licenseFlag := flag.Bool("license", false, "Show license")
	versionFlag := flag.Bool("version", false, "Show version")
	debugFlag := flag.Bool("debug", false, "Enable debug output")
	verboseFlag := flag.Bool("verbose", false, "Enable verbose output (alias for -debug)")
	flag.BoolVar(debugFlag, "d", false, "Enable debug output (short)")
	flag.BoolVar(verboseFlag, "v", false, "Enable verbose output (short, alias for -debug)")
	macrosFlag := flag.String("macros", "", "Load macros from a .json, .yaml or .yml file")
	flag.StringVar(macrosFlag, "m", "", "Load macros from a file (short)")
	configFlag := flag.String("config", env.Str("PAWRPN_CONFIG", getConfigFilePath()), "Configuration file")
	noHistoryFlag := flag.Bool("no-history", false, "Don't read or write REPL history")
	categoriesFlag := flag.String("debug-categories", "", "Comma-separated categories to trace (parse,macro,stack,math,io,app)")

	flag.Usage = showUsage
	flag.Parse()

	if *licenseFlag {
		showLicense()
		os.Exit(0)
	}
	if *versionFlag {
		fmt.Printf("pawrpn %s\n", version)
		os.Exit(0)
	}

	cfg, warnings, cfgErr := loadCLIConfig(*configFlag)

	debug := *debugFlag || *verboseFlag || cfg.Debug || env.Bool("PAWRPN_DEBUG")

	categories, unknown := parseCategories(*categoriesFlag)

	calc := pawrpn.New(&pawrpn.Config{
		Debug:           debug,
		AllowMacros:     true,
		ShowStack:       true,
		Output:          os.Stdout,
		ErrOutput:       os.Stderr,
		DebugCategories: categories,
	})

	logger := calc.Logger()
	if cfgErr != nil {
		logger.WarnCat(pawrpn.CatApp, "%v", cfgErr)
	}
	for _, w := range warnings {
		logger.WarnCat(pawrpn.CatApp, "%s", w)
	}
	for _, name := range unknown {
		logger.WarnCat(pawrpn.CatApp, "unknown debug category %q", name)
	}

	macroFile := cfg.Macros
	if *macrosFlag != "" {
		macroFile = *macrosFlag
	}
	if macroFile != "" {
		loadMacros(calc, macroFile)
	}

	// expressions given on the command line are evaluated and printed
	if args := flag.Args(); len(args) > 0 {
		os.Exit(evaluateArgs(calc, args, debug))
	}

	historyFile := ""
	if cfg.History && !*noHistoryFlag {
		historyFile = getHistoryFilePath()
	}

	repl := pawrpn.NewREPLWithCalculator(calc, pawrpn.REPLConfig{
		Debug:          debug,
		ShowBanner:     pawrpn.IsInteractive(os.Stdin),
		HistoryFile:    historyFile,
		TermBackground: cfg.TermBackground,
	}, os.Stdout, os.Stderr)

	if err := repl.Run(os.Stdin); err != nil {
		calc.Logger().Fatal("Error reading input: %v", err)
		os.Exit(1)
	}
}

// parseCategories splits a comma-separated category list, returning
// the names it doesn't know separately
func parseCategories(list string) ([]pawrpn.LogCategory, []string) {
	var cats []pawrpn.LogCategory
	var unknown []string
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if cat, ok := pawrpn.ParseLogCategory(name); ok {
			cats = append(cats, cat)
		} else {
			unknown = append(unknown, name)
		}
	}
	return cats, unknown
}

// loadMacros seeds the calculator from a macro file, reporting each entry
func loadMacros(calc *pawrpn.Calculator, path string) {
	results, err := calc.LoadMacroFile(path)
	if err != nil {
		calc.Logger().ErrorCat(pawrpn.CatIO, "%v", err)
		return
	}
	for _, res := range results {
		if res.Err != nil {
			fmt.Printf("Couldn't add macro '%s'\n    %s\n", res.Name, strings.ReplaceAll(res.Err.Error(), "\n", "\n    "))
			continue
		}
		fmt.Printf("Added macro: %s -> %s\n", res.Name, res.Body)
	}
}

// evaluateArgs evaluates each argument as a separate line and returns
// the process exit code
func evaluateArgs(calc *pawrpn.Calculator, args []string, debug bool) int {
	status := 0
	for _, line := range args {
		stack, err := calc.Evaluate(line, debug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR:\n%s\n", err)
			status = 1
			continue
		}
		fmt.Println(pawrpn.FormatStack(stack))
	}
	return status
}

func showLicense() {
	fmt.Fprintf(os.Stdout, "pawrpn, the postfix calculator version %s", version)
	license := `

MIT License

Copyright (c) 2025 Jeffrey R. Day

Permission is hereby granted, free of charge, to any person
obtaining a copy of this software and associated documentation
files (the "Software"), to deal in the Software without
restriction, including without limitation the rights to use,
copy, modify, merge, publish, distribute, sublicense, and/or
sell copies of the Software, and to permit persons to whom the
Software is furnished to do so, subject to the following
conditions:

The above copyright notice and this permission notice
(including the next paragraph) shall be included in all copies
or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES
OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT
HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY,
WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
OTHER DEALINGS IN THE SOFTWARE.
`
	fmt.Fprint(os.Stdout, license)
}

func showUsage() {
	usage := `Usage: pawrpn [options] [expression ...]
       pawrpn [options] < input.txt

Evaluate postfix (RPN) expressions. With no expressions and a terminal
on stdin, starts an interactive session.

Options:
  --license           View license and exit
  --version           Show version and exit
  -d, -debug          Trace every evaluation step
  -v, -verbose        Same as -debug
  -debug-categories L Only trace the listed categories: parse, macro,
                      stack, math, io, app (comma-separated)
  -m, -macros FILE    Load macros from FILE (.json, .yaml, .yml)
  -config FILE        Configuration file (default ~/.pawrpn/config.toml)
  -no-history         Don't read or write REPL history

Environment:
  PAWRPN_CONFIG       Configuration file used when -config is not given
  PAWRPN_DEBUG        Set to true to trace every evaluation
  NO_COLOR            Disable colored output

Interactive commands:
  !name body          Define a macro
  :macros, :m         List macros
  :debug, :d          Toggle debug tracing
  :exit, :e           Leave

Examples:
  pawrpn "2 2 +"
  pawrpn -m macros.json "PI 2 * 3 pow"
  echo "1 2 + ; comment" | pawrpn
`
	fmt.Fprint(os.Stderr, usage)
}
