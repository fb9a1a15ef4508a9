package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// CLIConfig holds configuration loaded from ~/.pawrpn/config.toml
type CLIConfig struct {
	TermBackground string `toml:"term_background"` // "light", "dark", or "auto" (auto defaults to dark)
	Debug          bool   `toml:"debug"`
	Macros         string `toml:"macros"`  // Macro file loaded at start-up
	History        bool   `toml:"history"` // Keep REPL history in ~/.pawrpn/history
}

// defaultCLIConfig returns the settings used when no config file exists
func defaultCLIConfig() CLIConfig {
	return CLIConfig{
		TermBackground: "auto",
		History:        true,
	}
}

const defaultConfigText = `# pawrpn configuration
# This file is automatically created on first run

# Terminal background color for REPL colors
# Options: "auto", "dark", "light"
term_background = "auto"

# Trace every evaluation (same as -debug)
debug = false

# Macro file (.json, .yaml or .yml) loaded at start-up, "" for none
macros = ""

# Keep interactive history in ~/.pawrpn/history
history = true
`

// getConfigDir returns the path to ~/.pawrpn directory
func getConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pawrpn")
}

// getConfigFilePath returns the path to ~/.pawrpn/config.toml
func getConfigFilePath() string {
	dir := getConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

// getHistoryFilePath returns the path to ~/.pawrpn/history
func getHistoryFilePath() string {
	dir := getConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "history")
}

// loadCLIConfig loads configuration from path, creating the file with
// defaults if it doesn't exist. Unknown keys are reported as warnings.
func loadCLIConfig(path string) (CLIConfig, []string, error) {
	cfg := defaultCLIConfig()
	if path == "" {
		return cfg, nil, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		createDefaultConfig(path)
		return cfg, nil, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return defaultCLIConfig(), nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var warnings []string
	for _, key := range meta.Undecoded() {
		warnings = append(warnings, fmt.Sprintf("unknown setting %q in %s", key.String(), path))
	}

	cfg.TermBackground = strings.ToLower(strings.TrimSpace(cfg.TermBackground))
	switch cfg.TermBackground {
	case "light", "dark", "auto":
	default:
		warnings = append(warnings, fmt.Sprintf("term_background %q is not one of auto, dark, light", cfg.TermBackground))
		cfg.TermBackground = "auto"
	}

	// relative macro paths are relative to the config file
	if cfg.Macros != "" && !filepath.IsAbs(cfg.Macros) {
		cfg.Macros = filepath.Join(filepath.Dir(path), cfg.Macros)
	}
	return cfg, warnings, nil
}

// createDefaultConfig creates the default config file
func createDefaultConfig(configPath string) {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return // Graceful failure
	}
	_ = os.WriteFile(configPath, []byte(defaultConfigText), 0644)
}
