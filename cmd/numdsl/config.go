package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/numdsl"
)

// maxPrec bounds the extended precision. Past it, bigfloat's series make
// single programs take visibly long.
const maxPrec = 1 << 16

// Config is the contents of a configuration file.
type Config struct {
	// Precision is the extended precision in bits, or 0 for float64.
	Precision uint `yaml:"precision"`
	// Cache is the parsed program cache size. Negative disables it.
	Cache int `yaml:"cache"`
	// History is the REPL history file. Empty means ~/.numdsl_history.
	History string    `yaml:"history"`
	Log     LogConfig `yaml:"log"`
	// Vars maps names to expressions assigned before any program runs.
	Vars map[string]string `yaml:"vars"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, or error.
	Level string `yaml:"level"`
	// File is a path to append JSON log records to.
	File string `yaml:"file"`
	// Journal sends records to the systemd journal.
	Journal bool `yaml:"journal"`
}

func defaultConfig() *Config {
	return &Config{Log: LogConfig{Level: "warn"}}
}

// loadConfig reads a configuration file. An empty file gives the defaults.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()
	return decodeConfig(file, path)
}

func decodeConfig(r io.Reader, name string) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	cfg := defaultConfig()
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: parse %s: %w", name, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ValidationError aggregates configuration problems.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

func (c *Config) validate() error {
	var errs ValidationError
	if c.Precision > maxPrec {
		errs.Issues = append(errs.Issues, fmt.Sprintf("precision must be at most %d, not %d", maxPrec, c.Precision))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs.Issues = append(errs.Issues, err.Error())
	}
	for _, name := range c.varNames() {
		if !isVarName(name) {
			errs.Issues = append(errs.Issues, fmt.Sprintf("vars: %q is not a variable name", name))
		}
		if strings.TrimSpace(c.Vars[name]) == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("vars: %s needs a value", name))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// varNames returns the names in Vars in sorted order, which is the order in
// which they are assigned.
func (c *Config) varNames() []string {
	names := make([]string, 0, len(c.Vars))
	for k := range c.Vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// historyFile returns the REPL history path, or "" if there is none.
func (c *Config) historyFile() string {
	if c.History != "" {
		return c.History
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".numdsl_history")
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}

// isVarName reports whether name scans as exactly one identifier.
func isVarName(name string) bool {
	toks, err := numdsl.Tokenize(name)
	return err == nil && len(toks) == 1 && toks[0].Kind == numdsl.TokenIdent && toks[0].Text == name
}

// define assigns the value of expr to name in s.
func define(s *numdsl.Session, name, expr string) error {
	if !isVarName(name) {
		return fmt.Errorf("%q is not a variable name", name)
	}
	src := "set " + name + " to " + expr + ";"
	stmts, err := s.Compile(src)
	if err != nil {
		return fmt.Errorf("setting %s: %w", name, err)
	}
	if len(stmts) != 1 {
		return fmt.Errorf("setting %s: %q is not a single expression", name, expr)
	}
	if _, err := s.Run(src); err != nil {
		return fmt.Errorf("setting %s: %w", name, err)
	}
	return nil
}
