package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/zephyrtronium/numdsl"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command with the given arguments and returns its exit
// status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		cfgname, inname, exportname, loglevel string
		given                                 [][2]string
		echo, memory                          bool
		prec                                  int
	)
	addgiven := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "Name=value", not %q`, s)
		}
		given = append(given, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	fs := flag.NewFlagSet("numdsl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfgname, "config", "", "YAML configuration `file`")
	fs.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	fs.Func("given", "Name=value variable definition (any number of times)", addgiven)
	fs.IntVar(&prec, "p", -1, "precision of calculations in bits, 0 for float64 (default from config)")
	fs.BoolVar(&echo, "echo", false, "print parse trees")
	fs.BoolVar(&memory, "memory", false, "print variables after running")
	fs.StringVar(&exportname, "export", "", "write the program and its output to `file`")
	fs.StringVar(&loglevel, "log-level", "", "log level: debug, info, warn, or error (default from config)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: numdsl [flags] [program ...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	fail := func(err error) int {
		fmt.Fprintln(stderr, "ERROR:", err)
		return 1
	}

	cfg := defaultConfig()
	if cfgname != "" {
		c, err := loadConfig(cfgname)
		if err != nil {
			return fail(err)
		}
		cfg = c
	}
	if prec >= 0 {
		cfg.Precision = uint(prec)
	}
	if loglevel != "" {
		cfg.Log.Level = loglevel
	}
	if err := cfg.validate(); err != nil {
		return fail(err)
	}

	logger, closeLog, err := newLogger(stderr, cfg.Log)
	if err != nil {
		return fail(err)
	}
	defer closeLog()

	s, err := numdsl.NewSession(numdsl.SessionConfig{
		Interpreter: numdsl.NewInterpreter(numdsl.Prec(cfg.Precision)),
		CacheSize:   cfg.Cache,
		Logger:      logger,
	})
	if err != nil {
		return fail(err)
	}
	for _, name := range cfg.varNames() {
		if err := define(s, name, cfg.Vars[name]); err != nil {
			return fail(fmt.Errorf("config vars: %w", err))
		}
	}
	for _, d := range given {
		if err := define(s, d[0], d[1]); err != nil {
			return fail(err)
		}
	}
	logger.Info("session ready",
		slog.Uint64("precision", uint64(cfg.Precision)),
		slog.Int("vars", len(s.Store())),
	)

	srcs := fs.Args()
	switch {
	case inname != "" && inname != "-":
		b, err := os.ReadFile(inname)
		if err != nil {
			return fail(err)
		}
		srcs = append([]string{string(b)}, srcs...)
	case inname == "-", len(srcs) == 0:
		if inname == "" && isTerminal(stdin) {
			r := &repl{s: s, out: stdout}
			if err := runREPL(r, cfg.historyFile()); err != nil {
				return fail(err)
			}
			return 0
		}
		b, err := io.ReadAll(stdin)
		if err != nil {
			return fail(err)
		}
		srcs = append([]string{string(b)}, srcs...)
	}

	status := 0
	var lines []string
	for _, src := range srcs {
		if echo {
			stmts, err := s.Compile(src)
			if err == nil {
				fmt.Fprint(stdout, numdsl.Format(stmts))
			}
		}
		out, err := s.Run(src)
		for _, l := range out {
			fmt.Fprintln(stdout, l)
		}
		lines = append(lines, out...)
		if err != nil {
			fmt.Fprintln(stderr, "ERROR:", err)
			lines = append(lines, "ERROR: "+err.Error())
			status = 1
			break
		}
	}

	if memory {
		if err := s.WriteMemory(stdout); err != nil {
			return fail(err)
		}
	}
	if exportname != "" {
		src := strings.TrimSpace(strings.Join(srcs, "\n"))
		if err := exportFile(exportname, src, strings.Join(lines, "\n")); err != nil {
			return fail(fmt.Errorf("export: %w", err))
		}
	}
	return status
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
