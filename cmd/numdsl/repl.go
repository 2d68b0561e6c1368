package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/zephyrtronium/numdsl"
)

// repl runs lines against a session and keeps a transcript for :export.
type repl struct {
	s    *numdsl.Session
	out  io.Writer
	srcs []string
	outs []string
}

func runREPL(r *repl, history string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: history,
	})
	if err != nil {
		return fmt.Errorf("starting REPL: %w", err)
	}
	defer rl.Close()
	fmt.Fprintln(r.out, `Type :help for help, :quit to leave.`)
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) && line != "" {
			continue
		}
		if err != nil { // Ctrl-C or Ctrl-D
			return nil
		}
		if !r.eval(line) {
			return nil
		}
	}
}

// eval handles one line of input. It returns false when the user asks to
// quit.
func (r *repl) eval(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	if strings.HasPrefix(line, ":") {
		return r.command(line)
	}
	out, err := r.s.Run(line)
	for _, l := range out {
		fmt.Fprintln(r.out, l)
	}
	if err != nil {
		msg := "ERROR: " + err.Error()
		fmt.Fprintln(r.out, msg)
		out = append(out, msg)
	}
	r.srcs = append(r.srcs, line)
	r.outs = append(r.outs, out...)
	return true
}

func (r *repl) command(line string) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case ":quit", ":q":
		return false
	case ":help", ":h":
		fmt.Fprint(r.out, helpText)
	case ":memory", ":m":
		if err := r.s.WriteMemory(r.out); err != nil {
			fmt.Fprintln(r.out, "ERROR:", err)
		}
	case ":clear":
		r.s.Reset()
		r.srcs, r.outs = nil, nil
		fmt.Fprintln(r.out, "Memory cleared.")
	case ":export":
		if arg == "" {
			fmt.Fprintln(r.out, "ERROR: :export needs a file name")
			break
		}
		if err := exportFile(arg, strings.Join(r.srcs, "\n"), strings.Join(r.outs, "\n")); err != nil {
			fmt.Fprintln(r.out, "ERROR:", err)
			break
		}
		fmt.Fprintln(r.out, "Exported to", arg)
	default:
		fmt.Fprintf(r.out, "ERROR: unknown command %s; try :help\n", cmd)
	}
	return true
}

// exportFile writes a program and its output to the named file.
func exportFile(name, src, output string) error {
	if src == "" || output == "" {
		return numdsl.ErrNothingToExport
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := numdsl.Export(f, src, output); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
