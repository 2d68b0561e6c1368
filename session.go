package numdsl

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of parsed programs a Session keeps when no
// size is given.
const DefaultCacheSize = 64

// Session runs programs one after another against a shared Store, the way an
// interactive front end does. Parsed programs are cached by source text.
// A Session is not safe for concurrent use.
type Session struct {
	store  Store
	interp *Interpreter
	cache  *lru.Cache[string, []Stmt]
	log    *slog.Logger
	// order holds variable names in the order they were first assigned.
	order []string
}

// SessionConfig configures a Session. The zero value is usable.
type SessionConfig struct {
	// Interpreter evaluates programs. If nil, float64 arithmetic is used.
	Interpreter *Interpreter
	// CacheSize is the number of parsed programs to keep. Zero means
	// DefaultCacheSize; negative disables the cache.
	CacheSize int
	// Logger receives debug records for each run. If nil, nothing is logged.
	Logger *slog.Logger
	// Vars seeds the store. Seeds come first in Memory, sorted by name.
	Vars map[string]Value
}

// NewSession creates a session with an empty store, apart from cfg.Vars.
func NewSession(cfg SessionConfig) (*Session, error) {
	s := Session{
		store:  make(Store, len(cfg.Vars)),
		interp: cfg.Interpreter,
		log:    cfg.Logger,
	}
	if s.interp == nil {
		s.interp = NewInterpreter()
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	for k, v := range cfg.Vars {
		s.store[k] = v
		s.order = append(s.order, k)
	}
	sort.Strings(s.order)
	size := cfg.CacheSize
	if size == 0 {
		size = DefaultCacheSize
	}
	if size > 0 {
		c, err := lru.New[string, []Stmt](size)
		if err != nil {
			return nil, fmt.Errorf("creating program cache: %w", err)
		}
		s.cache = c
	}
	return &s, nil
}

// Compile tokenizes and parses src, reusing an earlier parse of the same
// source if one is cached.
func (s *Session) Compile(src string) ([]Stmt, error) {
	if s.cache != nil {
		if stmts, ok := s.cache.Get(src); ok {
			s.log.Debug("program cache hit", slog.Int("statements", len(stmts)))
			return stmts, nil
		}
	}
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	stmts, err := Parse(toks)
	if err != nil {
		return nil, err
	}
	s.log.Debug("parsed program", slog.Int("tokens", len(toks)), slog.Int("statements", len(stmts)))
	if s.cache != nil {
		s.cache.Add(src, stmts)
	}
	return stmts, nil
}

// Run compiles src and interprets it against the session store. As with
// Interpret, lines printed before an error are returned with it.
func (s *Session) Run(src string) ([]string, error) {
	stmts, err := s.Compile(src)
	if err != nil {
		s.log.Debug("compile failed", slog.Any("error", err))
		return nil, err
	}
	var out []string
	for _, st := range stmts {
		a, _ := st.(*Assignment)
		fresh := false
		if a != nil {
			_, had := s.store[a.Name]
			fresh = !had
		}
		o, err := s.interp.Interpret([]Stmt{st}, s.store)
		out = append(out, o...)
		if err != nil {
			s.log.Debug("run failed", slog.Int("printed", len(out)), slog.Any("error", err))
			return out, err
		}
		if fresh {
			s.noteAssigned(a.Name)
		}
	}
	s.log.Debug("run finished", slog.Int("printed", len(out)), slog.Int("vars", len(s.store)))
	return out, nil
}

// noteAssigned moves name to the end of the assignment order. It is called
// only for names that were absent from the store, which may still appear in
// the order if they were deleted from the store directly.
func (s *Session) noteAssigned(name string) {
	for i, k := range s.order {
		if k == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.order = append(s.order, name)
}

// Store returns the session's store. Changes to it are visible to later runs.
func (s *Session) Store() Store {
	return s.store
}

// Reset removes every variable from the store. Cached programs are kept.
func (s *Session) Reset() {
	for k := range s.store {
		delete(s.store, k)
	}
	s.order = s.order[:0]
}

// Binding is a variable and its value.
type Binding struct {
	Name  string
	Value Value
}

func (b Binding) String() string {
	return b.Name + ": " + b.Value.String()
}

// Memory returns the variables in the store in the order they were first
// assigned. Variables added to the store directly follow, sorted by name.
func (s *Session) Memory() []Binding {
	m := make([]Binding, 0, len(s.store))
	seen := make(map[string]bool, len(s.store))
	for _, k := range s.order {
		v, ok := s.store[k]
		if !ok || seen[k] {
			continue
		}
		seen[k] = true
		m = append(m, Binding{Name: k, Value: v})
	}
	var rest []Binding
	for k, v := range s.store {
		if !seen[k] {
			rest = append(rest, Binding{Name: k, Value: v})
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].Name < rest[j].Name })
	return append(m, rest...)
}

// WriteMemory writes one line per variable in the store, or a note that the
// store is empty.
func (s *Session) WriteMemory(w io.Writer) error {
	m := s.Memory()
	if len(m) == 0 {
		_, err := io.WriteString(w, "Memory is empty.\n")
		return err
	}
	for _, b := range m {
		if _, err := io.WriteString(w, b.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// ErrNothingToExport is returned by Export when there is no source or no
// output to write.
var ErrNothingToExport = errors.New("nothing to export")

// Export writes a program and its output in plain text: the source, a blank
// line, then "Result = " followed by the output.
func Export(w io.Writer, src, output string) error {
	if src == "" || output == "" {
		return ErrNothingToExport
	}
	_, err := fmt.Fprintf(w, "%s\n\nResult = %s", src, output)
	return err
}
