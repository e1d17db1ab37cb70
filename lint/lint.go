// Package lint checks JavaScript end-to-end test sources for calls that
// bypass the action helper.
package lint

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/file"
	"github.com/dop251/goja/parser"
)

// Diagnostic is a single rule violation.
type Diagnostic struct {
	RuleID   string `json:"rule_id"`
	Filename string `json:"filename"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	// Type is the kind of the syntax node the violation is anchored to.
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s (%s)", d.Filename, d.Line, d.Column, d.Message, d.RuleID)
}

// Rule is a check run over a parsed file.
type Rule interface {
	ID() string
	Check(f *File) []Diagnostic
}

// File is a parsed source file.
type File struct {
	Name    string
	Program *ast.Program
}

// ErrParse is returned when a source file is not valid JavaScript.
type ErrParse struct {
	Filename string
	Err      error
}

func (e ErrParse) Error() string {
	return "parsing " + e.Filename + ": " + e.Err.Error()
}

func (e ErrParse) Unwrap() error {
	return e.Err
}

// Parse parses src as a JavaScript program.
func Parse(filename string, src []byte) (*File, error) {
	prog, err := parser.ParseFile(nil, filename, src, 0)
	if err != nil {
		return nil, ErrParse{Filename: filename, Err: err}
	}
	return &File{Name: filename, Program: prog}, nil
}

// Position returns the line and column of idx.
func (f *File) Position(idx file.Idx) (line, column int) {
	if f.Program == nil || f.Program.File == nil {
		return 0, 0
	}
	pos := f.Program.File.Position(int(idx) - f.Program.File.Base())
	return pos.Line, pos.Column
}

// Logger is the interface for the logger.
type Logger interface {
	Debug(msg string, args ...any)
}

// Linter runs the registered rules over source files.
type Linter struct {
	rules    []Rule
	disabled map[string]bool
	lg       Logger
}

// Option configures the Linter.
type Option func(*Linter)

// WithDisabled disables the rules with the given IDs.
func WithDisabled(ids ...string) Option {
	return func(l *Linter) {
		for _, id := range ids {
			l.disabled[normID(id)] = true
		}
	}
}

// WithLogger sets the logger.
func WithLogger(lg Logger) Option {
	return func(l *Linter) {
		if lg != nil {
			l.lg = lg
		}
	}
}

// New returns a Linter running rules.
func New(rules []Rule, opts ...Option) *Linter {
	l := &Linter{
		disabled: map[string]bool{},
		lg:       nopLogger{},
	}
	for _, opt := range opts {
		opt(l)
	}
	for _, r := range rules {
		l.Register(r)
	}
	return l
}

// Register adds a rule.
func (l *Linter) Register(r Rule) {
	l.rules = append(l.rules, r)
}

// Rules returns the enabled rules sorted by ID.
func (l *Linter) Rules() []Rule {
	out := make([]Rule, 0, len(l.rules))
	for _, r := range l.rules {
		if l.disabled[normID(r.ID())] {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Lint parses src and returns the diagnostics of all enabled rules ordered
// by position.
func (l *Linter) Lint(filename string, src []byte) ([]Diagnostic, error) {
	f, err := Parse(filename, src)
	if err != nil {
		return nil, err
	}
	var all []Diagnostic
	for _, r := range l.Rules() {
		all = append(all, r.Check(f)...)
	}
	sortDiagnostics(all)
	return all, nil
}

// LintPaths lints every .js file found under paths.  Parse errors do not
// stop the walk, they are joined and returned along with the diagnostics
// of the files that parsed.
func (l *Linter) LintPaths(paths []string) ([]Diagnostic, error) {
	var (
		all  []Diagnostic
		errs error
	)
	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if !isSource(path) {
				return nil
			}
			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			l.lg.Debug("linting", "file", path)
			ds, err := l.Lint(filepath.ToSlash(path), src)
			if err != nil {
				var pe ErrParse
				if errors.As(err, &pe) {
					errs = errors.Join(errs, err)
					return nil
				}
				return err
			}
			all = append(all, ds...)
			return nil
		})
		if err != nil {
			return all, errors.Join(errs, err)
		}
	}
	sortDiagnostics(all)
	return all, errs
}

func isSource(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".js")
}

func skipDir(name string) bool {
	return name == "node_modules" || strings.HasPrefix(name, ".")
}

func sortDiagnostics(ds []Diagnostic) {
	sort.SliceStable(ds, func(i, j int) bool {
		a, b := ds[i], ds[j]
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

func normID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
