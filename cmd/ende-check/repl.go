package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/AndyShiue/Ende/internal/analyzer"
	"github.com/AndyShiue/Ende/internal/astio"
	"github.com/AndyShiue/Ende/internal/config"
	"github.com/AndyShiue/Ende/internal/diagnostics"
	"github.com/AndyShiue/Ende/internal/prelude"
	"github.com/AndyShiue/Ende/internal/prettyprinter"
	"github.com/AndyShiue/Ende/internal/symbols"
	"github.com/AndyShiue/Ende/internal/typesystem"
)

const helpText = `
REPL commands:
  :extern <name> <type>    Declare name with a type, e.g. :extern f (I32, I32) -> I32
  :enum <Name> <v1> ...    Declare an enum type
  :type <name>             Show the type of name
  :env                     List every name in scope
  :check <file>            Check a program; its top-level bindings stay in scope
  :help                    Show this help
  :quit                    Exit the REPL
`

// session is one REPL environment. Commands that fail leave it unchanged.
type session struct {
	env     *symbols.Environment[typesystem.Type]
	enums   map[string]typesystem.Enum
	out     io.Writer
	emitter *diagnostics.Emitter
}

func newSession(cfg *prelude.Config, out io.Writer) *session {
	enums := make(map[string]typesystem.Enum, len(cfg.EnumTable()))
	for name, e := range cfg.EnumTable() {
		enums[name] = e
	}
	return &session{
		env:     cfg.Environment(),
		enums:   enums,
		out:     out,
		emitter: diagnostics.NewEmitter(out),
	}
}

// handle runs one input line and reports whether the session should end.
func (s *session) handle(line string) (exit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if !strings.HasPrefix(line, ":") {
		fmt.Fprintln(s.out, "commands start with ':'. Type :help for help.")
		return false
	}

	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch cmd {
	case ":help":
		fmt.Fprint(s.out, helpText)

	case ":quit", ":exit":
		return true

	case ":extern":
		if len(args) < 2 {
			fmt.Fprintln(s.out, "usage: :extern <name> <type>")
			return false
		}
		rest := strings.TrimSpace(line[len(fields[0]):])
		src := strings.TrimSpace(rest[len(args[0]):])
		ty, err := typesystem.Parse(src, s.enums)
		if err != nil {
			fmt.Fprintln(s.out, err)
			return false
		}
		s.env.Define(args[0], ty)
		fmt.Fprintf(s.out, "%s: %s\n", args[0], ty)

	case ":enum":
		if len(args) < 2 {
			fmt.Fprintln(s.out, "usage: :enum <Name> <variant> ...")
			return false
		}
		spec := prelude.EnumSpec{Name: args[0], Variants: append([]string(nil), args[1:]...)}
		if err := prelude.ValidateEnum(spec, s.enums); err != nil {
			fmt.Fprintln(s.out, err)
			return false
		}
		s.enums[spec.Name] = spec.Enum()
		fmt.Fprintf(s.out, "enum %s\n", spec.Name)

	case ":type":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: :type <name>")
			return false
		}
		if ty, ok := s.env.Find(args[0]); ok {
			fmt.Fprintf(s.out, "%s: %s\n", args[0], ty)
		} else {
			fmt.Fprintf(s.out, "%s is not defined\n", args[0])
		}

	case ":env":
		for _, name := range s.env.Names() {
			ty, _ := s.env.Find(name)
			fmt.Fprintf(s.out, "%s: %s\n", name, ty)
		}

	case ":check":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: :check <file>")
			return false
		}
		s.check(args[0])

	default:
		fmt.Fprintln(s.out, "unknown command. Type :help for help.")
	}
	return false
}

// check runs a program against a copy of the environment and keeps the copy
// only when the program checks.
func (s *session) check(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(s.out, "cannot read %s: %v\n", path, err)
		return
	}
	prog, err := astio.Decode(src, s.enums)
	if err != nil {
		s.emitter.EmitAll(diagnostics.WithFile(diagnostics.List(diagnostics.Wrap(diagnostics.ErrD001, err, "")), path))
		return
	}

	env := s.env.Clone()
	typed, errs := analyzer.New().Check(prog, env)
	if errs != nil {
		s.emitter.EmitAll(diagnostics.WithFile(errs, path))
		return
	}
	s.env = env
	fmt.Fprint(s.out, prettyprinter.NewTypedPrinter().Print(typed))
}

func loadPrelude(path string) (*prelude.Config, error) {
	if path == "" {
		found, err := prelude.FindConfig(".")
		if err != nil {
			return nil, err
		}
		if found == "" {
			return prelude.Empty(), nil
		}
		path = found
	}
	return prelude.LoadConfig(path)
}

func runREPL(opts *options, stdout, stderr io.Writer) int {
	cfg, err := loadPrelude(opts.configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	fmt.Fprintf(stdout, "%s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.\n", appName)
	if src := cfg.Source(); src != "" {
		fmt.Fprintf(stdout, "prelude %s\n", src)
	}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, config.ReplHistoryFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	// Load history (best-effort)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	s := newSession(cfg, stdout)
	ln.SetCompleter(s.complete)
	for {
		line, err := ln.Prompt(config.ReplPrompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil { // Ctrl+D or EOF
			fmt.Fprintln(stdout)
			break
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if s.handle(line) {
			break
		}
	}

	// Persist history (best-effort)
	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return 0
}

var commands = []string{":check", ":enum", ":env", ":extern", ":help", ":quit", ":type"}

// complete offers command names, and names in scope after :type.
func (s *session) complete(line string) []string {
	var out []string
	if strings.HasPrefix(line, ":type ") {
		prefix := strings.TrimSpace(strings.TrimPrefix(line, ":type "))
		for _, name := range s.env.Names() {
			if strings.HasPrefix(name, prefix) {
				out = append(out, ":type "+name)
			}
		}
		return out
	}
	for _, c := range commands {
		if strings.HasPrefix(c, line) {
			out = append(out, c)
		}
	}
	return out
}
