// Package interactive provides the readline shell of cwmp-inspect.
package interactive

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/cwmp-model/cwmp-go/pkg/inspect"
	"github.com/cwmp-model/cwmp-go/pkg/log"
	"github.com/cwmp-model/cwmp-go/pkg/validate"
)

// SaveFunc persists the edited tree.
type SaveFunc func() error

// Shell edits one object tree through an Inspector.
type Shell struct {
	inspector *inspect.Inspector
	formatter *inspect.Formatter
	save      SaveFunc
	out       io.Writer
	dirty     bool
	rl        *readline.Instance
}

// New creates a shell over insp. save is called by the save command.
func New(insp *inspect.Inspector, save SaveFunc) (*Shell, error) {
	s := newShell(insp, save, nil)
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          insp.Path() + "> ",
		AutoComplete:    &completer{inspector: insp},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	s.rl = rl
	s.out = rl.Stdout()
	return s, nil
}

func newShell(insp *inspect.Inspector, save SaveFunc, out io.Writer) *Shell {
	return &Shell{
		inspector: insp,
		formatter: inspect.NewFormatter(),
		save:      save,
		out:       out,
	}
}

// Run reads commands until quit or end of input.
func (s *Shell) Run() error {
	defer s.rl.Close()

	s.printHelp()
	for {
		line, err := s.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if s.dirty {
				fmt.Fprintln(s.out, "Unsaved changes discarded.")
			}
			return nil
		}
		if s.Exec(line) {
			return nil
		}
	}
}

// Exec runs one command line and reports whether the shell should exit.
func (s *Shell) Exec(line string) bool {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "ls", "list":
		s.cmdList(args)
	case "tree":
		fmt.Fprint(s.out, s.formatter.FormatTree(s.inspector.Root(), s.inspector.Indices()...))
	case "get", "g":
		s.cmdGet(args)
	case "set", "s":
		s.cmdSet(args)
	case "add", "a":
		s.cmdAdd(args)
	case "validate", "v":
		s.cmdValidate()
	case "save", "w":
		s.cmdSave()
	case "quit", "exit", "q":
		if s.dirty {
			fmt.Fprintln(s.out, "Unsaved changes discarded.")
		}
		return true
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help')\n", cmd)
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Commands:
  ls [path]          - List present parameters (whole tree by default)
  tree               - Show the object tree
  get <path>         - Read a parameter value
  set <path> <value> - Write a parameter value (read-only parameters refused)
  add <table>        - Add a table instance
  validate           - Check schema constraints
  save               - Write the document back
  help               - Show this help
  quit               - Exit

  Paths are absolute (Device.DNS.Client.Enable) or relative to the root
  (Server.1.Alias). Tab completes parameter names.`)
}

func (s *Shell) cmdList(args []string) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	values, err := s.inspector.List(path)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprint(s.out, s.formatter.FormatParameters(values))
}

func (s *Shell) cmdGet(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: get <path>")
		return
	}
	pv, err := s.inspector.Get(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s = %s\n", pv.Name, s.formatter.FormatValue(pv))
}

func (s *Shell) cmdSet(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: set <path> <value>")
		fmt.Fprintln(s.out, "  Example: set Server.1.Alias \"cpe-1\"")
		return
	}
	value := strings.Trim(strings.Join(args[1:], " "), "\"'")
	if err := s.inspector.Set(args[0], value); err != nil {
		fmt.Fprintf(s.out, "Set failed: %v\n", err)
		return
	}
	s.dirty = true
	fmt.Fprintln(s.out, "OK")
}

func (s *Shell) cmdAdd(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: add <table>")
		return
	}
	n, err := s.inspector.AddInstance(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Add failed: %v\n", err)
		return
	}
	s.dirty = true
	fmt.Fprintf(s.out, "Added instance %d\n", n)
}

func (s *Shell) cmdValidate() {
	report := validate.Validate(s.inspector.Root(), s.inspector.Indices()...)
	s.inspector.Log(log.Event{
		Kind:    log.KindValidation,
		Path:    s.inspector.Path(),
		Message: fmt.Sprintf("%d violations", len(report.Violations)),
	})
	if report.OK() {
		fmt.Fprintln(s.out, "OK")
		return
	}
	for _, v := range report.Violations {
		fmt.Fprintf(s.out, "  %-24s %s: %s\n", v.Code, v.Path, v.Message)
	}
}

func (s *Shell) cmdSave() {
	if s.save == nil {
		fmt.Fprintln(s.out, "Save not available")
		return
	}
	if err := s.save(); err != nil {
		fmt.Fprintf(s.out, "Save failed: %v\n", err)
		return
	}
	s.dirty = false
	fmt.Fprintln(s.out, "Saved")
}

// completer completes the last word of the line with parameter and
// object names known to the inspector.
type completer struct {
	inspector *inspect.Inspector
}

// Do implements readline.AutoCompleter.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	word := text
	if i := strings.LastIndexByte(text, ' '); i >= 0 {
		word = text[i+1:]
	}
	if !strings.Contains(text, " ") {
		return completeCommand(word), len([]rune(word))
	}

	var out [][]rune
	for _, name := range c.inspector.Complete(word) {
		out = append(out, []rune(strings.TrimPrefix(name, word)))
	}
	return out, len([]rune(word))
}

var commandNames = []string{"add", "get", "help", "ls", "quit", "save", "set", "tree", "validate"}

func completeCommand(word string) [][]rune {
	var out [][]rune
	for _, name := range commandNames {
		if strings.HasPrefix(name, word) {
			out = append(out, []rune(strings.TrimPrefix(name, word)+" "))
		}
	}
	return out
}
