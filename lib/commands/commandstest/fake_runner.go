// Package commandstest provides a scripted commands.Runner for tests.
package commandstest

import (
	"strings"

	"github.com/pescuma/reuseify/lib/commands"
)

type Call struct {
	Name  string
	Args  []string
	Stdin string
}

func (c Call) CommandLine() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

type Handler func(call Call) (*commands.Result, error)

// FakeRunner answers each call with the first handler whose prefix matches the
// command line. Unmatched calls exit with status 127.
type FakeRunner struct {
	Calls    []Call
	Missing  map[string]bool
	handlers []prefixHandler
}

type prefixHandler struct {
	prefix  string
	handler Handler
}

func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Missing: map[string]bool{},
	}
}

func (f *FakeRunner) Handle(prefix string, handler Handler) *FakeRunner {
	f.handlers = append(f.handlers, prefixHandler{prefix: prefix, handler: handler})
	return f
}

func (f *FakeRunner) Reply(prefix string, stdout string, stderr string, exitCode int) *FakeRunner {
	return f.Handle(prefix, func(Call) (*commands.Result, error) {
		return &commands.Result{Stdout: stdout, Stderr: stderr, ExitCode: exitCode}, nil
	})
}

func (f *FakeRunner) Run(name string, args []string, stdin string) (*commands.Result, error) {
	call := Call{Name: name, Args: append([]string(nil), args...), Stdin: stdin}
	f.Calls = append(f.Calls, call)

	if f.Missing[name] {
		return nil, &commands.NotFoundError{Name: name}
	}

	line := call.CommandLine()
	for _, h := range f.handlers {
		if line == h.prefix || strings.HasPrefix(line, h.prefix+" ") {
			return h.handler(call)
		}
	}

	return &commands.Result{Stderr: "unexpected call: " + line, ExitCode: 127}, nil
}

func (f *FakeRunner) LookPath(name string) (string, error) {
	if f.Missing[name] {
		return "", &commands.NotFoundError{Name: name}
	}

	return "/usr/bin/" + name, nil
}

// CallsTo lists the calls whose command line starts with prefix.
func (f *FakeRunner) CallsTo(prefix string) []Call {
	var result []Call
	for _, c := range f.Calls {
		line := c.CommandLine()
		if line == prefix || strings.HasPrefix(line, prefix+" ") {
			result = append(result, c)
		}
	}
	return result
}
