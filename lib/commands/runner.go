package commands

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

var ErrToolNotFound = errors.New("command not found")

// NotFoundError is returned when a tool is not installed. It matches ErrToolNotFound.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("command not found: %v", e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrToolNotFound
}

// Result of a finished process. A non-zero ExitCode is not an error.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Combined returns stdout followed by stderr.
func (r *Result) Combined() string {
	return r.Stdout + r.Stderr
}

// Runner starts external tools and waits for them to finish.
type Runner interface {
	// Run returns an error only when the process could not be started.
	Run(name string, args []string, stdin string) (*Result, error)

	LookPath(name string) (string, error)
}

type execRunner struct {
}

func NewExecRunner() Runner {
	return &execRunner{}
}

func (r *execRunner) Run(name string, args []string, stdin string) (*Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.Command(name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	} else {
		cmd.Stdin = bytes.NewReader(nil)
	}

	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return &Result{Stdout: stdout.String(), Stderr: stderr.String()}, nil

	case errors.As(err, &exitErr):
		return &Result{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: exitErr.ExitCode()}, nil

	case errors.Is(err, exec.ErrNotFound):
		return nil, &NotFoundError{Name: name}

	default:
		return nil, errors.Wrapf(err, "error executing %v", Describe(name, args))
	}
}

func (r *execRunner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", &NotFoundError{Name: name}
	}

	return path, nil
}

// Describe formats a command line for messages.
func Describe(name string, args []string) string {
	var sb strings.Builder
	sb.WriteString(name)
	for _, a := range args {
		sb.WriteString(" ")
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			sb.WriteString("'")
			sb.WriteString(strings.ReplaceAll(a, "'", `'\''`))
			sb.WriteString("'")
		} else {
			sb.WriteString(a)
		}
	}
	return sb.String()
}
