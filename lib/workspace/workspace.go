package workspace

import (
	"fmt"
	"io"
	"os"

	"github.com/pescuma/reuseify/lib/annotate"
	"github.com/pescuma/reuseify/lib/authors"
	"github.com/pescuma/reuseify/lib/commands"
	"github.com/pescuma/reuseify/lib/consoles"
	"github.com/pescuma/reuseify/lib/git"
	"github.com/pescuma/reuseify/lib/report"
	"github.com/pescuma/reuseify/lib/reuse"
	"github.com/pescuma/reuseify/lib/storages"
)

type Options struct {
	Git     string
	Reuse   string
	NoColor bool

	// Runner defaults to running the real commands.
	Runner commands.Runner
	// Out receives the console and the report. Defaults to stdout.
	Out io.Writer
	// Progress receives the progress bar. Defaults to stderr.
	Progress io.Writer
}

type Workspace struct {
	console  consoles.Console
	styles   *consoles.Styles
	out      io.Writer
	progress io.Writer
	git      *git.Git
	reuse    *reuse.Reuse
}

func NewWorkspace(opts *Options) *Workspace {
	runner := opts.Runner
	if runner == nil {
		runner = commands.NewExecRunner()
	}

	w := &Workspace{
		out:      opts.Out,
		progress: opts.Progress,
		git:      git.New(runner, opts.Git),
		reuse:    reuse.New(runner, opts.Reuse),
	}

	if w.out == nil {
		w.out = os.Stdout
		w.console = consoles.NewStdOutConsole()
		w.styles = consoles.NewDefaultStyles()
	} else {
		w.console = consoles.NewWriterConsole(w.out)
		w.styles = consoles.NewStyles(false)
	}
	if opts.NoColor {
		w.styles = consoles.NewStyles(false)
	}

	if w.progress == nil {
		w.progress = os.Stderr
	}

	return w
}

func (w *Workspace) Console() consoles.Console {
	return w.console
}

func (w *Workspace) Styles() *consoles.Styles {
	return w.styles
}

func (w *Workspace) ReuseBinary() string {
	return w.reuse.Binary()
}

func (w *Workspace) GetAuthors(opts *authors.Options) (*authors.Result, error) {
	builder := authors.NewBuilder(w.console, w.styles, w.git, w.reuse)
	return builder.Build(opts)
}

// Annotate runs reuse annotate for every file in the authors file and prints
// the report.
func (w *Workspace) Annotate(input string, opts *annotate.Options) (*report.Report, error) {
	err := w.reuse.RequireInstalled()
	if err != nil {
		return nil, err
	}

	m, err := storages.ReadAuthorMap(input)
	if err != nil {
		return nil, err
	}

	w.console.Printf("Reading authors from: %v\n", w.styles.Bold(input))

	annotator := annotate.NewAnnotator(w.console, w.styles, w.reuse, w.progress)

	result, err := annotator.Run(m, opts)
	if err != nil {
		return nil, err
	}

	_, _ = fmt.Fprintln(w.out)
	result.Print(w.out, w.styles)

	return result, nil
}
