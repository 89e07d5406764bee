package annotate

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bloomberg/go-testgroup"
	"github.com/pkg/errors"

	"github.com/pescuma/reuseify/lib/commands"
	"github.com/pescuma/reuseify/lib/commands/commandstest"
	"github.com/pescuma/reuseify/lib/consoles"
	"github.com/pescuma/reuseify/lib/model"
	"github.com/pescuma/reuseify/lib/reuse"
)

func TestAnnotator(t *testing.T) {
	testgroup.RunInParallel(t, &AnnotatorTests{})
}

type AnnotatorTests struct {
}

type fixture struct {
	dir    string
	runner *commandstest.FakeRunner
	out    *bytes.Buffer
	a      *Annotator
}

func (g *AnnotatorTests) setup(t *testgroup.T, existing ...string) *fixture {
	f := &fixture{
		dir:    t.TempDir(),
		runner: commandstest.NewFakeRunner(),
		out:    &bytes.Buffer{},
	}

	for _, name := range existing {
		t.NoError(os.WriteFile(f.path(name), []byte("print(1)\n"), 0o644))
	}

	f.a = NewAnnotator(consoles.NewWriterConsole(f.out), consoles.NewStyles(false), reuse.New(f.runner, ""), io.Discard)

	return f
}

func (f *fixture) path(name string) string {
	return filepath.Join(f.dir, name)
}

// createMap builds {"a.py": ["Alice"], "b.py": [], "c.py": ["Bob"]}
func (f *fixture) createMap() *model.AuthorMap {
	m := model.NewAuthorMap()
	m.Set(f.path("a.py"), []string{"Alice"})
	m.Set(f.path("b.py"), []string{})
	m.Set(f.path("c.py"), []string{"Bob"})
	return m
}

func (f *fixture) succeed() {
	f.runner.Reply("reuse annotate", "Successfully changed header\n", "", 0)
}

func (g *AnnotatorTests) SkipsWithoutDefaultAndMissingFiles(t *testgroup.T) {
	f := g.setup(t, "a.py", "b.py")
	f.succeed()

	r, err := f.a.Run(f.createMap(), &Options{})
	t.NoError(err)

	annotated := r.List(model.Annotated)
	t.Len(annotated, 1)
	t.Equal(f.path("a.py"), annotated[0].Path)
	t.Equal([]string{"Alice"}, annotated[0].Authors)

	skipped := r.List(model.Skipped)
	t.Len(skipped, 2)
	t.Equal(f.path("b.py"), skipped[0].Path)
	t.Equal(model.NotInGit, skipped[0].Reason)
	t.Equal(f.path("c.py"), skipped[1].Path)
	t.Equal(model.FileMissing, skipped[1].Reason)

	t.Equal(1, r.Count(model.Annotated))
	t.Equal(2, r.Count(model.Skipped))
	t.Equal(0, r.Count(model.Failed))

	calls := f.runner.CallsTo("reuse annotate")
	t.Len(calls, 1)
	t.Equal([]string{"annotate", "--contributor", "Alice", f.path("a.py")}, calls[0].Args)
	t.Contains(f.out.String(), "Found 1 file to annotate, 2 to skip.")
}

func (g *AnnotatorTests) UsesDefaultContributors(t *testgroup.T) {
	f := g.setup(t, "a.py", "b.py")
	f.succeed()

	r, err := f.a.Run(f.createMap(), &Options{DefaultContributors: []string{"Fallback"}})
	t.NoError(err)

	annotated := r.List(model.Annotated)
	t.Len(annotated, 2)
	t.Equal(f.path("b.py"), annotated[1].Path)
	t.Equal([]string{"Fallback"}, annotated[1].Authors)

	calls := f.runner.CallsTo("reuse annotate")
	t.Len(calls, 2)
	t.Equal([]string{"annotate", "--contributor", "Fallback", f.path("b.py")}, calls[1].Args)
}

func (g *AnnotatorTests) DefaultContributorsNeedTheFile(t *testgroup.T) {
	f := g.setup(t, "a.py")
	f.succeed()

	r, err := f.a.Run(f.createMap(), &Options{DefaultContributors: []string{"Fallback"}})
	t.NoError(err)

	skipped := r.List(model.Skipped)
	t.Len(skipped, 2)
	t.Equal(model.NotInGitFileMissing, skipped[0].Reason)
	t.Equal(model.FileMissing, skipped[1].Reason)
}

func (g *AnnotatorTests) ForwardsExtraArgs(t *testgroup.T) {
	f := g.setup(t, "a.py")
	f.succeed()

	m := model.NewAuthorMap()
	m.Set(f.path("a.py"), []string{"Alice", "Bob"})

	_, err := f.a.Run(m, &Options{ExtraArgs: []string{"--license", "MIT", "--copyright=ACME"}})
	t.NoError(err)

	t.Equal([]string{
		"annotate", "--license", "MIT", "--copyright=ACME",
		"--contributor", "Alice", "--contributor", "Bob",
		f.path("a.py"),
	}, f.runner.Calls[0].Args)
}

func (g *AnnotatorTests) FailureDoesNotStopTheBatch(t *testgroup.T) {
	f := g.setup(t, "a.py", "c.py")
	failing := f.path("a.py")
	f.runner.Handle("reuse annotate", func(call commandstest.Call) (*commands.Result, error) {
		if call.Args[len(call.Args)-1] == failing {
			return &commands.Result{Stderr: "  error: could not parse a.py  \n", ExitCode: 1}, nil
		}
		return &commands.Result{}, nil
	})

	r, err := f.a.Run(f.createMap(), &Options{})
	t.NoError(err)

	failed := r.List(model.Failed)
	t.Len(failed, 1)
	t.Equal(failing, failed[0].Path)
	t.Equal("error: could not parse a.py", failed[0].Diagnostic)

	annotated := r.List(model.Annotated)
	t.Len(annotated, 1)
	t.Equal(f.path("c.py"), annotated[0].Path)
	t.Len(f.runner.CallsTo("reuse annotate"), 2)
}

func (g *AnnotatorTests) StartFailureIsAFailedOutcome(t *testgroup.T) {
	f := g.setup(t, "a.py")
	f.runner.Handle("reuse annotate", func(commandstest.Call) (*commands.Result, error) {
		return nil, errors.New("exec format error")
	})

	m := model.NewAuthorMap()
	m.Set(f.path("a.py"), []string{"Alice"})

	r, err := f.a.Run(m, &Options{})
	t.NoError(err)

	failed := r.List(model.Failed)
	t.Len(failed, 1)
	t.Contains(failed[0].Diagnostic, "exec format error")
}

func (g *AnnotatorTests) UnreadablePathIsSkippedAndTheBatchContinues(t *testgroup.T) {
	f := g.setup(t, "a.py")
	f.succeed()

	m := model.NewAuthorMap()
	m.Set(f.path("a.py"), []string{"Alice"})
	m.Set(filepath.Join(f.path("a.py"), "gone.py"), []string{"Bob"})
	m.Set(filepath.Join(f.path("a.py"), "new.py"), []string{})

	r, err := f.a.Run(m, &Options{DefaultContributors: []string{"Fallback"}})
	t.NoError(err)

	annotated := r.List(model.Annotated)
	t.Len(annotated, 1)
	t.Equal(f.path("a.py"), annotated[0].Path)

	skipped := r.List(model.Skipped)
	t.Len(skipped, 2)
	t.Equal(model.FileMissing, skipped[0].Reason)
	t.Equal(model.NotInGitFileMissing, skipped[1].Reason)
	t.Len(f.runner.CallsTo("reuse annotate"), 1)
}

func (g *AnnotatorTests) PlanNeverAnnotatesWithoutContributors(t *testgroup.T) {
	m := model.NewAuthorMap()
	m.Set("a.py", nil)
	m.Set("b.py", []string{"Bob"})

	items, skipped := Plan(m, nil, func(string) bool { return true })

	t.Equal([]Item{{Path: "b.py", Authors: []string{"Bob"}}}, items)
	t.Len(skipped, 1)
	for _, i := range items {
		t.NotEmpty(i.Authors)
	}
}
