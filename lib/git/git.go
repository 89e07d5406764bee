package git

import (
	"sort"
	"strings"

	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/reuseify/lib/commands"
	"github.com/pescuma/reuseify/lib/utils"
)

var ErrNotRepository = errors.New("not in a git repository")

// Git answers the questions asked to the git command line.
type Git struct {
	runner commands.Runner
	binary string
}

func New(runner commands.Runner, binary string) *Git {
	return &Git{
		runner: runner,
		binary: utils.IIf(binary == "", "git", binary),
	}
}

// EnsureRepository fails with ErrNotRepository when the working directory is
// not inside a git working tree.
func (g *Git) EnsureRepository() error {
	result, err := g.runner.Run(g.binary, []string{"rev-parse", "--git-dir"}, "")
	if err != nil {
		return err
	}

	if !result.Success() {
		return ErrNotRepository
	}

	return nil
}

// FilterIgnored removes the paths ignored by .gitignore and friends, keeping
// the order of the remaining ones.
func (g *Git) FilterIgnored(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return []string{}, nil
	}

	// check-ignore exits with 1 when nothing is ignored, so only the output matters
	result, err := g.runner.Run(g.binary, []string{"check-ignore", "--stdin"}, strings.Join(paths, "\n"))
	if err != nil {
		return nil, err
	}

	ignored := set.From(utils.SplitLines(result.Stdout))

	return lo.Filter(paths, func(p string, _ int) bool {
		return !ignored.Contains(p)
	}), nil
}

// Authors returns the sorted names of everyone that committed to path. An empty
// result means the file has no history.
func (g *Git) Authors(path string) ([]string, error) {
	result, err := g.runner.Run(g.binary, []string{"log", "--format=%an", "--", path}, "")
	if err != nil {
		return nil, err
	}

	out := strings.TrimSpace(result.Stdout)
	if !result.Success() || out == "" {
		return []string{}, nil
	}

	names := set.New[string](10)
	for _, line := range utils.SplitLines(out) {
		names.Insert(line)
	}

	authors := names.Slice()
	sort.Strings(authors)
	return authors, nil
}
