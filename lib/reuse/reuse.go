package reuse

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/reuseify/lib/commands"
	"github.com/pescuma/reuseify/lib/utils"
)

const (
	summaryMarker = "# SUMMARY"
	fileMarker    = "* "
)

// Reuse invokes the reuse tool (https://reuse.software).
type Reuse struct {
	runner commands.Runner
	binary string
}

func New(runner commands.Runner, binary string) *Reuse {
	return &Reuse{
		runner: runner,
		binary: utils.IIf(binary == "", "reuse", binary),
	}
}

func (r *Reuse) Binary() string {
	return r.binary
}

func (r *Reuse) RequireInstalled() error {
	_, err := r.runner.LookPath(r.binary)
	return err
}

// Lint runs `reuse lint` and returns the files listed before the summary.
// lint exits non-zero when it finds problems, so the exit code is ignored.
func (r *Reuse) Lint() ([]string, error) {
	result, err := r.runner.Run(r.binary, []string{"lint"}, "")
	if err != nil {
		return nil, err
	}

	return ParseLintReport(result.Combined()), nil
}

// ParseLintReport extracts the paths of the "* <path>" lines up to the
// "# SUMMARY" line.
func ParseLintReport(report string) []string {
	files := []string{}

	for _, line := range utils.SplitLines(report) {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, summaryMarker) {
			break
		}

		if strings.HasPrefix(line, fileMarker) {
			files = append(files, line[len(fileMarker):])
		}
	}

	return files
}

type AnnotateResult struct {
	Success    bool
	Diagnostic string
}

// Annotate runs `reuse annotate <extraArgs> --contributor <name>... <path>`.
func (r *Reuse) Annotate(path string, contributors []string, extraArgs []string) (*AnnotateResult, error) {
	if len(contributors) == 0 {
		return nil, errors.Errorf("no contributors to annotate %v", path)
	}

	args := AnnotateArgs(path, contributors, extraArgs)

	result, err := r.runner.Run(r.binary, args, "")
	if err != nil {
		return nil, err
	}

	return &AnnotateResult{
		Success:    result.Success(),
		Diagnostic: strings.TrimSpace(result.Stderr),
	}, nil
}

func AnnotateArgs(path string, contributors []string, extraArgs []string) []string {
	args := make([]string, 0, 2+len(extraArgs)+2*len(contributors))
	args = append(args, "annotate")
	args = append(args, extraArgs...)
	args = append(args, ContributorArgs(contributors)...)
	args = append(args, path)
	return args
}

func ContributorArgs(names []string) []string {
	return lo.FlatMap(names, func(name string, _ int) []string {
		return []string{"--contributor", name}
	})
}
