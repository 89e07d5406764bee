package annotate

import (
	"io"

	"github.com/gertd/go-pluralize"

	"github.com/pescuma/reuseify/lib/consoles"
	"github.com/pescuma/reuseify/lib/model"
	"github.com/pescuma/reuseify/lib/report"
	"github.com/pescuma/reuseify/lib/reuse"
	"github.com/pescuma/reuseify/lib/utils"
)

type Options struct {
	// DefaultContributors are used for files without git history.
	DefaultContributors []string
	// ExtraArgs are forwarded to reuse annotate before the contributors.
	ExtraArgs []string
}

// Item is a file that will be annotated with Authors.
type Item struct {
	Path    string
	Authors []string
}

// Plan splits the entries of m in files to annotate and skipped files, in map order.
func Plan(m *model.AuthorMap, defaultContributors []string, isFile func(string) bool) ([]Item, []*model.Outcome) {
	var items []Item
	var skipped []*model.Outcome

	m.Each(func(path string, authors []string) {
		exists := isFile(path)

		switch {
		case len(authors) == 0 && len(defaultContributors) == 0:
			skipped = append(skipped, model.NewSkipped(path, model.NotInGit))

		case len(authors) == 0 && !exists:
			skipped = append(skipped, model.NewSkipped(path, model.NotInGitFileMissing))

		case len(authors) == 0:
			items = append(items, Item{Path: path, Authors: defaultContributors})

		case !exists:
			skipped = append(skipped, model.NewSkipped(path, model.FileMissing))

		default:
			items = append(items, Item{Path: path, Authors: authors})
		}
	})

	return items, skipped
}

// Annotator calls reuse annotate once per file of an AuthorMap.
type Annotator struct {
	console  consoles.Console
	styles   *consoles.Styles
	reuse    *reuse.Reuse
	progress io.Writer
	isFile   func(string) bool
}

func NewAnnotator(console consoles.Console, styles *consoles.Styles, r *reuse.Reuse, progress io.Writer) *Annotator {
	return &Annotator{
		console:  console,
		styles:   styles,
		reuse:    r,
		progress: progress,
		isFile:   utils.IsFile,
	}
}

func (a *Annotator) Run(m *model.AuthorMap, opts *Options) (*report.Report, error) {
	items, skipped := Plan(m, opts.DefaultContributors, a.isFile)

	plural := pluralize.NewClient()
	a.console.Printf("Found %v to annotate, %v to skip.\n",
		a.styles.Bold(plural.Pluralize("file", len(items), true)),
		a.styles.Bold(len(skipped)))

	result := report.New()

	bar := utils.NewProgressBar(len(items), a.progress, "Annotating")
	for _, item := range items {
		result.Add(a.annotate(item, opts.ExtraArgs))

		_ = bar.Add(1)
	}
	_ = bar.Finish()

	for _, s := range skipped {
		result.Add(s)
	}

	return result, nil
}

func (a *Annotator) annotate(item Item, extraArgs []string) *model.Outcome {
	r, err := a.reuse.Annotate(item.Path, item.Authors, extraArgs)
	switch {
	case err != nil:
		return model.NewFailed(item.Path, item.Authors, err.Error())
	case !r.Success:
		return model.NewFailed(item.Path, item.Authors, r.Diagnostic)
	default:
		return model.NewAnnotated(item.Path, item.Authors)
	}
}
