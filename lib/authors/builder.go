package authors

import (
	"strings"

	"github.com/gertd/go-pluralize"

	"github.com/pescuma/reuseify/lib/consoles"
	"github.com/pescuma/reuseify/lib/filters"
	"github.com/pescuma/reuseify/lib/git"
	"github.com/pescuma/reuseify/lib/model"
	"github.com/pescuma/reuseify/lib/reuse"
	"github.com/pescuma/reuseify/lib/storages"
)

type Status int

const (
	// Written means the authors file was written.
	Written Status = iota
	// NoIssues means reuse lint found no file to annotate.
	NoIssues
	// AllExcluded means every file found was excluded by patterns or .gitignore.
	AllExcluded
)

type Options struct {
	Output          string
	IncludeNotInGit bool
	Exclude         []string
}

type Result struct {
	Status   Status
	Found    int
	Excluded int
	NotInGit []string
	Authors  *model.AuthorMap
}

// Builder collects the git authors of the files reuse lint complains about.
type Builder struct {
	console consoles.Console
	styles  *consoles.Styles
	git     *git.Git
	reuse   *reuse.Reuse
	plural  *pluralize.Client
}

func NewBuilder(console consoles.Console, styles *consoles.Styles, g *git.Git, r *reuse.Reuse) *Builder {
	return &Builder{
		console: console,
		styles:  styles,
		git:     g,
		reuse:   r,
		plural:  pluralize.NewClient(),
	}
}

func (b *Builder) Build(opts *Options) (*Result, error) {
	err := b.git.EnsureRepository()
	if err != nil {
		return nil, err
	}

	err = b.reuse.RequireInstalled()
	if err != nil {
		return nil, err
	}

	b.console.Printf("Running %v...\n", b.styles.Bold(b.reuse.Binary()+" lint"))

	files, err := b.reuse.Lint()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Found: len(files),
	}

	if len(files) == 0 {
		b.console.Printf("%v\n", b.styles.Green("No files with licensing issues found by reuse lint."))
		result.Status = NoIssues
		return result, nil
	}

	b.console.Printf("Found %v with licensing issues.\n", b.styles.Bold(b.files(len(files))))

	files = filters.FilterExcluded(files, filters.MergePatterns(opts.Exclude))

	files, err = b.git.FilterIgnored(files)
	if err != nil {
		return nil, err
	}

	result.Excluded = result.Found - len(files)
	if result.Excluded > 0 {
		b.console.Printf("%v\n", b.styles.Dim("Excluded "+b.files(result.Excluded)+" via path patterns / .gitignore."))
	}

	if len(files) == 0 {
		b.console.Printf("%v\n", b.styles.Green("All remaining files were excluded."))
		result.Status = AllExcluded
		return result, nil
	}

	b.console.Printf("Fetching git authors...\n")

	result.Authors, result.NotInGit, err = b.collectAuthors(files, opts.IncludeNotInGit)
	if err != nil {
		return nil, err
	}

	if len(result.NotInGit) > 0 && !opts.IncludeNotInGit {
		b.console.Printf("%v %v with no git history were omitted. Use %v / %v to include them.\n",
			b.styles.Yellow("Note:"), b.files(len(result.NotInGit)),
			b.styles.Bold("--include-not-in-git"), b.styles.Bold("-i"))
	}

	err = storages.WriteAuthorMap(opts.Output, result.Authors)
	if err != nil {
		return nil, err
	}

	b.console.Printf("%v %v\n", b.styles.Green("JSON written to:"), opts.Output)
	b.console.Printf("Total entries:  %v\n", result.Authors.Len())
	if withoutHistory := result.Authors.WithoutHistory(); len(withoutHistory) > 0 {
		b.console.Printf("Without history: %v\n", len(withoutHistory))
	}

	result.Status = Written
	return result, nil
}

func (b *Builder) collectAuthors(files []string, includeNotInGit bool) (*model.AuthorMap, []string, error) {
	result := model.NewAuthorMap()
	var notInGit []string

	b.console.PushPrefix("  ")
	defer b.console.PopPrefix()

	for _, file := range files {
		authors, err := b.git.Authors(file)
		if err != nil {
			return nil, nil, err
		}

		switch {
		case len(authors) > 0:
			result.Set(file, authors)
			b.console.Printf("%v: %v\n", b.styles.Cyan(file), strings.Join(authors, ", "))

		case includeNotInGit:
			notInGit = append(notInGit, file)
			result.Set(file, []string{})
			b.console.Printf("%v: NOT_IN_GIT (included)\n", b.styles.Yellow(file))

		default:
			notInGit = append(notInGit, file)
			b.console.Printf("%v: NOT_IN_GIT (omitted)\n", b.styles.Dim(file))
		}
	}

	return result, notInGit, nil
}

func (b *Builder) files(count int) string {
	return b.plural.Pluralize("file", count, true)
}
