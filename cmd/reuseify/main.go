package main

import (
	"strings"

	"github.com/alecthomas/kong"

	"github.com/pescuma/reuseify/lib/filters"
	"github.com/pescuma/reuseify/lib/storages"
	"github.com/pescuma/reuseify/lib/workspace"
)

type CLI struct {
	Git     string `default:"git" env:"REUSEIFY_GIT" help:"Git executable."`
	Reuse   string `default:"reuse" env:"REUSEIFY_REUSE" help:"REUSE tool executable."`
	NoColor bool   `env:"REUSEIFY_NO_COLOR" help:"Disable colored output."`

	GetAuthors GetAuthorsCmd `cmd:"" name:"get-authors" help:"Get git authors for files missing REUSE license headers."`
	Annotate   AnnotateCmd   `cmd:"" help:"Apply REUSE license headers using authors from a JSON file."`
}

type context struct {
	ws *workspace.Workspace
}

func parserOptions() []kong.Option {
	return []kong.Option{
		kong.Name("reuseify"),
		kong.Description("Automate REUSE license annotation from git history."),
		kong.ShortUsageOnError(),
		kong.Vars{
			"default_output":   storages.DefaultAuthorsFile,
			"default_excludes": strings.Join(filters.DefaultExcludePatterns, ", "),
		},
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, parserOptions()...)

	ws := workspace.NewWorkspace(&workspace.Options{
		Git:     cli.Git,
		Reuse:   cli.Reuse,
		NoColor: cli.NoColor,
	})

	err := ctx.Run(&context{
		ws: ws,
	})
	ctx.FatalIfErrorf(err)
}
