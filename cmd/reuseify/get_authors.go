package main

import (
	"github.com/pescuma/reuseify/lib/authors"
	"github.com/pescuma/reuseify/lib/filters"
)

type GetAuthorsCmd struct {
	Output          string   `short:"o" default:"${default_output}" env:"REUSEIFY_OUTPUT" help:"Output JSON file."`
	IncludeNotInGit bool     `short:"i" help:"Include files with no git history in the JSON output (empty author list)."`
	Exclude         []string `short:"e" sep:"none" help:"Glob pattern to exclude (matched against each path component). Can be repeated. Default patterns always apply: ${default_excludes}."`
}

func (c *GetAuthorsCmd) Validate() error {
	return filters.ValidatePatterns(c.Exclude)
}

func (c *GetAuthorsCmd) Run(ctx *context) error {
	_, err := ctx.ws.GetAuthors(&authors.Options{
		Output:          c.Output,
		IncludeNotInGit: c.IncludeNotInGit,
		Exclude:         c.Exclude,
	})
	return withToolHint(ctx, err)
}
