package main

import (
	"fmt"

	"github.com/gertd/go-pluralize"
	"github.com/pkg/errors"

	"github.com/pescuma/reuseify/lib/annotate"
	"github.com/pescuma/reuseify/lib/commands"
	"github.com/pescuma/reuseify/lib/model"
	"github.com/pescuma/reuseify/lib/storages"
)

type AnnotateCmd struct {
	Input              string   `short:"i" default:"${default_output}" env:"REUSEIFY_INPUT" help:"JSON file produced by get-authors."`
	DefaultContributor []string `short:"d" sep:"none" help:"Fallback contributor name(s) for files with no git history (NOT_IN_GIT). Can be repeated. Without this flag those files are skipped."`
	FailOnError        bool     `help:"Exit with status 1 if reuse annotate failed for any file."`

	ReuseArgs []string `arg:"" optional:"" name:"reuse-args" help:"Arguments forwarded verbatim to reuse annotate, after --. Example: reuseify annotate -- --license MIT --copyright 'ACME'"`
}

func (c *AnnotateCmd) Run(ctx *context) error {
	result, err := ctx.ws.Annotate(c.Input, &annotate.Options{
		DefaultContributors: c.DefaultContributor,
		ExtraArgs:           c.ReuseArgs,
	})
	switch {
	case errors.Is(err, storages.ErrAuthorMapNotFound):
		return fmt.Errorf("%w. Run reuseify get-authors first to generate it", err)

	case err != nil:
		return withToolHint(ctx, err)
	}

	if c.FailOnError && result.HasFailures() {
		count := result.Count(model.Failed)
		return fmt.Errorf("%v failed to be annotated", pluralize.NewClient().Pluralize("file", count, true))
	}

	return nil
}

func withToolHint(ctx *context, err error) error {
	var notFound *commands.NotFoundError
	if errors.As(err, &notFound) && notFound.Name == ctx.ws.ReuseBinary() {
		return fmt.Errorf("%w. Please install it: pip install reuse", err)
	}

	return err
}
