package main

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/reuseify/lib/storages"
)

func parse(t *testing.T, args ...string) (*CLI, *kong.Context) {
	var cli CLI

	parser, err := kong.New(&cli, parserOptions()...)
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	require.NoError(t, err)

	return &cli, ctx
}

func TestGetAuthorsDefaults(t *testing.T) {
	cli, ctx := parse(t, "get-authors")

	assert.Equal(t, "get-authors", ctx.Command())
	assert.Equal(t, storages.DefaultAuthorsFile, cli.GetAuthors.Output)
	assert.False(t, cli.GetAuthors.IncludeNotInGit)
	assert.Empty(t, cli.GetAuthors.Exclude)
	assert.Equal(t, "git", cli.Git)
	assert.Equal(t, "reuse", cli.Reuse)
}

func TestGetAuthorsFlags(t *testing.T) {
	cli, _ := parse(t, "get-authors", "-o", "out.json", "-i", "-e", "docs", "--exclude", "*.{md,txt}")

	assert.Equal(t, "out.json", cli.GetAuthors.Output)
	assert.True(t, cli.GetAuthors.IncludeNotInGit)
	assert.Equal(t, []string{"docs", "*.{md,txt}"}, cli.GetAuthors.Exclude)
}

func TestGetAuthorsRejectsInvalidPattern(t *testing.T) {
	var cli CLI

	parser, err := kong.New(&cli, parserOptions()...)
	require.NoError(t, err)

	_, err = parser.Parse([]string{"get-authors", "-e", ""})
	assert.Error(t, err)
}

func TestAnnotateForwardsArgs(t *testing.T) {
	cli, _ := parse(t, "annotate", "-i", "in.json", "-d", "Jane Doe", "-d", "ACME, Inc.",
		"--", "--license", "MIT", "--copyright", "ACME", "-y", "2024")

	assert.Equal(t, "in.json", cli.Annotate.Input)
	assert.Equal(t, []string{"Jane Doe", "ACME, Inc."}, cli.Annotate.DefaultContributor)
	assert.Equal(t, []string{"--license", "MIT", "--copyright", "ACME", "-y", "2024"}, cli.Annotate.ReuseArgs)
	assert.False(t, cli.Annotate.FailOnError)
}

func TestAnnotateDefaults(t *testing.T) {
	cli, ctx := parse(t, "annotate")

	assert.Equal(t, "annotate", ctx.Command())
	assert.Equal(t, storages.DefaultAuthorsFile, cli.Annotate.Input)
	assert.Empty(t, cli.Annotate.DefaultContributor)
	assert.Empty(t, cli.Annotate.ReuseArgs)
}
