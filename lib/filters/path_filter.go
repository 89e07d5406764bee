package filters

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/lo"
)

// DefaultExcludePatterns are always applied, in addition to the user ones.
var DefaultExcludePatterns = []string{
	"__pycache__",
	".venv",
	"venv",
	".env",
	"env",
	".git",
	".vscode",
	".idea",
	"*.egg-info",
	"*.pyc",
	"dist",
	"build",
	"node_modules",
	".tox",
	".mypy_cache",
	".pytest_cache",
	".ruff_cache",
}

// MergePatterns returns the default patterns followed by the user ones.
func MergePatterns(user []string) []string {
	result := make([]string, 0, len(DefaultExcludePatterns)+len(user))
	result = append(result, DefaultExcludePatterns...)
	result = append(result, user...)
	return lo.Uniq(result)
}

// ValidatePatterns rejects empty patterns. Every other string is a valid
// pattern: the ones that are not well formed globs match literally.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if p == "" {
			return fmt.Errorf("invalid exclude pattern: '%v'", p)
		}
	}

	return nil
}

// IsExcluded returns true if any component of path matches any of the shell
// glob patterns. Only '*', '?' and '[...]' are special.
func IsExcluded(path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	for _, part := range pathParts(path) {
		for _, pattern := range patterns {
			if matchPart(pattern, part) {
				return true
			}
		}
	}

	return false
}

// FilterExcluded keeps the paths not excluded by patterns, in order.
func FilterExcluded(paths []string, patterns []string) []string {
	return lo.Filter(paths, func(p string, _ int) bool {
		return !IsExcluded(p, patterns)
	})
}

func pathParts(path string) []string {
	path = filepath.ToSlash(path)
	if vol := filepath.VolumeName(path); vol != "" {
		path = path[len(vol):]
	}

	return lo.Filter(strings.Split(path, "/"), func(part string, _ int) bool {
		return part != "" && part != "."
	})
}

// braces and backslashes are literal in shell globs
var globEscaper = strings.NewReplacer(`\`, `\\`, "{", `\{`, "}", `\}`)

func matchPart(pattern, part string) bool {
	if runtime.GOOS == "windows" {
		pattern = strings.ToLower(pattern)
		part = strings.ToLower(part)
	}

	glob := globEscaper.Replace(pattern)
	if !doublestar.ValidatePattern(glob) {
		return pattern == part
	}

	m, err := doublestar.Match(glob, part)
	return err == nil && m
}
