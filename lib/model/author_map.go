package model

import (
	"github.com/samber/lo"
)

// AuthorMap maps file paths to the names of their contributors, keeping the
// insertion order. An empty author list means the file has no git history.
type AuthorMap struct {
	paths   []string
	authors map[string][]string
}

func NewAuthorMap() *AuthorMap {
	return &AuthorMap{
		authors: map[string][]string{},
	}
}

// Set adds or replaces path. A replaced path keeps its original position.
func (m *AuthorMap) Set(path string, authors []string) {
	if _, ok := m.authors[path]; !ok {
		m.paths = append(m.paths, path)
	}

	if authors == nil {
		authors = []string{}
	}

	m.authors[path] = append([]string{}, authors...)
}

func (m *AuthorMap) Get(path string) ([]string, bool) {
	authors, ok := m.authors[path]
	return authors, ok
}

func (m *AuthorMap) Len() int {
	return len(m.paths)
}

func (m *AuthorMap) Paths() []string {
	return append([]string{}, m.paths...)
}

// Each visits the entries in insertion order.
func (m *AuthorMap) Each(f func(path string, authors []string)) {
	for _, p := range m.paths {
		f(p, m.authors[p])
	}
}

// WithoutHistory lists the paths with an empty author list.
func (m *AuthorMap) WithoutHistory() []string {
	return lo.Filter(m.paths, func(p string, _ int) bool {
		return len(m.authors[p]) == 0
	})
}
