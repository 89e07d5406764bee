package consoles

import (
	"github.com/fatih/color"
)

// Styles colors fragments of console messages. A disabled Styles returns its
// input unchanged.
type Styles struct {
	Bold   func(a ...any) string
	Dim    func(a ...any) string
	Cyan   func(a ...any) string
	Green  func(a ...any) string
	Yellow func(a ...any) string
	Red    func(a ...any) string

	BoldGreen func(a ...any) string
	BoldRed   func(a ...any) string
}

func NewStyles(enabled bool) *Styles {
	create := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}

	return &Styles{
		Bold:      create(color.Bold),
		Dim:       create(color.Faint),
		Cyan:      create(color.FgCyan),
		Green:     create(color.FgGreen),
		Yellow:    create(color.FgYellow),
		Red:       create(color.FgRed),
		BoldGreen: create(color.Bold, color.FgGreen),
		BoldRed:   create(color.Bold, color.FgRed),
	}
}

// NewDefaultStyles follows the terminal detection of the color package.
func NewDefaultStyles() *Styles {
	return NewStyles(!color.NoColor)
}
