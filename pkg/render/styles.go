package render

import (
	"strings"

	"github.com/fatih/color"
)

// Styles colorizes extracted columns for terminal output. Columns cycle
// through a small palette so adjacent columns are visually distinct. The
// separator is never colored, which keeps the output splittable by other
// tools.
type Styles struct {
	palette []*color.Color
}

// NewStyles returns the column palette. With enabled false every color is
// forced off regardless of terminal detection, honoring --color=never and
// NO_COLOR; with enabled true colors are forced on so output redirected
// through a pipe keeps them.
func NewStyles(enabled bool) *Styles {
	s := &Styles{
		palette: []*color.Color{
			color.New(color.FgCyan),
			color.New(color.FgYellow),
			color.New(color.FgGreen),
			color.New(color.FgMagenta),
		},
	}
	for _, c := range s.palette {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Join joins columns with sep, coloring each column by its position in the
// output line. A zero Styles has no palette and joins without color.
func (s *Styles) Join(fields []string, sep string) string {
	if len(s.palette) == 0 {
		return strings.Join(fields, sep)
	}
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s.palette[i%len(s.palette)].Sprint(f))
	}
	return b.String()
}
