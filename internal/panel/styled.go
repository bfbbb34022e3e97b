// internal/panel/styled.go
package panel

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/tamzrod/buds-status/internal/status"
)

// styledEncoder renders the line with terminal colors: placeholders dimmed,
// low charges in red. Color support follows the output writer.
type styledEncoder struct {
	icons Icons
	low   int

	normal lipgloss.Style
	dim    lipgloss.Style
	warn   lipgloss.Style
	icon   lipgloss.Style
}

// NewStyled returns a host for terminals and ANSI-aware bars.
func NewStyled(w io.Writer, icons Icons, low int) *Host {
	r := lipgloss.NewRenderer(w)
	return newHost(w, styledEncoder{
		icons:  icons,
		low:    low,
		normal: r.NewStyle().Bold(true),
		dim:    r.NewStyle().Faint(true),
		warn:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		icon:   r.NewStyle().Foreground(lipgloss.Color("12")),
	})
}

func (e styledEncoder) Frame(s status.DisplayState) []byte {
	text := joinNonEmpty(e.label(s.Left), e.iconOf(e.icons.Buds), e.label(s.Right))
	if s.CaseVisible {
		text = joinNonEmpty(text, e.iconOf(e.icons.Case), e.label(s.Case))
	}
	return []byte(text)
}

func (styledEncoder) Blank() []byte { return nil }

func (e styledEncoder) label(text string) string {
	v, ok := chargeOf(text)
	switch {
	case !ok:
		return e.dim.Render(text)
	case v <= e.low:
		return e.warn.Render(text)
	default:
		return e.normal.Render(text)
	}
}

func (e styledEncoder) iconOf(icon string) string {
	if icon == "" {
		return ""
	}
	return e.icon.Render(icon)
}
