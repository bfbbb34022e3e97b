// internal/panel/line.go
package panel

import (
	"io"

	"github.com/tamzrod/buds-status/internal/status"
)

// lineEncoder renders "55 % 🎧 80 % ▣ 90 %" for tail-style bars
// (polybar, i3blocks persist mode, lemonbar).
type lineEncoder struct {
	icons Icons
}

// NewLine returns a plain text host.
func NewLine(w io.Writer, icons Icons) *Host {
	return newHost(w, lineEncoder{icons: icons})
}

func (e lineEncoder) Frame(s status.DisplayState) []byte {
	return []byte(lineText(s, e.icons))
}

func (lineEncoder) Blank() []byte { return nil }

func lineText(s status.DisplayState, icons Icons) string {
	text := joinNonEmpty(s.Left, icons.Buds, s.Right)
	if s.CaseVisible {
		text = joinNonEmpty(text, icons.Case, s.Case)
	}
	return text
}
