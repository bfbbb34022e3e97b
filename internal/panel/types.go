// internal/panel/types.go
package panel

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tamzrod/buds-status/internal/status"
)

// ErrDetached is returned by Render on a host that is not attached.
var ErrDetached = errors.New("panel: not attached")

// encoder turns label state into one output frame (no trailing newline).
type encoder interface {
	Frame(s status.DisplayState) []byte
	Blank() []byte
}

// Icons decorate the labels. Empty icons are skipped.
type Icons struct {
	Buds string
	Case string
}

// chargeOf reads the percentage back out of a label.
// Placeholders and unexpected text report false.
func chargeOf(label string) (int, bool) {
	v, ok := strings.CutSuffix(label, " %")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// shown lists the real values currently visible, in display order.
func shown(s status.DisplayState) []int {
	var out []int
	if v, ok := chargeOf(s.Left); ok {
		out = append(out, v)
	}
	if v, ok := chargeOf(s.Right); ok {
		out = append(out, v)
	}
	if s.CaseVisible {
		if v, ok := chargeOf(s.Case); ok {
			out = append(out, v)
		}
	}
	return out
}

// joinNonEmpty joins parts with a single space, skipping empty ones.
func joinNonEmpty(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
