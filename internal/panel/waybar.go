// internal/panel/waybar.go
package panel

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/tamzrod/buds-status/internal/status"
)

// waybarFrame is one line of waybar's custom-module "return-type": "json" protocol.
type waybarFrame struct {
	Text       string `json:"text"`
	Tooltip    string `json:"tooltip,omitempty"`
	Class      string `json:"class,omitempty"`
	Percentage *int   `json:"percentage,omitempty"`
}

type waybarEncoder struct {
	icons Icons
	low   int
}

// NewWaybar returns a host speaking waybar's JSON line protocol.
// Frames whose lowest shown charge is <= low get the "low" class.
func NewWaybar(w io.Writer, icons Icons, low int) *Host {
	return newHost(w, waybarEncoder{icons: icons, low: low})
}

func (e waybarEncoder) Frame(s status.DisplayState) []byte {
	f := waybarFrame{
		Text:    lineText(s, e.icons),
		Tooltip: tooltip(s),
		Class:   "disconnected",
	}

	if vals := shown(s); len(vals) > 0 {
		lowest := vals[0]
		for _, v := range vals[1:] {
			lowest = min(lowest, v)
		}
		f.Percentage = &lowest
		f.Class = "connected"
		if lowest <= e.low {
			f.Class = "low"
		}
	}

	b, err := json.Marshal(f)
	if err != nil {
		// only strings and an int: cannot happen
		return []byte(`{"text":""}`)
	}
	return b
}

func (waybarEncoder) Blank() []byte {
	return []byte(`{"text":""}`)
}

func tooltip(s status.DisplayState) string {
	var b strings.Builder
	b.WriteString("Left: " + s.Left)
	b.WriteString("\nRight: " + s.Right)
	if s.CaseVisible {
		b.WriteString("\nCase: " + s.Case)
	}
	return b.String()
}
