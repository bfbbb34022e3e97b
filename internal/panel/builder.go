// internal/panel/builder.go
package panel

import (
	"fmt"
	"io"
	"os"
	"strings"

	cfg "github.com/tamzrod/buds-status/internal/config"
)

// Build creates the host named by the panel config and opens its output.
// The returned closer releases the output (no-op for stdout/stderr).
func Build(pc cfg.PanelConfig) (*Host, func() error, error) {
	w, closeOut, err := openOutput(pc.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("panel: open output %q: %w", pc.Output, err)
	}

	icons := Icons{Buds: pc.BudsIcon, Case: pc.CaseIcon}

	var h *Host
	switch pc.Format {
	case "line", "":
		h = NewLine(w, icons)
	case "waybar":
		h = NewWaybar(w, icons, pc.LowThreshold)
	case "styled":
		h = NewStyled(w, icons, pc.LowThreshold)
	default:
		_ = closeOut()
		return nil, nil, fmt.Errorf("panel: unknown format %q", pc.Format)
	}

	return h, closeOut, nil
}

func openOutput(output string) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(strings.TrimSpace(output)) {
	case "stdout", "":
		return os.Stdout, noop, nil
	case "stderr":
		return os.Stderr, noop, nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil
	}
}
