// internal/panel/host.go
package panel

import (
	"fmt"
	"io"
	"sync"

	"github.com/tamzrod/buds-status/internal/status"
)

// Host is a text panel: it keeps label state and writes one frame per
// line to w whenever that state changes.
type Host struct {
	mu  sync.Mutex
	w   io.Writer
	enc encoder

	cur      status.DisplayState
	last     status.DisplayState
	needFull bool
	attached bool
}

func newHost(w io.Writer, enc encoder) *Host {
	return &Host{
		w:   w,
		enc: enc,
		cur: status.InitialState(),
	}
}

func (h *Host) SetLeftText(text string) {
	h.mu.Lock()
	h.cur.Left = text
	h.mu.Unlock()
}

func (h *Host) SetRightText(text string) {
	h.mu.Lock()
	h.cur.Right = text
	h.mu.Unlock()
}

func (h *Host) SetCaseText(text string) {
	h.mu.Lock()
	h.cur.Case = text
	h.mu.Unlock()
}

func (h *Host) SetCaseVisible(visible bool) {
	h.mu.Lock()
	h.cur.CaseVisible = visible
	h.mu.Unlock()
}

// Attach makes the panel visible. The next Render always emits a frame.
func (h *Host) Attach() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.attached = true
	h.needFull = true
	return nil
}

// Detach clears the bar with a blank frame.
func (h *Host) Detach() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.attached {
		return nil
	}
	h.attached = false

	if err := h.writeLine(h.enc.Blank()); err != nil {
		return fmt.Errorf("panel: clear: %w", err)
	}
	return nil
}

// Render emits a frame if the labels changed since the last one.
// On a failed write the next Render re-emits unconditionally.
func (h *Host) Render() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.attached {
		return ErrDetached
	}
	if !h.needFull && h.cur == h.last {
		return nil
	}

	if err := h.writeLine(h.enc.Frame(h.cur)); err != nil {
		h.needFull = true
		return fmt.Errorf("panel: write frame: %w", err)
	}

	h.needFull = false
	h.last = h.cur
	return nil
}

// State returns the label state as last set.
func (h *Host) State() status.DisplayState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cur
}

func (h *Host) writeLine(frame []byte) error {
	buf := make([]byte, 0, len(frame)+1)
	buf = append(buf, frame...)
	buf = append(buf, '\n')
	_, err := h.w.Write(buf)
	return err
}
