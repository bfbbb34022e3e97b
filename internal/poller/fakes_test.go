package poller

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// ---- fake host ----

type fakeHost struct {
	mu sync.Mutex

	left        string
	right       string
	caseText    string
	caseVisible bool

	attached  bool
	attaches  int
	detaches  int
	renders   int
	attachErr error
	renderErr error
}

func (h *fakeHost) SetLeftText(s string)  { h.mu.Lock(); h.left = s; h.mu.Unlock() }
func (h *fakeHost) SetRightText(s string) { h.mu.Lock(); h.right = s; h.mu.Unlock() }
func (h *fakeHost) SetCaseText(s string)  { h.mu.Lock(); h.caseText = s; h.mu.Unlock() }
func (h *fakeHost) SetCaseVisible(v bool) { h.mu.Lock(); h.caseVisible = v; h.mu.Unlock() }

func (h *fakeHost) Render() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.renders++
	return h.renderErr
}

func (h *fakeHost) Attach() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.attachErr != nil {
		return h.attachErr
	}
	h.attached = true
	h.attaches++
	return nil
}

func (h *fakeHost) Detach() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.attached = false
	h.detaches++
	return nil
}

func (h *fakeHost) renderCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.renders
}

// ---- manual scheduler ----

type manualScheduler struct {
	interval time.Duration
	fn       func()
	stopped  bool
	err      error
}

func (s *manualScheduler) Every(interval time.Duration, fn func()) (func(), error) {
	if s.err != nil {
		return nil, s.err
	}
	s.interval = interval
	s.fn = fn
	s.stopped = false
	return func() { s.stopped = true }, nil
}

func (s *manualScheduler) fire() {
	if s.fn != nil && !s.stopped {
		s.fn()
	}
}

// ---- clock ----

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// ---- status file fixtures ----

type fixture struct {
	t    *testing.T
	path string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{t: t, path: filepath.Join(t.TempDir(), "airstatus.out")}
}

// line renders one observation. nil charges are omitted.
func line(t *testing.T, date time.Time, left, right, kase *int) string {
	t.Helper()
	charge := map[string]int{}
	if left != nil {
		charge["left"] = *left
	}
	if right != nil {
		charge["right"] = *right
	}
	if kase != nil {
		charge["case"] = *kase
	}
	b, err := json.Marshal(map[string]any{
		"date":   date.UTC().Format(time.RFC3339Nano),
		"charge": charge,
	})
	require.NoError(t, err)
	return string(b)
}

func (f *fixture) write(lines ...string) {
	f.t.Helper()
	var content string
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(f.t, os.WriteFile(f.path, []byte(content), 0o644))
}

func (f *fixture) remove() {
	f.t.Helper()
	require.NoError(f.t, os.Remove(f.path))
}

func pct(v int) *int { return &v }
