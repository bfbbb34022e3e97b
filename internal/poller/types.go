// internal/poller/types.go
package poller

import (
	"errors"
	"time"
)

// Display is the sink the poller pushes values into.
// Setters only change label state; Render makes it visible.
type Display interface {
	SetLeftText(text string)
	SetRightText(text string)
	SetCaseText(text string)
	SetCaseVisible(visible bool)
	Render() error
}

// Host is the panel the poller attaches to while running.
type Host interface {
	Display
	Attach() error
	Detach() error
}

// Scheduler runs fn every interval until stop is called.
// The first call happens one interval after Every returns.
// Implementations must not overlap calls to fn.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (stop func(), err error)
}

// Config is fixed at construction.
type Config struct {
	StatusFile string
	Interval   time.Duration
	CacheTTL   time.Duration

	// UniformExpiry gives right and case the left field's expiry rule.
	UniformExpiry bool
}

var (
	ErrAlreadyRunning = errors.New("poller: already running")
	ErrNotRunning     = errors.New("poller: not running")
)
