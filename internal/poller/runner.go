// internal/poller/runner.go
package poller

import (
	"context"
	"fmt"
)

// Start attaches the host and schedules Tick every interval.
// The first tick happens one interval after Start; until then the host
// shows the initial placeholders.
func (p *Poller) Start(ctx context.Context) error {
	p.runMu.Lock()
	defer p.runMu.Unlock()

	if p.stop != nil {
		return ErrAlreadyRunning
	}

	if err := p.host.Attach(); err != nil {
		return fmt.Errorf("poller: attach host: %w", err)
	}
	p.paint()

	stop, err := p.sched.Every(p.cfg.Interval, func() {
		p.Tick(ctx)
	})
	if err != nil {
		_ = p.host.Detach()
		return fmt.Errorf("poller: schedule: %w", err)
	}
	p.stop = stop

	p.log.Info("poller started",
		"status_file", p.cfg.StatusFile,
		"interval", p.cfg.Interval,
		"cache_ttl", p.cfg.CacheTTL,
		"uniform_expiry", p.cfg.UniformExpiry,
	)
	return nil
}

// Stop cancels future ticks and detaches the host.
// An in-flight tick is allowed to finish. Stop must not be called from a tick.
func (p *Poller) Stop() error {
	p.runMu.Lock()
	defer p.runMu.Unlock()

	if p.stop == nil {
		return ErrNotRunning
	}

	p.stop()
	p.stop = nil

	if err := p.host.Detach(); err != nil {
		return fmt.Errorf("poller: detach host: %w", err)
	}

	p.log.Info("poller stopped")
	return nil
}

// Running reports whether a schedule is active.
func (p *Poller) Running() bool {
	p.runMu.Lock()
	defer p.runMu.Unlock()
	return p.stop != nil
}

// paint pushes the full current state to a freshly attached host.
func (p *Poller) paint() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.host.SetLeftText(p.cur.Left)
	p.host.SetRightText(p.cur.Right)
	p.host.SetCaseText(p.cur.Case)
	p.host.SetCaseVisible(p.cur.CaseVisible)

	if err := p.host.Render(); err != nil {
		p.log.Warn("panel render failed", "err", err)
	}
}
