// internal/poller/poller.go
package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/tamzrod/buds-status/internal/logger"
	"github.com/tamzrod/buds-status/internal/status"
	"github.com/tamzrod/buds-status/internal/tracer"
)

// warnInterval bounds how often a recurring read/parse failure is logged above debug.
const warnInterval = 10 * time.Minute

// Poller reads the status file on a schedule and decides what the panel shows.
// It is the only mutator of its cache and display state.
type Poller struct {
	cfg   Config
	host  Host
	sched Scheduler
	log   *slog.Logger
	now   func() time.Time

	warn rate.Sometimes

	mu    sync.Mutex // held for a whole tick
	cache FieldCache
	cur   status.DisplayState

	runMu sync.Mutex
	stop  func() // nil while stopped
}

// Option customizes a Poller.
type Option func(*Poller)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Poller) { p.now = now }
}

// WithLogger sets the logger. The default discards.
func WithLogger(log *slog.Logger) Option {
	return func(p *Poller) { p.log = log }
}

// New creates a poller with immutable config.
func New(cfg Config, host Host, sched Scheduler, opts ...Option) (*Poller, error) {
	if cfg.StatusFile == "" {
		return nil, errors.New("poller: status file required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if cfg.CacheTTL <= 0 {
		return nil, errors.New("poller: cache ttl must be > 0")
	}
	if host == nil {
		return nil, errors.New("poller: host required")
	}
	if sched == nil {
		return nil, errors.New("poller: scheduler required")
	}

	p := &Poller{
		cfg:   cfg,
		host:  host,
		sched: sched,
		log:   logger.Discard(),
		now:   time.Now,
		warn:  rate.Sometimes{First: 1, Interval: warnInterval},
		cur:   status.InitialState(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// State returns the current display state.
func (p *Poller) State() status.DisplayState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cur
}

// Cache returns a copy of the freshness cache.
func (p *Poller) Cache() FieldCache {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cache
}

type outcome int

const (
	outcomeHold    outcome = iota // keep whatever is shown
	outcomeFresh                  // show this tick's value
	outcomeExpired                // show the placeholder
)

func (o outcome) String() string {
	switch o {
	case outcomeFresh:
		return "fresh"
	case outcomeExpired:
		return "expired"
	default:
		return "hold"
	}
}

// Tick performs exactly one poll cycle and pushes changes to the host.
// Read and parse failures degrade to "no fresh data"; Tick never fails.
func (p *Poller) Tick(ctx context.Context) status.DisplayState {
	_, span := tracer.StartSpan(ctx, "poller.tick")
	defer span.End()

	p.mu.Lock()
	defer p.mu.Unlock()

	rec := p.readStatus()

	now := p.now()
	limit := now.Add(-p.cfg.CacheTTL)
	statusDate, hasDate := rec.Time()
	tooOld := !hasDate || statusDate.Before(limit)

	for _, f := range status.Fields {
		value, known := rec.Value(f)
		o := p.decide(f, known, tooOld, limit)

		switch o {
		case outcomeFresh:
			p.show(f, status.FormatCharge(value), true)
			p.cache.Touch(f, statusDate)
		case outcomeExpired:
			p.show(f, status.Placeholder, false)
		}

		span.SetAttributes(tracer.StringAttr(f.String(), o.String()))
	}
	span.SetAttributes(tracer.BoolAttr("stale", tooOld))

	if err := p.host.Render(); err != nil {
		tracer.RecordError(span, err)
		p.log.Warn("panel render failed", "err", err)
	} else {
		tracer.SetOK(span)
	}

	p.log.Debug("tick",
		"left", p.cur.Left,
		"right", p.cur.Right,
		"case", p.cur.Case,
		"case_visible", p.cur.CaseVisible,
		"stale", tooOld,
	)

	return p.cur
}

// decide picks what f shows this tick.
//
// The left field ignores tooOld when checking expiry while right and case
// do not, so a stale record keeps a held left value but clears right/case.
// This matches the behavior the panel has always had; UniformExpiry opts
// right and case into the left rule.
func (p *Poller) decide(f status.Field, known, tooOld bool, limit time.Time) outcome {
	if !tooOld && known {
		return outcomeFresh
	}
	if tooOld && f != status.FieldLeft && !p.cfg.UniformExpiry {
		return outcomeExpired
	}
	if p.cache.Expired(f, limit) {
		return outcomeExpired
	}
	return outcomeHold
}

// show updates the display state for f and forwards it to the host.
// real is only meaningful for the case field: it drives visibility.
func (p *Poller) show(f status.Field, text string, real bool) {
	switch f {
	case status.FieldLeft:
		p.cur.Left = text
		p.host.SetLeftText(text)
	case status.FieldRight:
		p.cur.Right = text
		p.host.SetRightText(text)
	case status.FieldCase:
		p.cur.Case = text
		p.cur.CaseVisible = real
		p.host.SetCaseText(text)
		p.host.SetCaseVisible(real)
	}
}

// readStatus never fails: unusable files read as an empty record.
func (p *Poller) readStatus() status.Record {
	rec, err := status.Read(p.cfg.StatusFile)
	if err == nil {
		return rec
	}

	var perr *status.ParseError
	kind := "read"
	if errors.As(err, &perr) {
		kind = "parse"
	}

	p.log.Debug("status file unusable", "kind", kind, "path", p.cfg.StatusFile, "err", err)
	p.warn.Do(func() {
		p.log.Warn("status file unusable, showing cached values", "kind", kind, "path", p.cfg.StatusFile, "err", err)
	})
	return status.Record{}
}
