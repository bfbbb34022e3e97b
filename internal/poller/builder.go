// internal/poller/builder.go
package poller

import (
	"fmt"
	"log/slog"
	"time"

	cfg "github.com/tamzrod/buds-status/internal/config"
)

// Build constructs a Poller from validated, normalized configuration.
// The host is built by the caller; the poller only drives it.
func Build(c *cfg.Config, host Host, log *slog.Logger) (*Poller, error) {
	sched, err := BuildScheduler(c.Poll, log)
	if err != nil {
		return nil, err
	}

	return New(
		Config{
			StatusFile:    c.Status.File,
			Interval:      time.Duration(c.Poll.IntervalMs) * time.Millisecond,
			CacheTTL:      time.Duration(c.Poll.CacheTTLSeconds) * time.Second,
			UniformExpiry: c.Poll.UniformExpiry,
		},
		host,
		sched,
		WithLogger(log.With("component", "poller")),
	)
}

// BuildScheduler picks the scheduler named in config.
func BuildScheduler(pc cfg.PollConfig, log *slog.Logger) (Scheduler, error) {
	switch pc.Scheduler {
	case "cron", "":
		return CronScheduler{Log: log.With("component", "cron")}, nil
	case "ticker":
		return TickerScheduler{}, nil
	default:
		return nil, fmt.Errorf("poller: unknown scheduler %q", pc.Scheduler)
	}
}
