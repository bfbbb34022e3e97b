// internal/poller/scheduler.go
package poller

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// CronScheduler runs jobs on a robfig/cron engine.
// cron.Every has whole-second resolution; shorter intervals are rejected.
type CronScheduler struct {
	Log *slog.Logger
}

func (s CronScheduler) Every(interval time.Duration, fn func()) (func(), error) {
	if interval < time.Second {
		return nil, errors.New("cron scheduler: interval must be >= 1s")
	}

	l := cronLogger{log: s.Log}
	c := cron.New(
		cron.WithLogger(l),
		cron.WithChain(cron.Recover(l), cron.SkipIfStillRunning(l)),
	)
	c.Schedule(cron.Every(interval), cron.FuncJob(fn))
	c.Start()

	return func() {
		<-c.Stop().Done()
	}, nil
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	if l.log != nil {
		l.log.Debug("cron: "+msg, keysAndValues...)
	}
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	if l.log != nil {
		l.log.Error("cron: "+msg, append([]interface{}{"err", err}, keysAndValues...)...)
	}
}

// TickerScheduler drives fn from a time.Ticker in one goroutine.
// One loop per schedule. No overlap. No catch-up.
type TickerScheduler struct{}

func (TickerScheduler) Every(interval time.Duration, fn func()) (func(), error) {
	if interval <= 0 {
		return nil, errors.New("ticker scheduler: interval must be > 0")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}, nil
}
