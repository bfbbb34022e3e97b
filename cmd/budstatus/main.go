// cmd/budstatus/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/tamzrod/buds-status/internal/config"
	"github.com/tamzrod/buds-status/internal/logger"
	"github.com/tamzrod/buds-status/internal/panel"
	"github.com/tamzrod/buds-status/internal/poller"
	"github.com/tamzrod/buds-status/internal/tracer"
)

func main() {
	if len(os.Args) > 2 {
		log.Fatal("usage: budstatus [config.yaml]")
	}

	var cfgPath string
	if len(os.Args) == 2 {
		cfgPath = os.Args[1]
	}

	// optional .env next to the working directory feeds BUDSTATUS_* overrides
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfgPath); err != nil {
		log.Fatalf("budstatus: %v", err)
	}
}

// run wires everything and blocks until ctx is cancelled.
func run(ctx context.Context, cfgPath string) error {
	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)

	// --------------------
	// Logging + tracing
	// --------------------

	lg, closeLog, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer closeLog()

	shutdownTracer, err := tracer.Setup(ctx, cfg.Tracer, nil)
	if err != nil {
		return fmt.Errorf("tracer setup failed: %w", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			lg.Warn("tracer shutdown failed", "err", err)
		}
	}()

	// --------------------
	// Panel host + poller
	// --------------------

	host, closeHost, err := panel.Build(cfg.Panel)
	if err != nil {
		return err
	}
	defer closeHost()

	p, err := poller.Build(cfg, host, lg)
	if err != nil {
		return fmt.Errorf("poller build failed: %w", err)
	}

	if err := p.Start(ctx); err != nil {
		return err
	}

	// --------------------
	// Block until signalled
	// --------------------

	<-ctx.Done()

	if err := p.Stop(); err != nil {
		lg.Warn("poller stop failed", "err", err)
	}
	return nil
}
