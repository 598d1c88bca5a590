package main

//go:generate go build -o=../../bin/ftracker

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Yandex-Practicum/ftracker/internal/config"
	"github.com/Yandex-Practicum/ftracker/internal/ftracker"
	"github.com/Yandex-Practicum/ftracker/internal/logger"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "cannot read configuration: %s\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Level(cfg.LogLevel))
	undo := zap.ReplaceGlobals(log)

	err = run(context.Background(), os.Stdout, ftracker.ReferencePackages(), cfg.Workers)
	if err != nil {
		zap.S().Errorw("cannot report trainings", "error", err)
	}

	undo()
	_ = log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, packages []ftracker.Package, workers int) error {
	zap.S().Debugw("reading packages", "count", len(packages), "workers", workers)

	messages, err := ftracker.Report(ctx, packages, workers)
	if err != nil {
		return err
	}

	for _, msg := range messages {
		if _, err := fmt.Fprintln(w, msg); err != nil {
			return fmt.Errorf("cannot write message: %w", err)
		}
	}
	return nil
}
