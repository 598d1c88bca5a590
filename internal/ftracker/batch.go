package ftracker

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Package is a single sensor transmission: workout code and its readings.
type Package struct {
	Code     WorkoutCode
	Readings []float64
}

// ReferencePackages returns sample transmissions of each known workout
func ReferencePackages() []Package {
	return []Package{
		{Code: CodeSwimming, Readings: []float64{720, 1, 80, 25, 40}},
		{Code: CodeRunning, Readings: []float64{15000, 1, 75}},
		{Code: CodeWalking, Readings: []float64{9000, 1, 75, 180}},
	}
}

// Report reads every package and computes its message using up to workers goroutines.
// Messages are returned in packages order. First failure cancels the rest.
func Report(ctx context.Context, packages []Package, workers int) ([]InfoMessage, error) {
	if workers <= 0 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	messages := make([]InfoMessage, len(packages))
	for i, pkg := range packages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := ReadPackage(pkg.Code, pkg.Readings)
			if err != nil {
				return fmt.Errorf("package #%d (%s): %w", i, pkg.Code, err)
			}
			messages[i] = ShowTrainingInfo(t)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return messages, nil
}
