package ftracker

import (
	"errors"
)

var (
	// ErrUnknownWorkoutType indicates workout code outside of the known set
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrReadingsCount indicates that readings count does not match workout arity
	ErrReadingsCount = errors.New("unexpected readings count")
	// ErrInvalidDuration indicates zero or negative training duration
	ErrInvalidDuration = errors.New("duration must be positive")
	// ErrInvalidHeight indicates zero or negative athlete height
	ErrInvalidHeight = errors.New("height must be positive")
	// ErrInvalidReading indicates reading that cannot be bound to its field
	ErrInvalidReading = errors.New("invalid reading")
)
