package ftracker

import (
	"fmt"
	"math"
)

// WorkoutCode is a three-letter sensor identifier of workout type
type WorkoutCode string

const (
	CodeSwimming WorkoutCode = "SWM"
	CodeRunning  WorkoutCode = "RUN"
	CodeWalking  WorkoutCode = "WLK"
)

// arities holds expected readings count per workout code
var arities = map[WorkoutCode]int{
	CodeSwimming: 5,
	CodeRunning:  3,
	CodeWalking:  4,
}

// ParseWorkoutCode matches s against known workout codes, case-sensitive
func ParseWorkoutCode(s string) (WorkoutCode, error) {
	code := WorkoutCode(s)
	if _, ok := arities[code]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownWorkoutType, s)
	}
	return code, nil
}

// Arity returns number of readings expected for given workout code
func Arity(code WorkoutCode) (int, error) {
	n, ok := arities[code]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, string(code))
	}
	return n, nil
}

// ReadPackage binds sensor readings to the workout selected by code.
//
// Readings order:
//
//	SWM: action, duration, weight, pool length, pool count
//	RUN: action, duration, weight
//	WLK: action, duration, weight, height
func ReadPackage(code WorkoutCode, readings []float64) (Training, error) {
	arity, err := Arity(code)
	if err != nil {
		return nil, err
	}
	if len(readings) != arity {
		return nil, fmt.Errorf("%w: %s expects %d readings, got %d", ErrReadingsCount, code, arity, len(readings))
	}

	action, err := wholeReading("action", readings[0])
	if err != nil {
		return nil, err
	}
	duration, weight := readings[1], readings[2]

	var t Training
	switch code {
	case CodeRunning:
		t, err = NewRunning(action, duration, weight)
	case CodeWalking:
		t, err = NewSportsWalking(action, duration, weight, readings[3])
	case CodeSwimming:
		var count int
		count, err = wholeReading("pool count", readings[4])
		if err != nil {
			return nil, err
		}
		t, err = NewSwimming(action, duration, weight, readings[3], count)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %s package: %w", code, err)
	}
	return t, nil
}

func wholeReading(field string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %v", ErrInvalidReading, field, v)
	}
	return int(v), nil
}
