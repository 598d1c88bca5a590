package ftracker

import (
	"fmt"
)

const (
	lenStep   = 0.65
	mInKm     = 1000
	minInH    = 60
	kmhInMsec = 0.278
	cmInM     = 100

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79

	swimmingLenStep                  = 1.38
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Training is a closed set of workout variants: Running, SportsWalking and Swimming.
type Training interface {
	// Distance returns covered distance in km
	Distance() float64
	// MeanSpeed returns average speed in km/h
	MeanSpeed() float64
	// SpentCalories returns burned energy in kcal
	SpentCalories() float64
	// Hours returns training duration in hours
	Hours() float64
	// MinutesDuration returns training duration in minutes
	MinutesDuration() float64
	// Name returns training display name
	Name() string
	// Info returns report of the training
	Info() InfoMessage

	training()
}

var (
	_ Training = Running{}
	_ Training = SportsWalking{}
	_ Training = Swimming{}
)

// Base holds readings shared by every workout.
// Action is steps count for running and walking and strokes count for swimming.
type Base struct {
	Action   int
	Duration float64 // hours
	Weight   float64 // kg
}

func newBase(action int, duration, weight float64) (Base, error) {
	if action < 0 {
		return Base{}, fmt.Errorf("%w: negative action count %d", ErrInvalidReading, action)
	}
	if duration <= 0 {
		return Base{}, fmt.Errorf("%w: got %v", ErrInvalidDuration, duration)
	}
	return Base{Action: action, Duration: duration, Weight: weight}, nil
}

// Hours returns training duration in hours
func (b Base) Hours() float64 {
	return b.Duration
}

// MinutesDuration returns training duration in minutes
func (b Base) MinutesDuration() float64 {
	return b.Duration * minInH
}

func (b Base) distance(step float64) float64 {
	return float64(b.Action) * step / mInKm
}

func (b Base) meanSpeed(distance float64) float64 {
	return distance / b.Duration
}

// Running is a running workout.
type Running struct {
	Base
}

// NewRunning validates readings and returns running workout
func NewRunning(action int, duration, weight float64) (Running, error) {
	base, err := newBase(action, duration, weight)
	if err != nil {
		return Running{}, err
	}
	return Running{Base: base}, nil
}

func (r Running) Distance() float64 {
	return r.distance(lenStep)
}

func (r Running) MeanSpeed() float64 {
	return r.meanSpeed(r.Distance())
}

func (r Running) SpentCalories() float64 {
	// explicit conversion forbids fused multiply-add
	shifted := float64(runningCaloriesMeanSpeedMultiplier*r.MeanSpeed()) + runningCaloriesMeanSpeedShift
	return shifted * r.Weight / mInKm * r.MinutesDuration()
}

func (r Running) Name() string { return "Running" }

func (r Running) Info() InfoMessage { return ShowTrainingInfo(r) }

func (Running) training() {}

// SportsWalking is a race walking workout.
type SportsWalking struct {
	Base
	Height float64 // cm
}

// NewSportsWalking validates readings and returns walking workout
func NewSportsWalking(action int, duration, weight, height float64) (SportsWalking, error) {
	base, err := newBase(action, duration, weight)
	if err != nil {
		return SportsWalking{}, err
	}
	if height <= 0 {
		return SportsWalking{}, fmt.Errorf("%w: got %v", ErrInvalidHeight, height)
	}
	return SportsWalking{Base: base, Height: height}, nil
}

func (w SportsWalking) Distance() float64 {
	return w.distance(lenStep)
}

func (w SportsWalking) MeanSpeed() float64 {
	return w.meanSpeed(w.Distance())
}

func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed() * kmhInMsec
	// explicit conversions forbid fused multiply-add
	weightPart := float64(walkingCaloriesWeightMultiplier * w.Weight)
	speedPart := float64(speed * speed / (w.Height / cmInM) * walkingSpeedHeightMultiplier * w.Weight)
	return (weightPart + speedPart) * w.MinutesDuration()
}

func (w SportsWalking) Name() string { return "SportsWalking" }

func (w SportsWalking) Info() InfoMessage { return ShowTrainingInfo(w) }

func (SportsWalking) training() {}

// Swimming is a pool swimming workout.
type Swimming struct {
	Base
	PoolLength float64 // m
	PoolCount  int
}

// NewSwimming validates readings and returns swimming workout
func NewSwimming(action int, duration, weight, poolLength float64, poolCount int) (Swimming, error) {
	base, err := newBase(action, duration, weight)
	if err != nil {
		return Swimming{}, err
	}
	if poolCount < 0 {
		return Swimming{}, fmt.Errorf("%w: negative pool count %d", ErrInvalidReading, poolCount)
	}
	return Swimming{Base: base, PoolLength: poolLength, PoolCount: poolCount}, nil
}

func (s Swimming) Distance() float64 {
	return s.distance(swimmingLenStep)
}

// MeanSpeed is computed from pool length and laps, not from Distance.
func (s Swimming) MeanSpeed() float64 {
	return s.PoolLength * float64(s.PoolCount) / mInKm / s.Duration
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.Weight * s.Duration
}

func (s Swimming) Name() string { return "Swimming" }

func (s Swimming) Info() InfoMessage { return ShowTrainingInfo(s) }

func (Swimming) training() {}

// Stats returns distance (km), mean speed (km/h) and spent calories (kcal) of given training.
func Stats(t Training) (distance, speed, calories float64) {
	switch v := t.(type) {
	case Running:
		return v.Distance(), v.MeanSpeed(), v.SpentCalories()
	case SportsWalking:
		return v.Distance(), v.MeanSpeed(), v.SpentCalories()
	case Swimming:
		return v.Distance(), v.MeanSpeed(), v.SpentCalories()
	}
	panic(fmt.Sprintf("ftracker: unexpected training %T", t))
}
