package main

import (
	"fmt"
	"math"
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

const messageTemplate = "Training type: %s; Duration: %.3f h.; Distance: %.3f km; Avg. speed: %.3f km/h; Calories burned: %.3f."

func distance(action int, step float64) float64 {
	return float64(action) * step / mInKm
}

func meanSpeed(action int, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return distance(action, lenStep) / duration
}

func swimmingMeanSpeed(lengthPool, countPool int, duration float64) float64 {
	if duration == 0 {
		return 0
	}
	return float64(lengthPool) * float64(countPool) / mInKm / duration
}

func runningSpentCalories(action int, weight, duration float64) float64 {
	speed := meanSpeed(action, duration)
	return (float64(runningCaloriesMeanSpeedMultiplier*speed) + runningCaloriesMeanSpeedShift) * weight / mInKm * (duration * minInH)
}

func walkingSpentCalories(action int, duration, weight, height float64) float64 {
	speed := meanSpeed(action, duration)
	return (float64(walkingCaloriesWeightMultiplier*weight) + float64((math.Pow(speed*kmhInMsec, 2.0)/(height/cmInM))*walkingSpeedHeightMultiplier*weight)) * (duration * minInH)
}

func swimmingSpentCalories(lengthPool, countPool int, duration, weight float64) float64 {
	speed := swimmingMeanSpeed(lengthPool, countPool, duration)
	return (speed + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * weight * duration
}

func message(trainingType string, duration, distance, speed, calories float64) string {
	return fmt.Sprintf(messageTemplate, trainingType, duration, distance, speed, calories)
}

// referenceLines returns expected driver output for reference packages
func referenceLines() []string {
	return []string{
		message("Swimming", 1, distance(720, swimmingLenStep), swimmingMeanSpeed(25, 40, 1), swimmingSpentCalories(25, 40, 1, 80)),
		message("Running", 1, distance(15000, lenStep), meanSpeed(15000, 1), runningSpentCalories(15000, 75, 1)),
		message("SportsWalking", 1, distance(9000, lenStep), meanSpeed(9000, 1), walkingSpentCalories(9000, 1, 75, 180)),
	}
}
