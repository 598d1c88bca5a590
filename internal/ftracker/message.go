package ftracker

import (
	"fmt"
)

const messageTemplate = "Training type: %s; Duration: %.3f h.; Distance: %.3f km; Avg. speed: %.3f km/h; Calories burned: %.3f."

// InfoMessage is a computed report of single training.
type InfoMessage struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// ShowTrainingInfo computes training statistics once and wraps them into InfoMessage
func ShowTrainingInfo(t Training) InfoMessage {
	distance, speed, calories := Stats(t)
	return InfoMessage{
		TrainingType: t.Name(),
		Duration:     t.Hours(),
		Distance:     distance,
		Speed:        speed,
		Calories:     calories,
	}
}

// String renders message with three-decimal precision
func (m InfoMessage) String() string {
	return fmt.Sprintf(messageTemplate, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}
