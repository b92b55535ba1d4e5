package workout

import "fmt"

// messageTemplate is the fixed tracker display format. Every numeric
// field renders with exactly three fractional digits.
const messageTemplate = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// Summary is the computed, read-only result of one workout, ready for
// rendering. It keeps no reference to the record it was derived from.
type Summary struct {
	Kind     string
	Duration float64 // hours
	Distance float64 // km
	Speed    float64 // km/h
	Calories float64 // kcal
}

// NewSummary computes all figures for a workout record.
func NewSummary(w Workout) Summary {
	return Summary{
		Kind:     w.Kind(),
		Duration: w.Duration(),
		Distance: w.Distance(),
		Speed:    w.MeanSpeed(),
		Calories: w.Calories(),
	}
}

// Message renders the summary into the fixed display template. The caller
// decides where the string goes; nothing is printed here.
func (s Summary) Message() string {
	return fmt.Sprintf(messageTemplate, s.Kind, s.Duration, s.Distance, s.Speed, s.Calories)
}
