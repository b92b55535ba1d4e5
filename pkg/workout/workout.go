// Package workout converts raw fitness-tracker sensor readings into
// distance, mean speed and calorie figures for the supported workout
// kinds, and renders them as fixed-template summary messages.
package workout

// Shared conversion constants. Swimming carries its own stroke length.
const (
	stepLengthM = 0.65 // distance covered by one step, meters
	metersPerKm = 1000
	minPerHour  = 60
)

// Workout is the calculation model shared by all workout kinds. Every
// method is a pure function of the record's fields and may be called any
// number of times.
type Workout interface {
	// Kind returns the workout kind name used in the rendered summary.
	Kind() string

	// Duration returns the workout duration in hours.
	Duration() float64

	// Distance returns the covered distance in km.
	Distance() float64

	// MeanSpeed returns the mean speed in km/h. Callers must supply a
	// positive duration; a zero duration yields an infinite speed.
	MeanSpeed() float64

	// Calories returns the energy spent in kcal.
	Calories() float64
}

// Base holds the raw motion counters common to every workout kind.
// Records are constructed fresh from one sensor package and never shared.
type Base struct {
	ActionCount   float64 // elementary motion units: steps or strokes
	DurationHours float64
	WeightKg      float64
}

func (b Base) Duration() float64 {
	return b.DurationHours
}

func (b Base) Distance() float64 {
	return b.ActionCount * stepLengthM / metersPerKm
}

func (b Base) MeanSpeed() float64 {
	return b.Distance() / b.DurationHours
}

// Calories panics: the base record carries no calorie formula of its own.
// Every concrete kind overrides it, so reaching this is a programming
// error, not a runtime condition.
func (Base) Calories() float64 {
	panic("workout: Calories is only implemented by concrete workout kinds")
}
