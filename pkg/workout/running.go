package workout

const (
	runCalorieSpeedMultiplier = 18
	runCalorieSpeedShift      = 20
)

// Running is a running workout. Distance and mean speed come from the
// shared step-based formulas.
type Running struct {
	Base
}

func init() {
	register("RUN", 3, func(data []float64) Workout {
		return Running{Base{ActionCount: data[0], DurationHours: data[1], WeightKg: data[2]}}
	})
}

func (Running) Kind() string {
	return "Running"
}

// Calories implements the running energy formula. The formula is taken as
// given from the domain model and can go negative at low mean speeds; no
// clamping is applied.
func (r Running) Calories() float64 {
	return (runCalorieSpeedMultiplier*r.MeanSpeed() - runCalorieSpeedShift) *
		r.WeightKg / metersPerKm * r.DurationHours * minPerHour
}
