package workout

const (
	swimStrokeLengthM           = 1.38 // distance covered by one stroke, meters
	swimCalorieSpeedShift       = 1.1
	swimCalorieWeightMultiplier = 2
)

// Swimming is a pool swim. One action is a stroke; mean speed comes from
// the pool geometry rather than the stroke count.
type Swimming struct {
	Base
	PoolLengthM float64
	PoolLaps    float64 // number of pool lengths swum
}

func init() {
	register("SWM", 5, func(data []float64) Workout {
		return Swimming{
			Base:        Base{ActionCount: data[0], DurationHours: data[1], WeightKg: data[2]},
			PoolLengthM: data[3],
			PoolLaps:    data[4],
		}
	})
}

func (Swimming) Kind() string {
	return "Swimming"
}

func (s Swimming) Distance() float64 {
	return s.ActionCount * swimStrokeLengthM / metersPerKm
}

// MeanSpeed derives the speed from pool geometry, ignoring the stroke
// count entirely.
func (s Swimming) MeanSpeed() float64 {
	return s.PoolLengthM * s.PoolLaps / metersPerKm / s.DurationHours
}

func (s Swimming) Calories() float64 {
	return (s.MeanSpeed() + swimCalorieSpeedShift) * swimCalorieWeightMultiplier * s.WeightKg
}
