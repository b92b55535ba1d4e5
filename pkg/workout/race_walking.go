package workout

import "math"

const (
	walkCalorieWeightMultiplier = 0.035
	walkCalorieSpeedMultiplier  = 0.029
)

// RaceWalking is a race-walking workout. The calorie formula additionally
// needs the athlete's height.
type RaceWalking struct {
	Base
	HeightCm float64
}

func init() {
	register("WLK", 4, func(data []float64) Workout {
		return RaceWalking{
			Base:     Base{ActionCount: data[0], DurationHours: data[1], WeightKg: data[2]},
			HeightCm: data[3],
		}
	})
}

func (RaceWalking) Kind() string {
	return "RaceWalking"
}

// Calories implements the race-walking energy formula. The speed²/height
// term is floored toward negative infinity, not truncated toward zero. A
// zero height yields an infinite result.
func (w RaceWalking) Calories() float64 {
	speed := w.MeanSpeed()
	return (walkCalorieWeightMultiplier*w.WeightKg +
		math.Floor(speed*speed/w.HeightCm)*walkCalorieSpeedMultiplier*w.WeightKg) *
		w.DurationHours * minPerHour
}
