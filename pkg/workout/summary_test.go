package workout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryMessage(t *testing.T) {
	w, err := ReadPackage("RUN", []float64{15000, 1, 75})
	require.NoError(t, err)

	want := "Тип тренировки: Running; " +
		"Длительность: 1.000 ч.; " +
		"Дистанция: 9.750 км; " +
		"Ср. скорость: 9.750 км/ч; " +
		"Потрачено ккал: 699.750."
	assert.Equal(t, want, NewSummary(w).Message())
}

func TestSummaryMessageSwimming(t *testing.T) {
	w, err := ReadPackage("SWM", []float64{720, 1, 80, 25, 40})
	require.NoError(t, err)

	want := "Тип тренировки: Swimming; " +
		"Длительность: 1.000 ч.; " +
		"Дистанция: 0.994 км; " +
		"Ср. скорость: 1.000 км/ч; " +
		"Потрачено ккал: 336.000."
	assert.Equal(t, want, NewSummary(w).Message())
}

// Every numeric field renders with exactly three fractional digits,
// whatever the magnitude.
func TestSummaryMessageFixedDigits(t *testing.T) {
	s := Summary{Kind: "Running", Duration: 2, Distance: 10000, Speed: 0.5, Calories: 0}

	want := "Тип тренировки: Running; " +
		"Длительность: 2.000 ч.; " +
		"Дистанция: 10000.000 км; " +
		"Ср. скорость: 0.500 км/ч; " +
		"Потрачено ккал: 0.000."
	assert.Equal(t, want, s.Message())
}

func TestNewSummaryFields(t *testing.T) {
	w, err := ReadPackage("WLK", []float64{9000, 1, 75, 180})
	require.NoError(t, err)

	s := NewSummary(w)
	assert.Equal(t, "RaceWalking", s.Kind)
	assert.Equal(t, 1.0, s.Duration)
	assert.InDelta(t, 5.85, s.Distance, 1e-9)
	assert.InDelta(t, 5.85, s.Speed, 1e-9)
	assert.InDelta(t, 157.5, s.Calories, 1e-9)
}
