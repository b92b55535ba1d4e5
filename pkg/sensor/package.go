// Package sensor decodes raw tracker packages: an activity code plus the
// ordered numeric payload read from the device counters.
package sensor

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Package is one raw reading produced by the tracker.
type Package struct {
	WorkoutType string    `json:"workout_type"`
	Data        []float64 `json:"data"`
}

// Decode reads a JSON array of sensor packages.
func Decode(r io.Reader) ([]Package, error) {
	var pkgs []Package
	if err := json.NewDecoder(r).Decode(&pkgs); err != nil {
		return nil, fmt.Errorf("decode sensor packages: %w", err)
	}
	return pkgs, nil
}

// LoadFile decodes sensor packages from a JSON file.
func LoadFile(path string) ([]Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open package file: %w", err)
	}
	defer f.Close()

	pkgs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pkgs, nil
}

// Samples returns the tracker vendor's reference packages, used by the
// driver when no input file is supplied.
func Samples() []Package {
	return []Package{
		{WorkoutType: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{WorkoutType: "RUN", Data: []float64{15000, 1, 75}},
		{WorkoutType: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}
