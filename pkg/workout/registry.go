package workout

import (
	"fmt"
	"sort"
)

type constructor struct {
	arity int
	build func(data []float64) Workout
}

// registry maps sensor activity codes to workout constructors. Each kind
// registers itself in its init function; the map is read-only afterwards.
var registry = make(map[string]constructor)

func register(code string, arity int, build func([]float64) Workout) {
	if _, exists := registry[code]; exists {
		panic(fmt.Sprintf("workout: constructor already registered for code %s", code))
	}
	registry[code] = constructor{arity: arity, build: build}
}

// Codes returns the recognized activity codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ReadPackage selects the workout kind for a sensor activity code and
// constructs its record from the positional payload. It returns
// *UnknownKindError for an unrecognized code and *ArityError when the
// payload length does not match the kind's field count.
func ReadPackage(code string, data []float64) (Workout, error) {
	c, ok := registry[code]
	if !ok {
		return nil, &UnknownKindError{Code: code}
	}
	if len(data) != c.arity {
		return nil, &ArityError{Code: code, Want: c.arity, Got: len(data)}
	}
	return c.build(data), nil
}
