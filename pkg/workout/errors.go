package workout

import "fmt"

// UnknownKindError indicates a sensor package carried an activity code
// outside the recognized set. The offending code is kept for diagnostics.
type UnknownKindError struct {
	Code string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("workout: unknown workout kind %q", e.Code)
}

// ArityError indicates a sensor payload whose length does not match the
// positional field count of the selected workout kind.
type ArityError struct {
	Code string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("workout: package %s carries %d values, want %d", e.Code, e.Got, e.Want)
}
