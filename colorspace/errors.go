package colorspace

import (
	"fmt"
)

// ProfileLoadError is returned when a color profile cannot be used to
// construct a color space. Err holds the underlying cause.
type ProfileLoadError struct {
	Source string
	Err    error
}

func (e *ProfileLoadError) Error() string {
	return fmt.Sprintf("failed to load color profile from %s: %s", e.Source, e.Err)
}

func (e *ProfileLoadError) Unwrap() error { return e.Err }
