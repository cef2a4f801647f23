package cadnano

import "fmt"

// LoadError is returned when a design can't be opened or decoded.
type LoadError struct {
	// Path of the design, empty when it was parsed from memory
	Path string

	Err error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to load design: %v", e.Err)
	}
	return fmt.Sprintf("failed to load design %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
