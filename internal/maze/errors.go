package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when a size parameter is below its minimum.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// DimensionError describes which size parameter was rejected.
type DimensionError struct {
	Name  string // Parameter name as the user knows it (e.g. "width", "cellw")
	Value int
	Min   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s must be at least %d, got %d", e.Name, e.Min, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidDimension.
func (e *DimensionError) Unwrap() error {
	return ErrInvalidDimension
}

// CheckDimension returns a *DimensionError if value < minimum.
func CheckDimension(name string, value, minimum int) error {
	if value < minimum {
		return &DimensionError{Name: name, Value: value, Min: minimum}
	}
	return nil
}
