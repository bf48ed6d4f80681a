package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedUnit is returned when a unit is not in the conversion table
	ErrUnsupportedUnit = errors.New("unsupported unit")
	// ErrInvalidDosageRange is returned when a dosage range violates min <= optimal <= max
	ErrInvalidDosageRange = errors.New("invalid dosage range")
	// ErrInvalidServings is returned when a product has zero or negative servings
	ErrInvalidServings = errors.New("servings must be greater than zero")
	// ErrInvalidQuantity is returned for negative costs or quantities
	ErrInvalidQuantity = errors.New("cost and quantity must not be negative")
	// ErrDataFileNotFound is returned when a required data file is missing
	ErrDataFileNotFound = errors.New("data file not found")
	// ErrMalformedData is returned when a data file cannot be decoded
	ErrMalformedData = errors.New("malformed data file")
	// ErrProductNotFound is returned when no product matches the requested name
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)

// UnsupportedUnitError reports the offending unit string.
type UnsupportedUnitError struct {
	Unit string
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("unsupported unit: %q", e.Unit)
}

// Is lets errors.Is match the ErrUnsupportedUnit sentinel.
func (e *UnsupportedUnitError) Is(target error) bool {
	return target == ErrUnsupportedUnit
}
