package domain

import "strings"

// Unit is a mass unit accepted in data files.
type Unit string

const (
	UnitMilligram Unit = "mg"
	UnitGram      Unit = "g"
	UnitKilogram  Unit = "kg"
	UnitMicrogram Unit = "mcg"
)

// CanonicalUnit is the unit every amount is normalized to before scoring.
const CanonicalUnit = UnitMilligram

// DefaultConversions maps each supported unit to its factor in milligrams.
func DefaultConversions() map[Unit]float64 {
	return map[Unit]float64{
		UnitMilligram: 1,
		UnitGram:      1000,
		UnitKilogram:  1000000,
		UnitMicrogram: 0.001,
	}
}

// Normalizer converts amounts into milligrams using a fixed conversion table.
// The table is copied on construction and never mutated.
type Normalizer struct {
	factors map[Unit]float64
}

// NewNormalizer creates a normalizer owning a private copy of factors.
func NewNormalizer(factors map[Unit]float64) *Normalizer {
	table := make(map[Unit]float64, len(factors))
	for unit, factor := range factors {
		table[Unit(strings.ToLower(string(unit)))] = factor
	}
	return &Normalizer{factors: table}
}

// NewDefaultNormalizer creates a normalizer for mg, g, kg and mcg.
func NewDefaultNormalizer() *Normalizer {
	return NewNormalizer(DefaultConversions())
}

// ToCanonical converts amount in unit to milligrams. Unit matching is case-insensitive.
func (n *Normalizer) ToCanonical(amount float64, unit string) (float64, error) {
	factor, err := n.Factor(unit)
	if err != nil {
		return 0, err
	}
	return amount * factor, nil
}

// Factor returns the milligram factor for unit.
func (n *Normalizer) Factor(unit string) (float64, error) {
	factor, ok := n.factors[Unit(strings.ToLower(unit))]
	if !ok {
		return 0, &UnsupportedUnitError{Unit: unit}
	}
	return factor, nil
}
