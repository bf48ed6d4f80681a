package usecase

import "github.com/dosewise/backend/internal/domain"

// BoundaryScore is awarded for a dose exactly at the minimum or maximum.
const BoundaryScore = 0.25

// ScoreDosage maps a dose onto [0,1] against a min/optimal/max range.
// Branches are checked in a fixed order so that degenerate ranges
// (min == optimal or optimal == max) never reach an interpolation with a
// zero denominator.
func ScoreDosage(amountMg, minMg, optimalMg, maxMg float64) (float64, domain.ScoreReason) {
	switch {
	case amountMg < minMg:
		return 0, domain.ReasonBelowMinimum
	case amountMg == minMg:
		return BoundaryScore, domain.ReasonAtMinimum
	case amountMg > maxMg:
		return 0, domain.ReasonAboveMaximum
	case amountMg == maxMg:
		return BoundaryScore, domain.ReasonAtMaximum
	case amountMg == optimalMg:
		return 1, domain.ReasonAtOptimal
	case amountMg < optimalMg:
		return BoundaryScore + (1-BoundaryScore)*(amountMg-minMg)/(optimalMg-minMg), domain.ReasonBetweenMinAndOptimal
	default:
		return 1 - (1-BoundaryScore)*(amountMg-optimalMg)/(maxMg-optimalMg), domain.ReasonBetweenOptimalAndMax
	}
}

// ScoreIngredient scores amountMg of name against its dosage range.
func ScoreIngredient(name string, amountMg float64, r domain.DosageRange) domain.DosageScore {
	score, reason := ScoreDosage(amountMg, r.MinMg, r.OptimalMg, r.MaxMg)
	return domain.DosageScore{
		Name:      name,
		Score:     score,
		AmountMg:  amountMg,
		MinMg:     r.MinMg,
		OptimalMg: r.OptimalMg,
		MaxMg:     r.MaxMg,
		Reason:    reason,
	}
}
