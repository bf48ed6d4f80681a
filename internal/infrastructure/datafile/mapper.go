package datafile

import (
	"fmt"
	"math"

	"github.com/dosewise/backend/internal/domain"
)

// mapper converts decoded records into normalized domain values.
type mapper struct {
	normalizer *domain.Normalizer
	strict     bool
}

// mapProduct normalizes every ingredient amount of a product record.
func (m *mapper) mapProduct(rec productRecord) (domain.Product, error) {
	if rec.Name == "" {
		return domain.Product{}, fmt.Errorf("%w: product without a name", domain.ErrMalformedData)
	}
	if rec.Cost < 0 || !finite(rec.Cost, rec.Servings) {
		return domain.Product{}, fmt.Errorf("product %q: %w", rec.Name, domain.ErrInvalidQuantity)
	}
	if rec.Servings > 0 && !finite(rec.Cost/rec.Servings) {
		return domain.Product{}, fmt.Errorf("product %q cost per serving: %w", rec.Name, domain.ErrInvalidQuantity)
	}
	if m.strict && rec.Servings <= 0 {
		return domain.Product{}, fmt.Errorf("product %q: %w", rec.Name, domain.ErrInvalidServings)
	}

	product := domain.Product{
		Name:        rec.Name,
		Cost:        rec.Cost,
		Servings:    rec.Servings,
		Ingredients: make([]domain.IngredientAmount, 0, len(rec.Ingredients)),
	}

	for i, ing := range rec.Ingredients {
		if ing.Amount < 0 {
			return domain.Product{}, fmt.Errorf("product %q ingredient %d (%q): %w", rec.Name, i, ing.Name, domain.ErrInvalidQuantity)
		}
		amountMg, err := m.normalizer.ToCanonical(ing.Amount, ing.Unit)
		if err != nil {
			return domain.Product{}, fmt.Errorf("product %q ingredient %d (%q): %w", rec.Name, i, ing.Name, err)
		}
		if !finite(amountMg) {
			return domain.Product{}, fmt.Errorf("product %q ingredient %d (%q) amount %g %s: %w", rec.Name, i, ing.Name, ing.Amount, ing.Unit, domain.ErrInvalidQuantity)
		}
		product.Ingredients = append(product.Ingredients, domain.IngredientAmount{
			Name:     ing.Name,
			Amount:   ing.Amount,
			Unit:     domain.Unit(ing.Unit),
			AmountMg: amountMg,
		})
	}

	return product, nil
}

// mapSingle normalizes the total quantity of a single-ingredient listing.
func (m *mapper) mapSingle(rec singleRecord) (domain.SingleIngredientListing, error) {
	if rec.IngredientName == "" {
		return domain.SingleIngredientListing{}, fmt.Errorf("%w: listing without ingredient_name", domain.ErrMalformedData)
	}
	if rec.Cost < 0 || rec.TotalQuantity < 0 || !finite(rec.Cost) {
		return domain.SingleIngredientListing{}, fmt.Errorf("listing %q: %w", rec.IngredientName, domain.ErrInvalidQuantity)
	}

	quantityMg, err := m.normalizer.ToCanonical(rec.TotalQuantity, rec.Unit)
	if err != nil {
		return domain.SingleIngredientListing{}, fmt.Errorf("listing %q: %w", rec.IngredientName, err)
	}
	if !finite(quantityMg) {
		return domain.SingleIngredientListing{}, fmt.Errorf("listing %q quantity %g %s: %w", rec.IngredientName, rec.TotalQuantity, rec.Unit, domain.ErrInvalidQuantity)
	}

	return domain.SingleIngredientListing{
		IngredientName:  rec.IngredientName,
		ProductName:     rec.ProductName,
		Cost:            rec.Cost,
		TotalQuantity:   rec.TotalQuantity,
		Unit:            domain.Unit(rec.Unit),
		TotalQuantityMg: quantityMg,
	}, nil
}

// mapDosage normalizes a dosage range and, in strict mode, checks its ordering.
func (m *mapper) mapDosage(name string, rec dosageRecord) (domain.DosageRange, error) {
	if rec.Min == nil || rec.Optimal == nil || rec.Max == nil {
		return domain.DosageRange{}, fmt.Errorf("%w: dosage %q needs min, optimal and max", domain.ErrMalformedData, name)
	}

	factor, err := m.normalizer.Factor(rec.Unit)
	if err != nil {
		return domain.DosageRange{}, fmt.Errorf("dosage %q: %w", name, err)
	}

	r := domain.DosageRange{
		IngredientName: name,
		Unit:           domain.Unit(rec.Unit),
		Min:            *rec.Min,
		Optimal:        *rec.Optimal,
		Max:            *rec.Max,
		MinMg:          *rec.Min * factor,
		OptimalMg:      *rec.Optimal * factor,
		MaxMg:          *rec.Max * factor,
	}

	if !finite(r.MinMg, r.OptimalMg, r.MaxMg) {
		return domain.DosageRange{}, fmt.Errorf("dosage %q (min=%g optimal=%g max=%g): %w", name, r.Min, r.Optimal, r.Max, domain.ErrInvalidQuantity)
	}

	if m.strict {
		if err := r.Validate(); err != nil {
			return domain.DosageRange{}, fmt.Errorf("dosage %q (min=%g optimal=%g max=%g): %w", name, r.Min, r.Optimal, r.Max, err)
		}
	}
	return r, nil
}

// finite reports whether every value is neither NaN nor infinite.
func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
