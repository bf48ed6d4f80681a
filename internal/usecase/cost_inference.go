package usecase

import "github.com/dosewise/backend/internal/domain"

// InferCosts groups listings by exact ingredient name and computes the
// quantity-weighted mean cost per milligram of each group.
//
// The weighted mean Σ(cost_i/qty_i × qty_i) / Σqty_i is evaluated in its
// reduced form Σcost_i / Σqty_i so a zero-quantity listing contributes no NaN.
// A group whose total quantity is zero gets a cost of 0.
func InferCosts(listings []domain.SingleIngredientListing) domain.CostTable {
	type group struct {
		cost     float64
		quantity float64
		count    int
	}

	groups := make(map[string]*group)
	for _, l := range listings {
		g, ok := groups[l.IngredientName]
		if !ok {
			g = &group{}
			groups[l.IngredientName] = g
		}
		g.cost += l.Cost
		g.quantity += l.TotalQuantityMg
		g.count++
	}

	costs := make(domain.CostTable, len(groups))
	for name, g := range groups {
		perMg := 0.0
		if g.quantity > 0 {
			perMg = g.cost / g.quantity
		}
		costs[name] = domain.IngredientCost{
			Name:       name,
			CostPerMg:  perMg,
			SampleSize: g.count,
		}
	}
	return costs
}
