package domain

// IngredientAmount is one ingredient line of a multi-ingredient product.
type IngredientAmount struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     Unit    `json:"unit"`
	AmountMg float64 `json:"amount_mg"` // Amount converted to milligrams
}

// Product is a multi-ingredient supplement product.
type Product struct {
	Name        string             `json:"name"`
	Cost        float64            `json:"cost"`
	Servings    float64            `json:"servings"`
	Ingredients []IngredientAmount `json:"ingredients"`
}

// CostPerServing returns Cost / Servings, failing fast when servings is not positive.
func (p Product) CostPerServing() (float64, error) {
	if p.Servings <= 0 {
		return 0, ErrInvalidServings
	}
	return p.Cost / p.Servings, nil
}

// SingleIngredientListing is one purchasable single-ingredient product.
type SingleIngredientListing struct {
	IngredientName  string  `json:"ingredient_name"`
	ProductName     string  `json:"product_name,omitempty"`
	Cost            float64 `json:"cost"`
	TotalQuantity   float64 `json:"total_quantity"`
	Unit            Unit    `json:"unit"`
	TotalQuantityMg float64 `json:"total_quantity_mg"`
}

// DosageRange is the published min/optimal/max dose of an ingredient.
type DosageRange struct {
	IngredientName string  `json:"ingredient_name"`
	Unit           Unit    `json:"unit"`
	Min            float64 `json:"min"`
	Optimal        float64 `json:"optimal"`
	Max            float64 `json:"max"`
	MinMg          float64 `json:"min_mg"`
	OptimalMg      float64 `json:"optimal_mg"`
	MaxMg          float64 `json:"max_mg"`
}

// Validate checks 0 <= min <= optimal <= max on the normalized values.
func (r DosageRange) Validate() error {
	if r.MinMg < 0 || r.MinMg > r.OptimalMg || r.OptimalMg > r.MaxMg {
		return ErrInvalidDosageRange
	}
	return nil
}

// DosageTable maps an ingredient name to its dosage range. Keys match exactly.
type DosageTable map[string]DosageRange

// Catalog holds every normalized record loaded for a session.
type Catalog struct {
	Products []Product
	Singles  []SingleIngredientListing
	Dosages  DosageTable
}

// FindProduct returns the product whose name equals name exactly.
func (c *Catalog) FindProduct(name string) (Product, error) {
	for _, p := range c.Products {
		if p.Name == name {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}
