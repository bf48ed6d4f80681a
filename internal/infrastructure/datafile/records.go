package datafile

// productRecord is one entry of products.json
type productRecord struct {
	Name        string             `json:"name" yaml:"name"`
	Cost        float64            `json:"cost" yaml:"cost"`
	Servings    float64            `json:"servings" yaml:"servings"`
	Ingredients []ingredientRecord `json:"ingredients" yaml:"ingredients"`
}

// ingredientRecord is one ingredient line of a product
type ingredientRecord struct {
	Name   string  `json:"name" yaml:"name"`
	Amount float64 `json:"amount" yaml:"amount"`
	Unit   string  `json:"unit" yaml:"unit"`
}

// singleRecord is one entry of singles.json
type singleRecord struct {
	IngredientName string  `json:"ingredient_name" yaml:"ingredient_name"`
	ProductName    string  `json:"product_name,omitempty" yaml:"product_name,omitempty"`
	Cost           float64 `json:"cost" yaml:"cost"`
	TotalQuantity  float64 `json:"total_quantity" yaml:"total_quantity"`
	Unit           string  `json:"unit" yaml:"unit"`
}

// dosageRecord is one value of the dosages.json object, keyed by ingredient name.
// Pointers distinguish a missing bound from a zero bound.
type dosageRecord struct {
	Min     *float64 `json:"min" yaml:"min"`
	Optimal *float64 `json:"optimal" yaml:"optimal"`
	Max     *float64 `json:"max" yaml:"max"`
	Unit    string   `json:"unit" yaml:"unit"`
}
