package datafile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrExamplesExist is returned by WriteExamples when a data file is already present and force is off.
var ErrExamplesExist = errors.New("data file already exists")

func bound(v float64) *float64 { return &v }

func exampleProducts() []productRecord {
	return []productRecord{
		{
			Name:     "Example Pre-Workout",
			Cost:     39.99,
			Servings: 30,
			Ingredients: []ingredientRecord{
				{Name: "Caffeine Anhydrous", Amount: 200, Unit: "mg"},
				{Name: "Beta-Alanine", Amount: 3.2, Unit: "g"},
				{Name: "Creatine Monohydrate", Amount: 5, Unit: "g"},
			},
		},
	}
}

func exampleSingles() []singleRecord {
	return []singleRecord{
		{
			IngredientName: "Caffeine Anhydrous",
			ProductName:    "Brand X Caffeine 200mg 100 Tabs",
			Cost:           9.99,
			TotalQuantity:  20,
			Unit:           "g",
		},
		{
			IngredientName: "Beta-Alanine",
			ProductName:    "Brand Y Beta-Alanine Powder 500g",
			Cost:           19.99,
			TotalQuantity:  500,
			Unit:           "g",
		},
	}
}

func exampleDosages() map[string]dosageRecord {
	return map[string]dosageRecord{
		"Caffeine Anhydrous":   {Min: bound(100), Optimal: bound(200), Max: bound(400), Unit: "mg"},
		"Beta-Alanine":         {Min: bound(1600), Optimal: bound(3200), Max: bound(6400), Unit: "mg"},
		"Creatine Monohydrate": {Min: bound(3000), Optimal: bound(5000), Max: bound(10000), Unit: "mg"},
	}
}

// WriteExamples writes sample products, singles and dosages files into dir,
// creating it if needed. Existing files are only replaced when force is set.
func WriteExamples(dir string, force bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	files := []struct {
		name string
		data interface{}
	}{
		{DefaultProductsFile, exampleProducts()},
		{DefaultSinglesFile, exampleSingles()},
		{DefaultDosagesFile, exampleDosages()},
	}

	if !force {
		for _, f := range files {
			path := filepath.Join(dir, f.name)
			if _, err := os.Stat(path); err == nil {
				return nil, fmt.Errorf("%w: %s", ErrExamplesExist, path)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("stat %s: %w", path, err)
			}
		}
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		data, err := json.MarshalIndent(f.data, "", "  ")
		if err != nil {
			return written, fmt.Errorf("encode %s: %w", f.name, err)
		}
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	return written, nil
}
