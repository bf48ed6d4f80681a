package usecase

import (
	"context"
	"time"

	"github.com/dosewise/backend/internal/domain"
)

// exampleCatalog mirrors the sample data written by `dosewise init`.
func exampleCatalog() *domain.Catalog {
	return &domain.Catalog{
		Products: []domain.Product{
			{
				Name:     "Example Pre-Workout",
				Cost:     39.99,
				Servings: 30,
				Ingredients: []domain.IngredientAmount{
					{Name: "Caffeine Anhydrous", Amount: 200, Unit: domain.UnitMilligram, AmountMg: 200},
					{Name: "Beta-Alanine", Amount: 3.2, Unit: domain.UnitGram, AmountMg: 3200},
					{Name: "Creatine Monohydrate", Amount: 5, Unit: domain.UnitGram, AmountMg: 5000},
				},
			},
			{
				Name:     "Budget Caffeine Blend",
				Cost:     10,
				Servings: 50,
				Ingredients: []domain.IngredientAmount{
					{Name: "Caffeine Anhydrous", Amount: 300, Unit: domain.UnitMilligram, AmountMg: 300},
					{Name: "L-Theanine", Amount: 100, Unit: domain.UnitMilligram, AmountMg: 100},
				},
			},
		},
		Singles: []domain.SingleIngredientListing{
			{IngredientName: "Caffeine Anhydrous", Cost: 9.99, TotalQuantity: 20, Unit: domain.UnitGram, TotalQuantityMg: 20000},
			{IngredientName: "Beta-Alanine", Cost: 19.99, TotalQuantity: 500, Unit: domain.UnitGram, TotalQuantityMg: 500000},
			{IngredientName: "L-Theanine", Cost: 15, TotalQuantity: 100, Unit: domain.UnitGram, TotalQuantityMg: 100000},
		},
		Dosages: domain.DosageTable{
			"Caffeine Anhydrous":   {IngredientName: "Caffeine Anhydrous", Unit: domain.UnitMilligram, Min: 100, Optimal: 200, Max: 400, MinMg: 100, OptimalMg: 200, MaxMg: 400},
			"Beta-Alanine":         {IngredientName: "Beta-Alanine", Unit: domain.UnitMilligram, Min: 1600, Optimal: 3200, Max: 6400, MinMg: 1600, OptimalMg: 3200, MaxMg: 6400},
			"Creatine Monohydrate": {IngredientName: "Creatine Monohydrate", Unit: domain.UnitMilligram, Min: 3000, Optimal: 5000, Max: 10000, MinMg: 3000, OptimalMg: 5000, MaxMg: 10000},
			"L-Theanine":           {IngredientName: "L-Theanine", Unit: domain.UnitMilligram, Min: 100, Optimal: 200, Max: 400, MinMg: 100, OptimalMg: 200, MaxMg: 400},
		},
	}
}

// mockCatalogSource is a mock implementation of domain.CatalogSource
type mockCatalogSource struct {
	catalog *domain.Catalog
	err     error
	loads   int
}

func (m *mockCatalogSource) Load(ctx context.Context) (*domain.Catalog, error) {
	m.loads++
	if m.err != nil {
		return nil, m.err
	}
	return m.catalog, nil
}

// mockCacheRepository is a mock implementation of domain.CacheRepository
type mockCacheRepository struct {
	data     map[string]interface{}
	setError error
	hits     int
	sets     int
}

func newMockCacheRepository() *mockCacheRepository {
	return &mockCacheRepository{data: make(map[string]interface{})}
}

func (m *mockCacheRepository) Get(ctx context.Context, key string) (interface{}, error) {
	if value, ok := m.data[key]; ok {
		m.hits++
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *mockCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.setError != nil {
		return m.setError
	}
	m.sets++
	m.data[key] = value
	return nil
}

func (m *mockCacheRepository) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}
