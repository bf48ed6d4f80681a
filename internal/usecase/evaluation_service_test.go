package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dosewise/backend/internal/domain"
)

func newTestService(source domain.CatalogSource, cache domain.CacheRepository) *EvaluationService {
	return NewEvaluationService(source, cache, EvaluationServiceConfig{})
}

func TestEvaluationService_Evaluate(t *testing.T) {
	ctx := context.Background()

	t.Run("evaluates product by exact name", func(t *testing.T) {
		source := &mockCatalogSource{catalog: exampleCatalog()}
		service := newTestService(source, newMockCacheRepository())

		eval, err := service.Evaluate(ctx, &domain.EvaluationRequest{Product: "Example Pre-Workout"})
		require.NoError(t, err)

		assert.Equal(t, "Example Pre-Workout", eval.Name)
		assert.Equal(t, 2, eval.AnalyzedIngredients)
		assert.Equal(t, 1, source.loads)
	})

	t.Run("serves repeated requests from cache", func(t *testing.T) {
		source := &mockCatalogSource{catalog: exampleCatalog()}
		cache := newMockCacheRepository()
		service := newTestService(source, cache)
		request := &domain.EvaluationRequest{
			Product:     "Example Pre-Workout",
			Ingredients: []string{"Beta-Alanine", "Caffeine Anhydrous"},
		}

		first, err := service.Evaluate(ctx, request)
		require.NoError(t, err)
		second, err := service.Evaluate(ctx, &domain.EvaluationRequest{
			Product:     "Example Pre-Workout",
			Ingredients: []string{"Caffeine Anhydrous", "Beta-Alanine"},
		})
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, cache.sets)
		assert.Equal(t, 1, cache.hits)
		assert.Equal(t, 1, source.loads)
	})

	t.Run("different filters are cached separately", func(t *testing.T) {
		cache := newMockCacheRepository()
		service := newTestService(&mockCatalogSource{catalog: exampleCatalog()}, cache)

		all, err := service.Evaluate(ctx, &domain.EvaluationRequest{Product: "Example Pre-Workout"})
		require.NoError(t, err)
		filtered, err := service.Evaluate(ctx, &domain.EvaluationRequest{
			Product:     "Example Pre-Workout",
			Ingredients: []string{"Caffeine Anhydrous"},
		})
		require.NoError(t, err)

		assert.Equal(t, 2, cache.sets)
		assert.Len(t, all.SkippedIngredients, 1)
		assert.Empty(t, filtered.SkippedIngredients)
	})

	t.Run("works without a cache", func(t *testing.T) {
		service := newTestService(&mockCatalogSource{catalog: exampleCatalog()}, nil)

		eval, err := service.Evaluate(ctx, &domain.EvaluationRequest{Product: "Budget Caffeine Blend"})
		require.NoError(t, err)
		assert.Equal(t, 2, eval.AnalyzedIngredients)
	})

	t.Run("cache write failure does not fail evaluation", func(t *testing.T) {
		cache := newMockCacheRepository()
		cache.setError = errors.New("cache full")
		service := newTestService(&mockCatalogSource{catalog: exampleCatalog()}, cache)

		_, err := service.Evaluate(ctx, &domain.EvaluationRequest{Product: "Example Pre-Workout"})
		assert.NoError(t, err)
	})

	t.Run("rejects empty request", func(t *testing.T) {
		service := newTestService(&mockCatalogSource{catalog: exampleCatalog()}, nil)

		_, err := service.Evaluate(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)

		_, err = service.Evaluate(ctx, &domain.EvaluationRequest{Product: "  "})
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("unknown product", func(t *testing.T) {
		service := newTestService(&mockCatalogSource{catalog: exampleCatalog()}, nil)

		_, err := service.Evaluate(ctx, &domain.EvaluationRequest{Product: "example pre-workout"})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("propagates load failures", func(t *testing.T) {
		service := newTestService(&mockCatalogSource{err: domain.ErrDataFileNotFound}, nil)

		_, err := service.Evaluate(ctx, &domain.EvaluationRequest{Product: "Example Pre-Workout"})
		assert.ErrorIs(t, err, domain.ErrDataFileNotFound)
	})
}

func TestEvaluationService_Costs(t *testing.T) {
	service := newTestService(&mockCatalogSource{catalog: exampleCatalog()}, nil)

	costs, err := service.Costs(context.Background())
	require.NoError(t, err)

	require.Len(t, costs, 3)
	assert.Equal(t, "Beta-Alanine", costs[0].Name)
	assert.Equal(t, "Caffeine Anhydrous", costs[1].Name)
	assert.Equal(t, "L-Theanine", costs[2].Name)
	assert.InDelta(t, 0.0004995, costs[1].CostPerMg, 1e-15)
}

func TestEvaluationService_Rank(t *testing.T) {
	service := newTestService(&mockCatalogSource{catalog: exampleCatalog()}, newMockCacheRepository())

	ranked, err := service.Rank(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.GreaterOrEqual(t, ranked[0].CostEffectivenessScore, ranked[1].CostEffectivenessScore)
	assert.Equal(t, "Budget Caffeine Blend", ranked[0].Name)
}

func TestEvaluationService_RankTiesByName(t *testing.T) {
	catalog := &domain.Catalog{
		Products: []domain.Product{
			{Name: "Zeta", Cost: 10, Servings: 10},
			{Name: "Alpha", Cost: 10, Servings: 10},
		},
		Dosages: domain.DosageTable{},
	}
	service := newTestService(&mockCatalogSource{catalog: catalog}, nil)

	ranked, err := service.Rank(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Alpha", ranked[0].Name)
	assert.Equal(t, "Zeta", ranked[1].Name)
}

func TestEvaluationService_Reload(t *testing.T) {
	ctx := context.Background()
	source := &mockCatalogSource{catalog: exampleCatalog()}
	cache := newMockCacheRepository()
	service := newTestService(source, cache)

	before, err := service.Evaluate(ctx, &domain.EvaluationRequest{Product: "Example Pre-Workout"})
	require.NoError(t, err)

	updated := exampleCatalog()
	updated.Singles = append(updated.Singles, domain.SingleIngredientListing{
		IngredientName: "Creatine Monohydrate", Cost: 25, TotalQuantityMg: 500000,
	})
	source.catalog = updated
	require.NoError(t, service.Reload(ctx))

	after, err := service.Evaluate(ctx, &domain.EvaluationRequest{Product: "Example Pre-Workout"})
	require.NoError(t, err)

	assert.Equal(t, 2, source.loads)
	assert.Equal(t, 2, before.AnalyzedIngredients)
	assert.Equal(t, 3, after.AnalyzedIngredients)
	assert.Equal(t, 0, cache.hits)
}

func TestEvaluationService_SuggestProducts(t *testing.T) {
	service := newTestService(&mockCatalogSource{catalog: exampleCatalog()}, nil)

	got := service.SuggestProducts(context.Background(), "pre-workout")
	assert.Equal(t, []string{"Example Pre-Workout"}, got)

	assert.Empty(t, service.SuggestProducts(context.Background(), "fish oil"))
}

func TestEvaluationService_CacheKeysDoNotCollide(t *testing.T) {
	ctx := context.Background()
	catalog := &domain.Catalog{
		Products: []domain.Product{
			{Name: "Stack", Cost: 10, Servings: 10, Ingredients: []domain.IngredientAmount{
				{Name: "Caffeine Anhydrous", Amount: 200, Unit: domain.UnitMilligram, AmountMg: 200},
			}},
			{Name: "Stack:Max", Cost: 20, Servings: 10, Ingredients: []domain.IngredientAmount{
				{Name: "Caffeine Anhydrous", Amount: 200, Unit: domain.UnitMilligram, AmountMg: 200},
			}},
		},
		Singles: exampleCatalog().Singles,
		Dosages: exampleCatalog().Dosages,
	}
	service := newTestService(&mockCatalogSource{catalog: catalog}, newMockCacheRepository())

	filtered, err := service.Evaluate(ctx, &domain.EvaluationRequest{Product: "Stack", Ingredients: []string{"Max:"}})
	require.NoError(t, err)
	assert.Equal(t, "Stack", filtered.Name)
	assert.Equal(t, 0, filtered.AnalyzedIngredients)

	full, err := service.Evaluate(ctx, &domain.EvaluationRequest{Product: "Stack:Max"})
	require.NoError(t, err)
	assert.Equal(t, "Stack:Max", full.Name)
	assert.Equal(t, 1, full.AnalyzedIngredients)
}

func TestGenerateCacheKey(t *testing.T) {
	a := generateCacheKey(1, &domain.EvaluationRequest{Product: "Stack", Ingredients: []string{"Max:"}})
	b := generateCacheKey(1, &domain.EvaluationRequest{Product: "Stack:Max"})
	assert.NotEqual(t, a, b)

	sorted := generateCacheKey(1, &domain.EvaluationRequest{Product: "P", Ingredients: []string{"B", "A"}})
	assert.Equal(t, generateCacheKey(1, &domain.EvaluationRequest{Product: "P", Ingredients: []string{"A", "B"}}), sorted)
	assert.NotEqual(t, sorted, generateCacheKey(2, &domain.EvaluationRequest{Product: "P", Ingredients: []string{"A", "B"}}))
}

func TestEvaluationService_EvaluateAllSkipsProductsWithoutServings(t *testing.T) {
	catalog := exampleCatalog()
	catalog.Products = append(catalog.Products, domain.Product{Name: "Broken", Cost: 5, Servings: 0})
	service := newTestService(&mockCatalogSource{catalog: catalog}, nil)

	evals, err := service.EvaluateAll(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, evals, 2)
	for _, e := range evals {
		assert.NotEqual(t, "Broken", e.Name)
	}

	_, err = service.Evaluate(context.Background(), &domain.EvaluationRequest{Product: "Broken"})
	assert.ErrorIs(t, err, domain.ErrInvalidServings)
}
