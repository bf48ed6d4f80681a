package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dosewise/backend/internal/domain"
)

// EvaluationServiceConfig holds configuration for the evaluation service
type EvaluationServiceConfig struct {
	CacheTTL time.Duration
	Logger   *slog.Logger
}

// EvaluationService loads a catalog once per session, infers ingredient costs
// from it and evaluates products on demand.
type EvaluationService struct {
	source   domain.CatalogSource
	cache    domain.CacheRepository
	cacheTTL time.Duration
	logger   *slog.Logger
	matcher  *NameMatcher

	mu         sync.RWMutex
	catalog    *domain.Catalog
	costs      domain.CostTable
	generation int
}

// NewEvaluationService creates a new evaluation service. cache may be nil.
func NewEvaluationService(
	source domain.CatalogSource,
	cache domain.CacheRepository,
	config EvaluationServiceConfig,
) *EvaluationService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &EvaluationService{
		source:   source,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
		matcher:  NewNameMatcher(0),
	}
}

// Reload reads the catalog again and recomputes the cost table.
// Cached evaluations from the previous catalog are no longer served.
func (s *EvaluationService) Reload(ctx context.Context) error {
	catalog, err := s.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	costs := InferCosts(catalog.Singles)

	s.mu.Lock()
	s.catalog = catalog
	s.costs = costs
	s.generation++
	s.mu.Unlock()

	s.logger.Info("catalog loaded",
		"products", len(catalog.Products),
		"singles", len(catalog.Singles),
		"dosages", len(catalog.Dosages),
		"costed_ingredients", len(costs))
	return nil
}

// session returns the loaded catalog, loading it on first use.
func (s *EvaluationService) session(ctx context.Context) (*domain.Catalog, domain.CostTable, int, error) {
	s.mu.RLock()
	catalog, costs, gen := s.catalog, s.costs, s.generation
	s.mu.RUnlock()
	if catalog != nil {
		return catalog, costs, gen, nil
	}

	if err := s.Reload(ctx); err != nil {
		return nil, nil, 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog, s.costs, s.generation, nil
}

// Products returns the catalog's products in file order.
func (s *EvaluationService) Products(ctx context.Context) ([]domain.Product, error) {
	catalog, _, _, err := s.session(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Products, nil
}

// Costs returns the inferred cost table sorted by ingredient name.
func (s *EvaluationService) Costs(ctx context.Context) ([]domain.IngredientCost, error) {
	_, costs, _, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]domain.IngredientCost, 0, len(costs))
	for _, c := range costs {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list, nil
}

// SuggestProducts returns product names resembling name, for not-found messages.
func (s *EvaluationService) SuggestProducts(ctx context.Context, name string) []string {
	catalog, _, _, err := s.session(ctx)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(catalog.Products))
	for _, p := range catalog.Products {
		names = append(names, p.Name)
	}
	return s.matcher.Suggest(name, names)
}

// Evaluate values the requested product. Results are cached per product and filter.
func (s *EvaluationService) Evaluate(
	ctx context.Context,
	request *domain.EvaluationRequest,
) (*domain.ProductEvaluation, error) {
	if request == nil || strings.TrimSpace(request.Product) == "" {
		return nil, domain.ErrInvalidRequest
	}

	catalog, costs, gen, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	cacheKey := generateCacheKey(gen, request)
	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		s.logger.Debug("evaluation cache hit", "product", request.Product)
		return cached, nil
	}

	product, err := catalog.FindProduct(request.Product)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, request.Product)
	}

	eval, err := EvaluateProduct(product, costs, catalog.Dosages, domain.NewIngredientFilter(request.Ingredients...))
	if err != nil {
		return nil, err
	}

	s.logger.Debug("product evaluated",
		"product", eval.Name,
		"analyzed", eval.AnalyzedIngredients,
		"skipped", len(eval.SkippedIngredients),
		"score", eval.CostEffectivenessScore)

	if err := s.setInCache(ctx, cacheKey, eval); err != nil {
		s.logger.Warn("failed to cache evaluation", "product", eval.Name, "error", err)
	}

	return &eval, nil
}

// EvaluateAll values every product in catalog order with the same filter.
// Products that cannot be valued, such as those without servings, are logged and left out.
func (s *EvaluationService) EvaluateAll(ctx context.Context, ingredients []string) ([]domain.ProductEvaluation, error) {
	catalog, _, _, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	evals := make([]domain.ProductEvaluation, 0, len(catalog.Products))
	for _, p := range catalog.Products {
		eval, err := s.Evaluate(ctx, &domain.EvaluationRequest{Product: p.Name, Ingredients: ingredients})
		if errors.Is(err, domain.ErrInvalidServings) {
			s.logger.Warn("skipping product", "product", p.Name, "error", err)
			continue
		}
		if err != nil {
			return nil, err
		}
		evals = append(evals, *eval)
	}
	return evals, nil
}

// Rank values every product and orders them by cost-effectiveness, best first.
// Ties are broken by product name.
func (s *EvaluationService) Rank(ctx context.Context, ingredients []string) ([]domain.ProductEvaluation, error) {
	evals, err := s.EvaluateAll(ctx, ingredients)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(evals, func(i, j int) bool {
		if evals[i].CostEffectivenessScore != evals[j].CostEffectivenessScore {
			return evals[i].CostEffectivenessScore > evals[j].CostEffectivenessScore
		}
		return evals[i].Name < evals[j].Name
	})
	return evals, nil
}

// generateCacheKey creates a cache key from the catalog generation, the exact
// product name and the sorted ingredient filter. Names are quoted so no two
// requests share a key.
// Format: evaluation:{generation}:"{product}":["{ingredient}" ...]
func generateCacheKey(generation int, request *domain.EvaluationRequest) string {
	filter := append([]string(nil), request.Ingredients...)
	sort.Strings(filter)
	return fmt.Sprintf("evaluation:%d:%q:%q", generation, request.Product, filter)
}

// getFromCache retrieves an evaluation from cache
func (s *EvaluationService) getFromCache(ctx context.Context, key string) (*domain.ProductEvaluation, error) {
	if s.cache == nil {
		return nil, domain.ErrCacheMiss
	}

	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	eval, ok := value.(domain.ProductEvaluation)
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return &eval, nil
}

// setInCache stores an evaluation in cache
func (s *EvaluationService) setInCache(ctx context.Context, key string, eval domain.ProductEvaluation) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Set(ctx, key, eval, s.cacheTTL)
}
