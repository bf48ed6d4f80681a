package datafile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dosewise/backend/internal/domain"
)

// Default file names inside the data directory
const (
	DefaultProductsFile = "products.json"
	DefaultSinglesFile  = "singles.json"
	DefaultDosagesFile  = "dosages.json"
)

// Config locates the data files. Empty file names fall back to the defaults.
type Config struct {
	Dir          string
	ProductsFile string
	SinglesFile  string
	DosagesFile  string
	// Strict rejects zero servings and dosage ranges outside min <= optimal <= max.
	Strict bool
}

// Store loads the flat data files of a session and normalizes them to milligrams.
type Store struct {
	config Config
	mapper *mapper
	logger *slog.Logger
}

// NewStore creates a store. A nil normalizer uses the default mg/g/kg/mcg table.
func NewStore(config Config, normalizer *domain.Normalizer, logger *slog.Logger) *Store {
	if config.ProductsFile == "" {
		config.ProductsFile = DefaultProductsFile
	}
	if config.SinglesFile == "" {
		config.SinglesFile = DefaultSinglesFile
	}
	if config.DosagesFile == "" {
		config.DosagesFile = DefaultDosagesFile
	}
	if normalizer == nil {
		normalizer = domain.NewDefaultNormalizer()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		config: config,
		mapper: &mapper{normalizer: normalizer, strict: config.Strict},
		logger: logger,
	}
}

// Path returns the full path of a data file name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.config.Dir, name)
}

// Load reads products, singles and dosages and returns the normalized catalog.
func (s *Store) Load(ctx context.Context) (*domain.Catalog, error) {
	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	singles, err := s.loadSingles(ctx)
	if err != nil {
		return nil, err
	}
	dosages, err := s.loadDosages(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Catalog{
		Products: products,
		Singles:  singles,
		Dosages:  dosages,
	}, nil
}

func (s *Store) loadProducts(ctx context.Context) ([]domain.Product, error) {
	var records []productRecord
	path := s.Path(s.config.ProductsFile)
	if err := s.decode(ctx, path, &records); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(records))
	products := make([]domain.Product, 0, len(records))
	for i, rec := range records {
		product, err := s.mapper.mapProduct(rec)
		if err != nil {
			return nil, fmt.Errorf("%s record %d: %w", path, i, err)
		}
		if seen[product.Name] {
			return nil, fmt.Errorf("%s record %d: %w: duplicate product %q", path, i, domain.ErrMalformedData, product.Name)
		}
		seen[product.Name] = true
		products = append(products, product)
	}

	s.logger.Debug("loaded products", "file", path, "count", len(products))
	return products, nil
}

func (s *Store) loadSingles(ctx context.Context) ([]domain.SingleIngredientListing, error) {
	var records []singleRecord
	path := s.Path(s.config.SinglesFile)
	if err := s.decode(ctx, path, &records); err != nil {
		return nil, err
	}

	singles := make([]domain.SingleIngredientListing, 0, len(records))
	for i, rec := range records {
		single, err := s.mapper.mapSingle(rec)
		if err != nil {
			return nil, fmt.Errorf("%s record %d: %w", path, i, err)
		}
		singles = append(singles, single)
	}

	s.logger.Debug("loaded singles", "file", path, "count", len(singles))
	return singles, nil
}

func (s *Store) loadDosages(ctx context.Context) (domain.DosageTable, error) {
	var records map[string]dosageRecord
	path := s.Path(s.config.DosagesFile)
	if err := s.decode(ctx, path, &records); err != nil {
		return nil, err
	}

	dosages := make(domain.DosageTable, len(records))
	for name, rec := range records {
		r, err := s.mapper.mapDosage(name, rec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		dosages[name] = r
	}

	s.logger.Debug("loaded dosages", "file", path, "count", len(dosages))
	return dosages, nil
}

// decode reads path and unmarshals it as YAML when the extension says so, JSON otherwise.
func (s *Store) decode(ctx context.Context, path string, v interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrDataFileNotFound, path)
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, v)
	} else {
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrMalformedData, path, err)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
