package service

import (
	"context"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"opeec-backend/internal/domain"
	"opeec-backend/internal/logger"
	"opeec-backend/internal/pricing"
	"opeec-backend/internal/repository"
	"opeec-backend/internal/validator"

	ierr "opeec-backend/internal/errors"
)

const (
	catalogListKey    = "catalog:list"
	catalogNamePrefix = "catalog:name:"
	catalogIDPrefix   = "catalog:id:"
)

type catalogService struct {
	repo  repository.CatalogRepository
	cache *cache.Cache
}

func NewCatalogService(repo repository.CatalogRepository, ttl time.Duration) CatalogService {
	return &catalogService{
		repo:  repo,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (s *catalogService) GetCatalogEntry(ctx context.Context, name domain.CatalogName) (*domain.DurationCatalogEntry, error) {
	key := catalogNamePrefix + string(name)
	if cached, found := s.cache.Get(key); found {
		return cached.(*domain.DurationCatalogEntry), nil
	}
	entry, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(key, entry)
	return entry, nil
}

func (s *catalogService) GetCatalogEntryByID(ctx context.Context, id string) (*domain.DurationCatalogEntry, error) {
	key := catalogIDPrefix + id
	if cached, found := s.cache.Get(key); found {
		return cached.(*domain.DurationCatalogEntry), nil
	}
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(key, entry)
	return entry, nil
}

func (s *catalogService) ListCatalogEntries(ctx context.Context) ([]domain.DurationCatalogEntry, error) {
	if cached, found := s.cache.Get(catalogListKey); found {
		return cached.([]domain.DurationCatalogEntry), nil
	}
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(catalogListKey, entries)
	return entries, nil
}

// UpsertCatalogEntries validates and writes each entry on its own. A failed
// entry keeps its previous state and does not affect the others.
func (s *catalogService) UpsertCatalogEntries(ctx context.Context, inputs []domain.CatalogEntryInput) (*domain.CatalogUpsertResult, error) {
	logger.EnterMethod("catalogService.UpsertCatalogEntries", "count", len(inputs))
	if len(inputs) == 0 {
		err := ierr.WithHint(ierr.NewError("no catalog entries supplied", ierr.ErrValidation), "Supply at least one catalog entry", ierr.ErrValidation)
		logger.ExitMethodWithError("catalogService.UpsertCatalogEntries", err)
		return nil, err
	}

	result := &domain.CatalogUpsertResult{Applied: []domain.CatalogName{}}
	defer s.cache.Flush()

	for i := range inputs {
		in := inputs[i]
		if err := validateCatalogEntry(in); err != nil {
			result.Fail(in.Name, err.Error())
			continue
		}

		entry := toCatalogEntry(in)
		if err := s.repo.Upsert(ctx, entry); err != nil {
			logger.Error("Catalog entry upsert failed", "name", in.Name, "error", err)
			result.Fail(in.Name, err.Error())
			continue
		}
		result.Applied = append(result.Applied, entry.Name)
	}

	logger.ExitMethod("catalogService.UpsertCatalogEntries", "applied", len(result.Applied), "failed", len(result.Failed))
	return result, nil
}

func (s *catalogService) Lookup(ctx context.Context) (pricing.CatalogLookup, error) {
	entries, err := s.ListCatalogEntries(ctx)
	if err != nil {
		return nil, err
	}
	return pricing.NewStaticCatalog(entries), nil
}

// validateCatalogEntry classifies violations: a bad unit is ErrInvalidCatalogUnit,
// any option problem is ErrInvalidCatalogOption, everything else ErrValidation.
func validateCatalogEntry(in domain.CatalogEntryInput) error {
	violations := validator.Violations(in)
	if len(violations) == 0 {
		return nil
	}

	mark := ierr.ErrValidation
	for _, fe := range violations {
		switch {
		case fe.StructField() == "Unit":
			mark = ierr.ErrInvalidCatalogUnit
		case strings.Contains(fe.StructNamespace(), ".Options") && mark != ierr.ErrInvalidCatalogUnit:
			mark = ierr.ErrInvalidCatalogOption
		}
	}
	return ierr.WithHint(ierr.NewError(validator.Describe(violations), mark), "Invalid catalog entry", mark)
}

func toCatalogEntry(in domain.CatalogEntryInput) *domain.DurationCatalogEntry {
	entry := &domain.DurationCatalogEntry{
		Name:    in.Name,
		Unit:    in.Unit,
		Options: make([]domain.DurationOption, 0, len(in.Options)),
	}
	for _, o := range in.Options {
		entry.Options = append(entry.Options, domain.DurationOption{
			Label:       o.Label,
			Value:       *o.Value,
			Recommended: *o.Recommended,
		})
	}
	return entry
}
