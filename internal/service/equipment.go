package service

import (
	"context"

	"github.com/google/uuid"

	"opeec-backend/internal/domain"
	"opeec-backend/internal/geo"
	"opeec-backend/internal/logger"
	"opeec-backend/internal/pricing"
	"opeec-backend/internal/repository"
	"opeec-backend/internal/validator"

	ierr "opeec-backend/internal/errors"
)

type equipmentService struct {
	repo     repository.EquipmentRepository
	catalog  CatalogService
	defaults DurationDefaults
}

func NewEquipmentService(repo repository.EquipmentRepository, catalog CatalogService, defaults DurationDefaults) EquipmentService {
	return &equipmentService{
		repo:     repo,
		catalog:  catalog,
		defaults: defaults,
	}
}

func (s *equipmentService) CreateEquipment(ctx context.Context, in domain.EquipmentInput) (*domain.Equipment, error) {
	logger.EnterMethod("equipmentService.CreateEquipment", "owner_id", in.OwnerID)

	if err := validator.ValidateRequest(in); err != nil {
		logger.ExitMethodWithError("equipmentService.CreateEquipment", err)
		return nil, err
	}
	for _, ref := range []domain.DurationReference{in.AdvanceNotice, in.MinimumDuration, in.MaximumDuration} {
		if err := validateReference(ref); err != nil {
			logger.ExitMethodWithError("equipmentService.CreateEquipment", err)
			return nil, err
		}
	}

	e := &domain.Equipment{
		ID:              uuid.NewString(),
		OwnerID:         in.OwnerID,
		Name:            in.Name,
		Description:     in.Description,
		DailyRentalFee:  in.DailyRentalFee,
		EquipmentValue:  in.EquipmentValue,
		Location:        geo.Normalize(in.Location),
		AdvanceNotice:   in.AdvanceNotice,
		MinimumDuration: in.MinimumDuration,
		MaximumDuration: in.MaximumDuration,
		Status:          domain.EquipmentStatusAvailable,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		logger.ExitMethodWithError("equipmentService.CreateEquipment", err)
		return nil, err
	}

	logger.ExitMethod("equipmentService.CreateEquipment", "equipment_id", e.ID)
	return e, nil
}

func (s *equipmentService) GetEquipment(ctx context.Context, id string) (*domain.Equipment, *domain.EquipmentDurations, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return e, s.ResolveDurations(ctx, e), nil
}

func (s *equipmentService) UpdateLocation(ctx context.Context, id string, location domain.GeoPoint) (*domain.Equipment, error) {
	logger.EnterMethod("equipmentService.UpdateLocation", "equipment_id", id)

	if err := s.repo.UpdateLocation(ctx, id, geo.Normalize(location)); err != nil {
		logger.ExitMethodWithError("equipmentService.UpdateLocation", err, "equipment_id", id)
		return nil, err
	}
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("equipmentService.UpdateLocation", err, "equipment_id", id)
		return nil, err
	}

	logger.ExitMethod("equipmentService.UpdateLocation", "equipment_id", id)
	return e, nil
}

// ResolveDurations never fails. When the catalog cannot be loaded, catalog
// pointers fall back to their legacy pair or the configured default.
func (s *equipmentService) ResolveDurations(ctx context.Context, e *domain.Equipment) *domain.EquipmentDurations {
	var lookup pricing.CatalogLookup
	if l, err := s.catalog.Lookup(ctx); err != nil {
		logger.Warn("Duration catalog unavailable, resolving without it", "equipment_id", e.ID, "error", err)
	} else {
		lookup = l
	}

	return &domain.EquipmentDurations{
		AdvanceNotice:   pricing.Resolve(e.AdvanceNotice, lookup, domain.CatalogAdvanceNotice, s.defaults.AdvanceNotice),
		MinimumDuration: pricing.Resolve(e.MinimumDuration, lookup, domain.CatalogMinimumDuration, s.defaults.MinimumDuration),
		MaximumDuration: pricing.Resolve(e.MaximumDuration, lookup, domain.CatalogMaximumDuration, s.defaults.MaximumDuration),
	}
}

// validateReference rejects catalog pointers whose dropdown id is not a catalog id.
func validateReference(ref domain.DurationReference) error {
	pointer, ok := ref.Pointer()
	if !ok {
		return nil
	}
	if err := uuid.Validate(pointer.DropdownID); err != nil {
		return ierr.WithHint(
			ierr.Wrap(err, "invalid dropdownId "+pointer.DropdownID, ierr.ErrValidation),
			"Duration dropdownId must reference a catalog entry",
			ierr.ErrValidation,
		)
	}
	return nil
}
