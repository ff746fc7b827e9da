package lookup

import (
	"context"
	"errors"
	"fmt"

	"brewjournal/domain"
	"brewjournal/pkg/logger"
)

// LookupRepository contract interface
type LookupRepository interface {
	Create(ctx context.Context, value *domain.LookupValue) error
	FindByID(ctx context.Context, id uint64) (domain.LookupValue, error)
	FindByKind(ctx context.Context, kind string) ([]domain.LookupValue, error)
	Update(ctx context.Context, value *domain.LookupValue) error
	Delete(ctx context.Context, id uint64) error
}

type lookupService struct {
	lookupRepo LookupRepository
}

func NewLookupService(lookupRepo LookupRepository) *lookupService {
	return &lookupService{
		lookupRepo: lookupRepo,
	}
}

func (s *lookupService) GetValues(ctx context.Context, kind string) ([]domain.LookupValue, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get lookup values")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if !domain.LookupKinds[kind] {
		logger.Error("unknown lookup kind", "kind", kind)
		return nil, errors.New("unknown lookup kind")
	}

	values, err := s.lookupRepo.FindByKind(ctx, kind)
	if err != nil {
		logger.Error("failed to find lookup values", "error", err)
		return nil, err
	}

	return values, nil
}

func (s *lookupService) CreateValue(ctx context.Context, value *domain.LookupValue) (*domain.LookupValue, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create lookup value")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if !domain.LookupKinds[value.Kind] {
		logger.Error("unknown lookup kind", "kind", value.Kind)
		return nil, errors.New("unknown lookup kind")
	}

	if value.Value == "" {
		logger.Error("invalid lookup data: value is required")
		return nil, errors.New("value is required")
	}

	// Reject duplicates within a kind
	existing, err := s.lookupRepo.FindByKind(ctx, value.Kind)
	if err != nil {
		logger.Error("failed to check existing lookup values", "error", err)
		return nil, fmt.Errorf("failed to check existing values: %w", err)
	}
	for _, v := range existing {
		if v.Value == value.Value {
			return nil, errors.New("value already exists")
		}
	}

	if err := s.lookupRepo.Create(ctx, value); err != nil {
		logger.Error("failed to create lookup value", "error", err)
		return nil, fmt.Errorf("failed to create lookup value: %w", err)
	}

	logger.Info("lookup value created successfully", "kind", value.Kind, "value", value.Value)

	return value, nil
}

func (s *lookupService) UpdateValue(ctx context.Context, value *domain.LookupValue) (*domain.LookupValue, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating lookup value")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if value.ID == 0 {
		logger.Error("invalid lookup data: ID is required")
		return nil, errors.New("lookup value ID is required")
	}

	if value.Value == "" {
		logger.Error("invalid lookup data: value is required")
		return nil, errors.New("value is required")
	}

	existing, err := s.lookupRepo.FindByID(ctx, value.ID)
	if err != nil {
		logger.Error("lookup value not found", "error", err)
		return nil, errors.New("lookup value not found")
	}

	// kind is immutable; only the text changes
	value.Kind = existing.Kind

	if err := s.lookupRepo.Update(ctx, value); err != nil {
		logger.Error("failed to update lookup value", "error", err)
		return nil, fmt.Errorf("failed to update lookup value: %w", err)
	}

	updatedValue, err := s.lookupRepo.FindByID(ctx, value.ID)
	if err != nil {
		logger.Error("failed to fetch updated lookup value", "error", err)
		return nil, fmt.Errorf("failed to fetch updated lookup value: %w", err)
	}

	logger.Info("lookup value updated successfully", "lookup_id", value.ID)

	return &updatedValue, nil
}

func (s *lookupService) DeleteValue(ctx context.Context, id uint64) error {
	if id == 0 {
		logger.Error("invalid lookup id when deleting value")
		return errors.New("invalid lookup value id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting lookup value")
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.lookupRepo.FindByID(ctx, id); err != nil {
		logger.Error("lookup value not found", "error", err)
		return errors.New("lookup value not found")
	}

	if err := s.lookupRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete lookup value", "error", err)
		return fmt.Errorf("failed to delete lookup value: %w", err)
	}

	logger.Info("lookup value deleted successfully", "lookup_id", id)

	return nil
}
