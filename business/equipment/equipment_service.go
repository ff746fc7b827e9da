package equipment

import (
	"context"
	"errors"
	"fmt"

	"brewjournal/domain"
	"brewjournal/pkg/logger"
)

// EquipmentRepository contract interface
type EquipmentRepository interface {
	Create(ctx context.Context, item *domain.Equipment) error
	FindByID(ctx context.Context, id uint64) (domain.Equipment, error)
	FindAll(ctx context.Context, includeArchived bool) ([]domain.Equipment, error)
	Update(ctx context.Context, item *domain.Equipment) error
	Delete(ctx context.Context, id uint64) error
}

type equipmentService struct {
	equipmentRepo EquipmentRepository
}

func NewEquipmentService(equipmentRepo EquipmentRepository) *equipmentService {
	return &equipmentService{
		equipmentRepo: equipmentRepo,
	}
}

func (s *equipmentService) GetAllEquipment(ctx context.Context, includeArchived bool) ([]domain.Equipment, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all equipment")
		return nil, fmt.Errorf("context error: %w", err)
	}

	items, err := s.equipmentRepo.FindAll(ctx, includeArchived)
	if err != nil {
		logger.Error("failed to find all equipment", "error", err)
		return nil, err
	}

	return items, nil
}

func (s *equipmentService) GetEquipmentByID(ctx context.Context, id uint64) (domain.Equipment, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get equipment by id")
		return domain.Equipment{}, fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		logger.Error("invalid equipment id")
		return domain.Equipment{}, errors.New("invalid equipment id")
	}

	item, err := s.equipmentRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find equipment by id", "error", err)
		return domain.Equipment{}, err
	}

	return item, nil
}

func (s *equipmentService) CreateEquipment(ctx context.Context, item *domain.Equipment) (*domain.Equipment, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create equipment")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if item.Name == "" {
		logger.Error("invalid equipment data: name is required")
		return nil, errors.New("equipment name is required")
	}

	if item.Kind == "" {
		logger.Error("invalid equipment data: kind is required")
		return nil, errors.New("equipment kind is required")
	}

	if err := s.equipmentRepo.Create(ctx, item); err != nil {
		logger.Error("failed to create new equipment", "error", err)
		return nil, fmt.Errorf("failed to create equipment: %w", err)
	}

	logger.Info("equipment created successfully", "equipment_id", item.ID)

	return item, nil
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, item *domain.Equipment) (*domain.Equipment, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating equipment")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if item.ID == 0 {
		logger.Error("invalid equipment data: ID is required")
		return nil, errors.New("equipment ID is required")
	}

	if item.Name == "" {
		logger.Error("invalid equipment data: name is required")
		return nil, errors.New("equipment name is required")
	}

	if item.Kind == "" {
		logger.Error("invalid equipment data: kind is required")
		return nil, errors.New("equipment kind is required")
	}

	// Verify equipment exists
	if _, err := s.equipmentRepo.FindByID(ctx, item.ID); err != nil {
		logger.Error("equipment not found", "error", err)
		return nil, errors.New("equipment not found")
	}

	if err := s.equipmentRepo.Update(ctx, item); err != nil {
		logger.Error("failed to update equipment", "error", err)
		return nil, fmt.Errorf("failed to update equipment: %w", err)
	}

	updatedItem, err := s.equipmentRepo.FindByID(ctx, item.ID)
	if err != nil {
		logger.Error("failed to fetch updated equipment", "error", err)
		return nil, fmt.Errorf("failed to fetch updated equipment: %w", err)
	}

	logger.Info("equipment updated successfully", "equipment_id", item.ID)

	return &updatedItem, nil
}

func (s *equipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	if id == 0 {
		logger.Error("invalid equipment id when deleting equipment")
		return errors.New("invalid equipment id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting equipment")
		return fmt.Errorf("context error: %w", err)
	}

	// Verify equipment exists
	if _, err := s.equipmentRepo.FindByID(ctx, id); err != nil {
		logger.Error("equipment not found", "error", err)
		return errors.New("equipment not found")
	}

	if err := s.equipmentRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete equipment", "error", err)
		return fmt.Errorf("failed to delete equipment: %w", err)
	}

	logger.Info("equipment deleted successfully", "equipment_id", id)

	return nil
}
