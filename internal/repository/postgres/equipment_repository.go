package postgres

import (
	"context"
	"errors"
	"fmt"

	"brewjournal/domain"

	"gorm.io/gorm"
)

type EquipmentRepository struct {
	DB *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{
		DB: db,
	}
}

func (r *EquipmentRepository) Create(ctx context.Context, item *domain.Equipment) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create equipment: %w", err)
	}

	return nil
}

func (r *EquipmentRepository) FindByID(ctx context.Context, id uint64) (domain.Equipment, error) {
	if err := ctx.Err(); err != nil {
		return domain.Equipment{}, fmt.Errorf("context error: %w", err)
	}

	var item domain.Equipment

	err := r.DB.WithContext(ctx).First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Equipment{}, errors.New("equipment not found")
		}
		return domain.Equipment{}, fmt.Errorf("failed to find equipment: %w", err)
	}

	return item, nil
}

func (r *EquipmentRepository) FindAll(ctx context.Context, includeArchived bool) ([]domain.Equipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var items []domain.Equipment
	query := r.DB.WithContext(ctx)
	if !includeArchived {
		query = query.Where("archived = ?", false)
	}
	if err := query.Order("kind, name").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find equipment: %w", err)
	}

	return items, nil
}

func (r *EquipmentRepository) Update(ctx context.Context, item *domain.Equipment) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"name":     item.Name,
		"kind":     item.Kind,
		"notes":    item.Notes,
		"archived": item.Archived,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Equipment{}).Where("id = ?", item.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update equipment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("equipment not found or already deleted")
	}

	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Equipment{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete equipment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("equipment not found or already deleted")
	}

	return nil
}
