package postgres

import (
	"context"
	"errors"
	"fmt"

	"brewjournal/domain"

	"gorm.io/gorm"
)

type LookupRepository struct {
	DB *gorm.DB
}

func NewLookupRepository(db *gorm.DB) *LookupRepository {
	return &LookupRepository{
		DB: db,
	}
}

func (r *LookupRepository) Create(ctx context.Context, value *domain.LookupValue) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(value).Error; err != nil {
		return fmt.Errorf("failed to create lookup value: %w", err)
	}

	return nil
}

func (r *LookupRepository) FindByID(ctx context.Context, id uint64) (domain.LookupValue, error) {
	if err := ctx.Err(); err != nil {
		return domain.LookupValue{}, fmt.Errorf("context error: %w", err)
	}

	var value domain.LookupValue

	err := r.DB.WithContext(ctx).First(&value, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LookupValue{}, errors.New("lookup value not found")
		}
		return domain.LookupValue{}, fmt.Errorf("failed to find lookup value: %w", err)
	}

	return value, nil
}

func (r *LookupRepository) FindByKind(ctx context.Context, kind string) ([]domain.LookupValue, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var values []domain.LookupValue
	err := r.DB.WithContext(ctx).
		Where("kind = ?", kind).
		Order("value").
		Find(&values).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find lookup values: %w", err)
	}

	return values, nil
}

func (r *LookupRepository) Update(ctx context.Context, value *domain.LookupValue) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"value": value.Value,
	}

	result := r.DB.WithContext(ctx).Model(&domain.LookupValue{}).Where("id = ?", value.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update lookup value: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("lookup value not found")
	}

	return nil
}

func (r *LookupRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.LookupValue{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete lookup value: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("lookup value not found")
	}

	return nil
}
