package postgres

import (
	"context"
	"errors"
	"fmt"

	"brewjournal/domain"

	"gorm.io/gorm"
)

type EspressoShotRepository struct {
	DB *gorm.DB
}

func NewEspressoShotRepository(db *gorm.DB) *EspressoShotRepository {
	return &EspressoShotRepository{
		DB: db,
	}
}

func (r *EspressoShotRepository) Create(ctx context.Context, shot *domain.EspressoShot) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(shot).Error; err != nil {
		return fmt.Errorf("failed to create shot: %w", err)
	}

	return nil
}

func (r *EspressoShotRepository) FindByID(ctx context.Context, id uint64) (domain.EspressoShot, error) {
	if err := ctx.Err(); err != nil {
		return domain.EspressoShot{}, fmt.Errorf("context error: %w", err)
	}

	var shot domain.EspressoShot

	err := r.DB.WithContext(ctx).First(&shot, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.EspressoShot{}, errors.New("shot not found")
		}
		return domain.EspressoShot{}, fmt.Errorf("failed to find shot: %w", err)
	}

	return shot, nil
}

func (r *EspressoShotRepository) FindAll(ctx context.Context, productID uint64) ([]domain.EspressoShot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var shots []domain.EspressoShot
	query := r.DB.WithContext(ctx)
	if productID != 0 {
		query = query.Where("product_id = ?", productID)
	}
	if err := query.Order("created_at DESC").Find(&shots).Error; err != nil {
		return nil, fmt.Errorf("failed to find shots: %w", err)
	}

	return shots, nil
}

func (r *EspressoShotRepository) Update(ctx context.Context, shot *domain.EspressoShot) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"product_id":        shot.ProductID,
		"batch_id":          shot.BatchID,
		"dose_grams":        shot.DoseGrams,
		"yield_grams":       shot.YieldGrams,
		"brew_time_seconds": shot.BrewTimeSeconds,
		"temperature_c":     shot.TemperatureC,
		"grinder_setting":   shot.GrinderSetting,
		"pressure_bar":      shot.PressureBar,
		"score":             shot.Score,
		"notes":             shot.Notes,
	}

	result := r.DB.WithContext(ctx).Model(&domain.EspressoShot{}).Where("id = ?", shot.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update shot: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("shot not found or already deleted")
	}

	return nil
}

func (r *EspressoShotRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.EspressoShot{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete shot: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("shot not found or already deleted")
	}

	return nil
}
