package postgres

import (
	"context"
	"errors"
	"fmt"

	"brewjournal/domain"

	"gorm.io/gorm"
)

type RoastBatchRepository struct {
	DB *gorm.DB
}

func NewRoastBatchRepository(db *gorm.DB) *RoastBatchRepository {
	return &RoastBatchRepository{
		DB: db,
	}
}

func (r *RoastBatchRepository) Create(ctx context.Context, batch *domain.RoastBatch) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(batch).Error; err != nil {
		return fmt.Errorf("failed to create batch: %w", err)
	}

	return nil
}

func (r *RoastBatchRepository) FindByID(ctx context.Context, id uint64) (domain.RoastBatch, error) {
	if err := ctx.Err(); err != nil {
		return domain.RoastBatch{}, fmt.Errorf("context error: %w", err)
	}

	var batch domain.RoastBatch

	err := r.DB.WithContext(ctx).First(&batch, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RoastBatch{}, errors.New("batch not found")
		}
		return domain.RoastBatch{}, fmt.Errorf("failed to find batch: %w", err)
	}

	return batch, nil
}

func (r *RoastBatchRepository) FindAll(ctx context.Context, productID uint64) ([]domain.RoastBatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var batches []domain.RoastBatch
	query := r.DB.WithContext(ctx)
	if productID != 0 {
		query = query.Where("product_id = ?", productID)
	}
	if err := query.Order("roast_date DESC").Find(&batches).Error; err != nil {
		return nil, fmt.Errorf("failed to find batches: %w", err)
	}

	return batches, nil
}

func (r *RoastBatchRepository) Update(ctx context.Context, batch *domain.RoastBatch) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"product_id":    batch.ProductID,
		"roast_date":    batch.RoastDate,
		"purchase_date": batch.PurchaseDate,
		"amount_grams":  batch.AmountGrams,
		"price":         batch.Price,
		"seller":        batch.Seller,
		"rating":        batch.Rating,
		"notes":         batch.Notes,
	}

	result := r.DB.WithContext(ctx).Model(&domain.RoastBatch{}).Where("id = ?", batch.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update batch: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("batch not found or already deleted")
	}

	return nil
}

func (r *RoastBatchRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.RoastBatch{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete batch: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("batch not found or already deleted")
	}

	return nil
}
