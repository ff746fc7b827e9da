package postgres

import (
	"context"
	"errors"
	"fmt"

	"brewjournal/domain"

	"gorm.io/gorm"
)

type BrewSessionRepository struct {
	DB *gorm.DB
}

func NewBrewSessionRepository(db *gorm.DB) *BrewSessionRepository {
	return &BrewSessionRepository{
		DB: db,
	}
}

func (r *BrewSessionRepository) Create(ctx context.Context, session *domain.BrewSession) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

func (r *BrewSessionRepository) FindByID(ctx context.Context, id uint64) (domain.BrewSession, error) {
	if err := ctx.Err(); err != nil {
		return domain.BrewSession{}, fmt.Errorf("context error: %w", err)
	}

	var session domain.BrewSession

	err := r.DB.WithContext(ctx).First(&session, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BrewSession{}, errors.New("session not found")
		}
		return domain.BrewSession{}, fmt.Errorf("failed to find session: %w", err)
	}

	return session, nil
}

func (r *BrewSessionRepository) FindAll(ctx context.Context, filter domain.SessionFilter) ([]domain.BrewSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var sessions []domain.BrewSession
	query := r.DB.WithContext(ctx)
	if filter.ProductID != 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if filter.Method != "" {
		query = query.Where("brew_method = ?", filter.Method)
	}
	if err := query.Order("created_at DESC").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to find sessions: %w", err)
	}

	return sessions, nil
}

// FindByProduct returns a product's full corpus in logging order; the
// recommendation engine depends on that order for tie breaking.
func (r *BrewSessionRepository) FindByProduct(ctx context.Context, productID uint64) ([]domain.BrewSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var sessions []domain.BrewSession
	err := r.DB.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC, id ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find sessions for product: %w", err)
	}

	return sessions, nil
}

func (r *BrewSessionRepository) Update(ctx context.Context, session *domain.BrewSession) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	// Update all mutable fields; pointers carry NULL for cleared values
	updateData := map[string]interface{}{
		"product_id":          session.ProductID,
		"batch_id":            session.BatchID,
		"brew_method":         session.BrewMethod,
		"score":               session.Score,
		"amount_coffee_grams": session.AmountCoffeeGrams,
		"amount_water_grams":  session.AmountWaterGrams,
		"brew_ratio":          session.BrewRatio,
		"brew_temperature_c":  session.BrewTemperatureC,
		"grinder_setting":     session.GrinderSetting,
		"bloom_time_seconds":  session.BloomTimeSeconds,
		"brew_time_seconds":   session.BrewTimeSeconds,
		"recipe":              session.Recipe,
		"grinder":             session.Grinder,
		"filter":              session.Filter,
		"vessel":              session.Vessel,
		"notes":               session.Notes,
	}

	result := r.DB.WithContext(ctx).Model(&domain.BrewSession{}).Where("id = ?", session.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("session not found or already deleted")
	}

	return nil
}

func (r *BrewSessionRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.BrewSession{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("session not found or already deleted")
	}

	return nil
}
