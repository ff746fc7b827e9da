package postgres

import (
	"context"
	"fmt"

	"brewjournal/domain"

	"gorm.io/gorm"
)

type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

func (r *StatsRepository) Overview(ctx context.Context) (domain.OverviewStats, error) {
	if err := ctx.Err(); err != nil {
		return domain.OverviewStats{}, fmt.Errorf("context error: %w", err)
	}

	var out domain.OverviewStats

	if err := r.DB.WithContext(ctx).Model(&domain.Product{}).Count(&out.Products).Error; err != nil {
		return domain.OverviewStats{}, fmt.Errorf("failed to count products: %w", err)
	}
	if err := r.DB.WithContext(ctx).Model(&domain.RoastBatch{}).Count(&out.Batches).Error; err != nil {
		return domain.OverviewStats{}, fmt.Errorf("failed to count batches: %w", err)
	}
	if err := r.DB.WithContext(ctx).Model(&domain.BrewSession{}).Count(&out.Sessions).Error; err != nil {
		return domain.OverviewStats{}, fmt.Errorf("failed to count sessions: %w", err)
	}
	if err := r.DB.WithContext(ctx).Model(&domain.EspressoShot{}).Count(&out.Shots).Error; err != nil {
		return domain.OverviewStats{}, fmt.Errorf("failed to count shots: %w", err)
	}

	err := r.DB.WithContext(ctx).Model(&domain.BrewSession{}).
		Select("AVG(score)").
		Where("score IS NOT NULL").
		Scan(&out.AvgScore).Error
	if err != nil {
		return domain.OverviewStats{}, fmt.Errorf("failed to average scores: %w", err)
	}

	methods, err := r.methodStats(ctx, 0)
	if err != nil {
		return domain.OverviewStats{}, err
	}
	out.Methods = methods

	return out, nil
}

func (r *StatsRepository) MethodStatsForProduct(ctx context.Context, productID uint64) ([]domain.MethodStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return r.methodStats(ctx, productID)
}

func (r *StatsRepository) methodStats(ctx context.Context, productID uint64) ([]domain.MethodStats, error) {
	var rows []domain.MethodStats

	query := r.DB.WithContext(ctx).Model(&domain.BrewSession{}).
		Select("brew_method, COUNT(*) AS sessions, AVG(score) AS avg_score, MAX(score) AS best_score").
		Where("brew_method <> ''")
	if productID != 0 {
		query = query.Where("product_id = ?", productID)
	}

	err := query.
		Group("brew_method").
		Order("sessions DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute method stats: %w", err)
	}

	return rows, nil
}

func (r *StatsRepository) ProductStats(ctx context.Context) ([]domain.ProductStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.ProductStats

	err := r.DB.WithContext(ctx).Model(&domain.Product{}).
		Select(`products.id AS product_id, products.name,
			COUNT(brew_sessions.id) AS sessions,
			AVG(brew_sessions.score) AS avg_score,
			MAX(brew_sessions.created_at) AS last_brewed_at`).
		Joins("LEFT JOIN brew_sessions ON brew_sessions.product_id = products.id").
		Group("products.id, products.name").
		Order("products.name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute product stats: %w", err)
	}

	return rows, nil
}
