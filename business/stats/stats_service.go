package stats

import (
	"context"
	"errors"
	"fmt"

	"brewjournal/domain"
	"brewjournal/pkg/logger"
)

// StatsRepository contract interface
type StatsRepository interface {
	Overview(ctx context.Context) (domain.OverviewStats, error)
	MethodStatsForProduct(ctx context.Context, productID uint64) ([]domain.MethodStats, error)
	ProductStats(ctx context.Context) ([]domain.ProductStats, error)
}

type statsService struct {
	statsRepo StatsRepository
}

func NewStatsService(statsRepo StatsRepository) *statsService {
	return &statsService{
		statsRepo: statsRepo,
	}
}

func (s *statsService) GetOverview(ctx context.Context) (domain.OverviewStats, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get stats overview")
		return domain.OverviewStats{}, fmt.Errorf("context error: %w", err)
	}

	overview, err := s.statsRepo.Overview(ctx)
	if err != nil {
		logger.Error("failed to compute stats overview", "error", err)
		return domain.OverviewStats{}, err
	}

	return overview, nil
}

func (s *statsService) GetProductStats(ctx context.Context) ([]domain.ProductStats, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get product stats")
		return nil, fmt.Errorf("context error: %w", err)
	}

	rows, err := s.statsRepo.ProductStats(ctx)
	if err != nil {
		logger.Error("failed to compute product stats", "error", err)
		return nil, err
	}

	return rows, nil
}

func (s *statsService) GetMethodStatsForProduct(ctx context.Context, productID uint64) ([]domain.MethodStats, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get method stats")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if productID == 0 {
		logger.Error("invalid product id for method stats")
		return nil, errors.New("invalid product id")
	}

	rows, err := s.statsRepo.MethodStatsForProduct(ctx, productID)
	if err != nil {
		logger.Error("failed to compute method stats", "error", err)
		return nil, err
	}

	return rows, nil
}
