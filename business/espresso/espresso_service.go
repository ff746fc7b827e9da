package espresso

import (
	"context"
	"errors"
	"fmt"

	"brewjournal/domain"
	"brewjournal/pkg/logger"
)

// ShotRepository contract interface
type ShotRepository interface {
	Create(ctx context.Context, shot *domain.EspressoShot) error
	FindByID(ctx context.Context, id uint64) (domain.EspressoShot, error)
	FindAll(ctx context.Context, productID uint64) ([]domain.EspressoShot, error)
	Update(ctx context.Context, shot *domain.EspressoShot) error
	Delete(ctx context.Context, id uint64) error
}

// ProductRepository contract interface
type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
}

type shotService struct {
	shotRepo    ShotRepository
	productRepo ProductRepository
}

func NewShotService(shotRepo ShotRepository, productRepo ProductRepository) *shotService {
	return &shotService{
		shotRepo:    shotRepo,
		productRepo: productRepo,
	}
}

func (s *shotService) GetAllShots(ctx context.Context, productID uint64) ([]domain.EspressoShot, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all shots")
		return nil, fmt.Errorf("context error: %w", err)
	}

	shots, err := s.shotRepo.FindAll(ctx, productID)
	if err != nil {
		logger.Error("failed to find all shots", "error", err)
		return nil, err
	}

	return shots, nil
}

func (s *shotService) GetShotByID(ctx context.Context, id uint64) (domain.EspressoShot, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get shot by id")
		return domain.EspressoShot{}, fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		logger.Error("invalid shot id")
		return domain.EspressoShot{}, errors.New("invalid shot id")
	}

	shot, err := s.shotRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find shot by id", "error", err)
		return domain.EspressoShot{}, err
	}

	return shot, nil
}

func (s *shotService) CreateShot(ctx context.Context, shot *domain.EspressoShot) (*domain.EspressoShot, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create shot")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateShot(shot); err != nil {
		logger.Error("invalid shot data", "error", err)
		return nil, err
	}

	// Verify product exists
	if _, err := s.productRepo.FindByID(ctx, shot.ProductID); err != nil {
		logger.Error("product not found", "error", err)
		return nil, errors.New("product not found")
	}

	if err := s.shotRepo.Create(ctx, shot); err != nil {
		logger.Error("failed to create new shot", "error", err)
		return nil, fmt.Errorf("failed to create shot: %w", err)
	}

	logger.Info("shot created successfully", "shot_id", shot.ID, "product_id", shot.ProductID)

	return shot, nil
}

func (s *shotService) UpdateShot(ctx context.Context, shot *domain.EspressoShot) (*domain.EspressoShot, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating shot")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if shot.ID == 0 {
		logger.Error("invalid shot data: ID is required")
		return nil, errors.New("shot ID is required")
	}

	if err := validateShot(shot); err != nil {
		logger.Error("invalid shot data", "error", err)
		return nil, err
	}

	// Verify shot exists
	if _, err := s.shotRepo.FindByID(ctx, shot.ID); err != nil {
		logger.Error("shot not found", "error", err)
		return nil, errors.New("shot not found")
	}

	if err := s.shotRepo.Update(ctx, shot); err != nil {
		logger.Error("failed to update shot", "error", err)
		return nil, fmt.Errorf("failed to update shot: %w", err)
	}

	updatedShot, err := s.shotRepo.FindByID(ctx, shot.ID)
	if err != nil {
		logger.Error("failed to fetch updated shot", "error", err)
		return nil, fmt.Errorf("failed to fetch updated shot: %w", err)
	}

	logger.Info("shot updated successfully", "shot_id", shot.ID)

	return &updatedShot, nil
}

func (s *shotService) DeleteShot(ctx context.Context, id uint64) error {
	if id == 0 {
		logger.Error("invalid shot id when deleting shot")
		return errors.New("invalid shot id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting shot")
		return fmt.Errorf("context error: %w", err)
	}

	// Verify shot exists
	if _, err := s.shotRepo.FindByID(ctx, id); err != nil {
		logger.Error("shot not found", "error", err)
		return errors.New("shot not found")
	}

	if err := s.shotRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete shot", "error", err)
		return fmt.Errorf("failed to delete shot: %w", err)
	}

	logger.Info("shot deleted successfully", "shot_id", id)

	return nil
}

func validateShot(shot *domain.EspressoShot) error {
	if shot.ProductID == 0 {
		return errors.New("product id is required")
	}

	if shot.DoseGrams != nil && *shot.DoseGrams <= 0 {
		return errors.New("dose must be greater than 0")
	}

	if shot.YieldGrams != nil && *shot.YieldGrams <= 0 {
		return errors.New("yield must be greater than 0")
	}

	if shot.Score != nil && (*shot.Score < 0 || *shot.Score > 10) {
		return errors.New("score must be between 0 and 10")
	}

	return nil
}
