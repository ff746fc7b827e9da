package roastbatch

import (
	"context"
	"errors"
	"fmt"

	"brewjournal/domain"
	"brewjournal/pkg/logger"
)

// BatchRepository contract interface
type BatchRepository interface {
	Create(ctx context.Context, batch *domain.RoastBatch) error
	FindByID(ctx context.Context, id uint64) (domain.RoastBatch, error)
	FindAll(ctx context.Context, productID uint64) ([]domain.RoastBatch, error)
	Update(ctx context.Context, batch *domain.RoastBatch) error
	Delete(ctx context.Context, id uint64) error
}

// ProductRepository contract interface
type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
}

type batchService struct {
	batchRepo   BatchRepository
	productRepo ProductRepository
}

func NewBatchService(batchRepo BatchRepository, productRepo ProductRepository) *batchService {
	return &batchService{
		batchRepo:   batchRepo,
		productRepo: productRepo,
	}
}

func (s *batchService) GetAllBatches(ctx context.Context, productID uint64) ([]domain.RoastBatch, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all batches")
		return nil, fmt.Errorf("context error: %w", err)
	}

	batches, err := s.batchRepo.FindAll(ctx, productID)
	if err != nil {
		logger.Error("failed to find all batches", "error", err)
		return nil, err
	}

	return batches, nil
}

func (s *batchService) GetBatchByID(ctx context.Context, id uint64) (domain.RoastBatch, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get batch by id")
		return domain.RoastBatch{}, fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		logger.Error("invalid batch id")
		return domain.RoastBatch{}, errors.New("invalid batch id")
	}

	batch, err := s.batchRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find batch by id", "error", err)
		return domain.RoastBatch{}, err
	}

	return batch, nil
}

func (s *batchService) CreateBatch(ctx context.Context, batch *domain.RoastBatch) (*domain.RoastBatch, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create batch")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateBatch(batch); err != nil {
		logger.Error("invalid batch data", "error", err)
		return nil, err
	}

	// Verify product exists
	if _, err := s.productRepo.FindByID(ctx, batch.ProductID); err != nil {
		logger.Error("product not found", "error", err)
		return nil, errors.New("product not found")
	}

	if err := s.batchRepo.Create(ctx, batch); err != nil {
		logger.Error("failed to create new batch", "error", err)
		return nil, fmt.Errorf("failed to create batch: %w", err)
	}

	logger.Info("batch created successfully", "batch_id", batch.ID, "product_id", batch.ProductID)

	return batch, nil
}

func (s *batchService) UpdateBatch(ctx context.Context, batch *domain.RoastBatch) (*domain.RoastBatch, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating batch")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if batch.ID == 0 {
		logger.Error("invalid batch data: ID is required")
		return nil, errors.New("batch ID is required")
	}

	if err := validateBatch(batch); err != nil {
		logger.Error("invalid batch data", "error", err)
		return nil, err
	}

	// Verify batch exists
	if _, err := s.batchRepo.FindByID(ctx, batch.ID); err != nil {
		logger.Error("batch not found", "error", err)
		return nil, errors.New("batch not found")
	}

	if err := s.batchRepo.Update(ctx, batch); err != nil {
		logger.Error("failed to update batch", "error", err)
		return nil, fmt.Errorf("failed to update batch: %w", err)
	}

	updatedBatch, err := s.batchRepo.FindByID(ctx, batch.ID)
	if err != nil {
		logger.Error("failed to fetch updated batch", "error", err)
		return nil, fmt.Errorf("failed to fetch updated batch: %w", err)
	}

	logger.Info("batch updated successfully", "batch_id", batch.ID)

	return &updatedBatch, nil
}

func (s *batchService) DeleteBatch(ctx context.Context, id uint64) error {
	if id == 0 {
		logger.Error("invalid batch id when deleting batch")
		return errors.New("invalid batch id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting batch")
		return fmt.Errorf("context error: %w", err)
	}

	// Verify batch exists
	if _, err := s.batchRepo.FindByID(ctx, id); err != nil {
		logger.Error("batch not found", "error", err)
		return errors.New("batch not found")
	}

	if err := s.batchRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete batch", "error", err)
		return fmt.Errorf("failed to delete batch: %w", err)
	}

	logger.Info("batch deleted successfully", "batch_id", id)

	return nil
}

func validateBatch(batch *domain.RoastBatch) error {
	if batch.ProductID == 0 {
		return errors.New("product id is required")
	}

	if batch.AmountGrams != nil && *batch.AmountGrams <= 0 {
		return errors.New("amount must be greater than 0")
	}

	if batch.Price != nil && *batch.Price < 0 {
		return errors.New("price cannot be negative")
	}

	if batch.Rating != nil && (*batch.Rating < 0 || *batch.Rating > 10) {
		return errors.New("rating must be between 0 and 10")
	}

	return nil
}
