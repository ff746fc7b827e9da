package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"brewjournal/domain"
	"brewjournal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type RoastBatchService interface {
	GetAllBatches(ctx context.Context, productID uint64) ([]domain.RoastBatch, error)
	GetBatchByID(ctx context.Context, id uint64) (domain.RoastBatch, error)
	CreateBatch(ctx context.Context, batch *domain.RoastBatch) (*domain.RoastBatch, error)
	UpdateBatch(ctx context.Context, batch *domain.RoastBatch) (*domain.RoastBatch, error)
	DeleteBatch(ctx context.Context, id uint64) error
}

type RoastBatchHandler struct {
	batchService RoastBatchService
	validator    *validator.Validate
	timeout      time.Duration
}

func NewRoastBatchHandler(batchService RoastBatchService) *RoastBatchHandler {
	return &RoastBatchHandler{
		batchService: batchService,
		validator:    validator.New(),
		timeout:      10 * time.Second,
	}
}

type RoastBatchRequest struct {
	ProductID    uint64     `json:"product_id" validate:"required"`
	RoastDate    *time.Time `json:"roast_date"`
	PurchaseDate *time.Time `json:"purchase_date"`
	AmountGrams  *float64   `json:"amount_grams" validate:"omitempty,gt=0"`
	Price        *float64   `json:"price" validate:"omitempty,gte=0"`
	Seller       string     `json:"seller"`
	Rating       *float64   `json:"rating" validate:"omitempty,gte=0,lte=10"`
	Notes        string     `json:"notes"`
}

func (h *RoastBatchHandler) GetAllBatches(c echo.Context) error {
	var productID uint64
	if s := c.QueryParam("product_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		productID = id
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	batches, err := h.batchService.GetAllBatches(ctx, productID)
	if err != nil {
		logger.Error("Failed to find all batches", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get all batches",
		"batches": batches,
	})
}

func (h *RoastBatchHandler) GetBatchByID(c echo.Context) error {
	batchId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid batch id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	batch, err := h.batchService.GetBatchByID(ctx, batchId)
	if err != nil {
		if err.Error() == "batch not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find batch by id",
		"batch":   batch,
	})
}

func (h *RoastBatchHandler) CreateBatch(c echo.Context) error {
	var req RoastBatchRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate batch request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	batch := &domain.RoastBatch{
		ProductID:    req.ProductID,
		RoastDate:    req.RoastDate,
		PurchaseDate: req.PurchaseDate,
		AmountGrams:  req.AmountGrams,
		Price:        req.Price,
		Seller:       req.Seller,
		Rating:       req.Rating,
		Notes:        req.Notes,
	}

	newBatch, err := h.batchService.CreateBatch(ctx, batch)
	if err != nil {
		logger.Error("Failed to create batch", "error", err)
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "product id is required" ||
			err.Error() == "amount must be greater than 0" ||
			err.Error() == "price cannot be negative" ||
			err.Error() == "rating must be between 0 and 10" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "batch successfully created",
		"batch":   newBatch,
	})
}

func (h *RoastBatchHandler) UpdateBatch(c echo.Context) error {
	batchId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid batch id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req RoastBatchRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate batch request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	batch := &domain.RoastBatch{
		ID:           batchId,
		ProductID:    req.ProductID,
		RoastDate:    req.RoastDate,
		PurchaseDate: req.PurchaseDate,
		AmountGrams:  req.AmountGrams,
		Price:        req.Price,
		Seller:       req.Seller,
		Rating:       req.Rating,
		Notes:        req.Notes,
	}

	updatedBatch, err := h.batchService.UpdateBatch(ctx, batch)
	if err != nil {
		logger.Error("Failed to update batch", "error", err)
		if err.Error() == "batch not found" || err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "batch ID is required" ||
			err.Error() == "product id is required" ||
			err.Error() == "amount must be greater than 0" ||
			err.Error() == "price cannot be negative" ||
			err.Error() == "rating must be between 0 and 10" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully update batch",
		"batch":   updatedBatch,
	})
}

func (h *RoastBatchHandler) DeleteBatch(c echo.Context) error {
	batchId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid batch id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err = h.batchService.DeleteBatch(ctx, batchId)
	if err != nil {
		logger.Error("Failed to delete batch", "error", err)
		if err.Error() == "batch not found" || err.Error() == "invalid batch id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "batch successfully deleted",
		"batch_id": batchId,
	})
}
