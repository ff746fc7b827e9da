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

type LookupService interface {
	GetValues(ctx context.Context, kind string) ([]domain.LookupValue, error)
	CreateValue(ctx context.Context, value *domain.LookupValue) (*domain.LookupValue, error)
	UpdateValue(ctx context.Context, value *domain.LookupValue) (*domain.LookupValue, error)
	DeleteValue(ctx context.Context, id uint64) error
}

type LookupHandler struct {
	lookupService LookupService
	validator     *validator.Validate
	timeout       time.Duration
}

func NewLookupHandler(lookupService LookupService) *LookupHandler {
	return &LookupHandler{
		lookupService: lookupService,
		validator:     validator.New(),
		timeout:       10 * time.Second,
	}
}

type CreateLookupRequest struct {
	Kind  string `json:"kind" validate:"required"`
	Value string `json:"value" validate:"required"`
}

type UpdateLookupRequest struct {
	Value string `json:"value" validate:"required"`
}

// GetValues lists one managed value list, e.g. GET /lookups/brew_method.
func (h *LookupHandler) GetValues(c echo.Context) error {
	kind := c.Param("kind")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	values, err := h.lookupService.GetValues(ctx, kind)
	if err != nil {
		logger.Error("Failed to find lookup values", "error", err)
		if err.Error() == "unknown lookup kind" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get lookup values",
		"kind":    kind,
		"values":  values,
	})
}

func (h *LookupHandler) CreateValue(c echo.Context) error {
	var req CreateLookupRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate lookup request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	value := &domain.LookupValue{
		Kind:  req.Kind,
		Value: req.Value,
	}

	newValue, err := h.lookupService.CreateValue(ctx, value)
	if err != nil {
		logger.Error("Failed to create lookup value", "error", err)
		if err.Error() == "unknown lookup kind" ||
			err.Error() == "value is required" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		if err.Error() == "value already exists" {
			return c.JSON(http.StatusConflict, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "lookup value successfully created",
		"value":   newValue,
	})
}

func (h *LookupHandler) UpdateValue(c echo.Context) error {
	valueId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid lookup value id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req UpdateLookupRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate lookup request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	value := &domain.LookupValue{
		ID:    valueId,
		Value: req.Value,
	}

	updatedValue, err := h.lookupService.UpdateValue(ctx, value)
	if err != nil {
		logger.Error("Failed to update lookup value", "error", err)
		if err.Error() == "lookup value not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "lookup value ID is required" ||
			err.Error() == "value is required" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully update lookup value",
		"value":   updatedValue,
	})
}

func (h *LookupHandler) DeleteValue(c echo.Context) error {
	valueId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid lookup value id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err = h.lookupService.DeleteValue(ctx, valueId)
	if err != nil {
		logger.Error("Failed to delete lookup value", "error", err)
		if err.Error() == "lookup value not found" || err.Error() == "invalid lookup value id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "lookup value successfully deleted",
		"value_id": valueId,
	})
}
