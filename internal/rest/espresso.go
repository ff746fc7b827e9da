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

type EspressoShotService interface {
	GetAllShots(ctx context.Context, productID uint64) ([]domain.EspressoShot, error)
	GetShotByID(ctx context.Context, id uint64) (domain.EspressoShot, error)
	CreateShot(ctx context.Context, shot *domain.EspressoShot) (*domain.EspressoShot, error)
	UpdateShot(ctx context.Context, shot *domain.EspressoShot) (*domain.EspressoShot, error)
	DeleteShot(ctx context.Context, id uint64) error
}

type EspressoShotHandler struct {
	shotService EspressoShotService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewEspressoShotHandler(shotService EspressoShotService) *EspressoShotHandler {
	return &EspressoShotHandler{
		shotService: shotService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type EspressoShotRequest struct {
	ProductID       uint64   `json:"product_id" validate:"required"`
	BatchID         *uint64  `json:"batch_id"`
	DoseGrams       *float64 `json:"dose_grams" validate:"omitempty,gt=0"`
	YieldGrams      *float64 `json:"yield_grams" validate:"omitempty,gt=0"`
	BrewTimeSeconds *float64 `json:"brew_time_seconds" validate:"omitempty,gte=0"`
	TemperatureC    *float64 `json:"temperature_c"`
	GrinderSetting  string   `json:"grinder_setting"`
	PressureBar     *float64 `json:"pressure_bar" validate:"omitempty,gt=0"`
	Score           *float64 `json:"score" validate:"omitempty,gte=0,lte=10"`
	Notes           string   `json:"notes"`
}

func (r *EspressoShotRequest) toDomain(id uint64) *domain.EspressoShot {
	return &domain.EspressoShot{
		ID:              id,
		ProductID:       r.ProductID,
		BatchID:         r.BatchID,
		DoseGrams:       r.DoseGrams,
		YieldGrams:      r.YieldGrams,
		BrewTimeSeconds: r.BrewTimeSeconds,
		TemperatureC:    r.TemperatureC,
		GrinderSetting:  r.GrinderSetting,
		PressureBar:     r.PressureBar,
		Score:           r.Score,
		Notes:           r.Notes,
	}
}

func shotErrorStatus(err error) int {
	switch err.Error() {
	case "shot not found", "product not found", "invalid shot id":
		return http.StatusNotFound
	case "shot ID is required",
		"product id is required",
		"dose must be greater than 0",
		"yield must be greater than 0",
		"score must be between 0 and 10":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *EspressoShotHandler) GetAllShots(c echo.Context) error {
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

	shots, err := h.shotService.GetAllShots(ctx, productID)
	if err != nil {
		logger.Error("Failed to find all shots", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get all shots",
		"shots":   shots,
	})
}

func (h *EspressoShotHandler) GetShotByID(c echo.Context) error {
	shotId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid shot id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	shot, err := h.shotService.GetShotByID(ctx, shotId)
	if err != nil {
		if err.Error() == "shot not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find shot by id",
		"shot":    shot,
	})
}

func (h *EspressoShotHandler) CreateShot(c echo.Context) error {
	var req EspressoShotRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate shot request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	newShot, err := h.shotService.CreateShot(ctx, req.toDomain(0))
	if err != nil {
		logger.Error("Failed to create shot", "error", err)
		return c.JSON(shotErrorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "shot successfully created",
		"shot":    newShot,
	})
}

func (h *EspressoShotHandler) UpdateShot(c echo.Context) error {
	shotId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid shot id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req EspressoShotRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate shot request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updatedShot, err := h.shotService.UpdateShot(ctx, req.toDomain(shotId))
	if err != nil {
		logger.Error("Failed to update shot", "error", err)
		return c.JSON(shotErrorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully update shot",
		"shot":    updatedShot,
	})
}

func (h *EspressoShotHandler) DeleteShot(c echo.Context) error {
	shotId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid shot id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err = h.shotService.DeleteShot(ctx, shotId)
	if err != nil {
		logger.Error("Failed to delete shot", "error", err)
		if err.Error() == "shot not found" || err.Error() == "invalid shot id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "shot successfully deleted",
		"shot_id": shotId,
	})
}
