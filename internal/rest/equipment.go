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

type EquipmentService interface {
	GetAllEquipment(ctx context.Context, includeArchived bool) ([]domain.Equipment, error)
	GetEquipmentByID(ctx context.Context, id uint64) (domain.Equipment, error)
	CreateEquipment(ctx context.Context, item *domain.Equipment) (*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, item *domain.Equipment) (*domain.Equipment, error)
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentHandler struct {
	equipmentService EquipmentService
	validator        *validator.Validate
	timeout          time.Duration
}

func NewEquipmentHandler(equipmentService EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{
		equipmentService: equipmentService,
		validator:        validator.New(),
		timeout:          10 * time.Second,
	}
}

type EquipmentRequest struct {
	Name     string `json:"name" validate:"required"`
	Kind     string `json:"kind" validate:"required"`
	Notes    string `json:"notes"`
	Archived bool   `json:"archived"`
}

func (h *EquipmentHandler) GetAllEquipment(c echo.Context) error {
	includeArchived := c.QueryParam("include_archived") == "true"

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.equipmentService.GetAllEquipment(ctx, includeArchived)
	if err != nil {
		logger.Error("Failed to find all equipment", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "successfully get all equipment",
		"equipment": items,
	})
}

func (h *EquipmentHandler) GetEquipmentByID(c echo.Context) error {
	equipmentId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid equipment id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item, err := h.equipmentService.GetEquipmentByID(ctx, equipmentId)
	if err != nil {
		if err.Error() == "equipment not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "successfully find equipment by id",
		"equipment": item,
	})
}

func (h *EquipmentHandler) CreateEquipment(c echo.Context) error {
	var req EquipmentRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate equipment request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item := &domain.Equipment{
		Name:  req.Name,
		Kind:  req.Kind,
		Notes: req.Notes,
	}

	newItem, err := h.equipmentService.CreateEquipment(ctx, item)
	if err != nil {
		logger.Error("Failed to create equipment", "error", err)
		if err.Error() == "equipment name is required" ||
			err.Error() == "equipment kind is required" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":   "equipment successfully created",
		"equipment": newItem,
	})
}

func (h *EquipmentHandler) UpdateEquipment(c echo.Context) error {
	equipmentId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid equipment id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req EquipmentRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate equipment request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item := &domain.Equipment{
		ID:       equipmentId,
		Name:     req.Name,
		Kind:     req.Kind,
		Notes:    req.Notes,
		Archived: req.Archived,
	}

	updatedItem, err := h.equipmentService.UpdateEquipment(ctx, item)
	if err != nil {
		logger.Error("Failed to update equipment", "error", err)
		if err.Error() == "equipment not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "equipment ID is required" ||
			err.Error() == "equipment name is required" ||
			err.Error() == "equipment kind is required" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "successfully update equipment",
		"equipment": updatedItem,
	})
}

func (h *EquipmentHandler) DeleteEquipment(c echo.Context) error {
	equipmentId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid equipment id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err = h.equipmentService.DeleteEquipment(ctx, equipmentId)
	if err != nil {
		logger.Error("Failed to delete equipment", "error", err)
		if err.Error() == "equipment not found" || err.Error() == "invalid equipment id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":      "equipment successfully deleted",
		"equipment_id": equipmentId,
	})
}
