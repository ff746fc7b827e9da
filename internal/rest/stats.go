package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"brewjournal/domain"
	"brewjournal/pkg/logger"

	"github.com/labstack/echo/v4"
)

type StatsService interface {
	GetOverview(ctx context.Context) (domain.OverviewStats, error)
	GetProductStats(ctx context.Context) ([]domain.ProductStats, error)
	GetMethodStatsForProduct(ctx context.Context, productID uint64) ([]domain.MethodStats, error)
}

type StatsHandler struct {
	statsService StatsService
	timeout      time.Duration
}

func NewStatsHandler(statsService StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		timeout:      10 * time.Second,
	}
}

func (h *StatsHandler) GetOverview(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	overview, err := h.statsService.GetOverview(ctx)
	if err != nil {
		logger.Error("Failed to compute overview stats", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get overview stats",
		"overview": overview,
	})
}

func (h *StatsHandler) GetProductStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stats, err := h.statsService.GetProductStats(ctx)
	if err != nil {
		logger.Error("Failed to compute product stats", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get product stats",
		"products": stats,
	})
}

func (h *StatsHandler) GetMethodStats(c echo.Context) error {
	productId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid product id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stats, err := h.statsService.GetMethodStatsForProduct(ctx, productId)
	if err != nil {
		logger.Error("Failed to compute method stats", "error", err)
		if err.Error() == "invalid product id" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "successfully get method stats",
		"product_id": productId,
		"methods":    stats,
	})
}
