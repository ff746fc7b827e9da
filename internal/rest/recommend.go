package rest

import (
	"context"
	"net/http"
	"time"

	"brewjournal/business/recommend"
	"brewjournal/domain"
	"brewjournal/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type (
	RecommendHandler struct {
		validate         *validator.Validate
		recommendService RecommendationService
	}

	RecommendationService interface {
		GetRecommendations(ctx context.Context, productID uint64, method string) (domain.RecommendationSet, error)
		LogFeedback(ctx context.Context, event domain.RecommendationEvent) error
		ListFeedback(ctx context.Context, productID uint64, limit int) ([]domain.RecommendationEvent, error)
	}

	RecommendationQuery struct {
		ProductID uint64 `query:"product_id" validate:"required"`
		Method    string `query:"method"`
	}

	ApplyRequest struct {
		Method     string                            `json:"method" validate:"required"`
		Parameters map[string]domain.ParamSuggestion `json:"parameters" validate:"required"`
	}

	FeedbackHistoryQuery struct {
		ProductID uint64 `query:"product_id" validate:"required"`
		Limit     int    `query:"limit"`
	}

	RecoFeedbackRequest struct {
		ProductID  uint64         `json:"product_id" validate:"required"`
		BrewMethod string         `json:"brew_method" validate:"required"`
		RecoType   string         `json:"reco_type" validate:"required,oneof=template aggregate"`
		Applied    map[string]any `json:"applied"`
	}
)

func NewRecommendHandler(svc RecommendationService) *RecommendHandler {
	return &RecommendHandler{
		validate:         validator.New(),
		recommendService: svc,
	}
}

// GET /api/v1/recommendations?product_id=3&method=V60
func (h *RecommendHandler) Recommend(c echo.Context) error {
	start := time.Now()
	metrics.RecommendRequests.Inc()

	var q RecommendationQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	set, err := h.recommendService.GetRecommendations(c.Request().Context(), q.ProductID, q.Method)
	if err != nil {
		if err.Error() == "invalid product id" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(set))
}

// POST /api/v1/recommendations/apply flattens one recommendation into
// session form fields. Pure transformation, nothing is persisted.
func (h *RecommendHandler) Apply(c echo.Context) error {
	var req ApplyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	fields := recommend.ApplyRecommendation(req.Method, req.Parameters)

	return c.JSON(http.StatusOK, fres.Response.StatusOK(fields))
}

func (h *RecommendHandler) Feedback(c echo.Context) error {
	var req RecoFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	event := domain.RecommendationEvent{
		ProductID:  req.ProductID,
		BrewMethod: req.BrewMethod,
		RecoType:   req.RecoType,
		Applied:    datatypes.JSONMap(req.Applied),
		CreatedAt:  time.Now(),
	}

	if err := h.recommendService.LogFeedback(c.Request().Context(), event); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("feedback recorded"))
}

// GET /api/v1/recommendations/feedback?product_id=3&limit=20
func (h *RecommendHandler) FeedbackHistory(c echo.Context) error {
	var q FeedbackHistoryQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	events, err := h.recommendService.ListFeedback(c.Request().Context(), q.ProductID, q.Limit)
	if err != nil {
		if err.Error() == "invalid product id" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(events))
}
