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

type BrewSessionService interface {
	GetAllSessions(ctx context.Context, filter domain.SessionFilter) ([]domain.BrewSession, error)
	GetSessionByID(ctx context.Context, id uint64) (domain.BrewSession, error)
	CreateSession(ctx context.Context, session *domain.BrewSession) (*domain.BrewSession, error)
	UpdateSession(ctx context.Context, session *domain.BrewSession) (*domain.BrewSession, error)
	DeleteSession(ctx context.Context, id uint64) error
}

type BrewSessionHandler struct {
	sessionService BrewSessionService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewBrewSessionHandler(sessionService BrewSessionService) *BrewSessionHandler {
	return &BrewSessionHandler{
		sessionService: sessionService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

// BrewSessionRequest carries the logged parameters of one brew. brew_ratio
// is not accepted from the client: the service derives it from the coffee
// and water amounts on every write.
type BrewSessionRequest struct {
	ProductID         uint64   `json:"product_id" validate:"required"`
	BatchID           *uint64  `json:"batch_id"`
	BrewMethod        string   `json:"brew_method"`
	Score             *float64 `json:"score" validate:"omitempty,gte=0,lte=10"`
	AmountCoffeeGrams *float64 `json:"amount_coffee_grams" validate:"omitempty,gt=0"`
	AmountWaterGrams  *float64 `json:"amount_water_grams" validate:"omitempty,gt=0"`
	BrewTemperatureC  *float64 `json:"brew_temperature_c"`
	GrinderSetting    string   `json:"grinder_setting"`
	BloomTimeSeconds  *float64 `json:"bloom_time_seconds" validate:"omitempty,gte=0"`
	BrewTimeSeconds   *float64 `json:"brew_time_seconds" validate:"omitempty,gte=0"`
	Recipe            string   `json:"recipe"`
	Grinder           string   `json:"grinder"`
	Filter            string   `json:"filter"`
	Vessel            string   `json:"vessel"`
	Notes             string   `json:"notes"`
}

func (r *BrewSessionRequest) toDomain(id uint64) *domain.BrewSession {
	return &domain.BrewSession{
		ID:                id,
		ProductID:         r.ProductID,
		BatchID:           r.BatchID,
		BrewMethod:        r.BrewMethod,
		Score:             r.Score,
		AmountCoffeeGrams: r.AmountCoffeeGrams,
		AmountWaterGrams:  r.AmountWaterGrams,
		BrewTemperatureC:  r.BrewTemperatureC,
		GrinderSetting:    r.GrinderSetting,
		BloomTimeSeconds:  r.BloomTimeSeconds,
		BrewTimeSeconds:   r.BrewTimeSeconds,
		Recipe:            r.Recipe,
		Grinder:           r.Grinder,
		Filter:            r.Filter,
		Vessel:            r.Vessel,
		Notes:             r.Notes,
	}
}

func sessionErrorStatus(err error) int {
	switch err.Error() {
	case "session not found", "product not found", "invalid session id":
		return http.StatusNotFound
	case "session ID is required",
		"product id is required",
		"score must be between 0 and 10",
		"amount of coffee must be greater than 0",
		"amount of water must be greater than 0":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *BrewSessionHandler) GetAllSessions(c echo.Context) error {
	var filter domain.SessionFilter
	if s := c.QueryParam("product_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		filter.ProductID = id
	}
	filter.Method = c.QueryParam("method")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sessions, err := h.sessionService.GetAllSessions(ctx, filter)
	if err != nil {
		logger.Error("Failed to find all sessions", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get all sessions",
		"sessions": sessions,
	})
}

func (h *BrewSessionHandler) GetSessionByID(c echo.Context) error {
	sessionId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid session id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	session, err := h.sessionService.GetSessionByID(ctx, sessionId)
	if err != nil {
		if err.Error() == "session not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find session by id",
		"session": session,
	})
}

func (h *BrewSessionHandler) CreateSession(c echo.Context) error {
	var req BrewSessionRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate session request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	newSession, err := h.sessionService.CreateSession(ctx, req.toDomain(0))
	if err != nil {
		logger.Error("Failed to create session", "error", err)
		return c.JSON(sessionErrorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "session successfully created",
		"session": newSession,
	})
}

func (h *BrewSessionHandler) UpdateSession(c echo.Context) error {
	sessionId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid session id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req BrewSessionRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate session request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updatedSession, err := h.sessionService.UpdateSession(ctx, req.toDomain(sessionId))
	if err != nil {
		logger.Error("Failed to update session", "error", err)
		return c.JSON(sessionErrorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully update session",
		"session": updatedSession,
	})
}

func (h *BrewSessionHandler) DeleteSession(c echo.Context) error {
	sessionId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid session id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err = h.sessionService.DeleteSession(ctx, sessionId)
	if err != nil {
		logger.Error("Failed to delete session", "error", err)
		if err.Error() == "session not found" || err.Error() == "invalid session id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "session successfully deleted",
		"session_id": sessionId,
	})
}
