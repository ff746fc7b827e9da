package brewsession

import (
	"context"
	"errors"
	"fmt"
	"math"

	"brewjournal/domain"
	"brewjournal/pkg/logger"
)

// SessionRepository contract interface
type SessionRepository interface {
	Create(ctx context.Context, session *domain.BrewSession) error
	FindByID(ctx context.Context, id uint64) (domain.BrewSession, error)
	FindAll(ctx context.Context, filter domain.SessionFilter) ([]domain.BrewSession, error)
	Update(ctx context.Context, session *domain.BrewSession) error
	Delete(ctx context.Context, id uint64) error
}

// ProductRepository contract interface
type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
}

// RecommendationInvalidator drops cached recommendations for a product
// whenever its session corpus changes.
type RecommendationInvalidator interface {
	InvalidateProduct(ctx context.Context, productID uint64)
}

type sessionService struct {
	sessionRepo SessionRepository
	productRepo ProductRepository
	invalidator RecommendationInvalidator
}

func NewSessionService(
	sessionRepo SessionRepository,
	productRepo ProductRepository,
	invalidator RecommendationInvalidator,
) *sessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		productRepo: productRepo,
		invalidator: invalidator,
	}
}

func (s *sessionService) GetAllSessions(ctx context.Context, filter domain.SessionFilter) ([]domain.BrewSession, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all sessions")
		return nil, fmt.Errorf("context error: %w", err)
	}

	sessions, err := s.sessionRepo.FindAll(ctx, filter)
	if err != nil {
		logger.Error("failed to find all sessions", "error", err)
		return nil, err
	}

	return sessions, nil
}

func (s *sessionService) GetSessionByID(ctx context.Context, id uint64) (domain.BrewSession, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get session by id")
		return domain.BrewSession{}, fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		logger.Error("invalid session id")
		return domain.BrewSession{}, errors.New("invalid session id")
	}

	session, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find session by id", "error", err)
		return domain.BrewSession{}, err
	}

	return session, nil
}

func (s *sessionService) CreateSession(ctx context.Context, session *domain.BrewSession) (*domain.BrewSession, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create session")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateSession(session); err != nil {
		logger.Error("invalid session data", "error", err)
		return nil, err
	}

	// Verify product exists
	if _, err := s.productRepo.FindByID(ctx, session.ProductID); err != nil {
		logger.Error("product not found", "error", err)
		return nil, errors.New("product not found")
	}

	deriveBrewRatio(session)

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		logger.Error("failed to create new session", "error", err)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	logger.Info("session created successfully", "session_id", session.ID, "product_id", session.ProductID)

	if s.invalidator != nil {
		s.invalidator.InvalidateProduct(ctx, session.ProductID)
	}

	return session, nil
}

func (s *sessionService) UpdateSession(ctx context.Context, session *domain.BrewSession) (*domain.BrewSession, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating session")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if session.ID == 0 {
		logger.Error("invalid session data: ID is required")
		return nil, errors.New("session ID is required")
	}

	if err := validateSession(session); err != nil {
		logger.Error("invalid session data", "error", err)
		return nil, err
	}

	// Verify session exists
	existing, err := s.sessionRepo.FindByID(ctx, session.ID)
	if err != nil {
		logger.Error("session not found", "error", err)
		return nil, errors.New("session not found")
	}

	deriveBrewRatio(session)

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		logger.Error("failed to update session", "error", err)
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	updatedSession, err := s.sessionRepo.FindByID(ctx, session.ID)
	if err != nil {
		logger.Error("failed to fetch updated session", "error", err)
		return nil, fmt.Errorf("failed to fetch updated session: %w", err)
	}

	logger.Info("session updated successfully", "session_id", session.ID)

	if s.invalidator != nil {
		s.invalidator.InvalidateProduct(ctx, session.ProductID)
		if existing.ProductID != session.ProductID {
			s.invalidator.InvalidateProduct(ctx, existing.ProductID)
		}
	}

	return &updatedSession, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, id uint64) error {
	if id == 0 {
		logger.Error("invalid session id when deleting session")
		return errors.New("invalid session id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting session")
		return fmt.Errorf("context error: %w", err)
	}

	// Verify session exists
	existing, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("session not found", "error", err)
		return errors.New("session not found")
	}

	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete session", "error", err)
		return fmt.Errorf("failed to delete session: %w", err)
	}

	logger.Info("session deleted successfully", "session_id", id)

	if s.invalidator != nil {
		s.invalidator.InvalidateProduct(ctx, existing.ProductID)
	}

	return nil
}

func validateSession(session *domain.BrewSession) error {
	if session.ProductID == 0 {
		return errors.New("product id is required")
	}

	if session.Score != nil && (*session.Score < 0 || *session.Score > 10) {
		return errors.New("score must be between 0 and 10")
	}

	if session.AmountCoffeeGrams != nil && *session.AmountCoffeeGrams <= 0 {
		return errors.New("amount of coffee must be greater than 0")
	}

	if session.AmountWaterGrams != nil && *session.AmountWaterGrams <= 0 {
		return errors.New("amount of water must be greater than 0")
	}

	return nil
}

// deriveBrewRatio recomputes water/coffee whenever both masses are
// recorded. A client-supplied ratio is never trusted over the derivation.
func deriveBrewRatio(session *domain.BrewSession) {
	if session.AmountCoffeeGrams == nil || session.AmountWaterGrams == nil {
		return
	}
	if *session.AmountCoffeeGrams <= 0 {
		return
	}

	ratio := math.Round(*session.AmountWaterGrams / *session.AmountCoffeeGrams * 10) / 10
	session.BrewRatio = &ratio
}
