package recommend

import (
	"context"
	"errors"
	"fmt"

	"brewjournal/domain"
	"brewjournal/pkg/logger"
	"brewjournal/pkg/metrics"
)

// ---- Repository interfaces ----

type SessionRepository interface {
	FindByProduct(ctx context.Context, productID uint64) ([]domain.BrewSession, error)
}

type EventRepository interface {
	SaveEvent(ctx context.Context, event domain.RecommendationEvent) error
	FindByProduct(ctx context.Context, productID uint64, limit int) ([]domain.RecommendationEvent, error)
}

// Cache stores derived recommendation sets per product. Best-effort: a
// failing cache must never fail a request.
type Cache interface {
	Get(ctx context.Context, productID uint64) (*domain.RecommendationSet, error)
	Set(ctx context.Context, productID uint64, set domain.RecommendationSet) error
	InvalidateProduct(ctx context.Context, productID uint64) error
}

// ---- Usecase / Service ----

type RecommendService struct {
	sessionRepo SessionRepository
	eventRepo   EventRepository
	cache       Cache
}

func NewRecommendService(
	sessionRepo SessionRepository,
	eventRepo EventRepository,
	cache Cache,
) *RecommendService {
	return &RecommendService{
		sessionRepo: sessionRepo,
		eventRepo:   eventRepo,
		cache:       cache,
	}
}

// GetRecommendations derives the recommendation set for a product. The
// optional method filter narrows what is surfaced, not what is computed:
// the derivation always runs over the full corpus, then the requested
// method's entry is selected from the result.
func (s *RecommendService) GetRecommendations(
	ctx context.Context,
	productID uint64,
	method string,
) (domain.RecommendationSet, error) {
	if err := ctx.Err(); err != nil {
		return domain.RecommendationSet{}, fmt.Errorf("context error: %w", err)
	}
	if productID == 0 {
		return domain.RecommendationSet{}, errors.New("invalid product id")
	}

	set, err := s.loadOrDerive(ctx, productID)
	if err != nil {
		return domain.RecommendationSet{}, err
	}

	return filterByMethod(set, method), nil
}

func (s *RecommendService) loadOrDerive(ctx context.Context, productID uint64) (domain.RecommendationSet, error) {
	tid := TraceIDFromContext(ctx)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, productID)
		if err != nil {
			logger.Warn("recommendation cache read failed", "trace_id", tid, "error", err)
		}
		if cached != nil {
			metrics.RecommendCacheLookups.WithLabelValues("hit").Inc()
			return *cached, nil
		}
		metrics.RecommendCacheLookups.WithLabelValues("miss").Inc()
	}

	sessions, err := s.sessionRepo.FindByProduct(ctx, productID)
	if err != nil {
		return domain.RecommendationSet{}, fmt.Errorf("load brew sessions: %w", err)
	}

	set := Derive(sessions)

	logger.Debug("recommendations derived",
		"trace_id", tid,
		"product_id", productID,
		"corpus_size", len(sessions),
		"methods", len(set.Recommendations),
	)

	for _, rec := range set.Recommendations {
		metrics.RecommendClassifications.WithLabelValues(rec.Type).Inc()
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, productID, set); err != nil {
			logger.Warn("recommendation cache write failed", "trace_id", tid, "error", err)
		}
	}

	return set, nil
}

// filterByMethod narrows a full set to one method's recommendation. A
// method with no entry yields the same "not enough data" shape as an
// empty corpus.
func filterByMethod(set domain.RecommendationSet, method string) domain.RecommendationSet {
	if method == "" || !set.HasRecommendations {
		return set
	}

	rec, ok := set.Recommendations[method]
	if !ok {
		return domain.RecommendationSet{
			HasRecommendations: false,
			Message:            notEnoughDataMessage,
		}
	}

	return domain.RecommendationSet{
		HasRecommendations: true,
		Recommendations:    map[string]domain.Recommendation{method: rec},
	}
}

// LogFeedback records that a recommendation was applied to a session form.
func (s *RecommendService) LogFeedback(ctx context.Context, event domain.RecommendationEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if event.ProductID == 0 {
		return errors.New("product id is required")
	}
	if event.BrewMethod == "" {
		return errors.New("brew method is required")
	}
	if event.RecoType != domain.RecommendationTemplate && event.RecoType != domain.RecommendationAggregate {
		return fmt.Errorf("unknown recommendation type: %s", event.RecoType)
	}

	if s.eventRepo == nil {
		return nil
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to save recommendation event: %w", err)
	}

	logger.Debug("recommendation feedback",
		"trace_id", TraceIDFromContext(ctx),
		"product_id", event.ProductID,
		"brew_method", event.BrewMethod,
		"reco_type", event.RecoType,
	)

	return nil
}

// ListFeedback returns the most recent applied-recommendation events for
// a product, newest first.
func (s *RecommendService) ListFeedback(ctx context.Context, productID uint64, limit int) ([]domain.RecommendationEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if productID == 0 {
		return nil, errors.New("invalid product id")
	}
	if s.eventRepo == nil {
		return nil, nil
	}

	events, err := s.eventRepo.FindByProduct(ctx, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("load recommendation events: %w", err)
	}

	return events, nil
}

// InvalidateProduct drops the cached set for a product. Called by the
// session write path so new brews show up in the next request.
func (s *RecommendService) InvalidateProduct(ctx context.Context, productID uint64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateProduct(ctx, productID); err != nil {
		logger.Warn("recommendation cache invalidation failed",
			"trace_id", TraceIDFromContext(ctx),
			"product_id", productID,
			"error", err,
		)
	}
}
