//go:build !integration

package recommend

import (
	"context"
	"errors"
	"testing"

	"brewjournal/domain"
)

type fakeSessionRepo struct {
	sessions []domain.BrewSession
	err      error
	calls    int
}

func (f *fakeSessionRepo) FindByProduct(ctx context.Context, productID uint64) ([]domain.BrewSession, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.BrewSession, 0, len(f.sessions))
	for _, s := range f.sessions {
		if s.ProductID == productID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeEventRepo struct {
	events []domain.RecommendationEvent
	err    error
}

func (f *fakeEventRepo) SaveEvent(ctx context.Context, event domain.RecommendationEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakeEventRepo) FindByProduct(ctx context.Context, productID uint64, limit int) ([]domain.RecommendationEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.RecommendationEvent
	for _, ev := range f.events {
		if ev.ProductID == productID {
			out = append(out, ev)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeCache struct {
	store       map[uint64]domain.RecommendationSet
	getErr      error
	setErr      error
	invalidated []uint64
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[uint64]domain.RecommendationSet)}
}

func (f *fakeCache) Get(ctx context.Context, productID uint64) (*domain.RecommendationSet, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if set, ok := f.store[productID]; ok {
		return &set, nil
	}
	return nil, nil
}

func (f *fakeCache) Set(ctx context.Context, productID uint64, set domain.RecommendationSet) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.store[productID] = set
	return nil
}

func (f *fakeCache) InvalidateProduct(ctx context.Context, productID uint64) error {
	f.invalidated = append(f.invalidated, productID)
	delete(f.store, productID)
	return nil
}

func TestGetRecommendations_MethodFilterNarrowsPresentation(t *testing.T) {
	repo := &fakeSessionRepo{sessions: []domain.BrewSession{
		{ProductID: 7, BrewMethod: "V60", Score: fp(8), AmountCoffeeGrams: fp(18)},
		{ProductID: 7, BrewMethod: "V60", Score: fp(8.5), AmountCoffeeGrams: fp(18)},
		{ProductID: 7, BrewMethod: "Aeropress", Score: fp(7), AmountCoffeeGrams: fp(14)},
	}}
	svc := NewRecommendService(repo, nil, nil)

	full, err := svc.GetRecommendations(context.Background(), 7, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(full.Recommendations) != 2 {
		t.Errorf("expected both methods in unfiltered set, got %v", full.Recommendations)
	}

	only, err := svc.GetRecommendations(context.Background(), 7, "V60")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(only.Recommendations) != 1 {
		t.Fatalf("expected only V60, got %v", only.Recommendations)
	}
	if _, ok := only.Recommendations["V60"]; !ok {
		t.Errorf("expected the V60 entry, got %v", only.Recommendations)
	}

	missing, err := svc.GetRecommendations(context.Background(), 7, "Chemex")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing.HasRecommendations {
		t.Errorf("a method with no sessions should read as not enough data")
	}
	if missing.Message == "" {
		t.Errorf("expected a message for the empty method")
	}
}

func TestGetRecommendations_FetchFailurePropagates(t *testing.T) {
	repo := &fakeSessionRepo{err: errors.New("connection refused")}
	svc := NewRecommendService(repo, nil, nil)

	_, err := svc.GetRecommendations(context.Background(), 7, "")
	if err == nil {
		t.Fatalf("expected a fetch failure to propagate as an error")
	}
}

func TestGetRecommendations_InvalidProduct(t *testing.T) {
	svc := NewRecommendService(&fakeSessionRepo{}, nil, nil)

	if _, err := svc.GetRecommendations(context.Background(), 0, ""); err == nil {
		t.Fatalf("expected an error for product id 0")
	}
}

func TestGetRecommendations_CacheRoundTrip(t *testing.T) {
	repo := &fakeSessionRepo{sessions: []domain.BrewSession{
		{ProductID: 7, BrewMethod: "V60", Score: fp(9), AmountCoffeeGrams: fp(18)},
	}}
	cache := newFakeCache()
	svc := NewRecommendService(repo, nil, cache)

	first, err := svc.GetRecommendations(context.Background(), 7, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("expected one repository read, got %d", repo.calls)
	}

	second, err := svc.GetRecommendations(context.Background(), 7, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 1 {
		t.Errorf("expected the second request to hit the cache, repo calls=%d", repo.calls)
	}
	if second.HasRecommendations != first.HasRecommendations {
		t.Errorf("cached set differs from computed set")
	}

	// After invalidation the corpus is re-read.
	svc.InvalidateProduct(context.Background(), 7)
	if _, err := svc.GetRecommendations(context.Background(), 7, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 2 {
		t.Errorf("expected a fresh read after invalidation, repo calls=%d", repo.calls)
	}
}

func TestGetRecommendations_CacheFailureIsBestEffort(t *testing.T) {
	repo := &fakeSessionRepo{sessions: []domain.BrewSession{
		{ProductID: 7, BrewMethod: "V60", Score: fp(9), AmountCoffeeGrams: fp(18)},
	}}
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	svc := NewRecommendService(repo, nil, cache)

	set, err := svc.GetRecommendations(context.Background(), 7, "")
	if err != nil {
		t.Fatalf("a broken cache must not fail the request: %v", err)
	}
	if !set.HasRecommendations {
		t.Errorf("expected a derived set despite cache errors")
	}
}

func TestLogFeedback(t *testing.T) {
	events := &fakeEventRepo{}
	svc := NewRecommendService(&fakeSessionRepo{}, events, nil)

	err := svc.LogFeedback(context.Background(), domain.RecommendationEvent{
		ProductID:  7,
		BrewMethod: "V60",
		RecoType:   domain.RecommendationTemplate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events.events) != 1 {
		t.Fatalf("expected one stored event, got %d", len(events.events))
	}

	bad := []domain.RecommendationEvent{
		{BrewMethod: "V60", RecoType: domain.RecommendationTemplate},   // no product
		{ProductID: 7, RecoType: domain.RecommendationTemplate},        // no method
		{ProductID: 7, BrewMethod: "V60", RecoType: "guesswork"},       // bad type
	}
	for i, ev := range bad {
		if err := svc.LogFeedback(context.Background(), ev); err == nil {
			t.Errorf("case %d: expected a validation error", i)
		}
	}
}

func TestListFeedback(t *testing.T) {
	events := &fakeEventRepo{}
	svc := NewRecommendService(&fakeSessionRepo{}, events, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := svc.LogFeedback(ctx, domain.RecommendationEvent{
			ProductID:  7,
			BrewMethod: "V60",
			RecoType:   domain.RecommendationAggregate,
		})
		if err != nil {
			t.Fatalf("LogFeedback: %v", err)
		}
	}

	got, err := svc.ListFeedback(ctx, 7, 2)
	if err != nil {
		t.Fatalf("ListFeedback: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}

	if _, err := svc.ListFeedback(ctx, 0, 10); err == nil {
		t.Error("expected an error for product id 0")
	}
}
