//go:build !integration

package brewsession

import (
	"context"
	"errors"
	"testing"

	"brewjournal/domain"
)

type fakeSessionRepo struct {
	sessions map[uint64]domain.BrewSession
	nextID   uint64
	findErr  error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[uint64]domain.BrewSession{}, nextID: 1}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *domain.BrewSession) error {
	session.ID = f.nextID
	f.nextID++
	f.sessions[session.ID] = *session
	return nil
}

func (f *fakeSessionRepo) FindByID(ctx context.Context, id uint64) (domain.BrewSession, error) {
	if f.findErr != nil {
		return domain.BrewSession{}, f.findErr
	}
	s, ok := f.sessions[id]
	if !ok {
		return domain.BrewSession{}, errors.New("session not found")
	}
	return s, nil
}

func (f *fakeSessionRepo) FindAll(ctx context.Context, filter domain.SessionFilter) ([]domain.BrewSession, error) {
	var out []domain.BrewSession
	for _, s := range f.sessions {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSessionRepo) Update(ctx context.Context, session *domain.BrewSession) error {
	if _, ok := f.sessions[session.ID]; !ok {
		return errors.New("session not found or already deleted")
	}
	f.sessions[session.ID] = *session
	return nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id uint64) error {
	if _, ok := f.sessions[id]; !ok {
		return errors.New("session not found or already deleted")
	}
	delete(f.sessions, id)
	return nil
}

type fakeProductRepo struct {
	products map[uint64]domain.Product
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, errors.New("product not found")
	}
	return p, nil
}

type fakeInvalidator struct {
	invalidated []uint64
}

func (f *fakeInvalidator) InvalidateProduct(ctx context.Context, productID uint64) {
	f.invalidated = append(f.invalidated, productID)
}

func fp(v float64) *float64 { return &v }

func newTestService() (*sessionService, *fakeSessionRepo, *fakeInvalidator) {
	sessionRepo := newFakeSessionRepo()
	productRepo := &fakeProductRepo{products: map[uint64]domain.Product{
		1: {ID: 1, Name: "Kayon Mountain"},
		2: {ID: 2, Name: "La Palma"},
	}}
	inv := &fakeInvalidator{}
	return NewSessionService(sessionRepo, productRepo, inv), sessionRepo, inv
}

func TestCreateSessionDerivesBrewRatio(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.CreateSession(context.Background(), &domain.BrewSession{
		ProductID:         1,
		BrewMethod:        "V60",
		AmountCoffeeGrams: fp(18),
		AmountWaterGrams:  fp(290),
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if created.BrewRatio == nil {
		t.Fatal("expected derived brew ratio")
	}
	// 290/18 = 16.111..., rounded to one decimal
	if *created.BrewRatio != 16.1 {
		t.Errorf("brew ratio = %v, want 16.1", *created.BrewRatio)
	}
}

func TestCreateSessionIgnoresClientRatio(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.CreateSession(context.Background(), &domain.BrewSession{
		ProductID:         1,
		AmountCoffeeGrams: fp(15),
		AmountWaterGrams:  fp(250),
		BrewRatio:         fp(99),
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if *created.BrewRatio != 16.7 {
		t.Errorf("brew ratio = %v, want derived 16.7", *created.BrewRatio)
	}
}

func TestCreateSessionPartialAmountsLeaveRatioUnset(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.CreateSession(context.Background(), &domain.BrewSession{
		ProductID:         1,
		AmountCoffeeGrams: fp(18),
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if created.BrewRatio != nil {
		t.Errorf("brew ratio = %v, want nil", *created.BrewRatio)
	}
}

func TestCreateSessionValidation(t *testing.T) {
	svc, _, _ := newTestService()

	cases := []struct {
		name    string
		session domain.BrewSession
		wantErr string
	}{
		{"missing product", domain.BrewSession{}, "product id is required"},
		{"unknown product", domain.BrewSession{ProductID: 42}, "product not found"},
		{"score too high", domain.BrewSession{ProductID: 1, Score: fp(11)}, "score must be between 0 and 10"},
		{"negative score", domain.BrewSession{ProductID: 1, Score: fp(-1)}, "score must be between 0 and 10"},
		{"zero coffee", domain.BrewSession{ProductID: 1, AmountCoffeeGrams: fp(0)}, "amount of coffee must be greater than 0"},
		{"zero water", domain.BrewSession{ProductID: 1, AmountWaterGrams: fp(0)}, "amount of water must be greater than 0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateSession(context.Background(), &tc.session)
			if err == nil || err.Error() != tc.wantErr {
				t.Errorf("err = %v, want %q", err, tc.wantErr)
			}
		})
	}
}

func TestSessionWritesInvalidateRecommendations(t *testing.T) {
	svc, _, inv := newTestService()
	ctx := context.Background()

	created, err := svc.CreateSession(ctx, &domain.BrewSession{ProductID: 1, BrewMethod: "V60"})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if len(inv.invalidated) != 1 || inv.invalidated[0] != 1 {
		t.Fatalf("invalidated after create = %v, want [1]", inv.invalidated)
	}

	created.Score = fp(8)
	if _, err := svc.UpdateSession(ctx, created); err != nil {
		t.Fatalf("UpdateSession: %v", err)
	}
	if len(inv.invalidated) != 2 {
		t.Fatalf("invalidated after update = %v", inv.invalidated)
	}

	if err := svc.DeleteSession(ctx, created.ID); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if len(inv.invalidated) != 3 {
		t.Fatalf("invalidated after delete = %v", inv.invalidated)
	}
}

func TestUpdateSessionMovedProductInvalidatesBoth(t *testing.T) {
	svc, _, inv := newTestService()
	ctx := context.Background()

	created, err := svc.CreateSession(ctx, &domain.BrewSession{ProductID: 1, BrewMethod: "V60"})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	inv.invalidated = nil

	created.ProductID = 2
	if _, err := svc.UpdateSession(ctx, created); err != nil {
		t.Fatalf("UpdateSession: %v", err)
	}

	if len(inv.invalidated) != 2 || inv.invalidated[0] != 2 || inv.invalidated[1] != 1 {
		t.Errorf("invalidated = %v, want [2 1]", inv.invalidated)
	}
}

func TestDeleteMissingSession(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.DeleteSession(context.Background(), 99)
	if err == nil || err.Error() != "session not found" {
		t.Errorf("err = %v, want session not found", err)
	}
}
