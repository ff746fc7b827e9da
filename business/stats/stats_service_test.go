//go:build !integration

package stats

import (
	"context"
	"errors"
	"testing"

	"brewjournal/domain"
)

type fakeStatsRepo struct {
	overview domain.OverviewStats
	methods  []domain.MethodStats
	products []domain.ProductStats
	err      error
}

func (f *fakeStatsRepo) Overview(ctx context.Context) (domain.OverviewStats, error) {
	return f.overview, f.err
}

func (f *fakeStatsRepo) MethodStatsForProduct(ctx context.Context, productID uint64) ([]domain.MethodStats, error) {
	return f.methods, f.err
}

func (f *fakeStatsRepo) ProductStats(ctx context.Context) ([]domain.ProductStats, error) {
	return f.products, f.err
}

func fp(v float64) *float64 { return &v }

func TestGetOverview(t *testing.T) {
	repo := &fakeStatsRepo{
		overview: domain.OverviewStats{
			Products: 3,
			Sessions: 17,
			AvgScore: fp(7.2),
			Methods: []domain.MethodStats{
				{BrewMethod: "V60", Sessions: 10, AvgScore: fp(7.5), BestScore: fp(9)},
				{BrewMethod: "Espresso", Sessions: 7, AvgScore: fp(6.8), BestScore: fp(8)},
			},
		},
	}
	svc := NewStatsService(repo)

	overview, err := svc.GetOverview(context.Background())
	if err != nil {
		t.Fatalf("GetOverview: %v", err)
	}
	if overview.Products != 3 || overview.Sessions != 17 {
		t.Errorf("overview = %+v", overview)
	}
	if len(overview.Methods) != 2 || overview.Methods[0].BrewMethod != "V60" {
		t.Errorf("methods = %+v", overview.Methods)
	}
}

func TestGetMethodStatsRejectsZeroProduct(t *testing.T) {
	svc := NewStatsService(&fakeStatsRepo{})

	_, err := svc.GetMethodStatsForProduct(context.Background(), 0)
	if err == nil || err.Error() != "invalid product id" {
		t.Errorf("err = %v, want invalid product id", err)
	}
}

func TestStatsRepoErrorPropagates(t *testing.T) {
	svc := NewStatsService(&fakeStatsRepo{err: errors.New("db down")})

	if _, err := svc.GetOverview(context.Background()); err == nil {
		t.Error("expected overview error")
	}
	if _, err := svc.GetProductStats(context.Background()); err == nil {
		t.Error("expected product stats error")
	}
	if _, err := svc.GetMethodStatsForProduct(context.Background(), 1); err == nil {
		t.Error("expected method stats error")
	}
}
