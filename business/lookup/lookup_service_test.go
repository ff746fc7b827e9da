//go:build !integration

package lookup

import (
	"context"
	"errors"
	"testing"

	"brewjournal/domain"
)

type fakeLookupRepo struct {
	values map[uint64]domain.LookupValue
	nextID uint64
}

func newFakeLookupRepo() *fakeLookupRepo {
	return &fakeLookupRepo{values: map[uint64]domain.LookupValue{}, nextID: 1}
}

func (f *fakeLookupRepo) Create(ctx context.Context, value *domain.LookupValue) error {
	value.ID = f.nextID
	f.nextID++
	f.values[value.ID] = *value
	return nil
}

func (f *fakeLookupRepo) FindByID(ctx context.Context, id uint64) (domain.LookupValue, error) {
	v, ok := f.values[id]
	if !ok {
		return domain.LookupValue{}, errors.New("lookup value not found")
	}
	return v, nil
}

func (f *fakeLookupRepo) FindByKind(ctx context.Context, kind string) ([]domain.LookupValue, error) {
	var out []domain.LookupValue
	for _, v := range f.values {
		if v.Kind == kind {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeLookupRepo) Update(ctx context.Context, value *domain.LookupValue) error {
	if _, ok := f.values[value.ID]; !ok {
		return errors.New("lookup value not found")
	}
	f.values[value.ID] = *value
	return nil
}

func (f *fakeLookupRepo) Delete(ctx context.Context, id uint64) error {
	if _, ok := f.values[id]; !ok {
		return errors.New("lookup value not found")
	}
	delete(f.values, id)
	return nil
}

func TestCreateValueRejectsUnknownKind(t *testing.T) {
	svc := NewLookupService(newFakeLookupRepo())

	_, err := svc.CreateValue(context.Background(), &domain.LookupValue{Kind: "flavor", Value: "jammy"})
	if err == nil || err.Error() != "unknown lookup kind" {
		t.Errorf("err = %v, want unknown lookup kind", err)
	}
}

func TestCreateValueRejectsDuplicate(t *testing.T) {
	svc := NewLookupService(newFakeLookupRepo())
	ctx := context.Background()

	if _, err := svc.CreateValue(ctx, &domain.LookupValue{Kind: "brew_method", Value: "V60"}); err != nil {
		t.Fatalf("CreateValue: %v", err)
	}

	_, err := svc.CreateValue(ctx, &domain.LookupValue{Kind: "brew_method", Value: "V60"})
	if err == nil || err.Error() != "value already exists" {
		t.Errorf("err = %v, want value already exists", err)
	}

	// same value under a different kind is fine
	if _, err := svc.CreateValue(ctx, &domain.LookupValue{Kind: "recipe", Value: "V60"}); err != nil {
		t.Errorf("CreateValue different kind: %v", err)
	}
}

func TestUpdateValueKeepsKind(t *testing.T) {
	svc := NewLookupService(newFakeLookupRepo())
	ctx := context.Background()

	created, err := svc.CreateValue(ctx, &domain.LookupValue{Kind: "grinder", Value: "Comandante"})
	if err != nil {
		t.Fatalf("CreateValue: %v", err)
	}

	updated, err := svc.UpdateValue(ctx, &domain.LookupValue{ID: created.ID, Kind: "roaster", Value: "Commandante C40"})
	if err != nil {
		t.Fatalf("UpdateValue: %v", err)
	}
	if updated.Kind != "grinder" {
		t.Errorf("kind = %q, want grinder", updated.Kind)
	}
	if updated.Value != "Commandante C40" {
		t.Errorf("value = %q", updated.Value)
	}
}

func TestGetValuesUnknownKind(t *testing.T) {
	svc := NewLookupService(newFakeLookupRepo())

	_, err := svc.GetValues(context.Background(), "tasting_note")
	if err == nil || err.Error() != "unknown lookup kind" {
		t.Errorf("err = %v, want unknown lookup kind", err)
	}
}

func TestDeleteMissingValue(t *testing.T) {
	svc := NewLookupService(newFakeLookupRepo())

	err := svc.DeleteValue(context.Background(), 7)
	if err == nil || err.Error() != "lookup value not found" {
		t.Errorf("err = %v, want lookup value not found", err)
	}
}
