package couriers

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"meal-train-go/internal/domain/validation"
)

type fakeRepo struct {
	couriers map[string]*Courier
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{couriers: make(map[string]*Courier)}
}

func (r *fakeRepo) List(ctx context.Context) ([]Courier, error) {
	out := make([]Courier, 0, len(r.couriers))
	for _, courier := range r.couriers {
		out = append(out, *courier)
	}
	return out, nil
}

func (r *fakeRepo) ListActiveByLocation(ctx context.Context, location string) ([]Courier, error) {
	out := make([]Courier, 0)
	for _, courier := range r.couriers {
		if !courier.Active {
			continue
		}
		for _, loc := range courier.Locations {
			if loc == location {
				out = append(out, *courier)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*Courier, error) {
	courier, ok := r.couriers[id]
	if !ok {
		return nil, ErrCourierNotFound
	}
	copied := *courier
	return &copied, nil
}

func (r *fakeRepo) Create(ctx context.Context, courier *Courier) error {
	courier.ID = uuid.NewString()
	copied := *courier
	r.couriers[courier.ID] = &copied
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, courier *Courier) error {
	if _, ok := r.couriers[courier.ID]; !ok {
		return ErrCourierNotFound
	}
	copied := *courier
	r.couriers[courier.ID] = &copied
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := r.couriers[id]; !ok {
		return false, nil
	}
	delete(r.couriers, id)
	return true, nil
}

func validCreate() CreateCourierInput {
	return CreateCourierInput{
		Name:      "Casey Nguyen",
		Email:     "casey@example.org",
		Phone:     "503-555-0199",
		Locations: []string{"Salem", "Portland"},
	}
}

func TestCreateCourier(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo)

	courier, err := service.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if courier.ID == "" {
		t.Error("expected an assigned ID")
	}
	if !courier.Active {
		t.Error("new courier should default to active")
	}
	if len(courier.Locations) != 2 {
		t.Errorf("locations = %v, want 2 hubs", courier.Locations)
	}
}

func TestCreateCourierValidation(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo)

	tests := []struct {
		name   string
		mutate func(*CreateCourierInput)
	}{
		{"missing name", func(in *CreateCourierInput) { in.Name = " " }},
		{"missing email", func(in *CreateCourierInput) { in.Email = "" }},
		{"missing phone", func(in *CreateCourierInput) { in.Phone = "" }},
		{"no locations", func(in *CreateCourierInput) { in.Locations = nil }},
		{"bad email", func(in *CreateCourierInput) { in.Email = "nope" }},
		{"bad phone", func(in *CreateCourierInput) { in.Phone = "123" }},
		{"unknown location", func(in *CreateCourierInput) { in.Locations = []string{"Boise"} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := validCreate()
			tc.mutate(&input)

			_, err := service.Create(context.Background(), input)
			var verr *validation.Error
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(repo.couriers) != 0 {
				t.Error("invalid courier was persisted")
			}
		})
	}
}

func TestUpdateCourierReplacesFields(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo)

	created, err := service.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	inactive := false
	updated, err := service.Update(context.Background(), UpdateCourierInput{
		ID:        created.ID,
		Name:      "Casey N.",
		Email:     "casey.n@example.org",
		Phone:     "5035550200",
		Locations: []string{"Eugene"},
		Active:    &inactive,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Casey N." || updated.Email != "casey.n@example.org" {
		t.Errorf("update did not replace fields: %+v", updated)
	}
	if len(updated.Locations) != 1 || updated.Locations[0] != "Eugene" {
		t.Errorf("locations = %v, want [Eugene]", updated.Locations)
	}
	if updated.Active {
		t.Error("explicit active flag ignored")
	}

	// Omitting the flag resets the courier to active, same as create.
	updated, err = service.Update(context.Background(), UpdateCourierInput{
		ID:        created.ID,
		Name:      "Casey N.",
		Email:     "casey.n@example.org",
		Phone:     "5035550200",
		Locations: []string{"Eugene"},
	})
	if err != nil {
		t.Fatalf("second Update: %v", err)
	}
	if !updated.Active {
		t.Error("omitted active flag should reset to active")
	}
}

func TestUpdateCourierNotFound(t *testing.T) {
	service := NewService(newFakeRepo())

	input := UpdateCourierInput{
		ID:        uuid.NewString(),
		Name:      "Nobody",
		Email:     "nobody@example.org",
		Phone:     "5035550201",
		Locations: []string{"Salem"},
	}
	if _, err := service.Update(context.Background(), input); !errors.Is(err, ErrCourierNotFound) {
		t.Fatalf("expected ErrCourierNotFound, got %v", err)
	}
}

func TestDeleteCourier(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo)

	created, err := service.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := service.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := service.Delete(context.Background(), created.ID); !errors.Is(err, ErrCourierNotFound) {
		t.Fatalf("expected ErrCourierNotFound, got %v", err)
	}
}

func TestMatchActive(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo)

	if _, err := service.Create(context.Background(), validCreate()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	matched, err := service.MatchActive(context.Background(), "Salem")
	if err != nil {
		t.Fatalf("MatchActive: %v", err)
	}
	if len(matched) != 1 {
		t.Errorf("salem matches = %d, want 1", len(matched))
	}

	matched, err = service.MatchActive(context.Background(), "Eugene")
	if err != nil {
		t.Fatalf("MatchActive: %v", err)
	}
	if len(matched) != 0 {
		t.Errorf("eugene matches = %d, want 0", len(matched))
	}
}
