package pickups

import (
	"context"
	"errors"
	"time"

	"meal-train-go/internal/domain/validation"
	"meal-train-go/internal/locations"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns every pickup location for the admin view, newest date first.
func (s *Service) List(ctx context.Context) ([]Pickup, error) {
	return s.repo.List(ctx)
}

// ListAvailable returns active locations dated today or later, the set a
// provider may sign up against.
func (s *Service) ListAvailable(ctx context.Context) ([]Pickup, error) {
	return s.repo.ListAvailable(ctx, Today(s.now()))
}

func (s *Service) Create(ctx context.Context, input CreatePickupInput) (*Pickup, error) {
	if input.PickupDate.IsZero() || input.Location == "" {
		return nil, validation.Errorf("Pickup date and location are required")
	}
	if !locations.IsValid(input.Location) {
		return nil, validation.Errorf("Invalid location. Must be Salem, Portland, Eugene, or I5 Corridor")
	}

	date := normalizeDate(input.PickupDate)

	existing, err := s.repo.FindByDateLocation(ctx, date, input.Location)
	if err != nil && !errors.Is(err, ErrPickupNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPickupConflict
	}

	pickup := Pickup{
		PickupDate: date,
		Location:   input.Location,
		Active:     true,
	}
	if err := s.repo.Create(ctx, &pickup); err != nil {
		return nil, err
	}

	return &pickup, nil
}

func (s *Service) Update(ctx context.Context, input UpdatePickupInput) (*Pickup, error) {
	if input.PickupDate.IsZero() || input.Location == "" {
		return nil, validation.Errorf("Pickup date and location are required")
	}
	if !locations.IsValid(input.Location) {
		return nil, validation.Errorf("Invalid location. Must be Salem, Portland, Eugene, or I5 Corridor")
	}

	date := normalizeDate(input.PickupDate)

	existing, err := s.repo.FindByDateLocation(ctx, date, input.Location)
	if err != nil && !errors.Is(err, ErrPickupNotFound) {
		return nil, err
	}
	if existing != nil && existing.ID != input.ID {
		return nil, ErrPickupConflict
	}

	pickup, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	pickup.PickupDate = date
	pickup.Location = input.Location
	pickup.Active = true
	if input.Active != nil {
		pickup.Active = *input.Active
	}

	if err := s.repo.Update(ctx, pickup); err != nil {
		return nil, err
	}

	return pickup, nil
}

// Delete removes a pickup location outright when nothing references it and
// deactivates it otherwise, so existing signups keep their audit trail.
func (s *Service) Delete(ctx context.Context, id string) (DeleteOutcome, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return DeleteOutcome{}, err
	}

	count, err := s.repo.CountSignups(ctx, id)
	if err != nil {
		return DeleteOutcome{}, err
	}

	if count > 0 {
		if _, err := s.repo.Deactivate(ctx, id); err != nil {
			return DeleteOutcome{}, err
		}
		return DeleteOutcome{Deactivated: true}, nil
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return DeleteOutcome{}, err
	}
	if !deleted {
		return DeleteOutcome{}, ErrPickupNotFound
	}
	return DeleteOutcome{}, nil
}

// Seed inserts the Cartesian product of the hub registry and the allowed
// date list, skipping pairs that already exist. Safe to run repeatedly.
func (s *Service) Seed(ctx context.Context) ([]SeedResult, error) {
	results := make([]SeedResult, 0, len(locations.AllowedDates)*4)

	for _, date := range locations.ParseAllowedDates() {
		for _, key := range locations.Keys() {
			existing, err := s.repo.FindByDateLocation(ctx, date, key)
			if err != nil && !errors.Is(err, ErrPickupNotFound) {
				return results, err
			}
			if existing != nil {
				results = append(results, SeedResult{
					Action:     SeedExists,
					ID:         existing.ID,
					PickupDate: existing.PickupDate,
					Location:   existing.Location,
				})
				continue
			}

			pickup := Pickup{PickupDate: date, Location: key, Active: true}
			if err := s.repo.Create(ctx, &pickup); err != nil {
				return results, err
			}
			results = append(results, SeedResult{
				Action:     SeedCreated,
				ID:         pickup.ID,
				PickupDate: pickup.PickupDate,
				Location:   pickup.Location,
			})
		}
	}

	return results, nil
}

// Prune removes every pickup location no signup references. The destructive
// confirmation gate lives at the transport layer.
func (s *Service) Prune(ctx context.Context) ([]Pickup, error) {
	return s.repo.DeleteUnreferenced(ctx)
}

// Today truncates a moment to its calendar date at midnight UTC, the form
// pickup dates are stored in.
func Today(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func normalizeDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
