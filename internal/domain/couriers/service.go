package couriers

import (
	"context"
	"strings"

	"meal-train-go/internal/domain/validation"
	"meal-train-go/internal/locations"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Courier, error) {
	return s.repo.List(ctx)
}

// MatchActive returns the active couriers servicing a hub; this is the only
// courier-to-signup association the system has.
func (s *Service) MatchActive(ctx context.Context, location string) ([]Courier, error) {
	return s.repo.ListActiveByLocation(ctx, location)
}

func (s *Service) Create(ctx context.Context, input CreateCourierInput) (*Courier, error) {
	name, email, phone, locs, err := checkCourierFields(input.Name, input.Email, input.Phone, input.Locations)
	if err != nil {
		return nil, err
	}

	courier := Courier{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Locations: locs,
		Active:    true,
	}
	if err := s.repo.Create(ctx, &courier); err != nil {
		return nil, err
	}

	return &courier, nil
}

// Update replaces every field; a missing active flag resets the courier to
// active, matching create.
func (s *Service) Update(ctx context.Context, input UpdateCourierInput) (*Courier, error) {
	name, email, phone, locs, err := checkCourierFields(input.Name, input.Email, input.Phone, input.Locations)
	if err != nil {
		return nil, err
	}

	courier, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	courier.Name = name
	courier.Email = email
	courier.Phone = phone
	courier.Locations = locs
	courier.Active = true
	if input.Active != nil {
		courier.Active = *input.Active
	}

	if err := s.repo.Update(ctx, courier); err != nil {
		return nil, err
	}

	return courier, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCourierNotFound
	}
	return nil
}

func checkCourierFields(name, email, phone string, locs []string) (string, string, string, []string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" || email == "" || phone == "" || len(locs) == 0 {
		return "", "", "", nil, validation.Errorf("Name, email, phone, and at least one location are required")
	}
	if !validation.ValidEmail(email) {
		return "", "", "", nil, validation.Errorf("Invalid email format")
	}
	if !validation.ValidPhone(phone) {
		return "", "", "", nil, validation.Errorf("Invalid phone number")
	}

	cleaned := make([]string, 0, len(locs))
	for _, loc := range locs {
		loc = strings.TrimSpace(loc)
		if !locations.IsValid(loc) {
			return "", "", "", nil, validation.Errorf("Invalid location: %s. Must be Salem, Portland, Eugene, or I5 Corridor", loc)
		}
		cleaned = append(cleaned, loc)
	}

	return name, email, phone, cleaned, nil
}
