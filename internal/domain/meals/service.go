package meals

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"meal-train-go/internal/domain/couriers"
	"meal-train-go/internal/domain/pickups"
	"meal-train-go/internal/domain/validation"
	"meal-train-go/internal/locations"
	"meal-train-go/internal/notify"
	"meal-train-go/pkg/logger"
)

const notifyTimeout = 30 * time.Second

type Service struct {
	repo     Repository
	pickups  pickups.Repository
	couriers couriers.Repository
	mailer   notify.Mailer
	baseURL  string
	log      logger.Logger
	now      func() time.Time
	// spawn runs the post-commit notification work; production detaches a
	// goroutine, tests run inline.
	spawn func(func())
}

func NewService(
	repo Repository,
	pickupRepo pickups.Repository,
	courierRepo couriers.Repository,
	mailer notify.Mailer,
	baseURL string,
	log logger.Logger,
) *Service {
	return &Service{
		repo:     repo,
		pickups:  pickupRepo,
		couriers: courierRepo,
		mailer:   mailer,
		baseURL:  strings.TrimRight(baseURL, "/"),
		log:      log,
		now:      time.Now,
		spawn:    func(fn func()) { go fn() },
	}
}

// CreateSignup validates and persists a public meal signup, then fires the
// confirmation and courier notification emails. The emails are post-commit
// and best-effort: once the row is in, the signup has succeeded.
func (s *Service) CreateSignup(ctx context.Context, input CreateSignupInput) (*SignupResult, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	email := strings.TrimSpace(input.Email)
	description := strings.TrimSpace(input.MealDescription)

	if name == "" || phone == "" || email == "" || input.PickupLocationID == "" || description == "" {
		return nil, validation.Errorf("Missing required fields")
	}
	if !validation.ValidEmail(email) {
		return nil, validation.Errorf("Invalid email format")
	}
	if !validation.ValidPhone(phone) {
		return nil, validation.Errorf("Invalid phone number")
	}

	pickup, err := s.pickups.GetByID(ctx, input.PickupLocationID)
	if err != nil {
		if errors.Is(err, pickups.ErrPickupNotFound) {
			return nil, ErrPickupUnavailable
		}
		return nil, err
	}
	if !pickup.Active || pickup.PickupDate.Before(pickups.Today(s.now())) {
		return nil, ErrPickupUnavailable
	}

	signup := Signup{
		PickupLocationID: pickup.ID,
		Name:             name,
		Phone:            phone,
		Email:            email,
		MealDescription:  description,
		FreezerFriendly:  input.FreezerFriendly,
		CanBringToSalem:  input.CanBringToSalem,
	}
	if note := strings.TrimSpace(input.NoteToCourier); note != "" {
		signup.NoteToCourier = &note
	}

	if err := s.repo.CreateSignup(ctx, &signup); err != nil {
		return nil, err
	}

	matched, err := s.couriers.ListActiveByLocation(ctx, pickup.Location)
	if err != nil {
		s.log.InternalError("meals: courier lookup failed after signup", err, "pickup_location_id", pickup.ID)
		matched = nil
	}

	total, err := s.repo.CountActive(ctx, pickup.ID)
	if err != nil {
		s.log.InternalError("meals: active count failed after signup", err, "pickup_location_id", pickup.ID)
		total = 0
	}

	s.spawn(func() {
		s.sendSignupEmails(signup, *pickup, matched, total)
	})

	return &SignupResult{
		MealID:  signup.ID,
		Message: "Meal signup successful! Check your email for confirmation.",
	}, nil
}

// ListUpcomingGrouped returns all non-past signups bucketed by hub key.
// Every hub is present even when empty.
func (s *Service) ListUpcomingGrouped(ctx context.Context) (map[string][]SignupWithPickup, error) {
	rows, err := s.repo.ListUpcoming(ctx, pickups.Today(s.now()))
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]SignupWithPickup, 4)
	for _, key := range locations.Keys() {
		grouped[key] = []SignupWithPickup{}
	}
	for _, row := range rows {
		if _, ok := grouped[row.Location]; ok {
			grouped[row.Location] = append(grouped[row.Location], row)
		}
	}

	return grouped, nil
}

// LookupCancellation resolves a token to the signup it guards without
// mutating anything, so the holder can review before confirming.
func (s *Service) LookupCancellation(ctx context.Context, token string) (*CancellationSummary, error) {
	row, err := s.getByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	return &CancellationSummary{
		ID:               row.ID,
		Name:             row.Name,
		MealDescription:  row.MealDescription,
		PickupDate:       row.PickupDate,
		Location:         row.Location,
		AlreadyCancelled: row.Cancelled(),
	}, nil
}

// Cancel soft-deletes the signup the token guards. A second attempt is an
// explicit error, not a no-op.
func (s *Service) Cancel(ctx context.Context, token string) (string, error) {
	row, err := s.getByToken(ctx, token)
	if err != nil {
		return "", err
	}
	if row.Cancelled() {
		return "", ErrAlreadyCancelled
	}

	ok, err := s.repo.MarkCancelled(ctx, row.ID, s.now().UTC())
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrAlreadyCancelled
	}

	remaining, err := s.repo.CountActive(ctx, row.PickupLocationID)
	if err != nil {
		s.log.InternalError("meals: remaining count failed after cancel", err, "pickup_location_id", row.PickupLocationID)
		remaining = 0
	}

	matched, err := s.couriers.ListActiveByLocation(ctx, row.Location)
	if err != nil {
		s.log.InternalError("meals: courier lookup failed after cancel", err, "location", row.Location)
		matched = nil
	}

	cancelled := *row
	s.spawn(func() {
		s.sendCancellationEmails(cancelled, matched, remaining)
	})

	return "Meal cancelled successfully", nil
}

// List serves the admin signup listing with optional hub and status filters.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]SignupWithPickup, error) {
	return s.repo.List(ctx, filter)
}

// Delete is the admin hard delete; the public path only ever soft-deletes.
func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMealNotFound
	}
	return nil
}

// getByToken treats anything that cannot be a token, malformed UUIDs
// included, as not found.
func (s *Service) getByToken(ctx context.Context, token string) (*SignupWithPickup, error) {
	if _, err := uuid.Parse(strings.TrimSpace(token)); err != nil {
		return nil, ErrMealNotFound
	}
	return s.repo.GetByToken(ctx, strings.TrimSpace(token))
}

func (s *Service) sendSignupEmails(signup Signup, pickup pickups.Pickup, matched []couriers.Courier, total int64) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	contacts := courierContacts(matched)
	cancellationURL := s.baseURL + "/cancel/" + signup.CancellationToken

	html, err := notify.RenderConfirmation(notify.ConfirmationData{
		Name:            signup.Name,
		Date:            pickup.PickupDate,
		Location:        pickup.Location,
		MealDescription: signup.MealDescription,
		FreezerFriendly: signup.FreezerFriendly,
		CancellationURL: cancellationURL,
		Couriers:        contacts,
	})
	if err != nil {
		s.log.InternalError("notify: confirmation render failed", err, "meal_id", signup.ID)
	} else {
		subject := "Meal Drop-off Confirmation - " + notify.FormatDate(pickup.PickupDate)
		if err := s.mailer.Send(ctx, signup.Email, subject, html); err != nil {
			s.log.InternalError("notify: confirmation email failed", err, "to", signup.Email, "meal_id", signup.ID)
		} else {
			s.log.Info("notify: confirmation email sent", "to", signup.Email, "meal_id", signup.ID)
		}
	}

	note := ""
	if signup.NoteToCourier != nil {
		note = *signup.NoteToCourier
	}

	for _, courier := range matched {
		html, err := notify.RenderNewSignup(notify.NewSignupData{
			ProviderName:    signup.Name,
			ProviderPhone:   signup.Phone,
			MealDescription: signup.MealDescription,
			FreezerFriendly: signup.FreezerFriendly,
			CanBringToSalem: signup.CanBringToSalem,
			NoteToCourier:   note,
			Date:            pickup.PickupDate,
			Location:        pickup.Location,
			TotalMeals:      int(total),
		})
		if err != nil {
			s.log.InternalError("notify: signup notification render failed", err, "meal_id", signup.ID)
			continue
		}
		subject := "New Meal Signup - " + pickup.Location + " - " + notify.FormatDate(pickup.PickupDate)
		if err := s.mailer.Send(ctx, courier.Email, subject, html); err != nil {
			s.log.InternalError("notify: courier notification failed", err, "to", courier.Email, "meal_id", signup.ID)
			continue
		}
		s.log.Info("notify: courier notification sent", "to", courier.Email, "meal_id", signup.ID)
	}
}

func (s *Service) sendCancellationEmails(row SignupWithPickup, matched []couriers.Courier, remaining int64) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	for _, courier := range matched {
		html, err := notify.RenderCancellationNotice(notify.CancellationNoticeData{
			ProviderName:    row.Name,
			MealDescription: row.MealDescription,
			Date:            row.PickupDate,
			Location:        row.Location,
			RemainingMeals:  int(remaining),
		})
		if err != nil {
			s.log.InternalError("notify: cancellation notice render failed", err, "meal_id", row.ID)
			continue
		}
		subject := "Meal Cancellation - " + row.Location + " - " + notify.FormatDate(row.PickupDate)
		if err := s.mailer.Send(ctx, courier.Email, subject, html); err != nil {
			s.log.InternalError("notify: cancellation notice failed", err, "to", courier.Email, "meal_id", row.ID)
			continue
		}
		s.log.Info("notify: cancellation notice sent", "to", courier.Email, "meal_id", row.ID)
	}

	html, err := notify.RenderCancellationConfirmed(notify.CancellationConfirmedData{
		Name:            row.Name,
		MealDescription: row.MealDescription,
		Date:            row.PickupDate,
		Location:        row.Location,
	})
	if err != nil {
		s.log.InternalError("notify: cancellation confirmation render failed", err, "meal_id", row.ID)
		return
	}
	if err := s.mailer.Send(ctx, row.Email, "Meal Cancellation Confirmed", html); err != nil {
		s.log.InternalError("notify: cancellation confirmation failed", err, "to", row.Email, "meal_id", row.ID)
		return
	}
	s.log.Info("notify: cancellation confirmation sent", "to", row.Email, "meal_id", row.ID)
}

func courierContacts(matched []couriers.Courier) []notify.CourierContact {
	contacts := make([]notify.CourierContact, 0, len(matched))
	for _, courier := range matched {
		contacts = append(contacts, notify.CourierContact{
			Name:  courier.Name,
			Phone: validation.FormatPhone(courier.Phone),
			Email: courier.Email,
		})
	}
	return contacts
}
