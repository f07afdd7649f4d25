// Package reminders implements the next-day reminder sweep. The sweep keeps
// no record of what it already sent: triggering it twice for the same date
// duplicates every email.
package reminders

import (
	"context"
	"time"

	"meal-train-go/internal/domain/couriers"
	"meal-train-go/internal/domain/meals"
	"meal-train-go/internal/domain/pickups"
	"meal-train-go/internal/domain/validation"
	"meal-train-go/internal/notify"
	"meal-train-go/pkg/logger"
)

type Service struct {
	pickups  pickups.Repository
	meals    meals.Repository
	couriers couriers.Repository
	mailer   notify.Mailer
	log      logger.Logger
	now      func() time.Time
}

func NewService(
	pickupRepo pickups.Repository,
	mealRepo meals.Repository,
	courierRepo couriers.Repository,
	mailer notify.Mailer,
	log logger.Logger,
) *Service {
	return &Service{
		pickups:  pickupRepo,
		meals:    mealRepo,
		couriers: courierRepo,
		mailer:   mailer,
		log:      log,
		now:      time.Now,
	}
}

// Stats summarizes one sweep for the caller.
type Stats struct {
	Date                 string
	PickupLocations      int
	RemindersSent        int
	CourierSummariesSent int
}

// SendReminders emails every provider with an active signup for tomorrow's
// pickups, and every courier on those routes a pickup summary. Individual
// send failures are logged and skipped; only storage errors abort the sweep.
func (s *Service) SendReminders(ctx context.Context) (Stats, error) {
	tomorrow := pickups.Today(s.now()).AddDate(0, 0, 1)
	stats := Stats{Date: tomorrow.Format("2006-01-02")}

	locationsDue, err := s.pickups.ListActiveByDate(ctx, tomorrow)
	if err != nil {
		return stats, err
	}
	stats.PickupLocations = len(locationsDue)
	if len(locationsDue) == 0 {
		s.log.Info("reminders: no pickups scheduled", "date", stats.Date)
		return stats, nil
	}

	for _, pickup := range locationsDue {
		dropoffs, err := s.meals.ListActiveByPickup(ctx, pickup.ID)
		if err != nil {
			return stats, err
		}
		if len(dropoffs) == 0 {
			s.log.Info("reminders: no meals for pickup", "location", pickup.Location, "date", stats.Date)
			continue
		}

		matched, err := s.couriers.ListActiveByLocation(ctx, pickup.Location)
		if err != nil {
			return stats, err
		}

		contacts := make([]notify.CourierContact, 0, len(matched))
		for _, courier := range matched {
			contacts = append(contacts, notify.CourierContact{
				Name:  courier.Name,
				Phone: validation.FormatPhone(courier.Phone),
				Email: courier.Email,
			})
		}

		for _, dropoff := range dropoffs {
			html, err := notify.RenderReminder(notify.ReminderData{
				Name:            dropoff.Name,
				Date:            pickup.PickupDate,
				Location:        pickup.Location,
				MealDescription: dropoff.MealDescription,
				Couriers:        contacts,
			})
			if err != nil {
				s.log.InternalError("reminders: render failed", err, "meal_id", dropoff.ID)
				continue
			}
			subject := "Reminder: Meal Drop-off Tomorrow - " + notify.FormatDate(pickup.PickupDate)
			if err := s.mailer.Send(ctx, dropoff.Email, subject, html); err != nil {
				s.log.InternalError("reminders: provider reminder failed", err, "to", dropoff.Email)
				continue
			}
			stats.RemindersSent++
			s.log.Info("reminders: provider reminder sent", "to", dropoff.Email, "location", pickup.Location)
		}

		summaryMeals := make([]notify.SummaryMeal, 0, len(dropoffs))
		for _, dropoff := range dropoffs {
			note := ""
			if dropoff.NoteToCourier != nil {
				note = *dropoff.NoteToCourier
			}
			summaryMeals = append(summaryMeals, notify.SummaryMeal{
				Name:            dropoff.Name,
				Phone:           dropoff.Phone,
				MealDescription: dropoff.MealDescription,
				FreezerFriendly: dropoff.FreezerFriendly,
				CanBringToSalem: dropoff.CanBringToSalem,
				NoteToCourier:   note,
			})
		}

		for _, courier := range matched {
			html, err := notify.RenderCourierSummary(notify.CourierSummaryData{
				Location: pickup.Location,
				Date:     pickup.PickupDate,
				Meals:    summaryMeals,
			})
			if err != nil {
				s.log.InternalError("reminders: summary render failed", err, "location", pickup.Location)
				continue
			}
			subject := "Meal Pickup Summary - " + pickup.Location + " - " + notify.FormatDate(pickup.PickupDate)
			if err := s.mailer.Send(ctx, courier.Email, subject, html); err != nil {
				s.log.InternalError("reminders: courier summary failed", err, "to", courier.Email)
				continue
			}
			stats.CourierSummariesSent++
			s.log.Info("reminders: courier summary sent", "to", courier.Email, "location", pickup.Location)
		}
	}

	return stats, nil
}
