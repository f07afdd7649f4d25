package public

import (
	mealsdomain "meal-train-go/internal/domain/meals"
	pickupsdomain "meal-train-go/internal/domain/pickups"
	remindersdomain "meal-train-go/internal/domain/reminders"
	"meal-train-go/pkg/logger"
)

type Handlers struct {
	Meals     *mealsdomain.Service
	Pickups   *pickupsdomain.Service
	Reminders *remindersdomain.Service
	log       logger.Logger
	// cronSecret gates the reminder endpoint; empty means ungated.
	cronSecret string
}

func New(meals *mealsdomain.Service, pickups *pickupsdomain.Service, reminders *remindersdomain.Service, cronSecret string, log logger.Logger) *Handlers {
	return &Handlers{
		Meals:      meals,
		Pickups:    pickups,
		Reminders:  reminders,
		log:        log,
		cronSecret: cronSecret,
	}
}
