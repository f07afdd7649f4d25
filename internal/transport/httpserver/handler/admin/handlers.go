package admin

import (
	couriersdomain "meal-train-go/internal/domain/couriers"
	mealsdomain "meal-train-go/internal/domain/meals"
	pickupsdomain "meal-train-go/internal/domain/pickups"
	"meal-train-go/internal/transport/httpserver/middleware"
	"meal-train-go/pkg/logger"
)

type Handlers struct {
	Meals    *mealsdomain.Service
	Pickups  *pickupsdomain.Service
	Couriers *couriersdomain.Service
	Auth     *middleware.AdminAuth
	log      logger.Logger
}

func New(meals *mealsdomain.Service, pickups *pickupsdomain.Service, couriers *couriersdomain.Service, auth *middleware.AdminAuth, log logger.Logger) *Handlers {
	return &Handlers{
		Meals:    meals,
		Pickups:  pickups,
		Couriers: couriers,
		Auth:     auth,
		log:      log,
	}
}
