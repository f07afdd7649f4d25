package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"meal-train-go/internal/config"
	"meal-train-go/internal/transport/httpserver/handler"
	authmw "meal-train-go/internal/transport/httpserver/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.CORSOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Common.Health)

		r.Get("/pickup-locations", handlers.Public.ListPickupLocations)

		r.Get("/meals", handlers.Public.ListMeals)
		r.Post("/meals", handlers.Public.CreateMeal)

		r.Get("/cancel/{token}", handlers.Public.GetCancellation)
		r.Post("/cancel/{token}", handlers.Public.PostCancellation)

		r.Get("/cron/send-reminders", handlers.Public.SendReminders)

		r.Post("/seed-locations", handlers.Public.SeedPickupLocations)
		r.Get("/seed-locations", handlers.Public.GetSeedStatus)
		r.Delete("/seed-locations", handlers.Public.ClearUnreferencedPickupLocations)

		r.Post("/admin/login", handlers.Admin.Login)
		r.Post("/admin/logout", handlers.Admin.Logout)
		r.Get("/admin/session", handlers.Admin.Session)

		r.Group(func(r chi.Router) {
			r.Use(handlers.Admin.Auth.Middleware)

			r.Get("/admin/meals", handlers.Admin.ListMeals)
			r.Delete("/admin/meals/{id}", handlers.Admin.DeleteMeal)

			r.Get("/admin/pickup-locations", handlers.Admin.ListPickups)
			r.Post("/admin/pickup-locations", handlers.Admin.CreatePickup)
			r.Put("/admin/pickup-locations/{id}", handlers.Admin.UpdatePickup)
			r.Delete("/admin/pickup-locations/{id}", handlers.Admin.DeletePickup)

			r.Get("/admin/couriers", handlers.Admin.ListCouriers)
			r.Post("/admin/couriers", handlers.Admin.CreateCourier)
			r.Put("/admin/couriers/{id}", handlers.Admin.UpdateCourier)
			r.Delete("/admin/couriers/{id}", handlers.Admin.DeleteCourier)
		})
	})

	return r
}
