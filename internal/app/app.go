package app

import (
	"net/http"

	"gorm.io/gorm"

	"meal-train-go/internal/config"
	"meal-train-go/internal/db"
	couriersdomain "meal-train-go/internal/domain/couriers"
	mealsdomain "meal-train-go/internal/domain/meals"
	pickupsdomain "meal-train-go/internal/domain/pickups"
	remindersdomain "meal-train-go/internal/domain/reminders"
	"meal-train-go/internal/notify"
	couriersrepo "meal-train-go/internal/repository/postgres/couriers"
	mealsrepo "meal-train-go/internal/repository/postgres/meals"
	pickupsrepo "meal-train-go/internal/repository/postgres/pickups"
	"meal-train-go/internal/scheduler"
	"meal-train-go/internal/transport/httpserver"
	"meal-train-go/internal/transport/httpserver/handler"
	adminhandler "meal-train-go/internal/transport/httpserver/handler/admin"
	commonhandler "meal-train-go/internal/transport/httpserver/handler/common"
	publichandler "meal-train-go/internal/transport/httpserver/handler/public"
	authmw "meal-train-go/internal/transport/httpserver/middleware"
	"meal-train-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	db         *gorm.DB
	log        logger.Logger
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: running migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	pickupRepo := pickupsrepo.NewPostgres(dbConn)
	mealRepo := mealsrepo.NewPostgres(dbConn)
	courierRepo := couriersrepo.NewPostgres(dbConn)

	mailer := notify.NewSMTPMailer(cfg.SMTP)

	pickupService := pickupsdomain.NewService(pickupRepo)
	courierService := couriersdomain.NewService(courierRepo)
	mealService := mealsdomain.NewService(mealRepo, pickupRepo, courierRepo, mailer, cfg.BaseURL, log)
	reminderService := remindersdomain.NewService(pickupRepo, mealRepo, courierRepo, mailer, log)

	adminAuth := authmw.NewAdminAuth(cfg.Admin.Password, cfg.Env)

	handlers := handler.New(
		commonhandler.New(log),
		publichandler.New(mealService, pickupService, reminderService, cfg.CronSecret, log),
		adminhandler.New(mealService, pickupService, courierService, adminAuth, log),
	)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	sched := scheduler.New(reminderService, cfg.ReminderCron, log)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		scheduler:  sched,
		db:         dbConn,
		log:        log,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) StartScheduler() error {
	return a.scheduler.Start()
}

func (a *App) Close() error {
	a.scheduler.Stop()

	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
