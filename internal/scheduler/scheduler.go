package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"meal-train-go/internal/domain/reminders"
	"meal-train-go/pkg/logger"
)

// Scheduler runs the reminder sweep in-process on a cron spec, for
// deployments without an external cron trigger.
type Scheduler struct {
	engine    *cron.Cron
	reminders *reminders.Service
	spec      string
	log       logger.Logger
}

func New(remindersService *reminders.Service, spec string, log logger.Logger) *Scheduler {
	return &Scheduler{
		engine:    cron.New(),
		reminders: remindersService,
		spec:      spec,
		log:       log,
	}
}

// Start registers the sweep job and starts the cron engine. An empty spec
// means in-process scheduling is disabled.
func (s *Scheduler) Start() error {
	if s.spec == "" {
		s.log.Info("scheduler: no cron spec configured, in-process reminders disabled")
		return nil
	}

	_, err := s.engine.AddFunc(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		stats, err := s.reminders.SendReminders(ctx)
		if err != nil {
			s.log.InternalError("scheduler: reminder sweep failed", err)
			return
		}
		s.log.Info("scheduler: reminder sweep finished",
			"date", stats.Date,
			"pickup_locations", stats.PickupLocations,
			"reminders_sent", stats.RemindersSent,
			"courier_summaries_sent", stats.CourierSummariesSent,
		)
	})
	if err != nil {
		return err
	}

	s.engine.Start()
	s.log.Info("scheduler: started", "spec", s.spec)
	return nil
}

// Stop halts scheduling and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.engine.Stop()
	<-ctx.Done()
}
