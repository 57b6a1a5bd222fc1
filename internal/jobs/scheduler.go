package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// PromoSweeper deactivates promo codes whose expiry date has passed.
type PromoSweeper interface {
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type Scheduler struct {
	promos PromoSweeper
	cron   *cron.Cron
}

func NewScheduler(promos PromoSweeper) *Scheduler {
	return &Scheduler{promos: promos}
}

// Start initializes cron tasks
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	//  (12:00 AM)
	_, err := c.AddFunc("0 0 0 * * *", func() {
		s.runNightlyJobs()
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create cron job")
		return
	}

	log.Info().Msg("cron scheduler started (running nightly at 12:00AM)")
	c.Start()
	s.cron = c
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

func (s *Scheduler) runNightlyJobs() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := s.promos.DeactivateExpired(ctx, time.Now().UTC())
	if err != nil {
		log.Error().Err(err).Msg("promo expiry sweep failed")
		return
	}
	log.Info().Int64("deactivated", n).Msg("promo expiry sweep completed")
}
