package services

import (
	"context"
	"log"
	"time"

	"staffhub/internal/adapters/persistence/repositories"
	"staffhub/internal/pkg/sessioncache"
	"staffhub/internal/pkg/token"

	"github.com/robfig/cron/v3"
)

// CronService runs periodic housekeeping: purging expired session cache
// entries and reset records older than the token validity window.
type CronService struct {
	cron      *cron.Cron
	sessions  *sessioncache.Cache
	resetRepo repositories.ResetTokenRepository
}

// NewCronService creates a new cron service
func NewCronService(sessions *sessioncache.Cache, resetRepo repositories.ResetTokenRepository) *CronService {
	return &CronService{
		cron:      cron.New(),
		sessions:  sessions,
		resetRepo: resetRepo,
	}
}

// Start schedules the daily cleanup at 03:00
func (s *CronService) Start() {
	s.cron.AddFunc("0 3 * * *", s.cleanup)
	s.cron.Start()
	log.Println("✅ Cron service started (daily cleanup at 03:00)")
}

// Stop stops the cron scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
}

func (s *CronService) cleanup() {
	purged := s.sessions.PurgeExpired()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stale, err := s.resetRepo.DeleteStale(ctx, time.Now().Add(-token.Validity))
	if err != nil {
		log.Printf("⚠️ Cleanup: failed to delete stale reset tokens: %v", err)
	}

	log.Printf("🧹 Cleanup: purged %d sessions, %d stale reset tokens", purged, stale)
}
