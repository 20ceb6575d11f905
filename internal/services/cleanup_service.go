package services

import (
	"log"
	"time"

	"github.com/aidevelo/aidevelo-ai-be/internal/repositories"
	"github.com/robfig/cron/v3"
)

// CleanupService is the optional idle-session sweep. Sessions are never
// auto-expired unless a cron spec is configured; the default deployment
// leaves termination caller-driven.
type CleanupService struct {
	sessions    repositories.SessionRepo
	cron        *cron.Cron
	idleMinutes int
}

func NewCleanupService(sessions repositories.SessionRepo, idleMinutes int) *CleanupService {
	return &CleanupService{
		sessions:    sessions,
		cron:        cron.New(),
		idleMinutes: idleMinutes,
	}
}

// Start schedules the sweep. An empty spec disables it entirely.
func (s *CleanupService) Start(spec string) error {
	if spec == "" {
		log.Println("ℹ️ Session sweep disabled (SESSION_SWEEP_CRON not set)")
		return nil
	}

	if _, err := s.cron.AddFunc(spec, s.sweep); err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("⏰ Session sweep scheduled: %s (idle > %dm)", spec, s.idleMinutes)
	return nil
}

func (s *CleanupService) Stop() {
	s.cron.Stop()
}

func (s *CleanupService) sweep() {
	cutoff := time.Now().Add(-time.Duration(s.idleMinutes) * time.Minute)
	ended, err := s.sessions.EndIdleBefore(cutoff)
	if err != nil {
		log.Printf("❌ Session sweep failed: %v", err)
		return
	}
	if ended > 0 {
		log.Printf("🧹 Session sweep ended %d idle sessions", ended)
	}
}
