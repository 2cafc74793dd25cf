package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/todolist/pkg/sessionx"
)

// HousekeepingService periodically drops idle-expired session records so the
// session store does not grow without bound.
type HousekeepingService struct {
	Sessions sessionx.Store
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping worker. A non-positive
// interval defaults to 10 minutes.
func NewHousekeepingService(sessions sessionx.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	return &HousekeepingService{
		Sessions: sessions,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until any in-progress sweep has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Sweep removes expired sessions once and reports how many went.
func (s *HousekeepingService) Sweep(ctx context.Context) int {
	n, err := s.Sessions.DeleteExpired(ctx)
	if err != nil {
		s.Logger.Error("failed to delete expired sessions", "error", err)
		return 0
	}
	if n > 0 {
		s.Logger.Info("deleted expired sessions", "count", n)
	} else {
		s.Logger.Debug("no expired sessions")
	}
	return n
}
