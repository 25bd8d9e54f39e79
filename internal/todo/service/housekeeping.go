package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/sellora/todone/internal/todo/store"
)

// HousekeepingService periodically removes expired sessions. Sessions are
// normally cleaned up lazily on resolve; the sweep catches the ones whose
// owners never came back.
type HousekeepingService struct {
	store    store.Store
	logger   *slog.Logger
	interval time.Duration

	stop chan struct{}
	done chan struct{}
}

func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &HousekeepingService{
		store:    st,
		logger:   logger,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the sweep loop. Call Stop to terminate it.
func (s *HousekeepingService) Start() {
	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop terminates the sweep loop and waits for it to exit.
func (s *HousekeepingService) Stop() {
	close(s.stop)
	<-s.done
}

func (s *HousekeepingService) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.store.Sessions().DeleteExpiredSessions(ctx, time.Now()); err != nil {
		s.logger.Error("session sweep failed", "error", err)
		return
	}
	s.logger.Debug("session sweep completed")
}
