package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"orgsub-backend/dal"
	"orgsub-backend/models"
	"orgsub-backend/utils/logger"

	"github.com/robfig/cron"
)

// Service runs the subscription expiry sweep on a cron schedule. Each
// sweep reports organizations whose active window has lapsed; when
// auto-deactivate is enabled it also clears the active flag through a
// normal load-mutate-save cycle, so a racing administrator action turns
// into a conflict retried on the next tick rather than a lost update.
type Service struct {
	store  dal.DatasetStoreInterface
	config *models.Config
	logger logger.Logger

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

// NewService creates a new expiry sweep service sharing the given store
func NewService(ctx context.Context, cfg *models.Config, log logger.Logger, store dal.DatasetStoreInterface) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("dataset store is required")
	}
	return &Service{
		store:  store,
		config: cfg,
		logger: log,
	}, nil
}

// StartInBackground schedules the sweep and returns immediately.
func (s *Service) StartInBackground() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("expiry sweep is already running")
	}

	c := cron.New()
	if err := c.AddFunc(s.config.ExpirySweepSchedule, func() {
		if _, err := s.SweepOnce(context.Background()); err != nil {
			s.logger.Errorf("Expiry sweep failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule expiry sweep: %w", err)
	}

	c.Start()
	s.cron = c
	s.running = true
	s.logger.Infof("Expiry sweep scheduled (%s, auto-deactivate=%t)", s.config.ExpirySweepSchedule, s.config.ExpiryAutoDeactivate)
	return nil
}

// Stop halts the cron scheduler. Running jobs are not interrupted.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		s.cron.Stop()
		s.cron = nil
	}
	s.running = false
	s.logger.Info("Expiry sweep stopped")
}

// IsRunning reports whether the scheduler is active.
func (s *Service) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// SweepOnce performs a single sweep and returns the number of lapsed
// subscriptions found.
func (s *Service) SweepOnce(ctx context.Context) (int, error) {
	ds, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	expired := []*models.Organization{}
	for _, org := range ds.Organizations {
		if org.SubscriptionExpired(now) {
			expired = append(expired, org)
		}
	}

	if len(expired) == 0 {
		s.logger.Debug("Expiry sweep: no lapsed subscriptions")
		return 0, nil
	}

	for _, org := range expired {
		s.logger.Warnf("Subscription for organization %s lapsed at %s",
			org.OrgCode, org.Subscription.EndDate.Format(time.RFC3339))
	}

	if !s.config.ExpiryAutoDeactivate {
		return len(expired), nil
	}

	for _, org := range expired {
		org.Subscription.Active = false
	}

	if err := s.store.Save(ctx, ds); err != nil {
		// A concurrent write wins; the next tick picks these up again.
		if models.IsType(err, models.ErrorTypeConflict) {
			s.logger.Warnf("Expiry sweep lost a save race, will retry on next tick: %v", err)
			return len(expired), nil
		}
		return len(expired), err
	}

	s.logger.Infof("Expiry sweep deactivated %d lapsed subscriptions", len(expired))
	return len(expired), nil
}
