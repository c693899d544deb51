package worker

import (
	"context"
	"errors"
	"time"

	"github.com/banarasikart/bsk-api/internal/config"
	"github.com/banarasikart/bsk-api/internal/logger"
	"github.com/banarasikart/bsk-api/internal/queue"

	"github.com/hibiken/asynq"
)

const cartPurgeInterval = time.Hour

// Service runs the asynq server plus the periodic cart purge loop.
type Service struct {
	name           string
	server         *asynq.Server
	mux            *asynq.ServeMux
	consumer       *Consumer
	staleAfterDays int
}

// NewService creates the worker service.
func NewService(cfg *config.QueueConfig, cartCfg *config.CartConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)

	staleAfterDays := 30
	if cartCfg != nil && cartCfg.StaleAfterDays > 0 {
		staleAfterDays = cartCfg.StaleAfterDays
	}
	return &Service{
		name:           "worker",
		server:         server,
		mux:            mux,
		consumer:       consumer,
		staleAfterDays: staleAfterDays,
	}, nil
}

// Name returns the service name.
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start runs the task server and the purge loop until the context ends.
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	go s.runCartPurgeLoop(ctx)
	return s.server.Run(s.mux)
}

// Stop shuts the task server down.
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

// runCartPurgeLoop drops cart entries untouched for the retention period.
func (s *Service) runCartPurgeLoop(ctx context.Context) {
	if s == nil || s.consumer == nil || s.consumer.CartRepo == nil {
		return
	}
	runOnce := func() {
		cutoff := time.Now().AddDate(0, 0, -s.staleAfterDays)
		purged, err := s.consumer.CartRepo.DeleteStale(cutoff)
		if err != nil {
			logger.Warnw("worker_cart_purge_failed", "error", err)
			return
		}
		if purged > 0 {
			logger.Infow("worker_cart_purged", "entries", purged, "cutoff", cutoff)
		}
	}
	runOnce()

	ticker := time.NewTicker(cartPurgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
