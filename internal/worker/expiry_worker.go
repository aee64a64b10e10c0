package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kazi-link/job-portal/internal/service"
)

// ExpiryWorker periodically marks past-deadline postings as expired.
type ExpiryWorker struct {
	postings *service.PostingService
	interval time.Duration
	logger   *zap.Logger
}

// NewExpiryWorker constructs the worker.
func NewExpiryWorker(postings *service.PostingService, interval time.Duration, logger *zap.Logger) *ExpiryWorker {
	return &ExpiryWorker{
		postings: postings,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once immediately and then on each tick until ctx is cancelled.
func (w *ExpiryWorker) Run(ctx context.Context) {
	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("posting expiry worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *ExpiryWorker) sweep(ctx context.Context) {
	count, err := w.postings.ExpireDuePostings(ctx, time.Now())
	if err != nil {
		w.logger.Error("posting expiry sweep failed", zap.Error(err))
		return
	}
	if count > 0 {
		w.logger.Info("postings expired", zap.Int("count", count))
	}
}
