package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/pkg/schoolapi"
)

// Refresher reloads cached reference data.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// ReferenceWarmWorker periodically refreshes the cached reference lists so
// opening an editing session rarely waits on the backend.
type ReferenceWarmWorker struct {
	refs     Refresher
	token    string
	interval time.Duration
}

// NewReferenceWarmWorker constructs a ReferenceWarmWorker. token is the
// backend service token sent with every refresh.
func NewReferenceWarmWorker(refs Refresher, token string, interval time.Duration) *ReferenceWarmWorker {
	return &ReferenceWarmWorker{
		refs:     refs,
		token:    token,
		interval: interval,
	}
}

// Start begins the periodic refresh loop and listens for context cancellation.
// It returns immediately when the worker is disabled.
func (w *ReferenceWarmWorker) Start(ctx context.Context) {
	if w.interval <= 0 || w.token == "" {
		log.Info().Msg("Reference warm worker disabled")
		return
	}
	log.Info().Dur("interval", w.interval).Msg("Starting reference warm worker")

	// Run immediately on start
	w.run(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Reference warm worker stopped")
			return
		}
	}
}

func (w *ReferenceWarmWorker) run(ctx context.Context) {
	start := time.Now()
	if err := w.refs.Refresh(schoolapi.WithToken(ctx, w.token)); err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Error().Err(err).Msg("Failed to refresh reference data")
		return
	}
	log.Info().Dur("duration", time.Since(start)).Msg("Reference data refreshed")
}
