package refresh

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/dynastyhq/gridiron/internal/service"
	"github.com/dynastyhq/gridiron/internal/store"
	"github.com/dynastyhq/gridiron/internal/store/repository"
)

// Refresher periodically recomputes every dynasty's leaderboards so caches
// stay warm and WebSocket clients see fresh boards without a write trigger
type Refresher struct {
	dynastyRepo  *repository.DynastyRepository
	leaderboards *service.LeaderboardService
	interval     time.Duration
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

// NewRefresher creates a new leaderboard refresher
func NewRefresher(db *store.Database, leaderboards *service.LeaderboardService, interval time.Duration) *Refresher {
	return &Refresher{
		dynastyRepo:  repository.NewDynastyRepository(db),
		leaderboards: leaderboards,
		interval:     interval,
	}
}

// Start launches the refresh loop. It runs one pass immediately, then one
// per interval until Stop or context cancellation.
func (r *Refresher) Start(ctx context.Context) {
	if r.interval <= 0 {
		log.Println("Leaderboard refresher disabled (interval <= 0)")
		return
	}

	ctx, r.cancel = context.WithCancel(ctx)
	r.wg.Add(1)

	go func() {
		defer r.wg.Done()

		log.Printf("Leaderboard refresher started (interval: %v)", r.interval)
		r.runPass(ctx)

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Println("Leaderboard refresher stopped")
				return
			case <-ticker.C:
				r.runPass(ctx)
			}
		}
	}()
}

// Stop cancels the loop and waits for the in-flight pass to finish
func (r *Refresher) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

func (r *Refresher) runPass(ctx context.Context) {
	dynasties, err := r.dynastyRepo.GetAll(ctx)
	if err != nil {
		log.Printf("refresh pass: listing dynasties failed: %v", err)
		return
	}

	for _, d := range dynasties {
		if ctx.Err() != nil {
			return
		}
		if err := r.leaderboards.Recompute(ctx, d.DynastyID); err != nil {
			log.Printf("refresh pass: recompute %s failed: %v", d.DynastyID, err)
		}
	}
}
