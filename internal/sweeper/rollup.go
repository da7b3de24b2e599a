package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/launchos/curve-engine/internal/adapter"
	"github.com/launchos/curve-engine/internal/logger"
	"github.com/launchos/curve-engine/internal/store"
	"github.com/launchos/curve-engine/internal/store/schema"
)

// sweepJobName keys the rollup sweeper's watermark in the cursor store
const sweepJobName = "volume24h"

// RollupConfig holds configuration for the stats rollup sweeper
type RollupConfig struct {
	Interval        time.Duration // Time to sleep between sweep cycles
	BatchSize       int           // Curves to refresh per batch
	WorkerPoolSize  int           // Concurrent workers
	WorkerQueueSize int
}

// rollupSweeper implements the Sweeper interface. It periodically recomputes
// the denormalized 24h volume and holder count columns on active curves so
// list endpoints never aggregate the event log on the hot path.
type rollupSweeper struct {
	config    *RollupConfig
	store     store.Store
	cursors   store.CursorStore
	clock     adapter.Clock
	pool      pond.Pool
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewRollupSweeper creates a new stats rollup sweeper
func NewRollupSweeper(config *RollupConfig, st store.Store, cursors store.CursorStore, clock adapter.Clock) Sweeper {
	return &rollupSweeper{
		config:    config,
		store:     st,
		cursors:   cursors,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *rollupSweeper) Name() string {
	return "rollup-sweeper"
}

// Start begins the sweeper's main loop
func (s *rollupSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting rollup sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	s.pool = s.newPool(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Rollup sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			s.cleanup()
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Rollup sweeper stop requested")
			s.cleanup()
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}

			if !s.sleep(ctx, s.config.Interval) {
				s.cleanup()
				return nil
			}
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *rollupSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping rollup sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Rollup sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Rollup sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

func (s *rollupSweeper) newPool(ctx context.Context) pond.Pool {
	return pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.WorkerQueueSize),
		pond.WithContext(ctx),
	)
}

// cleanup stops the worker pool and waits for tasks to complete
func (s *rollupSweeper) cleanup() {
	if s.pool != nil {
		s.pool.StopAndWait()
	}
}

// runSweepCycle refreshes the rollups of every active curve, one batch at a
// time
func (s *rollupSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()
	since := startTime.Add(-24 * time.Hour)

	var refreshed, failed atomic.Int32

	active := schema.CurveStateActive
	offset := 0
	for {
		curves, err := s.store.ListCurves(ctx, &active, s.config.BatchSize, offset)
		if err != nil {
			return fmt.Errorf("failed to list curves: %w", err)
		}
		if len(curves) == 0 {
			break
		}

		for _, curve := range curves {
			s.pool.Submit(func() {
				if err := s.refreshCurve(ctx, curve.ID, since); err != nil {
					failed.Add(1)
					logger.ErrorCtx(ctx, err, zap.String("curve_id", curve.ID))
					return
				}
				refreshed.Add(1)
			})
		}

		if len(curves) < s.config.BatchSize {
			break
		}
		offset += len(curves)
	}

	// Wait for in-flight refreshes, then recreate the pool for the next cycle
	s.pool.StopAndWait()
	s.pool = s.newPool(ctx)

	// The watermark records when the last full cycle finished so operators can
	// tell a stalled sweeper from an idle one
	if err := s.cursors.SetSweepWatermark(ctx, sweepJobName, startTime); err != nil {
		logger.WarnCtx(ctx, "Failed to record sweep watermark", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Rollup sweep cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int32("refreshed", refreshed.Load()),
		zap.Int32("failed", failed.Load()),
	)

	return nil
}

// refreshCurve recomputes one curve's 24h volume and distinct holder count
func (s *rollupSweeper) refreshCurve(ctx context.Context, curveID string, since time.Time) error {
	volume, err := s.store.SumTradeVolumeSince(ctx, curveID, since)
	if err != nil {
		return fmt.Errorf("failed to sum trade volume: %w", err)
	}

	holders, err := s.store.CountDistinctHolders(ctx, curveID)
	if err != nil {
		return fmt.Errorf("failed to count holders: %w", err)
	}

	if err := s.store.UpdateCurveRollups(ctx, curveID, volume, holders); err != nil {
		return fmt.Errorf("failed to update rollups: %w", err)
	}

	return nil
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request. Returns false if interrupted.
func (s *rollupSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
