package sweeper

import (
	"context"
)

// Sweeper is a long-running background job that keeps derived curve data
// (rollups, denormalized counters) consistent with the event log
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs the sweep loop. Blocks until the context is canceled or
	// Stop is called.
	Start(ctx context.Context) error

	// Stop requests a graceful stop and waits for in-flight work to finish
	Stop(ctx context.Context) error

	// Name identifies the sweeper in logs
	Name() string
}
