package workflows

import (
	"fmt"

	"go.temporal.io/sdk/workflow"
)

// LaunchWorkflowID builds the deterministic workflow ID for a curve launch.
// Combined with a reject-duplicate reuse policy it guarantees at most one
// launch orchestration per curve at a time.
func LaunchWorkflowID(curveID string) string {
	return fmt.Sprintf("launch-curve-%s", curveID)
}

// WorkerCore defines the interface for launch orchestration workflows
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockCoreWorker
type WorkerCore interface {
	// LaunchCurve drives a curve launch end to end: eligibility, freeze,
	// snapshot, mint, liquidity, airdrop, finalize, with compensation on
	// failure
	LaunchCurve(ctx workflow.Context, curveID string) error
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor) WorkerCore {
	return &workerCore{executor: executor}
}
