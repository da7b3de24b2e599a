package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/launchos/curve-engine/internal/domain"
	"github.com/launchos/curve-engine/internal/logger"
)

// LaunchCurve drives a curve launch end to end. Each step persists a cursor
// before the workflow moves on, so a replayed or retried run resumes at the
// first incomplete step instead of re-executing external calls. Any step
// failure after the attempt exists triggers compensation: the curve thaws back
// to active and the attempt records the failing step.
func (w *workerCore) LaunchCurve(ctx workflow.Context, curveID string) error {
	info := workflow.GetInfo(ctx)

	logger.InfoWf(ctx, "Starting curve launch",
		zap.String("curveID", curveID),
	)

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    5 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    5,
			NonRetryableErrorTypes: []string{
				ErrTypeNotEligible,
				ErrTypeLaunchInProgress,
			},
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	// Eligibility is read-only, a failure here leaves nothing to compensate
	if err := workflow.ExecuteActivity(ctx, w.executor.CheckLaunchEligibility, curveID).Get(ctx, nil); err != nil {
		logger.ErrorWf(ctx, err, zap.String("curveID", curveID))
		return err
	}

	var state LaunchAttemptState
	err := workflow.ExecuteActivity(ctx, w.executor.BeginLaunchAttempt, curveID, info.WorkflowExecution.ID).
		Get(ctx, &state)
	if err != nil {
		logger.ErrorWf(ctx, err, zap.String("curveID", curveID))
		return err
	}

	cursor := state.StepCursor
	if cursor != domain.LaunchStepNone {
		logger.InfoWf(ctx, "Resuming launch attempt",
			zap.String("curveID", curveID),
			zap.String("attemptID", state.AttemptID),
			zap.String("cursor", string(cursor)),
		)
	}

	steps := []struct {
		step domain.LaunchStep
		run  func() error
	}{
		{domain.LaunchStepFreeze, func() error {
			return workflow.ExecuteActivity(ctx, w.executor.FreezeCurve, curveID, state.AttemptID).Get(ctx, nil)
		}},
		{domain.LaunchStepSnapshot, func() error {
			var summary SnapshotSummary
			return workflow.ExecuteActivity(ctx, w.executor.TakeSnapshot, curveID, state.AttemptID).Get(ctx, &summary)
		}},
		{domain.LaunchStepMint, func() error {
			var tokenMint string
			return workflow.ExecuteActivity(ctx, w.executor.MintToken, curveID, state.AttemptID).Get(ctx, &tokenMint)
		}},
		{domain.LaunchStepSeedLiquidity, func() error {
			var liquidityRef string
			return workflow.ExecuteActivity(ctx, w.executor.SeedLiquidity, curveID, state.AttemptID).Get(ctx, &liquidityRef)
		}},
		{domain.LaunchStepAirdrop, func() error {
			var distributionRef string
			return workflow.ExecuteActivity(ctx, w.executor.AirdropTokens, curveID, state.AttemptID).Get(ctx, &distributionRef)
		}},
		{domain.LaunchStepFinalize, func() error {
			return workflow.ExecuteActivity(ctx, w.executor.FinalizeLaunch, curveID, state.AttemptID).Get(ctx, nil)
		}},
	}

	for _, s := range steps {
		if s.step.Completed(cursor) {
			continue
		}
		if err := s.run(); err != nil {
			logger.ErrorWf(ctx, err,
				zap.String("curveID", curveID),
				zap.String("attemptID", state.AttemptID),
				zap.String("step", string(s.step)),
			)
			w.compensate(ctx, curveID, state.AttemptID, s.step, err)
			return err
		}
	}

	logger.InfoWf(ctx, "Curve launched",
		zap.String("curveID", curveID),
		zap.String("attemptID", state.AttemptID),
	)
	return nil
}

// compensate rolls the curve back to active and closes the attempt as failed.
// It runs on a disconnected context so cancellation of the parent workflow
// cannot leave the curve stuck frozen. Compensation after mint is partial:
// external artifacts like the minted token may persist.
func (w *workerCore) compensate(ctx workflow.Context, curveID, attemptID string, step domain.LaunchStep, cause error) {
	ctx, cancel := workflow.NewDisconnectedContext(ctx)
	defer cancel()

	err := workflow.ExecuteActivity(ctx, w.executor.CompensateLaunch,
		curveID, attemptID, string(step), cause.Error()).Get(ctx, nil)
	if err != nil {
		logger.ErrorWf(ctx, err,
			zap.String("curveID", curveID),
			zap.String("attemptID", attemptID),
		)
	}
}
