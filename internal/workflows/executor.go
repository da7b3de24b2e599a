package workflows

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/gowebpki/jcs"
	"github.com/oklog/ulid/v2"
	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/launchos/curve-engine/internal/adapter"
	"github.com/launchos/curve-engine/internal/domain"
	"github.com/launchos/curve-engine/internal/launchpad"
	"github.com/launchos/curve-engine/internal/ledger"
	"github.com/launchos/curve-engine/internal/logger"
	"github.com/launchos/curve-engine/internal/messaging"
	"github.com/launchos/curve-engine/internal/pricing"
	"github.com/launchos/curve-engine/internal/store"
	"github.com/launchos/curve-engine/internal/store/schema"
)

// Application error types surfaced to the workflow as non-retryable
const (
	ErrTypeNotEligible      = "CurveNotEligible"
	ErrTypeLaunchInProgress = "LaunchInProgress"
)

// LaunchAttemptState is what the workflow needs to drive or resume an attempt
type LaunchAttemptState struct {
	AttemptID  string            `json:"attempt_id"`
	StepCursor domain.LaunchStep `json:"step_cursor"`
}

// SnapshotSummary describes a taken snapshot
type SnapshotSummary struct {
	SnapshotID string `json:"snapshot_id"`
	Holders    int    `json:"holders"`
	Checksum   string `json:"checksum"`
}

// Executor defines the interface for executing launch activities
//
//go:generate mockgen -source=executor.go -destination=mocks/executor_core.go -package=mocks -mock_names=Executor=MockCoreExecutor
type Executor interface {
	// CheckLaunchEligibility verifies the launch thresholds. Failing thresholds
	// are a terminal outcome, not a transient fault, so the error is
	// non-retryable.
	CheckLaunchEligibility(ctx context.Context, curveID string) error

	// BeginLaunchAttempt creates the attempt row, or picks up the running
	// attempt owned by the same workflow so a replay resumes at the cursor
	BeginLaunchAttempt(ctx context.Context, curveID, workflowID string) (*LaunchAttemptState, error)

	// FreezeCurve suspends trading for the launch
	FreezeCurve(ctx context.Context, curveID, attemptID string) error

	// TakeSnapshot captures the frozen holder table, idempotent per attempt
	TakeSnapshot(ctx context.Context, curveID, attemptID string) (*SnapshotSummary, error)

	// MintToken mints the curve token on the launchpad
	MintToken(ctx context.Context, curveID, attemptID string) (string, error)

	// SeedLiquidity opens the pool funded by the full curve reserve
	SeedLiquidity(ctx context.Context, curveID, attemptID string) (string, error)

	// AirdropTokens distributes minted tokens pro rata to snapshot holders
	AirdropTokens(ctx context.Context, curveID, attemptID string) (string, error)

	// FinalizeLaunch marks the curve launched and the attempt succeeded
	FinalizeLaunch(ctx context.Context, curveID, attemptID string) error

	// CompensateLaunch rolls a failed attempt back: the curve returns to
	// active and the attempt records the failing step
	CompensateLaunch(ctx context.Context, curveID, attemptID, failedStep, errorMessage string) error
}

// executor is the concrete implementation of Executor
type executor struct {
	store     store.Store
	ledger    *ledger.Ledger
	launchpad launchpad.Client
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewExecutor creates a new executor instance
func NewExecutor(st store.Store, ldg *ledger.Ledger, lp launchpad.Client, publisher messaging.Publisher, clock adapter.Clock) Executor {
	return &executor{
		store:     st,
		ledger:    ldg,
		launchpad: lp,
		publisher: publisher,
		clock:     clock,
	}
}

func (e *executor) CheckLaunchEligibility(ctx context.Context, curveID string) error {
	err := e.ledger.CheckLaunchEligibility(ctx, curveID)

	var thresholdErr *domain.ThresholdError
	if errors.As(err, &thresholdErr) {
		return temporal.NewNonRetryableApplicationError(thresholdErr.Error(), ErrTypeNotEligible, err)
	}
	if errors.Is(err, domain.ErrCurveNotFound) {
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeNotEligible, err)
	}
	return err
}

func (e *executor) BeginLaunchAttempt(ctx context.Context, curveID, workflowID string) (*LaunchAttemptState, error) {
	running, err := e.store.GetRunningLaunchAttempt(ctx, curveID)
	if err != nil {
		return nil, err
	}
	if running != nil {
		if running.WorkflowID != workflowID {
			return nil, temporal.NewNonRetryableApplicationError(
				fmt.Sprintf("curve %s has a running attempt owned by workflow %s", curveID, running.WorkflowID),
				ErrTypeLaunchInProgress,
				domain.ErrLaunchInProgress)
		}
		// Same workflow, resume from the persisted cursor
		return &LaunchAttemptState{
			AttemptID:  running.ID,
			StepCursor: domain.LaunchStep(running.StepCursor),
		}, nil
	}

	attempt := &schema.LaunchAttempt{
		ID:             uuid.NewString(),
		CurveID:        curveID,
		IdempotencyKey: uuid.NewString(),
		WorkflowID:     workflowID,
		Status:         schema.LaunchAttemptRunning,
	}
	if err := e.store.CreateLaunchAttempt(ctx, attempt); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "launch attempt created",
		zap.String("curve_id", curveID),
		zap.String("attempt_id", attempt.ID))

	return &LaunchAttemptState{AttemptID: attempt.ID}, nil
}

func (e *executor) FreezeCurve(ctx context.Context, curveID, attemptID string) error {
	// Freeze is a no-op on an already frozen curve, so a prior run that
	// crashed between the transition and the cursor write replays cleanly
	if _, err := e.ledger.Freeze(ctx, curveID); err != nil {
		return err
	}
	return e.store.AdvanceLaunchCursor(ctx, attemptID, domain.LaunchStepFreeze)
}

func (e *executor) TakeSnapshot(ctx context.Context, curveID, attemptID string) (*SnapshotSummary, error) {
	if existing, err := e.store.GetSnapshotByAttemptID(ctx, attemptID); err != nil {
		return nil, err
	} else if existing != nil {
		return &SnapshotSummary{
			SnapshotID: existing.ID,
			Checksum:   existing.Checksum,
		}, nil
	}

	curve, err := e.ledger.GetCurve(ctx, curveID)
	if err != nil {
		return nil, err
	}
	if curve.State != schema.CurveStateFrozen {
		return nil, domain.ErrCurveNotFrozen
	}

	holders, err := e.store.ListHolders(ctx, curveID)
	if err != nil {
		return nil, err
	}

	entries := make([]schema.SnapshotHolder, 0, len(holders))
	for _, h := range holders {
		entries = append(entries, schema.SnapshotHolder{
			Wallet: h.Wallet,
			Keys:   h.Keys,
			PctBps: h.Keys * domain.BPS_DENOMINATOR / curve.SupplyKeys,
		})
	}

	holdersJSON, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot holders: %w", err)
	}
	checksum, err := snapshotChecksum(holdersJSON)
	if err != nil {
		return nil, err
	}

	snapshot := &schema.CurveSnapshot{
		ID:              uuid.NewString(),
		CurveID:         curveID,
		AttemptID:       attemptID,
		SupplyKeys:      curve.SupplyKeys,
		ReserveLamports: curve.ReserveLamports,
		Holders:         datatypes.JSON(holdersJSON),
		Checksum:        checksum,
		CreatedAt:       e.clock.Now().UTC(),
	}
	if err := e.store.CreateSnapshot(ctx, snapshot); err != nil {
		return nil, err
	}

	if err := e.store.AdvanceLaunchCursor(ctx, attemptID, domain.LaunchStepSnapshot); err != nil {
		return nil, err
	}

	return &SnapshotSummary{
		SnapshotID: snapshot.ID,
		Holders:    len(entries),
		Checksum:   checksum,
	}, nil
}

func (e *executor) MintToken(ctx context.Context, curveID, attemptID string) (string, error) {
	attempt, err := e.getAttempt(ctx, attemptID)
	if err != nil {
		return "", err
	}
	if attempt.TokenMint != nil {
		return *attempt.TokenMint, nil
	}

	curve, err := e.ledger.GetCurve(ctx, curveID)
	if err != nil {
		return "", err
	}

	resp, err := e.launchpad.Mint(ctx, launchpad.MintRequest{
		CurveID:        curveID,
		Name:           curve.Name,
		Symbol:         curve.Symbol,
		Decimals:       domain.TOKEN_DECIMALS,
		TotalSupply:    curve.SupplyKeys * domain.TOKENS_PER_KEY,
		IdempotencyKey: attempt.IdempotencyKey + ":mint",
	})
	if err != nil {
		return "", err
	}

	if err := e.store.SetLaunchArtifacts(ctx, attemptID, &resp.TokenMint, nil, nil); err != nil {
		return "", err
	}
	if err := e.store.AdvanceLaunchCursor(ctx, attemptID, domain.LaunchStepMint); err != nil {
		return "", err
	}

	return resp.TokenMint, nil
}

func (e *executor) SeedLiquidity(ctx context.Context, curveID, attemptID string) (string, error) {
	attempt, err := e.getAttempt(ctx, attemptID)
	if err != nil {
		return "", err
	}
	if attempt.LiquidityRef != nil {
		return *attempt.LiquidityRef, nil
	}
	if attempt.TokenMint == nil {
		return "", fmt.Errorf("attempt %s has no token mint before seeding liquidity", attemptID)
	}

	curve, err := e.ledger.GetCurve(ctx, curveID)
	if err != nil {
		return "", err
	}

	price, err := pricing.PriceAt(curve.SupplyKeys)
	if err != nil {
		return "", err
	}

	resp, err := e.launchpad.SeedLiquidity(ctx, launchpad.SeedLiquidityRequest{
		CurveID:              curveID,
		TokenMint:            *attempt.TokenMint,
		ReserveLamports:      curve.ReserveLamports,
		InitialPriceLamports: price,
		IdempotencyKey:       attempt.IdempotencyKey + ":seed",
	})
	if err != nil {
		return "", err
	}

	if err := e.store.SetLaunchArtifacts(ctx, attemptID, nil, &resp.LiquidityRef, nil); err != nil {
		return "", err
	}
	if err := e.store.AdvanceLaunchCursor(ctx, attemptID, domain.LaunchStepSeedLiquidity); err != nil {
		return "", err
	}

	return resp.LiquidityRef, nil
}

func (e *executor) AirdropTokens(ctx context.Context, curveID, attemptID string) (string, error) {
	attempt, err := e.getAttempt(ctx, attemptID)
	if err != nil {
		return "", err
	}
	if attempt.DistributionRef != nil {
		return *attempt.DistributionRef, nil
	}
	if attempt.TokenMint == nil {
		return "", fmt.Errorf("attempt %s has no token mint before airdrop", attemptID)
	}

	snapshot, err := e.store.GetSnapshotByAttemptID(ctx, attemptID)
	if err != nil {
		return "", err
	}
	if snapshot == nil {
		return "", fmt.Errorf("attempt %s has no snapshot before airdrop", attemptID)
	}

	var entries []schema.SnapshotHolder
	if err := json.Unmarshal(snapshot.Holders, &entries); err != nil {
		return "", fmt.Errorf("failed to unmarshal snapshot holders: %w", err)
	}

	allocations := make([]launchpad.AirdropAllocation, 0, len(entries))
	for _, entry := range entries {
		allocations = append(allocations, launchpad.AirdropAllocation{
			Wallet: entry.Wallet,
			Amount: entry.Keys * domain.TOKENS_PER_KEY,
		})
	}

	resp, err := e.launchpad.Airdrop(ctx, launchpad.AirdropRequest{
		CurveID:        curveID,
		TokenMint:      *attempt.TokenMint,
		Allocations:    allocations,
		IdempotencyKey: attempt.IdempotencyKey + ":airdrop",
	})
	if err != nil {
		return "", err
	}

	if err := e.store.SetLaunchArtifacts(ctx, attemptID, nil, nil, &resp.DistributionRef); err != nil {
		return "", err
	}
	if err := e.store.AdvanceLaunchCursor(ctx, attemptID, domain.LaunchStepAirdrop); err != nil {
		return "", err
	}

	return resp.DistributionRef, nil
}

func (e *executor) FinalizeLaunch(ctx context.Context, curveID, attemptID string) error {
	curve, err := e.ledger.GetCurve(ctx, curveID)
	if err != nil {
		return err
	}
	if curve.State == schema.CurveStateLaunched {
		return nil
	}

	attempt, err := e.getAttempt(ctx, attemptID)
	if err != nil {
		return err
	}
	if attempt.TokenMint == nil {
		return fmt.Errorf("attempt %s has no token mint to finalize with", attemptID)
	}

	now := e.clock.Now().UTC()
	price, err := pricing.PriceAt(curve.SupplyKeys)
	if err != nil {
		return err
	}

	event := &domain.CurveEvent{
		EventID:         ulid.Make().String(),
		CurveID:         curveID,
		EventType:       domain.EventTypeLaunch,
		FeeTableVersion: domain.FeeTableVersion(curve.FeeTableVersion),
		SupplyAfter:     curve.SupplyKeys,
		PriceAfter:      price,
		Timestamp:       now,
	}
	if !event.Valid() {
		return fmt.Errorf("refusing to persist invalid launch event %s", event.EventID)
	}

	err = e.store.FinalizeLaunch(ctx, store.FinalizeLaunchInput{
		CurveID:   curveID,
		AttemptID: attemptID,
		TokenMint: *attempt.TokenMint,
		Event: &schema.CurveEvent{
			ID:              event.EventID,
			CurveID:         curveID,
			EventType:       string(event.EventType),
			FeeTableVersion: curve.FeeTableVersion,
			SupplyAfter:     event.SupplyAfter,
			PriceAfter:      event.PriceAfter,
			CreatedAt:       now,
		},
		At: now,
	})
	if err != nil {
		return err
	}

	if e.publisher != nil {
		if err := e.publisher.PublishEvent(ctx, event); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("curve_id", curveID))
		}
	}

	return e.store.AdvanceLaunchCursor(ctx, attemptID, domain.LaunchStepFinalize)
}

func (e *executor) CompensateLaunch(ctx context.Context, curveID, attemptID, failedStep, errorMessage string) error {
	curve, err := e.ledger.GetCurve(ctx, curveID)
	if err != nil {
		return err
	}
	if curve.State == schema.CurveStateFrozen {
		if _, err := e.ledger.Unfreeze(ctx, curveID); err != nil {
			return err
		}
	}

	logger.WarnCtx(ctx, "launch attempt compensated",
		zap.String("curve_id", curveID),
		zap.String("attempt_id", attemptID),
		zap.String("failed_step", failedStep))

	return e.store.CloseLaunchAttempt(ctx, attemptID, schema.LaunchAttemptFailed, &failedStep, &errorMessage)
}

func (e *executor) getAttempt(ctx context.Context, attemptID string) (*schema.LaunchAttempt, error) {
	attempt, err := e.store.GetLaunchAttemptByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt == nil {
		return nil, domain.ErrAttemptNotFound
	}
	return attempt, nil
}

// snapshotChecksum hashes the canonicalized holder array so two snapshots of
// the same balances always produce the same digest
func snapshotChecksum(holdersJSON []byte) (string, error) {
	canonical, err := jcs.Transform(holdersJSON)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize snapshot: %w", err)
	}
	digest := sha256.Sum256(canonical)
	return hex.EncodeToString(digest[:]), nil
}
