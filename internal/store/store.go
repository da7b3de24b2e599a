package store

import (
	"context"
	"time"

	"github.com/launchos/curve-engine/internal/domain"
	"github.com/launchos/curve-engine/internal/store/schema"
)

// CreateCurveInput carries the fields needed to create a curve
type CreateCurveInput struct {
	OwnerWallet     string
	Name            string
	Symbol          string
	FeeTableVersion domain.FeeTableVersion
	CapGrowthBps    uint64
}

// HolderUpdate carries the recomputed aggregates for the trading wallet.
// The ledger computes these in memory, the store just persists them.
type HolderUpdate struct {
	Wallet                string
	Keys                  uint64
	AvgPriceLamports      uint64
	TotalInvestedLamports uint64
	RealizedPnlLamports   int64
	FirstBuyAt            time.Time
	LastTradeAt           time.Time
}

// ApplyTradeInput is an atomic trade mutation. The curve row update is
// conditional on ExpectedVersion, a concurrent writer makes the whole
// transaction fail with domain.ErrVersionConflict.
type ApplyTradeInput struct {
	CurveID         string
	ExpectedVersion uint64
	NewSupply       uint64
	NewReserve      uint64
	NewHolderCount  uint64
	Holder          HolderUpdate
	Event           *schema.CurveEvent
	Transfers       []schema.TransferInstruction
}

// TransitionInput is an atomic state transition with its audit event
type TransitionInput struct {
	CurveID         string
	ExpectedVersion uint64
	From            schema.CurveState
	To              schema.CurveState
	Event           *schema.CurveEvent
	At              time.Time
}

// FinalizeLaunchInput completes a launch: the curve moves frozen to launched,
// the reserve is zeroed out and the attempt is marked succeeded.
type FinalizeLaunchInput struct {
	CurveID   string
	AttemptID string
	TokenMint string
	Event     *schema.CurveEvent
	At        time.Time
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateCurve creates a new curve in the active state
	CreateCurve(ctx context.Context, input CreateCurveInput) (*schema.Curve, error)
	// GetCurveByID retrieves a curve by ID, nil when not found
	GetCurveByID(ctx context.Context, curveID string) (*schema.Curve, error)
	// ListCurves retrieves curves, optionally filtered by state
	ListCurves(ctx context.Context, state *schema.CurveState, limit, offset int) ([]*schema.Curve, error)
	// ApplyTrade atomically persists a trade: curve counters, holder
	// aggregates, the trade event and its payout instructions
	ApplyTrade(ctx context.Context, input ApplyTradeInput) error
	// TransitionCurveState atomically moves a curve between states
	TransitionCurveState(ctx context.Context, input TransitionInput) error
	// FinalizeLaunch completes a launch attempt and marks the curve launched
	FinalizeLaunch(ctx context.Context, input FinalizeLaunchInput) error

	// GetHolder retrieves a wallet's position on a curve, nil when not found
	GetHolder(ctx context.Context, curveID, wallet string) (*schema.CurveHolder, error)
	// ListHolders retrieves all wallets holding at least one key, largest first
	ListHolders(ctx context.Context, curveID string) ([]*schema.CurveHolder, error)

	// ListCurveEvents retrieves a curve's event log, newest first
	ListCurveEvents(ctx context.Context, curveID string, limit, offset int) ([]*schema.CurveEvent, error)
	// GetWalletTradeTimes retrieves a wallet's trade timestamps since a cutoff,
	// used for streak evaluation
	GetWalletTradeTimes(ctx context.Context, wallet string, since time.Time) ([]time.Time, error)
	// SumTradeVolumeSince sums a curve's gross trade volume since a cutoff
	SumTradeVolumeSince(ctx context.Context, curveID string, since time.Time) (uint64, error)
	// GetLastEventBefore retrieves a curve's newest event older than the
	// cutoff, nil when the curve had no events yet
	GetLastEventBefore(ctx context.Context, curveID string, before time.Time) (*schema.CurveEvent, error)
	// CountDistinctHolders recounts wallets with a positive key balance
	CountDistinctHolders(ctx context.Context, curveID string) (uint64, error)
	// UpdateCurveRollups writes sweeper-maintained aggregates
	UpdateCurveRollups(ctx context.Context, curveID string, volume24h, holderCount uint64) error

	// CreateSnapshot persists a launch snapshot, idempotent per attempt
	CreateSnapshot(ctx context.Context, snapshot *schema.CurveSnapshot) error
	// GetSnapshotByAttemptID retrieves the snapshot taken by an attempt, nil when not found
	GetSnapshotByAttemptID(ctx context.Context, attemptID string) (*schema.CurveSnapshot, error)
	// GetLatestSnapshot retrieves a curve's most recent snapshot, nil when none
	GetLatestSnapshot(ctx context.Context, curveID string) (*schema.CurveSnapshot, error)

	// CreateLaunchAttempt persists a new attempt before any external call
	CreateLaunchAttempt(ctx context.Context, attempt *schema.LaunchAttempt) error
	// GetLaunchAttemptByID retrieves an attempt, nil when not found
	GetLaunchAttemptByID(ctx context.Context, attemptID string) (*schema.LaunchAttempt, error)
	// GetLaunchAttemptByWorkflowID retrieves the attempt driven by a workflow
	GetLaunchAttemptByWorkflowID(ctx context.Context, workflowID string) (*schema.LaunchAttempt, error)
	// GetRunningLaunchAttempt retrieves a curve's in-flight attempt, nil when none
	GetRunningLaunchAttempt(ctx context.Context, curveID string) (*schema.LaunchAttempt, error)
	// AdvanceLaunchCursor records that a launch step completed
	AdvanceLaunchCursor(ctx context.Context, attemptID string, step domain.LaunchStep) error
	// SetLaunchArtifacts records external references produced by launch steps
	SetLaunchArtifacts(ctx context.Context, attemptID string, tokenMint, liquidityRef, distributionRef *string) error
	// CloseLaunchAttempt marks an attempt succeeded or failed
	CloseLaunchAttempt(ctx context.Context, attemptID string, status schema.LaunchAttemptStatus, failedStep, errorMessage *string) error

	// ListPendingTransfers retrieves payout instructions awaiting broadcast
	ListPendingTransfers(ctx context.Context, limit int) ([]*schema.TransferInstruction, error)
	// MarkTransferSent flips a payout instruction to sent
	MarkTransferSent(ctx context.Context, instructionID string, at time.Time) error
	// CreateTransfers records payout instructions outside of a trade
	CreateTransfers(ctx context.Context, transfers []schema.TransferInstruction) error

	// CountAcceptedInteractions counts a wallet's accepted interactions since a
	// cutoff and returns the most recent timestamp
	CountAcceptedInteractions(ctx context.Context, wallet string, since time.Time) (uint64, *time.Time, error)
	// CreateAcceptedInteraction records an accepted interaction
	CreateAcceptedInteraction(ctx context.Context, wallet, peerWallet string) error
	// CreateFlashReward records a flash reward, returns false when the room
	// already triggered one
	CreateFlashReward(ctx context.Context, reward *schema.FlashReward) (bool, error)
}
