package workflows_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gowebpki/jcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"

	"github.com/launchos/curve-engine/internal/domain"
	"github.com/launchos/curve-engine/internal/launchpad"
	"github.com/launchos/curve-engine/internal/ledger"
	"github.com/launchos/curve-engine/internal/logger"
	"github.com/launchos/curve-engine/internal/mocks"
	"github.com/launchos/curve-engine/internal/store"
	"github.com/launchos/curve-engine/internal/store/schema"
	"github.com/launchos/curve-engine/internal/transfer"
	"github.com/launchos/curve-engine/internal/workflows"
)

const testWorkflowID = "launch-curve-" + testCurveID

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type executorMocks struct {
	store     *mocks.MockStore
	launchpad *mocks.MockLaunchpadClient
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	now       time.Time
}

func newTestExecutor(t *testing.T) (workflows.Executor, *executorMocks) {
	ctrl := gomock.NewController(t)
	m := &executorMocks{
		store:     mocks.NewMockStore(ctrl),
		launchpad: mocks.NewMockLaunchpadClient(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
		now:       time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
	m.clock.EXPECT().Now().Return(m.now).AnyTimes()

	ldg := ledger.New(m.store, m.publisher, m.clock, transfer.NewBuilder(transfer.Destinations{
		CommunityWallet: "community-wallet",
		BuybackWallet:   "buyback-wallet",
	}))

	return workflows.NewExecutor(m.store, ldg, m.launchpad, m.publisher, m.clock), m
}

func frozenCurve(supply, reserve uint64) *schema.Curve {
	return &schema.Curve{
		ID:              testCurveID,
		OwnerWallet:     "owner-wallet",
		Name:            "Test Room",
		Symbol:          "TEST",
		State:           schema.CurveStateFrozen,
		SupplyKeys:      supply,
		ReserveLamports: reserve,
		HolderCount:     4,
		FeeTableVersion: string(domain.FeeTableVersionV6),
		Version:         9,
	}
}

func TestCheckLaunchEligibilityNotEligible(t *testing.T) {
	ex, m := newTestExecutor(t)
	ctx := context.Background()

	m.store.EXPECT().GetCurveByID(ctx, testCurveID).Return(&schema.Curve{
		ID:              testCurveID,
		State:           schema.CurveStateActive,
		SupplyKeys:      10,
		ReserveLamports: 1_000,
		HolderCount:     1,
		FeeTableVersion: string(domain.FeeTableVersionV6),
	}, nil)

	err := ex.CheckLaunchEligibility(ctx, testCurveID)
	require.Error(t, err)

	var appErr *temporal.ApplicationError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, workflows.ErrTypeNotEligible, appErr.Type())
	assert.True(t, appErr.NonRetryable())
}

func TestBeginLaunchAttemptCreatesAttempt(t *testing.T) {
	ex, m := newTestExecutor(t)
	ctx := context.Background()

	m.store.EXPECT().GetRunningLaunchAttempt(ctx, testCurveID).Return(nil, nil)
	m.store.EXPECT().CreateLaunchAttempt(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, attempt *schema.LaunchAttempt) error {
			assert.Equal(t, testCurveID, attempt.CurveID)
			assert.Equal(t, testWorkflowID, attempt.WorkflowID)
			assert.Equal(t, schema.LaunchAttemptRunning, attempt.Status)
			assert.NotEmpty(t, attempt.IdempotencyKey)
			return nil
		})

	state, err := ex.BeginLaunchAttempt(ctx, testCurveID, testWorkflowID)
	require.NoError(t, err)
	assert.NotEmpty(t, state.AttemptID)
	assert.Equal(t, domain.LaunchStepNone, state.StepCursor)
}

func TestBeginLaunchAttemptResumesOwnAttempt(t *testing.T) {
	ex, m := newTestExecutor(t)
	ctx := context.Background()

	m.store.EXPECT().GetRunningLaunchAttempt(ctx, testCurveID).Return(&schema.LaunchAttempt{
		ID:         testAttemptID,
		CurveID:    testCurveID,
		WorkflowID: testWorkflowID,
		Status:     schema.LaunchAttemptRunning,
		StepCursor: string(domain.LaunchStepMint),
	}, nil)

	state, err := ex.BeginLaunchAttempt(ctx, testCurveID, testWorkflowID)
	require.NoError(t, err)
	assert.Equal(t, testAttemptID, state.AttemptID)
	assert.Equal(t, domain.LaunchStepMint, state.StepCursor)
}

func TestBeginLaunchAttemptRejectsForeignAttempt(t *testing.T) {
	ex, m := newTestExecutor(t)
	ctx := context.Background()

	m.store.EXPECT().GetRunningLaunchAttempt(ctx, testCurveID).Return(&schema.LaunchAttempt{
		ID:         testAttemptID,
		CurveID:    testCurveID,
		WorkflowID: "launch-curve-other-run",
		Status:     schema.LaunchAttemptRunning,
	}, nil)

	_, err := ex.BeginLaunchAttempt(ctx, testCurveID, testWorkflowID)
	require.Error(t, err)

	var appErr *temporal.ApplicationError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, workflows.ErrTypeLaunchInProgress, appErr.Type())
}

func TestFreezeCurveSkipsWhenAlreadyFrozen(t *testing.T) {
	ex, m := newTestExecutor(t)
	ctx := context.Background()

	// A prior run froze the curve but crashed before the cursor write
	m.store.EXPECT().GetCurveByID(ctx, testCurveID).Return(frozenCurve(100, 0), nil)
	m.store.EXPECT().AdvanceLaunchCursor(ctx, testAttemptID, domain.LaunchStepFreeze).Return(nil)

	err := ex.FreezeCurve(ctx, testCurveID, testAttemptID)
	assert.NoError(t, err)
}

func TestTakeSnapshot(t *testing.T) {
	ex, m := newTestExecutor(t)
	ctx := context.Background()

	holders := []*schema.CurveHolder{
		{Wallet: "wallet-a", Keys: 50},
		{Wallet: "wallet-b", Keys: 30},
		{Wallet: "wallet-c", Keys: 20},
	}

	m.store.EXPECT().GetSnapshotByAttemptID(ctx, testAttemptID).Return(nil, nil)
	m.store.EXPECT().GetCurveByID(ctx, testCurveID).Return(frozenCurve(100, 12_000_000_000), nil)
	m.store.EXPECT().ListHolders(ctx, testCurveID).Return(holders, nil)

	var saved *schema.CurveSnapshot
	m.store.EXPECT().CreateSnapshot(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, snapshot *schema.CurveSnapshot) error {
			saved = snapshot
			return nil
		})
	m.store.EXPECT().AdvanceLaunchCursor(ctx, testAttemptID, domain.LaunchStepSnapshot).Return(nil)

	summary, err := ex.TakeSnapshot(ctx, testCurveID, testAttemptID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Holders)

	require.NotNil(t, saved)
	assert.Equal(t, uint64(100), saved.SupplyKeys)
	assert.Equal(t, uint64(12_000_000_000), saved.ReserveLamports)

	var entries []schema.SnapshotHolder
	require.NoError(t, json.Unmarshal(saved.Holders, &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, uint64(5_000), entries[0].PctBps)
	assert.Equal(t, uint64(3_000), entries[1].PctBps)
	assert.Equal(t, uint64(2_000), entries[2].PctBps)

	// Checksum is the SHA-256 of the canonicalized holder array
	canonical, err := jcs.Transform(saved.Holders)
	require.NoError(t, err)
	digest := sha256.Sum256(canonical)
	assert.Equal(t, hex.EncodeToString(digest[:]), saved.Checksum)
	assert.Equal(t, saved.Checksum, summary.Checksum)
}

func TestTakeSnapshotIdempotent(t *testing.T) {
	ex, m := newTestExecutor(t)
	ctx := context.Background()

	m.store.EXPECT().GetSnapshotByAttemptID(ctx, testAttemptID).Return(&schema.CurveSnapshot{
		ID:       "snapshot-1",
		Checksum: "existing-checksum",
	}, nil)

	summary, err := ex.TakeSnapshot(ctx, testCurveID, testAttemptID)
	require.NoError(t, err)
	assert.Equal(t, "snapshot-1", summary.SnapshotID)
	assert.Equal(t, "existing-checksum", summary.Checksum)
}

func TestTakeSnapshotRequiresFrozenCurve(t *testing.T) {
	ex, m := newTestExecutor(t)
	ctx := context.Background()

	active := frozenCurve(100, 0)
	active.State = schema.CurveStateActive

	m.store.EXPECT().GetSnapshotByAttemptID(ctx, testAttemptID).Return(nil, nil)
	m.store.EXPECT().GetCurveByID(ctx, testCurveID).Return(active, nil)

	_, err := ex.TakeSnapshot(ctx, testCurveID, testAttemptID)
	assert.ErrorIs(t, err, domain.ErrCurveNotFrozen)
}

func launchAttempt(cursor domain.LaunchStep) *schema.LaunchAttempt {
	return &schema.LaunchAttempt{
		ID:             testAttemptID,
		CurveID:        testCurveID,
		IdempotencyKey: "c3a1f8d2-6b4e-4a9c-8d7f-2e1b0a9c8d7e",
		WorkflowID:     testWorkflowID,
		Status:         schema.LaunchAttemptRunning,
		StepCursor:     string(cursor),
	}
}

func TestMintToken(t *testing.T) {
	ex, m := newTestExecutor(t)
	ctx := context.Background()

	m.store.EXPECT().GetLaunchAttemptByID(ctx, testAttemptID).
		Return(launchAttempt(domain.LaunchStepSnapshot), nil)
	m.store.EXPECT().GetCurveByID(ctx, testCurveID).Return(frozenCurve(100, 12_000_000_000), nil)

	m.launchpad.EXPECT().Mint(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req launchpad.MintRequest) (*launchpad.MintResponse, error) {
			assert.Equal(t, "Test Room", req.Name)
			assert.Equal(t, "TEST", req.Symbol)
			assert.Equal(t, domain.TOKEN_DECIMALS, req.Decimals)
			// one million base units per key
			assert.Equal(t, uint64(100_000_000), req.TotalSupply)
			assert.Equal(t, "c3a1f8d2-6b4e-4a9c-8d7f-2e1b0a9c8d7e:mint", req.IdempotencyKey)
			return &launchpad.MintResponse{TokenMint: "token-mint-address"}, nil
		})

	m.store.EXPECT().SetLaunchArtifacts(ctx, testAttemptID, gomock.Any(), nil, nil).
		DoAndReturn(func(_ context.Context, _ string, tokenMint, _, _ *string) error {
			require.NotNil(t, tokenMint)
			assert.Equal(t, "token-mint-address", *tokenMint)
			return nil
		})
	m.store.EXPECT().AdvanceLaunchCursor(ctx, testAttemptID, domain.LaunchStepMint).Return(nil)

	tokenMint, err := ex.MintToken(ctx, testCurveID, testAttemptID)
	require.NoError(t, err)
	assert.Equal(t, "token-mint-address", tokenMint)
}

func TestMintTokenIdempotent(t *testing.T) {
	ex, m := newTestExecutor(t)
	ctx := context.Background()

	attempt := launchAttempt(domain.LaunchStepMint)
	minted := "token-mint-address"
	attempt.TokenMint = &minted

	m.store.EXPECT().GetLaunchAttemptByID(ctx, testAttemptID).Return(attempt, nil)

	tokenMint, err := ex.MintToken(ctx, testCurveID, testAttemptID)
	require.NoError(t, err)
	assert.Equal(t, minted, tokenMint)
}

func TestSeedLiquidity(t *testing.T) {
	ex, m := newTestExecutor(t)
	ctx := context.Background()

	attempt := launchAttempt(domain.LaunchStepMint)
	minted := "token-mint-address"
	attempt.TokenMint = &minted

	m.store.EXPECT().GetLaunchAttemptByID(ctx, testAttemptID).Return(attempt, nil)
	m.store.EXPECT().GetCurveByID(ctx, testCurveID).Return(frozenCurve(100, 12_000_000_000), nil)

	m.launchpad.EXPECT().SeedLiquidity(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req launchpad.SeedLiquidityRequest) (*launchpad.SeedLiquidityResponse, error) {
			assert.Equal(t, minted, req.TokenMint)
			// the full reserve seeds the pool at the current spot price
			assert.Equal(t, uint64(12_000_000_000), req.ReserveLamports)
			assert.Equal(t, uint64(80_000_000), req.InitialPriceLamports)
			return &launchpad.SeedLiquidityResponse{LiquidityRef: "pool-ref"}, nil
		})

	m.store.EXPECT().SetLaunchArtifacts(ctx, testAttemptID, nil, gomock.Any(), nil).Return(nil)
	m.store.EXPECT().AdvanceLaunchCursor(ctx, testAttemptID, domain.LaunchStepSeedLiquidity).Return(nil)

	ref, err := ex.SeedLiquidity(ctx, testCurveID, testAttemptID)
	require.NoError(t, err)
	assert.Equal(t, "pool-ref", ref)
}

func TestAirdropTokens(t *testing.T) {
	ex, m := newTestExecutor(t)
	ctx := context.Background()

	attempt := launchAttempt(domain.LaunchStepSeedLiquidity)
	minted := "token-mint-address"
	attempt.TokenMint = &minted

	entries := []schema.SnapshotHolder{
		{Wallet: "wallet-a", Keys: 50, PctBps: 5_000},
		{Wallet: "wallet-b", Keys: 50, PctBps: 5_000},
	}
	holdersJSON, err := json.Marshal(entries)
	require.NoError(t, err)

	m.store.EXPECT().GetLaunchAttemptByID(ctx, testAttemptID).Return(attempt, nil)
	m.store.EXPECT().GetSnapshotByAttemptID(ctx, testAttemptID).Return(&schema.CurveSnapshot{
		ID:      "snapshot-1",
		Holders: holdersJSON,
	}, nil)

	m.launchpad.EXPECT().Airdrop(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req launchpad.AirdropRequest) (*launchpad.AirdropResponse, error) {
			require.Len(t, req.Allocations, 2)
			assert.Equal(t, "wallet-a", req.Allocations[0].Wallet)
			assert.Equal(t, uint64(50_000_000), req.Allocations[0].Amount)
			assert.Equal(t, "c3a1f8d2-6b4e-4a9c-8d7f-2e1b0a9c8d7e:airdrop", req.IdempotencyKey)
			return &launchpad.AirdropResponse{DistributionRef: "distribution-ref"}, nil
		})

	m.store.EXPECT().SetLaunchArtifacts(ctx, testAttemptID, nil, nil, gomock.Any()).Return(nil)
	m.store.EXPECT().AdvanceLaunchCursor(ctx, testAttemptID, domain.LaunchStepAirdrop).Return(nil)

	ref, err := ex.AirdropTokens(ctx, testCurveID, testAttemptID)
	require.NoError(t, err)
	assert.Equal(t, "distribution-ref", ref)
}

func TestFinalizeLaunch(t *testing.T) {
	ex, m := newTestExecutor(t)
	ctx := context.Background()

	attempt := launchAttempt(domain.LaunchStepAirdrop)
	minted := "token-mint-address"
	attempt.TokenMint = &minted

	m.store.EXPECT().GetCurveByID(ctx, testCurveID).Return(frozenCurve(100, 12_000_000_000), nil)
	m.store.EXPECT().GetLaunchAttemptByID(ctx, testAttemptID).Return(attempt, nil)

	m.store.EXPECT().FinalizeLaunch(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.FinalizeLaunchInput) error {
			assert.Equal(t, testCurveID, input.CurveID)
			assert.Equal(t, testAttemptID, input.AttemptID)
			assert.Equal(t, minted, input.TokenMint)
			require.NotNil(t, input.Event)
			assert.Equal(t, string(domain.EventTypeLaunch), input.Event.EventType)
			return nil
		})
	m.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil)
	m.store.EXPECT().AdvanceLaunchCursor(ctx, testAttemptID, domain.LaunchStepFinalize).Return(nil)

	err := ex.FinalizeLaunch(ctx, testCurveID, testAttemptID)
	assert.NoError(t, err)
}

func TestFinalizeLaunchIdempotent(t *testing.T) {
	ex, m := newTestExecutor(t)
	ctx := context.Background()

	launched := frozenCurve(100, 0)
	launched.State = schema.CurveStateLaunched

	m.store.EXPECT().GetCurveByID(ctx, testCurveID).Return(launched, nil)

	err := ex.FinalizeLaunch(ctx, testCurveID, testAttemptID)
	assert.NoError(t, err)
}

func TestCompensateLaunchUnfreezes(t *testing.T) {
	ex, m := newTestExecutor(t)
	ctx := context.Background()

	m.store.EXPECT().GetCurveByID(ctx, testCurveID).Return(frozenCurve(100, 0), nil).Times(2)
	m.store.EXPECT().TransitionCurveState(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.TransitionInput) error {
			assert.Equal(t, schema.CurveStateFrozen, input.From)
			assert.Equal(t, schema.CurveStateActive, input.To)
			return nil
		})
	m.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil)

	m.store.EXPECT().CloseLaunchAttempt(ctx, testAttemptID, schema.LaunchAttemptFailed, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ schema.LaunchAttemptStatus, failedStep, errorMessage *string) error {
			require.NotNil(t, failedStep)
			assert.Equal(t, "mint", *failedStep)
			require.NotNil(t, errorMessage)
			return nil
		})

	err := ex.CompensateLaunch(ctx, testCurveID, testAttemptID, "mint", "launchpad rejected mint")
	assert.NoError(t, err)
}

func TestCompensateLaunchActiveCurve(t *testing.T) {
	ex, m := newTestExecutor(t)
	ctx := context.Background()

	// Freeze itself failed, the curve never left active
	active := frozenCurve(100, 0)
	active.State = schema.CurveStateActive

	m.store.EXPECT().GetCurveByID(ctx, testCurveID).Return(active, nil)
	m.store.EXPECT().CloseLaunchAttempt(ctx, testAttemptID, schema.LaunchAttemptFailed, gomock.Any(), gomock.Any()).
		Return(nil)

	err := ex.CompensateLaunch(ctx, testCurveID, testAttemptID, "freeze", "store unavailable")
	assert.NoError(t, err)
}
