package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchos/curve-engine/internal/domain"
	"github.com/launchos/curve-engine/internal/store/schema"
)

const (
	testWalletA = "8FkP3v5mXq1yJ2r9T6bWc4dZ7nH1sE5uK9gA2pL6oQw3"
	testWalletB = "3tZx9Kp2mQv7yB5rW1cN8dF4jH6sL0uE2gA9pM5oTw1i"
)

func createTestCurve(t *testing.T, s Store) *schema.Curve {
	curve, err := s.CreateCurve(context.Background(), CreateCurveInput{
		OwnerWallet:     testWalletA,
		Name:            "test room",
		Symbol:          "ROOM",
		FeeTableVersion: domain.FeeTableVersionV6,
		CapGrowthBps:    domain.DEFAULT_CAP_GROWTH_BPS,
	})
	require.NoError(t, err)
	require.NotEmpty(t, curve.ID)
	return curve
}

func buyEvent(curveID, wallet string, keys, amount, supplyAfter uint64) *schema.CurveEvent {
	fees, _ := json.Marshal(domain.FeeBreakdown{ReserveLamports: amount})
	return &schema.CurveEvent{
		ID:              ulid.Make().String(),
		CurveID:         curveID,
		EventType:       string(domain.EventTypeBuy),
		Wallet:          &wallet,
		Keys:            keys,
		AmountLamports:  amount,
		Fees:            fees,
		FeeTableVersion: string(domain.FeeTableVersionV6),
		SupplyAfter:     supplyAfter,
		PriceAfter:      50_000_000,
		CreatedAt:       time.Now().UTC(),
	}
}

func TestCreateAndGetCurve(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()

	curve := createTestCurve(t, s)

	got, err := s.GetCurveByID(ctx, curve.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, schema.CurveStateActive, got.State)
	assert.Equal(t, uint64(0), got.SupplyKeys)
	assert.Equal(t, uint64(0), got.Version)
	assert.Equal(t, string(domain.FeeTableVersionV6), got.FeeTableVersion)

	missing, err := s.GetCurveByID(ctx, "00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListCurvesByState(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()

	createTestCurve(t, s)
	createTestCurve(t, s)

	active := schema.CurveStateActive
	curves, err := s.ListCurves(ctx, &active, 10, 0)
	require.NoError(t, err)
	assert.Len(t, curves, 2)

	frozen := schema.CurveStateFrozen
	curves, err = s.ListCurves(ctx, &frozen, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, curves)
}

func TestApplyTrade(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()
	curve := createTestCurve(t, s)
	now := time.Now().UTC()

	input := ApplyTradeInput{
		CurveID:         curve.ID,
		ExpectedVersion: 0,
		NewSupply:       2,
		NewReserve:      94_282_000,
		NewHolderCount:  1,
		Holder: HolderUpdate{
			Wallet:                testWalletB,
			Keys:                  2,
			AvgPriceLamports:      50_150_000,
			TotalInvestedLamports: 100_300_000,
			FirstBuyAt:            now,
			LastTradeAt:           now,
		},
		Event: buyEvent(curve.ID, testWalletB, 2, 100_300_000, 2),
		Transfers: []schema.TransferInstruction{
			{
				CurveID:     curve.ID,
				Kind:        schema.TransferKindProject,
				Destination: testWalletA,
				Lamports:    2_006_000,
				Status:      schema.TransferStatusPending,
			},
		},
	}

	require.NoError(t, s.ApplyTrade(ctx, input))

	got, err := s.GetCurveByID(ctx, curve.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got.SupplyKeys)
	assert.Equal(t, uint64(94_282_000), got.ReserveLamports)
	assert.Equal(t, uint64(1), got.HolderCount)
	assert.Equal(t, uint64(1), got.Version)

	holder, err := s.GetHolder(ctx, curve.ID, testWalletB)
	require.NoError(t, err)
	require.NotNil(t, holder)
	assert.Equal(t, uint64(2), holder.Keys)
	assert.Equal(t, uint64(100_300_000), holder.TotalInvestedLamports)

	events, err := s.ListCurveEvents(ctx, curve.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, string(domain.EventTypeBuy), events[0].EventType)

	pending, err := s.ListPendingTransfers(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, schema.TransferKindProject, pending[0].Kind)
}

func TestApplyTradeVersionConflict(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()
	curve := createTestCurve(t, s)
	now := time.Now().UTC()

	stale := ApplyTradeInput{
		CurveID:         curve.ID,
		ExpectedVersion: 5, // nobody has bumped the curve this far
		NewSupply:       1,
		NewReserve:      47_000_000,
		NewHolderCount:  1,
		Holder: HolderUpdate{
			Wallet: testWalletB, Keys: 1, FirstBuyAt: now, LastTradeAt: now,
		},
		Event: buyEvent(curve.ID, testWalletB, 1, 50_000_000, 1),
	}

	err := s.ApplyTrade(ctx, stale)
	assert.ErrorIs(t, err, domain.ErrVersionConflict)

	// Nothing committed, the transaction rolled back as a unit
	events, err := s.ListCurveEvents(ctx, curve.ID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestApplyTradeRejectedWhenFrozen(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()
	curve := createTestCurve(t, s)
	now := time.Now().UTC()

	require.NoError(t, s.TransitionCurveState(ctx, TransitionInput{
		CurveID:         curve.ID,
		ExpectedVersion: 0,
		From:            schema.CurveStateActive,
		To:              schema.CurveStateFrozen,
		At:              now,
	}))

	err := s.ApplyTrade(ctx, ApplyTradeInput{
		CurveID:         curve.ID,
		ExpectedVersion: 1,
		NewSupply:       1,
		NewReserve:      47_000_000,
		NewHolderCount:  1,
		Holder:          HolderUpdate{Wallet: testWalletB, Keys: 1, FirstBuyAt: now, LastTradeAt: now},
		Event:           buyEvent(curve.ID, testWalletB, 1, 50_000_000, 1),
	})
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
}

func TestTransitionCurveState(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()
	curve := createTestCurve(t, s)
	now := time.Now().UTC()

	require.NoError(t, s.TransitionCurveState(ctx, TransitionInput{
		CurveID:         curve.ID,
		ExpectedVersion: 0,
		From:            schema.CurveStateActive,
		To:              schema.CurveStateFrozen,
		At:              now,
	}))

	got, err := s.GetCurveByID(ctx, curve.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.CurveStateFrozen, got.State)
	require.NotNil(t, got.FrozenAt)

	// Rollback clears the freeze marker
	require.NoError(t, s.TransitionCurveState(ctx, TransitionInput{
		CurveID:         curve.ID,
		ExpectedVersion: 1,
		From:            schema.CurveStateFrozen,
		To:              schema.CurveStateActive,
		At:              now,
	}))

	got, err = s.GetCurveByID(ctx, curve.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.CurveStateActive, got.State)
	assert.Nil(t, got.FrozenAt)

	// Stale version loses
	err = s.TransitionCurveState(ctx, TransitionInput{
		CurveID:         curve.ID,
		ExpectedVersion: 0,
		From:            schema.CurveStateActive,
		To:              schema.CurveStateFrozen,
		At:              now,
	})
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
}

func TestLaunchAttemptLifecycle(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()
	curve := createTestCurve(t, s)

	attempt := &schema.LaunchAttempt{
		CurveID:        curve.ID,
		IdempotencyKey: "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		WorkflowID:     "launch-curve-" + curve.ID,
		Status:         schema.LaunchAttemptRunning,
	}
	require.NoError(t, s.CreateLaunchAttempt(ctx, attempt))
	require.NotEmpty(t, attempt.ID)

	running, err := s.GetRunningLaunchAttempt(ctx, curve.ID)
	require.NoError(t, err)
	require.NotNil(t, running)
	assert.Equal(t, attempt.ID, running.ID)

	byWorkflow, err := s.GetLaunchAttemptByWorkflowID(ctx, attempt.WorkflowID)
	require.NoError(t, err)
	assert.Equal(t, attempt.ID, byWorkflow.ID)

	_, err = s.GetLaunchAttemptByWorkflowID(ctx, "launch-curve-unknown")
	assert.ErrorIs(t, err, domain.ErrAttemptNotFound)

	require.NoError(t, s.AdvanceLaunchCursor(ctx, attempt.ID, domain.LaunchStepSnapshot))
	mint := "MintAddr111111111111111111111111111111111111"
	require.NoError(t, s.SetLaunchArtifacts(ctx, attempt.ID, &mint, nil, nil))

	got, err := s.GetLaunchAttemptByID(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.LaunchStepSnapshot), got.StepCursor)
	require.NotNil(t, got.TokenMint)
	assert.Equal(t, mint, *got.TokenMint)

	step := string(domain.LaunchStepMint)
	msg := "launchpad unavailable"
	require.NoError(t, s.CloseLaunchAttempt(ctx, attempt.ID, schema.LaunchAttemptFailed, &step, &msg))

	got, err = s.GetLaunchAttemptByID(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.LaunchAttemptFailed, got.Status)
	require.NotNil(t, got.FailedStep)
	assert.Equal(t, step, *got.FailedStep)

	running, err = s.GetRunningLaunchAttempt(ctx, curve.ID)
	require.NoError(t, err)
	assert.Nil(t, running)
}

func TestFinalizeLaunch(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()
	curve := createTestCurve(t, s)
	now := time.Now().UTC()

	attempt := &schema.LaunchAttempt{
		CurveID:        curve.ID,
		IdempotencyKey: "f47ac10b-58cc-4372-a567-0e02b2c3d480",
		WorkflowID:     "launch-curve-" + curve.ID,
		Status:         schema.LaunchAttemptRunning,
	}
	require.NoError(t, s.CreateLaunchAttempt(ctx, attempt))

	// Finalizing an active curve must fail
	err := s.FinalizeLaunch(ctx, FinalizeLaunchInput{
		CurveID:   curve.ID,
		AttemptID: attempt.ID,
		TokenMint: "MintAddr111111111111111111111111111111111111",
		At:        now,
	})
	assert.ErrorIs(t, err, domain.ErrCurveNotFrozen)

	require.NoError(t, s.TransitionCurveState(ctx, TransitionInput{
		CurveID:         curve.ID,
		ExpectedVersion: 0,
		From:            schema.CurveStateActive,
		To:              schema.CurveStateFrozen,
		At:              now,
	}))

	require.NoError(t, s.FinalizeLaunch(ctx, FinalizeLaunchInput{
		CurveID:   curve.ID,
		AttemptID: attempt.ID,
		TokenMint: "MintAddr111111111111111111111111111111111111",
		At:        now,
	}))

	got, err := s.GetCurveByID(ctx, curve.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.CurveStateLaunched, got.State)
	assert.Equal(t, uint64(0), got.ReserveLamports)
	require.NotNil(t, got.TokenMint)
	require.NotNil(t, got.LaunchedAt)

	closed, err := s.GetLaunchAttemptByID(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.LaunchAttemptSucceeded, closed.Status)
	assert.Equal(t, string(domain.LaunchStepFinalize), closed.StepCursor)
}

func TestSnapshotIdempotentPerAttempt(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()
	curve := createTestCurve(t, s)

	attempt := &schema.LaunchAttempt{
		CurveID:        curve.ID,
		IdempotencyKey: "f47ac10b-58cc-4372-a567-0e02b2c3d481",
		WorkflowID:     "launch-curve-" + curve.ID,
		Status:         schema.LaunchAttemptRunning,
	}
	require.NoError(t, s.CreateLaunchAttempt(ctx, attempt))

	holders, _ := json.Marshal([]schema.SnapshotHolder{
		{Wallet: testWalletA, Keys: 60, PctBps: 6000},
		{Wallet: testWalletB, Keys: 40, PctBps: 4000},
	})
	snapshot := &schema.CurveSnapshot{
		CurveID:         curve.ID,
		AttemptID:       attempt.ID,
		SupplyKeys:      100,
		ReserveLamports: 10_000_000_000,
		Holders:         holders,
		Checksum:        "ab12",
	}
	require.NoError(t, s.CreateSnapshot(ctx, snapshot))

	// A retried activity re-creates the same snapshot, silently deduped
	dup := *snapshot
	dup.ID = ""
	require.NoError(t, s.CreateSnapshot(ctx, &dup))

	got, err := s.GetSnapshotByAttemptID(ctx, attempt.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint64(100), got.SupplyKeys)

	latest, err := s.GetLatestSnapshot(ctx, curve.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, got.ID, latest.ID)
}

func TestFlashRewardOncePerRoom(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()
	curve := createTestCurve(t, s)

	created, err := s.CreateFlashReward(ctx, &schema.FlashReward{
		CurveID:                  curve.ID,
		MotionScore:              97,
		Entrants:                 12,
		RewardPerEntrantLamports: 50_000_000,
	})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.CreateFlashReward(ctx, &schema.FlashReward{
		CurveID:                  curve.ID,
		MotionScore:              99,
		Entrants:                 20,
		RewardPerEntrantLamports: 50_000_000,
	})
	require.NoError(t, err)
	assert.False(t, created)
}

func TestCountAcceptedInteractions(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()

	count, last, err := s.CountAcceptedInteractions(ctx, testWalletA, time.Now().Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
	assert.Nil(t, last)

	require.NoError(t, s.CreateAcceptedInteraction(ctx, testWalletA, testWalletB))
	require.NoError(t, s.CreateAcceptedInteraction(ctx, testWalletA, testWalletB))

	count, last, err = s.CountAcceptedInteractions(ctx, testWalletA, time.Now().Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)
	require.NotNil(t, last)
}

func TestSweeperQueries(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()
	curve := createTestCurve(t, s)
	now := time.Now().UTC()

	require.NoError(t, s.ApplyTrade(ctx, ApplyTradeInput{
		CurveID:         curve.ID,
		ExpectedVersion: 0,
		NewSupply:       1,
		NewReserve:      47_000_000,
		NewHolderCount:  1,
		Holder:          HolderUpdate{Wallet: testWalletB, Keys: 1, FirstBuyAt: now, LastTradeAt: now},
		Event:           buyEvent(curve.ID, testWalletB, 1, 50_000_000, 1),
	}))

	volume, err := s.SumTradeVolumeSince(ctx, curve.ID, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, uint64(50_000_000), volume)

	holders, err := s.CountDistinctHolders(ctx, curve.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), holders)

	require.NoError(t, s.UpdateCurveRollups(ctx, curve.ID, volume, holders))
	got, err := s.GetCurveByID(ctx, curve.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(50_000_000), got.Volume24hLamports)

	times, err := s.GetWalletTradeTimes(ctx, testWalletB, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Len(t, times, 1)
}

func TestGetLastEventBefore(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()
	curve := createTestCurve(t, s)
	now := time.Now().UTC()

	event, err := s.GetLastEventBefore(ctx, curve.ID, now)
	require.NoError(t, err)
	assert.Nil(t, event)

	old := buyEvent(curve.ID, testWalletB, 1, 50_000_000, 1)
	old.CreatedAt = now.Add(-48 * time.Hour)
	require.NoError(t, s.ApplyTrade(ctx, ApplyTradeInput{
		CurveID:         curve.ID,
		ExpectedVersion: 0,
		NewSupply:       1,
		NewReserve:      47_000_000,
		NewHolderCount:  1,
		Holder:          HolderUpdate{Wallet: testWalletB, Keys: 1, FirstBuyAt: old.CreatedAt, LastTradeAt: old.CreatedAt},
		Event:           old,
	}))

	recent := buyEvent(curve.ID, testWalletB, 1, 50_600_000, 2)
	recent.PriceAfter = 51_200_000
	recent.CreatedAt = now.Add(-time.Hour)
	require.NoError(t, s.ApplyTrade(ctx, ApplyTradeInput{
		CurveID:         curve.ID,
		ExpectedVersion: 1,
		NewSupply:       2,
		NewReserve:      94_500_000,
		NewHolderCount:  1,
		Holder:          HolderUpdate{Wallet: testWalletB, Keys: 2, FirstBuyAt: old.CreatedAt, LastTradeAt: recent.CreatedAt},
		Event:           recent,
	}))

	event, err = s.GetLastEventBefore(ctx, curve.ID, now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, old.ID, event.ID)

	event, err = s.GetLastEventBefore(ctx, curve.ID, now)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, recent.ID, event.ID)
}

func TestTransferLifecycle(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()
	curve := createTestCurve(t, s)

	require.NoError(t, s.CreateTransfers(ctx, []schema.TransferInstruction{
		{
			CurveID:     curve.ID,
			Kind:        schema.TransferKindFlashReward,
			Destination: testWalletB,
			Lamports:    50_000_000,
			Status:      schema.TransferStatusPending,
		},
	}))

	pending, err := s.ListPendingTransfers(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, s.MarkTransferSent(ctx, pending[0].ID, time.Now().UTC()))

	pending, err = s.ListPendingTransfers(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestSweepWatermark(t *testing.T) {
	_, tx := initPGTestDB(t)
	cs := NewCursorStore(tx)
	ctx := context.Background()

	mark, err := cs.GetSweepWatermark(ctx, "volume24h")
	require.NoError(t, err)
	assert.True(t, mark.IsZero())

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, cs.SetSweepWatermark(ctx, "volume24h", now))

	mark, err = cs.GetSweepWatermark(ctx, "volume24h")
	require.NoError(t, err)
	assert.Equal(t, now, mark)
}
