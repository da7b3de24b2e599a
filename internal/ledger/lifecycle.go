package ledger

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/launchos/curve-engine/internal/domain"
	"github.com/launchos/curve-engine/internal/incentive"
	"github.com/launchos/curve-engine/internal/pricing"
	"github.com/launchos/curve-engine/internal/store"
	"github.com/launchos/curve-engine/internal/store/schema"
)

// Freeze suspends trading ahead of a launch
func (l *Ledger) Freeze(ctx context.Context, curveID string) (*schema.Curve, error) {
	return l.transition(ctx, curveID, schema.CurveStateFrozen, domain.EventTypeFreeze)
}

// Unfreeze rolls a frozen curve back to active after a failed launch
func (l *Ledger) Unfreeze(ctx context.Context, curveID string) (*schema.Curve, error) {
	return l.transition(ctx, curveID, schema.CurveStateActive, domain.EventTypeUnfreeze)
}

// MarkUtility permanently opts a curve out of launching. Keys stay tradeable
// off-ledger but the curve itself is closed, the transition is terminal.
func (l *Ledger) MarkUtility(ctx context.Context, curveID string) (*schema.Curve, error) {
	return l.transition(ctx, curveID, schema.CurveStateUtility, domain.EventTypeUtility)
}

func (l *Ledger) transition(ctx context.Context, curveID string, to schema.CurveState, eventType domain.EventType) (*schema.Curve, error) {
	lock := l.curveLock(curveID)
	lock.Lock()
	defer lock.Unlock()

	var (
		curve *schema.Curve
		event *domain.CurveEvent
	)
	err := retryOnConflict(ctx, func() error {
		var err error
		curve, event, err = l.transitionOnce(ctx, curveID, to, eventType)
		return err
	})
	if err != nil {
		return nil, err
	}

	if event != nil {
		l.publish(ctx, event)
	}
	return curve, nil
}

func (l *Ledger) transitionOnce(ctx context.Context, curveID string, to schema.CurveState, eventType domain.EventType) (*schema.Curve, *domain.CurveEvent, error) {
	curve, err := l.GetCurve(ctx, curveID)
	if err != nil {
		return nil, nil, err
	}

	// Already at the target state, nothing to change and nothing to emit.
	// A double freeze in particular must not fail, launch retries depend on it.
	if curve.State == to {
		return curve, nil, nil
	}

	if !domain.CurveState(curve.State).CanTransitionTo(domain.CurveState(to)) {
		return nil, nil, domain.ErrInvalidTransition
	}

	now := l.clock.Now().UTC()
	spot, err := pricing.PriceAt(curve.SupplyKeys)
	if err != nil {
		return nil, nil, err
	}

	event := &domain.CurveEvent{
		EventID:         ulid.Make().String(),
		CurveID:         curve.ID,
		EventType:       eventType,
		FeeTableVersion: domain.FeeTableVersion(curve.FeeTableVersion),
		SupplyAfter:     curve.SupplyKeys,
		PriceAfter:      spot,
		Timestamp:       now,
	}

	row, err := eventRow(event)
	if err != nil {
		return nil, nil, err
	}

	err = l.store.TransitionCurveState(ctx, store.TransitionInput{
		CurveID:         curve.ID,
		ExpectedVersion: curve.Version,
		From:            curve.State,
		To:              to,
		Event:           row,
		At:              now,
	})
	if err != nil {
		return nil, nil, err
	}

	curve.State = to
	curve.Version++
	switch to {
	case schema.CurveStateFrozen:
		curve.FrozenAt = &now
	case schema.CurveStateActive:
		curve.FrozenAt = nil
	}

	return curve, event, nil
}

// CheckLaunchEligibility verifies the launch preconditions. A nil error means
// the curve may launch, a *domain.ThresholdError lists every failing
// criterion.
func (l *Ledger) CheckLaunchEligibility(ctx context.Context, curveID string) error {
	curve, err := l.GetCurve(ctx, curveID)
	if err != nil {
		return err
	}

	var failures []domain.ThresholdFailure
	if curve.SupplyKeys < domain.MIN_LAUNCH_SUPPLY_KEYS {
		failures = append(failures, domain.ThresholdFailure{
			Criterion: "supply_keys",
			Need:      domain.MIN_LAUNCH_SUPPLY_KEYS,
			Have:      curve.SupplyKeys,
		})
	}
	if curve.HolderCount < domain.MIN_LAUNCH_HOLDERS {
		failures = append(failures, domain.ThresholdFailure{
			Criterion: "holder_count",
			Need:      domain.MIN_LAUNCH_HOLDERS,
			Have:      curve.HolderCount,
		})
	}
	if curve.ReserveLamports < domain.MIN_LAUNCH_RESERVE_LAMPORTS {
		failures = append(failures, domain.ThresholdFailure{
			Criterion: "reserve_lamports",
			Need:      domain.MIN_LAUNCH_RESERVE_LAMPORTS,
			Have:      curve.ReserveLamports,
		})
	}

	if len(failures) > 0 {
		return &domain.ThresholdError{CurveID: curveID, Failures: failures}
	}
	return nil
}

// RecordInteraction records an accepted direct message toward the sender's
// fee waiver and returns the updated waiver state
func (l *Ledger) RecordInteraction(ctx context.Context, wallet, peerWallet string) (*incentive.HallPassStatus, error) {
	if err := l.store.CreateAcceptedInteraction(ctx, wallet, peerWallet); err != nil {
		return nil, err
	}
	return l.HallPassStatus(ctx, wallet)
}

// HallPassStatus reports a wallet's fee waiver state
func (l *Ledger) HallPassStatus(ctx context.Context, wallet string) (*incentive.HallPassStatus, error) {
	cutoff := l.clock.Now().Add(-incentive.HALL_PASS_WINDOW)
	count, lastAt, err := l.store.CountAcceptedInteractions(ctx, wallet, cutoff)
	if err != nil {
		return nil, err
	}

	if lastAt == nil {
		return &incentive.HallPassStatus{
			Remaining: incentive.HALL_PASS_ACCEPTED_DMS,
		}, nil
	}

	status := l.incentive.HallPass(count, *lastAt)
	return &status, nil
}

// StreakStatus reports a wallet's daily trading streak
func (l *Ledger) StreakStatus(ctx context.Context, wallet string) (*incentive.StreakStatus, error) {
	trades, err := l.store.GetWalletTradeTimes(ctx, wallet, now7DayWindow(l.clock.Now()))
	if err != nil {
		return nil, err
	}
	status := l.incentive.KeyStreak(trades)
	return &status, nil
}

// FlashRewardResult is the outcome of a flash reward trigger
type FlashRewardResult struct {
	Triggered           bool   `json:"triggered"`
	RewardPerEntrant    uint64 `json:"reward_per_entrant_lamports"`
	Entrants            int    `json:"entrants"`
	TotalPayoutLamports uint64 `json:"total_payout_lamports"`
}

// TriggerFlashReward fires the flash reward for a hot room. The reward fires
// at most once per room, a repeat trigger is a no-op reported as not
// triggered.
func (l *Ledger) TriggerFlashReward(ctx context.Context, curveID string, motionScore uint64, entrants []string) (*FlashRewardResult, error) {
	if _, err := l.GetCurve(ctx, curveID); err != nil {
		return nil, err
	}

	decision := l.incentive.FlashReward(motionScore, false)
	if !decision.Trigger {
		return &FlashRewardResult{RewardPerEntrant: decision.RewardPerEntrant}, nil
	}

	now := l.clock.Now().UTC()
	inserted, err := l.store.CreateFlashReward(ctx, &schema.FlashReward{
		CurveID:                  curveID,
		MotionScore:              motionScore,
		Entrants:                 uint64(len(entrants)),
		RewardPerEntrantLamports: decision.RewardPerEntrant,
		CreatedAt:                now,
	})
	if err != nil {
		return nil, err
	}
	if !inserted {
		// The room already burned its trigger
		return &FlashRewardResult{RewardPerEntrant: decision.RewardPerEntrant}, nil
	}

	transfers := l.transfers.FromFlashReward(curveID, entrants, decision.RewardPerEntrant)
	if len(transfers) > 0 {
		if err := l.store.CreateTransfers(ctx, transfers); err != nil {
			return nil, err
		}
	}

	return &FlashRewardResult{
		Triggered:           true,
		RewardPerEntrant:    decision.RewardPerEntrant,
		Entrants:            len(transfers),
		TotalPayoutLamports: decision.RewardPerEntrant * uint64(len(transfers)),
	}, nil
}

// Stats24h summarizes a curve's trailing day of trading
type Stats24h struct {
	VolumeLamports    uint64 `json:"volume_lamports"`
	HolderCount       uint64 `json:"holder_count"`
	SpotLamports      uint64 `json:"spot_lamports"`
	MarketCapLamports uint64 `json:"market_cap_lamports"`
	PriceChangeBps    int64  `json:"price_change_bps"`
}

// Stats computes live 24h stats for a curve
func (l *Ledger) Stats(ctx context.Context, curveID string) (*Stats24h, error) {
	curve, err := l.GetCurve(ctx, curveID)
	if err != nil {
		return nil, err
	}

	cutoff := l.clock.Now().Add(-24 * time.Hour)
	volume, err := l.store.SumTradeVolumeSince(ctx, curveID, cutoff)
	if err != nil {
		return nil, err
	}

	spot, err := pricing.PriceAt(curve.SupplyKeys)
	if err != nil {
		return nil, err
	}
	mcap, err := pricing.MarketCapLamports(curve.SupplyKeys)
	if err != nil {
		return nil, err
	}

	// Baseline for the 24h change is the spot price as of the cutoff. A curve
	// with no events before the cutoff was at the base price back then.
	lastBefore, err := l.store.GetLastEventBefore(ctx, curveID, cutoff)
	if err != nil {
		return nil, err
	}
	baseline, err := pricing.PriceAt(0)
	if err != nil {
		return nil, err
	}
	if lastBefore != nil {
		baseline = lastBefore.PriceAfter
	}

	return &Stats24h{
		VolumeLamports:    volume,
		HolderCount:       curve.HolderCount,
		SpotLamports:      spot,
		MarketCapLamports: mcap,
		PriceChangeBps:    priceChangeBps(baseline, spot),
	}, nil
}

// priceChangeBps returns the signed change from baseline to spot in basis
// points
func priceChangeBps(baseline, spot uint64) int64 {
	if baseline == 0 {
		return 0
	}
	if spot >= baseline {
		return int64((spot - baseline) * 10_000 / baseline)
	}
	return -int64((baseline - spot) * 10_000 / baseline)
}
