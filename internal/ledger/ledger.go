// Package ledger is the write path of the curve engine. It prices trades,
// splits fees, enforces the wallet cap and the state machine, and persists
// every mutation together with its append-only event. Trades on the same curve
// serialize on a per-curve mutex, concurrent writers from other processes are
// caught by the store's optimistic version check and retried.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/launchos/curve-engine/internal/adapter"
	"github.com/launchos/curve-engine/internal/domain"
	"github.com/launchos/curve-engine/internal/fees"
	"github.com/launchos/curve-engine/internal/incentive"
	"github.com/launchos/curve-engine/internal/logger"
	"github.com/launchos/curve-engine/internal/messaging"
	"github.com/launchos/curve-engine/internal/pricing"
	"github.com/launchos/curve-engine/internal/store"
	"github.com/launchos/curve-engine/internal/store/schema"
	"github.com/launchos/curve-engine/internal/transfer"
)

const (
	// versionConflictRetries bounds optimistic retry attempts per trade
	versionConflictRetries = 3
)

// Ledger coordinates curve mutations
type Ledger struct {
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	incentive *incentive.Engine
	transfers *transfer.Builder

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a ledger
func New(st store.Store, publisher messaging.Publisher, clock adapter.Clock, builder *transfer.Builder) *Ledger {
	return &Ledger{
		store:     st,
		publisher: publisher,
		clock:     clock,
		incentive: incentive.NewEngine(clock),
		transfers: builder,
		locks:     make(map[string]*sync.Mutex),
	}
}

// curveLock returns the mutex serializing writes to one curve
func (l *Ledger) curveLock(curveID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[curveID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[curveID] = lock
	}
	return lock
}

// retryOnConflict runs op, retrying a bounded number of times when another
// writer won the optimistic version race
func retryOnConflict(ctx context.Context, op func() error) error {
	wrapped := func() error {
		err := op()
		if err != nil && !errors.Is(err, domain.ErrVersionConflict) {
			return backoff.Permanent(err)
		}
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond
	b.MaxInterval = 200 * time.Millisecond

	return backoff.Retry(wrapped, backoff.WithContext(backoff.WithMaxRetries(b, versionConflictRetries), ctx))
}

// CreateCurve creates a new active curve for a creator
func (l *Ledger) CreateCurve(ctx context.Context, input store.CreateCurveInput) (*schema.Curve, error) {
	if input.OwnerWallet == "" || input.Name == "" || input.Symbol == "" {
		return nil, fmt.Errorf("owner wallet, name and symbol are required")
	}
	if input.FeeTableVersion == "" {
		input.FeeTableVersion = fees.Current().Version
	}
	if _, err := fees.ForVersion(input.FeeTableVersion); err != nil {
		return nil, err
	}
	if input.CapGrowthBps == 0 {
		input.CapGrowthBps = domain.DEFAULT_CAP_GROWTH_BPS
	}

	return l.store.CreateCurve(ctx, input)
}

// GetCurve retrieves a curve
func (l *Ledger) GetCurve(ctx context.Context, curveID string) (*schema.Curve, error) {
	curve, err := l.store.GetCurveByID(ctx, curveID)
	if err != nil {
		return nil, err
	}
	if curve == nil {
		return nil, domain.ErrCurveNotFound
	}
	return curve, nil
}

// TradeInput describes a buy or sell order
type TradeInput struct {
	CurveID        string
	Wallet         string
	Keys           uint64
	ReferrerWallet *string // buys only
}

// TradeResult is the outcome of an executed trade
type TradeResult struct {
	Event          *domain.CurveEvent
	Fees           domain.FeeBreakdown
	PriceImpactBps uint64
	HallPassUsed   bool
	StreakBonus    uint64 // extra lamports paid on top of the base sell payout
}

// Buy purchases keys on an active curve
func (l *Ledger) Buy(ctx context.Context, input TradeInput) (*TradeResult, error) {
	lock := l.curveLock(input.CurveID)
	lock.Lock()
	defer lock.Unlock()

	var result *TradeResult
	err := retryOnConflict(ctx, func() error {
		var err error
		result, err = l.buyOnce(ctx, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	l.publish(ctx, result.Event)
	return result, nil
}

func (l *Ledger) buyOnce(ctx context.Context, input TradeInput) (*TradeResult, error) {
	if input.Keys == 0 {
		return nil, domain.ErrZeroKeys
	}
	if input.Keys > domain.DEFAULT_MAX_KEYS_PER_BUY {
		return nil, domain.ErrBuyTooLarge
	}

	curve, err := l.GetCurve(ctx, input.CurveID)
	if err != nil {
		return nil, err
	}
	if curve.State != schema.CurveStateActive {
		return nil, domain.ErrCurveNotActive
	}

	kind, err := referralKind(input.Wallet, input.ReferrerWallet, curve.OwnerWallet)
	if err != nil {
		return nil, err
	}

	cost, err := pricing.BuyCost(curve.SupplyKeys, input.Keys)
	if err != nil {
		return nil, err
	}

	holder, err := l.store.GetHolder(ctx, input.CurveID, input.Wallet)
	if err != nil {
		return nil, err
	}

	var held uint64
	if holder != nil {
		held = holder.Keys
	}

	walletCap := domain.WalletCap(curve.HolderCount, curve.CapGrowthBps)
	if held+input.Keys > walletCap {
		return nil, &domain.CapExceededError{
			Wallet:    input.Wallet,
			Cap:       walletCap,
			Held:      held,
			Requested: input.Keys,
		}
	}

	hallPass, err := l.hallPassActive(ctx, input.Wallet)
	if err != nil {
		return nil, err
	}

	var breakdown domain.FeeBreakdown
	if hallPass {
		breakdown = fees.WaiveNonReserve(cost)
	} else {
		table, err := fees.ForVersion(domain.FeeTableVersion(curve.FeeTableVersion))
		if err != nil {
			return nil, err
		}
		breakdown = table.Split(cost, kind)
	}

	newSupply := curve.SupplyKeys + input.Keys
	newReserve, err := checkedReserveAdd(curve.ReserveLamports, breakdown.ReserveLamports)
	if err != nil {
		return nil, err
	}

	priceAfter, err := pricing.PriceAt(newSupply)
	if err != nil {
		return nil, err
	}
	impact, err := pricing.PriceImpactBps(curve.SupplyKeys, input.Keys)
	if err != nil {
		return nil, err
	}

	now := l.clock.Now().UTC()
	update := buyHolderUpdate(holder, input.Wallet, input.Keys, cost, now)

	newHolderCount := curve.HolderCount
	if held == 0 {
		newHolderCount++
	}

	event := &domain.CurveEvent{
		EventID:         ulid.Make().String(),
		CurveID:         curve.ID,
		EventType:       domain.EventTypeBuy,
		Wallet:          &input.Wallet,
		Keys:            input.Keys,
		AmountLamports:  cost,
		Fees:            &breakdown,
		FeeTableVersion: domain.FeeTableVersion(curve.FeeTableVersion),
		ReferrerWallet:  input.ReferrerWallet,
		SupplyAfter:     newSupply,
		PriceAfter:      priceAfter,
		Timestamp:       now,
	}

	row, err := eventRow(event)
	if err != nil {
		return nil, err
	}

	transfers := l.transfers.FromTrade(breakdown, transfer.TradeContext{
		CurveID:        curve.ID,
		EventID:        event.EventID,
		Side:           domain.TradeSideBuy,
		TraderWallet:   input.Wallet,
		OwnerWallet:    curve.OwnerWallet,
		ReferrerWallet: input.ReferrerWallet,
	})

	err = l.store.ApplyTrade(ctx, store.ApplyTradeInput{
		CurveID:         curve.ID,
		ExpectedVersion: curve.Version,
		NewSupply:       newSupply,
		NewReserve:      newReserve,
		NewHolderCount:  newHolderCount,
		Holder:          update,
		Event:           row,
		Transfers:       transfers,
	})
	if err != nil {
		return nil, err
	}

	return &TradeResult{
		Event:          event,
		Fees:           breakdown,
		PriceImpactBps: impact,
		HallPassUsed:   hallPass,
	}, nil
}

// Sell sells keys back to an active curve
func (l *Ledger) Sell(ctx context.Context, input TradeInput) (*TradeResult, error) {
	lock := l.curveLock(input.CurveID)
	lock.Lock()
	defer lock.Unlock()

	var result *TradeResult
	err := retryOnConflict(ctx, func() error {
		var err error
		result, err = l.sellOnce(ctx, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	l.publish(ctx, result.Event)
	return result, nil
}

func (l *Ledger) sellOnce(ctx context.Context, input TradeInput) (*TradeResult, error) {
	if input.Keys == 0 {
		return nil, domain.ErrZeroKeys
	}

	curve, err := l.GetCurve(ctx, input.CurveID)
	if err != nil {
		return nil, err
	}
	if curve.State != schema.CurveStateActive {
		return nil, domain.ErrCurveNotActive
	}
	if input.Keys > curve.SupplyKeys {
		return nil, domain.ErrSupplyUnderflow
	}

	holder, err := l.store.GetHolder(ctx, input.CurveID, input.Wallet)
	if err != nil {
		return nil, err
	}
	if holder == nil || holder.Keys < input.Keys {
		return nil, domain.ErrInsufficientKeys
	}

	gross, err := pricing.SellGross(curve.SupplyKeys, input.Keys)
	if err != nil {
		return nil, err
	}

	hallPass, err := l.hallPassActive(ctx, input.Wallet)
	if err != nil {
		return nil, err
	}

	var breakdown domain.FeeBreakdown
	if hallPass {
		breakdown = fees.WaiveNonReserve(gross)
	} else {
		table, err := fees.ForVersion(domain.FeeTableVersion(curve.FeeTableVersion))
		if err != nil {
			return nil, err
		}
		// Sells carry no referral context
		breakdown = table.Split(gross, domain.ReferralKindNone)
	}

	// A live 7-day streak boosts the seller payout, funded by the reserve
	var bonus uint64
	streakWindow := now7DayWindow(l.clock.Now())
	trades, err := l.store.GetWalletTradeTimes(ctx, input.Wallet, streakWindow)
	if err != nil {
		return nil, err
	}
	if streak := l.incentive.KeyStreak(trades); streak.BonusEligible {
		bonus = incentive.StreakBonus(breakdown.ReserveLamports) - breakdown.ReserveLamports
		breakdown.ReserveLamports += bonus
	}

	// The seller nets the reserve share of the gross. The fee shares are
	// withheld from the seller's gross, not paid out of the reserve, so the
	// reserve debit mirrors what the matching buys credited.
	amount := gross + bonus
	payout := breakdown.ReserveLamports
	if payout > curve.ReserveLamports {
		return nil, fmt.Errorf("%w: curve %s reserve %d, payout %d",
			domain.ErrInsufficientReserve, curve.ID, curve.ReserveLamports, payout)
	}
	newReserve := curve.ReserveLamports - payout

	newSupply := curve.SupplyKeys - input.Keys
	priceAfter, err := pricing.PriceAt(newSupply)
	if err != nil {
		return nil, err
	}

	now := l.clock.Now().UTC()
	update := sellHolderUpdate(holder, input.Keys, breakdown.ReserveLamports, now)

	newHolderCount := curve.HolderCount
	if update.Keys == 0 {
		newHolderCount--
	}

	event := &domain.CurveEvent{
		EventID:         ulid.Make().String(),
		CurveID:         curve.ID,
		EventType:       domain.EventTypeSell,
		Wallet:          &input.Wallet,
		Keys:            input.Keys,
		AmountLamports:  amount,
		Fees:            &breakdown,
		FeeTableVersion: domain.FeeTableVersion(curve.FeeTableVersion),
		SupplyAfter:     newSupply,
		PriceAfter:      priceAfter,
		Timestamp:       now,
	}

	row, err := eventRow(event)
	if err != nil {
		return nil, err
	}

	transfers := l.transfers.FromTrade(breakdown, transfer.TradeContext{
		CurveID:      curve.ID,
		EventID:      event.EventID,
		Side:         domain.TradeSideSell,
		TraderWallet: input.Wallet,
		OwnerWallet:  curve.OwnerWallet,
	})

	err = l.store.ApplyTrade(ctx, store.ApplyTradeInput{
		CurveID:         curve.ID,
		ExpectedVersion: curve.Version,
		NewSupply:       newSupply,
		NewReserve:      newReserve,
		NewHolderCount:  newHolderCount,
		Holder:          update,
		Event:           row,
		Transfers:       transfers,
	})
	if err != nil {
		return nil, err
	}

	return &TradeResult{
		Event:        event,
		Fees:         breakdown,
		HallPassUsed: hallPass,
		StreakBonus:  bonus,
	}, nil
}

// Quote prices a trade without executing it
type Quote struct {
	Side           domain.TradeSide    `json:"side"`
	Keys           uint64              `json:"keys"`
	AmountLamports uint64              `json:"amount_lamports"`
	Fees           domain.FeeBreakdown `json:"fees"`
	PriceImpactBps uint64              `json:"price_impact_bps"`
	SpotLamports   uint64              `json:"spot_lamports"`
}

// QuoteTrade computes the cost or proceeds, fee routing and price impact of a
// hypothetical trade
func (l *Ledger) QuoteTrade(ctx context.Context, curveID string, side domain.TradeSide, keys uint64, referrer *string) (*Quote, error) {
	if keys == 0 {
		return nil, domain.ErrZeroKeys
	}

	curve, err := l.GetCurve(ctx, curveID)
	if err != nil {
		return nil, err
	}

	table, err := fees.ForVersion(domain.FeeTableVersion(curve.FeeTableVersion))
	if err != nil {
		return nil, err
	}

	spot, err := pricing.PriceAt(curve.SupplyKeys)
	if err != nil {
		return nil, err
	}

	quote := &Quote{Side: side, Keys: keys, SpotLamports: spot}

	switch side {
	case domain.TradeSideBuy:
		kind := domain.ReferralKindNone
		if referrer != nil {
			kind, err = referralKind("", referrer, curve.OwnerWallet)
			if err != nil {
				return nil, err
			}
		}
		quote.AmountLamports, err = pricing.BuyCost(curve.SupplyKeys, keys)
		if err != nil {
			return nil, err
		}
		quote.PriceImpactBps, err = pricing.PriceImpactBps(curve.SupplyKeys, keys)
		if err != nil {
			return nil, err
		}
		quote.Fees = table.Split(quote.AmountLamports, kind)
	case domain.TradeSideSell:
		if keys > curve.SupplyKeys {
			return nil, domain.ErrSupplyUnderflow
		}
		quote.AmountLamports, err = pricing.SellGross(curve.SupplyKeys, keys)
		if err != nil {
			return nil, err
		}
		quote.Fees = table.Split(quote.AmountLamports, domain.ReferralKindNone)
	default:
		return nil, fmt.Errorf("unknown trade side %q", side)
	}

	return quote, nil
}

// referralKind validates the referrer and classifies the referral context.
// A buyer naming themselves is rejected, the curve owner referring a trade on
// their own curve routes as a self referral.
func referralKind(buyer string, referrer *string, owner string) (domain.ReferralKind, error) {
	if referrer == nil || *referrer == "" {
		return domain.ReferralKindNone, nil
	}
	if buyer != "" && *referrer == buyer {
		return "", domain.ErrSelfReferral
	}
	if *referrer == owner {
		return domain.ReferralKindProject, nil
	}
	return domain.ReferralKindUser, nil
}

// buyHolderUpdate folds a buy into the wallet's aggregates
func buyHolderUpdate(holder *schema.CurveHolder, wallet string, keys, cost uint64, now time.Time) store.HolderUpdate {
	if holder == nil {
		return store.HolderUpdate{
			Wallet:                wallet,
			Keys:                  keys,
			AvgPriceLamports:      cost / keys,
			TotalInvestedLamports: cost,
			FirstBuyAt:            now,
			LastTradeAt:           now,
		}
	}

	newKeys := holder.Keys + keys
	return store.HolderUpdate{
		Wallet: wallet,
		Keys:   newKeys,
		// Weighted average cost basis across the old position and this buy
		AvgPriceLamports:      (holder.AvgPriceLamports*holder.Keys + cost) / newKeys,
		TotalInvestedLamports: holder.TotalInvestedLamports + cost,
		RealizedPnlLamports:   holder.RealizedPnlLamports,
		FirstBuyAt:            holder.FirstBuyAt,
		LastTradeAt:           now,
	}
}

// sellHolderUpdate folds a sell into the wallet's aggregates. PnL realizes
// against the weighted average cost basis, the basis itself is unchanged on
// partial exits.
func sellHolderUpdate(holder *schema.CurveHolder, keys, payout uint64, now time.Time) store.HolderUpdate {
	costBasis := holder.AvgPriceLamports * keys
	return store.HolderUpdate{
		Wallet:                holder.Wallet,
		Keys:                  holder.Keys - keys,
		AvgPriceLamports:      holder.AvgPriceLamports,
		TotalInvestedLamports: holder.TotalInvestedLamports,
		RealizedPnlLamports:   holder.RealizedPnlLamports + int64(payout) - int64(costBasis),
		FirstBuyAt:            holder.FirstBuyAt,
		LastTradeAt:           now,
	}
}

// hallPassActive checks whether the wallet holds a live fee waiver
func (l *Ledger) hallPassActive(ctx context.Context, wallet string) (bool, error) {
	cutoff := l.clock.Now().Add(-incentive.HALL_PASS_WINDOW)
	count, lastAt, err := l.store.CountAcceptedInteractions(ctx, wallet, cutoff)
	if err != nil {
		return false, err
	}
	if lastAt == nil {
		return false, nil
	}
	return l.incentive.HallPass(count, *lastAt).Active, nil
}

// publish emits the event to the broker. Publish failures are logged, the
// trade already committed.
func (l *Ledger) publish(ctx context.Context, event *domain.CurveEvent) {
	if l.publisher == nil {
		return
	}
	if err := l.publisher.PublishEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("curve_id", event.CurveID),
			zap.String("event_id", event.EventID),
			zap.String("event_type", string(event.EventType)))
	}
}

// eventRow converts a domain event into its persisted form
func eventRow(event *domain.CurveEvent) (*schema.CurveEvent, error) {
	if !event.Valid() {
		return nil, fmt.Errorf("refusing to persist invalid event %s", event.EventID)
	}

	row := &schema.CurveEvent{
		ID:              event.EventID,
		CurveID:         event.CurveID,
		EventType:       string(event.EventType),
		Wallet:          event.Wallet,
		Keys:            event.Keys,
		AmountLamports:  event.AmountLamports,
		FeeTableVersion: string(event.FeeTableVersion),
		ReferrerWallet:  event.ReferrerWallet,
		SupplyAfter:     event.SupplyAfter,
		PriceAfter:      event.PriceAfter,
		CreatedAt:       event.Timestamp,
	}

	if event.Fees != nil {
		data, err := json.Marshal(event.Fees)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal fee breakdown: %w", err)
		}
		row.Fees = datatypes.JSON(data)
	}

	return row, nil
}

func checkedReserveAdd(reserve, amount uint64) (uint64, error) {
	sum := reserve + amount
	if sum < reserve {
		return 0, domain.ErrAmountOverflow
	}
	return sum, nil
}

// now7DayWindow is the cutoff for streak evaluation, one day of slack past the
// 7 streak days so a streak broken yesterday is still visible as broken
func now7DayWindow(now time.Time) time.Time {
	return now.Add(-(incentive.STREAK_DAYS + 1) * 24 * time.Hour)
}
