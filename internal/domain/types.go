package domain

import (
	"time"
)

// CurveState represents the lifecycle state of a bonding curve
type CurveState string

const (
	CurveStateActive   CurveState = "active"
	CurveStateFrozen   CurveState = "frozen"
	CurveStateLaunched CurveState = "launched"
	CurveStateUtility  CurveState = "utility"
)

// IsValidCurveState checks if a curve state is valid
func IsValidCurveState(state CurveState) bool {
	return state == CurveStateActive ||
		state == CurveStateFrozen ||
		state == CurveStateLaunched ||
		state == CurveStateUtility
}

// CanTransitionTo reports whether the state machine allows moving from s to next.
// Active curves may freeze or become utility curves, frozen curves may launch or
// roll back to active. Launched and utility are terminal.
func (s CurveState) CanTransitionTo(next CurveState) bool {
	switch s {
	case CurveStateActive:
		return next == CurveStateFrozen || next == CurveStateUtility
	case CurveStateFrozen:
		return next == CurveStateLaunched || next == CurveStateActive
	default:
		return false
	}
}

// TradeSide represents the direction of a curve trade
type TradeSide string

const (
	TradeSideBuy  TradeSide = "buy"
	TradeSideSell TradeSide = "sell"
)

// ReferralKind classifies who referred a trade for fee routing purposes
type ReferralKind string

const (
	// ReferralKindUser means another user referred the buyer
	ReferralKindUser ReferralKind = "user"
	// ReferralKindProject means the curve owner referred the trade themselves
	ReferralKindProject ReferralKind = "project"
	// ReferralKindNone means the trade carried no referral
	ReferralKindNone ReferralKind = "none"
)

// EventType represents the type of curve event
type EventType string

const (
	EventTypeBuy      EventType = "buy"
	EventTypeSell     EventType = "sell"
	EventTypeFreeze   EventType = "freeze"
	EventTypeUnfreeze EventType = "unfreeze"
	EventTypeLaunch   EventType = "launch"
	EventTypeUtility  EventType = "utility"
)

// LaunchStep identifies a step of the launch sequence. The persisted cursor on a
// launch attempt records the last step that completed.
type LaunchStep string

const (
	LaunchStepNone          LaunchStep = ""
	LaunchStepFreeze        LaunchStep = "freeze"
	LaunchStepSnapshot      LaunchStep = "snapshot"
	LaunchStepMint          LaunchStep = "mint"
	LaunchStepSeedLiquidity LaunchStep = "seed_liquidity"
	LaunchStepAirdrop       LaunchStep = "airdrop"
	LaunchStepFinalize      LaunchStep = "finalize"
)

// launchStepOrder maps each step to its position in the sequence
var launchStepOrder = map[LaunchStep]int{
	LaunchStepNone:          0,
	LaunchStepFreeze:        1,
	LaunchStepSnapshot:      2,
	LaunchStepMint:          3,
	LaunchStepSeedLiquidity: 4,
	LaunchStepAirdrop:       5,
	LaunchStepFinalize:      6,
}

// Completed reports whether s is already covered by cursor, i.e. the step
// finished in an earlier run and must not be re-executed on resume.
func (s LaunchStep) Completed(cursor LaunchStep) bool {
	return launchStepOrder[s] <= launchStepOrder[cursor]
}

// LaunchAttemptStatus represents the outcome of a launch attempt
type LaunchAttemptStatus string

const (
	LaunchAttemptRunning   LaunchAttemptStatus = "running"
	LaunchAttemptSucceeded LaunchAttemptStatus = "succeeded"
	LaunchAttemptFailed    LaunchAttemptStatus = "failed"
)

// FeeTableVersion identifies which fee schedule was in force for a trade.
// Versions are frozen once published so historical trades replay exactly.
type FeeTableVersion string

const (
	FeeTableVersionLegacy FeeTableVersion = "legacy"
	FeeTableVersionV4     FeeTableVersion = "v4"
	FeeTableVersionV6     FeeTableVersion = "v6"
)

// FeeBreakdown holds the lamport amount routed to each destination for a trade.
// The shares always sum to the gross fee charged on the trade.
type FeeBreakdown struct {
	ReserveLamports   uint64 `json:"reserve_lamports"`
	ReferralLamports  uint64 `json:"referral_lamports"`
	ProjectLamports   uint64 `json:"project_lamports"`
	CommunityLamports uint64 `json:"community_lamports"`
	BuybackLamports   uint64 `json:"buyback_lamports"`
}

// Total returns the sum of all shares
func (b FeeBreakdown) Total() uint64 {
	return b.ReserveLamports + b.ReferralLamports + b.ProjectLamports +
		b.CommunityLamports + b.BuybackLamports
}

// CurveEvent represents a normalized curve event
// This is the standard format published to NATS
type CurveEvent struct {
	EventID         string          `json:"event_id"` // ULID, sortable by emission time
	CurveID         string          `json:"curve_id"`
	EventType       EventType       `json:"event_type"`
	Wallet          *string         `json:"wallet,omitempty"`  // trader wallet (nil for state transitions)
	Keys            uint64          `json:"keys"`              // keys traded (0 for state transitions)
	AmountLamports  uint64          `json:"amount_lamports"`   // gross trade amount
	Fees            *FeeBreakdown   `json:"fees,omitempty"`    // fee routing (trades only)
	FeeTableVersion FeeTableVersion `json:"fee_table_version"` // schedule in force
	ReferrerWallet  *string         `json:"referrer_wallet,omitempty"`
	SupplyAfter     uint64          `json:"supply_after"`
	PriceAfter      uint64          `json:"price_after"` // spot price in lamports after the trade
	Timestamp       time.Time       `json:"timestamp"`
}

func (e *CurveEvent) Valid() bool {
	if e.EventID == "" || e.CurveID == "" {
		return false
	}

	switch e.EventType {
	case EventTypeBuy, EventTypeSell:
		if e.Wallet == nil || *e.Wallet == "" {
			return false
		}
		if e.Keys == 0 || e.AmountLamports == 0 {
			return false
		}
		// Shares always account for the full gross amount, on sells the
		// reserve share is the portion paid out to the seller.
		if e.Fees == nil || e.Fees.Total() != e.AmountLamports {
			return false
		}
	case EventTypeFreeze, EventTypeUnfreeze, EventTypeLaunch, EventTypeUtility:
		if e.Wallet != nil || e.Keys != 0 {
			return false
		}
	default:
		return false
	}

	return true
}

// WalletCap returns the maximum keys a single wallet may hold on a curve with
// the given holder count. The cap widens as the holder base grows so early
// curves stay distributed while large curves allow bigger positions.
func WalletCap(holders uint64, capGrowthBps uint64) uint64 {
	return BASE_WALLET_CAP + holders*capGrowthBps/BPS_DENOMINATOR
}
