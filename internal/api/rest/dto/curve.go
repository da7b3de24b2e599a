package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/launchos/curve-engine/internal/domain"
	"github.com/launchos/curve-engine/internal/ledger"
	"github.com/launchos/curve-engine/internal/store/schema"
)

// LamportsToSOL renders a lamport amount as a decimal SOL string
func LamportsToSOL(lamports uint64) string {
	return decimal.NewFromUint64(lamports).Shift(-9).String()
}

// CurveResponse represents a bonding curve
type CurveResponse struct {
	ID                string     `json:"id"`
	OwnerWallet       string     `json:"owner_wallet"`
	Name              string     `json:"name"`
	Symbol            string     `json:"symbol"`
	State             string     `json:"state"`
	SupplyKeys        uint64     `json:"supply_keys"`
	ReserveLamports   uint64     `json:"reserve_lamports"`
	ReserveSOL        string     `json:"reserve_sol"`
	HolderCount       uint64     `json:"holder_count"`
	Volume24hLamports uint64     `json:"volume_24h_lamports"`
	FeeTableVersion   string     `json:"fee_table_version"`
	CapGrowthBps      uint64     `json:"cap_growth_bps"`
	Version           uint64     `json:"version"`
	TokenMint         *string    `json:"token_mint,omitempty"`
	FrozenAt          *time.Time `json:"frozen_at,omitempty"`
	LaunchedAt        *time.Time `json:"launched_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// CurveListResponse represents a paginated list of curves
type CurveListResponse struct {
	Curves []CurveResponse `json:"items"`
	Offset *int            `json:"offset,omitempty"`
}

// TradeResponse represents an executed buy or sell
type TradeResponse struct {
	EventID             string              `json:"event_id"`
	CurveID             string              `json:"curve_id"`
	Side                string              `json:"side"`
	Wallet              string              `json:"wallet"`
	Keys                uint64              `json:"keys"`
	AmountLamports      uint64              `json:"amount_lamports"`
	AmountSOL           string              `json:"amount_sol"`
	Fees                domain.FeeBreakdown `json:"fees"`
	PriceImpactBps      uint64              `json:"price_impact_bps"`
	SupplyAfter         uint64              `json:"supply_after"`
	PriceAfterLamports  uint64              `json:"price_after_lamports"`
	ReferrerWallet      *string             `json:"referrer_wallet,omitempty"`
	HallPassUsed        bool                `json:"hall_pass_used"`
	StreakBonusLamports uint64              `json:"streak_bonus_lamports,omitempty"`
	Timestamp           time.Time           `json:"timestamp"`
}

// QuoteResponse represents a priced but unexecuted trade
type QuoteResponse struct {
	Side           string              `json:"side"`
	Keys           uint64              `json:"keys"`
	AmountLamports uint64              `json:"amount_lamports"`
	AmountSOL      string              `json:"amount_sol"`
	Fees           domain.FeeBreakdown `json:"fees"`
	PriceImpactBps uint64              `json:"price_impact_bps"`
	SpotLamports   uint64              `json:"spot_lamports"`
	SpotSOL        string              `json:"spot_sol"`
}

// HolderResponse represents a wallet's position on a curve
type HolderResponse struct {
	Wallet                string    `json:"wallet"`
	Keys                  uint64    `json:"keys"`
	AvgPriceLamports      uint64    `json:"avg_price_lamports"`
	TotalInvestedLamports uint64    `json:"total_invested_lamports"`
	RealizedPnlLamports   int64     `json:"realized_pnl_lamports"`
	FirstBuyAt            time.Time `json:"first_buy_at"`
	LastTradeAt           time.Time `json:"last_trade_at"`
}

// HolderListResponse represents the holders of a curve
type HolderListResponse struct {
	Holders []HolderResponse `json:"items"`
}

// EventResponse represents an entry in the curve event log
type EventResponse struct {
	ID                 string          `json:"id"`
	EventType          string          `json:"event_type"`
	Wallet             *string         `json:"wallet,omitempty"`
	Keys               uint64          `json:"keys"`
	AmountLamports     uint64          `json:"amount_lamports"`
	Fees               json.RawMessage `json:"fees,omitempty"`
	FeeTableVersion    string          `json:"fee_table_version"`
	ReferrerWallet     *string         `json:"referrer_wallet,omitempty"`
	SupplyAfter        uint64          `json:"supply_after"`
	PriceAfterLamports uint64          `json:"price_after_lamports"`
	CreatedAt          time.Time       `json:"created_at"`
}

// EventListResponse represents a paginated list of curve events
type EventListResponse struct {
	Events []EventResponse `json:"items"`
	Offset *int            `json:"offset,omitempty"`
}

// LaunchAttemptResponse represents a launch attempt
type LaunchAttemptResponse struct {
	ID              string    `json:"id"`
	CurveID         string    `json:"curve_id"`
	WorkflowID      string    `json:"workflow_id"`
	Status          string    `json:"status"`
	StepCursor      string    `json:"step_cursor"`
	FailedStep      *string   `json:"failed_step,omitempty"`
	ErrorMessage    *string   `json:"error_message,omitempty"`
	TokenMint       *string   `json:"token_mint,omitempty"`
	LiquidityRef    *string   `json:"liquidity_ref,omitempty"`
	DistributionRef *string   `json:"distribution_ref,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SnapshotResponse represents an immutable launch snapshot
type SnapshotResponse struct {
	ID              string          `json:"id"`
	CurveID         string          `json:"curve_id"`
	AttemptID       string          `json:"attempt_id"`
	SupplyKeys      uint64          `json:"supply_keys"`
	ReserveLamports uint64          `json:"reserve_lamports"`
	ReserveSOL      string          `json:"reserve_sol"`
	Holders         json.RawMessage `json:"holders"`
	Checksum        string          `json:"checksum"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TriggerLaunchResponse represents an accepted launch trigger
type TriggerLaunchResponse struct {
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`
}

// StatsResponse represents live 24h curve stats
type StatsResponse struct {
	VolumeLamports    uint64 `json:"volume_lamports"`
	VolumeSOL         string `json:"volume_sol"`
	HolderCount       uint64 `json:"holder_count"`
	SpotLamports      uint64 `json:"spot_lamports"`
	SpotSOL           string `json:"spot_sol"`
	MarketCapLamports uint64 `json:"market_cap_lamports"`
	MarketCapSOL      string `json:"market_cap_sol"`
	PriceChangeBps    int64  `json:"price_change_bps"`
}

// MapCurveToDTO maps a schema.Curve to CurveResponse
func MapCurveToDTO(curve *schema.Curve) *CurveResponse {
	return &CurveResponse{
		ID:                curve.ID,
		OwnerWallet:       curve.OwnerWallet,
		Name:              curve.Name,
		Symbol:            curve.Symbol,
		State:             string(curve.State),
		SupplyKeys:        curve.SupplyKeys,
		ReserveLamports:   curve.ReserveLamports,
		ReserveSOL:        LamportsToSOL(curve.ReserveLamports),
		HolderCount:       curve.HolderCount,
		Volume24hLamports: curve.Volume24hLamports,
		FeeTableVersion:   curve.FeeTableVersion,
		CapGrowthBps:      curve.CapGrowthBps,
		Version:           curve.Version,
		TokenMint:         curve.TokenMint,
		FrozenAt:          curve.FrozenAt,
		LaunchedAt:        curve.LaunchedAt,
		CreatedAt:         curve.CreatedAt,
		UpdatedAt:         curve.UpdatedAt,
	}
}

// MapTradeToDTO maps an executed trade to TradeResponse
func MapTradeToDTO(result *ledger.TradeResult) *TradeResponse {
	event := result.Event

	wallet := ""
	if event.Wallet != nil {
		wallet = *event.Wallet
	}

	return &TradeResponse{
		EventID:             event.EventID,
		CurveID:             event.CurveID,
		Side:                string(event.EventType),
		Wallet:              wallet,
		Keys:                event.Keys,
		AmountLamports:      event.AmountLamports,
		AmountSOL:           LamportsToSOL(event.AmountLamports),
		Fees:                result.Fees,
		PriceImpactBps:      result.PriceImpactBps,
		SupplyAfter:         event.SupplyAfter,
		PriceAfterLamports:  event.PriceAfter,
		ReferrerWallet:      event.ReferrerWallet,
		HallPassUsed:        result.HallPassUsed,
		StreakBonusLamports: result.StreakBonus,
		Timestamp:           event.Timestamp,
	}
}

// MapQuoteToDTO maps a ledger.Quote to QuoteResponse
func MapQuoteToDTO(quote *ledger.Quote) *QuoteResponse {
	return &QuoteResponse{
		Side:           string(quote.Side),
		Keys:           quote.Keys,
		AmountLamports: quote.AmountLamports,
		AmountSOL:      LamportsToSOL(quote.AmountLamports),
		Fees:           quote.Fees,
		PriceImpactBps: quote.PriceImpactBps,
		SpotLamports:   quote.SpotLamports,
		SpotSOL:        LamportsToSOL(quote.SpotLamports),
	}
}

// MapHolderToDTO maps a schema.CurveHolder to HolderResponse
func MapHolderToDTO(holder *schema.CurveHolder) *HolderResponse {
	return &HolderResponse{
		Wallet:                holder.Wallet,
		Keys:                  holder.Keys,
		AvgPriceLamports:      holder.AvgPriceLamports,
		TotalInvestedLamports: holder.TotalInvestedLamports,
		RealizedPnlLamports:   holder.RealizedPnlLamports,
		FirstBuyAt:            holder.FirstBuyAt,
		LastTradeAt:           holder.LastTradeAt,
	}
}

// MapEventToDTO maps a schema.CurveEvent to EventResponse
func MapEventToDTO(event *schema.CurveEvent) *EventResponse {
	return &EventResponse{
		ID:                 event.ID,
		EventType:          event.EventType,
		Wallet:             event.Wallet,
		Keys:               event.Keys,
		AmountLamports:     event.AmountLamports,
		Fees:               json.RawMessage(event.Fees),
		FeeTableVersion:    event.FeeTableVersion,
		ReferrerWallet:     event.ReferrerWallet,
		SupplyAfter:        event.SupplyAfter,
		PriceAfterLamports: event.PriceAfter,
		CreatedAt:          event.CreatedAt,
	}
}

// MapAttemptToDTO maps a schema.LaunchAttempt to LaunchAttemptResponse
func MapAttemptToDTO(attempt *schema.LaunchAttempt) *LaunchAttemptResponse {
	return &LaunchAttemptResponse{
		ID:              attempt.ID,
		CurveID:         attempt.CurveID,
		WorkflowID:      attempt.WorkflowID,
		Status:          string(attempt.Status),
		StepCursor:      attempt.StepCursor,
		FailedStep:      attempt.FailedStep,
		ErrorMessage:    attempt.ErrorMessage,
		TokenMint:       attempt.TokenMint,
		LiquidityRef:    attempt.LiquidityRef,
		DistributionRef: attempt.DistributionRef,
		CreatedAt:       attempt.CreatedAt,
		UpdatedAt:       attempt.UpdatedAt,
	}
}

// MapSnapshotToDTO maps a schema.CurveSnapshot to SnapshotResponse
func MapSnapshotToDTO(snapshot *schema.CurveSnapshot) *SnapshotResponse {
	return &SnapshotResponse{
		ID:              snapshot.ID,
		CurveID:         snapshot.CurveID,
		AttemptID:       snapshot.AttemptID,
		SupplyKeys:      snapshot.SupplyKeys,
		ReserveLamports: snapshot.ReserveLamports,
		ReserveSOL:      LamportsToSOL(snapshot.ReserveLamports),
		Holders:         json.RawMessage(snapshot.Holders),
		Checksum:        snapshot.Checksum,
		CreatedAt:       snapshot.CreatedAt,
	}
}

// MapStatsToDTO maps ledger stats to StatsResponse
func MapStatsToDTO(stats *ledger.Stats24h) *StatsResponse {
	return &StatsResponse{
		VolumeLamports:    stats.VolumeLamports,
		VolumeSOL:         LamportsToSOL(stats.VolumeLamports),
		HolderCount:       stats.HolderCount,
		SpotLamports:      stats.SpotLamports,
		SpotSOL:           LamportsToSOL(stats.SpotLamports),
		MarketCapLamports: stats.MarketCapLamports,
		MarketCapSOL:      LamportsToSOL(stats.MarketCapLamports),
		PriceChangeBps:    stats.PriceChangeBps,
	}
}
