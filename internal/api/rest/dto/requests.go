package dto

import (
	"errors"

	"github.com/launchos/curve-engine/internal/domain"
)

// CreateCurveRequest is the body for POST /curves
type CreateCurveRequest struct {
	OwnerWallet     string  `json:"owner_wallet"`
	Name            string  `json:"name"`
	Symbol          string  `json:"symbol"`
	FeeTableVersion *string `json:"fee_table_version,omitempty"`
	CapGrowthBps    *uint64 `json:"cap_growth_bps,omitempty"`
}

// Validate checks required fields
func (r *CreateCurveRequest) Validate() error {
	if r.OwnerWallet == "" {
		return errors.New("owner_wallet is required")
	}
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.Symbol == "" {
		return errors.New("symbol is required")
	}
	return nil
}

// TradeRequest is the body for POST /curves/:id/buy and /curves/:id/sell
type TradeRequest struct {
	Wallet         string  `json:"wallet"`
	Keys           uint64  `json:"keys"`
	ReferrerWallet *string `json:"referrer_wallet,omitempty"`
}

// Validate checks required fields
func (r *TradeRequest) Validate() error {
	if r.Wallet == "" {
		return errors.New("wallet is required")
	}
	if r.Keys == 0 {
		return errors.New("keys must be positive")
	}
	return nil
}

// QuoteRequest is the body for POST /curves/:id/quote
type QuoteRequest struct {
	Side           string  `json:"side"`
	Keys           uint64  `json:"keys"`
	ReferrerWallet *string `json:"referrer_wallet,omitempty"`
}

// Validate checks required fields
func (r *QuoteRequest) Validate() error {
	side := domain.TradeSide(r.Side)
	if side != domain.TradeSideBuy && side != domain.TradeSideSell {
		return errors.New("side must be buy or sell")
	}
	if r.Keys == 0 {
		return errors.New("keys must be positive")
	}
	return nil
}

// InteractionRequest is the body for POST /wallets/:wallet/interactions
type InteractionRequest struct {
	PeerWallet string `json:"peer_wallet"`
}

// Validate checks required fields
func (r *InteractionRequest) Validate() error {
	if r.PeerWallet == "" {
		return errors.New("peer_wallet is required")
	}
	return nil
}

// FlashTriggerRequest is the body for POST /curves/:id/flash-reward
type FlashTriggerRequest struct {
	MotionScore uint64   `json:"motion_score"`
	Entrants    []string `json:"entrants"`
}

// Validate checks required fields
func (r *FlashTriggerRequest) Validate() error {
	if len(r.Entrants) == 0 {
		return errors.New("entrants is required")
	}
	return nil
}
