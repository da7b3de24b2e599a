// Package transfer turns fee breakdowns into persisted payout instructions.
// Instructions are rows an external payer signs and broadcasts, the engine
// never touches keys.
package transfer

import (
	"github.com/launchos/curve-engine/internal/domain"
	"github.com/launchos/curve-engine/internal/store/schema"
)

// Destinations holds the platform wallets payouts route to
type Destinations struct {
	// CommunityWallet receives the community rewards share
	CommunityWallet string
	// BuybackWallet funds buyback and burn
	BuybackWallet string
}

// Builder constructs transfer instructions from trade fee breakdowns
type Builder struct {
	dest Destinations
}

// NewBuilder creates a transfer instruction builder
func NewBuilder(dest Destinations) *Builder {
	return &Builder{dest: dest}
}

// TradeContext carries the wallets involved in a trade
type TradeContext struct {
	CurveID        string
	EventID        string
	Side           domain.TradeSide
	TraderWallet   string
	OwnerWallet    string
	ReferrerWallet *string
}

// FromTrade builds the payout instructions for a trade's fee breakdown.
// On buys the reserve share stays in the curve reserve and the remaining
// shares pay out of the buyer's gross. On sells only the reserve share leaves
// the reserve, as the seller's payout; the fee shares are withheld from the
// seller's gross and move no lamports. Zero shares produce no instruction.
func (b *Builder) FromTrade(fees domain.FeeBreakdown, tc TradeContext) []schema.TransferInstruction {
	eventID := tc.EventID
	var out []schema.TransferInstruction

	add := func(kind schema.TransferKind, destination string, lamports uint64) {
		if lamports == 0 || destination == "" {
			return
		}
		out = append(out, schema.TransferInstruction{
			EventID:     &eventID,
			CurveID:     tc.CurveID,
			Kind:        kind,
			Destination: destination,
			Lamports:    lamports,
			Status:      schema.TransferStatusPending,
		})
	}

	if tc.Side == domain.TradeSideSell {
		add(schema.TransferKindSellerPayout, tc.TraderWallet, fees.ReserveLamports)
		return out
	}

	if tc.ReferrerWallet != nil {
		add(schema.TransferKindReferral, *tc.ReferrerWallet, fees.ReferralLamports)
	}
	add(schema.TransferKindProject, tc.OwnerWallet, fees.ProjectLamports)
	add(schema.TransferKindCommunity, b.dest.CommunityWallet, fees.CommunityLamports)
	add(schema.TransferKindBuyback, b.dest.BuybackWallet, fees.BuybackLamports)

	return out
}

// FromFlashReward builds one reward instruction per room entrant
func (b *Builder) FromFlashReward(curveID string, entrants []string, perEntrantLamports uint64) []schema.TransferInstruction {
	out := make([]schema.TransferInstruction, 0, len(entrants))
	for _, wallet := range entrants {
		if wallet == "" {
			continue
		}
		out = append(out, schema.TransferInstruction{
			CurveID:     curveID,
			Kind:        schema.TransferKindFlashReward,
			Destination: wallet,
			Lamports:    perEntrantLamports,
			Status:      schema.TransferStatusPending,
		})
	}
	return out
}
