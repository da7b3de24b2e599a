// Package fees implements versioned fee schedules for curve trades. Every
// trade records the schedule version in force so historical trades replay to
// the exact same lamport routing. Published tables are frozen, changes ship as
// a new version.
package fees

import (
	"fmt"

	"github.com/launchos/curve-engine/internal/domain"
)

// routing holds the flexible share of a table for one referral context, in
// basis points of the gross amount.
type routing struct {
	ReferralBps  uint64
	ProjectBps   uint64
	CommunityBps uint64
}

// Table is a fee schedule. ReserveBps and BuybackBps apply to every trade,
// the rest of the fee routes by referral context. On sells the reserve share
// is the portion paid out to the seller.
type Table struct {
	Version    domain.FeeTableVersion
	ReserveBps uint64
	BuybackBps uint64
	routing    map[domain.ReferralKind]routing
}

var tables = map[domain.FeeTableVersion]*Table{
	// Original schedule, before the referral program existed.
	domain.FeeTableVersionLegacy: {
		Version:    domain.FeeTableVersionLegacy,
		ReserveBps: 9400,
		BuybackBps: 100,
		routing: map[domain.ReferralKind]routing{
			domain.ReferralKindUser:    {ReferralBps: 0, ProjectBps: 300, CommunityBps: 200},
			domain.ReferralKindProject: {ReferralBps: 0, ProjectBps: 300, CommunityBps: 200},
			domain.ReferralKindNone:    {ReferralBps: 0, ProjectBps: 300, CommunityBps: 200},
		},
	},
	// Flat routing, referrals not yet rewarded on-curve.
	domain.FeeTableVersionV4: {
		Version:    domain.FeeTableVersionV4,
		ReserveBps: 9400,
		BuybackBps: 100,
		routing: map[domain.ReferralKind]routing{
			domain.ReferralKindUser:    {ReferralBps: 0, ProjectBps: 400, CommunityBps: 100},
			domain.ReferralKindProject: {ReferralBps: 0, ProjectBps: 400, CommunityBps: 100},
			domain.ReferralKindNone:    {ReferralBps: 0, ProjectBps: 400, CommunityBps: 100},
		},
	},
	// Flexible routing of the 4% between referrer, project and community.
	domain.FeeTableVersionV6: {
		Version:    domain.FeeTableVersionV6,
		ReserveBps: 9400,
		BuybackBps: 100,
		routing: map[domain.ReferralKind]routing{
			domain.ReferralKindUser:    {ReferralBps: 300, ProjectBps: 100, CommunityBps: 100},
			domain.ReferralKindProject: {ReferralBps: 0, ProjectBps: 400, CommunityBps: 100},
			domain.ReferralKindNone:    {ReferralBps: 0, ProjectBps: 200, CommunityBps: 300},
		},
	},
}

func init() {
	// A table whose shares do not cover exactly 100% is a programming error,
	// refuse to start.
	for version, table := range tables {
		for kind, r := range table.routing {
			total := table.ReserveBps + table.BuybackBps +
				r.ReferralBps + r.ProjectBps + r.CommunityBps
			if total != domain.BPS_DENOMINATOR {
				panic(fmt.Sprintf("fee table %s/%s sums to %d bps", version, kind, total))
			}
		}
	}
}

// Current returns the schedule applied to new trades
func Current() *Table {
	return tables[domain.FeeTableVersionV6]
}

// ForVersion returns a frozen historical schedule
func ForVersion(version domain.FeeTableVersion) (*Table, error) {
	table, ok := tables[version]
	if !ok {
		return nil, fmt.Errorf("unknown fee table version %q", version)
	}
	return table, nil
}

// Split routes a gross trade amount across fee destinations. Each share is the
// floored bps portion of the amount and the rounding remainder accrues to the
// reserve share, so the shares always sum to amount exactly.
func (t *Table) Split(amount uint64, kind domain.ReferralKind) domain.FeeBreakdown {
	r, ok := t.routing[kind]
	if !ok {
		r = t.routing[domain.ReferralKindNone]
	}

	breakdown := domain.FeeBreakdown{
		ReferralLamports:  bpsShare(amount, r.ReferralBps),
		ProjectLamports:   bpsShare(amount, r.ProjectBps),
		CommunityLamports: bpsShare(amount, r.CommunityBps),
		BuybackLamports:   bpsShare(amount, t.BuybackBps),
	}
	breakdown.ReserveLamports = amount - breakdown.ReferralLamports -
		breakdown.ProjectLamports - breakdown.CommunityLamports - breakdown.BuybackLamports

	if breakdown.Total() != amount {
		panic(fmt.Sprintf("fee split of %d lamports produced %d", amount, breakdown.Total()))
	}
	return breakdown
}

// WaiveNonReserve reroutes every non-reserve share back to the reserve,
// keeping the exact-sum property. Used when a trader holds an active fee
// waiver.
func WaiveNonReserve(amount uint64) domain.FeeBreakdown {
	return domain.FeeBreakdown{ReserveLamports: amount}
}

func bpsShare(amount uint64, bps uint64) uint64 {
	// amount is bounded well below 2^50 lamports by the curve math, the
	// product cannot overflow uint64
	return amount * bps / domain.BPS_DENOMINATOR
}
