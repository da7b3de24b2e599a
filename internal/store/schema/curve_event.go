package schema

import (
	"time"

	"gorm.io/datatypes"
)

// CurveEvent represents the curve_events table - the append-only trade and
// state transition log. Supply, reserve and holder aggregates are all
// derivable by replaying this table in order.
type CurveEvent struct {
	// ID is the event identifier (ULID, lexically ordered by emission time)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// CurveID references the curve the event belongs to
	CurveID string `gorm:"column:curve_id;not null;type:uuid;index:idx_curve_events_curve_created,priority:1"`
	// EventType is the kind of event (buy, sell, freeze, unfreeze, launch, utility)
	EventType string `gorm:"column:event_type;not null;type:text"`
	// Wallet is the trading wallet (nil for state transitions)
	Wallet *string `gorm:"column:wallet;type:text;index"`
	// Keys is the number of keys traded (0 for state transitions)
	Keys uint64 `gorm:"column:keys;not null;default:0"`
	// AmountLamports is the gross trade amount
	AmountLamports uint64 `gorm:"column:amount_lamports;not null;default:0"`
	// Fees is the JSON fee breakdown, shares sum to AmountLamports exactly
	Fees datatypes.JSON `gorm:"column:fees;type:jsonb"`
	// FeeTableVersion is the fee schedule that was in force
	FeeTableVersion string `gorm:"column:fee_table_version;not null;type:text"`
	// ReferrerWallet is the referrer credited on the trade, if any
	ReferrerWallet *string `gorm:"column:referrer_wallet;type:text"`
	// SupplyAfter is the curve supply after the event applied
	SupplyAfter uint64 `gorm:"column:supply_after;not null"`
	// PriceAfter is the spot price in lamports after the event applied
	PriceAfter uint64 `gorm:"column:price_after;not null"`
	// CreatedAt is the event timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index:idx_curve_events_curve_created,priority:2"`

	// Associations
	Curve Curve `gorm:"foreignKey:CurveID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the CurveEvent model
func (CurveEvent) TableName() string {
	return "curve_events"
}
