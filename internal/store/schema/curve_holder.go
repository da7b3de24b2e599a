package schema

import (
	"time"
)

// CurveHolder represents the curve_holders table - per-wallet key balances and
// trade aggregates on a curve. Rows with zero keys are kept so realized PnL
// and history survive a full exit.
type CurveHolder struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CurveID references the curve being held
	CurveID string `gorm:"column:curve_id;not null;type:uuid;uniqueIndex:idx_curve_holders_curve_wallet,priority:1"`
	// Wallet is the holder's wallet address
	Wallet string `gorm:"column:wallet;not null;type:text;uniqueIndex:idx_curve_holders_curve_wallet,priority:2"`
	// Keys is the number of keys currently held
	Keys uint64 `gorm:"column:keys;not null;default:0"`
	// AvgPriceLamports is the volume-weighted average buy price per key
	AvgPriceLamports uint64 `gorm:"column:avg_price_lamports;not null;default:0"`
	// TotalInvestedLamports is the lifetime gross lamports spent on buys
	TotalInvestedLamports uint64 `gorm:"column:total_invested_lamports;not null;default:0"`
	// RealizedPnlLamports accumulates sell proceeds minus cost basis, signed
	RealizedPnlLamports int64 `gorm:"column:realized_pnl_lamports;not null;default:0"`
	// FirstBuyAt is when the wallet first bought into the curve
	FirstBuyAt time.Time `gorm:"column:first_buy_at;not null;type:timestamptz"`
	// LastTradeAt is the wallet's most recent trade on this curve
	LastTradeAt time.Time `gorm:"column:last_trade_at;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this holder row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this holder row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Curve Curve `gorm:"foreignKey:CurveID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the CurveHolder model
func (CurveHolder) TableName() string {
	return "curve_holders"
}
