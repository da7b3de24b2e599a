package schema

import (
	"time"

	"gorm.io/datatypes"
)

// SnapshotHolder is one entry of a snapshot's holder table
type SnapshotHolder struct {
	Wallet string `json:"wallet"`
	Keys   uint64 `json:"keys"`
	// PctBps is the holder's share of the frozen supply in basis points
	PctBps uint64 `json:"pct_bps"`
}

// CurveSnapshot represents the curve_snapshots table - the immutable record of
// holder balances captured while a curve is frozen for launch. Airdrop
// allocations are computed from these rows and never recomputed afterwards.
type CurveSnapshot struct {
	// ID is the snapshot identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// CurveID references the snapshotted curve, one snapshot per attempt
	CurveID string `gorm:"column:curve_id;not null;type:uuid;index"`
	// AttemptID references the launch attempt that took the snapshot
	AttemptID string `gorm:"column:attempt_id;not null;type:uuid;uniqueIndex"`
	// SupplyKeys is the frozen supply at snapshot time
	SupplyKeys uint64 `gorm:"column:supply_keys;not null"`
	// ReserveLamports is the frozen reserve at snapshot time
	ReserveLamports uint64 `gorm:"column:reserve_lamports;not null"`
	// Holders is the JSON array of holder balances and supply percentages
	Holders datatypes.JSON `gorm:"column:holders;not null;type:jsonb"`
	// Checksum is the hex SHA-256 of the canonicalized holder array
	Checksum string `gorm:"column:checksum;not null;type:text"`
	// CreatedAt is when the snapshot was taken
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Curve Curve `gorm:"foreignKey:CurveID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the CurveSnapshot model
func (CurveSnapshot) TableName() string {
	return "curve_snapshots"
}
