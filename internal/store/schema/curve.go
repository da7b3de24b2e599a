package schema

import (
	"time"
)

// CurveState represents the lifecycle state of a bonding curve
type CurveState string

const (
	// CurveStateActive means the curve is open for trading
	CurveStateActive CurveState = "active"
	// CurveStateFrozen means trading is suspended while a launch is in flight
	CurveStateFrozen CurveState = "frozen"
	// CurveStateLaunched means the curve graduated to a liquidity pool token
	CurveStateLaunched CurveState = "launched"
	// CurveStateUtility means the curve opted out of launching, terminal
	CurveStateUtility CurveState = "utility"
)

// Curve represents the curves table - the primary entity for bonding curve state
type Curve struct {
	// ID is the curve identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// OwnerWallet is the wallet of the creator the curve belongs to
	OwnerWallet string `gorm:"column:owner_wallet;not null;type:text;index"`
	// Name is the display name of the curve
	Name string `gorm:"column:name;not null;type:text"`
	// Symbol is the ticker used when the curve graduates to a token
	Symbol string `gorm:"column:symbol;not null;type:text"`
	// State is the lifecycle state (active, frozen, launched, utility)
	State CurveState `gorm:"column:state;not null;type:text;index"`
	// SupplyKeys is the number of keys currently outstanding
	SupplyKeys uint64 `gorm:"column:supply_keys;not null;default:0"`
	// ReserveLamports is the lamports held in the curve reserve
	ReserveLamports uint64 `gorm:"column:reserve_lamports;not null;default:0"`
	// HolderCount is the number of wallets holding at least one key
	HolderCount uint64 `gorm:"column:holder_count;not null;default:0"`
	// Volume24hLamports is the rolling 24h trade volume, maintained by the sweeper
	Volume24hLamports uint64 `gorm:"column:volume_24h_lamports;not null;default:0"`
	// FeeTableVersion is the fee schedule applied to new trades on this curve
	FeeTableVersion string `gorm:"column:fee_table_version;not null;type:text"`
	// CapGrowthBps controls how fast the per-wallet key cap widens with holders
	CapGrowthBps uint64 `gorm:"column:cap_growth_bps;not null;default:40"`
	// Version is the optimistic concurrency counter, bumped on every mutation
	Version uint64 `gorm:"column:version;not null;default:0"`
	// TokenMint is the minted token address once the curve has launched
	TokenMint *string `gorm:"column:token_mint;type:text"`
	// FrozenAt records when the curve was frozen for launch
	FrozenAt *time.Time `gorm:"column:frozen_at;type:timestamptz"`
	// LaunchedAt records when the launch finalized
	LaunchedAt *time.Time `gorm:"column:launched_at;type:timestamptz"`
	// CreatedAt is the timestamp when the curve was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the curve was last mutated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Holders  []CurveHolder   `gorm:"foreignKey:CurveID;constraint:OnDelete:CASCADE"`
	Events   []CurveEvent    `gorm:"foreignKey:CurveID;constraint:OnDelete:CASCADE"`
	Attempts []LaunchAttempt `gorm:"foreignKey:CurveID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Curve model
func (Curve) TableName() string {
	return "curves"
}
