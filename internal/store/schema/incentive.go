package schema

import (
	"time"
)

// AcceptedInteraction represents the accepted_interactions table - accepted
// direct message requests counted toward a wallet's hall pass.
type AcceptedInteraction struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Wallet is the wallet that accepted the interaction
	Wallet string `gorm:"column:wallet;not null;type:text;index:idx_accepted_interactions_wallet_created,priority:1"`
	// PeerWallet is the counterparty wallet
	PeerWallet string `gorm:"column:peer_wallet;not null;type:text"`
	// CreatedAt is when the interaction was accepted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index:idx_accepted_interactions_wallet_created,priority:2"`
}

// TableName specifies the table name for the AcceptedInteraction model
func (AcceptedInteraction) TableName() string {
	return "accepted_interactions"
}

// FlashReward represents the flash_rewards table - one row per room so the
// reward provably fires at most once.
type FlashReward struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CurveID is the room's curve, unique so the reward triggers once
	CurveID string `gorm:"column:curve_id;not null;type:uuid;uniqueIndex"`
	// MotionScore is the score that tripped the reward
	MotionScore uint64 `gorm:"column:motion_score;not null"`
	// Entrants is how many wallets were paid
	Entrants uint64 `gorm:"column:entrants;not null"`
	// RewardPerEntrantLamports is the payout per entrant
	RewardPerEntrantLamports uint64 `gorm:"column:reward_per_entrant_lamports;not null"`
	// CreatedAt is when the reward fired
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Curve Curve `gorm:"foreignKey:CurveID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the FlashReward model
func (FlashReward) TableName() string {
	return "flash_rewards"
}
