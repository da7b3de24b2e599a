package schema

import (
	"time"
)

// TransferKind classifies what a transfer instruction pays out
type TransferKind string

const (
	// TransferKindReferral pays the referrer share of a trade fee
	TransferKindReferral TransferKind = "referral"
	// TransferKindProject pays the curve owner share
	TransferKindProject TransferKind = "project"
	// TransferKindCommunity pays the community rewards pool
	TransferKindCommunity TransferKind = "community"
	// TransferKindBuyback funds the buyback and burn wallet
	TransferKindBuyback TransferKind = "buyback"
	// TransferKindSellerPayout pays a seller their proceeds
	TransferKindSellerPayout TransferKind = "seller_payout"
	// TransferKindFlashReward pays a flash reward to a room entrant
	TransferKindFlashReward TransferKind = "flash_reward"
)

// TransferStatus is the payout state of a transfer instruction
type TransferStatus string

const (
	TransferStatusPending TransferStatus = "pending"
	TransferStatusSent    TransferStatus = "sent"
	TransferStatusFailed  TransferStatus = "failed"
)

// TransferInstruction represents the transfer_instructions table - lamport
// payouts owed to wallets as a result of trades and rewards. The engine only
// records them, an external payer signs and broadcasts.
type TransferInstruction struct {
	// ID is the instruction identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// EventID references the curve event that produced this payout, if any
	EventID *string `gorm:"column:event_id;type:text;index"`
	// CurveID references the curve the payout originated from
	CurveID string `gorm:"column:curve_id;not null;type:uuid;index"`
	// Kind classifies the payout (referral, project, community, buyback, seller_payout, flash_reward)
	Kind TransferKind `gorm:"column:kind;not null;type:text"`
	// Destination is the wallet to pay
	Destination string `gorm:"column:destination;not null;type:text;index"`
	// Lamports is the payout amount
	Lamports uint64 `gorm:"column:lamports;not null"`
	// Status is the payout state (pending, sent, failed)
	Status TransferStatus `gorm:"column:status;not null;type:text;default:'pending';index"`
	// SentAt is when the payout was broadcast
	SentAt *time.Time `gorm:"column:sent_at;type:timestamptz"`
	// CreatedAt is when the instruction was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Curve Curve `gorm:"foreignKey:CurveID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the TransferInstruction model
func (TransferInstruction) TableName() string {
	return "transfer_instructions"
}
