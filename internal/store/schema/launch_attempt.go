package schema

import (
	"time"
)

// LaunchAttemptStatus represents the outcome of a launch attempt
type LaunchAttemptStatus string

const (
	// LaunchAttemptRunning means the attempt is still executing
	LaunchAttemptRunning LaunchAttemptStatus = "running"
	// LaunchAttemptSucceeded means the curve launched
	LaunchAttemptSucceeded LaunchAttemptStatus = "succeeded"
	// LaunchAttemptFailed means the attempt failed and was compensated
	LaunchAttemptFailed LaunchAttemptStatus = "failed"
)

// LaunchAttempt represents the launch_attempts table - one row per launch run.
// The idempotency key and step cursor are persisted before any external call
// so a crashed or retried run resumes instead of re-executing completed steps.
type LaunchAttempt struct {
	// ID is the attempt identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// CurveID references the curve being launched
	CurveID string `gorm:"column:curve_id;not null;type:uuid;index"`
	// IdempotencyKey dedupes launchpad calls across retries of the same attempt
	IdempotencyKey string `gorm:"column:idempotency_key;not null;type:uuid;uniqueIndex"`
	// WorkflowID is the orchestration workflow driving this attempt
	WorkflowID string `gorm:"column:workflow_id;not null;type:text;index"`
	// Status is the attempt outcome (running, succeeded, failed)
	Status LaunchAttemptStatus `gorm:"column:status;not null;type:text"`
	// StepCursor is the last launch step that completed
	StepCursor string `gorm:"column:step_cursor;not null;type:text;default:''"`
	// FailedStep is the step that failed, when Status is failed
	FailedStep *string `gorm:"column:failed_step;type:text"`
	// ErrorMessage is the failure detail, when Status is failed
	ErrorMessage *string `gorm:"column:error_message;type:text"`
	// TokenMint is the minted token address, recorded after the mint step
	TokenMint *string `gorm:"column:token_mint;type:text"`
	// LiquidityRef is the launchpad's reference for the seeded pool
	LiquidityRef *string `gorm:"column:liquidity_ref;type:text"`
	// DistributionRef is the launchpad's reference for the airdrop batch
	DistributionRef *string `gorm:"column:distribution_ref;type:text"`
	// CreatedAt is when the attempt started
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is when the attempt last advanced
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Curve Curve `gorm:"foreignKey:CurveID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the LaunchAttempt model
func (LaunchAttempt) TableName() string {
	return "launch_attempts"
}
