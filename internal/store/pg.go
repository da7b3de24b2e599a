package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/launchos/curve-engine/internal/domain"
	"github.com/launchos/curve-engine/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings
// into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize computes the batch size for bulk inserts that stays
// under PostgreSQL's 65535 extended-protocol parameter limit. A total headroom
// covers GORM timestamps, ON CONFLICT parameters and query metadata.
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// CreateCurve creates a new curve in the active state
func (s *pgStore) CreateCurve(ctx context.Context, input CreateCurveInput) (*schema.Curve, error) {
	curve := schema.Curve{
		OwnerWallet:     input.OwnerWallet,
		Name:            input.Name,
		Symbol:          input.Symbol,
		State:           schema.CurveStateActive,
		FeeTableVersion: string(input.FeeTableVersion),
		CapGrowthBps:    input.CapGrowthBps,
	}

	err := s.db.WithContext(ctx).Create(&curve).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create curve: %w", err)
	}

	return &curve, nil
}

// GetCurveByID retrieves a curve by ID
func (s *pgStore) GetCurveByID(ctx context.Context, curveID string) (*schema.Curve, error) {
	var curve schema.Curve
	err := s.db.WithContext(ctx).Where("id = ?", curveID).First(&curve).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get curve: %w", err)
	}
	return &curve, nil
}

// ListCurves retrieves curves, optionally filtered by state
func (s *pgStore) ListCurves(ctx context.Context, state *schema.CurveState, limit, offset int) ([]*schema.Curve, error) {
	query := s.db.WithContext(ctx).Model(&schema.Curve{})
	if state != nil {
		query = query.Where("state = ?", *state)
	}

	var curves []*schema.Curve
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&curves).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list curves: %w", err)
	}

	return curves, nil
}

// ApplyTrade atomically persists a trade. The curve update is conditional on
// the version the ledger computed against, so two writers racing on the same
// curve cannot both commit.
func (s *pgStore) ApplyTrade(ctx context.Context, input ApplyTradeInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.Curve{}).
			Where("id = ? AND version = ? AND state = ?",
				input.CurveID, input.ExpectedVersion, schema.CurveStateActive).
			Updates(map[string]interface{}{
				"supply_keys":      input.NewSupply,
				"reserve_lamports": input.NewReserve,
				"holder_count":     input.NewHolderCount,
				"version":          gorm.Expr("version + 1"),
				"updated_at":       input.Event.CreatedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update curve: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrVersionConflict
		}

		holder := schema.CurveHolder{
			CurveID:               input.CurveID,
			Wallet:                input.Holder.Wallet,
			Keys:                  input.Holder.Keys,
			AvgPriceLamports:      input.Holder.AvgPriceLamports,
			TotalInvestedLamports: input.Holder.TotalInvestedLamports,
			RealizedPnlLamports:   input.Holder.RealizedPnlLamports,
			FirstBuyAt:            input.Holder.FirstBuyAt,
			LastTradeAt:           input.Holder.LastTradeAt,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "curve_id"}, {Name: "wallet"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"keys", "avg_price_lamports", "total_invested_lamports",
				"realized_pnl_lamports", "last_trade_at", "updated_at",
			}),
		}).Create(&holder).Error; err != nil {
			return fmt.Errorf("failed to upsert holder: %w", err)
		}

		if err := tx.Create(input.Event).Error; err != nil {
			return fmt.Errorf("failed to append trade event: %w", err)
		}

		if len(input.Transfers) > 0 {
			batchSize := calculateSafeBatchSize(len(input.Transfers), 9)
			if err := tx.CreateInBatches(input.Transfers, batchSize).Error; err != nil {
				return fmt.Errorf("failed to create transfer instructions: %w", err)
			}
		}

		return nil
	})
}

// TransitionCurveState atomically moves a curve between states and appends the
// audit event. The version condition rejects transitions raced by trades.
func (s *pgStore) TransitionCurveState(ctx context.Context, input TransitionInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"state":      input.To,
			"version":    gorm.Expr("version + 1"),
			"updated_at": input.At,
		}
		switch input.To {
		case schema.CurveStateFrozen:
			updates["frozen_at"] = input.At
		case schema.CurveStateActive:
			updates["frozen_at"] = nil
		}

		result := tx.Model(&schema.Curve{}).
			Where("id = ? AND version = ? AND state = ?",
				input.CurveID, input.ExpectedVersion, input.From).
			Updates(updates)
		if result.Error != nil {
			return fmt.Errorf("failed to transition curve: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrVersionConflict
		}

		if input.Event != nil {
			if err := tx.Create(input.Event).Error; err != nil {
				return fmt.Errorf("failed to append transition event: %w", err)
			}
		}

		return nil
	})
}

// FinalizeLaunch completes a launch attempt: curve launched, reserve zeroed,
// token mint recorded, attempt closed.
func (s *pgStore) FinalizeLaunch(ctx context.Context, input FinalizeLaunchInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.Curve{}).
			Where("id = ? AND state = ?", input.CurveID, schema.CurveStateFrozen).
			Updates(map[string]interface{}{
				"state":            schema.CurveStateLaunched,
				"reserve_lamports": 0,
				"token_mint":       input.TokenMint,
				"launched_at":      input.At,
				"version":          gorm.Expr("version + 1"),
				"updated_at":       input.At,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to finalize curve: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrCurveNotFrozen
		}

		if err := tx.Model(&schema.LaunchAttempt{}).
			Where("id = ?", input.AttemptID).
			Updates(map[string]interface{}{
				"status":      schema.LaunchAttemptSucceeded,
				"step_cursor": string(domain.LaunchStepFinalize),
				"updated_at":  input.At,
			}).Error; err != nil {
			return fmt.Errorf("failed to close launch attempt: %w", err)
		}

		if input.Event != nil {
			if err := tx.Create(input.Event).Error; err != nil {
				return fmt.Errorf("failed to append launch event: %w", err)
			}
		}

		return nil
	})
}

// GetHolder retrieves a wallet's position on a curve
func (s *pgStore) GetHolder(ctx context.Context, curveID, wallet string) (*schema.CurveHolder, error) {
	var holder schema.CurveHolder
	err := s.db.WithContext(ctx).
		Where("curve_id = ? AND wallet = ?", curveID, wallet).
		First(&holder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get holder: %w", err)
	}
	return &holder, nil
}

// ListHolders retrieves all wallets holding at least one key, largest first
func (s *pgStore) ListHolders(ctx context.Context, curveID string) ([]*schema.CurveHolder, error) {
	var holders []*schema.CurveHolder
	err := s.db.WithContext(ctx).
		Where("curve_id = ? AND keys > 0", curveID).
		Order("keys DESC").
		Find(&holders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list holders: %w", err)
	}
	return holders, nil
}

// ListCurveEvents retrieves a curve's event log, newest first
func (s *pgStore) ListCurveEvents(ctx context.Context, curveID string, limit, offset int) ([]*schema.CurveEvent, error) {
	var events []*schema.CurveEvent
	err := s.db.WithContext(ctx).
		Where("curve_id = ?", curveID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list curve events: %w", err)
	}
	return events, nil
}

// GetWalletTradeTimes retrieves a wallet's trade timestamps since a cutoff
func (s *pgStore) GetWalletTradeTimes(ctx context.Context, wallet string, since time.Time) ([]time.Time, error) {
	var times []time.Time
	err := s.db.WithContext(ctx).
		Model(&schema.CurveEvent{}).
		Where("wallet = ? AND created_at >= ? AND event_type IN ?",
			wallet, since, []string{string(domain.EventTypeBuy), string(domain.EventTypeSell)}).
		Order("created_at DESC").
		Pluck("created_at", &times).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet trade times: %w", err)
	}
	return times, nil
}

// SumTradeVolumeSince sums a curve's gross trade volume since a cutoff
func (s *pgStore) SumTradeVolumeSince(ctx context.Context, curveID string, since time.Time) (uint64, error) {
	var volume uint64
	err := s.db.WithContext(ctx).
		Model(&schema.CurveEvent{}).
		Select("COALESCE(SUM(amount_lamports), 0)").
		Where("curve_id = ? AND created_at >= ? AND event_type IN ?",
			curveID, since, []string{string(domain.EventTypeBuy), string(domain.EventTypeSell)}).
		Scan(&volume).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum trade volume: %w", err)
	}
	return volume, nil
}

// GetLastEventBefore retrieves a curve's newest event older than the cutoff
func (s *pgStore) GetLastEventBefore(ctx context.Context, curveID string, before time.Time) (*schema.CurveEvent, error) {
	var event schema.CurveEvent
	err := s.db.WithContext(ctx).
		Where("curve_id = ? AND created_at < ?", curveID, before).
		Order("created_at DESC").
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last event before cutoff: %w", err)
	}
	return &event, nil
}

// CountDistinctHolders recounts wallets with a positive key balance
func (s *pgStore) CountDistinctHolders(ctx context.Context, curveID string) (uint64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.CurveHolder{}).
		Where("curve_id = ? AND keys > 0", curveID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count holders: %w", err)
	}
	return uint64(count), nil
}

// UpdateCurveRollups writes sweeper-maintained aggregates. Deliberately not
// version-bumped, rollups never race trades into a lost update.
func (s *pgStore) UpdateCurveRollups(ctx context.Context, curveID string, volume24h, holderCount uint64) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Curve{}).
		Where("id = ?", curveID).
		Updates(map[string]interface{}{
			"volume_24h_lamports": volume24h,
			"holder_count":        holderCount,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update curve rollups: %w", err)
	}
	return nil
}

// CreateSnapshot persists a launch snapshot. ON CONFLICT DO NOTHING on the
// attempt ID makes retried snapshot activities idempotent.
func (s *pgStore) CreateSnapshot(ctx context.Context, snapshot *schema.CurveSnapshot) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "attempt_id"}},
			DoNothing: true,
		}).
		Create(snapshot).Error
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	return nil
}

// GetSnapshotByAttemptID retrieves the snapshot taken by an attempt
func (s *pgStore) GetSnapshotByAttemptID(ctx context.Context, attemptID string) (*schema.CurveSnapshot, error) {
	var snapshot schema.CurveSnapshot
	err := s.db.WithContext(ctx).Where("attempt_id = ?", attemptID).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return &snapshot, nil
}

// GetLatestSnapshot retrieves a curve's most recent snapshot
func (s *pgStore) GetLatestSnapshot(ctx context.Context, curveID string) (*schema.CurveSnapshot, error) {
	var snapshot schema.CurveSnapshot
	err := s.db.WithContext(ctx).
		Where("curve_id = ?", curveID).
		Order("created_at DESC").
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	return &snapshot, nil
}

// CreateLaunchAttempt persists a new attempt before any external call
func (s *pgStore) CreateLaunchAttempt(ctx context.Context, attempt *schema.LaunchAttempt) error {
	err := s.db.WithContext(ctx).Create(attempt).Error
	if err != nil {
		return fmt.Errorf("failed to create launch attempt: %w", err)
	}
	return nil
}

// GetLaunchAttemptByID retrieves an attempt
func (s *pgStore) GetLaunchAttemptByID(ctx context.Context, attemptID string) (*schema.LaunchAttempt, error) {
	var attempt schema.LaunchAttempt
	err := s.db.WithContext(ctx).Where("id = ?", attemptID).First(&attempt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get launch attempt: %w", err)
	}
	return &attempt, nil
}

// GetLaunchAttemptByWorkflowID retrieves the attempt driven by a workflow
func (s *pgStore) GetLaunchAttemptByWorkflowID(ctx context.Context, workflowID string) (*schema.LaunchAttempt, error) {
	var attempt schema.LaunchAttempt

	err := s.db.WithContext(ctx).Where("workflow_id = ?", workflowID).First(&attempt).Error
	if err == nil {
		return &attempt, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get launch attempt: %w", err)
	}
	if !hasDBResolver(s.db) {
		return nil, domain.ErrAttemptNotFound
	}

	// Replica can lag behind primary; retry on primary before returning not found.
	err = s.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("workflow_id = ?", workflowID).
		First(&attempt).Error
	if err == nil {
		return &attempt, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrAttemptNotFound
	}
	return nil, fmt.Errorf("failed to get launch attempt: %w", err)
}

// GetRunningLaunchAttempt retrieves a curve's in-flight attempt
func (s *pgStore) GetRunningLaunchAttempt(ctx context.Context, curveID string) (*schema.LaunchAttempt, error) {
	var attempt schema.LaunchAttempt
	err := s.db.WithContext(ctx).
		Where("curve_id = ? AND status = ?", curveID, schema.LaunchAttemptRunning).
		Order("created_at DESC").
		First(&attempt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get running launch attempt: %w", err)
	}
	return &attempt, nil
}

// AdvanceLaunchCursor records that a launch step completed
func (s *pgStore) AdvanceLaunchCursor(ctx context.Context, attemptID string, step domain.LaunchStep) error {
	err := s.db.WithContext(ctx).
		Model(&schema.LaunchAttempt{}).
		Where("id = ?", attemptID).
		Updates(map[string]interface{}{
			"step_cursor": string(step),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to advance launch cursor: %w", err)
	}
	return nil
}

// SetLaunchArtifacts records external references produced by launch steps.
// Nil fields are left untouched.
func (s *pgStore) SetLaunchArtifacts(ctx context.Context, attemptID string, tokenMint, liquidityRef, distributionRef *string) error {
	updates := make(map[string]interface{})
	if tokenMint != nil {
		updates["token_mint"] = *tokenMint
	}
	if liquidityRef != nil {
		updates["liquidity_ref"] = *liquidityRef
	}
	if distributionRef != nil {
		updates["distribution_ref"] = *distributionRef
	}
	if len(updates) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).
		Model(&schema.LaunchAttempt{}).
		Where("id = ?", attemptID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to set launch artifacts: %w", err)
	}
	return nil
}

// CloseLaunchAttempt marks an attempt succeeded or failed
func (s *pgStore) CloseLaunchAttempt(ctx context.Context, attemptID string, status schema.LaunchAttemptStatus, failedStep, errorMessage *string) error {
	updates := map[string]interface{}{
		"status": status,
	}
	if failedStep != nil {
		updates["failed_step"] = *failedStep
	}
	if errorMessage != nil {
		updates["error_message"] = *errorMessage
	}

	err := s.db.WithContext(ctx).
		Model(&schema.LaunchAttempt{}).
		Where("id = ?", attemptID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to close launch attempt: %w", err)
	}
	return nil
}

// ListPendingTransfers retrieves payout instructions awaiting broadcast
func (s *pgStore) ListPendingTransfers(ctx context.Context, limit int) ([]*schema.TransferInstruction, error) {
	var transfers []*schema.TransferInstruction
	err := s.db.WithContext(ctx).
		Where("status = ?", schema.TransferStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&transfers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending transfers: %w", err)
	}
	return transfers, nil
}

// MarkTransferSent flips a payout instruction to sent
func (s *pgStore) MarkTransferSent(ctx context.Context, instructionID string, at time.Time) error {
	err := s.db.WithContext(ctx).
		Model(&schema.TransferInstruction{}).
		Where("id = ? AND status = ?", instructionID, schema.TransferStatusPending).
		Updates(map[string]interface{}{
			"status":  schema.TransferStatusSent,
			"sent_at": at,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to mark transfer sent: %w", err)
	}
	return nil
}

// CreateTransfers records payout instructions outside of a trade
func (s *pgStore) CreateTransfers(ctx context.Context, transfers []schema.TransferInstruction) error {
	if len(transfers) == 0 {
		return nil
	}

	batchSize := calculateSafeBatchSize(len(transfers), 9)
	err := s.db.WithContext(ctx).CreateInBatches(transfers, batchSize).Error
	if err != nil {
		return fmt.Errorf("failed to create transfers: %w", err)
	}
	return nil
}

// CountAcceptedInteractions counts a wallet's accepted interactions since a cutoff
func (s *pgStore) CountAcceptedInteractions(ctx context.Context, wallet string, since time.Time) (uint64, *time.Time, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.AcceptedInteraction{}).
		Where("wallet = ? AND created_at >= ?", wallet, since).
		Count(&count).Error
	if err != nil {
		return 0, nil, fmt.Errorf("failed to count accepted interactions: %w", err)
	}
	if count == 0 {
		return 0, nil, nil
	}

	var last schema.AcceptedInteraction
	err = s.db.WithContext(ctx).
		Where("wallet = ? AND created_at >= ?", wallet, since).
		Order("created_at DESC").
		First(&last).Error
	if err != nil {
		return 0, nil, fmt.Errorf("failed to get last accepted interaction: %w", err)
	}

	return uint64(count), &last.CreatedAt, nil
}

// CreateAcceptedInteraction records an accepted interaction
func (s *pgStore) CreateAcceptedInteraction(ctx context.Context, wallet, peerWallet string) error {
	interaction := schema.AcceptedInteraction{
		Wallet:     wallet,
		PeerWallet: peerWallet,
	}
	err := s.db.WithContext(ctx).Create(&interaction).Error
	if err != nil {
		return fmt.Errorf("failed to create accepted interaction: %w", err)
	}
	return nil
}

// CreateFlashReward records a flash reward. The unique index on curve_id
// enforces the once-per-room rule, a conflict reports false.
func (s *pgStore) CreateFlashReward(ctx context.Context, reward *schema.FlashReward) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "curve_id"}},
			DoNothing: true,
		}).
		Create(reward)
	if result.Error != nil {
		return false, fmt.Errorf("failed to create flash reward: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
