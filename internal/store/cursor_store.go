package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/launchos/curve-engine/internal/store/schema"
)

// CursorStore defines the interface for storing and retrieving sweep watermarks
//
//go:generate mockgen -source=cursor_store.go -destination=../mocks/cursor_store.go -package=mocks
type CursorStore interface {
	// GetSweepWatermark retrieves the last completed sweep time for a job
	GetSweepWatermark(ctx context.Context, job string) (time.Time, error)
	// SetSweepWatermark stores the last completed sweep time for a job
	SetSweepWatermark(ctx context.Context, job string, at time.Time) error
}

type cursorStore struct {
	db *gorm.DB
}

// NewCursorStore creates a new cursor store
func NewCursorStore(db *gorm.DB) CursorStore {
	return &cursorStore{db: db}
}

// GetSweepWatermark retrieves the last completed sweep time for a job
func (s *cursorStore) GetSweepWatermark(ctx context.Context, job string) (time.Time, error) {
	key := fmt.Sprintf("sweep_watermark:%s", job)

	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, nil // Zero time if no watermark exists
		}
		return time.Time{}, fmt.Errorf("failed to get sweep watermark: %w", err)
	}

	unix, err := strconv.ParseInt(kv.Value, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse sweep watermark: %w", err)
	}

	return time.Unix(unix, 0).UTC(), nil
}

// SetSweepWatermark stores the last completed sweep time for a job
func (s *cursorStore) SetSweepWatermark(ctx context.Context, job string, at time.Time) error {
	key := fmt.Sprintf("sweep_watermark:%s", job)
	value := strconv.FormatInt(at.Unix(), 10)

	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set sweep watermark: %w", err)
	}

	return nil
}
