package incentive

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/launchos/curve-engine/internal/mocks"
)

func newTestEngine(t *testing.T, now time.Time) *Engine {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()
	clock.EXPECT().Since(gomock.Any()).DoAndReturn(func(ts time.Time) time.Duration {
		return now.Sub(ts)
	}).AnyTimes()
	return NewEngine(clock)
}

func day(base time.Time, offset int) time.Time {
	return base.AddDate(0, 0, offset)
}

func TestKeyStreak(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		activity []time.Time
		expected StreakStatus
	}{
		{
			name:     "no activity",
			activity: nil,
			expected: StreakStatus{},
		},
		{
			name:     "single trade today",
			activity: []time.Time{now},
			expected: StreakStatus{Active: true, Length: 1},
		},
		{
			name: "three consecutive days ending today",
			activity: []time.Time{
				day(now, -2), day(now, -1), now,
			},
			expected: StreakStatus{Active: true, Length: 3},
		},
		{
			name: "streak survives when last trade was yesterday",
			activity: []time.Time{
				day(now, -2), day(now, -1),
			},
			expected: StreakStatus{Active: true, Length: 2},
		},
		{
			name: "streak dies after a missed day",
			activity: []time.Time{
				day(now, -3), day(now, -2),
			},
			expected: StreakStatus{},
		},
		{
			name: "gap resets the count",
			activity: []time.Time{
				day(now, -5), day(now, -1), now,
			},
			expected: StreakStatus{Active: true, Length: 2},
		},
		{
			name: "seven days unlocks the bonus",
			activity: []time.Time{
				day(now, -6), day(now, -5), day(now, -4), day(now, -3),
				day(now, -2), day(now, -1), now,
			},
			expected: StreakStatus{Active: true, Length: 7, BonusEligible: true},
		},
		{
			name: "multiple trades per day count once",
			activity: []time.Time{
				day(now, -1), day(now, -1).Add(2 * time.Hour), now, now.Add(time.Minute),
			},
			expected: StreakStatus{Active: true, Length: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(t, now)
			assert.Equal(t, tt.expected, engine.KeyStreak(tt.activity))
		})
	}
}

func TestStreakBonus(t *testing.T) {
	assert.Equal(t, uint64(1_100), StreakBonus(1_000))
	assert.Equal(t, uint64(0), StreakBonus(0))
	// Floor division, no phantom lamports
	assert.Equal(t, uint64(9), StreakBonus(9))
}

func TestFlashReward(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	engine := newTestEngine(t, now)

	tests := []struct {
		name             string
		motionScore      uint64
		alreadyTriggered bool
		expectTrigger    bool
	}{
		{
			name:          "hot room triggers",
			motionScore:   95,
			expectTrigger: true,
		},
		{
			name:          "below threshold",
			motionScore:   94,
			expectTrigger: false,
		},
		{
			name:             "fires once per room",
			motionScore:      99,
			alreadyTriggered: true,
			expectTrigger:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := engine.FlashReward(tt.motionScore, tt.alreadyTriggered)
			assert.Equal(t, tt.expectTrigger, decision.Trigger)
			assert.Equal(t, FLASH_REWARD_LAMPORTS, decision.RewardPerEntrant)
		})
	}
}

func TestHallPass(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name           string
		accepted       uint64
		lastAcceptedAt time.Time
		expected       HallPassStatus
	}{
		{
			name:           "not enough interactions",
			accepted:       7,
			lastAcceptedAt: now.Add(-time.Hour),
			expected:       HallPassStatus{Remaining: 3},
		},
		{
			name:           "earned and fresh",
			accepted:       10,
			lastAcceptedAt: now.Add(-2 * time.Hour),
			expected:       HallPassStatus{Active: true},
		},
		{
			name:           "pass expires after a day",
			accepted:       12,
			lastAcceptedAt: now.Add(-25 * time.Hour),
			expected:       HallPassStatus{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(t, now)
			assert.Equal(t, tt.expected, engine.HallPass(tt.accepted, tt.lastAcceptedAt))
		})
	}
}

func TestAcceptedInWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	engine := newTestEngine(t, now)

	count := engine.AcceptedInWindow([]time.Time{
		now.Add(-time.Hour),
		now.Add(-6 * 24 * time.Hour),
		now.Add(-8 * 24 * time.Hour), // outside the window
	})
	assert.Equal(t, uint64(2), count)
}
