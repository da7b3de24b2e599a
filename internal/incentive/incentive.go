// Package incentive implements the growth mechanics layered on top of curve
// trading: daily key streaks, flash rewards for hot rooms, and hall passes
// that waive trading fees.
package incentive

import (
	"sort"
	"time"

	"github.com/launchos/curve-engine/internal/adapter"
	"github.com/launchos/curve-engine/internal/domain"
)

const (
	// Key streak constants
	STREAK_DAYS      = 7
	STREAK_BONUS_BPS = uint64(1_000) // 10% bonus on sell proceeds

	// Flash reward constants
	FLASH_MOTION_THRESHOLD = uint64(95)
	FLASH_REWARD_LAMPORTS  = uint64(50_000_000) // 0.05 SOL per entrant

	// Hall pass constants
	HALL_PASS_ACCEPTED_DMS = uint64(10)
	HALL_PASS_WINDOW       = 7 * 24 * time.Hour
	HALL_PASS_DURATION     = 24 * time.Hour
)

// Engine evaluates incentive mechanics. It is stateless, callers feed it the
// activity history they already track.
type Engine struct {
	clock adapter.Clock
}

// NewEngine creates an incentive engine
func NewEngine(clock adapter.Clock) *Engine {
	return &Engine{clock: clock}
}

// StreakStatus describes a wallet's daily trading streak
type StreakStatus struct {
	Active        bool   `json:"active"`
	Length        uint64 `json:"length"`
	BonusEligible bool   `json:"bonus_eligible"`
}

// KeyStreak computes the current consecutive-day streak from a wallet's
// activity timestamps. A streak is alive if the wallet traded today or
// yesterday, and the bonus unlocks at STREAK_DAYS consecutive days.
func (e *Engine) KeyStreak(activity []time.Time) StreakStatus {
	if len(activity) == 0 {
		return StreakStatus{}
	}

	days := uniqueDaysDesc(activity)
	today := truncateDay(e.clock.Now())

	// Dead streak if the last activity is older than yesterday
	if today.Sub(days[0]) > 24*time.Hour {
		return StreakStatus{}
	}

	length := uint64(1)
	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) == 24*time.Hour {
			length++
		} else {
			break
		}
	}

	return StreakStatus{
		Active:        true,
		Length:        length,
		BonusEligible: length >= STREAK_DAYS,
	}
}

// StreakBonus returns the sell proceeds with the streak bonus applied
func StreakBonus(base uint64) uint64 {
	return base + base*STREAK_BONUS_BPS/domain.BPS_DENOMINATOR
}

// FlashDecision is the outcome of a flash reward check
type FlashDecision struct {
	Trigger          bool   `json:"trigger"`
	RewardPerEntrant uint64 `json:"reward_per_entrant_lamports"`
}

// FlashReward decides whether a room's motion score triggers a flash reward.
// Fires at most once per room.
func (e *Engine) FlashReward(motionScore uint64, alreadyTriggered bool) FlashDecision {
	return FlashDecision{
		Trigger:          motionScore >= FLASH_MOTION_THRESHOLD && !alreadyTriggered,
		RewardPerEntrant: FLASH_REWARD_LAMPORTS,
	}
}

// HallPassStatus describes a wallet's fee waiver state
type HallPassStatus struct {
	Active    bool   `json:"active"`
	Remaining uint64 `json:"remaining"` // accepted interactions still needed
}

// HallPass checks whether a wallet has earned an active fee waiver. The pass
// is earned after HALL_PASS_ACCEPTED_DMS accepted interactions inside the
// rolling window and stays valid for HALL_PASS_DURATION after the last one.
func (e *Engine) HallPass(accepted uint64, lastAcceptedAt time.Time) HallPassStatus {
	earned := accepted >= HALL_PASS_ACCEPTED_DMS
	expired := earned && e.clock.Since(lastAcceptedAt) > HALL_PASS_DURATION

	remaining := uint64(0)
	if accepted < HALL_PASS_ACCEPTED_DMS {
		remaining = HALL_PASS_ACCEPTED_DMS - accepted
	}

	return HallPassStatus{
		Active:    earned && !expired,
		Remaining: remaining,
	}
}

// AcceptedInWindow counts interactions inside the rolling hall pass window
func (e *Engine) AcceptedInWindow(acceptedAt []time.Time) uint64 {
	cutoff := e.clock.Now().Add(-HALL_PASS_WINDOW)
	var count uint64
	for _, ts := range acceptedAt {
		if ts.After(cutoff) {
			count++
		}
	}
	return count
}

func truncateDay(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

func uniqueDaysDesc(activity []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(activity))
	days := make([]time.Time, 0, len(activity))
	for _, ts := range activity {
		day := truncateDay(ts)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}
