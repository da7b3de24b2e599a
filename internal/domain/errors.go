package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCurveNotFound is returned when a curve is not found
	ErrCurveNotFound = errors.New("curve not found")

	// ErrCurveAlreadyExists is returned when creating a curve that already exists
	ErrCurveAlreadyExists = errors.New("curve already exists")

	// ErrCurveNotActive is returned when a mutation requires an active curve
	ErrCurveNotActive = errors.New("curve is not active")

	// ErrCurveNotFrozen is returned when a launch step requires a frozen curve
	ErrCurveNotFrozen = errors.New("curve is not frozen")

	// ErrInvalidTransition is returned for a state change the machine forbids
	ErrInvalidTransition = errors.New("invalid curve state transition")

	// ErrZeroKeys is returned when a trade is placed for zero keys
	ErrZeroKeys = errors.New("key amount must be positive")

	// ErrBuyTooLarge is returned when a single buy exceeds the per-order key limit
	ErrBuyTooLarge = errors.New("buy exceeds per-order key limit")

	// ErrInsufficientKeys is returned when a wallet sells more keys than it holds
	ErrInsufficientKeys = errors.New("insufficient key balance")

	// ErrInsufficientReserve is returned when the curve reserve cannot cover a
	// sell payout
	ErrInsufficientReserve = errors.New("reserve cannot cover sell payout")

	// ErrSupplyUnderflow is returned when a sell exceeds the curve supply
	ErrSupplyUnderflow = errors.New("sell exceeds curve supply")

	// ErrSelfReferral is returned when a buyer names themselves as referrer
	ErrSelfReferral = errors.New("buyer cannot refer themselves")

	// ErrVersionConflict is returned when an optimistic write lost the race
	ErrVersionConflict = errors.New("curve version conflict")

	// ErrLaunchInProgress is returned when a launch attempt is already running
	ErrLaunchInProgress = errors.New("launch already in progress")

	// ErrAttemptNotFound is returned when a launch attempt is not found
	ErrAttemptNotFound = errors.New("launch attempt not found")

	// ErrAmountOverflow is returned when lamport arithmetic would overflow
	ErrAmountOverflow = errors.New("lamport amount overflow")
)

// CapExceededError is returned when a buy would push a wallet past the dynamic
// per-wallet key cap. It carries the numbers the caller needs to explain the
// rejection.
type CapExceededError struct {
	Wallet    string
	Cap       uint64
	Held      uint64
	Requested uint64
}

func (e *CapExceededError) Error() string {
	return fmt.Sprintf("wallet %s holds %d keys, buying %d would exceed cap of %d",
		e.Wallet, e.Held, e.Requested, e.Cap)
}

// ThresholdFailure describes one launch precondition that is not met
type ThresholdFailure struct {
	Criterion string `json:"criterion"`
	Need      uint64 `json:"need"`
	Have      uint64 `json:"have"`
}

// ThresholdError is returned when a curve fails one or more launch
// preconditions. Every failing criterion is listed so the caller sees the full
// picture in one shot.
type ThresholdError struct {
	CurveID  string
	Failures []ThresholdFailure
}

func (e *ThresholdError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("%s: need %d, have %d", f.Criterion, f.Need, f.Have))
	}
	return fmt.Sprintf("curve %s not eligible for launch: %s", e.CurveID, strings.Join(parts, "; "))
}
