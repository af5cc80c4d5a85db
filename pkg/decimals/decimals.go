// Package decimals converts raw token units to and from human-readable decimal amounts.
package decimals

import (
	"math"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/shopspring/decimal"
)

// ToDecimal scales raw units down by 10^decimals.
func ToDecimal(units uint64, decimals uint8) decimal.Decimal {
	return fromUint64(units).Shift(-int32(decimals))
}

// ToUnits scales a decimal amount up by 10^decimals. The amount must be a non-negative
// whole number of units that fits in uint64.
func ToUnits(amount decimal.Decimal, decimals uint8) (uint64, error) {
	units := amount.Shift(int32(decimals))
	if units.IsNegative() {
		return 0, errors.Wrapf(errs.InvalidArgument, "negative amount %s", amount)
	}
	if !units.Equal(units.Truncate(0)) {
		return 0, errors.Wrapf(errs.InvalidArgument, "amount %s has more than %d decimal places", amount, decimals)
	}
	if units.GreaterThan(fromUint64(math.MaxUint64)) {
		return 0, errors.Wrapf(errs.OverflowUint64, "amount %s", amount)
	}
	return units.BigInt().Uint64(), nil
}

func fromUint64(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}
