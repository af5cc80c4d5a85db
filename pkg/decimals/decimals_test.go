package decimals

import (
	"math"
	"testing"

	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDecimal(t *testing.T) {
	tests := []struct {
		units    uint64
		decimals uint8
		expected string
	}{
		{units: 0, decimals: 9, expected: "0"},
		{units: 1_000_000_000, decimals: 9, expected: "1"},
		{units: 1_500_000, decimals: 6, expected: "1.5"},
		{units: 42, decimals: 0, expected: "42"},
		{units: math.MaxUint64, decimals: 0, expected: "18446744073709551615"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToDecimal(tt.units, tt.decimals).String())
		})
	}
}

func TestToUnits(t *testing.T) {
	t.Run("whole units", func(t *testing.T) {
		units, err := ToUnits(decimal.RequireFromString("2.5"), 6)
		require.NoError(t, err)
		assert.Equal(t, uint64(2_500_000), units)
	})
	t.Run("too precise", func(t *testing.T) {
		_, err := ToUnits(decimal.RequireFromString("0.0000001"), 6)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
	t.Run("negative", func(t *testing.T) {
		_, err := ToUnits(decimal.RequireFromString("-1"), 0)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
	t.Run("overflow", func(t *testing.T) {
		_, err := ToUnits(decimal.RequireFromString("18446744073709551616"), 0)
		assert.ErrorIs(t, err, errs.OverflowUint64)
	})
}
