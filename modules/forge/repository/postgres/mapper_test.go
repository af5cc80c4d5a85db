package postgres

import (
	"math"
	"testing"
	"time"

	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gaze-network/orb-forge/modules/forge/repository/postgres/gen"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint64Numeric(t *testing.T) {
	for _, value := range []uint64{0, 1, 1_000_000_000, math.MaxUint64} {
		numeric, err := numericFromUint64(value)
		require.NoError(t, err)
		result, err := uint64FromNumeric(numeric)
		require.NoError(t, err)
		assert.Equal(t, value, result)
	}

	var tooLarge pgtype.Numeric
	require.NoError(t, tooLarge.UnmarshalJSON([]byte("18446744073709551616")))
	_, err := uint64FromNumeric(tooLarge)
	assert.ErrorIs(t, err, errs.OverflowUint64)

	var negative pgtype.Numeric
	require.NoError(t, negative.UnmarshalJSON([]byte("-1")))
	_, err = uint64FromNumeric(negative)
	assert.ErrorIs(t, err, errs.InvalidArgument)

	_, err = uint64FromNumeric(pgtype.Numeric{})
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestForgeLedgerMapping(t *testing.T) {
	ledger := entity.ForgeLedger{
		Authority:     entity.Pubkey{1},
		BridgeTarget:  entity.Pubkey{2},
		GatingTokenID: entity.Pubkey{3},
		Threshold:     500,
		TotalClaimed:  7,
		Paused:        true,
	}
	params, err := mapForgeLedgerTypeToParams(ledger)
	require.NoError(t, err)

	got, err := mapForgeLedgerModelToType(gen.ForgeLedger{
		ID:            1,
		Authority:     params.Authority,
		BridgeTarget:  params.BridgeTarget,
		GatingTokenID: params.GatingTokenID,
		Threshold:     params.Threshold,
		TotalClaimed:  params.TotalClaimed,
		Paused:        params.Paused,
	})
	require.NoError(t, err)
	assert.Equal(t, ledger, *got)
}

func TestClaimRecordMapping(t *testing.T) {
	record := entity.ClaimRecord{
		AssetID:     entity.Pubkey{9},
		Claimer:     entity.Pubkey{8},
		ClaimedAt:   time.Unix(1_700_000_000, 0).UTC(),
		TargetChain: 65535,
	}
	params := mapClaimRecordTypeToParams(entity.ClaimKey{1}, record)
	assert.Equal(t, entity.ClaimKey{1}.String(), params.ClaimKey)

	got, err := mapClaimRecordModelToType(gen.ForgeClaimRecord(params))
	require.NoError(t, err)
	assert.Equal(t, record, *got)

	params.TargetChain = 65536
	_, err = mapClaimRecordModelToType(gen.ForgeClaimRecord(params))
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestDispatchMapping(t *testing.T) {
	now := time.Unix(1_700_000_000, 0).UTC()
	dispatch := entity.NewDispatch(entity.BridgePayload{
		AssetID:     entity.Pubkey{1},
		Claimer:     entity.Pubkey{2},
		TargetChain: 3,
	}, entity.Pubkey{4}, now)

	params, err := mapDispatchTypeToParams(dispatch)
	require.NoError(t, err)
	got, err := mapDispatchModelToType(gen.ForgeDispatch(params))
	require.NoError(t, err)
	assert.Equal(t, dispatch, *got)

	params.Status = "unknown"
	_, err = mapDispatchModelToType(gen.ForgeDispatch(params))
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestMapError(t *testing.T) {
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: codeSerializationFailure}), errs.Conflict)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: codeDeadlockDetected}), errs.Conflict)

	uniqueViolation := &pgconn.PgError{Code: "23505"}
	assert.Equal(t, uniqueViolation, mapError(uniqueViolation))
}
