package entity

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/gaze-network/orb-forge/common"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(b byte) Pubkey {
	var pk Pubkey
	copy(pk[:], bytes.Repeat([]byte{b}, PubkeySize))
	return pk
}

func TestPubkeyText(t *testing.T) {
	pk := fill(7)
	parsed, err := ParsePubkey(pk.String())
	require.NoError(t, err)
	assert.Equal(t, pk, parsed)

	_, err = ParsePubkey("")
	assert.ErrorIs(t, err, errs.InvalidArgument)
	_, err = ParsePubkey("abc")
	assert.ErrorIs(t, err, errs.InvalidArgument)

	data, err := json.Marshal(struct {
		Key Pubkey `json:"key"`
	}{Key: pk})
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"`+pk.String()+`"}`, string(data))
}

func TestForgeLedgerLayout(t *testing.T) {
	ledger := ForgeLedger{
		Authority:     fill(1),
		BridgeTarget:  fill(2),
		GatingTokenID: fill(3),
		Threshold:     0x0102030405060708,
		TotalClaimed:  3,
		Paused:        true,
	}
	data, err := ledger.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, ForgeLedgerSize)
	assert.Equal(t, 113, ForgeLedgerSize)
	assert.Equal(t, byte(1), data[0])
	assert.Equal(t, byte(2), data[32])
	assert.Equal(t, byte(3), data[64])
	assert.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, data[96:104], "threshold is little endian")
	assert.Equal(t, byte(1), data[112])

	var decoded ForgeLedger
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, ledger, decoded)

	data[112] = 2
	assert.ErrorIs(t, decoded.UnmarshalBinary(data), errs.InvalidArgument)
	assert.ErrorIs(t, decoded.UnmarshalBinary(data[:10]), errs.InvalidArgument)
}

func TestClaimRecordLayout(t *testing.T) {
	record := ClaimRecord{
		AssetID:     fill(9),
		Claimer:     fill(4),
		ClaimedAt:   time.Unix(1_700_000_000, 0).UTC(),
		TargetChain: 2,
	}
	data, err := record.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 74)
	assert.Equal(t, []byte{2, 0}, data[72:74])

	var decoded ClaimRecord
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, record, decoded)
}

func TestBridgePayloadLayout(t *testing.T) {
	payload := BridgePayload{AssetID: fill(5), Claimer: fill(6), TargetChain: 0x0102}
	data, err := payload.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, BridgePayloadSize)
	assert.Equal(t, []byte{1, 2}, data[64:66], "target chain is big endian on the wire")

	var decoded BridgePayload
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, payload, decoded)
}

func TestNewDispatch(t *testing.T) {
	now := time.Now()
	d := NewDispatch(BridgePayload{TargetChain: common.ChainID(5)}, fill(8), now)
	assert.Equal(t, DispatchStatusPending, d.Status)
	assert.NotEqual(t, d.ID, NewDispatch(d.Payload, d.BridgeTarget, now).ID)
	assert.True(t, d.Status.IsValid())
	assert.False(t, DispatchStatus("done").IsValid())
}
