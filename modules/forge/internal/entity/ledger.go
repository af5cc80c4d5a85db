package entity

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common/errs"
)

// ForgeLedgerSize is the encoded size of a ForgeLedger: three pubkeys, two u64 counters and a flag.
const ForgeLedgerSize = 3*PubkeySize + 8 + 8 + 1

// ForgeLedger is the singleton configuration and counter record of the forge.
type ForgeLedger struct {
	Authority     Pubkey
	BridgeTarget  Pubkey
	GatingTokenID Pubkey
	Threshold     uint64
	TotalClaimed  uint64
	Paused        bool
}

// MarshalBinary encodes the ledger in its fixed little-endian layout.
func (l ForgeLedger) MarshalBinary() ([]byte, error) {
	buf := make([]byte, ForgeLedgerSize)
	copy(buf[0:32], l.Authority[:])
	copy(buf[32:64], l.BridgeTarget[:])
	copy(buf[64:96], l.GatingTokenID[:])
	binary.LittleEndian.PutUint64(buf[96:104], l.Threshold)
	binary.LittleEndian.PutUint64(buf[104:112], l.TotalClaimed)
	if l.Paused {
		buf[112] = 1
	}
	return buf, nil
}

func (l *ForgeLedger) UnmarshalBinary(data []byte) error {
	if len(data) != ForgeLedgerSize {
		return errors.Wrapf(errs.InvalidArgument, "forge ledger must be %d bytes, got %d", ForgeLedgerSize, len(data))
	}
	if data[112] > 1 {
		return errors.Wrapf(errs.InvalidArgument, "invalid paused flag %d", data[112])
	}
	copy(l.Authority[:], data[0:32])
	copy(l.BridgeTarget[:], data[32:64])
	copy(l.GatingTokenID[:], data[64:96])
	l.Threshold = binary.LittleEndian.Uint64(data[96:104])
	l.TotalClaimed = binary.LittleEndian.Uint64(data[104:112])
	l.Paused = data[112] == 1
	return nil
}
