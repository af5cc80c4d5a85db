package entity

import (
	"encoding/binary"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common"
	"github.com/gaze-network/orb-forge/common/errs"
)

// ClaimRecordSize is the encoded size of a ClaimRecord.
const ClaimRecordSize = 2*PubkeySize + 8 + 2

// ClaimKey addresses a claim record. It is derived from the asset id alone.
type ClaimKey = chainhash.Hash

// ClaimRecord is the permanent proof that an asset has been claimed.
type ClaimRecord struct {
	AssetID     Pubkey
	Claimer     Pubkey
	ClaimedAt   time.Time // second precision
	TargetChain common.ChainID
}

// MarshalBinary encodes the record in its fixed little-endian layout.
func (c ClaimRecord) MarshalBinary() ([]byte, error) {
	buf := make([]byte, ClaimRecordSize)
	copy(buf[0:32], c.AssetID[:])
	copy(buf[32:64], c.Claimer[:])
	binary.LittleEndian.PutUint64(buf[64:72], uint64(c.ClaimedAt.Unix()))
	binary.LittleEndian.PutUint16(buf[72:74], uint16(c.TargetChain))
	return buf, nil
}

func (c *ClaimRecord) UnmarshalBinary(data []byte) error {
	if len(data) != ClaimRecordSize {
		return errors.Wrapf(errs.InvalidArgument, "claim record must be %d bytes, got %d", ClaimRecordSize, len(data))
	}
	copy(c.AssetID[:], data[0:32])
	copy(c.Claimer[:], data[32:64])
	c.ClaimedAt = time.Unix(int64(binary.LittleEndian.Uint64(data[64:72])), 0).UTC()
	c.TargetChain = common.ChainID(binary.LittleEndian.Uint16(data[72:74]))
	return nil
}
