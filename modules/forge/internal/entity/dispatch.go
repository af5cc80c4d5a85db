package entity

import (
	"encoding/binary"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/google/uuid"
)

// BridgePayloadSize is the wire size of a BridgePayload.
const BridgePayloadSize = 2*PubkeySize + 2

// BridgePayload is the message handed to the bridge relay for non-native claims.
type BridgePayload struct {
	AssetID     Pubkey         `json:"assetId"`
	Claimer     Pubkey         `json:"claimer"`
	TargetChain common.ChainID `json:"targetChain"`
}

// MarshalBinary encodes the payload as assetId | claimer | targetChain (big endian).
func (p BridgePayload) MarshalBinary() ([]byte, error) {
	buf := make([]byte, BridgePayloadSize)
	copy(buf[0:32], p.AssetID[:])
	copy(buf[32:64], p.Claimer[:])
	binary.BigEndian.PutUint16(buf[64:66], uint16(p.TargetChain))
	return buf, nil
}

func (p *BridgePayload) UnmarshalBinary(data []byte) error {
	if len(data) != BridgePayloadSize {
		return errors.Wrapf(errs.InvalidArgument, "bridge payload must be %d bytes, got %d", BridgePayloadSize, len(data))
	}
	copy(p.AssetID[:], data[0:32])
	copy(p.Claimer[:], data[32:64])
	p.TargetChain = common.ChainID(binary.BigEndian.Uint16(data[64:66]))
	return nil
}

type DispatchStatus string

const (
	DispatchStatusPending   DispatchStatus = "pending"
	DispatchStatusSubmitted DispatchStatus = "submitted"
	DispatchStatusFailed    DispatchStatus = "failed"
)

func (s DispatchStatus) IsValid() bool {
	switch s {
	case DispatchStatusPending, DispatchStatusSubmitted, DispatchStatusFailed:
		return true
	}
	return false
}

// Dispatch is an outbox entry for a bridge payload awaiting submission to the relay.
type Dispatch struct {
	ID           uuid.UUID
	Payload      BridgePayload
	BridgeTarget Pubkey
	Status       DispatchStatus
	Attempts     int32
	LastError    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewDispatch(payload BridgePayload, bridgeTarget Pubkey, now time.Time) Dispatch {
	return Dispatch{
		ID:           uuid.New(),
		Payload:      payload,
		BridgeTarget: bridgeTarget,
		Status:       DispatchStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
