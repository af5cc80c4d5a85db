package badgerdb

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/google/uuid"
)

// ledgerDTO keeps the ledger in its fixed binary layout.
type ledgerDTO struct {
	Data []byte
}

func newLedgerDTO(ledger entity.ForgeLedger) (ledgerDTO, error) {
	data, err := ledger.MarshalBinary()
	if err != nil {
		return ledgerDTO{}, errors.Wrap(err, "failed to encode forge ledger")
	}
	return ledgerDTO{Data: data}, nil
}

func (d ledgerDTO) toEntity() (*entity.ForgeLedger, error) {
	var ledger entity.ForgeLedger
	if err := ledger.UnmarshalBinary(d.Data); err != nil {
		return nil, errors.Wrap(err, "failed to decode forge ledger")
	}
	return &ledger, nil
}

type claimDTO struct {
	AssetID     string
	Claimer     string
	ClaimedAt   int64
	TargetChain uint16
}

func newClaimDTO(record entity.ClaimRecord) claimDTO {
	return claimDTO{
		AssetID:     record.AssetID.String(),
		Claimer:     record.Claimer.String(),
		ClaimedAt:   record.ClaimedAt.Unix(),
		TargetChain: uint16(record.TargetChain),
	}
}

func (d claimDTO) toEntity() (*entity.ClaimRecord, error) {
	assetID, err := entity.ParsePubkey(d.AssetID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid stored asset id")
	}
	claimer, err := entity.ParsePubkey(d.Claimer)
	if err != nil {
		return nil, errors.Wrap(err, "invalid stored claimer")
	}
	return &entity.ClaimRecord{
		AssetID:     assetID,
		Claimer:     claimer,
		ClaimedAt:   time.Unix(d.ClaimedAt, 0).UTC(),
		TargetChain: common.ChainID(d.TargetChain),
	}, nil
}

type dispatchDTO struct {
	ID           string
	Payload      []byte
	BridgeTarget string
	Status       string
	Attempts     int32
	LastError    string
	CreatedAt    int64
	UpdatedAt    int64
}

func newDispatchDTO(dispatch entity.Dispatch) (dispatchDTO, error) {
	payload, err := dispatch.Payload.MarshalBinary()
	if err != nil {
		return dispatchDTO{}, errors.Wrap(err, "failed to encode bridge payload")
	}
	return dispatchDTO{
		ID:           dispatch.ID.String(),
		Payload:      payload,
		BridgeTarget: dispatch.BridgeTarget.String(),
		Status:       string(dispatch.Status),
		Attempts:     dispatch.Attempts,
		LastError:    dispatch.LastError,
		CreatedAt:    dispatch.CreatedAt.UnixNano(),
		UpdatedAt:    dispatch.UpdatedAt.UnixNano(),
	}, nil
}

func (d dispatchDTO) toEntity() (*entity.Dispatch, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid stored dispatch id")
	}
	var payload entity.BridgePayload
	if err := payload.UnmarshalBinary(d.Payload); err != nil {
		return nil, errors.Wrap(err, "invalid stored dispatch payload")
	}
	bridgeTarget, err := entity.ParsePubkey(d.BridgeTarget)
	if err != nil {
		return nil, errors.Wrap(err, "invalid stored bridge target")
	}
	return &entity.Dispatch{
		ID:           id,
		Payload:      payload,
		BridgeTarget: bridgeTarget,
		Status:       entity.DispatchStatus(d.Status),
		Attempts:     d.Attempts,
		LastError:    d.LastError,
		CreatedAt:    time.Unix(0, d.CreatedAt).UTC(),
		UpdatedAt:    time.Unix(0, d.UpdatedAt).UTC(),
	}, nil
}

func nowUnixNano() int64 {
	return time.Now().UnixNano()
}
