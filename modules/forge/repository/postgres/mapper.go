package postgres

import (
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gaze-network/orb-forge/modules/forge/repository/postgres/gen"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func uint64FromNumeric(src pgtype.Numeric) (uint64, error) {
	if !src.Valid {
		return 0, errors.Wrap(errs.InvalidArgument, "numeric is null")
	}
	bytes, err := src.MarshalJSON()
	if err != nil {
		return 0, errors.WithStack(err)
	}
	result, err := strconv.ParseUint(string(bytes), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errors.Wrapf(errs.OverflowUint64, "numeric %s", bytes)
		}
		return 0, errors.Wrapf(errs.InvalidArgument, "numeric %s is not an unsigned integer", bytes)
	}
	return result, nil
}

func numericFromUint64(src uint64) (pgtype.Numeric, error) {
	var result pgtype.Numeric
	if err := result.UnmarshalJSON([]byte(strconv.FormatUint(src, 10))); err != nil {
		return pgtype.Numeric{}, errors.WithStack(err)
	}
	return result, nil
}

func pgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: [16]byte(id), Valid: true}
}

func pgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func mapForgeLedgerModelToType(src gen.ForgeLedger) (*entity.ForgeLedger, error) {
	authority, err := entity.ParsePubkey(src.Authority)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse authority")
	}
	bridgeTarget, err := entity.ParsePubkey(src.BridgeTarget)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse bridge target")
	}
	gatingTokenID, err := entity.ParsePubkey(src.GatingTokenID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse gating token id")
	}
	threshold, err := uint64FromNumeric(src.Threshold)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse threshold")
	}
	totalClaimed, err := uint64FromNumeric(src.TotalClaimed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse total claimed")
	}
	return &entity.ForgeLedger{
		Authority:     authority,
		BridgeTarget:  bridgeTarget,
		GatingTokenID: gatingTokenID,
		Threshold:     threshold,
		TotalClaimed:  totalClaimed,
		Paused:        src.Paused,
	}, nil
}

func mapForgeLedgerTypeToParams(src entity.ForgeLedger) (gen.CreateForgeLedgerParams, error) {
	threshold, err := numericFromUint64(src.Threshold)
	if err != nil {
		return gen.CreateForgeLedgerParams{}, errors.Wrap(err, "failed to convert threshold")
	}
	totalClaimed, err := numericFromUint64(src.TotalClaimed)
	if err != nil {
		return gen.CreateForgeLedgerParams{}, errors.Wrap(err, "failed to convert total claimed")
	}
	return gen.CreateForgeLedgerParams{
		Authority:     src.Authority.String(),
		BridgeTarget:  src.BridgeTarget.String(),
		GatingTokenID: src.GatingTokenID.String(),
		Threshold:     threshold,
		TotalClaimed:  totalClaimed,
		Paused:        src.Paused,
	}, nil
}

func mapClaimRecordModelToType(src gen.ForgeClaimRecord) (*entity.ClaimRecord, error) {
	assetID, err := entity.ParsePubkey(src.AssetID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse asset id")
	}
	claimer, err := entity.ParsePubkey(src.Claimer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse claimer")
	}
	if src.TargetChain < 0 || src.TargetChain > int32(^uint16(0)) {
		return nil, errors.Wrapf(errs.InvalidArgument, "target chain %d out of range", src.TargetChain)
	}
	return &entity.ClaimRecord{
		AssetID:     assetID,
		Claimer:     claimer,
		ClaimedAt:   src.ClaimedAt.Time.UTC(),
		TargetChain: common.ChainID(src.TargetChain),
	}, nil
}

func mapClaimRecordTypeToParams(key entity.ClaimKey, src entity.ClaimRecord) gen.CreateClaimRecordParams {
	return gen.CreateClaimRecordParams{
		ClaimKey:    key.String(),
		AssetID:     src.AssetID.String(),
		Claimer:     src.Claimer.String(),
		ClaimedAt:   pgTimestamptz(src.ClaimedAt),
		TargetChain: int32(src.TargetChain),
	}
}

func mapDispatchModelToType(src gen.ForgeDispatch) (*entity.Dispatch, error) {
	var payload entity.BridgePayload
	if err := payload.UnmarshalBinary(src.Payload); err != nil {
		return nil, errors.Wrap(err, "failed to parse dispatch payload")
	}
	bridgeTarget, err := entity.ParsePubkey(src.BridgeTarget)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse bridge target")
	}
	status := entity.DispatchStatus(src.Status)
	if !status.IsValid() {
		return nil, errors.Wrapf(errs.InvalidArgument, "unknown dispatch status %q", src.Status)
	}
	return &entity.Dispatch{
		ID:           uuid.UUID(src.ID.Bytes),
		Payload:      payload,
		BridgeTarget: bridgeTarget,
		Status:       status,
		Attempts:     src.Attempts,
		LastError:    src.LastError,
		CreatedAt:    src.CreatedAt.Time.UTC(),
		UpdatedAt:    src.UpdatedAt.Time.UTC(),
	}, nil
}

func mapDispatchTypeToParams(src entity.Dispatch) (gen.CreateDispatchParams, error) {
	payload, err := src.Payload.MarshalBinary()
	if err != nil {
		return gen.CreateDispatchParams{}, errors.Wrap(err, "failed to encode dispatch payload")
	}
	return gen.CreateDispatchParams{
		ID:           pgUUID(src.ID),
		Payload:      payload,
		BridgeTarget: src.BridgeTarget.String(),
		Status:       string(src.Status),
		Attempts:     src.Attempts,
		LastError:    src.LastError,
		CreatedAt:    pgTimestamptz(src.CreatedAt),
		UpdatedAt:    pgTimestamptz(src.UpdatedAt),
	}, nil
}
