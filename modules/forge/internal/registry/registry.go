// Package registry keeps the exactly-once bookkeeping of claims.
package registry

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/modules/forge/datagateway"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
)

var claimKeyPrefix = []byte("claim")

// DeriveClaimKey returns the address of the claim record of assetID.
// The key depends on the asset only, so each asset maps to exactly one record.
func DeriveClaimKey(assetID entity.Pubkey) entity.ClaimKey {
	buf := make([]byte, 0, len(claimKeyPrefix)+entity.PubkeySize)
	buf = append(buf, claimKeyPrefix...)
	buf = append(buf, assetID[:]...)
	return chainhash.DoubleHashH(buf)
}

type Registry struct {
	reader datagateway.ForgeReaderDataGateway
}

func New(reader datagateway.ForgeReaderDataGateway) *Registry {
	return &Registry{reader: reader}
}

// RecordClaim stores a claim record for assetID through dg, which is usually a transaction.
// Returns errs.AlreadyClaimed if the asset was claimed before.
func RecordClaim(ctx context.Context, dg datagateway.ForgeWriterDataGateway, assetID, claimer entity.Pubkey, claimedAt time.Time, targetChain common.ChainID) (*entity.ClaimRecord, error) {
	record := entity.ClaimRecord{
		AssetID:     assetID,
		Claimer:     claimer,
		ClaimedAt:   claimedAt.UTC().Truncate(time.Second),
		TargetChain: targetChain,
	}
	if err := dg.CreateClaimRecord(ctx, DeriveClaimKey(assetID), record); err != nil {
		return nil, errors.Wrap(err, "failed to create claim record")
	}
	return &record, nil
}

// Lookup returns the claim record of assetID. Returns errs.NotFound if the asset is unclaimed.
func (r *Registry) Lookup(ctx context.Context, assetID entity.Pubkey) (*entity.ClaimRecord, error) {
	record, err := r.reader.GetClaimRecord(ctx, DeriveClaimKey(assetID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get claim record")
	}
	return record, nil
}

// IsClaimed reports whether assetID already has a committed claim record.
func (r *Registry) IsClaimed(ctx context.Context, assetID entity.Pubkey) (bool, error) {
	_, err := r.Lookup(ctx, assetID)
	if errors.Is(err, errs.NotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.WithStack(err)
	}
	return true, nil
}
