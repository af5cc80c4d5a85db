package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
)

// GetForgeLedger returns the forge ledger. Returns errs.NotFound if the forge is not initialized.
func (u *Usecase) GetForgeLedger(ctx context.Context) (*entity.ForgeLedger, error) {
	ledger, err := u.dg.GetForgeLedger(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get forge ledger")
	}
	return ledger, nil
}

// GetClaimRecord returns the claim of assetID. Returns errs.NotFound if the asset is unclaimed.
func (u *Usecase) GetClaimRecord(ctx context.Context, assetID entity.Pubkey) (*entity.ClaimRecord, error) {
	record, err := u.registry.Lookup(ctx, assetID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return record, nil
}

func (u *Usecase) GetClaimRecordsByClaimer(ctx context.Context, claimer entity.Pubkey) ([]*entity.ClaimRecord, error) {
	records, err := u.dg.GetClaimRecordsByClaimer(ctx, claimer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get claim records by claimer")
	}
	return records, nil
}
