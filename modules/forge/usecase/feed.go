package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gaze-network/orb-forge/modules/forge/internal/registry"
	"github.com/gaze-network/orb-forge/pkg/logger"
	"github.com/gaze-network/orb-forge/pkg/logger/slogx"
)

type FeedOrbParams struct {
	AssetID     entity.Pubkey
	Claimer     entity.Pubkey
	MetadataRef entity.Pubkey
	TargetChain common.ChainID
}

type FeedOrbResult struct {
	Record       entity.ClaimRecord
	AmountBurned uint64
	TotalClaimed uint64
	// Dispatch is set when the claim targets another chain.
	Dispatch *entity.Dispatch
}

// FeedOrb redeems the one-time claim of an asset: it burns the gating tokens, records the
// claim, bumps the claim counter and, for non-native targets, queues a bridge dispatch.
//
// The debit happens before the claim record is inserted. A caller that loses a race for the
// same asset after its tokens were burned receives errs.AlreadyClaimed and is not refunded.
func (u *Usecase) FeedOrb(ctx context.Context, params FeedOrbParams) (*FeedOrbResult, error) {
	ctx = logger.WithContext(ctx,
		slogx.Stringer("assetId", params.AssetID),
		slogx.Stringer("claimer", params.Claimer),
		slogx.Stringer("targetChain", params.TargetChain),
	)
	if params.TargetChain == 0 {
		return nil, errors.Wrap(errs.InvalidArgument, "target chain must be set")
	}

	ledger, err := u.dg.GetForgeLedger(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get forge ledger")
	}
	if ledger.Paused {
		return nil, errors.WithStack(errs.ProgramPaused)
	}

	claimed, err := u.registry.IsClaimed(ctx, params.AssetID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check claim")
	}
	if claimed {
		return nil, errors.Wrapf(errs.AlreadyClaimed, "asset %s", params.AssetID)
	}

	amountBurned, err := u.burnGate.ValidateAndBurn(ctx, params.AssetID, params.Claimer, params.MetadataRef, *ledger)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	result := &FeedOrbResult{AmountBurned: amountBurned}
	err = retryOnConflict(ctx, func() error {
		return u.commitClaim(ctx, params, ledger.BridgeTarget, result)
	})
	if err != nil {
		if errors.Is(err, errs.AlreadyClaimed) {
			logger.WarnContext(ctx, "Claim lost a race after burning gating tokens",
				slogx.String("event", "feed_orb_burned_without_claim"),
				slogx.Uint64("amountBurned", amountBurned),
			)
		}
		return nil, errors.Wrap(err, "failed to commit claim")
	}

	event := entity.ClaimEvent{
		AssetID:      result.Record.AssetID,
		Claimer:      result.Record.Claimer,
		TargetChain:  result.Record.TargetChain,
		AmountBurned: amountBurned,
		ClaimedAt:    result.Record.ClaimedAt,
	}
	if err := u.publisher.PublishClaimEvent(ctx, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish claim event", err, slogx.String("event", "feed_orb_publish_failed"))
	}

	if result.Dispatch != nil {
		if err := u.dispatches.Enqueue(ctx, *result.Dispatch); err != nil {
			// the dispatch is persisted as pending, the sweeper picks it up later
			logger.WarnContext(ctx, "Failed to enqueue bridge dispatch",
				slogx.String("dispatchId", result.Dispatch.ID.String()),
				slogx.Error(err),
			)
		}
	}

	logger.InfoContext(ctx, "Orb fed",
		slogx.String("event", "feed_orb"),
		slogx.Uint64("amountBurned", amountBurned),
		slogx.Uint64("totalClaimed", result.TotalClaimed),
	)
	return result, nil
}

func (u *Usecase) commitClaim(ctx context.Context, params FeedOrbParams, bridgeTarget entity.Pubkey, result *FeedOrbResult) error {
	tx, err := u.dg.BeginForgeTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil {
			logger.WarnContext(ctx, "failed to rollback transaction", slogx.Error(err))
		}
	}()

	record, err := registry.RecordClaim(ctx, tx, params.AssetID, params.Claimer, u.now(), params.TargetChain)
	if err != nil {
		return errors.WithStack(err)
	}

	total, err := tx.IncrementTotalClaimed(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to increment total claimed")
	}

	var dispatch *entity.Dispatch
	if !params.TargetChain.IsNative() {
		d := entity.NewDispatch(entity.BridgePayload{
			AssetID:     params.AssetID,
			Claimer:     params.Claimer,
			TargetChain: params.TargetChain,
		}, bridgeTarget, record.ClaimedAt)
		if err := tx.CreateDispatch(ctx, d); err != nil {
			return errors.Wrap(err, "failed to create bridge dispatch")
		}
		dispatch = &d
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	result.Record = *record
	result.TotalClaimed = total
	result.Dispatch = dispatch
	return nil
}
