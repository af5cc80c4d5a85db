package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/modules/forge/datagateway"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gaze-network/orb-forge/pkg/logger"
	"github.com/gaze-network/orb-forge/pkg/logger/slogx"
)

type InitializeParams struct {
	Authority     entity.Pubkey
	BridgeTarget  entity.Pubkey
	GatingTokenID entity.Pubkey
	Threshold     uint64
}

// Initialize creates the forge ledger with authority as its administrator.
// Returns errs.AlreadyInitialized if the ledger exists.
func (u *Usecase) Initialize(ctx context.Context, params InitializeParams) (*entity.ForgeLedger, error) {
	if params.Threshold == 0 {
		return nil, errors.Wrap(errs.InvalidArgument, "threshold must be greater than zero")
	}

	ledger := entity.ForgeLedger{
		Authority:     params.Authority,
		BridgeTarget:  params.BridgeTarget,
		GatingTokenID: params.GatingTokenID,
		Threshold:     params.Threshold,
		TotalClaimed:  0,
		Paused:        false,
	}
	err := retryOnConflict(ctx, func() error {
		return errors.WithStack(u.dg.CreateForgeLedger(ctx, ledger))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create forge ledger")
	}

	logger.InfoContext(ctx, "Forge initialized",
		slogx.String("event", "forge_initialized"),
		slogx.Stringer("authority", ledger.Authority),
		slogx.Stringer("gatingTokenId", ledger.GatingTokenID),
		slogx.Uint64("threshold", ledger.Threshold),
	)
	return &ledger, nil
}

// TogglePause flips the paused flag. Only the authority may call it.
func (u *Usecase) TogglePause(ctx context.Context, caller entity.Pubkey) (*entity.ForgeLedger, error) {
	ledger, err := u.updateLedger(ctx, caller, func(tx datagateway.ForgeDataGatewayWithTx, ledger *entity.ForgeLedger) error {
		ledger.Paused = !ledger.Paused
		return errors.WithStack(tx.SetPaused(ctx, ledger.Paused))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to toggle pause")
	}

	logger.InfoContext(ctx, "Forge pause toggled",
		slogx.String("event", "forge_pause_toggled"),
		slogx.Bool("paused", ledger.Paused),
	)
	return ledger, nil
}

// UpdateThreshold replaces the burn cost of future claims. Only the authority may call it.
func (u *Usecase) UpdateThreshold(ctx context.Context, caller entity.Pubkey, threshold uint64) (*entity.ForgeLedger, error) {
	ledger, err := u.updateLedger(ctx, caller, func(tx datagateway.ForgeDataGatewayWithTx, ledger *entity.ForgeLedger) error {
		if threshold == 0 {
			return errors.Wrap(errs.InvalidArgument, "threshold must be greater than zero")
		}
		ledger.Threshold = threshold
		return errors.WithStack(tx.SetThreshold(ctx, threshold))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update threshold")
	}

	logger.InfoContext(ctx, "Forge threshold updated",
		slogx.String("event", "forge_threshold_updated"),
		slogx.Uint64("threshold", ledger.Threshold),
	)
	return ledger, nil
}

// updateLedger runs mutate on the locked ledger after checking that caller is the authority.
func (u *Usecase) updateLedger(ctx context.Context, caller entity.Pubkey, mutate func(datagateway.ForgeDataGatewayWithTx, *entity.ForgeLedger) error) (*entity.ForgeLedger, error) {
	var result *entity.ForgeLedger
	err := retryOnConflict(ctx, func() error {
		tx, err := u.dg.BeginForgeTx(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to begin transaction")
		}
		defer func() {
			if err := tx.Rollback(ctx); err != nil {
				logger.WarnContext(ctx, "failed to rollback transaction", slogx.Error(err))
			}
		}()

		ledger, err := tx.GetForgeLedgerForUpdate(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to get forge ledger")
		}
		if caller != ledger.Authority {
			return errors.Wrapf(errs.Unauthorized, "%s is not the forge authority", caller)
		}
		if err := mutate(tx, ledger); err != nil {
			return errors.WithStack(err)
		}
		if err := tx.Commit(ctx); err != nil {
			return errors.Wrap(err, "failed to commit transaction")
		}
		result = ledger
		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return result, nil
}
