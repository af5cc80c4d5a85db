package postgres

import (
	"context"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/modules/forge/datagateway"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gaze-network/orb-forge/modules/forge/repository/postgres/gen"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
)

func (r *Repository) GetForgeLedger(ctx context.Context) (*entity.ForgeLedger, error) {
	model, err := r.queries.GetForgeLedger(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(mapError(err), "error during query")
	}
	ledger, err := mapForgeLedgerModelToType(model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse forge ledger model")
	}
	return ledger, nil
}

func (r *Repository) GetForgeLedgerForUpdate(ctx context.Context) (*entity.ForgeLedger, error) {
	model, err := r.queries.GetForgeLedgerForUpdate(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(mapError(err), "error during query")
	}
	ledger, err := mapForgeLedgerModelToType(model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse forge ledger model")
	}
	return ledger, nil
}

func (r *Repository) CreateForgeLedger(ctx context.Context, ledger entity.ForgeLedger) error {
	params, err := mapForgeLedgerTypeToParams(ledger)
	if err != nil {
		return errors.Wrap(err, "failed to map forge ledger params")
	}
	affected, err := r.queries.CreateForgeLedger(ctx, params)
	if err != nil {
		return errors.Wrap(mapError(err), "error during exec")
	}
	if affected == 0 {
		return errors.WithStack(errs.AlreadyInitialized)
	}
	return nil
}

func (r *Repository) IncrementTotalClaimed(ctx context.Context) (uint64, error) {
	total, err := r.queries.IncrementTotalClaimed(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errors.WithStack(errs.NotFound)
		}
		// the column check rejects values past the u64 range
		return 0, errors.Wrap(mapError(err), "error during exec")
	}
	result, err := uint64FromNumeric(total)
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse total claimed")
	}
	return result, nil
}

func (r *Repository) SetPaused(ctx context.Context, paused bool) error {
	affected, err := r.queries.SetPaused(ctx, paused)
	if err != nil {
		return errors.Wrap(mapError(err), "error during exec")
	}
	if affected == 0 {
		return errors.WithStack(errs.NotFound)
	}
	return nil
}

func (r *Repository) SetThreshold(ctx context.Context, threshold uint64) error {
	value, err := numericFromUint64(threshold)
	if err != nil {
		return errors.Wrap(err, "failed to convert threshold")
	}
	affected, err := r.queries.SetThreshold(ctx, value)
	if err != nil {
		return errors.Wrap(mapError(err), "error during exec")
	}
	if affected == 0 {
		return errors.WithStack(errs.NotFound)
	}
	return nil
}

func (r *Repository) GetClaimRecord(ctx context.Context, key entity.ClaimKey) (*entity.ClaimRecord, error) {
	model, err := r.queries.GetClaimRecord(ctx, key.String())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(mapError(err), "error during query")
	}
	record, err := mapClaimRecordModelToType(model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse claim record model")
	}
	return record, nil
}

func (r *Repository) GetClaimRecordsByClaimer(ctx context.Context, claimer entity.Pubkey) ([]*entity.ClaimRecord, error) {
	models, err := r.queries.GetClaimRecordsByClaimer(ctx, claimer.String())
	if err != nil {
		return nil, errors.Wrap(mapError(err), "error during query")
	}
	records := make([]*entity.ClaimRecord, 0, len(models))
	for _, model := range models {
		record, err := mapClaimRecordModelToType(model)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse claim record model")
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *Repository) CreateClaimRecord(ctx context.Context, key entity.ClaimKey, record entity.ClaimRecord) error {
	affected, err := r.queries.CreateClaimRecord(ctx, mapClaimRecordTypeToParams(key, record))
	if err != nil {
		return errors.Wrap(mapError(err), "error during exec")
	}
	if affected == 0 {
		return errors.Wrapf(errs.AlreadyClaimed, "asset %s", record.AssetID)
	}
	return nil
}

func (r *Repository) GetDispatch(ctx context.Context, id uuid.UUID) (*entity.Dispatch, error) {
	model, err := r.queries.GetDispatch(ctx, pgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(mapError(err), "error during query")
	}
	dispatch, err := mapDispatchModelToType(model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse dispatch model")
	}
	return dispatch, nil
}

func (r *Repository) GetPendingDispatches(ctx context.Context, limit int) ([]*entity.Dispatch, error) {
	if limit <= 0 || limit > math.MaxInt32 {
		limit = math.MaxInt32
	}
	models, err := r.queries.GetPendingDispatches(ctx, int32(limit))
	if err != nil {
		return nil, errors.Wrap(mapError(err), "error during query")
	}
	dispatches := make([]*entity.Dispatch, 0, len(models))
	for _, model := range models {
		dispatch, err := mapDispatchModelToType(model)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse dispatch model")
		}
		dispatches = append(dispatches, dispatch)
	}
	return dispatches, nil
}

func (r *Repository) CreateDispatch(ctx context.Context, dispatch entity.Dispatch) error {
	params, err := mapDispatchTypeToParams(dispatch)
	if err != nil {
		return errors.Wrap(err, "failed to map dispatch params")
	}
	if err := r.queries.CreateDispatch(ctx, params); err != nil {
		return errors.Wrap(mapError(err), "error during exec")
	}
	return nil
}

func (r *Repository) UpdateDispatchStatus(ctx context.Context, params datagateway.UpdateDispatchStatusParams) error {
	if !params.Status.IsValid() {
		return errors.Wrapf(errs.InvalidArgument, "unknown dispatch status %q", params.Status)
	}
	affected, err := r.queries.UpdateDispatchStatus(ctx, gen.UpdateDispatchStatusParams{
		ID:        pgUUID(params.ID),
		Status:    string(params.Status),
		Attempts:  params.Attempts,
		LastError: lo.Substring(params.LastError, 0, maxLastErrorLength),
	})
	if err != nil {
		return errors.Wrap(mapError(err), "error during exec")
	}
	if affected == 0 {
		return errors.WithStack(errs.NotFound)
	}
	return nil
}

const maxLastErrorLength = 1024
