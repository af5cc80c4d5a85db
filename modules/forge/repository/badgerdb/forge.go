package badgerdb

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v4"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/modules/forge/datagateway"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/google/uuid"
	"github.com/timshannon/badgerhold/v4"
)

const ledgerKey = "forge_ledger"

func (r *Repository) GetForgeLedger(ctx context.Context) (*entity.ForgeLedger, error) {
	var ledger *entity.ForgeLedger
	err := r.view(func(tx *badger.Txn) error {
		var err error
		ledger, err = r.getLedger(tx)
		return err
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return ledger, nil
}

// GetForgeLedgerForUpdate reads the ledger in the active transaction. Write transactions are
// serialized by BeginForgeTx, so the row stays locked until Commit or Rollback.
func (r *Repository) GetForgeLedgerForUpdate(ctx context.Context) (*entity.ForgeLedger, error) {
	return r.GetForgeLedger(ctx)
}

func (r *Repository) getLedger(tx *badger.Txn) (*entity.ForgeLedger, error) {
	var dto ledgerDTO
	if err := r.store.TxGet(tx, ledgerKey, &dto); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "failed to get forge ledger")
	}
	ledger, err := dto.toEntity()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return ledger, nil
}

func (r *Repository) modifyLedger(modify func(*entity.ForgeLedger) error) error {
	return r.update(func(tx *badger.Txn) error {
		ledger, err := r.getLedger(tx)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := modify(ledger); err != nil {
			return errors.WithStack(err)
		}
		dto, err := newLedgerDTO(*ledger)
		if err != nil {
			return errors.WithStack(err)
		}
		return errors.Wrap(r.store.TxUpdate(tx, ledgerKey, dto), "failed to update forge ledger")
	})
}

func (r *Repository) CreateForgeLedger(ctx context.Context, ledger entity.ForgeLedger) error {
	dto, err := newLedgerDTO(ledger)
	if err != nil {
		return errors.WithStack(err)
	}
	err = r.update(func(tx *badger.Txn) error {
		return r.store.TxInsert(tx, ledgerKey, dto)
	})
	if err != nil {
		if errors.Is(err, badgerhold.ErrKeyExists) {
			return errors.WithStack(errs.AlreadyInitialized)
		}
		return errors.Wrap(err, "failed to create forge ledger")
	}
	return nil
}

func (r *Repository) IncrementTotalClaimed(ctx context.Context) (uint64, error) {
	var total uint64
	err := r.modifyLedger(func(ledger *entity.ForgeLedger) error {
		if ledger.TotalClaimed == ^uint64(0) {
			return errors.WithStack(errs.OverflowUint64)
		}
		ledger.TotalClaimed++
		total = ledger.TotalClaimed
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to increment total claimed")
	}
	return total, nil
}

func (r *Repository) SetPaused(ctx context.Context, paused bool) error {
	err := r.modifyLedger(func(ledger *entity.ForgeLedger) error {
		ledger.Paused = paused
		return nil
	})
	return errors.Wrap(err, "failed to set paused")
}

func (r *Repository) SetThreshold(ctx context.Context, threshold uint64) error {
	err := r.modifyLedger(func(ledger *entity.ForgeLedger) error {
		ledger.Threshold = threshold
		return nil
	})
	return errors.Wrap(err, "failed to set threshold")
}

func (r *Repository) GetClaimRecord(ctx context.Context, key entity.ClaimKey) (*entity.ClaimRecord, error) {
	var dto claimDTO
	err := r.view(func(tx *badger.Txn) error {
		return r.store.TxGet(tx, key.String(), &dto)
	})
	if err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "failed to get claim record")
	}
	record, err := dto.toEntity()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return record, nil
}

func (r *Repository) GetClaimRecordsByClaimer(ctx context.Context, claimer entity.Pubkey) ([]*entity.ClaimRecord, error) {
	var dtos []claimDTO
	err := r.view(func(tx *badger.Txn) error {
		return r.store.TxFind(tx, &dtos, badgerhold.Where("Claimer").Eq(claimer.String()).SortBy("ClaimedAt"))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find claim records")
	}
	records := make([]*entity.ClaimRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := dto.toEntity()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *Repository) CreateClaimRecord(ctx context.Context, key entity.ClaimKey, record entity.ClaimRecord) error {
	dto := newClaimDTO(record)
	err := r.update(func(tx *badger.Txn) error {
		return r.store.TxInsert(tx, key.String(), dto)
	})
	if err != nil {
		if errors.Is(err, badgerhold.ErrKeyExists) {
			return errors.Wrapf(errs.AlreadyClaimed, "asset %s", record.AssetID)
		}
		return errors.Wrap(err, "failed to create claim record")
	}
	return nil
}

func (r *Repository) GetDispatch(ctx context.Context, id uuid.UUID) (*entity.Dispatch, error) {
	var dto dispatchDTO
	err := r.view(func(tx *badger.Txn) error {
		return r.store.TxGet(tx, id.String(), &dto)
	})
	if err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "failed to get dispatch")
	}
	dispatch, err := dto.toEntity()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return dispatch, nil
}

func (r *Repository) GetPendingDispatches(ctx context.Context, limit int) ([]*entity.Dispatch, error) {
	var dtos []dispatchDTO
	query := badgerhold.Where("Status").Eq(string(entity.DispatchStatusPending)).SortBy("CreatedAt")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := r.view(func(tx *badger.Txn) error {
		return r.store.TxFind(tx, &dtos, query)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pending dispatches")
	}
	dispatches := make([]*entity.Dispatch, 0, len(dtos))
	for _, dto := range dtos {
		dispatch, err := dto.toEntity()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		dispatches = append(dispatches, dispatch)
	}
	return dispatches, nil
}

func (r *Repository) CreateDispatch(ctx context.Context, dispatch entity.Dispatch) error {
	dto, err := newDispatchDTO(dispatch)
	if err != nil {
		return errors.WithStack(err)
	}
	err = r.update(func(tx *badger.Txn) error {
		return r.store.TxInsert(tx, dto.ID, dto)
	})
	return errors.Wrap(err, "failed to create dispatch")
}

func (r *Repository) UpdateDispatchStatus(ctx context.Context, params datagateway.UpdateDispatchStatusParams) error {
	if !params.Status.IsValid() {
		return errors.Wrapf(errs.InvalidArgument, "unknown dispatch status %q", params.Status)
	}
	err := r.update(func(tx *badger.Txn) error {
		var dto dispatchDTO
		if err := r.store.TxGet(tx, params.ID.String(), &dto); err != nil {
			return errors.WithStack(err)
		}
		dto.Status = string(params.Status)
		dto.Attempts = params.Attempts
		dto.LastError = params.LastError
		dto.UpdatedAt = nowUnixNano()
		return r.store.TxUpdate(tx, dto.ID, dto)
	})
	if err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return errors.WithStack(errs.NotFound)
		}
		return errors.Wrap(err, "failed to update dispatch status")
	}
	return nil
}
