package badgerdb

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/modules/forge/datagateway"
	"github.com/gaze-network/orb-forge/pkg/logger"
)

var ErrTxAlreadyExists = errors.New("Transaction already exists. Call Commit() or Rollback() first.")

// BeginForgeTx opens a read-write transaction. It blocks while another write transaction is open.
func (r *Repository) BeginForgeTx(ctx context.Context) (datagateway.ForgeDataGatewayWithTx, error) {
	if r.tx != nil {
		return nil, errors.WithStack(ErrTxAlreadyExists)
	}
	r.writeMu.Lock()
	return &Repository{
		store:   r.store,
		writeMu: r.writeMu,
		tx:      r.store.Badger().NewTransaction(true),
	}, nil
}

func (r *Repository) Commit(ctx context.Context) error {
	if r.tx == nil {
		return nil
	}
	defer r.release()
	if err := r.tx.Commit(); err != nil {
		return errors.Wrap(mapTxError(err), "failed to commit transaction")
	}
	return nil
}

func (r *Repository) Rollback(ctx context.Context) error {
	if r.tx == nil {
		return nil
	}
	r.tx.Discard()
	r.release()
	logger.DebugContext(ctx, "rolled back transaction")
	return nil
}

func (r *Repository) release() {
	r.tx = nil
	r.writeMu.Unlock()
}
