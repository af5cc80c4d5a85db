// Package badgerdb is the embedded storage backend of the forge, built on badger and badgerhold.
package badgerdb

import (
	"context"
	"fmt"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v4"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/modules/forge/datagateway"
	"github.com/gaze-network/orb-forge/pkg/logger"
	"github.com/timshannon/badgerhold/v4"
)

var _ datagateway.ForgeDataGateway = (*Repository)(nil)

type Repository struct {
	store *badgerhold.Store

	// writeMu serializes write transactions, so ledger updates never race inside one process.
	writeMu *sync.Mutex
	tx      *badger.Txn
}

// Open opens the store in dir. An empty dir or inMemory opens a throwaway in-memory store.
func Open(dir string, inMemory bool) (*Repository, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = &badgerLogger{}
	if dir == "" || inMemory {
		opts.Dir, opts.ValueDir = "", ""
		opts.InMemory = true
	}

	store, err := badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open badger store")
	}
	return NewRepository(store), nil
}

func NewRepository(store *badgerhold.Store) *Repository {
	return &Repository{
		store:   store,
		writeMu: &sync.Mutex{},
	}
}

func (r *Repository) Close() error {
	return errors.WithStack(r.store.Close())
}

// view runs fn in the active transaction, or in a read-only one.
func (r *Repository) view(fn func(tx *badger.Txn) error) error {
	if r.tx != nil {
		return fn(r.tx)
	}
	return mapTxError(r.store.Badger().View(fn))
}

// update runs fn in the active transaction, or in a new read-write one committed right away.
func (r *Repository) update(fn func(tx *badger.Txn) error) error {
	if r.tx != nil {
		return fn(r.tx)
	}
	r.writeMu.Lock()
	defer r.writeMu.Unlock()
	return mapTxError(r.store.Badger().Update(fn))
}

func mapTxError(err error) error {
	if errors.Is(err, badger.ErrConflict) {
		return errors.Wrap(errs.Conflict, err.Error())
	}
	return err
}

// badgerLogger forwards badger's internal logs to the service logger.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...interface{}) {
	logger.ErrorContext(context.Background(), "badger", errors.Newf(format, args...), "package", "badgerdb")
}

func (badgerLogger) Warningf(format string, args ...interface{}) {
	logger.Warn(fmt.Sprintf(format, args...), "package", "badgerdb")
}

func (badgerLogger) Infof(format string, args ...interface{}) {
	logger.Debug(fmt.Sprintf(format, args...), "package", "badgerdb")
}

func (badgerLogger) Debugf(format string, args ...interface{}) {
	logger.Debug(fmt.Sprintf(format, args...), "package", "badgerdb")
}
