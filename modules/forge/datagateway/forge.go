package datagateway

import (
	"context"

	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/google/uuid"
)

type ForgeDataGateway interface {
	ForgeReaderDataGateway
	ForgeWriterDataGateway

	// BeginForgeTx returns a new ForgeDataGateway with transaction enabled. All write operations performed in this datagateway must be committed to persist changes.
	BeginForgeTx(ctx context.Context) (ForgeDataGatewayWithTx, error)
}

type ForgeDataGatewayWithTx interface {
	ForgeDataGateway
	Tx
}

type ForgeReaderDataGateway interface {
	// GetForgeLedger returns the forge ledger. Returns errs.NotFound if the forge is not initialized.
	GetForgeLedger(ctx context.Context) (*entity.ForgeLedger, error)
	// GetForgeLedgerForUpdate is like GetForgeLedger, but concurrent writers of the ledger are
	// serialized (or fail with errs.Conflict on commit) until the transaction ends.
	GetForgeLedgerForUpdate(ctx context.Context) (*entity.ForgeLedger, error)
	// GetClaimRecord returns the claim record stored under key. Returns errs.NotFound if the asset is unclaimed.
	GetClaimRecord(ctx context.Context, key entity.ClaimKey) (*entity.ClaimRecord, error)
	// GetClaimRecordsByClaimer returns the claims made by claimer, oldest first.
	GetClaimRecordsByClaimer(ctx context.Context, claimer entity.Pubkey) ([]*entity.ClaimRecord, error)
	// GetDispatch returns the dispatch with the given id. Returns errs.NotFound if missing.
	GetDispatch(ctx context.Context, id uuid.UUID) (*entity.Dispatch, error)
	// GetPendingDispatches returns up to limit pending dispatches, oldest first.
	GetPendingDispatches(ctx context.Context, limit int) ([]*entity.Dispatch, error)
}

type ForgeWriterDataGateway interface {
	// CreateForgeLedger stores the ledger if none exists. Returns errs.AlreadyInitialized otherwise.
	CreateForgeLedger(ctx context.Context, ledger entity.ForgeLedger) error
	// IncrementTotalClaimed adds one to the claim counter and returns the new value.
	IncrementTotalClaimed(ctx context.Context) (uint64, error)
	SetPaused(ctx context.Context, paused bool) error
	SetThreshold(ctx context.Context, threshold uint64) error
	// CreateClaimRecord stores the record under key if the key is free. Returns errs.AlreadyClaimed otherwise.
	CreateClaimRecord(ctx context.Context, key entity.ClaimKey, record entity.ClaimRecord) error
	CreateDispatch(ctx context.Context, dispatch entity.Dispatch) error
	UpdateDispatchStatus(ctx context.Context, params UpdateDispatchStatusParams) error
}

type UpdateDispatchStatusParams struct {
	ID        uuid.UUID
	Status    entity.DispatchStatus
	Attempts  int32
	LastError string
}
