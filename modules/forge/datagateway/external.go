package datagateway

import (
	"context"

	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
)

// AuthenticityOracle reports the metadata reference an asset is bound to.
type AuthenticityOracle interface {
	// Verify returns the metadata reference of assetID. Returns errs.NotFound if the asset is not bound to any metadata.
	Verify(ctx context.Context, assetID entity.Pubkey) (entity.Pubkey, error)
}

// FungibleLedger burns gating tokens from a holder's balance.
type FungibleLedger interface {
	// Debit burns amount units of tokenID owned by owner, authorized by owner.
	// Returns errs.InsufficientBalance or errs.Unauthorized.
	Debit(ctx context.Context, tokenID, owner entity.Pubkey, amount uint64) error
}

// BridgeRelay hands dispatches to the cross-chain bridge.
type BridgeRelay interface {
	// Submit delivers the dispatch payload. Returns errs.Unavailable when the relay may accept it later.
	Submit(ctx context.Context, dispatch *entity.Dispatch) error
}

type ClaimEventPublisher interface {
	PublishClaimEvent(ctx context.Context, event entity.ClaimEvent) error
}

// DispatchQueue accepts committed dispatches for asynchronous submission. Enqueue must not block on the relay.
type DispatchQueue interface {
	Enqueue(ctx context.Context, dispatch entity.Dispatch) error
}
