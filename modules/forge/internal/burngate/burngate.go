// Package burngate checks asset authenticity and burns the gating tokens a claim costs.
package burngate

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/modules/forge/datagateway"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gaze-network/orb-forge/pkg/logger"
	"github.com/gaze-network/orb-forge/pkg/logger/slogx"
)

type BurnGate struct {
	oracle datagateway.AuthenticityOracle
	ledger datagateway.FungibleLedger
}

func New(oracle datagateway.AuthenticityOracle, ledger datagateway.FungibleLedger) *BurnGate {
	return &BurnGate{oracle: oracle, ledger: ledger}
}

// ValidateAndBurn verifies that assetID is bound to metadataRef, then burns forge.Threshold
// gating tokens from claimer. It returns the amount burned.
// Nothing is debited when verification fails.
func (g *BurnGate) ValidateAndBurn(ctx context.Context, assetID, claimer, metadataRef entity.Pubkey, forge entity.ForgeLedger) (uint64, error) {
	bound, err := g.oracle.Verify(ctx, assetID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return 0, errors.Wrapf(errs.InvalidAssetMetadata, "asset %s has no metadata binding", assetID)
		}
		return 0, errors.Wrap(err, "failed to verify asset metadata")
	}
	if bound != metadataRef {
		logger.DebugContext(ctx, "asset metadata mismatch",
			slogx.Stringer("assetId", assetID),
			slogx.Stringer("boundMetadata", bound),
			slogx.Stringer("presentedMetadata", metadataRef),
		)
		return 0, errors.Wrapf(errs.InvalidAssetMetadata, "asset %s is not bound to metadata %s", assetID, metadataRef)
	}

	amount := forge.Threshold
	if err := g.ledger.Debit(ctx, forge.GatingTokenID, claimer, amount); err != nil {
		return 0, errors.Wrapf(err, "failed to burn %d gating tokens", amount)
	}
	return amount, nil
}
