package httphandler

import (
	"github.com/gaze-network/orb-forge/common"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gaze-network/orb-forge/pkg/decimals"
	"github.com/shopspring/decimal"
)

type ledgerResult struct {
	Authority     entity.Pubkey   `json:"authority"`
	BridgeTarget  entity.Pubkey   `json:"bridgeTarget"`
	GatingTokenID entity.Pubkey   `json:"gatingTokenId"`
	Threshold     uint64          `json:"threshold,string"`
	ThresholdUI   decimal.Decimal `json:"thresholdUi"`
	TotalClaimed  uint64          `json:"totalClaimed,string"`
	Paused        bool            `json:"paused"`
}

func (h *HttpHandler) mapLedger(ledger *entity.ForgeLedger) ledgerResult {
	return ledgerResult{
		Authority:     ledger.Authority,
		BridgeTarget:  ledger.BridgeTarget,
		GatingTokenID: ledger.GatingTokenID,
		Threshold:     ledger.Threshold,
		ThresholdUI:   decimals.ToDecimal(ledger.Threshold, h.tokenDecimals),
		TotalClaimed:  ledger.TotalClaimed,
		Paused:        ledger.Paused,
	}
}

type claimResult struct {
	AssetID     entity.Pubkey  `json:"assetId"`
	Claimer     entity.Pubkey  `json:"claimer"`
	ClaimedAt   int64          `json:"claimedAt"` // unix timestamp
	TargetChain common.ChainID `json:"targetChain"`
}

func mapClaim(record *entity.ClaimRecord) claimResult {
	return claimResult{
		AssetID:     record.AssetID,
		Claimer:     record.Claimer,
		ClaimedAt:   record.ClaimedAt.Unix(),
		TargetChain: record.TargetChain,
	}
}
