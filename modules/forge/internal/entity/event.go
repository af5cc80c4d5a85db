package entity

import (
	"time"

	"github.com/gaze-network/orb-forge/common"
)

// ClaimEvent is emitted exactly once per successful claim, after it is committed.
type ClaimEvent struct {
	AssetID      Pubkey         `json:"assetId"`
	Claimer      Pubkey         `json:"claimer"`
	TargetChain  common.ChainID `json:"targetChain"`
	AmountBurned uint64         `json:"amountBurned"`
	ClaimedAt    time.Time      `json:"claimedAt"`
}
