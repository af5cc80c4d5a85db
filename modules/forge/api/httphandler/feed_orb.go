package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gaze-network/orb-forge/modules/forge/usecase"
	"github.com/gofiber/fiber/v2"
)

const actionFeedOrb = "feed_orb"

type feedOrbRequest struct {
	signedRequest
	AssetID     entity.Pubkey  `json:"assetId"`
	Claimer     entity.Pubkey  `json:"claimer"`
	MetadataRef entity.Pubkey  `json:"metadataRef"`
	TargetChain common.ChainID `json:"targetChain"`
}

type feedOrbResult struct {
	Claim        claimResult `json:"claim"`
	AmountBurned uint64      `json:"amountBurned,string"`
	TotalClaimed uint64      `json:"totalClaimed,string"`
	DispatchID   *string     `json:"dispatchId,omitempty"` // set for non-native targets
}

type feedOrbResponse = common.HttpResponse[feedOrbResult]

func (h *HttpHandler) FeedOrb(ctx *fiber.Ctx) error {
	var req feedOrbRequest
	if err := parseBody(ctx, &req); err != nil {
		return errors.WithStack(err)
	}
	err := requirePubkeys(map[string]entity.Pubkey{
		"assetId":     req.AssetID,
		"claimer":     req.Claimer,
		"metadataRef": req.MetadataRef,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if req.TargetChain == 0 {
		return errs.WithPublicMessage(errors.Wrap(errs.InvalidArgument, "missing targetChain"), "")
	}
	err = h.verifySignature(req.Claimer, req.signedRequest, actionFeedOrb,
		req.AssetID.String(),
		req.Claimer.String(),
		req.MetadataRef.String(),
		req.TargetChain.String(),
	)
	if err != nil {
		return errors.WithStack(err)
	}

	claim, err := h.usecase.FeedOrb(ctx.UserContext(), usecase.FeedOrbParams{
		AssetID:     req.AssetID,
		Claimer:     req.Claimer,
		MetadataRef: req.MetadataRef,
		TargetChain: req.TargetChain,
	})
	if err != nil {
		return errors.Wrap(err, "error during FeedOrb")
	}

	result := feedOrbResult{
		Claim:        mapClaim(&claim.Record),
		AmountBurned: claim.AmountBurned,
		TotalClaimed: claim.TotalClaimed,
	}
	if claim.Dispatch != nil {
		id := claim.Dispatch.ID.String()
		result.DispatchID = &id
	}
	resp := feedOrbResponse{
		Result: &result,
	}
	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(resp))
}
