package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common"
	"github.com/gofiber/fiber/v2"
)

type getClaimRequest struct {
	AssetID string `params:"assetId"`
}

type getClaimResponse = common.HttpResponse[claimResult]

func (h *HttpHandler) GetClaim(ctx *fiber.Ctx) error {
	var req getClaimRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	assetID, err := parsePubkeyParam("assetId", req.AssetID)
	if err != nil {
		return errors.WithStack(err)
	}

	record, err := h.usecase.GetClaimRecord(ctx.UserContext(), assetID)
	if err != nil {
		return errors.Wrap(err, "error during GetClaimRecord")
	}
	result := mapClaim(record)
	resp := getClaimResponse{
		Result: &result,
	}
	return errors.WithStack(ctx.JSON(resp))
}
