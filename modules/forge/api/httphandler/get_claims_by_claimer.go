package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getClaimsByClaimerRequest struct {
	Claimer string `query:"claimer"`
}

type getClaimsByClaimerResult struct {
	Claimer string        `json:"claimer"`
	Claims  []claimResult `json:"claims"`
}

type getClaimsByClaimerResponse = common.HttpResponse[getClaimsByClaimerResult]

func (h *HttpHandler) GetClaimsByClaimer(ctx *fiber.Ctx) error {
	var req getClaimsByClaimerRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	claimer, err := parsePubkeyParam("claimer", req.Claimer)
	if err != nil {
		return errors.WithStack(err)
	}

	records, err := h.usecase.GetClaimRecordsByClaimer(ctx.UserContext(), claimer)
	if err != nil {
		return errors.Wrap(err, "error during GetClaimRecordsByClaimer")
	}
	result := getClaimsByClaimerResult{
		Claimer: claimer.String(),
		Claims:  lo.Map(records, func(record *entity.ClaimRecord, _ int) claimResult { return mapClaim(record) }),
	}
	resp := getClaimsByClaimerResponse{
		Result: &result,
	}
	return errors.WithStack(ctx.JSON(resp))
}
