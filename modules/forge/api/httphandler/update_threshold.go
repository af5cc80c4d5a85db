package httphandler

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gofiber/fiber/v2"
)

const actionUpdateThreshold = "update_threshold"

type updateThresholdRequest struct {
	signedRequest
	Caller    entity.Pubkey `json:"caller"`
	Threshold uint64        `json:"threshold,string"`
}

type updateThresholdResponse = common.HttpResponse[ledgerResult]

func (h *HttpHandler) UpdateThreshold(ctx *fiber.Ctx) error {
	var req updateThresholdRequest
	if err := parseBody(ctx, &req); err != nil {
		return errors.WithStack(err)
	}
	if err := requirePubkeys(map[string]entity.Pubkey{"caller": req.Caller}); err != nil {
		return errors.WithStack(err)
	}
	err := h.verifySignature(req.Caller, req.signedRequest, actionUpdateThreshold,
		req.Caller.String(),
		strconv.FormatUint(req.Threshold, 10),
	)
	if err != nil {
		return errors.WithStack(err)
	}

	ledger, err := h.usecase.UpdateThreshold(ctx.UserContext(), req.Caller, req.Threshold)
	if err != nil {
		return errors.Wrap(err, "error during UpdateThreshold")
	}

	result := h.mapLedger(ledger)
	resp := updateThresholdResponse{
		Result: &result,
	}
	return errors.WithStack(ctx.JSON(resp))
}
