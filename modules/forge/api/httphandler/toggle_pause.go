package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gofiber/fiber/v2"
)

const actionTogglePause = "toggle_pause"

type togglePauseRequest struct {
	signedRequest
	Caller entity.Pubkey `json:"caller"`
}

type togglePauseResponse = common.HttpResponse[ledgerResult]

func (h *HttpHandler) TogglePause(ctx *fiber.Ctx) error {
	var req togglePauseRequest
	if err := parseBody(ctx, &req); err != nil {
		return errors.WithStack(err)
	}
	if err := requirePubkeys(map[string]entity.Pubkey{"caller": req.Caller}); err != nil {
		return errors.WithStack(err)
	}
	if err := h.verifySignature(req.Caller, req.signedRequest, actionTogglePause, req.Caller.String()); err != nil {
		return errors.WithStack(err)
	}

	ledger, err := h.usecase.TogglePause(ctx.UserContext(), req.Caller)
	if err != nil {
		return errors.Wrap(err, "error during TogglePause")
	}

	result := h.mapLedger(ledger)
	resp := togglePauseResponse{
		Result: &result,
	}
	return errors.WithStack(ctx.JSON(resp))
}
