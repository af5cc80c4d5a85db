package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common"
	"github.com/gofiber/fiber/v2"
)

type getLedgerResponse = common.HttpResponse[ledgerResult]

func (h *HttpHandler) GetLedger(ctx *fiber.Ctx) error {
	ledger, err := h.usecase.GetForgeLedger(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during GetForgeLedger")
	}
	result := h.mapLedger(ledger)
	resp := getLedgerResponse{
		Result: &result,
	}
	return errors.WithStack(ctx.JSON(resp))
}
