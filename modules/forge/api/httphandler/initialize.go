package httphandler

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gaze-network/orb-forge/modules/forge/usecase"
	"github.com/gofiber/fiber/v2"
)

const actionInitialize = "initialize"

type initializeRequest struct {
	signedRequest
	Authority     entity.Pubkey `json:"authority"`
	BridgeTarget  entity.Pubkey `json:"bridgeTarget"`
	GatingTokenID entity.Pubkey `json:"gatingTokenId"`
	Threshold     uint64        `json:"threshold,string"`
}

type initializeResponse = common.HttpResponse[ledgerResult]

func (h *HttpHandler) Initialize(ctx *fiber.Ctx) error {
	var req initializeRequest
	if err := parseBody(ctx, &req); err != nil {
		return errors.WithStack(err)
	}
	err := requirePubkeys(map[string]entity.Pubkey{
		"authority":     req.Authority,
		"bridgeTarget":  req.BridgeTarget,
		"gatingTokenId": req.GatingTokenID,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	err = h.verifySignature(req.Authority, req.signedRequest, actionInitialize,
		req.Authority.String(),
		req.BridgeTarget.String(),
		req.GatingTokenID.String(),
		strconv.FormatUint(req.Threshold, 10),
	)
	if err != nil {
		return errors.WithStack(err)
	}

	ledger, err := h.usecase.Initialize(ctx.UserContext(), usecase.InitializeParams{
		Authority:     req.Authority,
		BridgeTarget:  req.BridgeTarget,
		GatingTokenID: req.GatingTokenID,
		Threshold:     req.Threshold,
	})
	if err != nil {
		return errors.Wrap(err, "error during Initialize")
	}

	result := h.mapLedger(ledger)
	resp := initializeResponse{
		Result: &result,
	}
	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(resp))
}
