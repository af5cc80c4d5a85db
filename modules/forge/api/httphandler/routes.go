package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/forge/v1")

	r.Get("/ledger", h.GetLedger)
	r.Get("/claims", h.GetClaimsByClaimer)
	r.Get("/claims/:assetId", h.GetClaim)
	r.Post("/initialize", h.Initialize)
	r.Post("/pause/toggle", h.TogglePause)
	r.Post("/threshold", h.UpdateThreshold)
	r.Post("/feed", h.FeedOrb)
	return nil
}
