package requestcontext

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gaze-network/orb-forge/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Error string `json:"error,omitempty"`
}

// Option enriches the request context. Returning an error aborts the request with 500.
type Option func(ctx context.Context, c *fiber.Ctx) (context.Context, error)

func New(opts ...Option) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var err error
		ctx := c.UserContext()
		for i, opt := range opts {
			ctx, err = opt(ctx, c)
			if err != nil {
				logger.ErrorContext(ctx, "failed to extract request context",
					err,
					slog.String("event", "requestcontext/error"),
					slog.Int("optionIndex", i),
				)
				return c.Status(http.StatusInternalServerError).JSON(Response{Error: "internal server error"})
			}
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}
