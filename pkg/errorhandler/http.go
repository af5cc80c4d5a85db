package errorhandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/pkg/logger"
	"github.com/gaze-network/orb-forge/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

// kindStatus maps domain error kinds to the HTTP status returned for them.
var kindStatus = []struct {
	kind   errs.ErrorKind
	status int
}{
	{errs.Unauthorized, http.StatusForbidden},
	{errs.AlreadyInitialized, http.StatusConflict},
	{errs.AlreadyClaimed, http.StatusConflict},
	{errs.ProgramPaused, http.StatusLocked},
	{errs.InvalidAssetMetadata, http.StatusUnprocessableEntity},
	{errs.InsufficientBalance, http.StatusPaymentRequired},
	{errs.NotFound, http.StatusNotFound},
	{errs.InvalidArgument, http.StatusBadRequest},
	{errs.Unavailable, http.StatusServiceUnavailable},
}

// StatusOf returns the HTTP status for err and whether err is a known domain error.
func StatusOf(err error) (int, bool) {
	for _, ks := range kindStatus {
		if errors.Is(err, ks.kind) {
			return ks.status, true
		}
	}
	return http.StatusInternalServerError, false
}

func NewHTTPErrorHandler() func(ctx *fiber.Ctx, err error) error {
	return func(ctx *fiber.Ctx, err error) error {
		if e := new(errs.PublicError); errors.As(err, &e) {
			status, ok := StatusOf(err)
			if !ok {
				status = http.StatusBadRequest
			}
			return errors.WithStack(ctx.Status(status).JSON(map[string]any{
				"error": e.Message(),
			}))
		}
		if status, ok := StatusOf(err); ok {
			return errors.WithStack(ctx.Status(status).JSON(map[string]any{
				"error": errs.KindOf(err).Error(),
			}))
		}
		if e := new(fiber.Error); errors.As(err, &e) {
			return errors.WithStack(ctx.Status(e.Code).JSON(map[string]any{
				"error": e.Error(),
			}))
		}

		logger.ErrorContext(ctx.UserContext(), "Something went wrong, unhandled api error",
			err,
			slogx.String("event", "api_unhandled_error"),
		)

		return errors.WithStack(ctx.Status(http.StatusInternalServerError).JSON(map[string]any{
			"error": "Internal Server Error",
		}))
	}
}
