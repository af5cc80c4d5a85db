package httphandler

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

func parseBody(ctx *fiber.Ctx, out any) error {
	if err := ctx.BodyParser(out); err != nil {
		return errs.WithPublicMessage(errors.Wrap(errs.InvalidArgument, err.Error()), "invalid request body")
	}
	return nil
}

// requirePubkeys fails when any of the named keys is unset.
func requirePubkeys(keys map[string]entity.Pubkey) error {
	missing := lo.Keys(lo.PickBy(keys, func(_ string, pk entity.Pubkey) bool {
		return pk.IsZero()
	}))
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)
	return errs.WithPublicMessage(errors.Wrapf(errs.InvalidArgument, "missing %s", strings.Join(missing, ", ")), "")
}
