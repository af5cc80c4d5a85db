package httphandler

import (
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/modules/forge/config"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gaze-network/orb-forge/modules/forge/usecase"
	"github.com/gaze-network/orb-forge/pkg/crypto"
	gocache "github.com/patrickmn/go-cache"
)

// MaxClockSkew bounds how far a signed request timestamp may drift from the server clock.
const MaxClockSkew = 5 * time.Minute

const signedMessagePrefix = "orb-forge"

type HttpHandler struct {
	usecase           *usecase.Usecase
	verifier          *crypto.Client
	usedSignatures    *gocache.Cache
	requireSignatures bool
	tokenDecimals     uint8
	now               func() time.Time
}

func New(usecase *usecase.Usecase, conf config.Config) *HttpHandler {
	return &HttpHandler{
		usecase:           usecase,
		verifier:          crypto.NewVerifier(),
		// a signature stays acceptable for up to twice the skew (future timestamp plus past drift)
		usedSignatures:    gocache.New(2*MaxClockSkew, MaxClockSkew),
		requireSignatures: conf.API.RequireSignatures,
		tokenDecimals:     conf.GatingTokenDecimals,
		now:               time.Now,
	}
}

// SignedMessage builds the message a caller signs for action: orb-forge:<action>:<fields...>:<timestamp>.
func SignedMessage(action string, timestamp int64, fields ...string) string {
	parts := make([]string, 0, len(fields)+3)
	parts = append(parts, signedMessagePrefix, action)
	parts = append(parts, fields...)
	parts = append(parts, strconv.FormatInt(timestamp, 10))
	return strings.Join(parts, ":")
}

type signedRequest struct {
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
}

// verifySignature checks that signer signed action over fields and that the signature has not been
// accepted before. It is a no-op when signatures are disabled.
func (h *HttpHandler) verifySignature(signer entity.Pubkey, req signedRequest, action string, fields ...string) error {
	if !h.requireSignatures {
		return nil
	}
	if req.Signature == "" {
		return errs.WithPublicMessage(errors.Wrap(errs.Unauthorized, "signature is required"), "")
	}
	if skew := h.now().Sub(time.Unix(req.Timestamp, 0)); skew > MaxClockSkew || skew < -MaxClockSkew {
		return errs.WithPublicMessage(errors.Wrap(errs.Unauthorized, "signature timestamp is out of range"), "")
	}
	ok, err := h.verifier.Verify(SignedMessage(action, req.Timestamp, fields...), req.Signature, signer.Bytes())
	if err != nil {
		return errors.Wrap(err, "failed to verify signature")
	}
	if !ok {
		return errs.WithPublicMessage(errors.Wrapf(errs.Unauthorized, "invalid signature for %s", signer), "")
	}
	if err := h.usedSignatures.Add(req.Signature, struct{}{}, gocache.DefaultExpiration); err != nil {
		return errs.WithPublicMessage(errors.Wrapf(errs.Unauthorized, "signature for %s was already used", signer), "")
	}
	return nil
}

func parsePubkeyParam(name, value string) (entity.Pubkey, error) {
	pk, err := entity.ParsePubkey(value)
	if err != nil {
		return entity.Pubkey{}, errs.WithPublicMessage(err, name)
	}
	return pk, nil
}
