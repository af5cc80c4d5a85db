package usecase

import (
	"time"

	"github.com/gaze-network/orb-forge/modules/forge/datagateway"
	"github.com/gaze-network/orb-forge/modules/forge/internal/burngate"
	"github.com/gaze-network/orb-forge/modules/forge/internal/registry"
)

type Usecase struct {
	dg         datagateway.ForgeDataGateway
	registry   *registry.Registry
	burnGate   *burngate.BurnGate
	publisher  datagateway.ClaimEventPublisher
	dispatches datagateway.DispatchQueue
	now        func() time.Time
}

type Option func(*Usecase)

// WithClock overrides the time source used for claim timestamps.
func WithClock(now func() time.Time) Option {
	return func(u *Usecase) {
		u.now = now
	}
}

func New(
	dg datagateway.ForgeDataGateway,
	oracle datagateway.AuthenticityOracle,
	ledger datagateway.FungibleLedger,
	publisher datagateway.ClaimEventPublisher,
	dispatches datagateway.DispatchQueue,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		dg:         dg,
		registry:   registry.New(dg),
		burnGate:   burngate.New(oracle, ledger),
		publisher:  publisher,
		dispatches: dispatches,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}
