package bridge

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/modules/forge/config"
	"github.com/gaze-network/orb-forge/modules/forge/datagateway"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gaze-network/orb-forge/pkg/logger"
	"github.com/gaze-network/orb-forge/pkg/logger/slogx"
	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

var _ datagateway.DispatchQueue = (*Dispatcher)(nil)

// Dispatcher submits pending dispatches to the relay in the background. Freshly committed
// dispatches arrive through Enqueue; a periodic sweep picks up whatever is still pending,
// including dispatches left over from a previous run.
type Dispatcher struct {
	dg      datagateway.ForgeDataGateway
	relay   datagateway.BridgeRelay
	limiter *rate.Limiter

	queue    chan entity.Dispatch
	inflight sync.Map // uuid.UUID -> struct{}

	maxAttempts   int32
	sweepInterval time.Duration
}

func NewDispatcher(dg datagateway.ForgeDataGateway, relay datagateway.BridgeRelay, conf config.BridgeConfig) *Dispatcher {
	limit := rate.Inf
	if conf.RateLimit > 0 {
		limit = rate.Limit(conf.RateLimit)
	}
	defaults := config.Default().Bridge
	if conf.Burst <= 0 {
		conf.Burst = defaults.Burst
	}
	if conf.QueueSize <= 0 {
		conf.QueueSize = defaults.QueueSize
	}
	if conf.MaxAttempts <= 0 {
		conf.MaxAttempts = defaults.MaxAttempts
	}
	if conf.SweepInterval <= 0 {
		conf.SweepInterval = defaults.SweepInterval
	}
	return &Dispatcher{
		dg:            dg,
		relay:         relay,
		limiter:       rate.NewLimiter(limit, conf.Burst),
		queue:         make(chan entity.Dispatch, conf.QueueSize),
		maxAttempts:   int32(conf.MaxAttempts),
		sweepInterval: conf.SweepInterval,
	}
}

// Enqueue schedules dispatch for submission without waiting for the relay.
// Returns errs.Unavailable when the queue is full; the sweep retries the dispatch later.
func (d *Dispatcher) Enqueue(ctx context.Context, dispatch entity.Dispatch) error {
	if _, loaded := d.inflight.LoadOrStore(dispatch.ID, struct{}{}); loaded {
		return nil
	}
	select {
	case d.queue <- dispatch:
		return nil
	default:
		d.inflight.Delete(dispatch.ID)
		return errors.Wrapf(errs.Unavailable, "dispatch queue is full, dispatch %s", dispatch.ID)
	}
}

// Run consumes the queue and sweeps pending dispatches until ctx is done.
func (d *Dispatcher) Run(ctx context.Context) error {
	scheduler := gocron.NewScheduler(time.UTC)
	if _, err := scheduler.Every(d.sweepInterval).SingletonMode().Do(d.sweep, ctx); err != nil {
		return errors.Wrap(err, "failed to schedule dispatch sweep")
	}
	scheduler.StartAsync()
	defer scheduler.Stop()

	logger.InfoContext(ctx, "Bridge dispatcher started", slogx.Duration("sweepInterval", d.sweepInterval))
	for {
		select {
		case <-ctx.Done():
			return nil
		case dispatch := <-d.queue:
			if err := d.process(ctx, dispatch.ID); err != nil && ctx.Err() == nil {
				logger.ErrorContext(ctx, "Failed to process bridge dispatch", err, slogx.String("dispatchId", dispatch.ID.String()))
			}
			d.inflight.Delete(dispatch.ID)
		}
	}
}

func (d *Dispatcher) sweep(ctx context.Context) {
	pending, err := d.dg.GetPendingDispatches(ctx, cap(d.queue))
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load pending dispatches", err)
		return
	}
	for _, dispatch := range pending {
		if err := d.Enqueue(ctx, *dispatch); err != nil {
			logger.DebugContext(ctx, "dispatch queue is full, sweep stopped early", slogx.Int("pending", len(pending)))
			return
		}
	}
}

// process submits one dispatch and records the outcome. Dispatches that are no longer pending are skipped.
func (d *Dispatcher) process(ctx context.Context, id uuid.UUID) error {
	dispatch, err := d.dg.GetDispatch(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to get dispatch")
	}
	if dispatch.Status != entity.DispatchStatusPending {
		return nil
	}
	if err := d.limiter.Wait(ctx); err != nil {
		return errors.WithStack(err)
	}

	ctx = logger.WithContext(ctx,
		slogx.String("dispatchId", dispatch.ID.String()),
		slogx.Stringer("assetId", dispatch.Payload.AssetID),
		slogx.Stringer("targetChain", dispatch.Payload.TargetChain),
	)

	params := datagateway.UpdateDispatchStatusParams{
		ID:       dispatch.ID,
		Status:   entity.DispatchStatusSubmitted,
		Attempts: dispatch.Attempts + 1,
	}
	submitErr := d.relay.Submit(ctx, dispatch)
	switch {
	case submitErr == nil:
		logger.InfoContext(ctx, "Bridge dispatch submitted", slogx.Int("attempts", int(params.Attempts)))
	case isRetryable(submitErr) && params.Attempts < d.maxAttempts:
		params.Status = entity.DispatchStatusPending
		params.LastError = submitErr.Error()
		logger.WarnContext(ctx, "Bridge relay unavailable, dispatch stays pending",
			slogx.Int("attempts", int(params.Attempts)),
			slogx.Error(submitErr),
		)
	default:
		params.Status = entity.DispatchStatusFailed
		params.LastError = submitErr.Error()
		logger.ErrorContext(ctx, "Bridge dispatch failed", submitErr,
			slogx.String("event", "bridge_dispatch_failed"),
			slogx.Int("attempts", int(params.Attempts)),
		)
	}

	if err := d.dg.UpdateDispatchStatus(ctx, params); err != nil {
		return errors.Wrap(err, "failed to update dispatch status")
	}
	return nil
}
