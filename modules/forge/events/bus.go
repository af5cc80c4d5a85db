// Package events fans claim events out to in-process subscribers and external sinks.
package events

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/modules/forge/datagateway"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gaze-network/orb-forge/pkg/logger"
	"github.com/gaze-network/orb-forge/pkg/logger/slogx"
)

// ClaimEventsTopic is the bus topic every committed claim is published on.
const ClaimEventsTopic = "forge.claim_events"

var _ datagateway.ClaimEventPublisher = (*Bus)(nil)

// Bus is an in-process pub/sub for claim events. Events published while nobody is
// subscribed are dropped.
type Bus struct {
	pubsub *gochannel.GoChannel
}

func NewBus() *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 256},
			watermill.NewSlogLogger(logger.With("package", "events")),
		),
	}
}

func (b *Bus) PublishClaimEvent(ctx context.Context, event entity.ClaimEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "can't marshal claim event")
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	if err := b.pubsub.Publish(ClaimEventsTopic, msg); err != nil {
		return errors.Wrap(err, "can't publish claim event")
	}
	return nil
}

// SubscribeClaimEvents delivers raw claim event payloads until ctx is done.
func (b *Bus) SubscribeClaimEvents(ctx context.Context) (<-chan []byte, error) {
	messages, err := b.pubsub.Subscribe(ctx, ClaimEventsTopic)
	if err != nil {
		return nil, errors.Wrap(err, "can't subscribe to claim events")
	}
	out := make(chan []byte)
	go func() {
		defer close(out)
		for msg := range messages {
			select {
			case out <- msg.Payload:
				msg.Ack()
			case <-ctx.Done():
				msg.Nack()
				return
			}
		}
	}()
	return out, nil
}

// DecodeClaimEvent parses a payload delivered by SubscribeClaimEvents.
func DecodeClaimEvent(payload []byte) (entity.ClaimEvent, error) {
	var event entity.ClaimEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return entity.ClaimEvent{}, errors.Wrap(err, "can't unmarshal claim event")
	}
	return event, nil
}

func (b *Bus) Close() error {
	if err := b.pubsub.Close(); err != nil {
		logger.Warn("failed to close event bus", slogx.Error(err))
		return errors.WithStack(err)
	}
	return nil
}
