package events

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/pkg/logger"
	"github.com/gaze-network/orb-forge/pkg/logger/slogx"
	"github.com/redis/go-redis/v9"
)

type redisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisSink republishes every claim event from the bus to a Redis pub/sub channel.
type RedisSink struct {
	bus     *Bus
	client  redisPublisher
	channel string
	close   func() error
}

func NewRedisSink(bus *Bus, redisURL string, channel string) (*RedisSink, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis url")
	}
	client := redis.NewClient(opts)
	return &RedisSink{
		bus:     bus,
		client:  client,
		channel: channel,
		close:   client.Close,
	}, nil
}

// Run forwards events until ctx is done. A failed publish is logged and the event is dropped.
func (s *RedisSink) Run(ctx context.Context) error {
	payloads, err := s.bus.SubscribeClaimEvents(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	logger.InfoContext(ctx, "Redis claim event sink started", slogx.String("channel", s.channel))
	for payload := range payloads {
		if err := s.client.Publish(ctx, s.channel, payload).Err(); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.ErrorContext(ctx, "Failed to publish claim event to redis", err, slogx.String("channel", s.channel))
		}
	}
	return nil
}

func (s *RedisSink) Close() error {
	if s.close == nil {
		return nil
	}
	return errors.WithStack(s.close())
}
