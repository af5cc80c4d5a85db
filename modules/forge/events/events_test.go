package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() entity.ClaimEvent {
	return entity.ClaimEvent{
		AssetID:      entity.Pubkey{1},
		Claimer:      entity.Pubkey{2},
		TargetChain:  5,
		AmountBurned: 100,
		ClaimedAt:    time.Unix(1_700_000_000, 0).UTC(),
	}
}

func TestBusDeliversEvents(t *testing.T) {
	bus := NewBus()
	t.Cleanup(func() { _ = bus.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	payloads, err := bus.SubscribeClaimEvents(ctx)
	require.NoError(t, err)

	require.NoError(t, bus.PublishClaimEvent(context.Background(), testEvent()))

	select {
	case payload := <-payloads:
		event, err := DecodeClaimEvent(payload)
		require.NoError(t, err)
		assert.Equal(t, testEvent(), event)
	case <-time.After(5 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestBusWithoutSubscribers(t *testing.T) {
	bus := NewBus()
	t.Cleanup(func() { _ = bus.Close() })
	assert.NoError(t, bus.PublishClaimEvent(context.Background(), testEvent()))
}

type fakeRedis struct {
	mu        sync.Mutex
	published map[string][][]byte
	err       error
}

func (f *fakeRedis) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	if f.published == nil {
		f.published = map[string][][]byte{}
	}
	f.published[channel] = append(f.published[channel], message.([]byte))
	return redis.NewIntResult(1, nil)
}

func (f *fakeRedis) count(channel string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.published[channel])
}

func TestRedisSink(t *testing.T) {
	bus := NewBus()
	t.Cleanup(func() { _ = bus.Close() })

	fake := &fakeRedis{}
	sink := &RedisSink{bus: bus, client: fake, channel: "claims"}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- sink.Run(ctx)
	}()

	// the sink subscribes asynchronously, keep publishing until it is listening
	require.Eventually(t, func() bool {
		_ = bus.PublishClaimEvent(context.Background(), testEvent())
		return fake.count("claims") > 0
	}, 5*time.Second, 20*time.Millisecond)

	fake.mu.Lock()
	event, err := DecodeClaimEvent(fake.published["claims"][0])
	fake.mu.Unlock()
	require.NoError(t, err)
	assert.Equal(t, testEvent(), event)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("sink did not stop")
	}
	assert.NoError(t, sink.Close())
}

func TestRedisSinkSurvivesPublishErrors(t *testing.T) {
	bus := NewBus()
	t.Cleanup(func() { _ = bus.Close() })

	fake := &fakeRedis{err: errors.New("connection refused")}
	sink := &RedisSink{bus: bus, client: fake, channel: "claims"}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- sink.Run(ctx)
	}()
	for i := 0; i < 5; i++ {
		require.NoError(t, bus.PublishClaimEvent(context.Background(), testEvent()))
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("sink did not stop")
	}
}

func TestNewRedisSinkRejectsBadURL(t *testing.T) {
	_, err := NewRedisSink(NewBus(), "not a url", "claims")
	assert.Error(t, err)
}
