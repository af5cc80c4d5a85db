package bridge

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/modules/forge/config"
	"github.com/gaze-network/orb-forge/modules/forge/datagateway/mocks"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gaze-network/orb-forge/modules/forge/repository/badgerdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(t *testing.T, maxAttempts int) (*Dispatcher, *badgerdb.Repository, *mocks.BridgeRelay) {
	t.Helper()
	repo, err := badgerdb.Open("", true)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = repo.Close()
	})
	relay := mocks.NewBridgeRelay(t)
	dispatcher := NewDispatcher(repo, relay, config.BridgeConfig{
		MaxAttempts:   maxAttempts,
		SweepInterval: 50 * time.Millisecond,
		QueueSize:     2,
	})
	return dispatcher, repo, relay
}

func createPendingDispatch(t *testing.T, repo *badgerdb.Repository, seed byte) entity.Dispatch {
	t.Helper()
	dispatch := entity.NewDispatch(entity.BridgePayload{
		AssetID:     entity.Pubkey{seed},
		Claimer:     entity.Pubkey{2},
		TargetChain: 5,
	}, entity.Pubkey{3}, time.Now())
	require.NoError(t, repo.CreateDispatch(context.Background(), dispatch))
	return dispatch
}

func TestDispatcherProcess(t *testing.T) {
	ctx := context.Background()

	t.Run("submitted", func(t *testing.T) {
		dispatcher, repo, relay := newTestDispatcher(t, 3)
		dispatch := createPendingDispatch(t, repo, 1)
		relay.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(d *entity.Dispatch) bool {
			return d.ID == dispatch.ID
		})).Return(nil).Once()

		require.NoError(t, dispatcher.process(ctx, dispatch.ID))
		got, err := repo.GetDispatch(ctx, dispatch.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.DispatchStatusSubmitted, got.Status)
		assert.Equal(t, int32(1), got.Attempts)

		// already submitted dispatches are not sent again
		require.NoError(t, dispatcher.process(ctx, dispatch.ID))
	})

	t.Run("unavailable until attempts run out", func(t *testing.T) {
		dispatcher, repo, relay := newTestDispatcher(t, 2)
		dispatch := createPendingDispatch(t, repo, 1)
		relay.EXPECT().Submit(mock.Anything, mock.Anything).Return(errors.WithStack(errs.Unavailable)).Twice()

		require.NoError(t, dispatcher.process(ctx, dispatch.ID))
		got, err := repo.GetDispatch(ctx, dispatch.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.DispatchStatusPending, got.Status)
		assert.Equal(t, int32(1), got.Attempts)
		assert.Contains(t, got.LastError, "unavailable")

		require.NoError(t, dispatcher.process(ctx, dispatch.ID))
		got, err = repo.GetDispatch(ctx, dispatch.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.DispatchStatusFailed, got.Status)
		assert.Equal(t, int32(2), got.Attempts)
	})

	t.Run("permanent failure", func(t *testing.T) {
		dispatcher, repo, relay := newTestDispatcher(t, 5)
		dispatch := createPendingDispatch(t, repo, 1)
		relay.EXPECT().Submit(mock.Anything, mock.Anything).Return(errors.New("relay rejected dispatch")).Once()

		require.NoError(t, dispatcher.process(ctx, dispatch.ID))
		got, err := repo.GetDispatch(ctx, dispatch.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.DispatchStatusFailed, got.Status)
		assert.Equal(t, "relay rejected dispatch", got.LastError)
	})

	t.Run("missing dispatch", func(t *testing.T) {
		dispatcher, _, _ := newTestDispatcher(t, 5)
		err := dispatcher.process(ctx, entity.NewDispatch(entity.BridgePayload{}, entity.Pubkey{}, time.Now()).ID)
		assert.ErrorIs(t, err, errs.NotFound)
	})
}

func TestDispatcherEnqueue(t *testing.T) {
	ctx := context.Background()
	dispatcher, repo, _ := newTestDispatcher(t, 5)

	first := createPendingDispatch(t, repo, 1)
	require.NoError(t, dispatcher.Enqueue(ctx, first))
	require.NoError(t, dispatcher.Enqueue(ctx, first), "duplicates are ignored")
	assert.Len(t, dispatcher.queue, 1)

	require.NoError(t, dispatcher.Enqueue(ctx, createPendingDispatch(t, repo, 2)))
	err := dispatcher.Enqueue(ctx, createPendingDispatch(t, repo, 3))
	assert.ErrorIs(t, err, errs.Unavailable)
}

func TestDispatcherRun(t *testing.T) {
	dispatcher, repo, relay := newTestDispatcher(t, 5)
	leftover := createPendingDispatch(t, repo, 1)

	submitted := make(chan *entity.Dispatch, 4)
	relay.EXPECT().Submit(mock.Anything, mock.Anything).
		Run(func(_ context.Context, dispatch *entity.Dispatch) {
			submitted <- dispatch
		}).
		Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- dispatcher.Run(ctx)
	}()

	select {
	case d := <-submitted:
		assert.Equal(t, leftover.ID, d.ID, "the sweep picks up dispatches left pending")
	case <-time.After(5 * time.Second):
		t.Fatal("leftover dispatch was not submitted")
	}

	fresh := createPendingDispatch(t, repo, 2)
	require.NoError(t, dispatcher.Enqueue(context.Background(), fresh))
	select {
	case d := <-submitted:
		assert.Equal(t, fresh.ID, d.ID)
	case <-time.After(5 * time.Second):
		t.Fatal("enqueued dispatch was not submitted")
	}

	require.Eventually(t, func() bool {
		got, err := repo.GetDispatch(context.Background(), fresh.ID)
		return err == nil && got.Status == entity.DispatchStatusSubmitted
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher did not stop")
	}
}
