package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/modules/forge/datagateway/mocks"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gaze-network/orb-forge/modules/forge/internal/registry"
	"github.com/gaze-network/orb-forge/modules/forge/repository/badgerdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	authority    = entity.Pubkey{0xA1}
	bridgeTarget = entity.Pubkey{0xB1}
	gatingToken  = entity.Pubkey{0xC1}
	claimer      = entity.Pubkey{0xD1}
	metadata     = entity.Pubkey{0xE1}
	fixedNow     = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
)

type testSuite struct {
	uc        *Usecase
	repo      *badgerdb.Repository
	oracle    *mocks.AuthenticityOracle
	ledger    *mocks.FungibleLedger
	publisher *mocks.ClaimEventPublisher
	queue     *mocks.DispatchQueue
}

func newTestSuite(t *testing.T) *testSuite {
	t.Helper()
	repo, err := badgerdb.Open("", true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	s := &testSuite{
		repo:      repo,
		oracle:    mocks.NewAuthenticityOracle(t),
		ledger:    mocks.NewFungibleLedger(t),
		publisher: mocks.NewClaimEventPublisher(t),
		queue:     mocks.NewDispatchQueue(t),
	}
	s.uc = New(repo, s.oracle, s.ledger, s.publisher, s.queue, WithClock(func() time.Time { return fixedNow }))
	return s
}

func (s *testSuite) initialize(t *testing.T, threshold uint64) {
	t.Helper()
	_, err := s.uc.Initialize(context.Background(), InitializeParams{
		Authority:     authority,
		BridgeTarget:  bridgeTarget,
		GatingTokenID: gatingToken,
		Threshold:     threshold,
	})
	require.NoError(t, err)
}

func feedParams(asset entity.Pubkey, chain common.ChainID) FeedOrbParams {
	return FeedOrbParams{
		AssetID:     asset,
		Claimer:     claimer,
		MetadataRef: metadata,
		TargetChain: chain,
	}
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()
	s := newTestSuite(t)

	_, err := s.uc.GetForgeLedger(ctx)
	assert.ErrorIs(t, err, errs.NotFound)

	_, err = s.uc.Initialize(ctx, InitializeParams{Authority: authority, Threshold: 0})
	assert.ErrorIs(t, err, errs.InvalidArgument)

	s.initialize(t, 100)

	ledger, err := s.uc.GetForgeLedger(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ForgeLedger{
		Authority:     authority,
		BridgeTarget:  bridgeTarget,
		GatingTokenID: gatingToken,
		Threshold:     100,
	}, *ledger)

	_, err = s.uc.Initialize(ctx, InitializeParams{Authority: claimer, Threshold: 5})
	assert.ErrorIs(t, err, errs.AlreadyInitialized)

	ledger, err = s.uc.GetForgeLedger(ctx)
	require.NoError(t, err)
	assert.Equal(t, authority, ledger.Authority, "a second initialize must not overwrite the ledger")
}

func TestAdminOperations(t *testing.T) {
	ctx := context.Background()
	s := newTestSuite(t)

	_, err := s.uc.TogglePause(ctx, authority)
	assert.ErrorIs(t, err, errs.NotFound, "admin operations need an initialized forge")

	s.initialize(t, 100)

	t.Run("only authority", func(t *testing.T) {
		_, err := s.uc.TogglePause(ctx, claimer)
		assert.ErrorIs(t, err, errs.Unauthorized)
		_, err = s.uc.UpdateThreshold(ctx, claimer, 0)
		assert.ErrorIs(t, err, errs.Unauthorized, "authority is checked before the threshold")

		ledger, err := s.uc.GetForgeLedger(ctx)
		require.NoError(t, err)
		assert.False(t, ledger.Paused)
		assert.Equal(t, uint64(100), ledger.Threshold)
	})

	t.Run("toggle twice", func(t *testing.T) {
		ledger, err := s.uc.TogglePause(ctx, authority)
		require.NoError(t, err)
		assert.True(t, ledger.Paused)
		ledger, err = s.uc.TogglePause(ctx, authority)
		require.NoError(t, err)
		assert.False(t, ledger.Paused)
	})

	t.Run("update threshold", func(t *testing.T) {
		_, err := s.uc.UpdateThreshold(ctx, authority, 0)
		assert.ErrorIs(t, err, errs.InvalidArgument)

		ledger, err := s.uc.UpdateThreshold(ctx, authority, 250)
		require.NoError(t, err)
		assert.Equal(t, uint64(250), ledger.Threshold)

		stored, err := s.uc.GetForgeLedger(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(250), stored.Threshold)
	})
}

func TestFeedOrbNativeChain(t *testing.T) {
	ctx := context.Background()
	s := newTestSuite(t)
	s.initialize(t, 100)

	asset := entity.Pubkey{1}
	s.oracle.EXPECT().Verify(mock.Anything, asset).Return(metadata, nil).Once()
	s.ledger.EXPECT().Debit(mock.Anything, gatingToken, claimer, uint64(100)).Return(nil).Once()
	s.publisher.EXPECT().PublishClaimEvent(mock.Anything, entity.ClaimEvent{
		AssetID:      asset,
		Claimer:      claimer,
		TargetChain:  common.NativeChainID,
		AmountBurned: 100,
		ClaimedAt:    fixedNow,
	}).Return(nil).Once()

	result, err := s.uc.FeedOrb(ctx, feedParams(asset, common.NativeChainID))
	require.NoError(t, err)
	assert.Equal(t, uint64(100), result.AmountBurned)
	assert.Equal(t, uint64(1), result.TotalClaimed)
	assert.Nil(t, result.Dispatch, "native claims never reach the bridge")

	record, err := s.uc.GetClaimRecord(ctx, asset)
	require.NoError(t, err)
	assert.Equal(t, result.Record, *record)
	assert.Equal(t, fixedNow, record.ClaimedAt)

	pending, err := s.repo.GetPendingDispatches(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)

	t.Run("second claim of the same asset", func(t *testing.T) {
		_, err := s.uc.FeedOrb(ctx, FeedOrbParams{
			AssetID:     asset,
			Claimer:     entity.Pubkey{0xD2},
			MetadataRef: metadata,
			TargetChain: common.NativeChainID,
		})
		assert.ErrorIs(t, err, errs.AlreadyClaimed)

		ledger, err := s.uc.GetForgeLedger(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), ledger.TotalClaimed)
	})
}

func TestFeedOrbBridged(t *testing.T) {
	ctx := context.Background()
	s := newTestSuite(t)
	s.initialize(t, 100)

	asset := entity.Pubkey{2}
	s.oracle.EXPECT().Verify(mock.Anything, asset).Return(metadata, nil).Once()
	s.ledger.EXPECT().Debit(mock.Anything, gatingToken, claimer, uint64(100)).Return(nil).Once()
	s.publisher.EXPECT().PublishClaimEvent(mock.Anything, mock.Anything).Return(nil).Once()

	var queued entity.Dispatch
	s.queue.EXPECT().Enqueue(mock.Anything, mock.Anything).
		Run(func(_ context.Context, dispatch entity.Dispatch) { queued = dispatch }).
		Return(errs.Unavailable).Once()

	result, err := s.uc.FeedOrb(ctx, feedParams(asset, 5))
	require.NoError(t, err, "a full dispatch queue must not fail the claim")
	require.NotNil(t, result.Dispatch)
	assert.Equal(t, result.Dispatch.ID, queued.ID)
	assert.Equal(t, bridgeTarget, queued.BridgeTarget)
	assert.Equal(t, entity.DispatchStatusPending, queued.Status)

	assert.Equal(t, entity.BridgePayload{AssetID: asset, Claimer: claimer, TargetChain: 5}, queued.Payload)

	pending, err := s.repo.GetPendingDispatches(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, queued.ID, pending[0].ID)
}

func TestFeedOrbAfterThresholdUpdate(t *testing.T) {
	ctx := context.Background()
	s := newTestSuite(t)
	s.initialize(t, 100)

	_, err := s.uc.UpdateThreshold(ctx, authority, 50)
	require.NoError(t, err)

	asset := entity.Pubkey{3}
	s.oracle.EXPECT().Verify(mock.Anything, asset).Return(metadata, nil).Once()
	s.ledger.EXPECT().Debit(mock.Anything, gatingToken, claimer, uint64(50)).Return(nil).Once()

	var event entity.ClaimEvent
	s.publisher.EXPECT().PublishClaimEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e entity.ClaimEvent) { event = e }).
		Return(nil).Once()
	var queued entity.Dispatch
	s.queue.EXPECT().Enqueue(mock.Anything, mock.Anything).
		Run(func(_ context.Context, dispatch entity.Dispatch) { queued = dispatch }).
		Return(nil).Once()

	result, err := s.uc.FeedOrb(ctx, feedParams(asset, 7))
	require.NoError(t, err)
	assert.EqualValues(t, 50, result.AmountBurned)
	assert.EqualValues(t, 1, result.TotalClaimed)
	assert.EqualValues(t, 50, event.AmountBurned)
	assert.Equal(t, common.ChainID(7), event.TargetChain)
	assert.Equal(t, entity.BridgePayload{AssetID: asset, Claimer: claimer, TargetChain: 7}, queued.Payload)
}

func TestFeedOrbRejected(t *testing.T) {
	ctx := context.Background()

	t.Run("missing target chain", func(t *testing.T) {
		s := newTestSuite(t)
		s.initialize(t, 100)
		_, err := s.uc.FeedOrb(ctx, feedParams(entity.Pubkey{1}, 0))
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})

	t.Run("not initialized", func(t *testing.T) {
		s := newTestSuite(t)
		_, err := s.uc.FeedOrb(ctx, feedParams(entity.Pubkey{1}, 1))
		assert.ErrorIs(t, err, errs.NotFound)
	})

	t.Run("paused", func(t *testing.T) {
		s := newTestSuite(t)
		s.initialize(t, 100)
		_, err := s.uc.TogglePause(ctx, authority)
		require.NoError(t, err)

		_, err = s.uc.FeedOrb(ctx, feedParams(entity.Pubkey{1}, 1))
		assert.ErrorIs(t, err, errs.ProgramPaused)
	})

	t.Run("metadata mismatch", func(t *testing.T) {
		s := newTestSuite(t)
		s.initialize(t, 100)
		s.oracle.EXPECT().Verify(mock.Anything, entity.Pubkey{1}).Return(entity.Pubkey{0xEE}, nil).Once()

		_, err := s.uc.FeedOrb(ctx, feedParams(entity.Pubkey{1}, 1))
		assert.ErrorIs(t, err, errs.InvalidAssetMetadata)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		s := newTestSuite(t)
		s.initialize(t, 100)
		s.oracle.EXPECT().Verify(mock.Anything, entity.Pubkey{1}).Return(metadata, nil).Once()
		s.ledger.EXPECT().Debit(mock.Anything, gatingToken, claimer, uint64(100)).Return(errs.InsufficientBalance).Once()

		_, err := s.uc.FeedOrb(ctx, feedParams(entity.Pubkey{1}, 1))
		assert.ErrorIs(t, err, errs.InsufficientBalance)

		_, err = s.uc.GetClaimRecord(ctx, entity.Pubkey{1})
		assert.ErrorIs(t, err, errs.NotFound, "a failed burn leaves no claim behind")
		ledger, err := s.uc.GetForgeLedger(ctx)
		require.NoError(t, err)
		assert.Zero(t, ledger.TotalClaimed)
	})
}

func TestFeedOrbConcurrentSameAsset(t *testing.T) {
	ctx := context.Background()
	s := newTestSuite(t)
	s.initialize(t, 100)

	asset := entity.Pubkey{3}
	var debits atomic.Int32
	s.oracle.EXPECT().Verify(mock.Anything, asset).Return(metadata, nil).Maybe()
	s.ledger.EXPECT().Debit(mock.Anything, gatingToken, claimer, uint64(100)).
		Run(func(context.Context, entity.Pubkey, entity.Pubkey, uint64) { debits.Add(1) }).
		Return(nil).Maybe()
	s.publisher.EXPECT().PublishClaimEvent(mock.Anything, mock.Anything).Return(nil).Once()

	const workers = 20
	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		claimed   atomic.Int32
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.uc.FeedOrb(ctx, feedParams(asset, common.NativeChainID))
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, errs.AlreadyClaimed):
				claimed.Add(1)
			default:
				t.Errorf("unexpected error: %+v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(workers-1), claimed.Load())
	assert.GreaterOrEqual(t, debits.Load(), int32(1))

	ledger, err := s.uc.GetForgeLedger(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), ledger.TotalClaimed)
}

func TestFeedOrbDistinctAssets(t *testing.T) {
	ctx := context.Background()
	s := newTestSuite(t)
	s.initialize(t, 100)

	s.oracle.EXPECT().Verify(mock.Anything, mock.Anything).Return(metadata, nil)
	s.ledger.EXPECT().Debit(mock.Anything, gatingToken, claimer, uint64(100)).Return(nil)
	s.publisher.EXPECT().PublishClaimEvent(mock.Anything, mock.Anything).Return(nil)

	const assets = 10
	var wg sync.WaitGroup
	for i := 0; i < assets; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.uc.FeedOrb(ctx, feedParams(entity.Pubkey{0x10, byte(i)}, common.NativeChainID))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	ledger, err := s.uc.GetForgeLedger(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(assets), ledger.TotalClaimed)

	records, err := s.uc.GetClaimRecordsByClaimer(ctx, claimer)
	require.NoError(t, err)
	assert.Len(t, records, assets)
}

func TestFeedOrbRetriesConflict(t *testing.T) {
	ctx := context.Background()
	dg := mocks.NewForgeDataGateway(t)
	tx := mocks.NewForgeDataGatewayWithTx(t)
	oracle := mocks.NewAuthenticityOracle(t)
	ledger := mocks.NewFungibleLedger(t)
	publisher := mocks.NewClaimEventPublisher(t)
	queue := mocks.NewDispatchQueue(t)
	uc := New(dg, oracle, ledger, publisher, queue, WithClock(func() time.Time { return fixedNow }))

	asset := entity.Pubkey{4}
	key := registry.DeriveClaimKey(asset)
	dg.EXPECT().GetForgeLedger(mock.Anything).Return(&entity.ForgeLedger{
		Authority:     authority,
		BridgeTarget:  bridgeTarget,
		GatingTokenID: gatingToken,
		Threshold:     7,
	}, nil).Once()
	dg.EXPECT().GetClaimRecord(mock.Anything, key).Return(nil, errs.NotFound).Once()
	oracle.EXPECT().Verify(mock.Anything, asset).Return(metadata, nil).Once()
	ledger.EXPECT().Debit(mock.Anything, gatingToken, claimer, uint64(7)).Return(nil).Once()

	dg.EXPECT().BeginForgeTx(mock.Anything).Return(tx, nil).Twice()
	tx.EXPECT().CreateClaimRecord(mock.Anything, key, mock.Anything).Return(nil).Twice()
	tx.EXPECT().IncrementTotalClaimed(mock.Anything).Return(uint64(1), nil).Twice()
	tx.EXPECT().Commit(mock.Anything).Return(errors.Wrap(errs.Conflict, "serialization failure")).Once()
	tx.EXPECT().Commit(mock.Anything).Return(nil).Once()
	tx.EXPECT().Rollback(mock.Anything).Return(nil).Twice()
	publisher.EXPECT().PublishClaimEvent(mock.Anything, mock.Anything).Return(errors.New("bus closed")).Once()

	result, err := uc.FeedOrb(ctx, feedParams(asset, common.NativeChainID))
	require.NoError(t, err, "publish failures are logged, not returned")
	assert.Equal(t, uint64(7), result.AmountBurned)
	assert.Equal(t, uint64(1), result.TotalClaimed)
}

func TestRetryOnConflictGivesUp(t *testing.T) {
	calls := 0
	err := retryOnConflict(context.Background(), func() error {
		calls++
		return errors.WithStack(errs.Conflict)
	})
	assert.ErrorIs(t, err, errs.Conflict)
	assert.Equal(t, maxConflictRetries, calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = retryOnConflict(ctx, func() error { return errs.Conflict })
	assert.ErrorIs(t, err, context.Canceled)
}
