package registry

import (
	"context"
	"testing"
	"time"

	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/modules/forge/datagateway/mocks"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeriveClaimKey(t *testing.T) {
	a := entity.Pubkey{1}
	b := entity.Pubkey{2}
	assert.Equal(t, DeriveClaimKey(a), DeriveClaimKey(a))
	assert.NotEqual(t, DeriveClaimKey(a), DeriveClaimKey(b))
}

func TestRecordClaim(t *testing.T) {
	ctx := context.Background()
	assetID := entity.Pubkey{9}
	claimer := entity.Pubkey{4}
	claimedAt := time.Date(2024, 5, 1, 10, 0, 0, 123456789, time.UTC)

	t.Run("stores record under derived key", func(t *testing.T) {
		mockDg := mocks.NewForgeDataGatewayWithTx(t)
		mockDg.EXPECT().CreateClaimRecord(mock.Anything, DeriveClaimKey(assetID), entity.ClaimRecord{
			AssetID:     assetID,
			Claimer:     claimer,
			ClaimedAt:   claimedAt.Truncate(time.Second),
			TargetChain: 2,
		}).Return(nil)

		record, err := RecordClaim(ctx, mockDg, assetID, claimer, claimedAt, 2)
		require.NoError(t, err)
		assert.Equal(t, assetID, record.AssetID)
		assert.Equal(t, int64(1714557600), record.ClaimedAt.Unix())
	})

	t.Run("collision", func(t *testing.T) {
		mockDg := mocks.NewForgeDataGatewayWithTx(t)
		mockDg.EXPECT().CreateClaimRecord(mock.Anything, mock.Anything, mock.Anything).Return(errs.AlreadyClaimed)

		_, err := RecordClaim(ctx, mockDg, assetID, claimer, claimedAt, 1)
		assert.ErrorIs(t, err, errs.AlreadyClaimed)
	})
}

func TestIsClaimed(t *testing.T) {
	ctx := context.Background()
	claimed := entity.Pubkey{1}
	unclaimed := entity.Pubkey{2}

	mockDg := mocks.NewForgeDataGateway(t)
	mockDg.EXPECT().GetClaimRecord(mock.Anything, DeriveClaimKey(claimed)).Return(&entity.ClaimRecord{AssetID: claimed}, nil)
	mockDg.EXPECT().GetClaimRecord(mock.Anything, DeriveClaimKey(unclaimed)).Return(nil, errs.NotFound)

	r := New(mockDg)
	ok, err := r.IsClaimed(ctx, claimed)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.IsClaimed(ctx, unclaimed)
	require.NoError(t, err)
	assert.False(t, ok)
}
