package oracle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/modules/forge/datagateway/mocks"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	boundAsset   = entity.Pubkey{1}
	unboundAsset = entity.Pubkey{2}
	brokenAsset  = entity.Pubkey{3}
	metadataRef  = entity.Pubkey{9}
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/assets/"+boundAsset.String()+"/metadata", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"metadataRef": metadataRef.String()})
	})
	mux.HandleFunc("/v1/assets/"+brokenAsset.String()+"/metadata", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClientVerify(t *testing.T) {
	server := newTestServer(t)
	client, err := New(server.URL)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("bound", func(t *testing.T) {
		got, err := client.Verify(ctx, boundAsset)
		require.NoError(t, err)
		assert.Equal(t, metadataRef, got)
	})
	t.Run("unbound", func(t *testing.T) {
		_, err := client.Verify(ctx, unboundAsset)
		assert.ErrorIs(t, err, errs.NotFound)
	})
	t.Run("oracle down", func(t *testing.T) {
		_, err := client.Verify(ctx, brokenAsset)
		assert.ErrorIs(t, err, errs.Unavailable)
	})
}

func TestNewRequiresURL(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestCachedOracle(t *testing.T) {
	ctx := context.Background()
	oracle := mocks.NewAuthenticityOracle(t)
	oracle.EXPECT().Verify(ctx, boundAsset).Return(metadataRef, nil).Once()
	oracle.EXPECT().Verify(ctx, unboundAsset).Return(entity.Pubkey{}, errs.NotFound).Twice()

	cached := NewCachedOracle(oracle, time.Minute)
	for i := 0; i < 3; i++ {
		got, err := cached.Verify(ctx, boundAsset)
		require.NoError(t, err)
		assert.Equal(t, metadataRef, got)
	}
	for i := 0; i < 2; i++ {
		_, err := cached.Verify(ctx, unboundAsset)
		assert.ErrorIs(t, err, errs.NotFound)
	}
}

func TestCachedOracleWithServer(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"metadataRef": metadataRef.String()})
	}))
	t.Cleanup(server.Close)

	client, err := New(server.URL)
	require.NoError(t, err)
	cached := NewCachedOracle(client, time.Minute)

	for i := 0; i < 2; i++ {
		got, err := cached.Verify(context.Background(), boundAsset)
		require.NoError(t, err)
		assert.Equal(t, metadataRef, got)
	}
	assert.EqualValues(t, 1, hits.Load())
}
