package httphandler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gaze-network/orb-forge/common"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/modules/forge/config"
	"github.com/gaze-network/orb-forge/modules/forge/datagateway/mocks"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gaze-network/orb-forge/modules/forge/repository/badgerdb"
	"github.com/gaze-network/orb-forge/modules/forge/usecase"
	"github.com/gaze-network/orb-forge/pkg/crypto"
	"github.com/gaze-network/orb-forge/pkg/errorhandler"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Unix(1_700_000_000, 0)

type signer struct {
	client *crypto.Client
	pubkey entity.Pubkey
	// seconds past testNow of the next signature, so every signed request is distinct
	offset *int64
}

func newSigner(t *testing.T) signer {
	t.Helper()
	seed, pub, err := crypto.GenerateKey()
	require.NoError(t, err)
	client, err := crypto.New(seed)
	require.NoError(t, err)
	pubkey, err := entity.ParsePubkey(pub)
	require.NoError(t, err)
	return signer{client: client, pubkey: pubkey, offset: new(int64)}
}

func (s signer) sign(t *testing.T, action string, fields ...string) signedRequest {
	t.Helper()
	timestamp := testNow.Unix() + *s.offset
	*s.offset++
	sig, err := s.client.Sign(SignedMessage(action, timestamp, fields...))
	require.NoError(t, err)
	return signedRequest{Timestamp: timestamp, Signature: sig}
}

type testEnv struct {
	app       *fiber.App
	oracle    *mocks.AuthenticityOracle
	ledger    *mocks.FungibleLedger
	authority signer
	claimer   signer
	tokenID   entity.Pubkey
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repo, err := badgerdb.Open("", true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	oracle := mocks.NewAuthenticityOracle(t)
	ledger := mocks.NewFungibleLedger(t)
	publisher := mocks.NewClaimEventPublisher(t)
	publisher.EXPECT().PublishClaimEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
	queue := mocks.NewDispatchQueue(t)
	queue.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(nil).Maybe()

	uc := usecase.New(repo, oracle, ledger, publisher, queue, usecase.WithClock(func() time.Time { return testNow }))
	conf := config.Default()
	handler := New(uc, conf)
	handler.now = func() time.Time { return testNow }

	app := fiber.New(fiber.Config{ErrorHandler: errorhandler.NewHTTPErrorHandler()})
	require.NoError(t, handler.Mount(app))

	return &testEnv{
		app:       app,
		oracle:    oracle,
		ledger:    ledger,
		authority: newSigner(t),
		claimer:   newSigner(t),
		tokenID:   entity.Pubkey{7},
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func (e *testEnv) initialize(t *testing.T, threshold uint64) (int, map[string]any) {
	t.Helper()
	bridgeTarget := entity.Pubkey{8}
	thresholdStr := strconv.FormatUint(threshold, 10)
	return e.do(t, http.MethodPost, "/forge/v1/initialize", initializeRequest{
		signedRequest: e.authority.sign(t, actionInitialize,
			e.authority.pubkey.String(), bridgeTarget.String(), e.tokenID.String(), thresholdStr),
		Authority:     e.authority.pubkey,
		BridgeTarget:  bridgeTarget,
		GatingTokenID: e.tokenID,
		Threshold:     threshold,
	})
}

func (e *testEnv) feed(t *testing.T, assetID, metadataRef entity.Pubkey, targetChain common.ChainID) (int, map[string]any) {
	t.Helper()
	return e.do(t, http.MethodPost, "/forge/v1/feed", feedOrbRequest{
		signedRequest: e.claimer.sign(t, actionFeedOrb,
			assetID.String(), e.claimer.pubkey.String(), metadataRef.String(), targetChain.String()),
		AssetID:     assetID,
		Claimer:     e.claimer.pubkey,
		MetadataRef: metadataRef,
		TargetChain: targetChain,
	})
}

func TestInitializeAndReadLedger(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.initialize(t, 100)
	require.Equal(t, http.StatusCreated, status, body)

	status, body = env.initialize(t, 100)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, errs.AlreadyInitialized.Error(), body["error"])

	status, body = env.do(t, http.MethodGet, "/forge/v1/ledger", nil)
	require.Equal(t, http.StatusOK, status)
	result := body["result"].(map[string]any)
	assert.Equal(t, env.authority.pubkey.String(), result["authority"])
	assert.Equal(t, "100", result["threshold"])
	assert.Equal(t, "0.0000001", result["thresholdUi"])
	assert.Equal(t, "0", result["totalClaimed"])
	assert.Equal(t, false, result["paused"])
}

func TestSignatures(t *testing.T) {
	env := newTestEnv(t)
	stranger := newSigner(t)

	t.Run("signed by someone else", func(t *testing.T) {
		status, _ := env.do(t, http.MethodPost, "/forge/v1/initialize", initializeRequest{
			signedRequest: stranger.sign(t, actionInitialize, "whatever"),
			Authority:     env.authority.pubkey,
			BridgeTarget:  entity.Pubkey{8},
			GatingTokenID: env.tokenID,
			Threshold:     100,
		})
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("missing signature", func(t *testing.T) {
		status, _ := env.do(t, http.MethodPost, "/forge/v1/pause/toggle", togglePauseRequest{Caller: env.authority.pubkey})
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("stale timestamp", func(t *testing.T) {
		req := togglePauseRequest{Caller: env.authority.pubkey}
		staleAt := testNow.Add(-MaxClockSkew - time.Second).Unix()
		sig, err := env.authority.client.Sign(SignedMessage(actionTogglePause, staleAt, env.authority.pubkey.String()))
		require.NoError(t, err)
		req.signedRequest = signedRequest{Timestamp: staleAt, Signature: sig}
		status, _ := env.do(t, http.MethodPost, "/forge/v1/pause/toggle", req)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("missing identity", func(t *testing.T) {
		status, body := env.do(t, http.MethodPost, "/forge/v1/pause/toggle", togglePauseRequest{})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body["error"], "caller")
	})
}

func TestAdminEndpoints(t *testing.T) {
	env := newTestEnv(t)
	status, _ := env.initialize(t, 100)
	require.Equal(t, http.StatusCreated, status)

	stranger := newSigner(t)
	status, _ = env.do(t, http.MethodPost, "/forge/v1/pause/toggle", togglePauseRequest{
		signedRequest: stranger.sign(t, actionTogglePause, stranger.pubkey.String()),
		Caller:        stranger.pubkey,
	})
	assert.Equal(t, http.StatusForbidden, status, "only the authority may pause")

	status, body := env.do(t, http.MethodPost, "/forge/v1/threshold", updateThresholdRequest{
		signedRequest: env.authority.sign(t, actionUpdateThreshold, env.authority.pubkey.String(), "250"),
		Caller:        env.authority.pubkey,
		Threshold:     250,
	})
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "250", body["result"].(map[string]any)["threshold"])

	status, _ = env.do(t, http.MethodPost, "/forge/v1/threshold", updateThresholdRequest{
		signedRequest: env.authority.sign(t, actionUpdateThreshold, env.authority.pubkey.String(), "0"),
		Caller:        env.authority.pubkey,
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = env.do(t, http.MethodPost, "/forge/v1/pause/toggle", togglePauseRequest{
		signedRequest: env.authority.sign(t, actionTogglePause, env.authority.pubkey.String()),
		Caller:        env.authority.pubkey,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["result"].(map[string]any)["paused"])

	status, _ = env.feed(t, entity.Pubkey{1}, entity.Pubkey{2}, 1)
	assert.Equal(t, http.StatusLocked, status)
}

func TestReplayedSignatures(t *testing.T) {
	env := newTestEnv(t)
	status, _ := env.initialize(t, 100)
	require.Equal(t, http.StatusCreated, status)

	toggle := togglePauseRequest{
		signedRequest: env.authority.sign(t, actionTogglePause, env.authority.pubkey.String()),
		Caller:        env.authority.pubkey,
	}
	status, body := env.do(t, http.MethodPost, "/forge/v1/pause/toggle", toggle)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, true, body["result"].(map[string]any)["paused"])

	status, _ = env.do(t, http.MethodPost, "/forge/v1/pause/toggle", toggle)
	assert.Equal(t, http.StatusForbidden, status, "a signed toggle is accepted once")

	status, body = env.do(t, http.MethodGet, "/forge/v1/ledger", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["result"].(map[string]any)["paused"])

	update := func(threshold uint64) updateThresholdRequest {
		return updateThresholdRequest{
			signedRequest: env.authority.sign(t, actionUpdateThreshold, env.authority.pubkey.String(), strconv.FormatUint(threshold, 10)),
			Caller:        env.authority.pubkey,
			Threshold:     threshold,
		}
	}
	older, newer := update(250), update(300)
	status, _ = env.do(t, http.MethodPost, "/forge/v1/threshold", older)
	require.Equal(t, http.StatusOK, status)
	status, _ = env.do(t, http.MethodPost, "/forge/v1/threshold", newer)
	require.Equal(t, http.StatusOK, status)

	status, _ = env.do(t, http.MethodPost, "/forge/v1/threshold", older)
	assert.Equal(t, http.StatusForbidden, status)
	status, body = env.do(t, http.MethodGet, "/forge/v1/ledger", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "300", body["result"].(map[string]any)["threshold"])
}

func TestFeedOrbEndpoint(t *testing.T) {
	env := newTestEnv(t)
	status, _ := env.initialize(t, 100)
	require.Equal(t, http.StatusCreated, status)

	asset, metadata := entity.Pubkey{1}, entity.Pubkey{2}
	env.oracle.EXPECT().Verify(mock.Anything, asset).Return(metadata, nil)
	env.ledger.EXPECT().Debit(mock.Anything, env.tokenID, env.claimer.pubkey, uint64(100)).Return(nil).Once()

	status, body := env.feed(t, asset, metadata, 1)
	require.Equal(t, http.StatusCreated, status, body)
	result := body["result"].(map[string]any)
	assert.Equal(t, "100", result["amountBurned"])
	assert.Equal(t, "1", result["totalClaimed"])
	assert.NotContains(t, result, "dispatchId")
	claim := result["claim"].(map[string]any)
	assert.Equal(t, asset.String(), claim["assetId"])
	assert.EqualValues(t, testNow.Unix(), claim["claimedAt"])

	status, body = env.feed(t, asset, metadata, 1)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, errs.AlreadyClaimed.Error(), body["error"])

	status, body = env.do(t, http.MethodGet, "/forge/v1/claims/"+asset.String(), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, env.claimer.pubkey.String(), body["result"].(map[string]any)["claimer"])

	status, body = env.do(t, http.MethodGet, "/forge/v1/claims?claimer="+env.claimer.pubkey.String(), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["result"].(map[string]any)["claims"], 1)

	status, _ = env.do(t, http.MethodGet, "/forge/v1/claims/"+entity.Pubkey{3}.String(), nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = env.do(t, http.MethodGet, "/forge/v1/claims/not-a-key", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestFeedOrbErrors(t *testing.T) {
	env := newTestEnv(t)
	status, _ := env.initialize(t, 100)
	require.Equal(t, http.StatusCreated, status)

	t.Run("metadata mismatch", func(t *testing.T) {
		env.oracle.EXPECT().Verify(mock.Anything, entity.Pubkey{10}).Return(entity.Pubkey{99}, nil).Once()
		status, _ := env.feed(t, entity.Pubkey{10}, entity.Pubkey{2}, 1)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		env.oracle.EXPECT().Verify(mock.Anything, entity.Pubkey{11}).Return(entity.Pubkey{2}, nil).Once()
		env.ledger.EXPECT().Debit(mock.Anything, env.tokenID, env.claimer.pubkey, uint64(100)).Return(errs.InsufficientBalance).Once()
		status, _ := env.feed(t, entity.Pubkey{11}, entity.Pubkey{2}, 1)
		assert.Equal(t, http.StatusPaymentRequired, status)
	})

	t.Run("bridged claim returns dispatch id", func(t *testing.T) {
		env.oracle.EXPECT().Verify(mock.Anything, entity.Pubkey{12}).Return(entity.Pubkey{2}, nil).Once()
		env.ledger.EXPECT().Debit(mock.Anything, env.tokenID, env.claimer.pubkey, uint64(100)).Return(nil).Once()
		status, body := env.feed(t, entity.Pubkey{12}, entity.Pubkey{2}, 5)
		require.Equal(t, http.StatusCreated, status, body)
		assert.NotEmpty(t, body["result"].(map[string]any)["dispatchId"])
	})

	t.Run("missing target chain", func(t *testing.T) {
		status, body := env.feed(t, entity.Pubkey{13}, entity.Pubkey{2}, 0)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body["error"], "targetChain")
	})

	t.Run("malformed body", func(t *testing.T) {
		status, _ := env.do(t, http.MethodPost, "/forge/v1/feed", map[string]any{"assetId": "???"})
		assert.Equal(t, http.StatusBadRequest, status)
	})
}
