package crypto

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	privateKey, publicKey, err := GenerateKey()
	require.NoError(t, err)

	privClient, err := New(privateKey)
	require.NoError(t, err)
	assert.Equal(t, publicKey, privClient.PublicKey())

	pubClient := NewVerifier()
	assert.Empty(t, pubClient.PublicKey())

	signature, err := privClient.Sign("orb-forge:feed:hello")
	require.NoError(t, err)

	verified, err := pubClient.Verify("orb-forge:feed:hello", signature, base58.Decode(publicKey))
	require.NoError(t, err)
	assert.True(t, verified)

	verified, err = pubClient.Verify("orb-forge:feed:other", signature, base58.Decode(publicKey))
	require.NoError(t, err)
	assert.False(t, verified)

	verified, err = pubClient.Verify("orb-forge:feed:hello", "not-a-signature", base58.Decode(publicKey))
	require.NoError(t, err)
	assert.False(t, verified)
}

func TestInvalidKeys(t *testing.T) {
	_, err := New(base58.Encode([]byte{1, 2, 3}))
	assert.ErrorIs(t, err, errs.InvalidArgument)

	pubClient, err := New("")
	require.NoError(t, err)
	_, err = pubClient.Sign("message")
	assert.ErrorIs(t, err, errs.Unsupported)
	_, err = pubClient.Verify("message", "sig", []byte{1})
	assert.ErrorIs(t, err, errs.InvalidArgument)
}
