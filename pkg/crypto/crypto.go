// Package crypto signs and verifies request messages with ed25519 keys encoded in base58.
package crypto

import (
	"crypto/ed25519"
	"crypto/rand"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common/errs"
)

type Client struct {
	privateKey ed25519.PrivateKey
}

// NewVerifier creates a client without a private key. It can verify but not sign.
func NewVerifier() *Client {
	return &Client{}
}

// New creates a client from a base58 private key. Either a 32-byte seed or a 64-byte
// expanded key is accepted. An empty key yields a verify-only client.
func New(privateKeyStr string) (*Client, error) {
	if privateKeyStr == "" {
		return NewVerifier(), nil
	}
	raw := base58.Decode(privateKeyStr)
	switch len(raw) {
	case ed25519.SeedSize:
		return &Client{privateKey: ed25519.NewKeyFromSeed(raw)}, nil
	case ed25519.PrivateKeySize:
		return &Client{privateKey: ed25519.PrivateKey(raw)}, nil
	default:
		return nil, errors.Wrapf(errs.InvalidArgument, "private key must be %d or %d bytes, got %d", ed25519.SeedSize, ed25519.PrivateKeySize, len(raw))
	}
}

// GenerateKey returns a fresh keypair as base58 strings (seed, public key).
func GenerateKey() (privateKey string, publicKey string, err error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return "", "", errors.Wrap(err, "generate ed25519 key")
	}
	return base58.Encode(priv.Seed()), base58.Encode(pub), nil
}

// PublicKey returns the base58 public key of the client's private key.
func (c *Client) PublicKey() string {
	if c.privateKey == nil {
		return ""
	}
	return base58.Encode(c.privateKey.Public().(ed25519.PublicKey))
}

// Sign returns the base58 signature of message.
func (c *Client) Sign(message string) (string, error) {
	if c.privateKey == nil {
		return "", errors.Wrap(errs.Unsupported, "client has no private key")
	}
	return base58.Encode(ed25519.Sign(c.privateKey, []byte(message))), nil
}

// Verify reports whether sigStr is a valid signature of message by pubKey.
// Malformed signatures are reported as invalid, not as errors.
func (c *Client) Verify(message, sigStr string, pubKey []byte) (bool, error) {
	if len(pubKey) != ed25519.PublicKeySize {
		return false, errors.Wrapf(errs.InvalidArgument, "public key must be %d bytes", ed25519.PublicKeySize)
	}
	sig := base58.Decode(sigStr)
	if len(sig) != ed25519.SignatureSize {
		return false, nil
	}
	return ed25519.Verify(ed25519.PublicKey(pubKey), []byte(message), sig), nil
}
