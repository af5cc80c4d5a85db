package entity

import (
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common/errs"
)

const PubkeySize = 32

// Pubkey is a 32-byte identity: an account, a token id, an asset id or a metadata reference.
// Its text form is base58.
type Pubkey [PubkeySize]byte

func NewPubkeyFromBytes(b []byte) (Pubkey, error) {
	var pk Pubkey
	if len(b) != PubkeySize {
		return pk, errors.Wrapf(errs.InvalidArgument, "pubkey must be %d bytes, got %d", PubkeySize, len(b))
	}
	copy(pk[:], b)
	return pk, nil
}

// ParsePubkey decodes a base58 pubkey.
func ParsePubkey(s string) (Pubkey, error) {
	if s == "" {
		return Pubkey{}, errors.Wrap(errs.InvalidArgument, "empty pubkey")
	}
	pk, err := NewPubkeyFromBytes(base58.Decode(s))
	if err != nil {
		return Pubkey{}, errors.Wrapf(err, "invalid pubkey %q", s)
	}
	return pk, nil
}

func (p Pubkey) String() string {
	return base58.Encode(p[:])
}

func (p Pubkey) Bytes() []byte {
	return p[:]
}

func (p Pubkey) IsZero() bool {
	return p == Pubkey{}
}

func (p Pubkey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Pubkey) UnmarshalText(text []byte) error {
	pk, err := ParsePubkey(string(text))
	if err != nil {
		return errors.WithStack(err)
	}
	*p = pk
	return nil
}
