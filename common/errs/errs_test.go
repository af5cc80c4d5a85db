package errs

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := errors.Wrap(errors.WithStack(AlreadyClaimed), "failed to record claim")
	assert.ErrorIs(t, err, AlreadyClaimed)
	assert.Equal(t, AlreadyClaimed, KindOf(err))
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
}

func TestPublicErrorKeepsKind(t *testing.T) {
	err := WithPublicMessage(errors.WithStack(InvalidArgument), "threshold")
	var pub *PublicError
	assert.True(t, errors.As(err, &pub))
	assert.Equal(t, "threshold: invalid argument", pub.Message())
	assert.ErrorIs(t, err, InvalidArgument)
}
