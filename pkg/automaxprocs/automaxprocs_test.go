package automaxprocs

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	prev := runtime.GOMAXPROCS(0)
	t.Cleanup(func() { runtime.GOMAXPROCS(prev) })

	t.Setenv("GOMAXPROCS", "2")
	n, err := Init(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Current(), n)
	assert.GreaterOrEqual(t, n, 1)
}
