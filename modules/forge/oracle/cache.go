package oracle

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/modules/forge/datagateway"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	gocache "github.com/patrickmn/go-cache"
)

var _ datagateway.AuthenticityOracle = (*CachedOracle)(nil)

// CachedOracle remembers successful verifications for a while. Failures are never cached.
type CachedOracle struct {
	oracle datagateway.AuthenticityOracle
	cache  *gocache.Cache
}

func NewCachedOracle(oracle datagateway.AuthenticityOracle, ttl time.Duration) *CachedOracle {
	return &CachedOracle{
		oracle: oracle,
		cache:  gocache.New(ttl, 2*ttl),
	}
}

func (c *CachedOracle) Verify(ctx context.Context, assetID entity.Pubkey) (entity.Pubkey, error) {
	key := assetID.String()
	if cached, found := c.cache.Get(key); found {
		return cached.(entity.Pubkey), nil
	}
	metadataRef, err := c.oracle.Verify(ctx, assetID)
	if err != nil {
		return entity.Pubkey{}, errors.WithStack(err)
	}
	c.cache.SetDefault(key, metadataRef)
	return metadataRef, nil
}
