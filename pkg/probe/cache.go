package probe

import (
	"context"
	"time"

	"github.com/projectdiscovery/gcache"
)

// CachedProber remembers verdicts so an address repeated across ranges is
// probed only once.
type CachedProber struct {
	prober   Prober
	verdicts gcache.Cache[string, bool]
}

// NewCachedProber wraps prober with an LRU of size entries. Zero expiration
// keeps verdicts for the lifetime of the cache.
func NewCachedProber(prober Prober, size int, expiration time.Duration) *CachedProber {
	builder := gcache.New[string, bool](size).LRU()
	if expiration > 0 {
		builder = builder.Expiration(expiration)
	}
	return &CachedProber{
		prober:   prober,
		verdicts: builder.Build(),
	}
}

// Probe returns the cached verdict for address or probes it.
func (c *CachedProber) Probe(ctx context.Context, address string) bool {
	if reachable, err := c.verdicts.Get(address); err == nil {
		return reachable
	}

	reachable := c.prober.Probe(ctx, address)
	// a cancelled probe says nothing about the host
	if ctx.Err() == nil {
		_ = c.verdicts.Set(address, reachable)
	}
	return reachable
}
