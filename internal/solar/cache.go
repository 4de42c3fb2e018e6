package solar

import (
	"context"
	"fmt"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/heliostack/dcsim/internal/metrics"
)

// DefaultCacheCapacity bounds the number of distinct locations kept.
const DefaultCacheCapacity = 64

// cacheKey identifies a profile by its exact coordinate pair.
type cacheKey struct {
	lat, lon float64
}

func (k cacheKey) String() string {
	return strconv.FormatFloat(k.lat, 'g', -1, 64) + "," + strconv.FormatFloat(k.lon, 'g', -1, 64)
}

// ProfileCache memoizes Provider lookups behind a bounded LRU. Safe from any
// number of goroutines; concurrent first misses on the same key are
// coalesced into a single provider fetch.
type ProfileCache struct {
	provider Provider
	entries  *lru.Cache[cacheKey, *ResourceProfile]
	flights  singleflight.Group
}

// NewProfileCache wraps provider with an LRU of the given capacity.
// Capacity must be positive; use DefaultCacheCapacity when unsure.
func NewProfileCache(provider Provider, capacity int) (*ProfileCache, error) {
	if provider == nil {
		return nil, fmt.Errorf("provider cannot be nil")
	}
	entries, err := lru.New[cacheKey, *ResourceProfile](capacity)
	if err != nil {
		return nil, fmt.Errorf("creating profile cache: %w", err)
	}
	return &ProfileCache{provider: provider, entries: entries}, nil
}

// Profile returns the cached profile for the location, fetching it from
// the underlying provider on first use. Provider errors are not cached.
func (c *ProfileCache) Profile(ctx context.Context, latitude, longitude float64) (*ResourceProfile, error) {
	key := cacheKey{lat: latitude, lon: longitude}
	if profile, ok := c.entries.Get(key); ok {
		metrics.ProfileCacheHits.Inc()
		return profile, nil
	}

	v, err, _ := c.flights.Do(key.String(), func() (interface{}, error) {
		// A racing lookup may have populated the entry while this caller
		// waited for the flight slot.
		if profile, ok := c.entries.Get(key); ok {
			metrics.ProfileCacheHits.Inc()
			return profile, nil
		}
		metrics.ProfileCacheMisses.Inc()
		profile, err := c.provider.Profile(ctx, latitude, longitude)
		if err != nil {
			return nil, err
		}
		c.entries.Add(key, profile)
		return profile, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*ResourceProfile), nil
}

// Len returns the number of cached locations.
func (c *ProfileCache) Len() int {
	return c.entries.Len()
}
