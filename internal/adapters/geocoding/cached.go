package geocoding

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	domain "github.com/LHProvin/exercita365b/internal/domain/services"
	ports "github.com/LHProvin/exercita365b/internal/ports/services"
	"github.com/LHProvin/exercita365b/pkg/logger"
)

// Log messages of the caching decorator.
const (
	logGeocodeCacheHit   = "geocoding cache hit"
	logGeocodeCacheRead  = "geocoding cache read failed"
	logGeocodeCacheWrite = "geocoding cache write failed"
)

const cacheKeyPrefix = "geocode:"

// Cached decorates a geocoder with a cache of successful lookups. Cache
// failures degrade to a direct lookup instead of failing the request.
type Cached struct {
	next  ports.Geocoder
	cache ports.Cache
	ttl   time.Duration
}

// NewCached wraps next with the given cache.
func NewCached(next ports.Geocoder, cache ports.Cache, ttl time.Duration) *Cached {
	return &Cached{
		next:  next,
		cache: cache,
		ttl:   ttl,
	}
}

// Geocode serves the address from cache when possible, otherwise delegates
// and caches the successful result.
func (c *Cached) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGeocode))
	key := cacheKey(address)

	cached, err := c.cache.Get(ctx, key)
	if err != nil {
		log.Warn(ctx, logGeocodeCacheRead, zap.Error(err))
	} else if cached != "" {
		if coords, ok := parseCoordinates(cached); ok {
			log.Debug(ctx, logGeocodeCacheHit, zap.String("address", address))
			return coords, nil
		}
	}

	coords, err := c.next.Geocode(ctx, address)
	if err != nil {
		return domain.Coordinates{}, err
	}

	if err := c.cache.Set(ctx, key, coords.String(), c.ttl); err != nil {
		log.Warn(ctx, logGeocodeCacheWrite, zap.Error(err))
	}

	return coords, nil
}

// cacheKey normalizes the address so trivially different spellings share an
// entry.
func cacheKey(address string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(address), " "))
	return cacheKeyPrefix + normalized
}

func parseCoordinates(value string) (domain.Coordinates, bool) {
	lat, lon, ok := strings.Cut(value, ",")
	if !ok || lat == "" || lon == "" {
		return domain.Coordinates{}, false
	}
	return domain.Coordinates{Latitude: lat, Longitude: lon}, true
}
