package geocoding_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/LHProvin/exercita365b/internal/adapters/geocoding"
	domain "github.com/LHProvin/exercita365b/internal/domain/services"
)

type mockGeocoder struct {
	mock.Mock
}

func (m *mockGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(domain.Coordinates), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *mockCache) Close() error {
	return m.Called().Error(0)
}

func TestCached_Geocode(t *testing.T) {
	ctx := context.Background()
	coords := domain.Coordinates{Latitude: "40.78", Longitude: "-73.96"}
	cacheTTL := 24 * time.Hour

	t.Run("miss delegates and caches the success", func(t *testing.T) {
		next := new(mockGeocoder)
		store := new(mockCache)

		store.On("Get", mock.Anything, "geocode:central park, ny").Return("", nil).Once()
		next.On("Geocode", mock.Anything, "Central Park, NY").Return(coords, nil).Once()
		store.On("Set", mock.Anything, "geocode:central park, ny", "40.78,-73.96", cacheTTL).Return(nil).Once()

		cached := geocoding.NewCached(next, store, cacheTTL)

		got, err := cached.Geocode(ctx, "Central Park, NY")
		require.NoError(t, err)
		assert.Equal(t, coords, got)

		next.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("hit never reaches the upstream", func(t *testing.T) {
		next := new(mockGeocoder)
		store := new(mockCache)

		store.On("Get", mock.Anything, "geocode:central park, ny").Return("40.78,-73.96", nil).Once()

		cached := geocoding.NewCached(next, store, cacheTTL)

		got, err := cached.Geocode(ctx, "Central Park, NY")
		require.NoError(t, err)
		assert.Equal(t, coords, got)

		next.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("equivalent address spellings share the cache entry", func(t *testing.T) {
		next := new(mockGeocoder)
		store := new(mockCache)

		store.On("Get", mock.Anything, "geocode:central park, ny").Return("40.78,-73.96", nil).Once()

		cached := geocoding.NewCached(next, store, cacheTTL)

		got, err := cached.Geocode(ctx, "  Central   PARK, NY ")
		require.NoError(t, err)
		assert.Equal(t, coords, got)

		next.AssertExpectations(t)
	})

	t.Run("no-match result is not cached", func(t *testing.T) {
		next := new(mockGeocoder)
		store := new(mockCache)

		store.On("Get", mock.Anything, "geocode:nowhere").Return("", nil).Once()
		next.On("Geocode", mock.Anything, "nowhere").
			Return(domain.Coordinates{}, domain.ErrGeocodeNotFound).Once()

		cached := geocoding.NewCached(next, store, cacheTTL)

		_, err := cached.Geocode(ctx, "nowhere")
		require.ErrorIs(t, err, domain.ErrGeocodeNotFound)

		next.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("cache failures degrade to a direct lookup", func(t *testing.T) {
		next := new(mockGeocoder)
		store := new(mockCache)

		store.On("Get", mock.Anything, "geocode:central park, ny").
			Return("", errors.New("connection refused")).Once()
		next.On("Geocode", mock.Anything, "Central Park, NY").Return(coords, nil).Once()
		store.On("Set", mock.Anything, "geocode:central park, ny", "40.78,-73.96", cacheTTL).
			Return(errors.New("connection refused")).Once()

		cached := geocoding.NewCached(next, store, cacheTTL)

		got, err := cached.Geocode(ctx, "Central Park, NY")
		require.NoError(t, err)
		assert.Equal(t, coords, got)

		next.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("corrupt cache entry falls through to the upstream", func(t *testing.T) {
		next := new(mockGeocoder)
		store := new(mockCache)

		store.On("Get", mock.Anything, "geocode:central park, ny").Return("garbage", nil).Once()
		next.On("Geocode", mock.Anything, "Central Park, NY").Return(coords, nil).Once()
		store.On("Set", mock.Anything, "geocode:central park, ny", "40.78,-73.96", cacheTTL).Return(nil).Once()

		cached := geocoding.NewCached(next, store, cacheTTL)

		got, err := cached.Geocode(ctx, "Central Park, NY")
		require.NoError(t, err)
		assert.Equal(t, coords, got)

		next.AssertExpectations(t)
		store.AssertExpectations(t)
	})
}
