// Package geocoding provides the external address lookup adapter.
package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/LHProvin/exercita365b/internal/config"
	domain "github.com/LHProvin/exercita365b/internal/domain/services"
	"github.com/LHProvin/exercita365b/pkg/logger"
	"github.com/LHProvin/exercita365b/pkg/resilience"
)

// Log and error messages.
const (
	methodGeocode = "Geocode"

	errCtxBuildRequest  = "failed to build geocoding request"
	errCtxExecRequest   = "geocoding request failed"
	errCtxDecodeResults = "failed to decode geocoding response"

	logGeocodeResolved = "address resolved"
	logGeocodeNoMatch  = "no geocoding match"
	logGeocodeFailed   = "geocoding lookup failed"
)

const searchPath = "/search"

// searchResult is the subset of the upstream response the adapter reads.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Nominatim resolves addresses against a Nominatim-compatible search API.
// Transient failures are retried with exponential backoff.
type Nominatim struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	retry      *resilience.Retry
}

// NewNominatim creates a geocoder backed by the configured endpoint.
func NewNominatim(cfg *config.GeocodingConfig) *Nominatim {
	retryConfig := resilience.DefaultRetryConfig()
	retryConfig.ShouldRetry = func(err error) bool {
		return errors.Is(err, domain.ErrGeocodeUnavailable)
	}

	return &Nominatim{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		retry:      resilience.NewRetry("geocoding", retryConfig),
	}
}

// Geocode looks up the address and returns its coordinates. It returns
// domain.ErrGeocodeNotFound when the upstream has no match and
// domain.ErrGeocodeUnavailable when the upstream cannot be reached.
func (n *Nominatim) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGeocode))

	var coords domain.Coordinates
	err := n.retry.Execute(ctx, func() error {
		var lookupErr error
		coords, lookupErr = n.lookup(ctx, address)
		return lookupErr
	})
	if err != nil {
		if errors.Is(err, domain.ErrGeocodeNotFound) {
			log.Info(ctx, logGeocodeNoMatch, zap.String("address", address))
		} else {
			log.Error(ctx, logGeocodeFailed, zap.String("address", address), zap.Error(err))
		}
		return domain.Coordinates{}, err
	}

	log.Debug(ctx, logGeocodeResolved,
		zap.String("address", address),
		zap.String("coordinates", coords.String()))

	return coords, nil
}

func (n *Nominatim) lookup(ctx context.Context, address string) (domain.Coordinates, error) {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("limit", "1")
	query.Set("q", address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		n.baseURL+searchPath+"?"+query.Encode(), nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%s: %w", errCtxBuildRequest, err)
	}
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: %s: %w", domain.ErrGeocodeUnavailable, errCtxExecRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinates{}, fmt.Errorf("%w: unexpected status %d", domain.ErrGeocodeUnavailable, resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: %s: %w", domain.ErrGeocodeUnavailable, errCtxDecodeResults, err)
	}

	if len(results) == 0 || results[0].Lat == "" || results[0].Lon == "" {
		return domain.Coordinates{}, domain.ErrGeocodeNotFound
	}

	return domain.Coordinates{
		Latitude:  results[0].Lat,
		Longitude: results[0].Lon,
	}, nil
}
