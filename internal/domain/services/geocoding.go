package services

import (
	"errors"
	"fmt"
)

// Geocoding domain errors.
var (
	ErrGeocodeNotFound    = errors.New("no geocoding match for address")
	ErrGeocodeUnavailable = errors.New("geocoding service unavailable")
)

// Coordinates is a latitude/longitude pair as decimal strings, matching the
// upstream geocoding contract.
type Coordinates struct {
	Latitude  string
	Longitude string
}

// String renders the pair in "lat,lon" form.
func (c Coordinates) String() string {
	return c.Latitude + "," + c.Longitude
}

// mapLinkTemplate is the fixed map-service URL template.
const mapLinkTemplate = "https://www.google.com/maps/search/?api=1&query=%s,%s"

// MapLink composes the map-service URL for the coordinates.
func MapLink(c Coordinates) string {
	return fmt.Sprintf(mapLinkTemplate, c.Latitude, c.Longitude)
}
