// Package embed builds parameter-validated URLs and iframe tags for
// Google's Maps Embed API.
//
// A Builder holds a mutable configuration record (zoom, map type, camera
// angles, travel options, API key) and exposes one method per embed mode:
// Place, Search, View, Directions and StreetView. Each call merges the
// mode's required parameters with the stored configuration and any
// caller-supplied per-call Options, then serializes the result onto the
// fixed endpoint. No network request is ever made; the caller decides what
// to do with the URL.
//
// Builders are not safe for concurrent mutation. Create one builder per
// logical configuration context, or serialize access externally.
package embed

import (
	"net/url"
	"strconv"
)

// BaseURL is the fixed Maps Embed API endpoint every generated URL is
// rooted at.
const BaseURL = "https://www.google.com/maps/embed/v1"

// Builder assembles Maps Embed API URLs from stored configuration defaults
// and per-call overrides.
type Builder struct {
	config config
}

// New returns a Builder initialized with the documented defaults and the
// given API key. An empty key is accepted here and rejected later, at URL
// generation time, with ErrMissingAPIKey.
func New(apiKey string) *Builder {
	return &Builder{config: defaultConfig(apiKey)}
}

// generateURL appends the API key to params and serializes them onto the
// endpoint for the given mode. This is the one mandatory failure check in
// the package: an empty key fails every mode.
func (b *Builder) generateURL(mode Mode, params url.Values) (string, error) {
	if b.config.apiKey == "" {
		return "", ErrMissingAPIKey
	}
	params.Set("key", b.config.apiKey)
	return BaseURL + "/" + string(mode) + "?" + params.Encode(), nil
}

// applyCommon layers the shared configuration and per-call options into
// params: language and region only when non-empty (empty means "let Google
// infer"), then opts key-by-key so a per-call value wins any collision.
func (b *Builder) applyCommon(params url.Values, opts Options) {
	if b.config.language != "" {
		params.Set("language", b.config.language)
	}
	if b.config.region != "" {
		params.Set("region", b.config.region)
	}
	for k, v := range opts {
		params.Set(k, v)
	}
}

// formatFloat renders a float the way the Embed API expects: no exponent,
// no trailing zeros.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatCoords renders a latitude/longitude pair as "lat,lng".
func formatCoords(lat, lng float64) string {
	return formatFloat(lat) + "," + formatFloat(lng)
}

// validateCoords checks a coordinate pair against geographic range.
func validateCoords(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return errOutOfRange("latitude", lat, -90, 90)
	}
	if lng < -180 || lng > 180 {
		return errOutOfRange("longitude", lng, -180, 180)
	}
	return nil
}
