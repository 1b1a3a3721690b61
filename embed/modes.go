package embed

import (
	"net/url"
	"strconv"
	"strings"
)

// Place builds an embed URL for a single place identified by its Place ID.
// The minimal parameter set is used: no zoom or map type is injected, only
// q, the shared language/region configuration, opts and the API key.
func (b *Builder) Place(placeID string, opts Options) (string, error) {
	if placeID == "" {
		return "", errEmpty("place ID")
	}
	params := url.Values{}
	params.Set("q", "place_id:"+placeID)
	b.applyCommon(params, opts)
	return b.generateURL(ModePlace, params)
}

// Search builds an embed URL showing results for a free-text query.
func (b *Builder) Search(query string, opts Options) (string, error) {
	if query == "" {
		return "", errEmpty("query")
	}
	params := url.Values{}
	params.Set("q", query)
	b.applyCommon(params, opts)
	return b.generateURL(ModeSearch, params)
}

// View builds an embed URL centered on a coordinate pair, using the stored
// zoom and map type.
func (b *Builder) View(lat, lng float64, opts Options) (string, error) {
	if err := validateCoords(lat, lng); err != nil {
		return "", err
	}
	params := url.Values{}
	params.Set("center", formatCoords(lat, lng))
	params.Set("zoom", strconv.Itoa(b.config.zoom))
	params.Set("maptype", string(b.config.mapType))
	b.applyCommon(params, opts)
	return b.generateURL(ModeView, params)
}

// Directions builds an embed URL for a route between origin and
// destination, using the stored travel mode, units and avoidances. The
// avoid key is emitted pipe-joined and only when the set is non-empty.
func (b *Builder) Directions(origin, destination string, opts Options) (string, error) {
	if origin == "" {
		return "", errEmpty("origin")
	}
	if destination == "" {
		return "", errEmpty("destination")
	}
	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	params.Set("mode", string(b.config.travelMode))
	params.Set("units", string(b.config.units))
	if len(b.config.avoid) > 0 {
		parts := make([]string, len(b.config.avoid))
		for i, a := range b.config.avoid {
			parts[i] = string(a)
		}
		params.Set("avoid", strings.Join(parts, "|"))
	}
	b.applyCommon(params, opts)
	return b.generateURL(ModeDirections, params)
}

// StreetView builds an embed URL for a street-view panorama at a
// coordinate pair. Camera parameters are emitted only when they differ
// from their defaults (heading 0, pitch 0, fov 90); a default camera
// produces the shortest possible URL.
func (b *Builder) StreetView(lat, lng float64, opts Options) (string, error) {
	if err := validateCoords(lat, lng); err != nil {
		return "", err
	}
	params := url.Values{}
	params.Set("location", formatCoords(lat, lng))
	if b.config.heading != DefaultHeading {
		params.Set("heading", formatFloat(b.config.heading))
	}
	if b.config.pitch != DefaultPitch {
		params.Set("pitch", formatFloat(b.config.pitch))
	}
	if b.config.fov != DefaultFOV {
		params.Set("fov", formatFloat(b.config.fov))
	}
	b.applyCommon(params, opts)
	return b.generateURL(ModeStreetView, params)
}
