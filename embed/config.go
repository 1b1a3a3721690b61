package embed

// Configuration defaults. Street-view camera parameters are emitted only
// when they differ from these values.
const (
	DefaultZoom    = 12
	DefaultHeading = 0.0
	DefaultPitch   = 0.0
	DefaultFOV     = 90.0
)

// config is the builder's configuration record. It is created with
// defaults at construction, mutated through the setters, and read on every
// URL-generation call. It is never shared between builders.
type config struct {
	apiKey     string
	zoom       int
	mapType    MapType
	language   string
	region     string
	heading    float64
	pitch      float64
	fov        float64
	travelMode TravelMode
	avoid      []Avoidance
	units      Units
}

func defaultConfig(apiKey string) config {
	return config{
		apiKey:     apiKey,
		zoom:       DefaultZoom,
		mapType:    MapTypeRoadmap,
		heading:    DefaultHeading,
		pitch:      DefaultPitch,
		fov:        DefaultFOV,
		travelMode: TravelModeDriving,
		units:      UnitsMetric,
	}
}

// Validation policy: continuously-ranged numeric setters clamp to the
// nearest boundary and return the builder for chaining; enum and set
// setters reject invalid input with a ValidationError and leave the
// configuration untouched. Free-form string setters cannot fail.

// SetAPIKey replaces the stored API key.
func (b *Builder) SetAPIKey(key string) *Builder {
	b.config.apiKey = key
	return b
}

// SetZoom stores the zoom level, clamped to [0, 21].
func (b *Builder) SetZoom(zoom int) *Builder {
	b.config.zoom = clampInt(zoom, 0, 21)
	return b
}

// SetLanguage stores the interface language code (e.g. "de"). Empty means
// the key is omitted from generated URLs.
func (b *Builder) SetLanguage(lang string) *Builder {
	b.config.language = lang
	return b
}

// SetRegion stores the region bias code (e.g. "gb"). Empty means the key
// is omitted from generated URLs.
func (b *Builder) SetRegion(region string) *Builder {
	b.config.region = region
	return b
}

// SetHeading stores the street-view camera heading in degrees, clamped to
// [0, 360].
func (b *Builder) SetHeading(heading float64) *Builder {
	b.config.heading = clampFloat(heading, 0, 360)
	return b
}

// SetPitch stores the street-view camera pitch in degrees, clamped to
// [-90, 90].
func (b *Builder) SetPitch(pitch float64) *Builder {
	b.config.pitch = clampFloat(pitch, -90, 90)
	return b
}

// SetFOV stores the street-view field of view in degrees, clamped to
// [10, 100].
func (b *Builder) SetFOV(fov float64) *Builder {
	b.config.fov = clampFloat(fov, 10, 100)
	return b
}

// SetMapType stores the map type for view mode. Unrecognized values are
// rejected with a ValidationError.
func (b *Builder) SetMapType(mt MapType) error {
	if !mt.valid() {
		return errInvalidEnum("map type", mt, "roadmap, satellite")
	}
	b.config.mapType = mt
	return nil
}

// SetTravelMode stores the travel mode for directions mode. Unrecognized
// values are rejected with a ValidationError.
func (b *Builder) SetTravelMode(tm TravelMode) error {
	if !tm.valid() {
		return errInvalidEnum("travel mode", tm, "driving, walking, bicycling, transit")
	}
	b.config.travelMode = tm
	return nil
}

// SetUnits stores the distance units for directions mode. Unrecognized
// values are rejected with a ValidationError.
func (b *Builder) SetUnits(u Units) error {
	if !u.valid() {
		return errInvalidEnum("units", u, "metric, imperial")
	}
	b.config.units = u
	return nil
}

// SetAvoid replaces the set of route features to avoid, preserving the
// given order and dropping duplicates. One invalid member rejects the
// whole call: the stored set is left unchanged.
func (b *Builder) SetAvoid(avoid []Avoidance) error {
	cleaned := make([]Avoidance, 0, len(avoid))
	seen := make(map[Avoidance]bool, len(avoid))
	for _, a := range avoid {
		if !a.valid() {
			return errInvalidEnum("avoid", a, "tolls, ferries, highways")
		}
		if seen[a] {
			continue
		}
		seen[a] = true
		cleaned = append(cleaned, a)
	}
	b.config.avoid = cleaned
	return nil
}

// APIKey returns the stored API key.
func (b *Builder) APIKey() string { return b.config.apiKey }

// Zoom returns the stored zoom level.
func (b *Builder) Zoom() int { return b.config.zoom }

// MapType returns the stored map type.
func (b *Builder) MapType() MapType { return b.config.mapType }

// Language returns the stored language code, possibly empty.
func (b *Builder) Language() string { return b.config.language }

// Region returns the stored region code, possibly empty.
func (b *Builder) Region() string { return b.config.region }

// Heading returns the stored street-view heading.
func (b *Builder) Heading() float64 { return b.config.heading }

// Pitch returns the stored street-view pitch.
func (b *Builder) Pitch() float64 { return b.config.pitch }

// FOV returns the stored street-view field of view.
func (b *Builder) FOV() float64 { return b.config.fov }

// TravelMode returns the stored travel mode.
func (b *Builder) TravelMode() TravelMode { return b.config.travelMode }

// Avoid returns a copy of the stored avoidance set in insertion order.
func (b *Builder) Avoid() []Avoidance {
	out := make([]Avoidance, len(b.config.avoid))
	copy(out, b.config.avoid)
	return out
}

// Units returns the stored distance units.
func (b *Builder) Units() Units { return b.config.units }

// ResetOptions restores every configuration field except the API key to
// its documented default.
func (b *Builder) ResetOptions() *Builder {
	b.config = defaultConfig(b.config.apiKey)
	return b
}

// ResetMapOptions restores zoom and map type to their defaults.
func (b *Builder) ResetMapOptions() *Builder {
	b.config.zoom = DefaultZoom
	b.config.mapType = MapTypeRoadmap
	return b
}

// ResetStreetViewOptions restores the street-view camera to its defaults.
func (b *Builder) ResetStreetViewOptions() *Builder {
	b.config.heading = DefaultHeading
	b.config.pitch = DefaultPitch
	b.config.fov = DefaultFOV
	return b
}

// ResetDirectionsOptions restores travel mode, avoidances and units to
// their defaults.
func (b *Builder) ResetDirectionsOptions() *Builder {
	b.config.travelMode = TravelModeDriving
	b.config.avoid = nil
	b.config.units = UnitsMetric
	return b
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
