package embed

// Mode identifies one of the five URL shapes supported by the Maps Embed
// API.
type Mode string

const (
	ModePlace      Mode = "place"
	ModeSearch     Mode = "search"
	ModeView       Mode = "view"
	ModeDirections Mode = "directions"
	ModeStreetView Mode = "streetview"
)

// MapType selects the base map imagery for view mode.
type MapType string

const (
	MapTypeRoadmap   MapType = "roadmap"
	MapTypeSatellite MapType = "satellite"
)

func (m MapType) valid() bool {
	return m == MapTypeRoadmap || m == MapTypeSatellite
}

// TravelMode selects the method of travel for directions mode.
type TravelMode string

const (
	TravelModeDriving   TravelMode = "driving"
	TravelModeWalking   TravelMode = "walking"
	TravelModeBicycling TravelMode = "bicycling"
	TravelModeTransit   TravelMode = "transit"
)

func (m TravelMode) valid() bool {
	switch m {
	case TravelModeDriving, TravelModeWalking, TravelModeBicycling, TravelModeTransit:
		return true
	}
	return false
}

// Avoidance names a route feature directions mode can be told to avoid.
type Avoidance string

const (
	AvoidTolls    Avoidance = "tolls"
	AvoidFerries  Avoidance = "ferries"
	AvoidHighways Avoidance = "highways"
)

func (a Avoidance) valid() bool {
	return a == AvoidTolls || a == AvoidFerries || a == AvoidHighways
}

// Units selects the measurement system for distances in directions mode.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

func (u Units) valid() bool {
	return u == UnitsMetric || u == UnitsImperial
}

// Options carries caller-supplied per-call query parameters. They are
// layered over the builder's stored configuration last, so an Options key
// wins any collision.
type Options map[string]string
