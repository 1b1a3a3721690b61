package embed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetZoomClamps(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{name: "within range", in: 15, want: 15},
		{name: "lower bound", in: 0, want: 0},
		{name: "upper bound", in: 21, want: 21},
		{name: "below range clamps up", in: -3, want: 0},
		{name: "above range clamps down", in: 30, want: 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New("KEY")
			b.SetZoom(tt.in)
			assert.Equal(t, tt.want, b.Zoom())
		})
	}
}

func TestCameraSettersClamp(t *testing.T) {
	tests := []struct {
		name string
		set  func(*Builder, float64) *Builder
		get  func(*Builder) float64
		in   float64
		want float64
	}{
		{name: "heading in range", set: (*Builder).SetHeading, get: (*Builder).Heading, in: 45, want: 45},
		{name: "heading above 360", set: (*Builder).SetHeading, get: (*Builder).Heading, in: 400, want: 360},
		{name: "heading below 0", set: (*Builder).SetHeading, get: (*Builder).Heading, in: -10, want: 0},
		{name: "pitch in range", set: (*Builder).SetPitch, get: (*Builder).Pitch, in: -30, want: -30},
		{name: "pitch above 90", set: (*Builder).SetPitch, get: (*Builder).Pitch, in: 120, want: 90},
		{name: "pitch below -90", set: (*Builder).SetPitch, get: (*Builder).Pitch, in: -95, want: -90},
		{name: "fov in range", set: (*Builder).SetFOV, get: (*Builder).FOV, in: 60, want: 60},
		{name: "fov above 100", set: (*Builder).SetFOV, get: (*Builder).FOV, in: 150, want: 100},
		{name: "fov below 10", set: (*Builder).SetFOV, get: (*Builder).FOV, in: 5, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New("KEY")
			tt.set(b, tt.in)
			assert.Equal(t, tt.want, tt.get(b))
		})
	}
}

func TestEnumSettersReject(t *testing.T) {
	b := New("KEY")

	var verr *ValidationError

	err := b.SetMapType("terrain")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MapTypeRoadmap, b.MapType(), "rejected write must not mutate")

	err = b.SetTravelMode("flying")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, TravelModeDriving, b.TravelMode())

	err = b.SetUnits("nautical")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, UnitsMetric, b.Units())

	require.NoError(t, b.SetMapType(MapTypeSatellite))
	assert.Equal(t, MapTypeSatellite, b.MapType())
}

func TestSetAvoidWholeSetRejection(t *testing.T) {
	b := New("KEY")
	require.NoError(t, b.SetAvoid([]Avoidance{AvoidTolls}))

	// One invalid member rejects the entire call and keeps the prior set.
	err := b.SetAvoid([]Avoidance{AvoidFerries, "traffic"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []Avoidance{AvoidTolls}, b.Avoid())
}

func TestSetAvoidDeduplicatesPreservingOrder(t *testing.T) {
	b := New("KEY")
	require.NoError(t, b.SetAvoid([]Avoidance{AvoidHighways, AvoidTolls, AvoidHighways}))
	assert.Equal(t, []Avoidance{AvoidHighways, AvoidTolls}, b.Avoid())
}

func TestChainedConfiguration(t *testing.T) {
	b := New("KEY").SetZoom(8).SetLanguage("de").SetRegion("de").SetHeading(90)

	assert.Equal(t, 8, b.Zoom())
	assert.Equal(t, "de", b.Language())
	assert.Equal(t, "de", b.Region())
	assert.Equal(t, 90.0, b.Heading())
}

func mutateEverything(t *testing.T, b *Builder) {
	t.Helper()
	b.SetZoom(3).SetLanguage("fr").SetRegion("fr").SetHeading(180).SetPitch(45).SetFOV(20)
	require.NoError(t, b.SetMapType(MapTypeSatellite))
	require.NoError(t, b.SetTravelMode(TravelModeTransit))
	require.NoError(t, b.SetUnits(UnitsImperial))
	require.NoError(t, b.SetAvoid([]Avoidance{AvoidFerries}))
}

func TestResetOptionsRestoresAllDefaults(t *testing.T) {
	b := New("KEY")
	mutateEverything(t, b)

	b.ResetOptions()

	assert.Equal(t, "KEY", b.APIKey(), "reset keeps the API key")
	assert.Equal(t, DefaultZoom, b.Zoom())
	assert.Equal(t, MapTypeRoadmap, b.MapType())
	assert.Equal(t, "", b.Language())
	assert.Equal(t, "", b.Region())
	assert.Equal(t, DefaultHeading, b.Heading())
	assert.Equal(t, DefaultPitch, b.Pitch())
	assert.Equal(t, DefaultFOV, b.FOV())
	assert.Equal(t, TravelModeDriving, b.TravelMode())
	assert.Empty(t, b.Avoid())
	assert.Equal(t, UnitsMetric, b.Units())
}

func TestGroupResetsTouchOnlyTheirGroup(t *testing.T) {
	b := New("KEY")
	mutateEverything(t, b)
	b.ResetMapOptions()

	assert.Equal(t, DefaultZoom, b.Zoom())
	assert.Equal(t, MapTypeRoadmap, b.MapType())
	// Other groups untouched.
	assert.Equal(t, 180.0, b.Heading())
	assert.Equal(t, TravelModeTransit, b.TravelMode())
	assert.Equal(t, "fr", b.Language())

	b.ResetStreetViewOptions()
	assert.Equal(t, DefaultHeading, b.Heading())
	assert.Equal(t, DefaultPitch, b.Pitch())
	assert.Equal(t, DefaultFOV, b.FOV())
	assert.Equal(t, UnitsImperial, b.Units())

	b.ResetDirectionsOptions()
	assert.Equal(t, TravelModeDriving, b.TravelMode())
	assert.Empty(t, b.Avoid())
	assert.Equal(t, UnitsMetric, b.Units())
	assert.Equal(t, "fr", b.Language(), "localization only resets with ResetOptions")
}

func TestAvoidGetterReturnsCopy(t *testing.T) {
	b := New("KEY")
	require.NoError(t, b.SetAvoid([]Avoidance{AvoidTolls, AvoidFerries}))

	got := b.Avoid()
	got[0] = "mutated"
	assert.Equal(t, []Avoidance{AvoidTolls, AvoidFerries}, b.Avoid())
}
