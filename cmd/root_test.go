package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arraypress/google-maps-embed/embed"
	"github.com/arraypress/google-maps-embed/internal/iostreams"
)

// runCommand executes the root command against a temp config file with the
// given content, capturing piped (non-TTY) output.
func runCommand(t *testing.T, configContent string, args ...string) (string, error) {
	t.Helper()

	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

	viper.Reset()
	t.Cleanup(viper.Reset)

	oldStreams := streams
	testStreams, out, _ := iostreams.TestNonTTY()
	streams = testStreams
	t.Cleanup(func() { streams = oldStreams })

	root := NewRootCmd()
	root.SetArgs(append([]string{"--config", configFile}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPlaceCommand(t *testing.T) {
	got, err := runCommand(t, "api_key: KEY\n", "place", "ChIJN1t_tDeuEmsRUsoyG83frY4")
	require.NoError(t, err)
	assert.Equal(t,
		"https://www.google.com/maps/embed/v1/place?key=KEY&q=place_id%3AChIJN1t_tDeuEmsRUsoyG83frY4",
		got, "piped output carries no trailing newline")
}

func TestKeyFlagOverridesConfig(t *testing.T) {
	got, err := runCommand(t, "api_key: FROMFILE\n", "search", "pizza", "--key", "FROMFLAG")
	require.NoError(t, err)
	assert.Contains(t, got, "key=FROMFLAG")
	assert.NotContains(t, got, "FROMFILE")
}

func TestMissingAPIKeyFails(t *testing.T) {
	_, err := runCommand(t, "", "search", "pizza")
	require.ErrorIs(t, err, embed.ErrMissingAPIKey)
}

func TestViewCommandFlags(t *testing.T) {
	got, err := runCommand(t, "api_key: KEY\n",
		"view", "47.6062,-122.3321", "--zoom", "15", "--maptype", "satellite")
	require.NoError(t, err)
	assert.Contains(t, got, "zoom=15")
	assert.Contains(t, got, "maptype=satellite")
	assert.Contains(t, got, "center=47.6062%2C-122.3321")
}

func TestViewCommandRejectsBadCoordinate(t *testing.T) {
	_, err := runCommand(t, "api_key: KEY\n", "view", "not-a-number,0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude")
}

func TestDirectionsCommand(t *testing.T) {
	got, err := runCommand(t, "api_key: KEY\n",
		"directions", "Seattle, WA", "Portland, OR", "--mode", "transit", "--avoid", "tolls,highways")
	require.NoError(t, err)
	assert.Contains(t, got, "mode=transit")
	assert.Contains(t, got, "avoid=tolls%7Chighways")
}

func TestDirectionsCommandRejectsInvalidMode(t *testing.T) {
	_, err := runCommand(t, "api_key: KEY\n",
		"directions", "Seattle, WA", "Portland, OR", "--mode", "teleport")
	require.Error(t, err)
	var verr *embed.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestStreetViewCommandOmitsDefaultCamera(t *testing.T) {
	got, err := runCommand(t, "api_key: KEY\n", "streetview", "47.6062,-122.3321")
	require.NoError(t, err)
	assert.NotContains(t, got, "heading=")
	assert.NotContains(t, got, "pitch=")
	assert.NotContains(t, got, "fov=")

	got, err = runCommand(t, "api_key: KEY\n",
		"streetview", "47.6062,-122.3321", "--heading", "45")
	require.NoError(t, err)
	assert.Contains(t, got, "heading=45")
}

func TestParamFlagWinsCollision(t *testing.T) {
	got, err := runCommand(t, "api_key: KEY\nlanguage: de\n",
		"search", "pizza", "--param", "language=ja")
	require.NoError(t, err)
	assert.Contains(t, got, "language=ja")
}

func TestIframeOutput(t *testing.T) {
	got, err := runCommand(t, "api_key: KEY\n",
		"place", "ChIJ123", "--iframe", "--iframe-attr", "width=800")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, `<iframe src="`))
	assert.Contains(t, got, `width="800"`)
	assert.Contains(t, got, "allowfullscreen")
	assert.True(t, strings.HasSuffix(got, "></iframe>"))
}

func TestConfigDefaultsFlowIntoURLs(t *testing.T) {
	got, err := runCommand(t, `
api_key: KEY
zoom: 6
maptype: satellite
units: imperial
`, "view", "10,20")
	require.NoError(t, err)
	assert.Contains(t, got, "zoom=6")
	assert.Contains(t, got, "maptype=satellite")
}
