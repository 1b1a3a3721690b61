package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arraypress/google-maps-embed/embed"
	"github.com/arraypress/google-maps-embed/internal/config"
)

// newBuilder resolves a builder from stored configuration and layers the
// shared persistent flags on top.
func newBuilder() (*embed.Builder, error) {
	b, err := config.NewBuilder()
	if err != nil {
		return nil, err
	}
	if apiKeyFlag != "" {
		b.SetAPIKey(apiKeyFlag)
	}
	if languageFlag != "" {
		b.SetLanguage(languageFlag)
	}
	if regionFlag != "" {
		b.SetRegion(regionFlag)
	}
	debugLog("builder ready: zoom=%d maptype=%s mode=%s units=%s", b.Zoom(), b.MapType(), b.TravelMode(), b.Units())
	return b, nil
}

// callOptions parses the repeatable --param flags into per-call options.
func callOptions() (embed.Options, error) {
	if len(paramFlags) == 0 {
		return nil, nil
	}
	opts := make(embed.Options, len(paramFlags))
	for _, p := range paramFlags {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --param %q: expected key=value", p)
		}
		opts[key] = value
	}
	return opts, nil
}

// parseIframeAttrs parses the repeatable --iframe-attr flags. Literal
// "true" and "false" values become boolean attributes so that e.g.
// allowfullscreen=false removes the attribute entirely.
func parseIframeAttrs() (map[string]any, error) {
	if len(iframeAttrs) == 0 {
		return nil, nil
	}
	attrs := make(map[string]any, len(iframeAttrs))
	for _, a := range iframeAttrs {
		key, value, ok := strings.Cut(a, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --iframe-attr %q: expected key=value", a)
		}
		switch value {
		case "true":
			attrs[key] = true
		case "false":
			attrs[key] = false
		default:
			attrs[key] = value
		}
	}
	return attrs, nil
}

// emit prints the generated URL, or an iframe tag when --iframe is set.
// On a TTY the output gets a trailing newline; piped output stays raw so
// it can be used in shell substitutions.
func emit(url string) error {
	out := url
	if iframeFlag {
		attrs, err := parseIframeAttrs()
		if err != nil {
			return err
		}
		out = embed.Iframe(url, attrs)
	}
	if streams.IsOutputTTY() {
		fmt.Fprintln(streams.Out, out)
	} else {
		fmt.Fprint(streams.Out, out)
	}
	return nil
}

// parseLatLng parses a positional "lat,lng" argument. A single combined
// argument keeps negative longitudes from being mistaken for flags.
func parseLatLng(raw string) (float64, float64, error) {
	latRaw, lngRaw, ok := strings.Cut(raw, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid coordinates %q: expected lat,lng", raw)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: expected a decimal degree value", latRaw)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngRaw), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: expected a decimal degree value", lngRaw)
	}
	return lat, lng, nil
}
