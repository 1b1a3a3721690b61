package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arraypress/google-maps-embed/embed"
)

// newStreetViewCmd creates the streetview command
func newStreetViewCmd() *cobra.Command {
	var (
		heading float64
		pitch   float64
		fov     float64
	)

	streetViewCmd := &cobra.Command{
		Use:   "streetview <lat,lng>",
		Short: "Build an embed URL for a street-view panorama",
		Long: `Build an embed URL showing a street-view panorama at a coordinate pair.
Camera flags left at their defaults are omitted from the URL, e.g.:

  mapembed streetview 47.6062,-122.3321 --heading 45 --fov 60`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, lng, err := parseLatLng(args[0])
			if err != nil {
				return err
			}

			b, err := newBuilder()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("heading") {
				b.SetHeading(heading)
			}
			if cmd.Flags().Changed("pitch") {
				b.SetPitch(pitch)
			}
			if cmd.Flags().Changed("fov") {
				b.SetFOV(fov)
			}
			opts, err := callOptions()
			if err != nil {
				return err
			}

			url, err := b.StreetView(lat, lng, opts)
			if err != nil {
				return err
			}
			return emit(url)
		},
	}

	// Define flags
	streetViewCmd.Flags().Float64Var(&heading, "heading", embed.DefaultHeading, "camera heading in degrees 0-360 (clamped)")
	streetViewCmd.Flags().Float64Var(&pitch, "pitch", embed.DefaultPitch, "camera pitch in degrees -90-90 (clamped)")
	streetViewCmd.Flags().Float64Var(&fov, "fov", embed.DefaultFOV, "field of view in degrees 10-100 (clamped)")

	return streetViewCmd
}
