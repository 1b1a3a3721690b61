package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arraypress/google-maps-embed/embed"
)

// newViewCmd creates the view command
func newViewCmd() *cobra.Command {
	var (
		zoom    int
		mapType string
	)

	viewCmd := &cobra.Command{
		Use:   "view <lat,lng>",
		Short: "Build an embed URL centered on a coordinate",
		Long: `Build an embed URL showing a plain map centered on a coordinate pair,
using the configured zoom and map type, e.g.:

  mapembed view 47.6062,-122.3321 --zoom 15 --maptype satellite`,
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
			if cmd.Flags().Changed("zoom") {
				b.SetZoom(zoom)
			}
			if cmd.Flags().Changed("maptype") {
				if err := b.SetMapType(embed.MapType(mapType)); err != nil {
					return err
				}
			}
			opts, err := callOptions()
			if err != nil {
				return err
			}

			url, err := b.View(lat, lng, opts)
			if err != nil {
				return err
			}
			return emit(url)
		},
	}

	// Define flags
	viewCmd.Flags().IntVar(&zoom, "zoom", embed.DefaultZoom, "zoom level 0-21 (out-of-range values are clamped)")
	viewCmd.Flags().StringVar(&mapType, "maptype", string(embed.MapTypeRoadmap), "map type: roadmap or satellite")

	return viewCmd
}
