package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arraypress/google-maps-embed/embed"
)

// newDirectionsCmd creates the directions command
func newDirectionsCmd() *cobra.Command {
	var (
		travelMode string
		units      string
		avoid      []string
	)

	directionsCmd := &cobra.Command{
		Use:   "directions <origin> <destination>",
		Short: "Build an embed URL for a route",
		Long: `Build an embed URL showing a route between two endpoints, e.g.:

  mapembed directions "Seattle, WA" "Portland, OR" --mode transit --avoid tolls,highways`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBuilder()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("mode") {
				if err := b.SetTravelMode(embed.TravelMode(travelMode)); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("units") {
				if err := b.SetUnits(embed.Units(units)); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("avoid") {
				avoidances := make([]embed.Avoidance, len(avoid))
				for i, a := range avoid {
					avoidances[i] = embed.Avoidance(a)
				}
				if err := b.SetAvoid(avoidances); err != nil {
					return err
				}
			}
			opts, err := callOptions()
			if err != nil {
				return err
			}

			url, err := b.Directions(args[0], args[1], opts)
			if err != nil {
				return err
			}
			return emit(url)
		},
	}

	// Define flags
	directionsCmd.Flags().StringVar(&travelMode, "mode", string(embed.TravelModeDriving), "travel mode: driving, walking, bicycling or transit")
	directionsCmd.Flags().StringVar(&units, "units", string(embed.UnitsMetric), "distance units: metric or imperial")
	directionsCmd.Flags().StringSliceVar(&avoid, "avoid", nil, "route features to avoid: tolls, ferries, highways")

	return directionsCmd
}
