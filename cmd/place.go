package cmd

import (
	"github.com/spf13/cobra"
)

// newPlaceCmd creates the place command
func newPlaceCmd() *cobra.Command {
	placeCmd := &cobra.Command{
		Use:   "place <place-id>",
		Short: "Build an embed URL for a single place",
		Long: `Build an embed URL pinning a single place identified by its Google
Place ID, e.g.:

  mapembed place ChIJN1t_tDeuEmsRUsoyG83frY4`,
		Args: cobra.ExactArgs(1),
		RunE: runPlace,
	}

	return placeCmd
}

func runPlace(cmd *cobra.Command, args []string) error {
	b, err := newBuilder()
	if err != nil {
		return err
	}
	opts, err := callOptions()
	if err != nil {
		return err
	}

	url, err := b.Place(args[0], opts)
	if err != nil {
		return err
	}
	return emit(url)
}
