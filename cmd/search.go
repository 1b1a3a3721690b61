package cmd

import (
	"github.com/spf13/cobra"
)

// newSearchCmd creates the search command
func newSearchCmd() *cobra.Command {
	searchCmd := &cobra.Command{
		Use:   "search \"query\"",
		Short: "Build an embed URL showing results for a text search",
		Long: `Build an embed URL showing the map results for a free-text search, e.g.:

  mapembed search "coffee near Pike Place"`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	return searchCmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	b, err := newBuilder()
	if err != nil {
		return err
	}
	opts, err := callOptions()
	if err != nil {
		return err
	}

	url, err := b.Search(args[0], opts)
	if err != nil {
		return err
	}
	return emit(url)
}
