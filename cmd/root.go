// Package cmd provides the command-line interface for the mapembed tool.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arraypress/google-maps-embed/internal/iostreams"
	"github.com/arraypress/google-maps-embed/internal/version"
)

var (
	cfgFile string
	debug   bool
	rootCmd *cobra.Command

	// streams is swapped for in-memory buffers in tests.
	streams = iostreams.System()

	// Persistent flags shared by every mode command.
	apiKeyFlag   string
	languageFlag string
	regionFlag   string
	paramFlags   []string
	iframeFlag   bool
	iframeAttrs  []string
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.go. It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) error {
	if rootCmd == nil {
		rootCmd = NewRootCmd()
	}
	return rootCmd.ExecuteContext(ctx)
}

// NewRootCmd creates and returns the root command for mapembed
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mapembed",
		Short: "Build Google Maps Embed API URLs and iframe tags",
		Long: `mapembed assembles parameter-validated URLs for Google's Maps Embed API
and can wrap them in ready-to-paste iframe tags.

Defaults (API key, zoom, map type, travel options) come from the config
file or MAPEMBED_* environment variables; command flags override them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default locations: $XDG_CONFIG_HOME/mapembed/config.yaml, ~/.config/mapembed/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "key", "", "Google Maps Embed API key (overrides config)")
	rootCmd.PersistentFlags().StringVar(&languageFlag, "language", "", "interface language code, e.g. de")
	rootCmd.PersistentFlags().StringVar(&regionFlag, "region", "", "region bias code, e.g. gb")
	rootCmd.PersistentFlags().StringArrayVar(&paramFlags, "param", nil, "extra query parameter key=value (repeatable, wins any collision)")
	rootCmd.PersistentFlags().BoolVar(&iframeFlag, "iframe", false, "emit an iframe tag instead of a bare URL")
	rootCmd.PersistentFlags().StringArrayVar(&iframeAttrs, "iframe-attr", nil, "iframe attribute key=value (repeatable, true/false become boolean attributes)")

	// Add subcommands
	rootCmd.AddCommand(newPlaceCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newDirectionsCmd())
	rootCmd.AddCommand(newStreetViewCmd())
	rootCmd.AddCommand(newConfigCmd())

	// PersistentPreRun handles configuration initialization
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initConfig()
	}

	return rootCmd
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find config file in standard locations
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "mapembed"))
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get user home directory: %w", err)
			}
			viper.AddConfigPath(filepath.Join(home, ".config", "mapembed"))
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("MAPEMBED")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		// Config file not found; ignore error if desired
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return nil
}

// debugLog writes a formatted line to stderr when --debug is set.
func debugLog(format string, args ...any) {
	if debug {
		fmt.Fprintf(streams.ErrOut, "[debug] "+format+"\n", args...)
	}
}
