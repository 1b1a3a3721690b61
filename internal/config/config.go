// Package config provides viper-backed configuration management for the
// mapembed tool: stored defaults become the starting state of an
// embed.Builder, with command-line flags layered on top by the command
// layer.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/arraypress/google-maps-embed/embed"
)

// GetValue retrieves a configuration value by key
func GetValue(key string) (string, error) {
	if !viper.IsSet(key) {
		return "", fmt.Errorf("key '%s' not found in configuration", key)
	}
	return viper.GetString(key), nil
}

// SetValue sets a configuration value by key and persists it to the config
// file, creating the file from the template on first use.
func SetValue(key string, value string) error {
	viper.Set(key, value)
	err := viper.WriteConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return err
	}
	path, perr := DefaultConfigPath()
	if perr != nil {
		return perr
	}
	if err := EnsureConfigExists(path); err != nil {
		return err
	}
	viper.SetConfigFile(path)
	return viper.WriteConfig()
}

// NewBuilder constructs an embed.Builder from the resolved configuration.
// Precedence below flags: environment (MAPEMBED_*) -> config file ->
// library defaults. Invalid stored enum values surface as the library's
// validation errors rather than being silently dropped.
func NewBuilder() (*embed.Builder, error) {
	b := embed.New(viper.GetString("api_key"))

	if viper.IsSet("zoom") {
		b.SetZoom(viper.GetInt("zoom"))
	}
	if viper.IsSet("language") {
		b.SetLanguage(viper.GetString("language"))
	}
	if viper.IsSet("region") {
		b.SetRegion(viper.GetString("region"))
	}
	if viper.IsSet("maptype") {
		if err := b.SetMapType(embed.MapType(viper.GetString("maptype"))); err != nil {
			return nil, fmt.Errorf("config key 'maptype': %w", err)
		}
	}
	if viper.IsSet("mode") {
		if err := b.SetTravelMode(embed.TravelMode(viper.GetString("mode"))); err != nil {
			return nil, fmt.Errorf("config key 'mode': %w", err)
		}
	}
	if viper.IsSet("units") {
		if err := b.SetUnits(embed.Units(viper.GetString("units"))); err != nil {
			return nil, fmt.Errorf("config key 'units': %w", err)
		}
	}
	if viper.IsSet("avoid") {
		raw := viper.GetStringSlice("avoid")
		avoid := make([]embed.Avoidance, len(raw))
		for i, a := range raw {
			avoid[i] = embed.Avoidance(a)
		}
		if err := b.SetAvoid(avoid); err != nil {
			return nil, fmt.Errorf("config key 'avoid': %w", err)
		}
	}

	return b, nil
}
