// Package appconfig holds the application-wide configuration bound
// through cobra/viper flags, env vars, and an optional config file.
package appconfig

import "github.com/spf13/viper"

// Config holds settings shared across CLI commands.
type Config struct {
	Format     string `mapstructure:"format"`
	Verbose    bool   `mapstructure:"verbose"`
	StorageDir string `mapstructure:"storage_dir"`
	MaxWorkers int    `mapstructure:"max_workers"`
}

// Load decodes the process-wide viper state (flags, env, config file)
// into a Config, once cmd/root.go's OnInitialize has run.
func Load() (Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
