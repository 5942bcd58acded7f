package appconfig

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDecodesViperState(t *testing.T) {
	viper.Reset()
	viper.Set("format", "json")
	viper.Set("verbose", true)
	viper.Set("storage_dir", "/var/lib/logtt")
	viper.Set("max_workers", 4)
	defer viper.Reset()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Format != "json" || !cfg.Verbose || cfg.StorageDir != "/var/lib/logtt" || cfg.MaxWorkers != 4 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
