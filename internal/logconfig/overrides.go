package logconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOverride reads a user-supplied YAML file describing a
// LogParserConfig, for log sources that don't match any built-in
// preset or that need one of a preset's fields adjusted.
func LoadOverride(path string) (LogParserConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LogParserConfig{}, fmt.Errorf("reading config override %s: %w", path, err)
	}

	var cfg LogParserConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LogParserConfig{}, fmt.Errorf("parsing config override %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyOverride layers a partially-populated override config onto a
// base config (typically a built-in preset), replacing only the
// fields the override actually sets. Masking rules are the exception:
// the override's rules are appended after the base's rather than
// replacing them, and ex_args are merged per algorithm name.
func ApplyOverride(base, override LogParserConfig) LogParserConfig {
	result := base
	if override.Name != "" {
		result.Name = override.Name
	}
	if override.LogFormat != "" {
		result.LogFormat = override.LogFormat
	}
	if len(override.Masking) > 0 {
		result.Masking = append(append([]MaskRule{}, base.Masking...), override.Masking...)
	}
	if len(override.Delimiters) > 0 {
		result.Delimiters = override.Delimiters
	}
	if override.ExArgs != nil {
		merged := make(map[string]map[string]any, len(base.ExArgs))
		for k, v := range base.ExArgs {
			merged[k] = v
		}
		for k, v := range override.ExArgs {
			merged[k] = v
		}
		result.ExArgs = merged
	}
	return result
}
