// Package logconfig defines the per-log-source configuration a parse
// job is submitted with, and a registry of built-in presets ported
// from the original tool's format library.
package logconfig

import "github.com/logtt/logtt/internal/masker"

// MaskRule is a format-specific masking rule, applied before the
// built-in rule set.
type MaskRule struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// LogParserConfig names a log source's header format, its
// format-specific masking rules, its tokenizer delimiters, and the
// per-algorithm extra arguments a miner factory decodes.
type LogParserConfig struct {
	Name              string                    `yaml:"name"`
	LogFormat         string                    `yaml:"log_format"`
	Masking           []MaskRule                `yaml:"masking"`
	Delimiters        []string                  `yaml:"delimiters"`
	UseBuiltinMasking bool                      `yaml:"use_builtin_masking"`
	ExArgs            map[string]map[string]any `yaml:"ex_args"`
}

// BuildMaskRules compiles a config's format-specific masking rules
// into ready-to-use masker.Rule values.
func (c LogParserConfig) BuildMaskRules() ([]masker.Rule, error) {
	rules := make([]masker.Rule, 0, len(c.Masking))
	for _, m := range c.Masking {
		r, err := masker.NewRule(m.Name, m.Pattern, m.Replacement)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// AlgorithmArgs returns the decoded ex_args map for the named
// algorithm, or an empty map if the config carries none.
func (c LogParserConfig) AlgorithmArgs(algorithm string) map[string]any {
	if c.ExArgs == nil {
		return map[string]any{}
	}
	if args, ok := c.ExArgs[algorithm]; ok {
		return args
	}
	return map[string]any{}
}
