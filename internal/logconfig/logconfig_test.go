package logconfig

import "testing"

func TestPresetLookup(t *testing.T) {
	cfg, ok := Preset("HDFS")
	if !ok {
		t.Fatalf("expected HDFS preset to exist")
	}
	if cfg.LogFormat == "" {
		t.Fatalf("expected HDFS preset to have a log format")
	}
	if _, ok := Preset("NotARealPreset"); ok {
		t.Fatalf("expected unknown preset lookup to fail")
	}
}

func TestAlgorithmArgsDecodesPerPreset(t *testing.T) {
	cfg, _ := Preset("HDFS")
	args := cfg.AlgorithmArgs("drain")
	if args["depth"] != 4 {
		t.Fatalf("expected HDFS drain depth=4, got %v", args["depth"])
	}

	none := cfg.AlgorithmArgs("does-not-exist")
	if len(none) != 0 {
		t.Fatalf("expected empty args for an algorithm the preset doesn't configure")
	}
}

func TestBuildMaskRulesCompiles(t *testing.T) {
	cfg, _ := Preset("HDFS")
	rules, err := cfg.BuildMaskRules()
	if err != nil {
		t.Fatalf("BuildMaskRules: %v", err)
	}
	if len(rules) != 1 {
		t.Fatalf("expected HDFS to carry 1 format-specific mask rule, got %d", len(rules))
	}
}

func TestApplyOverrideReplacesOnlySetFields(t *testing.T) {
	base, _ := Preset("HDFS")
	override := LogParserConfig{LogFormat: "<Content>"}

	merged := ApplyOverride(base, override)
	if merged.LogFormat != "<Content>" {
		t.Fatalf("expected overridden log format, got %q", merged.LogFormat)
	}
	if merged.Name != base.Name {
		t.Fatalf("expected name to remain unchanged when override doesn't set it")
	}
}

func TestPresetNamesIncludesAllSixteen(t *testing.T) {
	names := PresetNames()
	if len(names) != len(Builtin) {
		t.Fatalf("PresetNames length mismatch: %d vs %d", len(names), len(Builtin))
	}
}
