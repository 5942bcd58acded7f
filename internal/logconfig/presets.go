package logconfig

// Builtin is the registry of named presets, one per well-known log
// source format, ported from the original tool's format library.
// Each preset carries its own header format, format-specific masking
// rules, tokenizer delimiters, and per-algorithm thresholds.
var Builtin = map[string]LogParserConfig{
	"HDFS": {
		Name:              "HDFS",
		LogFormat:         "<Date> <Time> <Pid> <Level> <Component>: <Content>",
		Masking:           []MaskRule{{Name: "blk", Pattern: `blk_-?\d+`, Replacement: "<§BLK§>"}},
		Delimiters:        []string{":"},
		UseBuiltinMasking: true,
		ExArgs: map[string]map[string]any{
			"ael":   {"log_cluster_thr": 2, "merge_thr": 0.5},
			"brain": {"var_thr": 2},
			"drain": {"depth": 4, "sim_thr": 0.5},
			"jaccard_drain": {"depth": 4, "sim_thr": 0.5},
			"spell": {"sim_thr": 0.7},
		},
	},
	"Hadoop": {
		Name:              "Hadoop",
		LogFormat:         `<Date> <Time> <Level> \[<Process>\] <Component>: <Content>`,
		Delimiters:        []string{"=", ":", "_", "(", ")"},
		UseBuiltinMasking: true,
		ExArgs: map[string]map[string]any{
			"ael":           {"log_cluster_thr": 2, "merge_thr": 0.4},
			"brain":         {"var_thr": 6},
			"drain":         {"depth": 4, "sim_thr": 0.5},
			"jaccard_drain": {"depth": 4, "sim_thr": 0.5},
			"spell":         {"sim_thr": 0.7},
		},
	},
	"Spark": {
		Name:              "Spark",
		LogFormat:         "<Date> <Time> <Level> <Component>: <Content>",
		Delimiters:        []string{":"},
		UseBuiltinMasking: true,
		ExArgs: map[string]map[string]any{
			"ael":           {"log_cluster_thr": 2, "merge_thr": 0.4},
			"brain":         {"var_thr": 4},
			"drain":         {"depth": 4, "sim_thr": 0.5},
			"jaccard_drain": {"depth": 4, "sim_thr": 0.5},
			"spell":         {"sim_thr": 0.55},
		},
	},
	"Zookeeper": {
		Name:              "Zookeeper",
		LogFormat:         `<Date> <Time> - <Level>  \[<Node>:<Component>@<Id>\] - <Content>`,
		Delimiters:        []string{"=", ":"},
		UseBuiltinMasking: true,
		ExArgs: map[string]map[string]any{
			"ael":           {"log_cluster_thr": 2, "merge_thr": 0.4},
			"brain":         {"var_thr": 3},
			"drain":         {"depth": 4, "sim_thr": 0.5},
			"jaccard_drain": {"depth": 4, "sim_thr": 0.5},
			"spell":         {"sim_thr": 0.7},
		},
	},
	"BGL": {
		Name:      "BGL",
		LogFormat: "<Label> <Timestamp> <Date> <Node> <Time> <NodeRepeat> <Type> <Component> <Level> <Content>",
		Masking: []MaskRule{
			{Name: "core", Pattern: `core\.\d+`, Replacement: "<§CORE§>"},
			{Name: "addr", Pattern: `\d+:[A-Fa-f\d]{8,}`, Replacement: "<§ADDR§>"},
		},
		Delimiters:        []string{"=", "..", "(", ")"},
		UseBuiltinMasking: true,
		ExArgs: map[string]map[string]any{
			"ael":           {"log_cluster_thr": 2, "merge_thr": 0.5},
			"brain":         {"var_thr": 6},
			"drain":         {"depth": 4, "sim_thr": 0.5},
			"jaccard_drain": {"depth": 4, "sim_thr": 0.5},
			"spell":         {"sim_thr": 0.75},
		},
	},
	"HPC": {
		Name:              "HPC",
		LogFormat:         "<LogId> <Node> <Component> <State> <Time> <Flag> <Content>",
		Delimiters:        []string{"=", ":", "-"},
		UseBuiltinMasking: true,
		ExArgs: map[string]map[string]any{
			"ael":           {"log_cluster_thr": 5, "merge_thr": 0.4},
			"brain":         {"var_thr": 5},
			"drain":         {"depth": 4, "sim_thr": 0.5},
			"jaccard_drain": {"depth": 4, "sim_thr": 0.5},
			"spell":         {"sim_thr": 0.65},
		},
	},
	"Thunderbird": {
		Name:              "Thunderbird",
		LogFormat:         `<Label> <Timestamp> <Date> <User> <Month> <Day> <Time> <Location> <Component>(\[<PID>\])?: <Content>`,
		Delimiters:        []string{"=", ":"},
		UseBuiltinMasking: true,
		ExArgs: map[string]map[string]any{
			"ael":           {"log_cluster_thr": 2, "merge_thr": 0.4},
			"brain":         {"var_thr": 3},
			"drain":         {"depth": 4, "sim_thr": 0.5},
			"jaccard_drain": {"depth": 4, "sim_thr": 0.5},
			"spell":         {"sim_thr": 0.5},
		},
	},
	"Windows": {
		Name:              "Windows",
		LogFormat:         "<Date> <Time>, <Level>                  <Component>    <Content>",
		Delimiters:        []string{"=", ":", "[", "]"},
		UseBuiltinMasking: true,
		ExArgs: map[string]map[string]any{
			"ael":           {"log_cluster_thr": 2, "merge_thr": 0.4},
			"brain":         {"var_thr": 3},
			"drain":         {"depth": 5, "sim_thr": 0.7},
			"jaccard_drain": {"depth": 5, "sim_thr": 0.7},
			"spell":         {"sim_thr": 0.7},
		},
	},
	"Linux": {
		Name:              "Linux",
		LogFormat:         `<Month> <Date> <Time> <Level> <Component>(\[<PID>\])?: <Content>`,
		Delimiters:        []string{"=", ":"},
		UseBuiltinMasking: true,
		ExArgs: map[string]map[string]any{
			"ael":           {"log_cluster_thr": 2, "merge_thr": 0.6},
			"brain":         {"var_thr": 4},
			"drain":         {"depth": 6, "sim_thr": 0.39},
			"jaccard_drain": {"depth": 6, "sim_thr": 0.39},
			"spell":         {"sim_thr": 0.55},
		},
	},
	"Android": {
		Name:      "Android",
		LogFormat: "<Date> <Time>  <Pid>  <Tid> <Level> <Component>: <Content>",
		Masking:   []MaskRule{{Name: "path", Pattern: `(/[\w-]+)+`, Replacement: "<§PATH§>"}},
		Delimiters:        []string{"=", ":"},
		UseBuiltinMasking: true,
		ExArgs: map[string]map[string]any{
			"ael":           {"log_cluster_thr": 2, "merge_thr": 0.6},
			"brain":         {"var_thr": 5},
			"drain":         {"depth": 6, "sim_thr": 0.2},
			"jaccard_drain": {"depth": 6, "sim_thr": 0.2},
			"spell":         {"sim_thr": 0.95},
		},
	},
	"HealthApp": {
		Name:      "HealthApp",
		LogFormat: `<Time>\|<Component>\|<Pid>\|<Content>`,
		Masking:   []MaskRule{{Name: "seq", Pattern: `\d+##\d+##\d+##\d+##\d+##\d+`, Replacement: "<§SEQ§>"}},
		Delimiters:        []string{"=", ":", "|"},
		UseBuiltinMasking: true,
		ExArgs: map[string]map[string]any{
			"ael":           {"log_cluster_thr": 2, "merge_thr": 0.6},
			"brain":         {"var_thr": 4},
			"drain":         {"depth": 4, "sim_thr": 0.2},
			"jaccard_drain": {"depth": 4, "sim_thr": 0.2},
			"spell":         {"sim_thr": 0.5},
		},
	},
	"Apache": {
		Name:              "Apache",
		LogFormat:         `\[<Time>\] \[<Level>\] <Content>`,
		UseBuiltinMasking: true,
		ExArgs: map[string]map[string]any{
			"ael":           {"log_cluster_thr": 2, "merge_thr": 0.4},
			"brain":         {"var_thr": 4},
			"drain":         {"depth": 4, "sim_thr": 0.5},
			"jaccard_drain": {"depth": 4, "sim_thr": 0.5},
			"spell":         {"sim_thr": 0.6},
		},
	},
	"Proxifier": {
		Name:      "Proxifier",
		LogFormat: `\[<Time>\] <Program> - <Content>`,
		Masking:   []MaskRule{{Name: "duration", Pattern: `<\d+\ssec`, Replacement: "<§DURATION§>"}},
		UseBuiltinMasking: true,
		ExArgs: map[string]map[string]any{
			"ael":           {"log_cluster_thr": 2, "merge_thr": 0.4},
			"brain":         {"var_thr": 3},
			"drain":         {"depth": 3, "sim_thr": 0.6},
			"jaccard_drain": {"depth": 3, "sim_thr": 0.6},
			"spell":         {"sim_thr": 0.85},
		},
	},
	"OpenSSH": {
		Name:              "OpenSSH",
		LogFormat:         `<Date> <Day> <Time> <Component> sshd\[<Pid>\]: <Content>`,
		UseBuiltinMasking: true,
		ExArgs: map[string]map[string]any{
			"ael":           {"log_cluster_thr": 10, "merge_thr": 0.7},
			"brain":         {"var_thr": 6},
			"drain":         {"depth": 5, "sim_thr": 0.6},
			"jaccard_drain": {"depth": 5, "sim_thr": 0.6},
			"spell":         {"sim_thr": 0.8},
		},
	},
	"OpenStack": {
		Name:      "OpenStack",
		LogFormat: `<Logrecord> <Date> <Time> <Pid> <Level> <Component> \[<ADDR>\] <Content>`,
		Masking: []MaskRule{
			{Name: "instance", Pattern: `\[instance:(.*?)\]`, Replacement: "<§INST§>"},
			{Name: "path", Pattern: `(/[\w-]+)+`, Replacement: "<§PATH§>"},
		},
		UseBuiltinMasking: true,
		ExArgs: map[string]map[string]any{
			"ael":           {"log_cluster_thr": 6, "merge_thr": 0.5},
			"brain":         {"var_thr": 5},
			"drain":         {"depth": 5, "sim_thr": 0.5},
			"jaccard_drain": {"depth": 5, "sim_thr": 0.5},
			"spell":         {"sim_thr": 0.9},
		},
	},
	"Mac": {
		Name:              "Mac",
		LogFormat:         `<Month>  <Date> <Time> <User> <Component>\[<PID>\]( \(<Address>\))?: <Content>`,
		UseBuiltinMasking: true,
		ExArgs: map[string]map[string]any{
			"ael":           {"log_cluster_thr": 2, "merge_thr": 0.6},
			"brain":         {"var_thr": 5},
			"drain":         {"depth": 6, "sim_thr": 0.7},
			"jaccard_drain": {"depth": 6, "sim_thr": 0.7},
			"spell":         {"sim_thr": 0.6},
		},
	},
}

// Preset looks up a built-in config by name.
func Preset(name string) (LogParserConfig, bool) {
	c, ok := Builtin[name]
	return c, ok
}

// PresetNames lists every built-in preset name.
func PresetNames() []string {
	names := make([]string, 0, len(Builtin))
	for name := range Builtin {
		names = append(names, name)
	}
	return names
}
