package toolconfig

// Presets groups named configurations by the subcommand they're meant for,
// the same two-level shape cmd/inttrig's `--preset` flag looks them up by.
var Presets = map[string]map[string]*Config{
	"table": {
		"compact": {N: 32, OutputMode: "table"},
		"default": {N: 128, OutputMode: "table"},
		"precise": {N: 512, OutputMode: "table"},
	},
	"bench": {
		"quick": {
			N: 128, SweepStart: 0, SweepEnd: 16383, SweepStep: 64, OutputMode: "summary",
		},
		"full": {
			N: 128, SweepStart: 0, SweepEnd: 16383, SweepStep: 1, OutputMode: "plot",
		},
		"size-sweep": {
			N: 0, SweepStart: 0, SweepEnd: 16383, SweepStep: 8, OutputMode: "plot",
		},
	},
	"wave": {
		"slow": {N: 256, SweepStart: 0, SweepEnd: 16383, SweepStep: 32, OutputMode: "live"},
		"fast": {N: 128, SweepStart: 0, SweepEnd: 16383, SweepStep: 256, OutputMode: "live"},
	},
}

// GetPreset looks up a named preset within a subcommand's group, returning
// nil if either the subcommand or the preset name is unknown.
func GetPreset(subcommand, preset string) *Config {
	group, ok := Presets[subcommand]
	if !ok {
		return nil
	}
	cfg, ok := group[preset]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets returns the preset names registered for a subcommand, or nil
// if the subcommand has none.
func ListPresets(subcommand string) []string {
	group, ok := Presets[subcommand]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
