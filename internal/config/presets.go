package config

import "sort"

// Presets are named figure styles selectable with --preset.
var Presets = map[string]*Config{
	"article": {
		DomainLow: -5, DomainHigh: 5, Samples: 200,
		XLabel: "x", YLabel: "y", Color: "blue", Grid: true, Smooth: true,
	},
	"beamer": {
		DomainLow: -5, DomainHigh: 5, Samples: 120,
		XLabel: "x", YLabel: "y", Color: "orange", Grid: false, Smooth: true,
	},
	"minimal": {
		DomainLow: -5, DomainHigh: 5, Samples: 100,
		XLabel: "x", YLabel: "y", Color: "black", Grid: false, Smooth: false,
	},
	"dense": {
		DomainLow: -10, DomainHigh: 10, Samples: 500,
		XLabel: "x", YLabel: "y", Color: "blue", Grid: true, Smooth: true,
	},
	"print": {
		DomainLow: -5, DomainHigh: 5, Samples: 200,
		XLabel: "x", YLabel: "y", Color: "black", Grid: true, Smooth: true,
	},
}

func GetPreset(name string) *Config {
	preset, ok := Presets[name]
	if !ok {
		return nil
	}
	copied := *preset
	return &copied
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
