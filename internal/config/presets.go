package config

import "sort"

// Presets are canned grids per problem. "coarse" reproduces the worked
// pie-cooling scenario (h=10 truncates the grid at x=40).
var Presets = map[string]map[string]*Config{
	"cooling": {
		"coarse": {
			Problem: "cooling",
			Grid:    GridConfig{X0: 0, Y0: 160, H: 10, XF: 47},
		},
		"minute": {
			Problem: "cooling",
			Grid:    GridConfig{X0: 0, Y0: 160, H: 1, XF: 47},
		},
		"fine": {
			Problem: "cooling",
			Grid:    GridConfig{X0: 0, Y0: 160, H: 0.1, XF: 47},
		},
	},
	"exponential": {
		"unit": {
			Problem: "exponential",
			Grid:    GridConfig{X0: 0, Y0: 1, H: 0.1, XF: 2},
		},
		"fine": {
			Problem: "exponential",
			Grid:    GridConfig{X0: 0, Y0: 1, H: 0.01, XF: 2},
		},
	},
	"decay": {
		"default": {
			Problem: "decay",
			Grid:    GridConfig{X0: 0, Y0: 100, H: 0.25, XF: 10},
		},
	},
	"logistic": {
		"default": {
			Problem: "logistic",
			Grid:    GridConfig{X0: 0, Y0: 1, H: 0.2, XF: 8},
		},
	},
}

func GetPreset(problem, name string) *Config {
	group, ok := Presets[problem]
	if !ok {
		return nil
	}
	cfg, ok := group[name]
	if !ok {
		return nil
	}
	out := *cfg
	if out.Methods == nil {
		out.Methods = []string{"euler", "heun", "rk4"}
	}
	if out.Digits == 0 {
		out.Digits = DefaultDigits
	}
	return &out
}

func ListPresets(problem string) []string {
	group, ok := Presets[problem]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
