package config

import "sort"

var Presets = map[string]*Config{
	"demo": {
		FrameDuration: 30, FastInterval: 4, SlowInterval: 2,
		FastN: 128, SlowN: 48, Wave: "triangle", Sound: true,
	},
	"quick": {
		FrameDuration: 20, FastInterval: 2, SlowInterval: 1,
		FastN: 64, SlowN: 32, Wave: "sine", Sound: true,
		Algorithms: []string{"merge", "quick", "bubble"},
	},
	"marathon": {
		FrameDuration: 40, FastInterval: 8, SlowInterval: 4,
		FastN: 256, SlowN: 96, Wave: "square", Sound: true,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
