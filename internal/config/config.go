package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFrameDuration = 30
	DefaultFastInterval  = 4
	DefaultSlowInterval  = 2
	DefaultFastN         = 128
	DefaultSlowN         = 48
	DefaultWave          = "triangle"
)

// Config holds one show's playback settings. Intervals and the frame
// duration are milliseconds; fast settings apply to merge-like algorithms,
// slow settings to the quadratic ones.
type Config struct {
	FrameDuration int      `yaml:"frame_duration"`
	FastInterval  int      `yaml:"fast_interval"`
	SlowInterval  int      `yaml:"slow_interval"`
	FastN         int      `yaml:"fast_n"`
	SlowN         int      `yaml:"slow_n"`
	Wave          string   `yaml:"wave"`
	Sound         bool     `yaml:"sound"`
	Seed          int64    `yaml:"seed"`
	Algorithms    []string `yaml:"algorithms"`
}

func DefaultConfig() *Config {
	return &Config{
		FrameDuration: DefaultFrameDuration,
		FastInterval:  DefaultFastInterval,
		SlowInterval:  DefaultSlowInterval,
		FastN:         DefaultFastN,
		SlowN:         DefaultSlowN,
		Wave:          DefaultWave,
		Sound:         true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
