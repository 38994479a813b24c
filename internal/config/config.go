package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDuration  = 1.0
	DefaultFrameRate = 30.0
	DefaultEasing    = "ease_in_out_quad"
	DefaultWidth     = 60
	DefaultHeight    = 20
)

type Config struct {
	Duration  float64      `yaml:"duration"`
	FrameRate float64      `yaml:"frame_rate"`
	Easing    string       `yaml:"easing"`
	Theme     string       `yaml:"theme"`
	Canvas    CanvasConfig `yaml:"canvas"`
	Export    ExportConfig `yaml:"export"`
}

type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type ExportConfig struct {
	SVGDir string `yaml:"svg_dir"`
	GIF    string `yaml:"gif"`
	JSON   string `yaml:"json"`
}

func DefaultConfig() *Config {
	return &Config{
		Duration:  DefaultDuration,
		FrameRate: DefaultFrameRate,
		Easing:    DefaultEasing,
		Theme:     "light",
		Canvas: CanvasConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
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
