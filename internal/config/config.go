package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port         string    `yaml:"port" json:"port"`
	DataDir      string    `yaml:"data_dir" json:"data_dir"`
	AssistantURL string    `yaml:"assistant_url" json:"assistant_url"`
	Placement    Placement `yaml:"placement" json:"placement"`
}

// Placement holds the scheduling tunables, in minutes.
type Placement struct {
	DefaultDurationMinutes int `yaml:"default_duration_minutes" json:"default_duration_minutes"`
	MinDurationMinutes     int `yaml:"min_duration_minutes" json:"min_duration_minutes"`
	SnapMinutes            int `yaml:"snap_minutes" json:"snap_minutes"`
}

func Default() Config {
	return Config{
		Port:         "8080",
		DataDir:      "data",
		AssistantURL: "http://localhost:8000",
		Placement: Placement{
			DefaultDurationMinutes: 60,
			MinDurationMinutes:     15,
			SnapMinutes:            15,
		},
	}
}

// Load reads a yaml config file, falling back to defaults when the file does
// not exist. Zero-valued placement tunables are filled from defaults so a
// partial file stays usable.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), err
	}
	def := Default()
	if cfg.Port == "" {
		cfg.Port = def.Port
	}
	if cfg.DataDir == "" {
		cfg.DataDir = def.DataDir
	}
	if cfg.AssistantURL == "" {
		cfg.AssistantURL = def.AssistantURL
	}
	if cfg.Placement.DefaultDurationMinutes <= 0 {
		cfg.Placement.DefaultDurationMinutes = def.Placement.DefaultDurationMinutes
	}
	if cfg.Placement.MinDurationMinutes <= 0 {
		cfg.Placement.MinDurationMinutes = def.Placement.MinDurationMinutes
	}
	if cfg.Placement.SnapMinutes <= 0 {
		cfg.Placement.SnapMinutes = def.Placement.SnapMinutes
	}
	return cfg, nil
}
