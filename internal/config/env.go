package config

import (
	"os"
	"strconv"
)

// FromEnv applies environment overrides on top of cfg.
// Falls back to the existing values when variables are not set.
func FromEnv(cfg Config) Config {
	if v := os.Getenv("TEMPO_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("TEMPO_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TEMPO_ASSISTANT_URL"); v != "" {
		cfg.AssistantURL = v
	}
	if val := getEnvInt("TEMPO_DEFAULT_DURATION_MINUTES"); val > 0 {
		cfg.Placement.DefaultDurationMinutes = val
	}
	if val := getEnvInt("TEMPO_MIN_DURATION_MINUTES"); val > 0 {
		cfg.Placement.MinDurationMinutes = val
	}
	if val := getEnvInt("TEMPO_SNAP_MINUTES"); val > 0 {
		cfg.Placement.SnapMinutes = val
	}
	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
