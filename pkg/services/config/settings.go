package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings are the file-configurable knobs of the report toolkit. Report
// units are fixed (lbm/min/nmi) and intentionally not configurable.
type Settings struct {
	CasePath   string `mapstructure:"case_path"`
	CaseName   string `mapstructure:"case_name"`
	ReportsDir string `mapstructure:"reports_dir"`
	Trajectory string `mapstructure:"trajectory"`
	ServerAddr string `mapstructure:"server_addr"`
}

func DefaultSettings() Settings {
	return Settings{
		CaseName:   "problem",
		ReportsDir: "reports",
		Trajectory: "traj",
		ServerAddr: "localhost:8080",
	}
}

// LoadSettings reads a YAML settings file, filling unset keys with defaults.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := DefaultSettings()
	v.SetDefault("case_name", defaults.CaseName)
	v.SetDefault("reports_dir", defaults.ReportsDir)
	v.SetDefault("trajectory", defaults.Trajectory)
	v.SetDefault("server_addr", defaults.ServerAddr)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &settings, nil
}
