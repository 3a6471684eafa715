// Package config handles lumen configuration loading and management.
package config

// Config holds all lumen settings.
type Config struct {
	Vision   VisionConfig   `yaml:"vision"`
	Lighting LightingConfig `yaml:"lighting"`
	Scenario ScenarioConfig `yaml:"scenario"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// VisionConfig holds sight settings.
type VisionConfig struct {
	MaxViewDistance  int  `yaml:"max_view_distance"`
	BaselineDistance int  `yaml:"baseline_distance"` // View distance the visibility falloff is tuned for
	ZLevels          bool `yaml:"z_levels"`
}

// LightingConfig holds light and sun settings.
type LightingConfig struct {
	Workers      int           `yaml:"workers"` // 0 runs one worker per level
	SunAzimuth   float64       `yaml:"sun_azimuth"`
	SunElevation float32       `yaml:"sun_elevation"`
	Weather      WeatherConfig `yaml:"weather"`
}

// WeatherConfig holds the default weather applied when a scenario sets none.
type WeatherConfig struct {
	SightPenalty  float32 `yaml:"sight_penalty"`
	LightModifier float32 `yaml:"light_modifier"`
}

// ScenarioConfig holds scenario file settings.
type ScenarioConfig struct {
	Path string `yaml:"path"`
}

// MetricsConfig holds the metrics endpoint settings.
type MetricsConfig struct {
	Listen string `yaml:"listen"` // Empty disables the endpoint
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Vision: VisionConfig{
			MaxViewDistance:  60,
			BaselineDistance: 60,
			ZLevels:          true,
		},
		Lighting: LightingConfig{
			Workers:      0,
			SunAzimuth:   180,
			SunElevation: 45,
			Weather: WeatherConfig{
				SightPenalty:  1,
				LightModifier: 0,
			},
		},
		Scenario: ScenarioConfig{
			Path: "scenarios/house.yaml",
		},
		Metrics: MetricsConfig{
			Listen: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
