package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagScenario  = flag.String("scenario", "", "Path to scenario file")
	flagRadius    = flag.Int("radius", 0, "Maximum view distance")
	flagFlat      = flag.Bool("flat", false, "Disable z-level sight and sunlight")
	flagElevation = flag.Float64("sun", -1000, "Sun elevation in degrees")
	flagMetrics   = flag.String("metrics", "", "Metrics listen address")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagScenario != "" {
		cfg.Scenario.Path = *flagScenario
	}
	if *flagRadius > 0 {
		cfg.Vision.MaxViewDistance = *flagRadius
	}
	if *flagFlat {
		cfg.Vision.ZLevels = false
	}
	if *flagElevation >= -90 && *flagElevation <= 90 {
		cfg.Lighting.SunElevation = float32(*flagElevation)
	}
	if *flagMetrics != "" {
		cfg.Metrics.Listen = *flagMetrics
	}
}
