package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagDiv        = flag.Int("div", 0, "Grid resolution (cells per axis)")
	flagIterations = flag.Int("iterations", -1, "Fault-line iterations")
	flagSeed       = flag.Uint64("seed", 0, "Random seed (0 = random)")
	flagLogFile    = flag.String("log-file", "", "Write logs to this file")
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
	if *flagDiv > 0 {
		cfg.Terrain.Div = *flagDiv
	}
	if *flagIterations >= 0 {
		cfg.Terrain.Iterations = *flagIterations
	}
	if *flagSeed != 0 {
		cfg.Terrain.Seed = *flagSeed
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
