// terraingen builds one fault-line terrain and reports its mesh statistics.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/faultline-terrain/internal/config"
	"github.com/Faultbox/faultline-terrain/internal/logger"
	"github.com/Faultbox/faultline-terrain/internal/terrain"
)

var (
	flagDump        = flag.Bool("dump", false, "Print vertices and faces to stdout")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config to this path and exit")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if *flagWriteConfig != "" {
		if err := cfg.SaveTo(*flagWriteConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", *flagWriteConfig)
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Debug("config loaded",
		zap.Any("terrain", cfg.Terrain),
		zap.String("log_level", cfg.Logging.Level),
	)

	opts := append(cfg.TerrainOptions(), terrain.WithLogger(logger.Log.Named("terrain")))
	t, err := terrain.New(cfg.TerrainParams(), opts...)
	if err != nil {
		logger.Error("failed to generate terrain", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	s := t.Stats()
	logger.Info("terrain ready",
		zap.Int("vertices", s.Vertices),
		zap.Int("faces", s.Faces),
		zap.Int("edge_indices", s.EdgeIndices),
		zap.Float32("min_z", s.MinZ),
		zap.Float32("max_z", s.MaxZ),
		zap.Float32("mean_z", s.MeanZ),
	)
	if s.DegenerateCount > 0 {
		logger.Warn("vertices with zero normal", zap.Int("count", s.DegenerateCount))
	}

	if *flagDump {
		logger.Sugar.Debugf("dumping %d vertices and %d faces to stdout", s.Vertices, s.Faces)
		if err := t.Dump(os.Stdout); err != nil {
			logger.Error("dump failed", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
	}
}
