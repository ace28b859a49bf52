package main

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, cfgErr := loadRunConfig(nil)
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: TTK_LOG_LEVEL: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	if cfgErr != nil {
		logger.Fatal("load run config", zap.Error(cfgErr))
	}

	lib, fromFile, err := loadLibrary(cfg.LibraryPath)
	if err != nil {
		logger.Fatal("load profile library", zap.Error(err))
	}
	if !fromFile {
		logger.Info("profile library not found, using built-in profiles", zap.String("path", cfg.LibraryPath))
	}
	scenarios, err := cfg.scenarios(lib)
	if err != nil {
		logger.Fatal("invalid configuration", zap.Errors("problems", multierr.Errors(err)))
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = entropySeed(); err != nil {
			logger.Fatal("seed generator", zap.Error(err))
		}
	}
	logger.Info("seeded", zap.Uint64("seed", seed))

	initCombatLogger(cfg, logger.Core().Enabled(zapcore.DebugLevel))
	defer closeCombatLogger()

	fmt.Println("Sim!")

	if _, err := runScenarios(scenarios, newSampler(seed), os.Stdout, logger); err != nil {
		logger.Fatal("write results", zap.Error(err))
	}
}
