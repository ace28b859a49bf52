package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// combatLogger is non-nil only while a traced trial is running.
	combatLogger *zap.Logger
	combatSink   *zap.Logger
	combatFile   *lumberjack.Logger
)

func newLogger(level string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		var err error
		if lvl, err = zapcore.ParseLevel(level); err != nil {
			return nil, err
		}
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Sampling = nil
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// initCombatLogger configures where first-trial traces go. Traces are only
// kept when the run is at debug level or a trace file was asked for.
func initCombatLogger(cfg RunConfig, debug bool) {
	closeCombatLogger()

	var ws zapcore.WriteSyncer
	switch {
	case cfg.CombatLog != "":
		combatFile = &lumberjack.Logger{
			Filename:   cfg.CombatLog,
			MaxSize:    cfg.CombatLogMaxMB,
			MaxBackups: cfg.CombatLogBackups,
		}
		ws = zapcore.AddSync(combatFile)
	case debug:
		ws = zapcore.Lock(os.Stderr)
	default:
		return
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), ws, zapcore.DebugLevel)
	combatSink = zap.New(core).Named("combat")
}

func closeCombatLogger() {
	if combatSink != nil {
		_ = combatSink.Sync()
		combatSink = nil
	}
	if combatFile != nil {
		_ = combatFile.Close()
		combatFile = nil
	}
}

func startCombatTrace(specs uint16) {
	if combatSink != nil {
		combatLogger = combatSink.With(zap.Uint16("specs", specs))
	}
}

func stopCombatTrace() {
	if combatLogger != nil {
		_ = combatLogger.Sync()
		combatLogger = nil
	}
}
