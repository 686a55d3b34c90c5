package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required,oneof=none debug normal"`
}

type LoggingConfig struct {
	ConsoleLogger LoggerConfig `yaml:"console"`
}

// Prepare returns the console logger: info and debug go to stdout, errors to
// stderr. debug forces the debug level regardless of configuration.
func (conf *LoggingConfig) Prepare(debug bool) *zap.Logger {
	return conf.build(zapcore.Lock(os.Stdout), zapcore.Lock(os.Stderr), debug)
}

func (conf *LoggingConfig) build(out, errOut zapcore.WriteSyncer, debug bool) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	enc := zapcore.NewConsoleEncoder(ec)

	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	level := conf.ConsoleLogger.Level
	if debug {
		level = "debug"
	}

	var coreLP, coreHP zapcore.Core
	switch level {
	case "normal":
		coreLP = zapcore.NewCore(enc, out, zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return zapcore.InfoLevel <= lvl && lvl < zapcore.ErrorLevel
		}))
		coreHP = zapcore.NewCore(enc, errOut, highPriority)
	case "debug":
		coreLP = zapcore.NewCore(enc, out, zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return zapcore.DebugLevel <= lvl && lvl < zapcore.ErrorLevel
		}))
		coreHP = zapcore.NewCore(enc, errOut, highPriority)
	default:
		coreLP = zapcore.NewNopCore()
		coreHP = zapcore.NewNopCore()
	}
	return zap.New(zapcore.NewTee(coreLP, coreHP))
}
