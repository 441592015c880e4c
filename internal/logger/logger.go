// Package logger builds the zap loggers used by every binary and the chi
// middleware that writes access lines through them.
package logger

import (
	"io"

	"hello-web/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a zap logger from cfg. The debug level selects the development
// preset; everything else uses the production preset at the requested level.
func New(cfg *config.Log) (*zap.Logger, error) {
	var zc zap.Config

	if cfg.Level == "debug" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}

	if cfg.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.DisableStacktrace = true
	} else {
		zc.Encoding = "json"
	}

	withKeys(&zc.EncoderConfig)

	zc.OutputPaths = []string{"stderr"}
	if cfg.File != "" {
		zc.OutputPaths = append(zc.OutputPaths, cfg.File)
	}

	return zc.Build()
}

// NewConsole returns a debug-level console logger writing to w. The CLI uses
// it for fatal errors, which must reach the command's own stderr.
func NewConsole(w io.Writer) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	withKeys(&ec)

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(w), zap.DebugLevel)
	return zap.New(core)
}

func withKeys(ec *zapcore.EncoderConfig) {
	ec.LevelKey = "level"
	ec.TimeKey = "time"
	ec.MessageKey = "message"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
}
