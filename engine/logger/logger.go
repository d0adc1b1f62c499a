// Package logger builds the structured logger shared by the engine's VR components.
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel converts a level name (debug, info, warn, error) to a zap level.
// An empty name yields info.
//
// Parameters:
//   - name: the level name, case-insensitive
//
// Returns:
//   - zapcore.Level: the parsed level
//   - error: if the name is not a known level
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zap.DebugLevel, nil
	case "", "info":
		return zap.InfoLevel, nil
	case "warn", "warning":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// New builds a JSON logger writing to stderr at the given level.
//
// Parameters:
//   - level: the level name, see ParseLevel
//
// Returns:
//   - *zap.Logger: the logger
//   - error: if the level is unknown or the logger cannot be built
func New(level string) (*zap.Logger, error) {
	zapLevel, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	config := zap.Config{
		Level:       zap.NewAtomicLevelAt(zapLevel),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}
