package config

import (
	"fmt"
	"os"

	zaplogfmt "github.com/jsternberg/zap-logfmt"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewRootLogger builds a zap logger for the given format and level. The
// "auto" format picks console output when stderr is a terminal and logfmt
// otherwise.
func NewRootLogger(format string, level string) (*zap.Logger, error) {
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch format {
	case "json":
		enc = zapcore.NewJSONEncoder(config)
	case "console":
		enc = zapcore.NewConsoleEncoder(config)
	case "logfmt":
		enc = zaplogfmt.NewEncoder(config)
	case "auto":
		if isatty.IsTerminal(os.Stderr.Fd()) {
			enc = zapcore.NewConsoleEncoder(config)
		} else {
			enc = zaplogfmt.NewEncoder(config)
		}
	default:
		return nil, fmt.Errorf("unrecognized log format %q", format)
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("unrecognized log level %q: %w", level, err)
	}

	return zap.New(zapcore.NewCore(
		enc,
		os.Stderr,
		lvl,
	)), nil
}
