package config

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

const (
	defaultRetrySleepTime    = 5 * time.Second
	defaultMaxRetrySleepTime = 5 * time.Minute
	defaultMaxRetryTimes     = 5
)

// CommonConfig defines the server's basic configuration
type CommonConfig struct {
	// LogFormat is the format of the log (json|auto|console|logfmt)
	LogFormat string `mapstructure:"log-format"`
	// LogLevel is the log level (debug|warn|error|panic|fatal)
	LogLevel string `mapstructure:"log-level"`
	// RetrySleepTime is the backoff interval for the first retry
	RetrySleepTime time.Duration `mapstructure:"retry-sleep-time"`
	// MaxRetrySleepTime is the maximum backoff interval between retries
	MaxRetrySleepTime time.Duration `mapstructure:"max-retry-sleep-time"`
	// MaxRetryTimes is the maximum number of retry attempts
	MaxRetryTimes uint `mapstructure:"max-retry-times"`
}

func isOneOf(v string, list []string) bool {
	for _, item := range list {
		if v == item {
			return true
		}
	}

	return false
}

func (cfg *CommonConfig) Validate() error {
	if !isOneOf(cfg.LogFormat, []string{"json", "auto", "console", "logfmt"}) {
		return errors.New("log-format should be one of json|auto|console|logfmt")
	}

	if !isOneOf(cfg.LogLevel, []string{"debug", "info", "warn", "error", "panic", "fatal"}) {
		return errors.New("log-level should be one of debug|info|warn|error|panic|fatal")
	}

	if cfg.RetrySleepTime < 0 {
		return errors.New("retry-sleep-time can't be negative")
	}

	if cfg.MaxRetrySleepTime < 0 {
		return errors.New("max-retry-sleep-time can't be negative")
	}

	if cfg.MaxRetryTimes == 0 {
		return errors.New("max-retry-times must be positive")
	}

	return nil
}

func (cfg *CommonConfig) CreateLogger() (*zap.Logger, error) {
	return NewRootLogger(cfg.LogFormat, cfg.LogLevel)
}

func DefaultCommonConfig() CommonConfig {
	return CommonConfig{
		LogFormat:         "auto",
		LogLevel:          "debug",
		RetrySleepTime:    defaultRetrySleepTime,
		MaxRetrySleepTime: defaultMaxRetrySleepTime,
		MaxRetryTimes:     defaultMaxRetryTimes,
	}
}
