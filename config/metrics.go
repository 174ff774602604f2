package config

import (
	"errors"
	"fmt"
	"net"
)

const (
	defaultMetricsHost = "0.0.0.0"
	defaultMetricsPort = 2112
)

// MetricsConfig defines the server's metrics configuration
type MetricsConfig struct {
	Host       string `mapstructure:"host"`
	ServerPort int    `mapstructure:"server-port"`
}

func (cfg *MetricsConfig) Validate() error {
	if cfg.ServerPort < 0 || cfg.ServerPort > 65535 {
		return errors.New("server-port must be within [0, 65535]")
	}

	ip := net.ParseIP(cfg.Host)
	if ip == nil {
		return fmt.Errorf("invalid metrics host: %v", cfg.Host)
	}

	return nil
}

func (cfg *MetricsConfig) Address() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.ServerPort)
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		ServerPort: defaultMetricsPort,
		Host:       defaultMetricsHost,
	}
}
