package config

import (
	"errors"

	"github.com/Warchant/interbtc-clients/types"
)

// BTCConfig defines configuration for the Bitcoin client
type BTCConfig struct {
	Endpoint          string `mapstructure:"endpoint"`
	Username          string `mapstructure:"username"`
	Password          string `mapstructure:"password"`
	NetParams         string `mapstructure:"net-params"`
	ReconnectAttempts int    `mapstructure:"reconnect-attempts"`
	DisableTLS        bool   `mapstructure:"disable-tls"`
}

func (cfg *BTCConfig) Validate() error {
	if cfg.Endpoint == "" {
		return errors.New("endpoint cannot be empty")
	}

	if cfg.ReconnectAttempts < 0 {
		return errors.New("reconnect-attempts must be non-negative")
	}

	if _, ok := types.GetValidNetParams()[cfg.NetParams]; !ok {
		return errors.New("invalid net params")
	}

	return nil
}

func DefaultBTCConfig() BTCConfig {
	return BTCConfig{
		Endpoint:          "localhost:18556",
		Username:          "rpcuser",
		Password:          "rpcpass",
		NetParams:         types.BtcSimnet.String(),
		ReconnectAttempts: 3,
		DisableTLS:        true,
	}
}
