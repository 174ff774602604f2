package config

import (
	"errors"
	"time"
)

// ChainConfig defines configuration for the remote chain hosting the BTC relay
type ChainConfig struct {
	// RPCAddr is the JSON-RPC address of the chain node
	RPCAddr string `mapstructure:"rpc-addr"`
	// Timeout bounds each individual RPC call
	Timeout time.Duration `mapstructure:"timeout"`
}

func (cfg *ChainConfig) Validate() error {
	if cfg.RPCAddr == "" {
		return errors.New("rpc-addr cannot be empty")
	}

	if cfg.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}

	return nil
}

func DefaultChainConfig() ChainConfig {
	return ChainConfig{
		RPCAddr: "http://localhost:9933",
		Timeout: 30 * time.Second,
	}
}
