package btcclient

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/rpcclient"
	"go.uber.org/zap"

	"github.com/Warchant/interbtc-clients/config"
	"github.com/Warchant/interbtc-clients/types"
)

var _ HeaderSource = &Client{}

// Client represents a persistent client connection to a bitcoin RPC server,
// used as the source of raw block headers to relay.
type Client struct {
	*rpcclient.Client

	params *chaincfg.Params
	cfg    *config.BTCConfig
	logger *zap.SugaredLogger

	// retry attributes
	retrySleepTime    time.Duration
	maxRetrySleepTime time.Duration
	maxRetryTimes     uint
}

// New creates a client connected to a bitcoin RPC server in HTTP POST mode.
func New(
	cfg *config.BTCConfig,
	parentLogger *zap.Logger,
	retrySleepTime,
	maxRetrySleepTime time.Duration,
	maxRetryTimes uint,
) (*Client, error) {
	params, ok := types.GetValidNetParams()[cfg.NetParams]
	if !ok {
		return nil, fmt.Errorf("invalid net params %s", cfg.NetParams)
	}

	connCfg := &rpcclient.ConnConfig{
		Host:         cfg.Endpoint,
		User:         cfg.Username,
		Pass:         cfg.Password,
		DisableTLS:   cfg.DisableTLS,
		HTTPPostMode: true,
	}

	rpcClient, err := rpcclient.New(connCfg, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create BTC RPC client: %w", err)
	}

	client := &Client{
		Client:            rpcClient,
		params:            params,
		cfg:               cfg,
		logger:            parentLogger.With(zap.String("module", "btcclient")).Sugar(),
		retrySleepTime:    retrySleepTime,
		maxRetrySleepTime: maxRetrySleepTime,
		maxRetryTimes:     maxRetryTimes,
	}
	client.logger.Info("Successfully connected to the BTC server")

	return client, nil
}

func (c *Client) Stop() {
	c.Shutdown()
}
