package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Warchant/interbtc-clients/btcclient"
	"github.com/Warchant/interbtc-clients/chainclient"
	"github.com/Warchant/interbtc-clients/config"
	"github.com/Warchant/interbtc-clients/metrics"
	"github.com/Warchant/interbtc-clients/relay"
)

// GetRelayCmd returns the CLI command for the header relayer
func GetRelayCmd() *cobra.Command {
	var cfgFile = ""

	cmd := &cobra.Command{
		Use:   "relay",
		Short: "BTC header relayer",
		Run: func(_ *cobra.Command, _ []string) {
			// get the config from the given file or the default file
			cfg, err := config.New(cfgFile)
			if err != nil {
				panic(fmt.Errorf("failed to load config: %w", err))
			}
			rootLogger, err := cfg.CreateLogger()
			if err != nil {
				panic(fmt.Errorf("failed to create logger: %w", err))
			}

			// create BTC client and connect to the BTC server. Header queries
			// are ad hoc, no block subscription is needed
			btcClient, err := btcclient.New(
				&cfg.BTC,
				rootLogger,
				cfg.Common.RetrySleepTime,
				cfg.Common.MaxRetrySleepTime,
				cfg.Common.MaxRetryTimes,
			)
			if err != nil {
				panic(fmt.Errorf("failed to open BTC client: %w", err))
			}

			// create the JSON-RPC client for the chain hosting the BTC relay
			chainClient, err := chainclient.New(context.Background(), &cfg.Chain, rootLogger)
			if err != nil {
				panic(fmt.Errorf("failed to open chain client: %w", err))
			}

			gateway := relay.NewGateway(rootLogger, chainClient)

			randomDelay, err := delayFromConfig(rootLogger, &cfg.Relay)
			if err != nil {
				panic(fmt.Errorf("failed to create the submission delay: %w", err))
			}

			// register relayer metrics
			relayerMetrics := metrics.NewRelayerMetrics()

			relayer, err := relay.New(
				&cfg.Relay,
				rootLogger,
				btcClient,
				gateway,
				randomDelay,
				cfg.Common.RetrySleepTime,
				cfg.Common.MaxRetrySleepTime,
				cfg.Common.MaxRetryTimes,
				relayerMetrics,
			)
			if err != nil {
				panic(fmt.Errorf("failed to create the header relayer: %w", err))
			}

			// start Prometheus metrics server
			metrics.Start(cfg.Metrics.Address(), relayerMetrics.Registry)

			// start normal-case execution
			relayer.Start()

			addInterruptHandler(func() {
				rootLogger.Info("Stopping relayer...")
				relayer.Stop()
				relayer.WaitForShutdown()
				rootLogger.Info("Relayer shutdown")
			})
			addInterruptHandler(func() {
				rootLogger.Info("Stopping chain client...")
				if err := chainClient.Close(); err != nil {
					rootLogger.Sugar().Warnf("Failed to close the chain client: %v", err)
				}
				rootLogger.Info("Chain client shutdown")
			})
			addInterruptHandler(func() {
				rootLogger.Info("Stopping BTC client...")
				btcClient.Stop()
				btcClient.WaitForShutdown()
				rootLogger.Info("BTC client shutdown")
			})

			<-interruptHandlersDone
			rootLogger.Info("Shutdown complete")
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", config.DefaultConfigFile(), "config file")

	return cmd
}

// delayFromConfig picks the submission delay policy. Zero slots disable the
// randomized wait entirely.
func delayFromConfig(rootLogger *zap.Logger, cfg *config.RelayConfig) (relay.RandomDelay, error) {
	if cfg.MaxDelaySlots == 0 {
		return relay.ZeroDelay{}, nil
	}

	return relay.NewBoundedDelay(rootLogger, cfg.MaxDelaySlots, cfg.DelaySlotDuration)
}
