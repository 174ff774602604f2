package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates a new root command for the BTC header relayer.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "relayer",
		Short:         "BTC header relayer",
		Long:          "Relays Bitcoin block headers into an on-chain BTC light client",
		SilenceErrors: false,
	}
	cmd.AddCommand(
		GetRelayCmd(),
		CommandDumpConfig(),
		CommandVersion(),
	)

	return cmd
}
