package main

import (
	"fmt"
	"os"

	"github.com/Warchant/interbtc-clients/cmd/relayer/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Print(err.Error())
		os.Exit(1)
	}
}
