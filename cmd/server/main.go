// Package main is the entry point for the wallet arena service and its tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wallet-arena/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "wallet-arena",
	Short: "Deterministic wallet battle service",
	Long: `Wallet Arena runs reproducible battles between wallet-derived fighters.
The same fighters and nonce always produce the same battle.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "arena.yaml", "Path to YAML configuration file")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
