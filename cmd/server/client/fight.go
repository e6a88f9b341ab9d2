package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wallet-arena/internal/handlers/arena/v1alpha1"
)

var (
	fightNonce     string
	fightSkipCache bool
)

var fightCmd = &cobra.Command{
	Use:   "fight <fighter1.yaml> <fighter2.yaml>",
	Short: "Start or replay a battle on the server",
	Long:  `Send two fighter snapshots to the server and print the battle result as JSON.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runFight,
}

func init() {
	fightCmd.Flags().StringVar(&fightNonce, "nonce", "", "Battle nonce (server generates one when empty)")
	fightCmd.Flags().BoolVar(&fightSkipCache, "skip-cache", false, "Re-run the battle even if it is cached")
}

func runFight(cmd *cobra.Command, args []string) error {
	req := &v1alpha1.FightRequest{
		Nonce:     fightNonce,
		SkipCache: fightSkipCache,
	}
	for i, path := range args {
		snap, err := readSnapshot(path)
		if err != nil {
			return err
		}
		req.Fighters[i] = snap
	}

	client, cleanup, err := createArenaClient()
	if err != nil {
		return err
	}
	defer cleanup()

	resp := &v1alpha1.FightResponse{}
	if err := invoke(client.Fight, req, resp); err != nil {
		return fmt.Errorf("failed to fight: %w", err)
	}

	return printJSON(cmd.OutOrStdout(), resp)
}
