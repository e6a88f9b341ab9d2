package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wallet-arena/internal/handlers/arena/v1alpha1"
)

var getBattleCmd = &cobra.Command{
	Use:   "get-battle <addr1> <addr2> <nonce>",
	Short: "Fetch a cached battle",
	Long:  `Retrieve a previously fought battle from the server cache by its participants and nonce.`,
	Args:  cobra.ExactArgs(3),
	RunE:  runGetBattle,
}

func runGetBattle(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createArenaClient()
	if err != nil {
		return err
	}
	defer cleanup()

	req := &v1alpha1.GetBattleRequest{
		Addresses: [2]string{args[0], args[1]},
		Nonce:     args[2],
	}
	resp := &v1alpha1.GetBattleResponse{}
	if err := invoke(client.GetBattle, req, resp); err != nil {
		return fmt.Errorf("failed to get battle: %w", err)
	}

	return printJSON(cmd.OutOrStdout(), resp)
}
