package client

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wallet-arena/internal/engine/battle"
	"github.com/KirkDiggler/wallet-arena/internal/handlers/arena/v1alpha1"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <result.json>",
	Short: "Ask the server to re-run a battle and compare it",
	Long: `Send a previously produced battle result to the server. The server re-simulates it
from its fighters and nonce and reports the first field that differs.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read result: %w", err)
	}

	// Accept either a bare result or a fight response wrapping one
	var wrapped v1alpha1.FightResponse
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return fmt.Errorf("failed to parse result: %w", err)
	}
	result := wrapped.Result
	if result == nil {
		result = &battle.Result{}
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("failed to parse result: %w", err)
		}
	}

	client, cleanup, err := createArenaClient()
	if err != nil {
		return err
	}
	defer cleanup()

	resp := &v1alpha1.VerifyBattleResponse{}
	if err := invoke(client.VerifyBattle, &v1alpha1.VerifyBattleRequest{Result: result}, resp); err != nil {
		return fmt.Errorf("failed to verify battle: %w", err)
	}

	out := cmd.OutOrStdout()
	if resp.Valid {
		_, _ = fmt.Fprintln(out, "valid: battle reproduces exactly")
		return nil
	}
	_, _ = fmt.Fprintf(out, "invalid: first mismatch at %s\n", resp.Mismatch)
	return nil
}
