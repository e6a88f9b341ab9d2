package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wallet-arena/internal/engine/battle"
	"github.com/KirkDiggler/wallet-arena/internal/entities"
	"github.com/KirkDiggler/wallet-arena/internal/narrative"
)

const (
	formatJSON = "json"
	formatLog  = "log"
)

var (
	simulateNonce  string
	simulateFormat string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <fighter1.yaml> <fighter2.yaml>",
	Short: "Run a battle locally without a server",
	Long: `Run a battle between two fighter snapshots read from YAML files and print the result.
No server or cache is involved; the same files and nonce always print the same battle.`,
	Args: cobra.ExactArgs(2),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&simulateNonce, "nonce", "0", "Battle nonce")
	simulateCmd.Flags().StringVar(&simulateFormat, "format", formatLog, "Output format (json|log)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if simulateFormat != formatJSON && simulateFormat != formatLog {
		return fmt.Errorf("unknown format %q", simulateFormat)
	}

	var fighters [2]entities.Snapshot
	for i, path := range args {
		snap, err := readSnapshot(path)
		if err != nil {
			return err
		}
		fighters[i] = snap
	}

	result := battle.Simulate(&battle.SimulateInput{
		Fighters: fighters,
		Nonce:    simulateNonce,
		Narrator: narrative.New(),
	})

	out := cmd.OutOrStdout()
	if simulateFormat == formatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printBattleLog(out, result)
	return nil
}

func readSnapshot(path string) (entities.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.Snapshot{}, fmt.Errorf("failed to read fighter %s: %w", path, err)
	}
	snap, err := entities.ParseSnapshotYAML(data)
	if err != nil {
		return entities.Snapshot{}, fmt.Errorf("failed to parse fighter %s: %w", path, err)
	}
	return snap, nil
}

func printBattleLog(w io.Writer, r *battle.Result) {
	a, b := r.Fighters[0], r.Fighters[1]
	_, _ = fmt.Fprintf(w, "%s (%s) vs %s (%s)\n", a.DisplayName(), a.Class.DisplayName(), b.DisplayName(), b.Class.DisplayName())
	_, _ = fmt.Fprintf(w, "Seed: %s  Nonce: %s  Matchup: %s/%s\n\n", r.Seed, r.Nonce, r.Matchup.Fighter0, r.Matchup.Fighter1)

	for _, act := range r.Actions {
		_, _ = fmt.Fprintf(w, "[%2d] %s  (HP %d / %d)\n", act.Turn, act.Narrative, act.ActorHPAfter, act.TargetHPAfter)
	}

	winner := r.Fighters[r.Winner]
	_, _ = fmt.Fprintf(w, "\nWinner: %s with %d HP (%d%%) after %d turns by %s\n",
		winner.DisplayName(), r.WinnerHP, r.WinnerHPPercent, r.TotalTurns, r.EndReason)
}
