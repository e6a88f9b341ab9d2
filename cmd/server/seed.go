package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wallet-arena/internal/pkg/prng"
)

var (
	seedDraws int
	seedSides int
)

var seedCmd = &cobra.Command{
	Use:   "seed <addr1> <addr2> <nonce>",
	Short: "Print a battle seed and the start of its random stream",
	Long: `Derive the battle seed for two addresses and a nonce, then print the first draws
of the stream so a battle can be audited by hand.`,
	Args: cobra.ExactArgs(3),
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedDraws, "draws", 5, "Number of draws to print")
	seedCmd.Flags().IntVar(&seedSides, "sides", 0, "Also print the stream as dice of this many sides")
}

func runSeed(cmd *cobra.Command, args []string) error {
	if seedDraws < 0 {
		return fmt.Errorf("draws must be non-negative, got %d", seedDraws)
	}

	out := cmd.OutOrStdout()
	seed, src := prng.ForBattle(args[0], args[1], args[2])
	_, _ = fmt.Fprintf(out, "seed: %s\n", seed)

	for i := 0; i < seedDraws; i++ {
		_, _ = fmt.Fprintf(out, "draw %d: %.10f\n", i+1, src.Float64())
	}

	if seedSides > 0 {
		_, dieSrc := prng.ForBattle(args[0], args[1], args[2])
		rolls, err := prng.NewRoller(dieSrc).RollN(seedDraws, seedSides)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "d%d: %v\n", seedSides, rolls)
	}
	return nil
}
