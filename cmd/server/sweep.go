package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wallet-arena/internal/pkg/clock"
	"github.com/KirkDiggler/wallet-arena/internal/pkg/prng"
	"github.com/KirkDiggler/wallet-arena/internal/redis"
	battlecache "github.com/KirkDiggler/wallet-arena/internal/repositories/battle_cache"
)

var sweepDelete bool

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Find and optionally remove bad battle cache entries",
	Long: `Scan the battle cache for entries that no longer decode, whose seed does not match
their fighters and nonce, or that have outlived their expiry. Nothing is removed unless --delete is set.`,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().StringVar(&redisEndpoint, "redis", "", "Redis endpoint (overrides config)")
	sweepCmd.Flags().BoolVar(&sweepDelete, "delete", false, "Delete the bad entries that were found")
}

type sweepReport struct {
	Checked int
	Bad     map[string]string
	Deleted int
}

func runSweep(cmd *cobra.Command, _ []string) error {
	cfg, err := loadServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client, err := redis.NewClient(cfg.Redis.Endpoint, &redis.Options{
		MaxRetries: cfg.Redis.MaxRetries,
		UseTLS:     cfg.Redis.UseTLS,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = client.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	report, err := sweepBattles(ctx, client, clock.New(), sweepDelete)
	if err != nil {
		return err
	}
	printSweepReport(cmd.OutOrStdout(), report, sweepDelete)
	return nil
}

// sweepBattles checks every cached battle and returns the bad keys with the reason
func sweepBattles(ctx context.Context, client redis.Client, clk clock.Clock, remove bool) (*sweepReport, error) {
	report := &sweepReport{Bad: map[string]string{}}

	iter := client.Scan(ctx, 0, battlecache.KeyPattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		report.Checked++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			// Expired between SCAN and GET
			continue
		}

		if reason := checkBattle(key, data, clk.Now()); reason != "" {
			report.Bad[key] = reason
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan battle cache: %w", err)
	}

	if !remove {
		return report, nil
	}
	for key := range report.Bad {
		n, err := client.Del(ctx, key).Result()
		if err != nil {
			return report, fmt.Errorf("failed to delete %s: %w", key, err)
		}
		report.Deleted += int(n)
	}
	return report, nil
}

func checkBattle(key string, data []byte, now time.Time) string {
	var stored battlecache.StoredBattle
	if err := json.Unmarshal(data, &stored); err != nil {
		return "corrupted json"
	}
	if stored.Result == nil {
		return "missing result"
	}

	r := stored.Result
	addrs := [2]string{r.Fighters[0].Address, r.Fighters[1].Address}
	if battlecache.BuildKey(addrs, r.Nonce) != key {
		return "key does not match result"
	}
	if prng.Seed(addrs[0], addrs[1], r.Nonce) != r.Seed {
		return "seed does not match fighters and nonce"
	}
	if now.After(stored.ExpiresAt) {
		return "expired"
	}
	return ""
}

func printSweepReport(w io.Writer, report *sweepReport, remove bool) {
	_, _ = fmt.Fprintf(w, "Checked %d battles, found %d bad entries\n", report.Checked, len(report.Bad))
	for _, key := range slices.Sorted(maps.Keys(report.Bad)) {
		_, _ = fmt.Fprintf(w, "  - %s: %s\n", key, report.Bad[key])
	}
	if remove {
		_, _ = fmt.Fprintf(w, "Deleted %d entries\n", report.Deleted)
	} else if len(report.Bad) > 0 {
		_, _ = fmt.Fprintln(w, "Run again with --delete to remove them")
	}
}
