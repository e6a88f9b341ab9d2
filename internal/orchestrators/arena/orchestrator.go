// Package arena implements the battle orchestrator: validation, nonce
// assignment, result caching and replay verification around the engine.
package arena

//go:generate mockgen -destination=mock/mock_service.go -package=arenamock github.com/KirkDiggler/wallet-arena/internal/orchestrators/arena Service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/wallet-arena/internal/engine/battle"
	"github.com/KirkDiggler/wallet-arena/internal/entities"
	"github.com/KirkDiggler/wallet-arena/internal/errors"
	"github.com/KirkDiggler/wallet-arena/internal/pkg/idgen"
	battlecache "github.com/KirkDiggler/wallet-arena/internal/repositories/battle_cache"
)

// Service defines the battle operations exposed to transports
type Service interface {
	Fight(ctx context.Context, input *FightInput) (*FightOutput, error)
	GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error)
	VerifyBattle(ctx context.Context, input *VerifyBattleInput) (*VerifyBattleOutput, error)
}

// Config holds the dependencies for the arena orchestrator
type Config struct {
	BattleCache    battlecache.Repository
	NonceGenerator idgen.Generator
	// Narrator is optional; results carry empty narratives without one
	Narrator battle.Narrator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.BattleCache == nil {
		vb.RequiredField("BattleCache")
	}
	if c.NonceGenerator == nil {
		vb.RequiredField("NonceGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	battleCache battlecache.Repository
	nonceGen    idgen.Generator
	narrator    battle.Narrator
}

// NewOrchestrator creates a new arena orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		battleCache: cfg.BattleCache,
		nonceGen:    cfg.NonceGenerator,
		narrator:    cfg.Narrator,
	}, nil
}

// Fight returns the battle for the fighters and nonce, simulating it when not cached
func (o *orchestrator) Fight(ctx context.Context, input *FightInput) (*FightOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateFighters(input.Fighters); err != nil {
		return nil, err
	}

	nonce := input.Nonce
	if nonce == "" {
		nonce = o.nonceGen.Generate()
	}

	addrs := [2]string{input.Fighters[0].Address, input.Fighters[1].Address}

	if !input.SkipCache {
		cached, err := o.battleCache.Get(ctx, battlecache.GetInput{Addresses: addrs, Nonce: nonce})
		switch {
		case err == nil:
			slog.Debug("Battle served from cache", "nonce", nonce, "seed", cached.Battle.Result.Seed)
			return &FightOutput{Result: cached.Battle.Result, Cached: true}, nil
		case !errors.IsNotFound(err):
			slog.Warn("Battle cache read failed", "nonce", nonce, "error", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.GetCode(err), "fight canceled")
	}

	result := battle.Simulate(&battle.SimulateInput{
		Fighters: input.Fighters,
		Nonce:    nonce,
		Narrator: o.narrator,
	})

	if _, err := o.battleCache.Put(ctx, battlecache.PutInput{Result: result}); err != nil {
		slog.Warn("Failed to cache battle", "nonce", nonce, "error", err)
	}

	slog.Info("Battle fought",
		"nonce", nonce,
		"seed", result.Seed,
		"winner", result.Fighters[result.Winner].NormalizedAddress(),
		"turns", result.TotalTurns,
		"end_reason", result.EndReason,
	)

	return &FightOutput{Result: result}, nil
}

// GetBattle returns a cached battle or NotFound
func (o *orchestrator) GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("addresses[0]", input.Addresses[0], vb)
	errors.ValidateRequired("addresses[1]", input.Addresses[1], vb)
	validateAddressForm("addresses[0]", input.Addresses[0], vb)
	validateAddressForm("addresses[1]", input.Addresses[1], vb)
	errors.ValidateRequired("nonce", input.Nonce, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.battleCache.Get(ctx, battlecache.GetInput{Addresses: input.Addresses, Nonce: input.Nonce})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get battle %s", input.Nonce)
	}

	return &GetBattleOutput{
		Result:    out.Battle.Result,
		CachedAt:  out.Battle.CachedAt,
		ExpiresAt: out.Battle.ExpiresAt,
	}, nil
}

// VerifyBattle replays a result from its own fighters and nonce and compares the outcome
func (o *orchestrator) VerifyBattle(_ context.Context, input *VerifyBattleInput) (*VerifyBattleOutput, error) {
	if input == nil || input.Result == nil {
		return nil, errors.InvalidArgument("result is required")
	}
	if err := validateFighters(input.Result.Fighters); err != nil {
		return nil, err
	}
	if input.Result.Nonce == "" {
		return nil, errors.InvalidArgument("result nonce is required")
	}

	expected := battle.Simulate(&battle.SimulateInput{
		Fighters: input.Result.Fighters,
		Nonce:    input.Result.Nonce,
		Narrator: o.narrator,
	})

	mismatch := firstMismatch(expected, input.Result)
	if mismatch != "" {
		slog.Info("Battle failed verification", "nonce", input.Result.Nonce, "mismatch", mismatch)
	}

	return &VerifyBattleOutput{
		Valid:    mismatch == "",
		Mismatch: mismatch,
		Expected: expected,
	}, nil
}

func validateFighters(fighters [2]entities.Snapshot) error {
	vb := errors.NewValidationBuilder()
	classes := make([]string, 0, len(entities.AllClasses()))
	for _, c := range entities.AllClasses() {
		classes = append(classes, c.String())
	}

	for i, f := range fighters {
		prefix := fmt.Sprintf("fighters[%d].", i)
		errors.ValidateRequired(prefix+"address", f.Address, vb)
		validateAddressForm(prefix+"address", f.Address, vb)
		errors.ValidateEnum(prefix+"class", string(f.Class), classes, vb)
		errors.ValidateMin(prefix+"level", int64(f.Stats.Level), 1, vb)

		st := f.Stats
		for name, v := range map[string]int32{
			"hp": st.HP, "mp": st.MP, "str": st.Str, "int": st.Int, "dex": st.Dex, "luck": st.Luck,
		} {
			errors.ValidateMin(prefix+name, int64(v), 0, vb)
		}
	}

	return vb.Build()
}

// validateAddressForm rejects addresses with surrounding whitespace
func validateAddressForm(field, address string, vb *errors.ValidationBuilder) {
	if address != "" && strings.TrimSpace(address) != address {
		vb.InvalidField(field, "must not have surrounding whitespace")
	}
}

// firstMismatch names the first difference between two results, ignoring narratives
func firstMismatch(expected, got *battle.Result) string {
	switch {
	case expected.Seed != got.Seed:
		return "seed"
	case expected.Winner != got.Winner:
		return "winner"
	case expected.EndReason != got.EndReason:
		return "end_reason"
	case expected.TotalTurns != got.TotalTurns || len(expected.Actions) != len(got.Actions):
		return "total_turns"
	case expected.WinnerHP != got.WinnerHP:
		return "winner_hp"
	case expected.Matchup != got.Matchup:
		return "matchup"
	}

	for i := range expected.Actions {
		a, b := expected.Actions[i], got.Actions[i]
		a.Narrative, b.Narrative = "", ""
		if a != b {
			return fmt.Sprintf("actions[%d]", i)
		}
	}

	return ""
}
