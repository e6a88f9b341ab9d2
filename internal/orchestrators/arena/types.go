package arena

import (
	"time"

	"github.com/KirkDiggler/wallet-arena/internal/engine/battle"
	"github.com/KirkDiggler/wallet-arena/internal/entities"
)

// FightInput defines the request for running a battle
type FightInput struct {
	Fighters [2]entities.Snapshot
	// Nonce selects the random stream; a fresh one is generated when empty
	Nonce string
	// SkipCache forces a fresh simulation and overwrites any cached copy
	SkipCache bool
}

// FightOutput defines the response for running a battle
type FightOutput struct {
	Result *battle.Result
	// Cached is true when the result came from the battle cache
	Cached bool
}

// GetBattleInput identifies a previously fought battle
type GetBattleInput struct {
	Addresses [2]string
	Nonce     string
}

// GetBattleOutput defines the response for fetching a cached battle
type GetBattleOutput struct {
	Result    *battle.Result
	CachedAt  time.Time
	ExpiresAt time.Time
}

// VerifyBattleInput carries a result to audit
type VerifyBattleInput struct {
	Result *battle.Result
}

// VerifyBattleOutput reports whether the result replays identically
type VerifyBattleOutput struct {
	Valid bool
	// Mismatch names the first field that differed, empty when valid
	Mismatch string
	// Expected is the freshly simulated result
	Expected *battle.Result
}
