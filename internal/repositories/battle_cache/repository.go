// Package battlecache stores simulated battles so repeated requests for the
// same fighters and nonce are served without re-running the engine.
package battlecache

import (
	"context"
	"time"

	"github.com/KirkDiggler/wallet-arena/internal/engine/battle"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=battlecachemock github.com/KirkDiggler/wallet-arena/internal/repositories/battle_cache Repository

// StoredBattle is a cached battle result with its cache bookkeeping
type StoredBattle struct {
	Result    *battle.Result `json:"result"`
	CachedAt  time.Time      `json:"cached_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// PutInput contains parameters for caching a battle
type PutInput struct {
	Result *battle.Result
	// TTL overrides the repository default when non-zero
	TTL time.Duration
}

// PutOutput contains the stored entry
type PutOutput struct {
	Battle *StoredBattle
}

// GetInput identifies a battle by its ordered fighter addresses and nonce
type GetInput struct {
	Addresses [2]string
	Nonce     string
}

// GetOutput contains the cached battle
type GetOutput struct {
	Battle *StoredBattle
}

// DeleteInput identifies the battle to evict
type DeleteInput struct {
	Addresses [2]string
	Nonce     string
}

// DeleteOutput reports whether anything was removed
type DeleteOutput struct {
	Deleted bool
}

// Repository defines battle cache operations
type Repository interface {
	// Get returns NotFound when the battle is missing or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores a result keyed by its fighters and nonce
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Delete evicts a cached battle
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
