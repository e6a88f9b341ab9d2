package entities

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeFighter is the rpg-toolkit entity type reported by snapshots
const EntityTypeFighter = "fighter"

// Snapshot is the immutable character record a battle is fought with.
// It is computed upstream from wallet activity; the battle core only reads it.
type Snapshot struct {
	Address string  `json:"address" yaml:"address"`
	Name    string  `json:"name,omitempty" yaml:"name,omitempty"`
	Class   ClassID `json:"class" yaml:"class"`
	Stats   Stats   `json:"stats" yaml:"stats"`
}

// Stats holds the stat bundle derived from on-chain activity
type Stats struct {
	Level int32 `json:"level" yaml:"level"`
	HP    int32 `json:"hp" yaml:"hp"`
	MP    int32 `json:"mp" yaml:"mp"`
	Str   int32 `json:"str" yaml:"str"`
	Int   int32 `json:"int" yaml:"int"`
	Dex   int32 `json:"dex" yaml:"dex"`
	Luck  int32 `json:"luck" yaml:"luck"`
	// Power is an aggregate score used only as a late tie-breaker
	Power int64 `json:"power" yaml:"power"`
}

// Ensure Snapshot implements core.Entity
var _ core.Entity = (*Snapshot)(nil)

// GetID returns the wallet address
func (s *Snapshot) GetID() string {
	return s.Address
}

// GetType returns the entity type
func (s *Snapshot) GetType() string {
	return EntityTypeFighter
}

// DisplayName returns the name when set, otherwise a shortened address
func (s *Snapshot) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return ShortAddress(s.Address)
}

// NormalizedAddress returns the lower-cased address used for seeding and cache keys
func (s *Snapshot) NormalizedAddress() string {
	return NormalizeAddress(s.Address)
}

// NormalizeAddress lower-cases an address. Battle seeds and cache keys are both
// derived from this form, so it must not do anything the seed does not.
func NormalizeAddress(address string) string {
	return strings.ToLower(address)
}

// ShortAddress renders 0x1234...abcd style addresses
func ShortAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
