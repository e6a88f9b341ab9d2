package testutils

import (
	"github.com/KirkDiggler/wallet-arena/internal/entities"
)

// Fixture addresses
const (
	WarriorAddress = "0xAAAA000000000000000000000000000000000001"
	RogueAddress   = "0xbbbb000000000000000000000000000000000002"
)

// WarriorSnapshot is a mid-level warrior with sensible stats
func WarriorSnapshot() entities.Snapshot {
	return entities.Snapshot{
		Address: WarriorAddress,
		Name:    "Ironhide",
		Class:   entities.ClassWarrior,
		Stats: entities.Stats{
			Level: 12, HP: 400, MP: 200, Str: 200, Int: 50, Dex: 250, Luck: 120, Power: 1000,
		},
	}
}

// RogueSnapshot is a mid-level rogue with sensible stats
func RogueSnapshot() entities.Snapshot {
	return entities.Snapshot{
		Address: RogueAddress,
		Class:   entities.ClassRogue,
		Stats: entities.Stats{
			Level: 11, HP: 350, MP: 180, Str: 180, Int: 40, Dex: 320, Luck: 140, Power: 900,
		},
	}
}

// FighterPair returns the warrior and rogue in that order
func FighterPair() [2]entities.Snapshot {
	return [2]entities.Snapshot{WarriorSnapshot(), RogueSnapshot()}
}
