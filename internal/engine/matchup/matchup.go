// Package matchup resolves class-versus-class advantage.
//
// Classes sit on one of two advantage rings. Within a ring each class beats the
// class that follows it. Everything else (same class, non-adjacent classes on
// the same ring, classes on different rings) is neutral.
package matchup

import (
	"github.com/KirkDiggler/wallet-arena/internal/entities"
)

// Advantage labels one side of a matchup
type Advantage string

// Advantage labels
const (
	Advantaged    Advantage = "advantaged"
	Neutral       Advantage = "neutral"
	Disadvantaged Advantage = "disadvantaged"
)

var (
	ringA = []entities.ClassID{
		entities.ClassWarrior,
		entities.ClassRogue,
		entities.ClassMerchant,
		entities.ClassPriest,
		entities.ClassElderWizard,
	}
	ringB = []entities.ClassID{
		entities.ClassHunter,
		entities.ClassSummoner,
		entities.ClassGuardian,
	}
)

// Matchup is the resolved advantage of each fighter
type Matchup struct {
	Fighter0 Advantage `json:"fighter0"`
	Fighter1 Advantage `json:"fighter1"`
}

// For returns the advantage of the fighter at index (0 or 1)
func (m Matchup) For(index int) Advantage {
	if index == 0 {
		return m.Fighter0
	}
	return m.Fighter1
}

// DealMultiplier is the damage-dealt multiplier for the label
func (a Advantage) DealMultiplier() float64 {
	switch a {
	case Advantaged:
		return 1.15
	case Disadvantaged:
		return 0.80
	default:
		return 1.0
	}
}

// ReceiveMultiplier is the damage-received multiplier for the label
func (a Advantage) ReceiveMultiplier() float64 {
	switch a {
	case Advantaged:
		return 0.80
	case Disadvantaged:
		return 1.15
	default:
		return 1.0
	}
}

// Resolve returns the matchup of a (fighter 0) against b (fighter 1)
func Resolve(a, b entities.ClassID) Matchup {
	switch {
	case beats(a, b):
		return Matchup{Fighter0: Advantaged, Fighter1: Disadvantaged}
	case beats(b, a):
		return Matchup{Fighter0: Disadvantaged, Fighter1: Advantaged}
	default:
		return Matchup{Fighter0: Neutral, Fighter1: Neutral}
	}
}

// beats reports whether a directly precedes b on a ring
func beats(a, b entities.ClassID) bool {
	for _, ring := range [][]entities.ClassID{ringA, ringB} {
		for i, c := range ring {
			if c == a {
				return ring[(i+1)%len(ring)] == b
			}
		}
	}
	return false
}
