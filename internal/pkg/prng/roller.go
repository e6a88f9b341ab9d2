package prng

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Roller exposes a Source through the rpg-toolkit dice interface so a battle
// seed's stream can be audited as dice rolls.
type Roller struct {
	src *Source
}

// Ensure Roller implements dice.Roller
var _ dice.Roller = (*Roller)(nil)

// NewRoller wraps src
func NewRoller(src *Source) *Roller {
	return &Roller{src: src}
}

// Roll returns a value in [1, size]
func (r *Roller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size: %d", size)
	}
	return int(r.src.Float64()*float64(size)) + 1, nil
}

// RollN rolls count dice of the given size
func (r *Roller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid dice count: %d", count)
	}
	results := make([]int, count)
	for i := range results {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}
