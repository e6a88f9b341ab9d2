package prng

import "fmt"

// ForBattle derives the battle seed and returns a Source seeded from it
func ForBattle(addr1, addr2, nonce string) (string, *Source) {
	seed := Seed(addr1, addr2, nonce)
	src, err := NewFromHex(seed)
	if err != nil {
		// Seed always renders valid hex
		panic(fmt.Sprintf("prng: unparsable battle seed %q: %v", seed, err))
	}
	return seed, src
}
