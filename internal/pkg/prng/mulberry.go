package prng

// Source is a mulberry32 generator. It is not safe for concurrent use;
// each battle owns its own Source.
type Source struct {
	state uint32
}

// New creates a Source seeded with seed
func New(seed uint32) *Source {
	return &Source{state: seed}
}

// NewFromHex creates a Source from a hex battle seed
func NewFromHex(seed string) (*Source, error) {
	v, err := ParseSeed(seed)
	if err != nil {
		return nil, err
	}
	return New(v), nil
}

// Uint32 advances the generator and returns the next 32-bit value
func (s *Source) Uint32() uint32 {
	s.state += 0x6d2b79f5
	t := s.state
	t = (t ^ t>>15) * (t | 1)
	t = (t + (t^t>>7)*(t|61)) ^ t
	return t ^ t>>14
}

// Float64 returns the next value in [0,1)
func (s *Source) Float64() float64 {
	return float64(s.Uint32()) / 4294967296.0
}
