// Package prng provides the deterministic random stream battles are fought with.
//
// A battle seed is a 32-bit FNV-1a hash of the lower-cased participant addresses
// and the nonce, rendered as 8 lowercase hex characters. The seed drives a
// mulberry32 generator, so the same (addr1, addr2, nonce) triple always yields
// the same stream.
package prng

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	fnvOffsetBasis uint32 = 0x811c9dc5
	fnvPrime       uint32 = 0x01000193
)

// Hash32 returns the FNV-1a hash of s
func Hash32(s string) uint32 {
	h := fnvOffsetBasis
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= fnvPrime
	}
	return h
}

// Seed derives the battle seed for two addresses and a nonce.
// Addresses are compared case-insensitively; their order matters.
func Seed(addr1, addr2, nonce string) string {
	input := strings.ToLower(addr1) + strings.ToLower(addr2) + nonce
	return fmt.Sprintf("%08x", Hash32(input))
}

// ParseSeed parses a hex battle seed
func ParseSeed(seed string) (uint32, error) {
	v, err := strconv.ParseUint(seed, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid battle seed %q: %w", seed, err)
	}
	return uint32(v), nil
}
