// Package idgen hands out nonces for battles that are started without one
package idgen

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces battle nonces
type Generator interface {
	Generate() string
}

// Counter issues increasing decimal nonces. Safe for concurrent use.
type Counter struct {
	next atomic.Uint64
}

// NewCounter returns a counter whose first nonce is start
func NewCounter(start uint64) *Counter {
	c := &Counter{}
	c.next.Store(start)
	return c
}

// Generate returns the next nonce
func (c *Counter) Generate() string {
	return strconv.FormatUint(c.next.Add(1)-1, 10)
}

// Random issues unguessable nonces: a UUIDv4 as 32 hex characters
type Random struct {
	prefix string
}

// NewRandom returns a random nonce generator; prefix is prepended verbatim
func NewRandom(prefix string) *Random {
	return &Random{prefix: prefix}
}

// Generate returns a fresh nonce
func (r *Random) Generate() string {
	return r.prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}
