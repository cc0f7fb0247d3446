// Package entropy provides seed material for simulations constructed without
// an explicit seed. The engine itself stays fully deterministic: once seeded,
// all randomness flows through the simulation's own stream.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
)

// Seed returns a positive random seed drawn from crypto/rand.
func Seed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing is effectively unreachable; fall back to a
		// fixed seed rather than propagating an error nobody can act on.
		return 1
	}
	n := int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
	if n == 0 {
		n = 1
	}
	return n
}

// Float returns a uniform random float64 in [0, 1) from crypto/rand.
// Used only outside the deterministic tick path.
func Float() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0.5
	}
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}
