package primitives

import "crypto/rand"

// StateID identifies a state within an engine. The zero value is the unset
// sentinel used by root states (no parent) and by not-yet-registered
// transition targets.
type StateID uint32

// Unset is the sentinel StateID meaning "no state" (no parent, no target).
const Unset StateID = 0

// NewStateID generates a random, non-zero StateID by composing four random
// bytes, the same per-byte construction the original engine's
// generateFsmStateId used to avoid biasing any single byte of the
// identifier. Collisions are the caller's responsibility to detect at
// registration time; NewStateID never checks a table itself.
func NewStateID() StateID {
	var b [4]byte
	for {
		if _, err := rand.Read(b[:]); err != nil {
			// crypto/rand.Read on the standard reader does not fail in
			// practice; a zero-filled fallback still satisfies "avoid the
			// unset sentinel" below.
			break
		}
		id := StateID(b[0]) | StateID(b[1])<<8 | StateID(b[2])<<16 | StateID(b[3])<<24
		if id != Unset {
			return id
		}
	}
	return StateID(1)
}
