package booking

import "math/rand"

const (
	refIDLength   = 8
	refIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// Uniqueness is enforced by the unique index on refId; a collision shows
	// up as a duplicate-key insert and the draw is retried. The bound keeps
	// the loop live even under pathological collision rates.
	maxRefIDAttempts = 5
)

// newRefID draws an 8-character reference ID uniformly from [A-Z0-9].
func newRefID() string {
	b := make([]byte, refIDLength)
	for i := range b {
		b[i] = refIDAlphabet[rand.Intn(len(refIDAlphabet))]
	}
	return string(b)
}
