package w8r

import (
	"crypto/rand"

	"github.com/google/uuid"
)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomSuffix returns n random lowercase-alphanumeric characters,
// suitable for naming disposable test resources (containers, buckets,
// queues) without collisions across parallel suite runs.
func RandomSuffix(n int) string {
	if n <= 0 {
		return ""
	}

	b := make([]byte, n)
	// crypto/rand.Read never fails on supported platforms.
	_, _ = rand.Read(b)

	for i, c := range b {
		b[i] = suffixAlphabet[int(c)%len(suffixAlphabet)]
	}

	return string(b)
}

// RandomID returns a random UUID string for when a resource name needs
// to be globally unique rather than merely short.
func RandomID() string {
	return uuid.NewString()
}
