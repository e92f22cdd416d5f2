package cryptox

import (
	"crypto/rand"
	"encoding/binary"
)

// Nonce returns a fresh 64-bit unsigned random value from the system's
// cryptographic random source. Every signed token carries one so that two
// tokens minted for identical inputs within the same clock second still
// differ.
func Nonce() uint64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return binary.BigEndian.Uint64(b[:])
}
