package specimen

import (
	"crypto/rand"
	"encoding/hex"
)

// Nonce returns n random bytes as a lowercase hex string.
func Nonce(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return hex.EncodeToString(b)
}
