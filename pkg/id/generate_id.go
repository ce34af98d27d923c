// Package id generates the public identifiers used for applications,
// decisions and wizard sessions.
package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns a random identifier of exactly 32 lowercase hex characters,
// no separators or prefixes.
func NewID32() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
