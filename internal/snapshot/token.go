package snapshot

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// tokenBytes yields 8 base32 characters: short enough for a share link,
// random enough that guessing one is impractical. Uniqueness is still
// enforced by the store; a collision just regenerates.
const tokenBytes = 5

var tokenEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// newShareToken returns a short random capability token.
func newShareToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate share token: %w", err)
	}
	return strings.ToLower(tokenEncoding.EncodeToString(buf)), nil
}
