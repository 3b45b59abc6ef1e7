package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// KeySize256 is 256 bits of entropy, the minimum HMAC-SHA256 key length.
const KeySize256 = 32

// GenerateToken returns size random bytes encoded as base64url without
// padding. It is used for generated signing secrets.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("cryptox: token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("cryptox: read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
