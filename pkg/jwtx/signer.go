package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// MinKeySize is the smallest HMAC secret accepted, matching the SHA-256 block output.
const MinKeySize = 32

// ErrKeyTooShort is returned when an HMAC secret is shorter than MinKeySize.
var ErrKeyTooShort = errors.New("jwtx: signing key must be at least 32 bytes")

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// HS256Signer signs tokens with a shared HMAC-SHA256 secret.
type HS256Signer struct {
	key []byte
}

// NewSignerHS256 creates an HS256 signer. The key is copied so later
// mutation by the caller does not affect issued tokens.
func NewSignerHS256(key []byte) (*HS256Signer, error) {
	if len(key) < MinKeySize {
		return nil, ErrKeyTooShort
	}
	return &HS256Signer{key: append([]byte(nil), key...)}, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign takes your claims and turns them into a compact signed JWT.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.key)
}
