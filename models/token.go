package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed session JWT issued by the identity provider.
//
// It embeds [jwt.RegisteredClaims] so the standard claims (sub, exp, iss) are
// available directly; the signed-in display name travels in the subject claim.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// GetName returns the display name stored in the subject claim.
func (t *Token) GetName() (string, error) {
	name, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting name from token: %w", err)
	}
	if name == "" {
		return "", fmt.Errorf("error extracting name from token: empty subject")
	}
	return name, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
