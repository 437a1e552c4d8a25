// Package auth provides the credential primitives of the service:
// bcrypt password hashing and HS256 token issuance/verification.
//
// Tokens carry only the subject user ID. No expiry claim is embedded,
// so a token stays valid until the signing key changes; verification
// still runs jwt/v5's standard validation, so a token that does carry
// an exp claim is honored.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/keepnote/keepnote/pkg/models"
)

// ErrInvalidToken is returned when a token is missing, malformed, or
// fails signature verification.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the JWT claims issued by this service.
type Claims struct {
	jwt.RegisteredClaims
	UserID models.UserID `json:"userID"`
}

// Tokens issues and verifies signed tokens with a process-lifetime
// symmetric key.
type Tokens struct {
	secret []byte
}

// NewTokens creates a token manager from the shared signing secret.
func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret)}
}

// Issue signs a token asserting the given user identity.
func (t *Tokens) Issue(userID models.UserID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token signature and returns the embedded subject.
// Any failure is reported as ErrInvalidToken; callers do not need to
// distinguish malformed from tampered tokens.
func (t *Tokens) Verify(tokenString string) (models.UserID, error) {
	if tokenString == "" {
		return models.UserID{}, ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return models.UserID{}, ErrInvalidToken
	}
	if claims.UserID.IsZero() {
		return models.UserID{}, ErrInvalidToken
	}

	return claims.UserID, nil
}
