// Package auth issues and verifies the signed bearer tokens used for
// session authentication. Tokens are stateless: nothing is persisted
// server-side and a valid, unexpired signature is always accepted.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is the validity window of an issued token.
const TokenLifetime = time.Hour

// ErrInvalidToken is returned for any verification failure. Expired,
// malformed and badly signed tokens are deliberately indistinguishable
// to callers.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the authenticated user identity inside the token.
type Claims struct {
	jwt.RegisteredClaims
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
}

// GenerateToken signs an HS256 token for the given user, valid for lifetime.
func GenerateToken(userID uint64, username string, secret []byte, lifetime time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
		UserID:   userID,
		Username: username,
	})

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// VerifyToken parses and validates a token string, returning its claims.
// Every failure mode collapses into ErrInvalidToken.
func VerifyToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
