package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/OSU-CS493-Sp18/auth/internal/application/ports"
	domerrors "github.com/OSU-CS493-Sp18/auth/internal/domain/errors"
)

// TokenIssuer implements ports.TokenIssuer with HS256. Tokens carry only the
// subject (the user identifier) and the standard time claims.
type TokenIssuer struct {
	secret []byte
	issuer string
	expiry time.Duration
}

func NewTokenIssuer(secret []byte, issuer string, expiry time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, issuer: issuer, expiry: expiry}
}

func (t *TokenIssuer) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    t.issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify returns the token subject. Failures are AuthErrors: expired tokens,
// undecodable tokens, and everything else (bad signature, wrong algorithm,
// wrong claims) map to the expired, malformed, and invalid reasons so the
// distinction survives into logs while clients uniformly get 401.
func (t *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", domerrors.NewAuthError(domerrors.ReasonExpired)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", domerrors.NewAuthError(domerrors.ReasonMalformed)
		default:
			return "", domerrors.NewAuthError(domerrors.ReasonInvalid)
		}
	}
	if !token.Valid || claims.Subject == "" {
		return "", domerrors.NewAuthError(domerrors.ReasonInvalid)
	}
	return claims.Subject, nil
}

// Ensure TokenIssuer implements ports.TokenIssuer.
var _ ports.TokenIssuer = (*TokenIssuer)(nil)
