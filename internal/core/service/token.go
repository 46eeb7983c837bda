package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/domain"
)

// TokenIssuer produces the opaque token stored alongside a session snapshot.
type TokenIssuer interface {
	Issue(identity domain.Identity, issuedAt, expiresAt time.Time) (string, error)
}

// JWTIssuer signs HS256 tokens. Nothing in the access gate verifies them.
type JWTIssuer struct {
	secret []byte
}

func NewJWTIssuer(secret string) *JWTIssuer {
	return &JWTIssuer{secret: []byte(secret)}
}

func (i *JWTIssuer) Issue(identity domain.Identity, issuedAt, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   identity.ID,
		"email": identity.Email,
		"role":  identity.Role.String(),
		"iat":   issuedAt.Unix(),
		"exp":   expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
