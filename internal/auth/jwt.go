package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

// ErrEmptyToken is returned by Verify for an empty token string.
var ErrEmptyToken = errors.New("token is empty")

// Claims is the decoded view of a verified token.
type Claims struct {
	Subject  string
	IsAdmin  bool
	IssuedAt time.Time
}

// JWTManager issues and verifies HS256 tokens asserting {subject, isAdmin}.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTManager creates a token codec. A zero ttl issues tokens without an
// expiry claim; they stay valid for as long as the secret does.
func NewJWTManager(secret string, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

type tokenClaims struct {
	jwt.RegisteredClaims
	IsAdmin bool `json:"isAdmin"`
}

// Issue signs a token for subject.
func (m *JWTManager) Issue(subject string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  subject,
			Issuer:   m.issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
		IsAdmin: isAdmin,
	}
	if m.ttl != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and checks a token. It fails on an empty or malformed token,
// a non-HMAC algorithm, a signature made with another secret, a foreign
// issuer, a missing subject, or an expiry claim in the past.
func (m *JWTManager) Verify(tokenString string) (Claims, error) {
	if tokenString == "" {
		return Claims{}, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer))
	if err != nil {
		return Claims{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return Claims{}, fmt.Errorf("invalid token claims")
	}
	if claims.Subject == "" {
		return Claims{}, fmt.Errorf("token has no subject")
	}

	out := Claims{Subject: claims.Subject, IsAdmin: claims.IsAdmin}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	return out, nil
}

// ValidateToken verifies token and classifies its bearer.
func (m *JWTManager) ValidateToken(_ context.Context, token string) (domain.Caller, error) {
	claims, err := m.Verify(token)
	if err != nil {
		return domain.Anonymous(), err
	}
	return domain.Identified(claims.Subject, claims.IsAdmin), nil
}
