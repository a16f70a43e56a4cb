package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Tokens is the pair returned by a successful login.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Issuer mints and verifies the HS256 access tokens the mock server hands
// out. Refresh tokens are opaque random strings; the fixture keeps no token
// store, so they are not tracked after issuance.
type Issuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewIssuer creates a token issuer.
func NewIssuer(secret, issuer, audience string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}
}

// Issue creates a signed access token for the given user plus a fresh
// refresh token.
func (i *Issuer) Issue(userID string) (Tokens, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iss": i.issuer,
		"aud": i.audience,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(i.ttl).Unix(),
	}

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return Tokens{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := randomToken(32)
	if err != nil {
		return Tokens{}, err
	}

	return Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

// Verify parses an access token and returns its subject.
func (i *Issuer) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	if iss, ok := claims["iss"].(string); !ok || iss != i.issuer {
		return "", fmt.Errorf("invalid token issuer")
	}
	if aud, ok := claims["aud"].(string); !ok || aud != i.audience {
		return "", fmt.Errorf("invalid token audience")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("invalid token subject")
	}
	return sub, nil
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("crypto/rand: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
