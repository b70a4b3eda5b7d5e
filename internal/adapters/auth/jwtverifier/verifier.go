// Package jwtverifier valida tokens HS256 firmados con un secreto compartido.
package jwtverifier

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"clinic-records/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoSecret     = errors.New("jwt secret is empty")
	ErrTokenEmpty   = errors.New("token is empty")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims: sub es el ID numérico del usuario.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
}

type Verifier struct {
	secret []byte
}

func New(secret string) (*Verifier, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &Verifier{secret: []byte(secret)}, nil
}

func (v *Verifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	c, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return auth.Claims{}, ErrInvalidToken
	}

	uid, err := strconv.ParseInt(strings.TrimSpace(c.Subject), 10, 64)
	if err != nil || uid <= 0 {
		return auth.Claims{}, fmt.Errorf("%w: sub must be a positive integer", ErrInvalidToken)
	}

	role := auth.Role(strings.ToLower(strings.TrimSpace(c.Role)))
	if role != auth.RoleDoctor && role != auth.RolePatient {
		return auth.Claims{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, c.Role)
	}

	return auth.Claims{UserID: uid, Email: c.Email, Name: c.Name, Role: role}, nil
}

// Sign emite un token para c. Lo usan el CLI en modo dev y los tests.
func (v *Verifier) Sign(c auth.Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(c.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: c.Email,
		Name:  c.Name,
		Role:  string(c.Role),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
