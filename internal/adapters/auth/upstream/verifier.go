// Package upstream verifica tokens preguntándole a la API de la clínica
// quién es el usuario (/api/v1/auth/me).
package upstream

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clinic-records/internal/platform/httpclient"
	"clinic-records/internal/ports/auth"
)

const mePath = "/api/v1/auth/me"

var (
	ErrNotConfigured = errors.New("upstream verifier not configured")
	ErrTokenEmpty    = errors.New("token is empty")
	ErrUnauthorized  = errors.New("upstream unauthorized")
	ErrUpstream      = errors.New("upstream error")
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Verifier implementa auth.AuthVerifier.
type Verifier struct {
	http *httpclient.Client
}

func NewVerifier(cfg Config) (*Verifier, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrNotConfigured
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	c, err := httpclient.NewWithBaseURL(cfg.BaseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Verifier{http: c}, nil
}

type meResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Nome  string `json:"nome"`
	Tipo  string `json:"tipo"`
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.http == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var me meResponse
	if err := v.http.GetJSON(ctx, mePath, httpclient.Bearer(token), &me); err != nil {
		if httpclient.IsAuthError(err) {
			return auth.Claims{}, ErrUnauthorized
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if me.ID <= 0 {
		return auth.Claims{}, fmt.Errorf("%w: response missing id", ErrUpstream)
	}
	role, ok := roleFromTipo(me.Tipo)
	if !ok {
		return auth.Claims{}, fmt.Errorf("%w: unknown tipo %q", ErrUpstream, me.Tipo)
	}

	return auth.Claims{
		UserID: me.ID,
		Email:  strings.TrimSpace(me.Email),
		Name:   strings.TrimSpace(me.Nome),
		Role:   role,
	}, nil
}

func roleFromTipo(tipo string) (auth.Role, bool) {
	switch strings.ToLower(strings.TrimSpace(tipo)) {
	case "medico", "doctor":
		return auth.RoleDoctor, true
	case "paciente", "patient":
		return auth.RolePatient, true
	default:
		return "", false
	}
}
