// Package session modela la sesión actual (token + usuario) como un valor
// explícito que se pasa a los colaboradores, nunca como estado global.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"clinic-records/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrNoSession = errors.New("no active session")
)

type Session struct {
	ID       string
	Token    string // bearer token para la API; puede estar vacío en modo dev
	User     auth.Claims
	LoadedAt time.Time
}

// New arma una sesión con ID propio.
func New(token string, user auth.Claims) Session {
	return Session{
		ID:       uuid.NewString(),
		Token:    strings.TrimSpace(token),
		User:     user,
		LoadedAt: time.Now().UTC(),
	}
}

// Authenticated indica si hay un usuario identificado.
func (s Session) Authenticated() bool {
	return s.User.UserID > 0
}

type ctxKey struct{}

// NewContext adjunta la sesión al request. La usa el middleware de auth.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}

// Holder guarda la sesión de un proceso de larga vida (CLI) con ciclo de vida
// explícito: Load al iniciar, Clear al cerrar sesión o al recibir un 401.
type Holder struct {
	mu  sync.RWMutex
	cur *Session
}

func (h *Holder) Load(s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cur = &s
}

func (h *Holder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cur = nil
}

func (h *Holder) Current() (Session, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.cur == nil {
		return Session{}, ErrNoSession
	}
	return *h.cur, nil
}
