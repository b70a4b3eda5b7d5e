package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-records/internal/platform/logger"
	"clinic-records/internal/ports/auth"
	"clinic-records/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureSession devuelve un handler que guarda la sesión del request.
func captureSession(got *session.Session, ok *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got, *ok = session.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthContext_DevHeaders(t *testing.T) {
	cases := []struct {
		name     string
		id, role string
		wantOK   bool
		wantRole auth.Role
	}{
		{"default role is doctor", "1", "", true, auth.RoleDoctor},
		{"patient", "2", "patient", true, auth.RolePatient},
		{"portuguese role", "2", "paciente", true, auth.RolePatient},
		{"no header", "", "", false, ""},
		{"non numeric id", "abc", "", false, ""},
		{"unknown role", "1", "admin", false, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got session.Session
			var ok bool
			h := AuthContext(nil, nil)(captureSession(&got, &ok))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.id != "" {
				req.Header.Set(HeaderDebugUserID, tc.id)
			}
			if tc.role != "" {
				req.Header.Set(HeaderDebugUserRole, tc.role)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantRole, got.User.Role)
				assert.NotEmpty(t, got.ID)
			}
		})
	}
}

func TestAuthContext_Verifier(t *testing.T) {
	verifier := auth.VerifierFunc(func(ctx context.Context, token string) (auth.Claims, error) {
		if token != "good" {
			return auth.Claims{}, errors.New("bad token")
		}
		return auth.Claims{UserID: 7, Role: auth.RoleDoctor}, nil
	})

	var got session.Session
	var ok bool
	h := AuthContext(verifier, logger.Nop())(captureSession(&got, &ok))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.True(t, ok)
	assert.Equal(t, int64(7), got.User.UserID)
	assert.Equal(t, "good", got.Token)

	// token inválido: sigue sin sesión, el handler decide
	ok = false
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.False(t, ok)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// debug headers se ignoran con verifier
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderDebugUserID, "1")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.False(t, ok)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer  abc "))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.Equal(t, "", bearerToken("abc"))
	assert.Equal(t, "", bearerToken(""))
}

func TestRequestLog_UsesRoutePattern(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Info, Format: logger.FormatJSON, Output: &buf})

	r := chi.NewRouter()
	r.Use(RequestLog(log))
	r.Get("/patients/{patientID}/record", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/patients/2/record", nil))

	out := buf.String()
	assert.Contains(t, out, `"route":"/patients/{patientID}/record"`)
	assert.Contains(t, out, `"path":"/patients/2/record"`)
	assert.Contains(t, out, `"status":403`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestRateLimit(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	h := RateLimit(0.0001, 2)(ok)
	codes := []int{}
	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)

	// desactivado
	h = RateLimit(0, 0)(ok)
	for i := 0; i < 5; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}
