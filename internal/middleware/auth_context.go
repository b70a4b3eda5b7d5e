package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"clinic-records/internal/platform/logger"
	"clinic-records/internal/ports/auth"
	"clinic-records/internal/session"
)

const (
	HeaderDebugUserID   = "X-Debug-User-ID"
	HeaderDebugUserRole = "X-Debug-User-Role"
)

// AuthContext arma la session.Session del request:
// - Si verifier != nil y viene Bearer token => Verify() y sesión con token + claims.
// - Si verifier == nil => modo dev: X-Debug-User-ID (+ X-Debug-User-Role, default doctor).
// - Si no hay sesión, el request sigue igual; los handlers responden 401.
func AuthContext(verifier auth.AuthVerifier, log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))

			if verifier == nil {
				claims, ok := debugClaims(r)
				if !ok {
					next.ServeHTTP(w, r)
					return
				}
				ctx := session.NewContext(r.Context(), session.New(token, claims))
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				// No cortamos aquí. El handler decide 401.
				log.Debug("token rejected", map[string]any{"error": err})
				next.ServeHTTP(w, r)
				return
			}

			ctx := session.NewContext(r.Context(), session.New(token, claims))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func debugClaims(r *http.Request) (auth.Claims, bool) {
	raw := strings.TrimSpace(r.Header.Get(HeaderDebugUserID))
	if raw == "" {
		return auth.Claims{}, false
	}
	uid, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || uid <= 0 {
		return auth.Claims{}, false
	}

	role := auth.RoleDoctor
	switch strings.ToLower(strings.TrimSpace(r.Header.Get(HeaderDebugUserRole))) {
	case "", "doctor", "medico":
	case "patient", "paciente":
		role = auth.RolePatient
	default:
		return auth.Claims{}, false
	}
	return auth.Claims{UserID: uid, Role: role}, true
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
