package patients

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-records/internal/domain/access"
	"clinic-records/internal/domain/entities"
	"clinic-records/internal/session"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/patients", listPatientsHandler(svc))
}

// patientResponse representa un paciente visible para el médico.
type patientResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// listPatientsHandler godoc
// @Summary Listar pacientes
// @Description Lista los pacientes visibles para el médico autenticado, ordenados por nombre. Los pacientes no pueden listar.
// @Tags patients
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario"
// @Param X-Debug-User-Role header string false "Solo en modo dev, doctor|patient"
// @Param Authorization header string false "Bearer token"
// @Success 200 {array} patientResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 502 {string} string "upstream error"
// @Router /patients [get]
func listPatientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := session.FromContext(r.Context())
		if !ok || !sess.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context(), sess)
		if err != nil {
			switch {
			case errors.Is(err, access.ErrUnauthenticated), errors.Is(err, entities.ErrSourceUnauthorized):
				http.Error(w, "unauthorized", http.StatusUnauthorized)
			case errors.Is(err, access.ErrForbidden):
				http.Error(w, "forbidden", http.StatusForbidden)
			case errors.Is(err, entities.ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "upstream error", http.StatusBadGateway)
			}
			return
		}

		out := make([]patientResponse, 0, len(items))
		for _, p := range items {
			out = append(out, patientResponse{ID: p.ID, Name: p.Name, Email: p.Email})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
