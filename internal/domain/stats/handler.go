package stats

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"clinic-records/internal/domain/access"
	"clinic-records/internal/domain/entities"
	"clinic-records/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/patients/{patientID}/statistics", getStatisticsHandler(svc))
}

// BucketResponse es un punto de la serie temporal.
type BucketResponse struct {
	Date               string      `json:"date"` // YYYY-MM-DD o YYYY-MM
	ConsultationAmount json.Number `json:"consultation_amount" swaggertype:"number"`
	MedicationAmount   json.Number `json:"medication_amount" swaggertype:"number"`
	Total              json.Number `json:"total" swaggertype:"number"`
}

// StatisticsResponse resume el gasto de un paciente.
type StatisticsResponse struct {
	TotalSpend        json.Number      `json:"total_spend" swaggertype:"number"`
	ConsultationSpend json.Number      `json:"consultation_spend" swaggertype:"number"`
	MedicationSpend   json.Number      `json:"medication_spend" swaggertype:"number"`
	TotalVisits       int              `json:"total_visits"`
	Granularity       Granularity      `json:"granularity" enums:"day,month"`
	Series            []BucketResponse `json:"series"`
}

// getStatisticsHandler godoc
// @Summary Estadísticas de gasto del paciente
// @Description Totales por categoría, cantidad de consultas y serie temporal (un bucket por fecha con gastos, del más antiguo al más reciente). Un paciente solo puede ver sus propias estadísticas.
// @Tags statistics
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario"
// @Param X-Debug-User-Role header string false "Solo en modo dev, doctor|patient"
// @Param Authorization header string false "Bearer token"
// @Param patientID path int true "ID del paciente"
// @Param granularity query string false "day (default) o month"
// @Success 200 {object} StatisticsResponse
// @Failure 400 {string} string "invalid patient id / granularity / source data"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 502 {string} string "upstream error"
// @Router /patients/{patientID}/statistics [get]
func getStatisticsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := session.FromContext(r.Context())
		if !ok || !sess.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		patientID, err := strconv.ParseInt(strings.TrimSpace(chi.URLParam(r, "patientID")), 10, 64)
		if err != nil {
			http.Error(w, "patient id must be an integer", http.StatusBadRequest)
			return
		}

		gran, ok := ParseGranularity(strings.TrimSpace(r.URL.Query().Get("granularity")))
		if !ok {
			http.Error(w, "granularity must be day or month", http.StatusBadRequest)
			return
		}

		st, err := svc.ForPatient(r.Context(), sess, patientID, Options{Granularity: gran})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ToResponse(st))
	}
}

// ToResponse es el contrato JSON de Statistics (lo reutiliza el CLI).
func ToResponse(st Statistics) StatisticsResponse {
	out := StatisticsResponse{
		TotalSpend:        money(st.TotalSpend),
		ConsultationSpend: money(st.ConsultationSpend),
		MedicationSpend:   money(st.MedicationSpend),
		TotalVisits:       st.TotalVisits,
		Granularity:       st.Granularity,
		Series:            make([]BucketResponse, 0, len(st.Series)),
	}
	for _, b := range st.Series {
		out.Series = append(out.Series, BucketResponse{
			Date:               b.Label,
			ConsultationAmount: money(b.ConsultationAmount),
			MedicationAmount:   money(b.MedicationAmount),
			Total:              money(b.Total),
		})
	}
	return out
}

func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(places))
}

func writeError(w http.ResponseWriter, err error) {
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
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
