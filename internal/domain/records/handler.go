package records

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"clinic-records/internal/domain/access"
	"clinic-records/internal/domain/entities"
	"clinic-records/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/patients/{patientID}/record", getRecordHandler(svc))
}

// patientResponse es el encabezado del prontuario.
type patientResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// medicationResponse es un medicamento en uso.
type medicationResponse struct {
	ID          int64  `json:"id"`
	PatientID   int64  `json:"patient_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Dosage      string `json:"dosage"`
	Frequency   string `json:"frequency"`
	DoctorID    *int64 `json:"doctor_id,omitempty"`
	DoctorName  string `json:"doctor_name"`
}

// visitResponse es una consulta del historial.
type visitResponse struct {
	ID          int64     `json:"id"`
	PatientID   int64     `json:"patient_id"`
	Date        string    `json:"date"` // YYYY-MM-DD
	OccurredAt  time.Time `json:"occurred_at"`
	Description string    `json:"description"`
	DoctorID    *int64    `json:"doctor_id,omitempty"`
	DoctorName  string    `json:"doctor_name"`
}

// expenseResponse es un gasto del historial. amount va con 2 decimales.
type expenseResponse struct {
	ID          int64       `json:"id"`
	PatientID   int64       `json:"patient_id"`
	Date        string      `json:"date"`
	OccurredAt  time.Time   `json:"occurred_at"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount" swaggertype:"number"`
	Category    string      `json:"category" enums:"consultation,medication"`
	DoctorID    *int64      `json:"doctor_id,omitempty"`
	DoctorName  string      `json:"doctor_name"`
}

// RecordResponse es el prontuario consolidado de un paciente.
type RecordResponse struct {
	PatientID   int64                `json:"patient_id"`
	Patient     *patientResponse     `json:"patient,omitempty"`
	Medications []medicationResponse `json:"medications"`
	Visits      []visitResponse      `json:"visits"`
	Expenses    []expenseResponse    `json:"expenses"`
}

// getRecordHandler godoc
// @Summary Prontuario del paciente
// @Description Consolida medicamentos, consultas y gastos del paciente. Consultas y gastos van del más reciente al más antiguo; los medicamentos conservan el orden de la fuente. Un paciente solo puede ver su propio prontuario.
// @Tags records
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario"
// @Param X-Debug-User-Role header string false "Solo en modo dev, doctor|patient"
// @Param Authorization header string false "Bearer token"
// @Param patientID path int true "ID del paciente"
// @Success 200 {object} RecordResponse
// @Failure 400 {string} string "invalid patient id / invalid source data"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 502 {string} string "upstream error"
// @Router /patients/{patientID}/record [get]
func getRecordHandler(svc *Service) http.HandlerFunc {
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

		rec, err := svc.Get(r.Context(), sess, patientID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ToRecordResponse(rec))
	}
}

func ToRecordResponse(rec PatientRecord) RecordResponse {
	out := RecordResponse{
		PatientID:   rec.PatientID,
		Medications: make([]medicationResponse, 0, len(rec.Medications)),
		Visits:      make([]visitResponse, 0, len(rec.Visits)),
		Expenses:    make([]expenseResponse, 0, len(rec.Expenses)),
	}
	if rec.Patient != nil {
		out.Patient = &patientResponse{ID: rec.Patient.ID, Name: rec.Patient.Name, Email: rec.Patient.Email}
	}
	for _, m := range rec.Medications {
		out.Medications = append(out.Medications, medicationResponse{
			ID:          m.ID,
			PatientID:   m.PatientID,
			Name:        m.Name,
			Description: m.Description,
			Dosage:      m.Dosage,
			Frequency:   m.Frequency,
			DoctorID:    m.DoctorID,
			DoctorName:  m.DoctorName,
		})
	}
	for _, v := range rec.Visits {
		out.Visits = append(out.Visits, visitResponse{
			ID:          v.ID,
			PatientID:   v.PatientID,
			Date:        v.Date.Format(entities.DateLayout),
			OccurredAt:  v.Date,
			Description: v.Description,
			DoctorID:    v.DoctorID,
			DoctorName:  v.DoctorName,
		})
	}
	for _, e := range rec.Expenses {
		out.Expenses = append(out.Expenses, expenseResponse{
			ID:          e.ID,
			PatientID:   e.PatientID,
			Date:        e.Date.Format(entities.DateLayout),
			OccurredAt:  e.Date,
			Description: e.Description,
			Amount:      money(e.Amount),
			Category:    string(e.Category),
			DoctorID:    e.DoctorID,
			DoctorName:  e.DoctorName,
		})
	}
	return out
}

// money redondea a 2 decimales recién en el borde de salida.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
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

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
