// Package clinicapi lee las colecciones desde la API REST de la clínica.
package clinicapi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-records/internal/domain/entities"
	"clinic-records/internal/platform/httpclient"
	"clinic-records/internal/session"
)

const (
	pathPatients    = "/api/v1/pacientes/"
	pathMedications = "/api/v1/medicamentos/"
	pathVisits      = "/api/v1/consultas/"
	pathExpenses    = "/api/v1/gastos/"
)

var (
	ErrNotConfigured = errors.New("clinic api not configured")
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Source implementa entities.Source contra la API. No reintenta: un fetch
// fallido se devuelve tal cual.
type Source struct {
	http *httpclient.Client
}

func NewSource(cfg Config) (*Source, error) {
	if cfg.BaseURL == "" {
		return nil, ErrNotConfigured
	}
	c, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Source{http: c}, nil
}

// Patients: la API solo lista pacientes a médicos. Para un paciente la
// colección visible es él mismo, tal como lo identificó la sesión.
func (s *Source) Patients(ctx context.Context, sess session.Session) ([]entities.Patient, error) {
	if sess.User.IsPatient() {
		return []entities.Patient{{
			ID:    sess.User.UserID,
			Name:  sess.User.Name,
			Email: sess.User.Email,
		}}, nil
	}

	var raw []usuarioDTO
	if err := s.get(ctx, sess, pathPatients, &raw); err != nil {
		return nil, err
	}
	return convert(raw, usuarioDTO.patient)
}

func (s *Source) Medications(ctx context.Context, sess session.Session) ([]entities.Medication, error) {
	var raw []medicamentoDTO
	if err := s.get(ctx, sess, pathMedications, &raw); err != nil {
		return nil, err
	}
	return convert(raw, medicamentoDTO.medication)
}

func (s *Source) Visits(ctx context.Context, sess session.Session) ([]entities.Visit, error) {
	var raw []consultaDTO
	if err := s.get(ctx, sess, pathVisits, &raw); err != nil {
		return nil, err
	}
	return convert(raw, consultaDTO.visit)
}

func (s *Source) Expenses(ctx context.Context, sess session.Session) ([]entities.Expense, error) {
	var raw []gastoDTO
	if err := s.get(ctx, sess, pathExpenses, &raw); err != nil {
		return nil, err
	}
	return convert(raw, gastoDTO.expense)
}

func (s *Source) get(ctx context.Context, sess session.Session, path string, out any) error {
	if s == nil || s.http == nil {
		return ErrNotConfigured
	}
	err := s.http.GetJSON(ctx, path, httpclient.Bearer(sess.Token), out)
	if err == nil {
		return nil
	}
	if httpclient.IsAuthError(err) {
		return fmt.Errorf("%w: %v", entities.ErrSourceUnauthorized, err)
	}
	return err
}

func convert[D, T any](raw []D, fn func(D, int) (T, error)) ([]T, error) {
	out := make([]T, 0, len(raw))
	for i, d := range raw {
		v, err := fn(d, i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
