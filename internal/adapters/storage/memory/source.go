package memory

import (
	"context"
	"sync"

	"clinic-records/internal/domain/entities"
	"clinic-records/internal/session"
)

// Seed son los datos iniciales de la fuente en memoria.
type Seed struct {
	Patients    []entities.Patient
	Doctors     []entities.Doctor
	Medications []entities.Medication
	Visits      []entities.Visit
	Expenses    []entities.Expense
}

// Source es una fuente en memoria para desarrollo y tests. Aplica el mismo
// alcance que la API: el médico ve sus registros, el paciente los suyos.
type Source struct {
	mu   sync.RWMutex
	data Seed
}

func NewSource(seed Seed) *Source {
	return &Source{data: seed}
}

// Replace cambia los datos de golpe (simula un alta/baja en la API seguido de re-fetch).
func (s *Source) Replace(seed Seed) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = seed
}

func (s *Source) Patients(ctx context.Context, sess session.Session) ([]entities.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Patient, 0, len(s.data.Patients))
	for _, p := range s.data.Patients {
		if sess.User.IsPatient() && p.ID != sess.User.UserID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Source) Doctors(ctx context.Context, sess session.Session) ([]entities.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Doctor, len(s.data.Doctors))
	copy(out, s.data.Doctors)
	return out, nil
}

func (s *Source) Medications(ctx context.Context, sess session.Session) ([]entities.Medication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Medication, 0)
	for _, m := range s.data.Medications {
		if visible(sess, m.PatientID, m.DoctorID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *Source) Visits(ctx context.Context, sess session.Session) ([]entities.Visit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Visit, 0)
	for _, v := range s.data.Visits {
		if visible(sess, v.PatientID, v.DoctorID) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *Source) Expenses(ctx context.Context, sess session.Session) ([]entities.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Expense, 0)
	for _, e := range s.data.Expenses {
		if visible(sess, e.PatientID, e.DoctorID) {
			out = append(out, e)
		}
	}
	return out, nil
}

// visible replica el filtro de listado de la API:
// - médico: registros con su medico_id
// - paciente: registros con su paciente_id
// Registros sin médico solo los ve el paciente.
func visible(sess session.Session, patientID int64, doctorID *int64) bool {
	switch {
	case sess.User.IsDoctor():
		return doctorID != nil && *doctorID == sess.User.UserID
	case sess.User.IsPatient():
		return patientID == sess.User.UserID
	default:
		return false
	}
}
