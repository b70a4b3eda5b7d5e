package patients

import (
	"context"
	"sort"

	"clinic-records/internal/domain/access"
	"clinic-records/internal/domain/entities"
	"clinic-records/internal/session"
)

type Service struct {
	loader *entities.Loader
}

func NewService(loader *entities.Loader) *Service {
	return &Service{loader: loader}
}

// List devuelve los pacientes visibles para la sesión, ordenados por nombre.
// Solo los médicos listan pacientes.
func (s *Service) List(ctx context.Context, sess session.Session) ([]entities.Patient, error) {
	if err := access.Require(sess.User, access.ScopePatientsList); err != nil {
		return nil, err
	}

	snap, err := s.loader.Load(ctx, sess, entities.KindPatients)
	if err != nil {
		return nil, err
	}
	if err := entities.ValidatePatients(snap.Patients); err != nil {
		return nil, err
	}

	out := make([]entities.Patient, len(snap.Patients))
	copy(out, snap.Patients)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}
