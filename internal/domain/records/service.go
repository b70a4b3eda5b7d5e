package records

import (
	"context"

	"clinic-records/internal/domain/access"
	"clinic-records/internal/domain/entities"
	"clinic-records/internal/platform/logger"
	"clinic-records/internal/platform/metrics"
	"clinic-records/internal/session"
)

type Service struct {
	loader *entities.Loader
	log    logger.Logger
}

func NewService(loader *entities.Loader, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		loader: loader,
		log:    log.With(map[string]any{"component": "records"}),
	}
}

// Get trae un snapshot fresco (sin caché) y consolida el prontuario del paciente.
func (s *Service) Get(ctx context.Context, sess session.Session, patientID int64) (PatientRecord, error) {
	if err := entities.ValidatePatientID(patientID); err != nil {
		return PatientRecord{}, err
	}
	if err := access.CanViewPatient(sess.User, patientID, access.ScopeRecordRead); err != nil {
		return PatientRecord{}, err
	}

	snap, err := s.loader.Load(ctx, sess,
		entities.KindPatients,
		entities.KindDoctors,
		entities.KindMedications,
		entities.KindVisits,
		entities.KindExpenses,
	)
	if err != nil {
		s.log.Warn("snapshot fetch failed", map[string]any{"patient_id": patientID, "error": err})
		return PatientRecord{}, err
	}

	rec, err := Consolidate(patientID, snap)
	metrics.RecordComputation(metrics.OpConsolidate, err)
	if err != nil {
		s.log.Error("consolidation rejected input", map[string]any{"patient_id": patientID, "error": err})
		return PatientRecord{}, err
	}

	s.log.Debug("record consolidated", map[string]any{
		"patient_id":  patientID,
		"medications": len(rec.Medications),
		"visits":      len(rec.Visits),
		"expenses":    len(rec.Expenses),
	})
	return rec, nil
}
