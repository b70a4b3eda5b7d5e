package stats

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
		log:    log.With(map[string]any{"component": "stats"}),
	}
}

// ForPatient trae consultas y gastos (no hace falta el resto), filtra por
// paciente y agrega.
func (s *Service) ForPatient(ctx context.Context, sess session.Session, patientID int64, opts Options) (Statistics, error) {
	if err := entities.ValidatePatientID(patientID); err != nil {
		return Statistics{}, err
	}
	if err := access.CanViewPatient(sess.User, patientID, access.ScopeStatsRead); err != nil {
		return Statistics{}, err
	}

	snap, err := s.loader.Load(ctx, sess, entities.KindVisits, entities.KindExpenses)
	if err != nil {
		s.log.Warn("snapshot fetch failed", map[string]any{"patient_id": patientID, "error": err})
		return Statistics{}, err
	}

	st, err := Aggregate(snap.VisitsOf(patientID), snap.ExpensesOf(patientID), opts)
	metrics.RecordComputation(metrics.OpAggregate, err)
	if err != nil {
		s.log.Error("aggregation rejected input", map[string]any{"patient_id": patientID, "error": err})
		return Statistics{}, err
	}

	s.log.Debug("statistics aggregated", map[string]any{
		"patient_id":  patientID,
		"buckets":     len(st.Series),
		"total_spend": st.TotalSpend.StringFixed(places),
	})
	return st, nil
}
