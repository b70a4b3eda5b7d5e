package records

import (
	"sort"

	"clinic-records/internal/domain/entities"
)

// Consolidate arma el prontuario de patientID a partir del snapshot.
// Es una función pura: no modifica el snapshot y, con la misma entrada,
// devuelve siempre el mismo resultado. Colecciones nil se leen como vacías.
func Consolidate(patientID int64, snap *entities.Snapshot) (PatientRecord, error) {
	if err := entities.ValidatePatientID(patientID); err != nil {
		return PatientRecord{}, err
	}
	if err := snap.Validate(); err != nil {
		return PatientRecord{}, err
	}

	idx := snap.Index()

	rec := PatientRecord{
		PatientID:   patientID,
		Medications: make([]MedicationEntry, 0),
		Visits:      make([]VisitEntry, 0),
		Expenses:    make([]ExpenseEntry, 0),
	}
	// Encabezado: sin nombre ni email se omite, como un paciente ausente.
	if p, ok := idx.Patient(patientID); ok && p.DisplayName() != "" {
		p.Name = p.DisplayName()
		rec.Patient = &p
	}

	for _, m := range snap.MedicationsOf(patientID) {
		rec.Medications = append(rec.Medications, MedicationEntry{
			Medication: m,
			DoctorName: doctorName(idx, m.DoctorID, m.DoctorName),
		})
	}

	for _, v := range snap.VisitsOf(patientID) {
		rec.Visits = append(rec.Visits, VisitEntry{
			Visit:      v,
			DoctorName: doctorName(idx, v.DoctorID, v.DoctorName),
		})
	}
	// Orden por fecha desc (más reciente primero); empates conservan el orden de entrada.
	sort.SliceStable(rec.Visits, func(i, j int) bool {
		return rec.Visits[i].Date.After(rec.Visits[j].Date)
	})

	for _, e := range snap.ExpensesOf(patientID) {
		rec.Expenses = append(rec.Expenses, ExpenseEntry{
			Expense:    e,
			DoctorName: doctorName(idx, e.DoctorID, e.DoctorName),
		})
	}
	sort.SliceStable(rec.Expenses, func(i, j int) bool {
		return rec.Expenses[i].Date.After(rec.Expenses[j].Date)
	})

	return rec, nil
}

func doctorName(idx *entities.Index, id *int64, embedded *string) string {
	if name, ok := idx.DoctorName(id, embedded); ok {
		return name
	}
	return UnspecifiedDoctor
}
