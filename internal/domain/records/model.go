package records

import "clinic-records/internal/domain/entities"

// UnspecifiedDoctor reemplaza el nombre del médico cuando la referencia no se
// puede resolver. Es un fallback de presentación, no un error.
const UnspecifiedDoctor = "Unspecified doctor"

type MedicationEntry struct {
	entities.Medication
	DoctorName string
}

type VisitEntry struct {
	entities.Visit
	DoctorName string
}

type ExpenseEntry struct {
	entities.Expense
	DoctorName string
}

// PatientRecord es el prontuario consolidado de un paciente.
// Las listas nunca son nil; vacío significa "ninguno registrado".
type PatientRecord struct {
	PatientID int64
	Patient   *entities.Patient // nil si el paciente no está en el snapshot o no tiene nombre ni email

	Medications []MedicationEntry // orden de entrada
	Visits      []VisitEntry      // más reciente primero
	Expenses    []ExpenseEntry    // más reciente primero
}
