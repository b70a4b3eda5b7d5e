package entities

import (
	"context"
	"errors"

	"clinic-records/internal/session"
)

// ErrSourceUnauthorized lo devuelven las fuentes cuando rechazan las credenciales
// de la sesión (401/403 upstream).
var ErrSourceUnauthorized = errors.New("source rejected credentials")

// Source es el colaborador que trae las colecciones crudas.
// Un fetch fallido devuelve error, nunca una colección vacía silenciosa.
type Source interface {
	Patients(ctx context.Context, s session.Session) ([]Patient, error)
	Medications(ctx context.Context, s session.Session) ([]Medication, error)
	Visits(ctx context.Context, s session.Session) ([]Visit, error)
	Expenses(ctx context.Context, s session.Session) ([]Expense, error)
}

// DoctorLister es opcional: las fuentes que conocen a los médicos lo implementan
// para que el Index pueda resolver nombres por DoctorID.
type DoctorLister interface {
	Doctors(ctx context.Context, s session.Session) ([]Doctor, error)
}
