package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

func invalid(kind string, pos int, field string) error {
	return fmt.Errorf("%w: %s[%d]: %s", ErrInvalidInput, kind, pos, field)
}

// Validate solo exige el id: nombre y email son datos de encabezado y pueden
// faltar (sesión de desarrollo, usuarios.nome NULL).
func (p Patient) Validate() error {
	if p.ID <= 0 {
		return errors.New("missing id")
	}
	return nil
}

func (m Medication) Validate() error {
	if m.ID <= 0 {
		return errors.New("missing id")
	}
	if m.PatientID <= 0 {
		return errors.New("missing patient id")
	}
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("missing name")
	}
	return nil
}

func (v Visit) Validate() error {
	if v.ID <= 0 {
		return errors.New("missing id")
	}
	if v.PatientID <= 0 {
		return errors.New("missing patient id")
	}
	if v.Date.IsZero() {
		return errors.New("missing date")
	}
	return nil
}

func (e Expense) Validate() error {
	if e.ID <= 0 {
		return errors.New("missing id")
	}
	if e.PatientID <= 0 {
		return errors.New("missing patient id")
	}
	if e.Date.IsZero() {
		return errors.New("missing date")
	}
	if e.Amount.IsNegative() {
		return errors.New("negative amount")
	}
	if !e.Category.Valid() {
		return fmt.Errorf("unknown category %q", e.Category)
	}
	return nil
}

// ValidatePatientID rechaza ids no positivos.
func ValidatePatientID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: patient id must be positive, got %d", ErrInvalidInput, id)
	}
	return nil
}

// Las funciones ValidateX recorren la colección completa y fallan en el primer
// registro inválido, indicando posición y campo.

func ValidatePatients(in []Patient) error {
	for i, p := range in {
		if err := p.Validate(); err != nil {
			return invalid("patients", i, err.Error())
		}
	}
	return nil
}

func ValidateMedications(in []Medication) error {
	for i, m := range in {
		if err := m.Validate(); err != nil {
			return invalid("medications", i, err.Error())
		}
	}
	return nil
}

func ValidateVisits(in []Visit) error {
	for i, v := range in {
		if err := v.Validate(); err != nil {
			return invalid("visits", i, err.Error())
		}
	}
	return nil
}

func ValidateExpenses(in []Expense) error {
	for i, e := range in {
		if err := e.Validate(); err != nil {
			return invalid("expenses", i, err.Error())
		}
	}
	return nil
}
