package access

import (
	"errors"

	"clinic-records/internal/ports/auth"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

type Scope string

const (
	ScopePatientsList Scope = "patients:list"
	ScopeRecordRead   Scope = "record:read"
	ScopeStatsRead    Scope = "stats:read"
)

// Scopes por rol. El paciente solo ve lo suyo (ver CanViewPatient).
var roleScopes = map[auth.Role][]Scope{
	auth.RoleDoctor:  {ScopePatientsList, ScopeRecordRead, ScopeStatsRead},
	auth.RolePatient: {ScopeRecordRead, ScopeStatsRead},
}

func HasScope(c auth.Claims, scope Scope) bool {
	for _, s := range roleScopes[c.Role] {
		if s == scope {
			return true
		}
	}
	return false
}

// Require exige usuario identificado con el scope pedido.
func Require(c auth.Claims, scope Scope) error {
	if c.UserID <= 0 {
		return ErrUnauthenticated
	}
	if !HasScope(c, scope) {
		return ErrForbidden
	}
	return nil
}

// CanViewPatient aplica la regla de la API original:
// - médico: puede ver cualquier paciente (la fuente ya acota a sus registros)
// - paciente: solo su propio prontuario/estadísticas
func CanViewPatient(c auth.Claims, patientID int64, scope Scope) error {
	if err := Require(c, scope); err != nil {
		return err
	}
	if c.IsPatient() && c.UserID != patientID {
		return ErrForbidden
	}
	return nil
}
