package auth

// Role distingue los dos tipos de usuario de la clínica.
type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// Claims representa la información extraída del token.
type Claims struct {
	UserID int64
	Email  string
	Name   string
	Role   Role
}

func (c Claims) IsDoctor() bool  { return c.Role == RoleDoctor }
func (c Claims) IsPatient() bool { return c.Role == RolePatient }
