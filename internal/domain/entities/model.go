package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category clasifica un gasto.
// @Enum consultation, medication
type Category string

const (
	CategoryConsultation Category = "consultation"
	CategoryMedication   Category = "medication"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryConsultation, CategoryMedication:
		return true
	default:
		return false
	}
}

// Patient es el paciente tal como lo devuelve la API.
type Patient struct {
	ID    int64
	Name  string
	Email string
}

// DisplayName es el nombre, o el email si el nombre está vacío.
func (p Patient) DisplayName() string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	return strings.TrimSpace(p.Email)
}

// Doctor solo se usa para resolver nombres a partir de un DoctorID.
type Doctor struct {
	ID   int64
	Name string
}

// Medication es una prescripción. Pertenece a un único paciente.
type Medication struct {
	ID        int64
	PatientID int64

	Name        string
	Description string
	Dosage      string // "500mg"
	Frequency   string // texto libre: "8/8 horas"

	// Referencias opcionales al médico que prescribió (nil = ausente).
	DoctorID   *int64
	DoctorName *string
}

// Visit es una consulta médica.
type Visit struct {
	ID        int64
	PatientID int64

	Date        time.Time
	Description string

	DoctorID   *int64
	DoctorName *string
}

// Expense es un gasto del paciente. Amount nunca es negativo.
type Expense struct {
	ID        int64
	PatientID int64

	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    Category

	DoctorID   *int64
	DoctorName *string
}

// CategoryFromLegacy traduce los valores que persiste el backend
// ("consulta", "medicamento"). Valores desconocidos pasan tal cual y los
// rechaza la validación.
func CategoryFromLegacy(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "consulta", string(CategoryConsultation):
		return CategoryConsultation
	case "medicamento", string(CategoryMedication):
		return CategoryMedication
	default:
		return Category(strings.TrimSpace(s))
	}
}
