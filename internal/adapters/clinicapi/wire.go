package clinicapi

import (
	"fmt"
	"strings"

	"clinic-records/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Formas del wire de la API de la clínica. Todos los campos son punteros para
// distinguir "ausente" de "cero"; los requeridos se controlan al convertir.

type medicoRef struct {
	Nome *string `json:"nome"`
}

type usuarioDTO struct {
	ID    *int64  `json:"id"`
	Email *string `json:"email"`
	Nome  *string `json:"nome"`
	Tipo  *string `json:"tipo"`
}

type medicamentoDTO struct {
	ID         *int64     `json:"id"`
	PacienteID *int64     `json:"paciente_id"`
	Nome       *string    `json:"nome"`
	Descricao  *string    `json:"descricao"`
	Dosagem    *string    `json:"dosagem"`
	Frequencia *string    `json:"frequencia"`
	MedicoID   *int64     `json:"medico_id"`
	Medico     *medicoRef `json:"medico"`
}

type consultaDTO struct {
	ID         *int64     `json:"id"`
	PacienteID *int64     `json:"paciente_id"`
	Data       *string    `json:"data"`
	Descricao  *string    `json:"descricao"`
	MedicoID   *int64     `json:"medico_id"`
	Medico     *medicoRef `json:"medico"`
}

type gastoDTO struct {
	ID         *int64           `json:"id"`
	PacienteID *int64           `json:"paciente_id"`
	Data       *string          `json:"data"`
	Descricao  *string          `json:"descricao"`
	Valor      *decimal.Decimal `json:"valor"`
	Categoria  *string          `json:"categoria"`
	MedicoID   *int64           `json:"medico_id"`
	Medico     *medicoRef       `json:"medico"`
}

func missing(kind string, pos int, field string) error {
	return fmt.Errorf("%w: %s[%d]: missing %s", entities.ErrInvalidInput, kind, pos, field)
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func (r *medicoRef) name() *string {
	if r == nil || r.Nome == nil || strings.TrimSpace(*r.Nome) == "" {
		return nil
	}
	n := strings.TrimSpace(*r.Nome)
	return &n
}

func (d usuarioDTO) patient(pos int) (entities.Patient, error) {
	if d.ID == nil {
		return entities.Patient{}, missing("pacientes", pos, "id")
	}
	return entities.Patient{ID: *d.ID, Name: str(d.Nome), Email: str(d.Email)}, nil
}

func (d medicamentoDTO) medication(pos int) (entities.Medication, error) {
	switch {
	case d.ID == nil:
		return entities.Medication{}, missing("medicamentos", pos, "id")
	case d.PacienteID == nil:
		return entities.Medication{}, missing("medicamentos", pos, "paciente_id")
	case d.Nome == nil:
		return entities.Medication{}, missing("medicamentos", pos, "nome")
	}
	return entities.Medication{
		ID:          *d.ID,
		PatientID:   *d.PacienteID,
		Name:        *d.Nome,
		Description: str(d.Descricao),
		Dosage:      str(d.Dosagem),
		Frequency:   str(d.Frequencia),
		DoctorID:    d.MedicoID,
		DoctorName:  d.Medico.name(),
	}, nil
}

func (d consultaDTO) visit(pos int) (entities.Visit, error) {
	switch {
	case d.ID == nil:
		return entities.Visit{}, missing("consultas", pos, "id")
	case d.PacienteID == nil:
		return entities.Visit{}, missing("consultas", pos, "paciente_id")
	case d.Data == nil:
		return entities.Visit{}, missing("consultas", pos, "data")
	}
	at, err := entities.ParseTimestamp(*d.Data)
	if err != nil {
		return entities.Visit{}, fmt.Errorf("%w: consultas[%d]: data: %v", entities.ErrInvalidInput, pos, err)
	}
	return entities.Visit{
		ID:          *d.ID,
		PatientID:   *d.PacienteID,
		Date:        at,
		Description: str(d.Descricao),
		DoctorID:    d.MedicoID,
		DoctorName:  d.Medico.name(),
	}, nil
}

func (d gastoDTO) expense(pos int) (entities.Expense, error) {
	switch {
	case d.ID == nil:
		return entities.Expense{}, missing("gastos", pos, "id")
	case d.PacienteID == nil:
		return entities.Expense{}, missing("gastos", pos, "paciente_id")
	case d.Data == nil:
		return entities.Expense{}, missing("gastos", pos, "data")
	case d.Valor == nil:
		return entities.Expense{}, missing("gastos", pos, "valor")
	case d.Categoria == nil:
		return entities.Expense{}, missing("gastos", pos, "categoria")
	}
	at, err := entities.ParseTimestamp(*d.Data)
	if err != nil {
		return entities.Expense{}, fmt.Errorf("%w: gastos[%d]: data: %v", entities.ErrInvalidInput, pos, err)
	}
	return entities.Expense{
		ID:          *d.ID,
		PatientID:   *d.PacienteID,
		Date:        at,
		Description: str(d.Descricao),
		Amount:      *d.Valor,
		Category:    entities.CategoryFromLegacy(*d.Categoria),
		DoctorID:    d.MedicoID,
		DoctorName:  d.Medico.name(),
	}, nil
}
