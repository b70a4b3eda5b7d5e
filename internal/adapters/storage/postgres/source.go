package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"clinic-records/internal/domain/entities"
	"clinic-records/internal/session"

	"github.com/shopspring/decimal"
)

var (
	ErrNoScope = errors.New("session has no role to scope queries")
)

// Source lee las tablas del backend (usuarios, medicamentos, consultas, gastos)
// con el mismo alcance que aplica la API.
type Source struct {
	db *sql.DB
}

func NewSource(db *sql.DB) *Source {
	return &Source{db: db}
}

// scope arma el WHERE según el rol de la sesión.
// - médico: medico_id = user
// - paciente: paciente_id = user
func scope(sess session.Session, alias string) (string, int64, error) {
	switch {
	case sess.User.IsDoctor():
		return fmt.Sprintf("%s.medico_id = $1", alias), sess.User.UserID, nil
	case sess.User.IsPatient():
		return fmt.Sprintf("%s.paciente_id = $1", alias), sess.User.UserID, nil
	default:
		return "", 0, ErrNoScope
	}
}

func (s *Source) Patients(ctx context.Context, sess session.Session) ([]entities.Patient, error) {
	query := `
		SELECT id, nome, email
		FROM usuarios
		WHERE tipo = 'paciente'
	`
	args := []any{}
	if sess.User.IsPatient() {
		query += " AND id = $1"
		args = append(args, sess.User.UserID)
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entities.Patient, 0)
	for rows.Next() {
		var p entities.Patient
		var name, email sql.NullString
		if err := rows.Scan(&p.ID, &name, &email); err != nil {
			return nil, err
		}
		p.Name = name.String
		p.Email = email.String
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Source) Doctors(ctx context.Context, sess session.Session) ([]entities.Doctor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, nome
		FROM usuarios
		WHERE tipo = 'medico'
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entities.Doctor, 0)
	for rows.Next() {
		var d entities.Doctor
		var name sql.NullString
		if err := rows.Scan(&d.ID, &name); err != nil {
			return nil, err
		}
		d.Name = name.String
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Source) Medications(ctx context.Context, sess session.Session) ([]entities.Medication, error) {
	where, uid, err := scope(sess, "m")
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT
			m.id, m.paciente_id,
			m.nome, m.descricao, m.dosagem, m.frequencia,
			m.medico_id, u.nome
		FROM medicamentos m
		LEFT JOIN usuarios u ON u.id = m.medico_id
		WHERE `+where+`
		ORDER BY m.id
	`, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entities.Medication, 0)
	for rows.Next() {
		var m entities.Medication
		var patientID, doctorID sql.NullInt64
		var name, desc, dosage, freq, doctorName sql.NullString
		if err := rows.Scan(
			&m.ID, &patientID,
			&name, &desc, &dosage, &freq,
			&doctorID, &doctorName,
		); err != nil {
			return nil, err
		}
		m.PatientID = patientID.Int64
		m.Name = name.String
		m.Description = desc.String
		m.Dosage = dosage.String
		m.Frequency = freq.String
		m.DoctorID = optInt(doctorID)
		m.DoctorName = optString(doctorName)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Source) Visits(ctx context.Context, sess session.Session) ([]entities.Visit, error) {
	where, uid, err := scope(sess, "c")
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT
			c.id, c.paciente_id,
			c.data, c.descricao,
			c.medico_id, u.nome
		FROM consultas c
		LEFT JOIN usuarios u ON u.id = c.medico_id
		WHERE `+where+`
		ORDER BY c.id
	`, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entities.Visit, 0)
	for rows.Next() {
		var v entities.Visit
		var patientID, doctorID sql.NullInt64
		var date sql.NullTime
		var desc, doctorName sql.NullString
		if err := rows.Scan(
			&v.ID, &patientID,
			&date, &desc,
			&doctorID, &doctorName,
		); err != nil {
			return nil, err
		}
		v.PatientID = patientID.Int64
		v.Date = date.Time
		v.Description = desc.String
		v.DoctorID = optInt(doctorID)
		v.DoctorName = optString(doctorName)
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *Source) Expenses(ctx context.Context, sess session.Session) ([]entities.Expense, error) {
	where, uid, err := scope(sess, "g")
	if err != nil {
		return nil, err
	}

	// valor es float en el esquema original; se lee como numeric en texto
	// para no arrastrar el error binario a las sumas.
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			g.id, g.paciente_id,
			g.data, g.descricao,
			g.valor::numeric::text, g.categoria,
			g.medico_id, u.nome
		FROM gastos g
		LEFT JOIN usuarios u ON u.id = g.medico_id
		WHERE `+where+`
		ORDER BY g.id
	`, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entities.Expense, 0)
	for rows.Next() {
		var e entities.Expense
		var patientID, doctorID sql.NullInt64
		var date sql.NullTime
		var desc, amount, category, doctorName sql.NullString
		if err := rows.Scan(
			&e.ID, &patientID,
			&date, &desc,
			&amount, &category,
			&doctorID, &doctorName,
		); err != nil {
			return nil, err
		}
		if !amount.Valid {
			return nil, fmt.Errorf("%w: gastos.id=%d: missing valor", entities.ErrInvalidInput, e.ID)
		}
		e.Amount, err = decimal.NewFromString(amount.String)
		if err != nil {
			return nil, fmt.Errorf("%w: gastos.id=%d: valor: %v", entities.ErrInvalidInput, e.ID, err)
		}
		e.PatientID = patientID.Int64
		e.Date = date.Time
		e.Description = desc.String
		e.Category = entities.CategoryFromLegacy(category.String)
		e.DoctorID = optInt(doctorID)
		e.DoctorName = optString(doctorName)
		out = append(out, e)
	}
	return out, rows.Err()
}

func optInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func optString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
