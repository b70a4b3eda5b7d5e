package entities

import "strings"

// Snapshot es el conjunto de colecciones traídas en un ciclo de fetch.
// Es de solo lectura: ningún consumidor lo modifica.
// Una colección nil significa "todavía no cargada" y se lee como vacía.
type Snapshot struct {
	Patients    []Patient
	Doctors     []Doctor
	Medications []Medication
	Visits      []Visit
	Expenses    []Expense

	index *Index
}

// NewSnapshot arma el snapshot y construye su Index una única vez.
func NewSnapshot(patients []Patient, doctors []Doctor, meds []Medication, visits []Visit, expenses []Expense) *Snapshot {
	s := &Snapshot{
		Patients:    patients,
		Doctors:     doctors,
		Medications: meds,
		Visits:      visits,
		Expenses:    expenses,
	}
	s.index = NewIndex(patients, doctors)
	return s
}

// Index devuelve el índice del snapshot. Es seguro llamarlo sobre nil.
func (s *Snapshot) Index() *Index {
	if s == nil {
		return NewIndex(nil, nil)
	}
	if s.index == nil {
		// snapshot armado a mano (literal); el índice se arma perezosamente
		// pero sin cachear, para no mutar el valor compartido.
		return NewIndex(s.Patients, s.Doctors)
	}
	return s.index
}

func (s *Snapshot) medications() []Medication {
	if s == nil {
		return nil
	}
	return s.Medications
}

func (s *Snapshot) visits() []Visit {
	if s == nil {
		return nil
	}
	return s.Visits
}

func (s *Snapshot) expenses() []Expense {
	if s == nil {
		return nil
	}
	return s.Expenses
}

// MedicationsOf filtra por paciente preservando el orden de entrada.
// Nunca devuelve nil.
func (s *Snapshot) MedicationsOf(patientID int64) []Medication {
	out := make([]Medication, 0)
	for _, m := range s.medications() {
		if m.PatientID == patientID {
			out = append(out, m)
		}
	}
	return out
}

func (s *Snapshot) VisitsOf(patientID int64) []Visit {
	out := make([]Visit, 0)
	for _, v := range s.visits() {
		if v.PatientID == patientID {
			out = append(out, v)
		}
	}
	return out
}

func (s *Snapshot) ExpensesOf(patientID int64) []Expense {
	out := make([]Expense, 0)
	for _, e := range s.expenses() {
		if e.PatientID == patientID {
			out = append(out, e)
		}
	}
	return out
}

// Validate revisa las colecciones de registros. Patients y Doctors solo
// resuelven referencias: una entrada inutilizable se ignora en el Index.
func (s *Snapshot) Validate() error {
	if s == nil {
		return nil
	}
	if err := ValidateMedications(s.Medications); err != nil {
		return err
	}
	if err := ValidateVisits(s.Visits); err != nil {
		return err
	}
	return ValidateExpenses(s.Expenses)
}

// Index resuelve referencias cruzadas (ID -> entidad) sin re-escanear colecciones.
type Index struct {
	patients map[int64]Patient
	doctors  map[int64]Doctor
}

func NewIndex(patients []Patient, doctors []Doctor) *Index {
	idx := &Index{
		patients: make(map[int64]Patient, len(patients)),
		doctors:  make(map[int64]Doctor, len(doctors)),
	}
	for _, p := range patients {
		if p.ID <= 0 {
			continue
		}
		if _, dup := idx.patients[p.ID]; !dup {
			idx.patients[p.ID] = p
		}
	}
	for _, d := range doctors {
		if _, dup := idx.doctors[d.ID]; !dup {
			idx.doctors[d.ID] = d
		}
	}
	return idx
}

func (i *Index) Patient(id int64) (Patient, bool) {
	p, ok := i.patients[id]
	return p, ok
}

// DoctorName resuelve el nombre: primero el nombre embebido en el registro,
// después el médico indexado por id. ok=false si no hay ninguno utilizable.
func (i *Index) DoctorName(id *int64, embedded *string) (string, bool) {
	if embedded != nil {
		if name := strings.TrimSpace(*embedded); name != "" {
			return name, true
		}
	}
	if id == nil {
		return "", false
	}
	d, ok := i.doctors[*id]
	if !ok {
		return "", false
	}
	name := strings.TrimSpace(d.Name)
	return name, name != ""
}
