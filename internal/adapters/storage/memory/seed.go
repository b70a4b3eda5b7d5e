package memory

import (
	"time"

	"clinic-records/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DevSeed reproduce los datos de prueba del backend: un médico, un paciente,
// dos medicamentos, consultas y gastos repartidos en los últimos meses.
func DevSeed(now time.Time) Seed {
	doctorID := int64(1)
	patientID := int64(2)
	day := func(daysAgo int) time.Time {
		return entities.CalendarDay(now.UTC()).AddDate(0, 0, -daysAgo).Add(10 * time.Hour)
	}

	return Seed{
		Patients: []entities.Patient{
			{ID: patientID, Name: "Paciente Teste", Email: "paciente@teste.com"},
		},
		Doctors: []entities.Doctor{
			{ID: doctorID, Name: "Médico Teste"},
		},
		Medications: []entities.Medication{
			{ID: 1, PatientID: patientID, Name: "Paracetamol", Description: "Analgésico e antitérmico", Dosage: "500mg", Frequency: "8/8 horas", DoctorID: &doctorID},
			{ID: 2, PatientID: patientID, Name: "Dipirona", Description: "Analgésico e antitérmico", Dosage: "1g", Frequency: "6/6 horas", DoctorID: &doctorID},
		},
		Visits: []entities.Visit{
			{ID: 1, PatientID: patientID, Date: day(120), Description: "Consulta de rotina", DoctorID: &doctorID},
			{ID: 2, PatientID: patientID, Date: day(60), Description: "Retorno", DoctorID: &doctorID},
			{ID: 3, PatientID: patientID, Date: day(5), Description: "Avaliação de exames", DoctorID: &doctorID},
		},
		Expenses: []entities.Expense{
			{ID: 1, PatientID: patientID, Date: day(120), Description: "Consulta", Amount: decimal.RequireFromString("150.00"), Category: entities.CategoryConsultation, DoctorID: &doctorID},
			{ID: 2, PatientID: patientID, Date: day(120), Description: "Paracetamol", Amount: decimal.RequireFromString("12.90"), Category: entities.CategoryMedication, DoctorID: &doctorID},
			{ID: 3, PatientID: patientID, Date: day(60), Description: "Retorno", Amount: decimal.RequireFromString("100.00"), Category: entities.CategoryConsultation, DoctorID: &doctorID},
			{ID: 4, PatientID: patientID, Date: day(5), Description: "Dipirona", Amount: decimal.RequireFromString("8.45"), Category: entities.CategoryMedication, DoctorID: &doctorID},
		},
	}
}
