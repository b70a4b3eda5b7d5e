package stats

import (
	"fmt"
	"sort"
	"time"

	"clinic-records/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const places = 2

// Aggregate calcula las estadísticas de un paciente a partir de sus consultas
// y gastos ya filtrados. Se recalcula todo en cada llamada.
// Las sumas son decimales exactas; el redondeo ocurre solo al final.
func Aggregate(visits []entities.Visit, expenses []entities.Expense, opts Options) (Statistics, error) {
	gran, ok := ParseGranularity(string(opts.Granularity))
	if !ok {
		return Statistics{}, fmt.Errorf("%w: unknown granularity %q", entities.ErrInvalidInput, opts.Granularity)
	}
	if err := entities.ValidateVisits(visits); err != nil {
		return Statistics{}, err
	}
	if err := entities.ValidateExpenses(expenses); err != nil {
		return Statistics{}, err
	}

	type acc struct {
		start        time.Time
		consultation decimal.Decimal
		medication   decimal.Decimal
	}

	var consultation, medication decimal.Decimal
	byStart := make(map[time.Time]*acc)
	order := make([]*acc, 0)

	for _, e := range expenses {
		start := bucketStart(gran, e.Date)
		b, exists := byStart[start]
		if !exists {
			b = &acc{start: start}
			byStart[start] = b
			order = append(order, b)
		}

		switch e.Category {
		case entities.CategoryConsultation:
			consultation = consultation.Add(e.Amount)
			b.consultation = b.consultation.Add(e.Amount)
		case entities.CategoryMedication:
			medication = medication.Add(e.Amount)
			b.medication = b.medication.Add(e.Amount)
		}
	}

	// Serie por fecha asc (más antiguo primero), al revés que el historial.
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].start.Before(order[j].start)
	})

	out := Statistics{
		TotalVisits: len(visits),
		Granularity: gran,
		Series:      make([]Bucket, 0, len(order)),
	}
	out.ConsultationSpend, out.MedicationSpend, out.TotalSpend = totals(consultation, medication)

	for _, b := range order {
		c, m, t := totals(b.consultation, b.medication)
		out.Series = append(out.Series, Bucket{
			Start:              b.start,
			Label:              gran.Label(b.start),
			ConsultationAmount: c,
			MedicationAmount:   m,
			Total:              t,
		})
	}

	return out, nil
}

// totals redondea cada categoría y suma los valores ya redondeados, de modo que
// el total siempre coincide con la suma de lo que se muestra.
func totals(consultation, medication decimal.Decimal) (c, m, total decimal.Decimal) {
	c = consultation.Round(places)
	m = medication.Round(places)
	return c, m, c.Add(m)
}

// La clave del bucket se normaliza a UTC con el día/mes de calendario de la
// zona propia del gasto, para que dos instantes del mismo día caigan juntos.
func bucketStart(g Granularity, t time.Time) time.Time {
	var start time.Time
	if g == GranularityMonth {
		start = entities.CalendarMonth(t)
	} else {
		start = entities.CalendarDay(t)
	}
	y, m, d := start.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
