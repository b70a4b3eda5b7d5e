package stats

import (
	"time"

	"github.com/shopspring/decimal"
)

// Granularity define el tamaño de cada bucket de la serie.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

func ParseGranularity(s string) (Granularity, bool) {
	switch Granularity(s) {
	case "", GranularityDay:
		return GranularityDay, true
	case GranularityMonth:
		return GranularityMonth, true
	default:
		return "", false
	}
}

// Label formatea el inicio de un bucket: YYYY-MM-DD o YYYY-MM.
func (g Granularity) Label(t time.Time) string {
	if g == GranularityMonth {
		return t.Format("2006-01")
	}
	return t.Format("2006-01-02")
}

type Options struct {
	Granularity Granularity // default: day
}

// Bucket agrupa los gastos de una fecha (o mes).
type Bucket struct {
	Start              time.Time
	Label              string
	ConsultationAmount decimal.Decimal
	MedicationAmount   decimal.Decimal
	Total              decimal.Decimal
}

// Statistics son los totales de gasto de un paciente más la serie temporal.
// Todos los montos salen redondeados a 2 decimales y se cumple
// TotalSpend == ConsultationSpend + MedicationSpend exactamente.
type Statistics struct {
	TotalSpend        decimal.Decimal
	ConsultationSpend decimal.Decimal
	MedicationSpend   decimal.Decimal
	TotalVisits       int

	Granularity Granularity
	Series      []Bucket // más antiguo primero (para graficar de izquierda a derecha)
}
