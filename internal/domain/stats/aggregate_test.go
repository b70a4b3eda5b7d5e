package stats

import (
	"math/rand"
	"testing"
	"time"

	"clinic-records/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(id int64, date, amount string, cat entities.Category) entities.Expense {
	at, err := entities.ParseTimestamp(date)
	if err != nil {
		panic(err)
	}
	return entities.Expense{
		ID:        id,
		PatientID: 1,
		Date:      at,
		Amount:    decimal.RequireFromString(amount),
		Category:  cat,
	}
}

func fixed(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(places))
}

func TestAggregate_Example(t *testing.T) {
	expenses := []entities.Expense{
		expense(1, "2024-01-10", "150.00", entities.CategoryConsultation),
		expense(2, "2024-01-10", "50.50", entities.CategoryMedication),
		expense(3, "2024-02-01", "200.00", entities.CategoryConsultation),
	}

	st, err := Aggregate(nil, expenses, Options{})
	require.NoError(t, err)

	fixed(t, "350.00", st.ConsultationSpend)
	fixed(t, "50.50", st.MedicationSpend)
	fixed(t, "400.50", st.TotalSpend)
	assert.Equal(t, 0, st.TotalVisits)
	assert.Equal(t, GranularityDay, st.Granularity)

	require.Len(t, st.Series, 2)
	assert.Equal(t, "2024-01-10", st.Series[0].Label)
	fixed(t, "150.00", st.Series[0].ConsultationAmount)
	fixed(t, "50.50", st.Series[0].MedicationAmount)
	fixed(t, "200.50", st.Series[0].Total)

	assert.Equal(t, "2024-02-01", st.Series[1].Label)
	fixed(t, "200.00", st.Series[1].ConsultationAmount)
	fixed(t, "0.00", st.Series[1].MedicationAmount)
	fixed(t, "200.00", st.Series[1].Total)
}

func TestAggregate_SeriesAscendingRegardlessOfInputOrder(t *testing.T) {
	expenses := []entities.Expense{
		expense(1, "2024-03-05", "1.00", entities.CategoryConsultation),
		expense(2, "2023-12-31T23:59:59", "2.00", entities.CategoryMedication),
		expense(3, "2024-01-01T00:00:00", "3.00", entities.CategoryMedication),
		expense(4, "2024-03-05T18:00:00", "4.00", entities.CategoryMedication),
	}

	st, err := Aggregate(nil, expenses, Options{Granularity: GranularityDay})
	require.NoError(t, err)

	labels := []string{}
	for _, b := range st.Series {
		labels = append(labels, b.Label)
	}
	assert.Equal(t, []string{"2023-12-31", "2024-01-01", "2024-03-05"}, labels)
	fixed(t, "5.00", st.Series[2].Total)
}

func TestAggregate_MonthGranularity(t *testing.T) {
	expenses := []entities.Expense{
		expense(1, "2024-02-20", "10.00", entities.CategoryConsultation),
		expense(2, "2024-01-10", "150.00", entities.CategoryConsultation),
		expense(3, "2024-01-31", "5.25", entities.CategoryMedication),
	}

	st, err := Aggregate(nil, expenses, Options{Granularity: GranularityMonth})
	require.NoError(t, err)

	require.Len(t, st.Series, 2)
	assert.Equal(t, "2024-01", st.Series[0].Label)
	fixed(t, "155.25", st.Series[0].Total)
	assert.Equal(t, "2024-02", st.Series[1].Label)
	fixed(t, "10.00", st.Series[1].Total)
}

func TestAggregate_CountsVisits(t *testing.T) {
	visits := []entities.Visit{
		{ID: 1, PatientID: 1, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, PatientID: 1, Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}
	st, err := Aggregate(visits, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, st.TotalVisits)
	assert.NotNil(t, st.Series)
	assert.Empty(t, st.Series)
	fixed(t, "0.00", st.TotalSpend)
}

func TestAggregate_NoFloatDrift(t *testing.T) {
	expenses := make([]entities.Expense, 0, 1000)
	for i := 0; i < 1000; i++ {
		expenses = append(expenses, expense(int64(i+1), "2024-01-10", "0.10", entities.CategoryMedication))
	}
	st, err := Aggregate(nil, expenses, Options{})
	require.NoError(t, err)
	fixed(t, "100.00", st.MedicationSpend)
	assert.True(t, decimal.RequireFromString("100").Equal(st.TotalSpend))
}

func TestAggregate_SumIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		n := rng.Intn(30)
		expenses := make([]entities.Expense, 0, n)
		for i := 0; i < n; i++ {
			cat := entities.CategoryConsultation
			if rng.Intn(2) == 0 {
				cat = entities.CategoryMedication
			}
			// montos con 3 decimales para forzar redondeo
			amount := decimal.New(rng.Int63n(1_000_000), -3)
			d := time.Date(2024, time.Month(1+rng.Intn(12)), 1+rng.Intn(28), rng.Intn(24), 0, 0, 0, time.UTC)
			expenses = append(expenses, entities.Expense{
				ID: int64(i + 1), PatientID: 1, Date: d, Amount: amount, Category: cat,
			})
		}

		for _, g := range []Granularity{GranularityDay, GranularityMonth} {
			st, err := Aggregate(nil, expenses, Options{Granularity: g})
			require.NoError(t, err)
			assert.True(t, st.TotalSpend.Equal(st.ConsultationSpend.Add(st.MedicationSpend)))
			for _, b := range st.Series {
				assert.True(t, b.Total.Equal(b.ConsultationAmount.Add(b.MedicationAmount)))
			}
			for i := 1; i < len(st.Series); i++ {
				assert.True(t, st.Series[i-1].Start.Before(st.Series[i].Start))
			}
		}
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	expenses := []entities.Expense{
		expense(1, "2024-01-10", "150.00", entities.CategoryConsultation),
		expense(2, "2024-01-10", "50.50", entities.CategoryMedication),
	}
	a, err := Aggregate(nil, expenses, Options{})
	require.NoError(t, err)
	b, err := Aggregate(nil, expenses, Options{})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestAggregate_InvalidInput(t *testing.T) {
	_, err := Aggregate(nil, nil, Options{Granularity: "week"})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	_, err = Aggregate(nil, []entities.Expense{expense(1, "2024-01-10", "-1", entities.CategoryConsultation)}, Options{})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	_, err = Aggregate(nil, []entities.Expense{expense(1, "2024-01-10", "1", "exame")}, Options{})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	_, err = Aggregate([]entities.Visit{{ID: 1, PatientID: 1}}, nil, Options{})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
}

func TestParseGranularity(t *testing.T) {
	g, ok := ParseGranularity("")
	assert.True(t, ok)
	assert.Equal(t, GranularityDay, g)

	g, ok = ParseGranularity("month")
	assert.True(t, ok)
	assert.Equal(t, GranularityMonth, g)

	_, ok = ParseGranularity("year")
	assert.False(t, ok)
}
