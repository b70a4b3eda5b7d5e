package stats

import (
	"encoding/json"
	"testing"

	"clinic-records/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToResponse_TwoDecimalNumbers(t *testing.T) {
	st, err := Aggregate(nil, []entities.Expense{
		expense(1, "2024-01-10", "150", entities.CategoryConsultation),
		expense(2, "2024-01-10", "0.005", entities.CategoryMedication),
	}, Options{})
	require.NoError(t, err)

	b, err := json.Marshal(ToResponse(st))
	require.NoError(t, err)

	s := string(b)
	assert.Contains(t, s, `"total_spend":150.01`)
	assert.Contains(t, s, `"consultation_spend":150.00`)
	assert.Contains(t, s, `"medication_spend":0.01`)
	assert.Contains(t, s, `"series":[{"date":"2024-01-10"`)
}
