package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordComputation(t *testing.T) {
	before := testutil.ToFloat64(computationsTotal.WithLabelValues(OpAggregate, "error"))
	RecordComputation(OpAggregate, errors.New("bad"))
	after := testutil.ToFloat64(computationsTotal.WithLabelValues(OpAggregate, "error"))
	assert.Equal(t, before+1, after)
}

func TestObserveHTTP_CountsByRoute(t *testing.T) {
	c := httpRequestsTotal.WithLabelValues("GET", "/patients/{patientID}/record", "200")
	before := testutil.ToFloat64(c)
	ObserveHTTP("GET", "/patients/{patientID}/record", 200, 5*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestHandlerExposesMetrics(t *testing.T) {
	ObserveFetch("visits", time.Millisecond, nil)

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `source_fetch_duration_seconds_count{collection="visits",outcome="ok"}`)
}
