package observability

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics("test", reg)

	m.RecordLookup(OutcomeFound, 20*time.Millisecond)
	m.RecordLookup(OutcomeFound, 10*time.Millisecond)
	m.RecordLookup(OutcomeNotFound, time.Millisecond)
	m.RecordSourceFetch("memory", time.Millisecond, 5, nil)
	m.RecordSourceFetch("sheets", time.Second, 0, errors.New("timeout"))
	m.RecordMatches(2)
	m.RecordMatches(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.LookupsTotal.WithLabelValues(OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LookupsTotal.WithLabelValues(OutcomeNotFound)))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.RowsScanned))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SourceFetchErrors.WithLabelValues("sheets")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.SourceFetchErrors.WithLabelValues("memory")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RecordsMatched))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordLookup(OutcomeFound, time.Millisecond)
		m.RecordSourceFetch("memory", time.Millisecond, 1, nil)
		m.RecordMatches(1)
	})
}

func TestHandlerFor(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics("test", reg)
	m.RecordLookup(OutcomeInvalidContact, time.Millisecond)

	rec := httptest.NewRecorder()
	HandlerFor(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `test_lookup_requests_total{outcome="invalid_contact"} 1`)
}
