package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetricsRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.CredentialsTotal.WithLabelValues(ResultStored).Inc()
	m.DatastoreState.Set(2)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.CredentialsTotal.WithLabelValues(ResultStored)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.DatastoreState))

	families, err := reg.Gather()
	assert.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestTimerObserves(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.StartTimer().Finish(m.APIResponseDurationsMilliseconds.WithLabelValues("/", "GET", "200"))

	assert.Equal(t, 1, testutil.CollectAndCount(m.APIResponseDurationsMilliseconds))
}

func TestMetricsResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	code := 0

	w := MetricsResponseWriter{
		ResponseWriter: rec,
		OnWriteHeader: func(c int) {
			code = c
		},
	}

	w.Header().Set("X-Test", "1")
	w.WriteHeader(http.StatusTeapot)
	_, err := w.Write([]byte("short and stout"))
	assert.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, code)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-Test"))
	assert.Equal(t, "short and stout", rec.Body.String())
}

func TestMetricsResponseWriterOnWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	writes := 0

	w := MetricsResponseWriter{
		ResponseWriter: rec,
		OnWrite: func() {
			writes++
		},
	}

	_, err := w.Write([]byte("a"))
	assert.NoError(t, err)
	_, err = w.Write([]byte("b"))
	assert.NoError(t, err)

	assert.Equal(t, 2, writes)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ab", rec.Body.String())
}
