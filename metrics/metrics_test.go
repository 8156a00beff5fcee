package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/signin-with-google/services"
)

var _ services.OutcomeRecorder = (*Metrics)(nil)

func TestRecordSignIn(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordSignIn(services.OutcomeSuccess)
	m.RecordSignIn(services.OutcomeSuccess)
	m.RecordSignIn(services.OutcomeCancelled)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SignInAttempts.WithLabelValues(services.OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SignInAttempts.WithLabelValues(services.OutcomeCancelled)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.SignInAttempts.WithLabelValues(services.OutcomeFailure)))
}

func TestRecordSignOut(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordSignOut(services.OutcomeSuccess)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SignOuts.WithLabelValues(services.OutcomeSuccess)))
}

func TestHandler(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.RecordSignIn(services.OutcomeUnavailable)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `signin_attempts_total{outcome="unavailable"} 1`)
}
