package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/alerts/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/v1/alerts/{id}", "404"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/alerts/ALT-404", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/v1/alerts/{id}", "404"))
	assert.Equal(t, before+1, after)
}

func TestRecordAlertTransition(t *testing.T) {
	before := testutil.ToFloat64(alertTransitionsTotal.WithLabelValues("resolve", "applied"))
	RecordAlertTransition("resolve", "applied")
	assert.Equal(t, before+1, testutil.ToFloat64(alertTransitionsTotal.WithLabelValues("resolve", "applied")))
}

func TestHandler_ExposesGauges(t *testing.T) {
	SetAlertsByStatus("active", 3)
	SetActiveAlerts("critical", 1)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `fraudguard_alert_status_count{status="active"} 3`))
	assert.True(t, strings.Contains(body, `fraudguard_alert_active_count{severity="critical"} 1`))
}
