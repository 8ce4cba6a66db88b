package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, data interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{
		"success": status < 400,
		"data":    data,
	}))
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL + "/"})
}

func TestAlertService_List(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/alerts", r.URL.Path)
		assert.Equal(t, "ALT", r.URL.Query().Get("search"))
		assert.Equal(t, "high", r.URL.Query().Get("risk"))
		assert.Equal(t, "active", r.URL.Query().Get("status"))
		assert.Empty(t, r.URL.Query().Get("severity"))
		writeEnvelope(t, w, http.StatusOK, map[string]interface{}{
			"items": []map[string]interface{}{
				{"id": "ALT-002", "severity": "high", "status": "active"},
			},
			"count": 1,
		})
	})

	alerts, err := c.Alerts().List(context.Background(), &AlertListOptions{
		ListOptions: ListOptions{Search: "ALT", Risk: "high"},
		Status:      "active",
	})
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "ALT-002", alerts[0].ID)
	assert.Equal(t, "high", alerts[0].Severity)
}

func TestAlertService_Apply(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/alerts/ALT-001/actions", r.URL.Path)

		var req ActionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "block", req.Action)

		writeEnvelope(t, w, http.StatusOK, map[string]interface{}{
			"id":         "ALT-001",
			"status":     "under_review",
			"lastAction": "block",
		})
	})

	a, err := c.Alerts().Block(context.Background(), "ALT-001")
	require.NoError(t, err)
	assert.Equal(t, "under_review", a.Status)
	assert.Equal(t, "block", a.LastAction)
}

func TestAlertService_ApplyErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		code     string
		conflict bool
		notFound bool
	}{
		{name: "not active", status: http.StatusConflict, code: "INVALID_TRANSITION", conflict: true},
		{name: "missing alert", status: http.StatusNotFound, code: "NOT_FOUND", notFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeAPIError(w, tt.status, tt.code, "rejected")
			})

			_, err := c.Alerts().Resolve(context.Background(), "ALT-004")
			require.Error(t, err)

			apiErr, ok := AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.conflict, apiErr.IsConflict())
			assert.Equal(t, tt.notFound, apiErr.IsNotFound())
		})
	}
}

func TestAlertService_Count(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/alerts/count", r.URL.Path)
		assert.Equal(t, "critical", r.URL.Query().Get("severity"))
		assert.Equal(t, "active", r.URL.Query().Get("status"))
		writeEnvelope(t, w, http.StatusOK, map[string]interface{}{
			"severity": "critical",
			"status":   "active",
			"count":    1,
		})
	})

	n, err := c.Alerts().Count(context.Background(), "critical", "active")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTransactionService_Get(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/transactions/TXN-2024-001234", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, map[string]interface{}{
			"id":       "TXN-2024-001234",
			"amount":   "8450.5",
			"currency": "USD",
		})
	})

	tx, err := c.Transactions().Get(context.Background(), "TXN-2024-001234")
	require.NoError(t, err)
	assert.Equal(t, "8450.5", tx.Amount.String())
	assert.Equal(t, "USD", tx.Currency)
}

func TestUserService_History(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/USR-001234/history", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, map[string]interface{}{
			"items": []map[string]interface{}{
				{"date": "2024-01-10T00:00:00Z", "amount": "1200", "risk": 45},
				{"date": "2024-01-11T00:00:00Z", "amount": "8450", "risk": 92},
			},
			"count": 2,
		})
	})

	history, err := c.Users().History(context.Background(), "USR-001234")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 92, history[1].Risk)
}

func TestClient_NonEnvelopeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	err := c.Ping(context.Background())
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsServerError())
	assert.Equal(t, "upstream down", apiErr.Message)
}

func TestClient_Dashboard(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/dashboard", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, map[string]interface{}{
			"datasets": map[string]interface{}{"headline": map[string]int{"totalTransactions": 12847}},
			"alerts":   map[string]interface{}{"total": 5, "criticalActive": 1},
		})
	})

	d, err := c.Dashboard(context.Background())
	require.NoError(t, err)
	require.NotNil(t, d.Alerts)
	assert.Equal(t, 5, d.Alerts.Total)
	assert.Equal(t, 1, d.Alerts.CriticalActive)
	assert.Contains(t, d.Datasets, "headline")
}
