package memory

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratik-mahalle/fraudguard/internal/domain/alert"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/errors"
)

func sampleAlerts() []*alert.Alert {
	ts := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
	return []*alert.Alert{
		{ID: "ALT-001", Type: alert.TypeHighRiskTransaction, Severity: alert.SeverityCritical, Status: alert.StatusActive, RiskScore: 95, TransactionID: "TXN-2024-001234", UserID: "USR-001234", Timestamp: ts, Actions: []string{"block", "review", "approve"}},
		{ID: "ALT-002", Type: alert.TypeVelocityCheck, Severity: alert.SeverityHigh, Status: alert.StatusUnderReview, RiskScore: 78, TransactionID: "TXN-2024-001235", UserID: "USR-001235", Timestamp: ts},
		{ID: "ALT-003", Type: alert.TypeGeolocationAnomaly, Severity: alert.SeverityMedium, Status: alert.StatusActive, RiskScore: 65, TransactionID: "TXN-2024-001236", UserID: "USR-001236", Timestamp: ts},
	}
}

func TestNewAlertRepository_RejectsDuplicates(t *testing.T) {
	alerts := sampleAlerts()
	alerts[2].ID = "ALT-001"

	_, err := NewAlertRepository(alerts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ALT-001")
}

func TestNewAlertRepository_RejectsEmptyID(t *testing.T) {
	alerts := sampleAlerts()
	alerts[1].ID = ""

	_, err := NewAlertRepository(alerts)
	assert.Error(t, err)
}

func TestAlertRepository_ListKeepsInsertionOrder(t *testing.T) {
	repo, err := NewAlertRepository(sampleAlerts())
	require.NoError(t, err)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "ALT-001", list[0].ID)
	assert.Equal(t, "ALT-002", list[1].ID)
	assert.Equal(t, "ALT-003", list[2].ID)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestAlertRepository_ReturnsCopies(t *testing.T) {
	source := sampleAlerts()
	repo, err := NewAlertRepository(source)
	require.NoError(t, err)

	// mutating the constructor input must not leak in
	source[0].Status = alert.StatusResolved

	got, err := repo.GetByID(context.Background(), "ALT-001")
	require.NoError(t, err)
	assert.Equal(t, alert.StatusActive, got.Status)

	got.Status = alert.StatusResolved
	got.Actions[0] = "tampered"

	again, err := repo.GetByID(context.Background(), "ALT-001")
	require.NoError(t, err)
	assert.Equal(t, alert.StatusActive, again.Status)
	assert.Equal(t, "block", again.Actions[0])
}

func TestAlertRepository_GetByIDNotFound(t *testing.T) {
	repo, err := NewAlertRepository(sampleAlerts())
	require.NoError(t, err)

	_, err = repo.GetByID(context.Background(), "ALT-999")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, alert.ErrNotFound))
	assert.Equal(t, errors.ErrCodeNotFound, errors.As(err).Code)
}

func TestAlertRepository_UpdateFailureLeavesAlertUntouched(t *testing.T) {
	repo, err := NewAlertRepository(sampleAlerts())
	require.NoError(t, err)

	boom := stderrors.New("boom")
	_, err = repo.Update(context.Background(), "ALT-001", func(a *alert.Alert) error {
		a.Status = alert.StatusResolved
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.GetByID(context.Background(), "ALT-001")
	require.NoError(t, err)
	assert.Equal(t, alert.StatusActive, got.Status)
}

func TestAlertRepository_UpdateNotFound(t *testing.T) {
	repo, err := NewAlertRepository(sampleAlerts())
	require.NoError(t, err)

	called := false
	_, err = repo.Update(context.Background(), "ALT-999", func(a *alert.Alert) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, alert.ErrNotFound)
	assert.False(t, called)
}

func TestAlertRepository_ConcurrentTransitionsApplyOnce(t *testing.T) {
	repo, err := NewAlertRepository(sampleAlerts())
	require.NoError(t, err)

	const workers = 32
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		applied  int
		rejected int
	)
	now := time.Now()

	for i := 0; i < workers; i++ {
		action := alert.ActionResolve
		if i%2 == 0 {
			action = alert.ActionBlock
		}
		wg.Add(1)
		go func(action alert.Action) {
			defer wg.Done()
			_, err := repo.Update(context.Background(), "ALT-001", func(a *alert.Alert) error {
				return alert.Transition(a, action, now)
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				applied++
			} else if stderrors.Is(err, alert.ErrInvalidTransition) {
				rejected++
			}
		}(action)
	}
	wg.Wait()

	assert.Equal(t, 1, applied)
	assert.Equal(t, workers-1, rejected)

	got, err := repo.GetByID(context.Background(), "ALT-001")
	require.NoError(t, err)
	assert.NotEqual(t, alert.StatusActive, got.Status)
}
