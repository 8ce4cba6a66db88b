package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratik-mahalle/fraudguard/internal/domain/alert"
	"github.com/pratik-mahalle/fraudguard/internal/domain/dashboard"
	"github.com/pratik-mahalle/fraudguard/internal/testutil"
)

func sampleDatasets(t *testing.T) dashboard.Datasets {
	t.Helper()
	return testutil.SampleData(t).Dashboard
}

func newSampleReporter(t *testing.T, schedule string) (*StatsReporter, alert.Service) {
	t.Helper()
	alerts := newSampleAlertService(t)
	r := NewStatsReporter(alerts, newSampleTransactionService(t), newSampleUserService(t), schedule, testutil.NewLogger())
	return r, alerts
}

func TestStatsReporter_Refresh(t *testing.T) {
	r, alerts := newSampleReporter(t, "*/30 * * * * *")
	ctx := context.Background()

	assert.Nil(t, r.Last())

	snap, err := r.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, snap.Alerts.Total)
	assert.Equal(t, 5, snap.Transactions.Total)
	assert.Equal(t, 1, snap.Users.HighRisk)
	assert.Same(t, snap, r.Last())

	_, err = alerts.ApplyAction(ctx, "ALT-002", alert.ActionResolve)
	require.NoError(t, err)

	snap, err = r.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Alerts.ByStatus[alert.StatusResolved])
}

func TestStatsReporter_StartStop(t *testing.T) {
	r, _ := newSampleReporter(t, "@every 1h")

	require.NoError(t, r.Start(context.Background()))
	assert.True(t, r.IsRunning())
	assert.NotNil(t, r.Last(), "start takes an initial snapshot")

	assert.Error(t, r.Start(context.Background()), "second start fails")

	r.Stop()
	assert.False(t, r.IsRunning())

	// stopping twice is harmless
	r.Stop()
}

func TestStatsReporter_InvalidSchedule(t *testing.T) {
	r, _ := newSampleReporter(t, "not a schedule")

	assert.Error(t, r.Start(context.Background()))
	assert.False(t, r.IsRunning())
}
