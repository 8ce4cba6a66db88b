package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pratik-mahalle/fraudguard/internal/domain/alert"
	"github.com/pratik-mahalle/fraudguard/internal/domain/transaction"
	"github.com/pratik-mahalle/fraudguard/internal/domain/user"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/logger"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/metrics"
)

// Snapshot is one set of summaries taken by the reporter
type Snapshot struct {
	Alerts       *alert.Summary
	Transactions *transaction.Summary
	Users        *user.Summary
	TakenAt      time.Time
}

// StatsReporter periodically recomputes summaries, publishes them as
// Prometheus gauges and logs a one-line snapshot. It never writes to the
// stores.
type StatsReporter struct {
	alerts       alert.Service
	transactions transaction.Service
	users        user.Service
	logger       *logger.Logger
	schedule     string

	scheduler    *cron.Cron
	isRunning    bool
	runningMutex sync.RWMutex

	lastMutex sync.RWMutex
	last      *Snapshot
}

// NewStatsReporter creates a reporter running on a cron schedule with a
// seconds field, e.g. "*/30 * * * * *"
func NewStatsReporter(
	alerts alert.Service,
	transactions transaction.Service,
	users user.Service,
	schedule string,
	log *logger.Logger,
) *StatsReporter {
	return &StatsReporter{
		alerts:       alerts,
		transactions: transactions,
		users:        users,
		schedule:     schedule,
		logger:       log,
	}
}

// Start takes an initial snapshot and schedules the periodic refresh
func (r *StatsReporter) Start(ctx context.Context) error {
	r.runningMutex.Lock()
	defer r.runningMutex.Unlock()

	if r.isRunning {
		return fmt.Errorf("stats reporter is already running")
	}

	r.scheduler = cron.New(cron.WithSeconds())
	if _, err := r.scheduler.AddFunc(r.schedule, func() {
		if _, err := r.Refresh(context.Background()); err != nil {
			r.logger.ErrorWithErr(err, "Failed to refresh stats")
		}
	}); err != nil {
		return fmt.Errorf("invalid reporter schedule: %w", err)
	}

	if _, err := r.Refresh(ctx); err != nil {
		return fmt.Errorf("initial stats refresh: %w", err)
	}

	r.scheduler.Start()
	r.isRunning = true

	r.logger.WithFields(map[string]interface{}{
		"schedule": r.schedule,
	}).Info("Stats reporter started")

	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish
func (r *StatsReporter) Stop() {
	r.runningMutex.Lock()
	defer r.runningMutex.Unlock()

	if !r.isRunning {
		return
	}

	<-r.scheduler.Stop().Done()
	r.isRunning = false

	r.logger.Info("Stats reporter stopped")
}

// IsRunning returns whether the scheduler is running
func (r *StatsReporter) IsRunning() bool {
	r.runningMutex.RLock()
	defer r.runningMutex.RUnlock()
	return r.isRunning
}

// Last returns the most recent snapshot, or nil before the first refresh
func (r *StatsReporter) Last() *Snapshot {
	r.lastMutex.RLock()
	defer r.lastMutex.RUnlock()
	return r.last
}

// Refresh recomputes every summary once and publishes the gauges
func (r *StatsReporter) Refresh(ctx context.Context) (*Snapshot, error) {
	alertSummary, err := r.alerts.GetSummary(ctx)
	if err != nil {
		metrics.RecordStatsRefresh("failed")
		return nil, err
	}
	txSummary, err := r.transactions.GetSummary(ctx)
	if err != nil {
		metrics.RecordStatsRefresh("failed")
		return nil, err
	}
	userSummary, err := r.users.GetSummary(ctx)
	if err != nil {
		metrics.RecordStatsRefresh("failed")
		return nil, err
	}

	snap := &Snapshot{
		Alerts:       alertSummary,
		Transactions: txSummary,
		Users:        userSummary,
		TakenAt:      time.Now(),
	}
	r.publish(ctx, snap)

	r.lastMutex.Lock()
	r.last = snap
	r.lastMutex.Unlock()

	metrics.RecordStatsRefresh("ok")

	r.logger.WithFields(map[string]interface{}{
		"alerts_total":       alertSummary.Total,
		"alerts_active":      alertSummary.ByStatus[alert.StatusActive],
		"alerts_review":      alertSummary.ByStatus[alert.StatusUnderReview],
		"alerts_resolved":    alertSummary.ByStatus[alert.StatusResolved],
		"critical_active":    alertSummary.CriticalActive,
		"transactions_total": txSummary.Total,
		"users_high_risk":    userSummary.HighRisk,
	}).Info("Stats snapshot")

	return snap, nil
}

func (r *StatsReporter) publish(ctx context.Context, snap *Snapshot) {
	for status, n := range snap.Alerts.ByStatus {
		metrics.SetAlertsByStatus(string(status), float64(n))
	}
	for _, sev := range alert.Severities {
		n, err := r.alerts.CountBySeverityAndStatus(ctx, sev, alert.StatusActive)
		if err != nil {
			continue
		}
		metrics.SetActiveAlerts(string(sev), float64(n))
	}
	for level, n := range snap.Transactions.ByRiskLevel {
		metrics.SetTransactionsByRisk(string(level), float64(n))
	}
	for level, n := range snap.Users.ByRiskLevel {
		metrics.SetUsersByRisk(string(level), float64(n))
	}
}
