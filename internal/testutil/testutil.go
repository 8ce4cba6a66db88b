package testutil

import (
	"testing"

	"github.com/pratik-mahalle/fraudguard/internal/domain/alert"
	"github.com/pratik-mahalle/fraudguard/internal/domain/transaction"
	"github.com/pratik-mahalle/fraudguard/internal/domain/user"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/logger"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/validator"
	"github.com/pratik-mahalle/fraudguard/internal/repository/memory"
	"github.com/pratik-mahalle/fraudguard/internal/seed"
)

// NewLogger returns a logger that only emits errors
func NewLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "json"})
}

// SampleData loads the embedded sample data set
func SampleData(t *testing.T) *seed.Data {
	t.Helper()

	d, err := seed.Load("", validator.New())
	if err != nil {
		t.Fatalf("Failed to load sample data: %v", err)
	}
	return d
}

// NewAlertRepository returns a memory repository holding alerts
func NewAlertRepository(t *testing.T, alerts []*alert.Alert) alert.Repository {
	t.Helper()

	repo, err := memory.NewAlertRepository(alerts)
	if err != nil {
		t.Fatalf("Failed to create alert repository: %v", err)
	}
	return repo
}

// NewTransactionRepository returns a memory repository holding txs
func NewTransactionRepository(t *testing.T, txs []*transaction.Transaction) transaction.Repository {
	t.Helper()

	repo, err := memory.NewTransactionRepository(txs)
	if err != nil {
		t.Fatalf("Failed to create transaction repository: %v", err)
	}
	return repo
}

// NewUserRepository returns a memory repository holding users
func NewUserRepository(t *testing.T, users []*user.User) user.Repository {
	t.Helper()

	repo, err := memory.NewUserRepository(users)
	if err != nil {
		t.Fatalf("Failed to create user repository: %v", err)
	}
	return repo
}

// ActiveAlerts builds minimal active alerts with the given ids
func ActiveAlerts(ids ...string) []*alert.Alert {
	out := make([]*alert.Alert, 0, len(ids))
	for _, id := range ids {
		out = append(out, &alert.Alert{
			ID:       id,
			Type:     alert.TypeHighRiskTransaction,
			Severity: alert.SeverityHigh,
			Status:   alert.StatusActive,
		})
	}
	return out
}
