package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratik-mahalle/fraudguard/internal/domain/alert"
	"github.com/pratik-mahalle/fraudguard/internal/domain/risk"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/validator"
)

func TestLoad_EmbeddedSample(t *testing.T) {
	d, err := Load("", validator.New())
	require.NoError(t, err)

	require.Len(t, d.Alerts, 5)
	require.Len(t, d.Transactions, 5)
	require.Len(t, d.Users, 3)

	first := d.Alerts[0]
	assert.Equal(t, "ALT-001", first.ID)
	assert.Equal(t, alert.SeverityCritical, first.Severity)
	assert.Equal(t, alert.StatusActive, first.Status)
	assert.Equal(t, time.Date(2024, 1, 15, 14, 35, 22, 0, time.UTC), first.Timestamp.UTC())
	assert.Equal(t, []string{"block", "review", "approve"}, first.Actions)

	tx := d.Transactions[3]
	assert.Equal(t, "TXN-2024-001237", tx.ID)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, risk.LevelHigh, tx.Level)
	assert.Empty(t, d.Transactions[2].Flags)

	u := d.Users[0]
	assert.Equal(t, "Juan Pérez", u.Name)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), u.RegistrationDate.UTC())
	require.Len(t, u.TransactionHistory, 6)
	assert.Equal(t, 92, u.TransactionHistory[5].Risk)

	assert.Equal(t, 12847, d.Dashboard.Headline.TotalTransactions)
	assert.Len(t, d.Dashboard.HourlyActivity, 12)
	assert.Equal(t, "00:00", d.Dashboard.HourlyActivity[0].Time)
	assert.Len(t, d.Dashboard.WeeklyTrend, 7)
	assert.Equal(t, 89, d.Dashboard.Indicators.RulesTriggered)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
alerts:
  - id: ALT-100
    type: velocity_check
    severity: high
    riskScore: 70
    timestamp: 2024-02-01T10:00:00Z
`), 0o600))

	d, err := Load(path, validator.New())
	require.NoError(t, err)
	require.Len(t, d.Alerts, 1)
	assert.Equal(t, alert.StatusActive, d.Alerts[0].Status, "missing status defaults to active")
	assert.Empty(t, d.Transactions)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), validator.New())
	assert.Error(t, err)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "malformed yaml",
			raw:  "alerts: [",
		},
		{
			name: "duplicate alert id",
			raw: `
alerts:
  - {id: ALT-1, type: velocity_check, severity: high, status: active, riskScore: 1, timestamp: 2024-01-01T00:00:00Z}
  - {id: ALT-1, type: velocity_check, severity: low, status: active, riskScore: 1, timestamp: 2024-01-01T00:00:00Z}
`,
		},
		{
			name: "unknown severity",
			raw: `
alerts:
  - {id: ALT-1, type: velocity_check, severity: extreme, status: active, riskScore: 1, timestamp: 2024-01-01T00:00:00Z}
`,
		},
		{
			name: "missing alert timestamp",
			raw: `
alerts:
  - {id: ALT-1, type: velocity_check, severity: high, status: active, riskScore: 1}
`,
		},
		{
			name: "risk score out of range",
			raw: `
transactions:
  - {id: TXN-1, timestamp: 2024-01-01T00:00:00Z, sender: a@b.com, receiver: c@d.com, amount: "1", currency: USD, riskScore: 150, riskLevel: high, status: blocked}
`,
		},
		{
			name: "negative amount",
			raw: `
transactions:
  - {id: TXN-1, timestamp: 2024-01-01T00:00:00Z, sender: a@b.com, receiver: c@d.com, amount: "-5", currency: USD, riskScore: 10, riskLevel: low, status: approved}
`,
		},
		{
			name: "bad user email",
			raw: `
users:
  - {id: USR-1, email: not-an-email, registrationDate: 2024-01-01, riskScore: 10, riskLevel: low, status: verified}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw), validator.New())
			assert.Error(t, err)
		})
	}
}
