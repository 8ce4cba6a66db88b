package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pratik-mahalle/fraudguard/internal/domain/risk"
	"github.com/pratik-mahalle/fraudguard/internal/domain/transaction"
	"github.com/pratik-mahalle/fraudguard/internal/testutil"
)

func newSampleTransactionService(t *testing.T) transaction.Service {
	t.Helper()
	repo := testutil.NewTransactionRepository(t, testutil.SampleData(t).Transactions)
	return NewTransactionService(repo, testutil.NewLogger())
}

func txIDs(txs []*transaction.Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.ID
	}
	return out
}

func TestTransactionService_List(t *testing.T) {
	all := []string{"TXN-2024-001234", "TXN-2024-001235", "TXN-2024-001236", "TXN-2024-001237", "TXN-2024-001238"}

	tests := []struct {
		name  string
		query risk.Query
		want  []string
	}{
		{name: "empty query returns everything in order", query: risk.Query{}, want: all},
		{name: "explicit all", query: risk.Query{Risk: risk.FilterAll}, want: all},
		{name: "sender email", query: risk.Query{Search: "usuario@email.com", Risk: risk.FilterAll}, want: []string{"TXN-2024-001234"}},
		{name: "case-insensitive substring", query: risk.Query{Search: "USUARIO"}, want: []string{"TXN-2024-001234", "TXN-2024-001238"}},
		{name: "receiver match", query: risk.Query{Search: "maria.garcia"}, want: []string{"TXN-2024-001235"}},
		{name: "id match", query: risk.Query{Search: "001237"}, want: []string{"TXN-2024-001237"}},
		{name: "high risk", query: risk.Query{Risk: risk.FilterHigh}, want: []string{"TXN-2024-001234", "TXN-2024-001237"}},
		{name: "low risk", query: risk.Query{Risk: risk.FilterLow}, want: []string{"TXN-2024-001236", "TXN-2024-001238"}},
		{name: "search and risk combine", query: risk.Query{Search: "email", Risk: risk.FilterHigh}, want: []string{"TXN-2024-001234"}},
		{name: "location is not searchable", query: risk.Query{Search: "Monterrey"}, want: []string{}},
	}

	service := newSampleTransactionService(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.List(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, txIDs(got))
		})
	}
}

func TestTransactionService_FilterIsIdempotent(t *testing.T) {
	service := newSampleTransactionService(t)
	q := risk.Query{Search: "mail", Risk: risk.FilterHigh}

	once, err := service.List(context.Background(), q)
	require.NoError(t, err)

	twice := risk.Apply(once, q)
	assert.Equal(t, txIDs(once), txIDs(twice))
}

func TestTransactionService_GetByID(t *testing.T) {
	service := newSampleTransactionService(t)

	tx, err := service.GetByID(context.Background(), "TXN-2024-001235")
	require.NoError(t, err)
	assert.Equal(t, "juan.perez@mail.com", tx.Sender)

	_, err = service.GetByID(context.Background(), "TXN-0")
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}

func TestTransactionService_GetSummary(t *testing.T) {
	service := newSampleTransactionService(t)

	s, err := service.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 2, s.ByRiskLevel[risk.LevelHigh])
	assert.Equal(t, 1, s.ByRiskLevel[risk.LevelMedium])
	assert.Equal(t, 2, s.ByRiskLevel[risk.LevelLow])
	assert.Equal(t, 2, s.ByStatus[transaction.StatusBlocked])
	assert.Equal(t, 3, s.FlaggedCount)
	assert.True(t, s.TotalAmount["USD"].Equal(decimal.NewFromInt(8450)), "total %s", s.TotalAmount["USD"])
	assert.True(t, s.BlockedAmount["USD"].Equal(decimal.NewFromInt(7500)), "blocked %s", s.BlockedAmount["USD"])
}

func TestTransactionService_ListError(t *testing.T) {
	repo := new(testutil.MockTransactionRepository)
	boom := errors.New("store unavailable")
	repo.On("List", mock.Anything).Return(nil, boom)

	service := NewTransactionService(repo, testutil.NewLogger())
	_, err := service.List(context.Background(), risk.Query{})
	assert.ErrorIs(t, err, boom)
	repo.AssertExpectations(t)
}
