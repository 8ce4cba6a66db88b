package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratik-mahalle/fraudguard/internal/domain/risk"
	"github.com/pratik-mahalle/fraudguard/internal/domain/transaction"
	"github.com/pratik-mahalle/fraudguard/internal/domain/user"
)

func TestTransactionRepository(t *testing.T) {
	txs := []*transaction.Transaction{
		{ID: "TXN-2024-001234", Sender: "usuario@email.com", Receiver: "comercio@tienda.com", Amount: decimal.RequireFromString("15750.00"), Currency: "MXN", Level: risk.LevelHigh, Status: transaction.StatusBlocked, Flags: []string{"high_amount"}},
		{ID: "TXN-2024-001235", Sender: "cliente@banco.com", Receiver: "vendedor@market.com", Amount: decimal.RequireFromString("2300.50"), Currency: "MXN", Level: risk.LevelMedium, Status: transaction.StatusUnderReview},
	}
	repo, err := NewTransactionRepository(txs)
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), "TXN-2024-001234")
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("15750")))

	got.Flags[0] = "changed"
	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "high_amount", list[0].Flags[0])

	_, err = repo.GetByID(context.Background(), "TXN-404")
	assert.ErrorIs(t, err, transaction.ErrNotFound)

	_, err = NewTransactionRepository(append(txs, txs[0]))
	assert.Error(t, err)
}

func TestUserRepository(t *testing.T) {
	users := []*user.User{
		{ID: "USR-001234", Email: "usuario@email.com", Name: "Carlos Mendoza", Level: risk.LevelHigh, Status: user.StatusFlagged, Locations: []string{"CDMX"}},
		{ID: "USR-001235", Email: "cliente@banco.com", Name: "María González", Level: risk.LevelMedium, Status: user.StatusUnderReview},
	}
	repo, err := NewUserRepository(users)
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), "USR-001235")
	require.NoError(t, err)
	assert.Equal(t, "María González", got.Name)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"USR-001234", "USR-001235"}, []string{list[0].ID, list[1].ID})

	_, err = repo.GetByID(context.Background(), "USR-404")
	assert.ErrorIs(t, err, user.ErrNotFound)
}
