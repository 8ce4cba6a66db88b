package memory

import (
	"context"

	"github.com/pratik-mahalle/fraudguard/internal/domain/transaction"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/errors"
)

// TransactionRepository keeps read-only transactions in memory
type TransactionRepository struct {
	txs *collection[*transaction.Transaction]
}

func cloneTransaction(t *transaction.Transaction) *transaction.Transaction { return t.Clone() }

// NewTransactionRepository builds a repository holding copies of txs in the
// given order. Duplicate or empty ids are rejected.
func NewTransactionRepository(txs []*transaction.Transaction) (transaction.Repository, error) {
	c, err := newCollection(txs, func(t *transaction.Transaction) string { return t.ID }, cloneTransaction)
	if err != nil {
		return nil, err
	}
	return &TransactionRepository{txs: c}, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*transaction.Transaction, error) {
	t, ok := r.txs.get(id, cloneTransaction)
	if !ok {
		return nil, errors.NotFoundErr("Transaction", transaction.ErrNotFound)
	}
	return t, nil
}

func (r *TransactionRepository) List(ctx context.Context) ([]*transaction.Transaction, error) {
	return r.txs.list(cloneTransaction), nil
}
