package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/atm-service/internal/domain"
)

// TransactionRepository persists the audit trail of applied balance
// changes.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.Transaction, error)
}

type transactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository returns a Postgres-backed implementation.
func NewTransactionRepository(pool *pgxpool.Pool) TransactionRepository {
	return &transactionRepository{pool: pool}
}

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	const query = `
        INSERT INTO transactions (id, account_id, kind, amount, balance_after)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at`

	err := r.pool.QueryRow(ctx, query,
		tx.ID,
		tx.AccountID,
		tx.Kind,
		tx.Amount,
		tx.BalanceAfter,
	).Scan(&tx.CreatedAt)
	return wrapError("transaction create", err)
}

func (r *transactionRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.Transaction, error) {
	const query = `
        SELECT id, account_id, kind, amount, balance_after, created_at
        FROM transactions WHERE account_id=$1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, wrapError("transaction list", err)
	}
	defer rows.Close()

	var result []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(
			&tx.ID,
			&tx.AccountID,
			&tx.Kind,
			&tx.Amount,
			&tx.BalanceAfter,
			&tx.CreatedAt,
		); err != nil {
			return nil, wrapError("transaction list", err)
		}
		result = append(result, tx)
	}
	return result, wrapError("transaction list", rows.Err())
}
