package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/atm-service/internal/domain"
)

// AccountRepository is the persistence gateway for accounts. All
// failures surface as ErrNotFound, ErrDuplicate, ErrVersionConflict or
// *DatabaseError; callers never see driver errors.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Account, error)
	UpdateBalance(ctx context.Context, id string, newBalance, expectedVersion int64) error
	UpdateStatus(ctx context.Context, id string, status domain.AccountStatus, expectedVersion int64) error
	Exists(ctx context.Context, id string) (bool, error)
}

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `
        INSERT INTO accounts (id, owner_id, balance, status, version)
        VALUES ($1, $2, $3, $4, 0)
        RETURNING version, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		account.ID,
		account.OwnerID,
		account.Balance,
		account.Status,
	).Scan(&account.Version, &account.CreatedAt, &account.UpdatedAt)
	return wrapError("account create", err)
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	const query = `
        SELECT id, owner_id, balance, status, version, created_at, updated_at
        FROM accounts WHERE id=$1`

	account, err := scanAccount(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, wrapError("account get", err)
	}
	return account, nil
}

func (r *accountRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Account, error) {
	const query = `
        SELECT id, owner_id, balance, status, version, created_at, updated_at
        FROM accounts WHERE owner_id=$1
        ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, wrapError("account list", err)
	}
	defer rows.Close()

	var result []domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, wrapError("account list", err)
		}
		result = append(result, *account)
	}
	return result, wrapError("account list", rows.Err())
}

// UpdateBalance persists a new balance guarded by the version the caller
// read. Zero rows affected means a concurrent writer advanced the row;
// rows are never removed, so a vanished row cannot be the cause.
func (r *accountRepository) UpdateBalance(ctx context.Context, id string, newBalance, expectedVersion int64) error {
	const query = `
        UPDATE accounts SET balance=$1, version=version+1, updated_at=NOW()
        WHERE id=$2 AND version=$3`

	cmd, err := r.pool.Exec(ctx, query, newBalance, id, expectedVersion)
	if err != nil {
		return wrapError("account balance update", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (r *accountRepository) UpdateStatus(ctx context.Context, id string, status domain.AccountStatus, expectedVersion int64) error {
	const query = `
        UPDATE accounts SET status=$1, version=version+1, updated_at=NOW()
        WHERE id=$2 AND version=$3`

	cmd, err := r.pool.Exec(ctx, query, status, id, expectedVersion)
	if err != nil {
		return wrapError("account status update", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (r *accountRepository) Exists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM accounts WHERE id=$1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, wrapError("account exists", err)
	}
	return exists, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	if err := row.Scan(
		&account.ID,
		&account.OwnerID,
		&account.Balance,
		&account.Status,
		&account.Version,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &account, nil
}
