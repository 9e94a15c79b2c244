package dto

import (
	"time"

	"github.com/spec-kit/atm-service/internal/domain"
)

// CreateAccountRequest payload for opening an account. OwnerID may be
// empty, in which case the account belongs to the caller.
type CreateAccountRequest struct {
	OwnerID        string `json:"owner_id"`
	InitialBalance int64  `json:"initial_balance"`
}

// AmountRequest payload for deposits and withdrawals, in minor units.
type AmountRequest struct {
	Amount int64 `json:"amount"`
}

// AccountResponse serializes an account.
type AccountResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Balance   int64     `json:"balance"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAccountResponse maps the domain account.
func NewAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID,
		OwnerID:   account.OwnerID,
		Balance:   account.Balance,
		Status:    string(account.Status),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// TransactionResponse serializes an audit record.
type TransactionResponse struct {
	ID           string    `json:"id"`
	AccountID    string    `json:"account_id"`
	Kind         string    `json:"kind"`
	Amount       int64     `json:"amount"`
	BalanceAfter int64     `json:"balance_after"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewTransactionResponse maps the domain transaction.
func NewTransactionResponse(tx domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           tx.ID,
		AccountID:    tx.AccountID,
		Kind:         string(tx.Kind),
		Amount:       tx.Amount,
		BalanceAfter: tx.BalanceAfter,
		CreatedAt:    tx.CreatedAt,
	}
}
