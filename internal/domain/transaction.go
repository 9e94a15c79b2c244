package domain

import "time"

// TransactionKind enumerates recorded transaction types.
type TransactionKind string

const (
	TransactionKindDeposit    TransactionKind = "DEPOSIT"
	TransactionKindWithdrawal TransactionKind = "WITHDRAWAL"
)

// Transaction is an audit record of an applied balance change. It is
// written after the fact and carries no consistency responsibility.
type Transaction struct {
	ID           string
	AccountID    string
	Kind         TransactionKind
	Amount       int64
	BalanceAfter int64
	CreatedAt    time.Time
}
