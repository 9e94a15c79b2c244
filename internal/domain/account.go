package domain

import "time"

// AccountStatus represents lifecycle states for a bank account.
type AccountStatus string

const (
	AccountStatusActive AccountStatus = "ACTIVE"
	AccountStatusClosed AccountStatus = "CLOSED"
)

// Account is the aggregate for a single bank account. Balance is held in
// minor currency units and never goes negative. Status only ever moves
// from ACTIVE to CLOSED.
type Account struct {
	ID        string
	OwnerID   string
	Balance   int64
	Status    AccountStatus
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Closed reports whether the account has been closed.
func (a *Account) Closed() bool {
	return a.Status == AccountStatusClosed
}

// Deposit applies a deposit to the account. The full amount is applied or
// none of it; the balance is untouched on any failure.
func (a *Account) Deposit(amount int64) DepositResult {
	if amount <= 0 {
		return DepositFailure(DepositStatusInvalidAmount)
	}
	if a.Closed() {
		return DepositFailure(DepositStatusAccountClosed)
	}
	a.Balance += amount
	return DepositApplied(a.Balance)
}

// Withdraw applies a withdrawal to the account. The balance is untouched
// on any failure.
func (a *Account) Withdraw(amount int64) WithdrawalResult {
	if amount <= 0 {
		return WithdrawalFailure(WithdrawalStatusInvalidAmount)
	}
	if a.Closed() {
		return WithdrawalFailure(WithdrawalStatusAccountClosed)
	}
	if amount > a.Balance {
		return WithdrawalFailure(WithdrawalStatusInsufficientFunds)
	}
	a.Balance -= amount
	return WithdrawalApplied(a.Balance)
}

// Close marks the account closed. Only an account holding a zero balance
// can be closed, and closing is terminal.
func (a *Account) Close() DeletionResult {
	if a.Closed() {
		return DeletionFailure(a.ID, DeletionStatusNotFound)
	}
	if a.Balance != 0 {
		return DeletionFailure(a.ID, DeletionStatusNonZeroBalance)
	}
	a.Status = AccountStatusClosed
	return DeletionDeleted(a.ID)
}
