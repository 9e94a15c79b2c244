package domain

// Outcome types for account operations. Each operation returns a closed,
// tagged result value instead of an error so callers handle every expected
// business failure explicitly. Infrastructure failures travel separately
// as errors.

// CreationStatus enumerates account creation outcomes.
type CreationStatus string

const (
	CreationStatusCreated               CreationStatus = "CREATED"
	CreationStatusDuplicateID           CreationStatus = "DUPLICATE_ID"
	CreationStatusInvalidInitialBalance CreationStatus = "INVALID_INITIAL_BALANCE"
)

// CreationResult is the outcome of an account creation request.
type CreationResult struct {
	Status  CreationStatus
	Account *Account
}

// CreationCreated wraps a successfully created account.
func CreationCreated(account *Account) CreationResult {
	return CreationResult{Status: CreationStatusCreated, Account: account}
}

// CreationFailure builds a failed creation outcome.
func CreationFailure(status CreationStatus) CreationResult {
	return CreationResult{Status: status}
}

// Created reports whether the account was created.
func (r CreationResult) Created() bool {
	return r.Status == CreationStatusCreated
}

// DeletionStatus enumerates account deletion outcomes.
type DeletionStatus string

const (
	DeletionStatusDeleted        DeletionStatus = "DELETED"
	DeletionStatusNotFound       DeletionStatus = "NOT_FOUND"
	DeletionStatusNonZeroBalance DeletionStatus = "NON_ZERO_BALANCE"
)

// DeletionResult is the outcome of an account deletion request.
type DeletionResult struct {
	Status    DeletionStatus
	AccountID string
}

// DeletionDeleted builds a successful deletion outcome.
func DeletionDeleted(accountID string) DeletionResult {
	return DeletionResult{Status: DeletionStatusDeleted, AccountID: accountID}
}

// DeletionFailure builds a failed deletion outcome.
func DeletionFailure(accountID string, status DeletionStatus) DeletionResult {
	return DeletionResult{Status: status, AccountID: accountID}
}

// Deleted reports whether the account was closed.
func (r DeletionResult) Deleted() bool {
	return r.Status == DeletionStatusDeleted
}

// DepositStatus enumerates deposit outcomes.
type DepositStatus string

const (
	DepositStatusApplied         DepositStatus = "APPLIED"
	DepositStatusInvalidAmount   DepositStatus = "INVALID_AMOUNT"
	DepositStatusAccountNotFound DepositStatus = "ACCOUNT_NOT_FOUND"
	DepositStatusAccountClosed   DepositStatus = "ACCOUNT_CLOSED"
)

// DepositResult is the outcome of a deposit; NewBalance is only meaningful
// when the deposit was applied.
type DepositResult struct {
	Status     DepositStatus
	NewBalance int64
}

// DepositApplied builds a successful deposit outcome.
func DepositApplied(newBalance int64) DepositResult {
	return DepositResult{Status: DepositStatusApplied, NewBalance: newBalance}
}

// DepositFailure builds a failed deposit outcome.
func DepositFailure(status DepositStatus) DepositResult {
	return DepositResult{Status: status}
}

// Applied reports whether the deposit went through.
func (r DepositResult) Applied() bool {
	return r.Status == DepositStatusApplied
}

// WithdrawalStatus enumerates withdrawal outcomes.
type WithdrawalStatus string

const (
	WithdrawalStatusApplied           WithdrawalStatus = "APPLIED"
	WithdrawalStatusInsufficientFunds WithdrawalStatus = "INSUFFICIENT_FUNDS"
	WithdrawalStatusInvalidAmount     WithdrawalStatus = "INVALID_AMOUNT"
	WithdrawalStatusAccountNotFound   WithdrawalStatus = "ACCOUNT_NOT_FOUND"
	WithdrawalStatusAccountClosed     WithdrawalStatus = "ACCOUNT_CLOSED"
)

// WithdrawalResult is the outcome of a withdrawal; NewBalance is only
// meaningful when the withdrawal was applied.
type WithdrawalResult struct {
	Status     WithdrawalStatus
	NewBalance int64
}

// WithdrawalApplied builds a successful withdrawal outcome.
func WithdrawalApplied(newBalance int64) WithdrawalResult {
	return WithdrawalResult{Status: WithdrawalStatusApplied, NewBalance: newBalance}
}

// WithdrawalFailure builds a failed withdrawal outcome.
func WithdrawalFailure(status WithdrawalStatus) WithdrawalResult {
	return WithdrawalResult{Status: status}
}

// Applied reports whether the withdrawal went through.
func (r WithdrawalResult) Applied() bool {
	return r.Status == WithdrawalStatusApplied
}
