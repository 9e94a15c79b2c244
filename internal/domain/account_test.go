package domain_test

import (
	"testing"

	"github.com/spec-kit/atm-service/internal/domain"
)

func activeAccount(balance int64) *domain.Account {
	return &domain.Account{
		ID:      "acc-1",
		OwnerID: "user-1",
		Balance: balance,
		Status:  domain.AccountStatusActive,
	}
}

func TestDeposit_IncreasesBalance(t *testing.T) {
	account := activeAccount(100)

	result := account.Deposit(50)
	if !result.Applied() {
		t.Fatalf("expected deposit to apply, got %s", result.Status)
	}
	if result.NewBalance != 150 {
		t.Errorf("expected new balance 150, got %d", result.NewBalance)
	}
	if account.Balance != 150 {
		t.Errorf("expected account balance 150, got %d", account.Balance)
	}
}

func TestDeposit_RejectsNonPositiveAmounts(t *testing.T) {
	for _, amount := range []int64{0, -1, -500} {
		account := activeAccount(100)

		result := account.Deposit(amount)
		if result.Status != domain.DepositStatusInvalidAmount {
			t.Errorf("amount %d: expected INVALID_AMOUNT, got %s", amount, result.Status)
		}
		if account.Balance != 100 {
			t.Errorf("amount %d: balance mutated to %d", amount, account.Balance)
		}
	}
}

func TestDeposit_ClosedAccount(t *testing.T) {
	account := activeAccount(0)
	account.Status = domain.AccountStatusClosed

	result := account.Deposit(10)
	if result.Status != domain.DepositStatusAccountClosed {
		t.Fatalf("expected ACCOUNT_CLOSED, got %s", result.Status)
	}
	if account.Balance != 0 {
		t.Errorf("balance mutated to %d", account.Balance)
	}
}

func TestWithdraw_DecreasesBalance(t *testing.T) {
	account := activeAccount(100)

	result := account.Withdraw(100)
	if !result.Applied() {
		t.Fatalf("expected withdrawal to apply, got %s", result.Status)
	}
	if result.NewBalance != 0 {
		t.Errorf("expected new balance 0, got %d", result.NewBalance)
	}
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	account := activeAccount(100)

	result := account.Withdraw(101)
	if result.Status != domain.WithdrawalStatusInsufficientFunds {
		t.Fatalf("expected INSUFFICIENT_FUNDS, got %s", result.Status)
	}
	if account.Balance != 100 {
		t.Errorf("failed withdrawal mutated balance to %d", account.Balance)
	}
}

func TestWithdraw_RejectsNonPositiveAmounts(t *testing.T) {
	for _, amount := range []int64{0, -30} {
		account := activeAccount(100)

		result := account.Withdraw(amount)
		if result.Status != domain.WithdrawalStatusInvalidAmount {
			t.Errorf("amount %d: expected INVALID_AMOUNT, got %s", amount, result.Status)
		}
		if account.Balance != 100 {
			t.Errorf("amount %d: balance mutated to %d", amount, account.Balance)
		}
	}
}

func TestClose_NonZeroBalance(t *testing.T) {
	account := activeAccount(100)

	result := account.Close()
	if result.Status != domain.DeletionStatusNonZeroBalance {
		t.Fatalf("expected NON_ZERO_BALANCE, got %s", result.Status)
	}
	if account.Closed() {
		t.Error("account closed despite non-zero balance")
	}
}

func TestClose_ZeroBalance(t *testing.T) {
	account := activeAccount(0)

	result := account.Close()
	if !result.Deleted() {
		t.Fatalf("expected DELETED, got %s", result.Status)
	}
	if !account.Closed() {
		t.Error("account not marked closed")
	}
}

func TestClose_IsTerminal(t *testing.T) {
	account := activeAccount(0)
	if result := account.Close(); !result.Deleted() {
		t.Fatalf("setup close failed: %s", result.Status)
	}

	if result := account.Deposit(10); result.Status != domain.DepositStatusAccountClosed {
		t.Errorf("deposit on closed account: expected ACCOUNT_CLOSED, got %s", result.Status)
	}
	if result := account.Withdraw(10); result.Status != domain.WithdrawalStatusAccountClosed {
		t.Errorf("withdraw on closed account: expected ACCOUNT_CLOSED, got %s", result.Status)
	}
	if result := account.Close(); result.Deleted() {
		t.Error("closing an already closed account must not succeed")
	}
	if account.Balance != 0 {
		t.Errorf("closed account balance changed to %d", account.Balance)
	}
	if account.Status != domain.AccountStatusClosed {
		t.Errorf("status left CLOSED: %s", account.Status)
	}
}
