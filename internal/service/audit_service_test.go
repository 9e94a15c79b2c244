package service_test

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/atm-service/internal/domain"
	"github.com/spec-kit/atm-service/internal/events"
	"github.com/spec-kit/atm-service/internal/service"
)

type memTransactionRepo struct {
	mu           sync.Mutex
	transactions []domain.Transaction
}

func (r *memTransactionRepo) Create(_ context.Context, tx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = append(r.transactions, *tx)
	return nil
}

func (r *memTransactionRepo) ListByAccount(_ context.Context, accountID string, limit, offset int) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Transaction
	for _, tx := range r.transactions {
		if tx.AccountID == accountID {
			result = append(result, tx)
		}
	}
	return result, nil
}

func TestAudit_RecordsAppliedBalanceChanges(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	transactions := &memTransactionRepo{}

	audit := service.NewAuditService(transactions, dispatcher, zap.NewNop())
	audit.RegisterHandlers()

	accounts := newMemAccountRepo()
	svc := service.NewAccountService(service.AccountDependencies{
		AccountRepo: accounts,
		UserRepo:    newMemUserRepo(alice),
		Dispatcher:  dispatcher,
	})
	ctx := context.Background()
	account := mustCreate(t, svc, aliceP, "", 100)

	if result, err := svc.Deposit(ctx, aliceP, account.ID, 50); err != nil || !result.Applied() {
		t.Fatalf("deposit failed: %v / %s", err, result.Status)
	}
	if result, err := svc.Withdraw(ctx, aliceP, account.ID, 30); err != nil || !result.Applied() {
		t.Fatalf("withdrawal failed: %v / %s", err, result.Status)
	}
	// rejected operations must leave no trail
	if result, err := svc.Withdraw(ctx, aliceP, account.ID, 1000); err != nil || result.Applied() {
		t.Fatalf("expected rejected withdrawal, got %v / %s", err, result.Status)
	}

	recorded, err := audit.ListTransactions(ctx, account.ID, 10, 0)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(recorded) != 2 {
		t.Fatalf("recorded %d transactions, want 2", len(recorded))
	}

	deposit, withdrawal := recorded[0], recorded[1]
	if deposit.Kind != domain.TransactionKindDeposit || deposit.Amount != 50 || deposit.BalanceAfter != 150 {
		t.Errorf("deposit row wrong: %+v", deposit)
	}
	if withdrawal.Kind != domain.TransactionKindWithdrawal || withdrawal.Amount != 30 || withdrawal.BalanceAfter != 120 {
		t.Errorf("withdrawal row wrong: %+v", withdrawal)
	}
}
