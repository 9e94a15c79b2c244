package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/atm-service/internal/domain"
	"github.com/spec-kit/atm-service/internal/events"
	"github.com/spec-kit/atm-service/internal/repository"
)

// AuditService records applied balance changes as transaction rows and
// log lines. It listens on the dispatcher; its failures never reach the
// business outcome.
type AuditService struct {
	transactions repository.TransactionRepository
	dispatcher   events.Dispatcher
	logger       *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(transactions repository.TransactionRepository, dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{
		transactions: transactions,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

// RegisterHandlers subscribes to account events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventDepositApplied, a.handleDeposit)
	a.dispatcher.Subscribe(events.EventWithdrawalApplied, a.handleWithdrawal)
	a.dispatcher.Subscribe(events.EventAccountCreated, a.handleAccountCreated)
	a.dispatcher.Subscribe(events.EventAccountClosed, a.handleAccountClosed)
}

// ListTransactions returns recorded transactions for an account.
func (a *AuditService) ListTransactions(ctx context.Context, accountID string, limit, offset int) ([]domain.Transaction, error) {
	return a.transactions.ListByAccount(ctx, accountID, limit, offset)
}

func (a *AuditService) handleDeposit(ctx context.Context, event events.Event) error {
	return a.recordTransaction(ctx, event, domain.TransactionKindDeposit)
}

func (a *AuditService) handleWithdrawal(ctx context.Context, event events.Event) error {
	return a.recordTransaction(ctx, event, domain.TransactionKindWithdrawal)
}

func (a *AuditService) handleAccountCreated(_ context.Context, event events.Event) error {
	a.logger.Info("AccountCreated", zap.String("account_id", event.AccountID), zap.Any("payload", event.Payload))
	return nil
}

func (a *AuditService) handleAccountClosed(_ context.Context, event events.Event) error {
	a.logger.Info("AccountClosed", zap.String("account_id", event.AccountID), zap.Any("payload", event.Payload))
	return nil
}

func (a *AuditService) recordTransaction(ctx context.Context, event events.Event, kind domain.TransactionKind) error {
	payload, ok := event.Payload.(events.BalanceChangedPayload)
	if !ok {
		a.logger.Warn("unexpected audit payload", zap.String("event_type", string(event.Type)))
		return nil
	}

	tx := &domain.Transaction{
		ID:           uuid.NewString(),
		AccountID:    event.AccountID,
		Kind:         kind,
		Amount:       payload.Amount,
		BalanceAfter: payload.NewBalance,
	}
	if err := a.transactions.Create(ctx, tx); err != nil {
		a.logger.Error("failed to record transaction",
			zap.String("account_id", event.AccountID),
			zap.Error(err))
		return err
	}
	a.logger.Info(string(event.Type),
		zap.String("account_id", event.AccountID),
		zap.Int64("amount", payload.Amount),
		zap.Int64("balance_after", payload.NewBalance))
	return nil
}
