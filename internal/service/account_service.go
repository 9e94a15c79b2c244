package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/atm-service/internal/domain"
	"github.com/spec-kit/atm-service/internal/events"
	"github.com/spec-kit/atm-service/internal/repository"
	"github.com/spec-kit/atm-service/pkg/util"
)

// maxUpdateAttempts bounds optimistic-lock retries on a contended account.
const maxUpdateAttempts = 5

// AccountService orchestrates account operations: authorize, fetch
// through the gateway, apply the aggregate transition, persist, map to
// an outcome. Business failures come back as outcome values;
// infrastructure and authorization failures come back as errors.
type AccountService struct {
	accounts   repository.AccountRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// AccountDependencies bundles repositories for the account service.
type AccountDependencies struct {
	AccountRepo repository.AccountRepository
	UserRepo    repository.UserRepository
	Dispatcher  events.Dispatcher
}

// AccountInfo pairs an account with its owner for administrator lookups.
type AccountInfo struct {
	Account *domain.Account
	Owner   *domain.User
}

// NewAccountService constructs the service.
func NewAccountService(deps AccountDependencies) *AccountService {
	return &AccountService{
		accounts:   deps.AccountRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateAccount provisions a new active account for ownerID. Customers
// may only open accounts for themselves.
func (s *AccountService) CreateAccount(ctx context.Context, principal domain.Principal, ownerID string, initialBalance int64) (domain.CreationResult, error) {
	if ownerID == "" {
		ownerID = principal.UserID
	}
	if !principal.CanOperate(ownerID) {
		return domain.CreationResult{}, util.NewForbidden("cannot open accounts for another customer")
	}
	if initialBalance < 0 {
		return domain.CreationFailure(domain.CreationStatusInvalidInitialBalance), nil
	}

	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.CreationResult{}, util.NewNotFound("owner", map[string]any{"owner_id": ownerID})
		}
		return domain.CreationResult{}, err
	}

	account := &domain.Account{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Balance: initialBalance,
		Status:  domain.AccountStatusActive,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return domain.CreationFailure(domain.CreationStatusDuplicateID), nil
		}
		return domain.CreationResult{}, err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventAccountCreated,
		AccountID: account.ID,
		Actor:     actorFor(principal),
		Payload: events.AccountCreatedPayload{
			OwnerID:        account.OwnerID,
			InitialBalance: account.Balance,
		},
	})
	return domain.CreationCreated(account), nil
}

// Deposit applies a deposit to the account. The read-modify-write runs
// under optimistic versioning so concurrent operations on the same
// account never lose an update.
func (s *AccountService) Deposit(ctx context.Context, principal domain.Principal, accountID string, amount int64) (domain.DepositResult, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		account, err := s.accounts.GetByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domain.DepositFailure(domain.DepositStatusAccountNotFound), nil
			}
			return domain.DepositResult{}, err
		}
		if !principal.CanOperate(account.OwnerID) {
			return domain.DepositResult{}, util.NewForbidden("account belongs to another customer")
		}

		result := account.Deposit(amount)
		if !result.Applied() {
			return result, nil
		}

		err = s.accounts.UpdateBalance(ctx, account.ID, account.Balance, account.Version)
		if errors.Is(err, repository.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return domain.DepositResult{}, err
		}

		s.publishEvent(ctx, events.Event{
			Type:      events.EventDepositApplied,
			AccountID: account.ID,
			Actor:     actorFor(principal),
			Payload: events.BalanceChangedPayload{
				Amount:     amount,
				NewBalance: result.NewBalance,
			},
		})
		return result, nil
	}
	return domain.DepositResult{}, util.NewConflict("account is being updated concurrently", nil)
}

// Withdraw applies a withdrawal to the account under the same
// optimistic-versioning discipline as Deposit.
func (s *AccountService) Withdraw(ctx context.Context, principal domain.Principal, accountID string, amount int64) (domain.WithdrawalResult, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		account, err := s.accounts.GetByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domain.WithdrawalFailure(domain.WithdrawalStatusAccountNotFound), nil
			}
			return domain.WithdrawalResult{}, err
		}
		if !principal.CanOperate(account.OwnerID) {
			return domain.WithdrawalResult{}, util.NewForbidden("account belongs to another customer")
		}

		result := account.Withdraw(amount)
		if !result.Applied() {
			return result, nil
		}

		err = s.accounts.UpdateBalance(ctx, account.ID, account.Balance, account.Version)
		if errors.Is(err, repository.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return domain.WithdrawalResult{}, err
		}

		s.publishEvent(ctx, events.Event{
			Type:      events.EventWithdrawalApplied,
			AccountID: account.ID,
			Actor:     actorFor(principal),
			Payload: events.BalanceChangedPayload{
				Amount:     amount,
				NewBalance: result.NewBalance,
			},
		})
		return result, nil
	}
	return domain.WithdrawalResult{}, util.NewConflict("account is being updated concurrently", nil)
}

// DeleteAccount closes an account. Closure is a status flip, never a row
// removal, and only a zero-balance account can close.
func (s *AccountService) DeleteAccount(ctx context.Context, principal domain.Principal, accountID string) (domain.DeletionResult, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		account, err := s.accounts.GetByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domain.DeletionFailure(accountID, domain.DeletionStatusNotFound), nil
			}
			return domain.DeletionResult{}, err
		}
		if !principal.CanOperate(account.OwnerID) {
			return domain.DeletionResult{}, util.NewForbidden("account belongs to another customer")
		}

		result := account.Close()
		if !result.Deleted() {
			return result, nil
		}

		err = s.accounts.UpdateStatus(ctx, account.ID, domain.AccountStatusClosed, account.Version)
		if errors.Is(err, repository.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return domain.DeletionResult{}, err
		}

		s.publishEvent(ctx, events.Event{
			Type:      events.EventAccountClosed,
			AccountID: account.ID,
			Actor:     actorFor(principal),
			Payload:   events.AccountClosedPayload{OwnerID: account.OwnerID},
		})
		return result, nil
	}
	return domain.DeletionResult{}, util.NewConflict("account is being updated concurrently", nil)
}

// GetAccount fetches one account with its owner. Customers may only look
// up their own accounts.
func (s *AccountService) GetAccount(ctx context.Context, principal domain.Principal, accountID string) (*AccountInfo, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewNotFound("account", map[string]any{"account_id": accountID})
		}
		return nil, err
	}
	if !principal.CanOperate(account.OwnerID) {
		return nil, util.NewForbidden("account belongs to another customer")
	}

	owner, err := s.users.GetByID(ctx, account.OwnerID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return &AccountInfo{Account: account, Owner: owner}, nil
}

// ListAccounts returns ownerID's accounts ordered by creation. Customers
// may only list their own.
func (s *AccountService) ListAccounts(ctx context.Context, principal domain.Principal, ownerID string) ([]domain.Account, error) {
	if ownerID == "" {
		ownerID = principal.UserID
	}
	if !principal.CanOperate(ownerID) {
		return nil, util.NewForbidden("cannot list another customer's accounts")
	}
	return s.accounts.ListByOwner(ctx, ownerID)
}

func (s *AccountService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func actorFor(principal domain.Principal) events.Actor {
	return events.Actor{UserID: principal.UserID, Role: principal.Role}
}
