package events

import (
	"time"

	"github.com/spec-kit/atm-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountCreated    EventType = "account_created"
	EventAccountClosed     EventType = "account_closed"
	EventDepositApplied    EventType = "deposit_applied"
	EventWithdrawalApplied EventType = "withdrawal_applied"
)

// Actor encapsulates the principal behind an event.
type Actor struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	AccountID string      `json:"account_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AccountCreatedPayload payload.
type AccountCreatedPayload struct {
	OwnerID        string `json:"owner_id"`
	InitialBalance int64  `json:"initial_balance"`
}

// AccountClosedPayload payload.
type AccountClosedPayload struct {
	OwnerID string `json:"owner_id"`
}

// BalanceChangedPayload payload for deposits and withdrawals.
type BalanceChangedPayload struct {
	Amount     int64 `json:"amount"`
	NewBalance int64 `json:"new_balance"`
}
