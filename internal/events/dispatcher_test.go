package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spec-kit/atm-service/internal/events"
)

func TestDispatcher_DeliversToSubscribers(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	var received []events.Event
	dispatcher.Subscribe(events.EventDepositApplied, func(_ context.Context, event events.Event) error {
		received = append(received, event)
		return nil
	})

	event := events.Event{Type: events.EventDepositApplied, AccountID: "acc-1"}
	if err := dispatcher.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(received) != 1 || received[0].AccountID != "acc-1" {
		t.Fatalf("handler saw %v", received)
	}
}

func TestDispatcher_IsolatesEventTypes(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(events.EventAccountClosed, func(context.Context, events.Event) error {
		called = true
		return nil
	})

	event := events.Event{Type: events.EventAccountCreated, AccountID: "acc-1"}
	if err := dispatcher.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if called {
		t.Fatal("handler fired for a different event type")
	}
}

func TestDispatcher_HandlerErrorsDoNotPropagate(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	secondRan := false
	dispatcher.Subscribe(events.EventWithdrawalApplied, func(context.Context, events.Event) error {
		return errors.New("audit store down")
	})
	dispatcher.Subscribe(events.EventWithdrawalApplied, func(context.Context, events.Event) error {
		secondRan = true
		return nil
	})

	event := events.Event{Type: events.EventWithdrawalApplied, AccountID: "acc-1"}
	if err := dispatcher.Publish(context.Background(), event); err != nil {
		t.Fatalf("handler error leaked to publisher: %v", err)
	}
	if !secondRan {
		t.Fatal("later handler skipped after a failing one")
	}
}
