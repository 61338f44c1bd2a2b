package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType 帳本事件類型
type EventType string

const (
	EventAccountCreated   EventType = "account.created"
	EventAccountDeposited EventType = "account.deposited"
	EventAccountWithdrawn EventType = "account.withdrawn"
	EventAccountRenamed   EventType = "account.renamed"
	EventAccountDeleted   EventType = "account.deleted"
)

// Event 成功變更後對外發布的通知
type Event struct {
	EventID       uuid.UUID       `json:"event_id"`
	Type          EventType       `json:"type"`
	AccountNumber string          `json:"account_no"`
	HolderName    string          `json:"name,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

func NewEvent(eventType EventType, accountNumber string, now time.Time) Event {
	return Event{
		EventID:       uuid.New(),
		Type:          eventType,
		AccountNumber: accountNumber,
		OccurredAt:    now,
	}
}
