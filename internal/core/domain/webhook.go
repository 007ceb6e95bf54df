package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultMaxWebhookAttempts bounds retry attempts for a single WebhookEvent.
const DefaultMaxWebhookAttempts = 3

// WebhookEvent is one outbound notification batch for a terminal
// transaction. The dispatcher owns every mutable field on this row.
type WebhookEvent struct {
	ID             uuid.UUID `json:"id"`
	TransactionID  uuid.UUID `json:"transaction_id"`
	URL            string    `json:"url"`
	Payload        []byte    `json:"payload"` // JSON
	ResponseStatus *int      `json:"response_status,omitempty"`
	ResponseBody   *string   `json:"response_body,omitempty"`
	Attempts       int       `json:"attempts"`
	MaxAttempts    int       `json:"max_attempts"`
	NextRetryAt    *time.Time `json:"next_retry_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// IsTerminal reports whether this webhook event has stopped retrying,
// either because it was delivered or because attempts are exhausted.
func (w *WebhookEvent) IsTerminal() bool {
	if w.ResponseStatus != nil && *w.ResponseStatus >= 200 && *w.ResponseStatus < 300 {
		return true
	}
	return w.Attempts >= w.MaxAttempts
}

// WebhookPayload is the minimum schema POSTed to a merchant's webhook_url.
type WebhookPayload struct {
	TransactionID string    `json:"transaction_id"`
	ReferenceID   string    `json:"reference_id"`
	Status        string    `json:"status"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	Timestamp     time.Time `json:"timestamp"`
}
