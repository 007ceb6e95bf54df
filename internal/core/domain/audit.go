package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEventType enumerates the events recorded against a transaction.
type AuditEventType string

const (
	AuditPaymentInitiated AuditEventType = "PAYMENT_INITIATED"
	AuditPaymentProcessed AuditEventType = "PAYMENT_PROCESSED"
	AuditPaymentSuccess   AuditEventType = "PAYMENT_SUCCESS"
	AuditPaymentFailed    AuditEventType = "PAYMENT_FAILED"
	AuditWebhookSent      AuditEventType = "WEBHOOK_SENT"
	AuditWebhookFailed    AuditEventType = "WEBHOOK_FAILED"
	AuditFraudCheck       AuditEventType = "FRAUD_CHECK"
	AuditIdempotencyCheck AuditEventType = "IDEMPOTENCY_CHECK"

	// Ambient, non-transactional events written by the merchant-facing
	// auth surface (outside the orchestrator's scope, but still
	// routed through the same append-only log).
	AuditMerchantRegistered AuditEventType = "MERCHANT_REGISTERED"
	AuditMerchantLogin      AuditEventType = "MERCHANT_LOGIN"
	AuditKeysRotated        AuditEventType = "KEYS_ROTATED"
	AuditWebhookURLUpdated  AuditEventType = "WEBHOOK_URL_UPDATED"
)

// AuditLog is an immutable record of something that happened to a
// transaction (or, for the ambient auth events above, to a merchant
// account). Rows are never updated or deleted.
type AuditLog struct {
	ID            uuid.UUID      `json:"id"`
	TransactionID *uuid.UUID     `json:"transaction_id,omitempty"`
	EventType     AuditEventType `json:"event_type"`
	EventData     []byte         `json:"event_data,omitempty"` // JSON
	UserID        *string        `json:"user_id,omitempty"`
	IPAddress     string         `json:"ip_address,omitempty"`
	UserAgent     string         `json:"user_agent,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}
