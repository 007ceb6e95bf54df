package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	panRe = regexp.MustCompile(`^[0-9]{13,19}$`)
	cvvRe = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// PaymentMethod identifies how funds are routed to the provider.
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodWallet PaymentMethod = "WALLET"
	PaymentMethodBank   PaymentMethod = "BANK"
)

// TransactionStatus represents the lifecycle state of a transaction.
type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "PENDING"
	TransactionStatusProcessing TransactionStatus = "PROCESSING"
	TransactionStatusSuccess    TransactionStatus = "SUCCESS"
	TransactionStatusFailed     TransactionStatus = "FAILED"
	TransactionStatusCancelled  TransactionStatus = "CANCELLED"
)

// Error codes populated on FAILED transactions.
const (
	ErrorCodeFraudBlocked    = "FRAUD_BLOCKED"
	ErrorCodeProviderTimeout = "PROVIDER_TIMEOUT"
	ErrorCodeProcessingError = "PROCESSING_ERROR"
)

// legalTransitions enumerates the only allowed (from, to) status pairs for
// the state machine. Anything not listed here must fail the store's
// compare-and-swap.
var legalTransitions = map[TransactionStatus]map[TransactionStatus]bool{
	TransactionStatusPending: {
		TransactionStatusProcessing: true,
		TransactionStatusCancelled:  true,
	},
	TransactionStatusProcessing: {
		TransactionStatusSuccess: true,
		TransactionStatusFailed:  true,
	},
}

// CanTransition reports whether moving from `from` to `to` is legal.
func CanTransition(from, to TransactionStatus) bool {
	next, ok := legalTransitions[from]
	if !ok {
		return false
	}
	return next[to]
}

// Transaction is the unit of work the orchestrator drives through the
// state machine. Rows are never deleted; status advances monotonically and
// a terminal row never mutates except for its webhook counters.
type Transaction struct {
	ID             uuid.UUID  `json:"id"`
	ReferenceID    string     `json:"reference_id"`
	IdempotencyKey *string    `json:"idempotency_key,omitempty"`

	Amount   decimal.Decimal `json:"amount"`   // 15 integer + 4 fractional digits
	Currency string          `json:"currency"` // ISO-4217

	UserID          *string       `json:"user_id,omitempty"`
	MerchantID      uuid.UUID     `json:"merchant_id"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	PaymentProvider string        `json:"payment_provider,omitempty"`

	Status TransactionStatus `json:"status"`

	FraudScore decimal.Decimal `json:"fraud_score"`

	ErrorCode    *string `json:"error_code,omitempty"`
	ErrorMessage *string `json:"error_message,omitempty"`

	ProviderRef       *string `json:"provider_ref,omitempty"`
	ProviderSecretEnc *string `json:"-"` // AES-256-GCM encrypted client_secret, never exposed

	WebhookURL         *string    `json:"-"`
	WebhookAttempts    int        `json:"-"`
	WebhookLastAttempt *time.Time `json:"-"`

	Metadata []byte `json:"metadata,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

// IsTerminal reports whether the transaction has reached a final status.
func (t *Transaction) IsTerminal() bool {
	switch t.Status {
	case TransactionStatusSuccess, TransactionStatusFailed, TransactionStatusCancelled:
		return true
	default:
		return false
	}
}

// NewReferenceID builds a human-visible, unique reference such as
// TXN1735689600000a1b2c3d4.
func NewReferenceID(now time.Time) string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("TXN%d%s", now.UnixMilli(), hex.EncodeToString(buf))
}

// ValidPAN reports whether s looks like a plausible card PAN (13-19 digits).
func ValidPAN(s string) bool { return panRe.MatchString(s) }

// ValidCVV reports whether s looks like a plausible CVV (3-4 digits).
func ValidCVV(s string) bool { return cvvRe.MatchString(s) }

// KnownTestPANs are well-known card-network test numbers; admission treats
// these as an elevated-risk signal rather than a validation failure.
var KnownTestPANs = map[string]bool{
	"4242424242424242": true,
	"4000000000000002": true,
	"4000000000009995": true,
	"5555555555554444": true,
}
