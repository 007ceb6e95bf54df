package ports

import (
	"context"
	"time"

	"payment-orchestrator/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(merchantID uuid.UUID, accessKey string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	MerchantID uuid.UUID
	AccessKey  string
}

// IdempotencyCache is the fast-path layer of the Idempotency Gate.
// It stores idempotency_key -> transaction_id, TTL-bounded.
type IdempotencyCache interface {
	// Lookup returns the transaction id mapped to key, or "" if absent.
	Lookup(ctx context.Context, key string) (string, error)
	// Reserve performs an atomic SET-IF-ABSENT. Returns true iff this
	// caller won the race to claim key.
	Reserve(ctx context.Context, key string, txID string, ttl time.Duration) (bool, error)
	// Release deletes key from the cache. Only ever called before the
	// store insert happens; post-insert release is unsafe under redelivery.
	Release(ctx context.Context, key string) error
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, merchantID string, nonce string, ttl time.Duration) (bool, error)
}

// --- Fraud Scorer ---

// FraudCheckInput is the subset of an initiate request the scorer reads.
// It carries no persistence handle: Score must stay a pure function of
// this struct.
type FraudCheckInput struct {
	Amount        decimal.Decimal
	PaymentMethod domain.PaymentMethod
	CardPAN       string
	CardCVV       string
}

// FraudScorer produces a deterministic [0,1] risk score from a request.
type FraudScorer interface {
	Score(in FraudCheckInput) decimal.Decimal
	ShouldBlock(score decimal.Decimal) bool
}

// --- Idempotency Gate ---

// IdempotencyGate composes the fast cache and the durable store to
// guarantee at most one transaction row per non-null idempotency key.
type IdempotencyGate interface {
	// Lookup consults the cache, falling through to the store on miss.
	Lookup(ctx context.Context, key string) (*domain.Transaction, error)
	// Reserve attempts to atomically claim key for txID.
	Reserve(ctx context.Context, key string, txID uuid.UUID) (bool, error)
	// Release removes a reservation. Only called before the store insert.
	Release(ctx context.Context, key string)
	// Generate returns a fresh random key for callers that omit one.
	Generate() (string, error)
}

// --- Provider Adapter ---

// ChargeResult is the outcome of a provider charge attempt.
type ChargeResult struct {
	OK           bool
	ProviderRef  string
	ClientSecret string
	RedirectURL  string
	Code         string
	Message      string
}

// ProviderAdapter is the pluggable boundary to the actual payment
// provider. Implementations own provider-side idempotency keyed by
// tx.ReferenceID.
type ProviderAdapter interface {
	Charge(ctx context.Context, tx *domain.Transaction) (*ChargeResult, error)
}

// --- Event Bus ---

// PaymentEvent is the message value published to the bus: a transaction
// snapshot plus the event that triggered the publish.
type PaymentEvent struct {
	Transaction    domain.Transaction `json:"transaction"`
	EventType      string             `json:"event_type"`
	EventTimestamp time.Time          `json:"event_timestamp"`
}

// EventHandler processes one delivered PaymentEvent. At-least-once
// redelivery means handlers must be idempotent.
type EventHandler func(ctx context.Context, evt PaymentEvent) error

// EventBus is a thin abstraction over a partitioned, at-least-once
// message bus keyed by transaction id (same key -> same partition ->
// in-order delivery per transaction).
type EventBus interface {
	Publish(ctx context.Context, topic string, key string, evt PaymentEvent) error
	// Subscribe registers handler under groupID against topic. Consumers
	// in different groups each see every message; consumers in the same
	// group share the partition set.
	Subscribe(ctx context.Context, topic string, groupID string, handler EventHandler) error
	Close() error
}

// Event bus topics.
const (
	TopicPaymentEvents  = "payment-events"
	TopicPaymentResults = "payment-results"
)

// Event types carried on the bus.
const (
	EventTypePaymentInitiated = "PAYMENT_INITIATED"
	EventTypePaymentSuccess   = "PAYMENT_SUCCESS"
	EventTypePaymentFailed    = "PAYMENT_FAILED"
)

// Consumer group ids. Exactly one group drives the state machine; the
// analytics group only mirrors terminal events and never calls back into
// Process, so the two subscriptions cannot double-dispatch a charge.
const (
	ConsumerGroupOrchestrator = "payment-orchestrator-group"
	ConsumerGroupAnalytics    = "payment-analytics-group"
)

// --- Payment Orchestrator ---

// PaymentRequest holds validated input for payment admission.
type PaymentRequest struct {
	IdempotencyKey *string
	UserID         *string
	MerchantID     uuid.UUID
	Amount         decimal.Decimal
	Currency       string
	PaymentMethod  domain.PaymentMethod
	Provider       string
	WebhookURL     *string
	Metadata       []byte

	// Method-specific fields. Never persisted on the Transaction;
	// used only for validation and fraud scoring.
	CardPAN       string
	CardCVV       string
	BankAccount   string
	BankRouting   string
	WalletID      string
}

// PaymentOrchestrator is the heart of the system: admission,
// state transitions, and provider invocation.
type PaymentOrchestrator interface {
	// Initiate runs admission synchronously and returns as soon as the
	// transaction is durably PENDING (or resolved via idempotency).
	Initiate(ctx context.Context, req PaymentRequest) (*domain.Transaction, error)
	// Process advances one transaction from PENDING through the
	// provider call to a terminal status. Triggered by the bus consumer;
	// idempotent under at-least-once redelivery.
	Process(ctx context.Context, txID uuid.UUID) error
	// FetchStatus returns the current transaction by id or reference_id.
	FetchStatus(ctx context.Context, idOrReference string) (*domain.Transaction, error)
}

// --- Webhook enqueue ---

// WebhookEnqueuer creates the WebhookEvent row for a terminal transaction
// that carries a webhook_url. The dispatcher takes it from there.
type WebhookEnqueuer interface {
	Enqueue(ctx context.Context, tx *domain.Transaction) error
}

// AuthService defines authentication business logic.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// RegisterRequest holds input for merchant registration.
type RegisterRequest struct {
	Username     string
	Password     string
	MerchantName string
	WebhookURL   *string
}

// RegisterResponse holds the registration result shown once.
type RegisterResponse struct {
	MerchantID uuid.UUID
	AccessKey  string
	SecretKey  string // Plaintext, shown only at registration
}

// MerchantProfile is the merchant-facing view of a merchant account.
type MerchantProfile struct {
	ID           uuid.UUID
	Username     string
	MerchantName string
	WebhookURL   *string
	Status       domain.MerchantStatus
	CreatedAt    string
}

// RotateKeysResponse holds freshly generated credentials shown once.
type RotateKeysResponse struct {
	AccessKey string
	SecretKey string
}

// MerchantManagementService defines merchant self-service operations.
type MerchantManagementService interface {
	GetProfile(ctx context.Context, merchantID uuid.UUID) (*MerchantProfile, error)
	UpdateWebhookURL(ctx context.Context, merchantID uuid.UUID, webhookURL *string) error
	RotateKeys(ctx context.Context, merchantID uuid.UUID) (*RotateKeysResponse, error)
}

// AuditService provides a write path for HTTP-layer audit events
// (registration, login, key rotation) distinct from the transactional
// AuditLog the orchestrator writes through AuditRepository directly.
type AuditService interface {
	Record(ctx context.Context, log *domain.AuditLog) error
}

// ReportingService defines merchant-facing transaction reporting.
type ReportingService interface {
	ListTransactions(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
	GetStats(ctx context.Context, merchantID uuid.UUID, periodStart *int64) (*TransactionStats, error)
}
