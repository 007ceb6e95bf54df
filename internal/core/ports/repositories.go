package ports

import (
	"context"
	"errors"
	"time"

	"payment-orchestrator/internal/core/domain"

	"github.com/google/uuid"
)

// ErrDuplicateKey is returned by TransactionRepository.Insert when the
// durable UNIQUE constraint on reference_id or idempotency_key is the
// arbiter that caught a race the idempotency cache missed.
var ErrDuplicateKey = errors.New("duplicate key")

// MerchantRepository defines persistence operations for merchants.
type MerchantRepository interface {
	Create(ctx context.Context, merchant *domain.Merchant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error)
	GetByAccessKey(ctx context.Context, accessKey string) (*domain.Merchant, error)
	GetByUsername(ctx context.Context, username string) (*domain.Merchant, error)
	Update(ctx context.Context, merchant *domain.Merchant) error
}

// TransactionRepository is the Transaction Store: the durable
// source of truth for transactions, and the serialization point for the
// state machine via UpdateStatus's compare-and-swap.
type TransactionRepository interface {
	// Insert persists a new transaction (PENDING, or FAILED when admission
	// blocked it for fraud). Returns ErrDuplicateKey if
	// reference_id or idempotency_key collides with an existing row.
	Insert(ctx context.Context, t *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	GetByReference(ctx context.Context, referenceID string) (*domain.Transaction, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error)

	// UpdateStatus performs `UPDATE ... WHERE id=? AND status=from`. It
	// reports ok=false (no error) when the CAS lost the race because the
	// row was no longer in `from`.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.TransactionStatus, errCode, errMsg *string) (ok bool, err error)

	// List and GetStats serve merchant-facing reporting; out of the
	// orchestrator's hot path.
	List(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
	GetStats(ctx context.Context, merchantID uuid.UUID, periodStart *int64) (*TransactionStats, error)
}

// TransactionListParams holds filter + pagination for listing transactions.
type TransactionListParams struct {
	MerchantID uuid.UUID
	Status     *domain.TransactionStatus
	From       *int64 // Unix timestamp
	To         *int64 // Unix timestamp
	Page       int
	PageSize   int
}

// TransactionStats holds aggregated statistics for merchant reporting.
type TransactionStats struct {
	TotalTransactions int64
	Pending           int64
	Processing        int64
	Successful        int64
	Failed            int64
	Cancelled         int64
}

// AuditRepository appends immutable AuditLog rows. Append returns write
// failures to its caller; the payment flow's callers log them and carry
// on, so an audit failure never fails the main flow.
type AuditRepository interface {
	Append(ctx context.Context, entry *domain.AuditLog) error
}

// WebhookRepository is the WebhookEvent slice of the Transaction Store.
type WebhookRepository interface {
	Insert(ctx context.Context, evt *domain.WebhookEvent) error
	FindPending(ctx context.Context, now time.Time, limit int) ([]domain.WebhookEvent, error)
	RecordAttempt(ctx context.Context, id uuid.UUID, status *int, body *string, nextRetryAt *time.Time) error
}
