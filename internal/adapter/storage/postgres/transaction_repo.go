package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the SQLSTATE Postgres reports for a UNIQUE
// constraint violation.
const pgUniqueViolation = "23505"

// TransactionRepo implements ports.TransactionRepository. It is the
// durable source of truth for every transaction and the compare-and-swap
// serialization point for the state machine.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

const transactionColumns = `id, reference_id, idempotency_key, amount, currency, user_id, merchant_id,
	payment_method, payment_provider, status, fraud_score, error_code, error_message,
	provider_ref, provider_secret_enc, webhook_url, webhook_attempts, webhook_last_attempt,
	metadata, created_at, processed_at`

// Insert persists a new transaction (PENDING, or FAILED when admission
// blocked it for fraud). The reference_id and
// idempotency_key columns both carry UNIQUE constraints; a collision on
// either surfaces as ports.ErrDuplicateKey.
func (r *TransactionRepo) Insert(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.ReferenceID, t.IdempotencyKey, t.Amount, t.Currency, t.UserID, t.MerchantID,
		t.PaymentMethod, t.PaymentProvider, t.Status, t.FraudScore, t.ErrorCode, t.ErrorMessage,
		t.ProviderRef, t.ProviderSecretEnc, t.WebhookURL, t.WebhookAttempts, t.WebhookLastAttempt,
		t.Metadata, t.CreatedAt, t.ProcessedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ports.ErrDuplicateKey
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID fetches a transaction by its primary key.
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// GetByReference fetches a transaction by its merchant-visible reference id.
func (r *TransactionRepo) GetByReference(ctx context.Context, referenceID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference_id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, referenceID))
}

// GetByIdempotencyKey fetches a transaction by idempotency key. This is the
// durable fallback arbiter when the cache layer of the Idempotency Gate
// misses or was never consulted.
func (r *TransactionRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE idempotency_key = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, key))
}

// UpdateStatus performs the CAS transition that is the sole serialization
// point for the state machine. ok=false with a nil error means the row was
// no longer in `from`: the caller lost the race or this is a stale
// redelivery, never treated as a failure.
func (r *TransactionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.TransactionStatus, errCode, errMsg *string) (bool, error) {
	query := `UPDATE transactions
		SET status = $1, error_code = $2, error_message = $3, processed_at = NOW()
		WHERE id = $4 AND status = $5`

	tag, err := r.pool.Exec(ctx, query, to, errCode, errMsg, id, from)
	if err != nil {
		return false, fmt.Errorf("update transaction status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// List fetches transactions with filtering and pagination for merchant
// reporting.
func (r *TransactionRepo) List(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("merchant_id = $%d", argIdx))
	args = append(args, params.MerchantID)
	argIdx++

	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= to_timestamp($%d)", argIdx))
		args = append(args, *params.From)
		argIdx++
	}
	if params.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= to_timestamp($%d)", argIdx))
		args = append(args, *params.To)
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM transactions %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	dataQuery := fmt.Sprintf(`SELECT %s FROM transactions %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		transactionColumns, where, argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t, err := scanRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan transaction row: %w", err)
		}
		txns = append(txns, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txns, total, nil
}

// GetStats retrieves aggregated per-status counts for a merchant.
func (r *TransactionRepo) GetStats(ctx context.Context, merchantID uuid.UUID, periodStart *int64) (*ports.TransactionStats, error) {
	condition := "merchant_id = $1"
	args := []any{merchantID}

	if periodStart != nil {
		condition += " AND created_at >= to_timestamp($2)"
		args = append(args, *periodStart)
	}

	query := fmt.Sprintf(`SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE status = 'PENDING') AS pending,
		COUNT(*) FILTER (WHERE status = 'PROCESSING') AS processing,
		COUNT(*) FILTER (WHERE status = 'SUCCESS') AS successful,
		COUNT(*) FILTER (WHERE status = 'FAILED') AS failed,
		COUNT(*) FILTER (WHERE status = 'CANCELLED') AS cancelled
		FROM transactions WHERE %s`, condition)

	stats := &ports.TransactionStats{}
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&stats.TotalTransactions, &stats.Pending, &stats.Processing,
		&stats.Successful, &stats.Failed, &stats.Cancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("get transaction stats: %w", err)
	}
	return stats, nil
}

func (r *TransactionRepo) scanOne(row pgx.Row) (*domain.Transaction, error) {
	t, err := scanRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	return t, nil
}

// rowScanner covers both pgx.Row and pgx.Rows, whose Scan signatures match.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRow(row rowScanner) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	err := row.Scan(
		&t.ID, &t.ReferenceID, &t.IdempotencyKey, &t.Amount, &t.Currency, &t.UserID, &t.MerchantID,
		&t.PaymentMethod, &t.PaymentProvider, &t.Status, &t.FraudScore, &t.ErrorCode, &t.ErrorMessage,
		&t.ProviderRef, &t.ProviderSecretEnc, &t.WebhookURL, &t.WebhookAttempts, &t.WebhookLastAttempt,
		&t.Metadata, &t.CreatedAt, &t.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}
