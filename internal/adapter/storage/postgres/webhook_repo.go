package postgres

import (
	"context"
	"fmt"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"

	"github.com/google/uuid"
)

type webhookRepo struct {
	pool Pool
}

// NewWebhookRepository creates a PostgreSQL-backed WebhookRepository.
func NewWebhookRepository(pool Pool) ports.WebhookRepository {
	return &webhookRepo{pool: pool}
}

func (r *webhookRepo) Insert(ctx context.Context, evt *domain.WebhookEvent) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO webhook_events
		 (id, transaction_id, url, payload, response_status, response_body, attempts, max_attempts, next_retry_at, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		evt.ID, evt.TransactionID, evt.URL, evt.Payload,
		evt.ResponseStatus, evt.ResponseBody, evt.Attempts, evt.MaxAttempts,
		evt.NextRetryAt, evt.CreatedAt, evt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook event: %w", err)
	}
	return nil
}

// FindPending returns webhook events due for delivery: never attempted, or
// whose next_retry_at has passed and which have not yet gone terminal.
func (r *webhookRepo) FindPending(ctx context.Context, now time.Time, limit int) ([]domain.WebhookEvent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, transaction_id, url, payload, response_status, response_body,
		        attempts, max_attempts, next_retry_at, created_at, updated_at
		 FROM webhook_events
		 WHERE attempts < max_attempts
		   AND (response_status IS NULL OR response_status < 200 OR response_status >= 300)
		   AND (next_retry_at IS NULL OR next_retry_at <= $1)
		 ORDER BY created_at ASC
		 LIMIT $2`, now, limit)
	if err != nil {
		return nil, fmt.Errorf("find pending webhook events: %w", err)
	}
	defer rows.Close()

	var events []domain.WebhookEvent
	for rows.Next() {
		var e domain.WebhookEvent
		if err := rows.Scan(
			&e.ID, &e.TransactionID, &e.URL, &e.Payload, &e.ResponseStatus, &e.ResponseBody,
			&e.Attempts, &e.MaxAttempts, &e.NextRetryAt, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan webhook event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// RecordAttempt writes the outcome of one delivery attempt.
func (r *webhookRepo) RecordAttempt(ctx context.Context, id uuid.UUID, status *int, body *string, nextRetryAt *time.Time) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE webhook_events
		 SET attempts = attempts + 1, response_status = $1, response_body = $2, next_retry_at = $3, updated_at = $4
		 WHERE id = $5`,
		status, body, nextRetryAt, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("record webhook attempt: %w", err)
	}
	return nil
}
