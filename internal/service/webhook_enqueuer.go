package service

import (
	"context"
	"encoding/json"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// webhookEnqueuer implements ports.WebhookEnqueuer: it turns a terminal
// transaction carrying a webhook_url into a WebhookEvent row. The
// dispatcher takes delivery from there.
type webhookEnqueuer struct {
	repo        ports.WebhookRepository
	maxAttempts int
	log         zerolog.Logger
}

// NewWebhookEnqueuer creates the write side of the webhook pipeline.
// maxAttempts is the configured retry cap stamped onto every event; zero
// or negative falls back to the domain default.
func NewWebhookEnqueuer(repo ports.WebhookRepository, maxAttempts int, log zerolog.Logger) ports.WebhookEnqueuer {
	if maxAttempts <= 0 {
		maxAttempts = domain.DefaultMaxWebhookAttempts
	}
	return &webhookEnqueuer{repo: repo, maxAttempts: maxAttempts, log: log}
}

func (e *webhookEnqueuer) Enqueue(ctx context.Context, tx *domain.Transaction) error {
	if tx.WebhookURL == nil || *tx.WebhookURL == "" {
		return nil
	}

	payload := domain.WebhookPayload{
		TransactionID: tx.ID.String(),
		ReferenceID:   tx.ReferenceID,
		Status:        string(tx.Status),
		Amount:        tx.Amount.String(),
		Currency:      tx.Currency,
		Timestamp:     time.Now().UTC(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	evt := &domain.WebhookEvent{
		ID:            uuid.New(),
		TransactionID: tx.ID,
		URL:           *tx.WebhookURL,
		Payload:       body,
		MaxAttempts:   e.maxAttempts,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := e.repo.Insert(ctx, evt); err != nil {
		e.log.Warn().Err(err).Str("transaction_id", tx.ID.String()).Msg("failed to enqueue webhook event")
		return err
	}
	return nil
}
