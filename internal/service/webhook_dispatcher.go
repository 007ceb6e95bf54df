package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DispatcherConfig tunes the webhook retry engine. The per-event attempt
// cap is not here: it is stamped onto each WebhookEvent row at enqueue
// time, so in-flight events keep the cap they were created under.
type DispatcherConfig struct {
	PollInterval   time.Duration
	RequestTimeout time.Duration
	BatchSize      int
	RetryBaseDelay time.Duration
}

// WebhookDispatcher is the scheduled retry engine for outbound webhook
// notifications. It owns every mutable field on a WebhookEvent row;
// the orchestrator only ever creates new rows via WebhookEnqueuer.
type WebhookDispatcher struct {
	repo       ports.WebhookRepository
	auditRepo  ports.AuditRepository
	httpClient *http.Client
	cfg        DispatcherConfig
	log        zerolog.Logger
}

// NewWebhookDispatcher creates the Webhook Dispatcher.
func NewWebhookDispatcher(repo ports.WebhookRepository, auditRepo ports.AuditRepository, cfg DispatcherConfig, log zerolog.Logger) *WebhookDispatcher {
	return &WebhookDispatcher{
		repo:      repo,
		auditRepo: auditRepo,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		cfg: cfg,
		log: log,
	}
}

// Run polls for pending webhook events on cfg.PollInterval until ctx is
// cancelled. Intended to be launched as its own goroutine from the
// composition root.
func (d *WebhookDispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.tick(ctx); err != nil {
				d.log.Warn().Err(err).Msg("webhook dispatcher tick failed")
			}
		}
	}
}

func (d *WebhookDispatcher) tick(ctx context.Context) error {
	events, err := d.repo.FindPending(ctx, time.Now().UTC(), d.cfg.BatchSize)
	if err != nil {
		return fmt.Errorf("find pending webhooks: %w", err)
	}
	for i := range events {
		d.deliver(ctx, &events[i])
	}
	return nil
}

// deliver attempts one delivery and records the outcome via
// RecordAttempt. Transport errors and non-2xx responses are both
// treated as failed attempts subject to the same backoff schedule.
func (d *WebhookDispatcher) deliver(ctx context.Context, evt *domain.WebhookEvent) {
	reqCtx, cancel := context.WithTimeout(ctx, d.cfg.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, evt.URL, bytes.NewReader(evt.Payload))
	if err != nil {
		d.recordFailure(ctx, evt, 0, err.Error())
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		d.recordFailure(ctx, evt, 0, err.Error())
		return
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	status := resp.StatusCode

	if status >= 200 && status < 300 {
		d.recordSuccess(ctx, evt, status, string(respBody))
		return
	}
	d.recordFailure(ctx, evt, status, string(respBody))
}

func (d *WebhookDispatcher) recordSuccess(ctx context.Context, evt *domain.WebhookEvent, status int, body string) {
	if err := d.repo.RecordAttempt(ctx, evt.ID, &status, &body, nil); err != nil {
		d.log.Warn().Err(err).Str("webhook_event_id", evt.ID.String()).Msg("failed to record webhook attempt")
	}
	d.appendAudit(ctx, evt.TransactionID, domain.AuditWebhookSent, status)
}

func (d *WebhookDispatcher) recordFailure(ctx context.Context, evt *domain.WebhookEvent, status int, body string) {
	attempts := evt.Attempts + 1
	var statusPtr *int
	if status != 0 {
		statusPtr = &status
	}

	var nextRetryAt *time.Time
	if attempts < evt.MaxAttempts {
		delay := d.backoff(attempts)
		at := time.Now().UTC().Add(delay)
		nextRetryAt = &at
	} else {
		d.appendAudit(ctx, evt.TransactionID, domain.AuditWebhookFailed, status)
	}

	if err := d.repo.RecordAttempt(ctx, evt.ID, statusPtr, &body, nextRetryAt); err != nil {
		d.log.Warn().Err(err).Str("webhook_event_id", evt.ID.String()).Msg("failed to record webhook attempt")
	}
}

// backoff computes base * 2^(attempts-1) with +/-20% jitter.
func (d *WebhookDispatcher) backoff(attempts int) time.Duration {
	base := d.cfg.RetryBaseDelay
	if base <= 0 {
		base = time.Second
	}
	delay := base << (attempts - 1)
	jitter := time.Duration(float64(delay) * (rand.Float64()*0.4 - 0.2))
	return delay + jitter
}

func (d *WebhookDispatcher) appendAudit(ctx context.Context, txID uuid.UUID, eventType domain.AuditEventType, status int) {
	entry := &domain.AuditLog{
		ID:            uuid.New(),
		TransactionID: &txID,
		EventType:     eventType,
		EventData:     []byte(fmt.Sprintf(`{"response_status":%d}`, status)),
		CreatedAt:     time.Now().UTC(),
	}
	if err := d.auditRepo.Append(ctx, entry); err != nil {
		d.log.Warn().Err(err).Str("transaction_id", txID.String()).Msg("failed to append webhook audit log")
	}
}
