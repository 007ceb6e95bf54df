package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// defaultProviderTimeout bounds a single provider charge call when no
// timeout is configured.
const defaultProviderTimeout = 30 * time.Second

// paymentOrchestrator is the heart of the system: admission, state
// transitions, and provider invocation. Initiate is caller-driven; Process
// is driven by the orchestrator consumer group on the event bus.
type paymentOrchestrator struct {
	txRepo          ports.TransactionRepository
	auditRepo       ports.AuditRepository
	gate            ports.IdempotencyGate
	fraud           ports.FraudScorer
	provider        ports.ProviderAdapter
	providerTimeout time.Duration
	bus             ports.EventBus
	webhooks        ports.WebhookEnqueuer
	encSvc          ports.EncryptionService
	log             zerolog.Logger
}

// NewPaymentOrchestrator creates the Payment Orchestrator. providerTimeout
// bounds each Charge call; zero or negative falls back to the default.
func NewPaymentOrchestrator(
	txRepo ports.TransactionRepository,
	auditRepo ports.AuditRepository,
	gate ports.IdempotencyGate,
	fraud ports.FraudScorer,
	provider ports.ProviderAdapter,
	providerTimeout time.Duration,
	bus ports.EventBus,
	webhooks ports.WebhookEnqueuer,
	encSvc ports.EncryptionService,
	log zerolog.Logger,
) ports.PaymentOrchestrator {
	if providerTimeout <= 0 {
		providerTimeout = defaultProviderTimeout
	}
	return &paymentOrchestrator{
		txRepo:          txRepo,
		auditRepo:       auditRepo,
		gate:            gate,
		fraud:           fraud,
		provider:        provider,
		providerTimeout: providerTimeout,
		bus:             bus,
		webhooks:        webhooks,
		encSvc:          encSvc,
		log:             log,
	}
}

// Initiate runs admission synchronously: resolve idempotency
// key, score fraud, reserve, persist PENDING (or FAILED on fraud block),
// publish, return.
func (o *paymentOrchestrator) Initiate(ctx context.Context, req ports.PaymentRequest) (*domain.Transaction, error) {
	key := ""
	if req.IdempotencyKey != nil && *req.IdempotencyKey != "" {
		key = *req.IdempotencyKey
	} else {
		generated, err := o.gate.Generate()
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("generate idempotency key: %w", err))
		}
		key = generated
	}

	if existing, err := o.gate.Lookup(ctx, key); err != nil {
		return nil, apperror.ErrTransientInfra(err)
	} else if existing != nil {
		return existing, nil
	}

	if err := validatePaymentRequest(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tx := &domain.Transaction{
		ID:              uuid.New(),
		ReferenceID:     domain.NewReferenceID(now),
		IdempotencyKey:  &key,
		Amount:          req.Amount,
		Currency:        req.Currency,
		UserID:          req.UserID,
		MerchantID:      req.MerchantID,
		PaymentMethod:   req.PaymentMethod,
		PaymentProvider: req.Provider,
		Status:          domain.TransactionStatusPending,
		WebhookURL:      req.WebhookURL,
		Metadata:        req.Metadata,
		CreatedAt:       now,
	}

	score := o.fraud.Score(ports.FraudCheckInput{
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		CardPAN:       req.CardPAN,
		CardCVV:       req.CardCVV,
	})
	tx.FraudScore = score
	o.appendAudit(ctx, &tx.ID, domain.AuditFraudCheck, fmt.Sprintf(`{"score":"%s"}`, score.String()), "")

	blocked := o.fraud.ShouldBlock(score)
	if blocked {
		// Decision: persist as FAILED rather than reject, so the
		// caller always gets a transaction id to query.
		tx.Status = domain.TransactionStatusFailed
		code := domain.ErrorCodeFraudBlocked
		msg := "transaction blocked by fraud scoring"
		tx.ErrorCode = &code
		tx.ErrorMessage = &msg
		processedAt := now
		tx.ProcessedAt = &processedAt
	}

	reserved, err := o.gate.Reserve(ctx, key, tx.ID)
	if err != nil {
		return nil, apperror.ErrTransientInfra(err)
	}
	if !reserved {
		existing, err := o.gate.Lookup(ctx, key)
		if err != nil {
			return nil, apperror.ErrTransientInfra(err)
		}
		if existing != nil {
			return existing, nil
		}
		// Reservation lost the race but the winner has not written its row
		// yet, so the re-read found nothing; fall through to the insert,
		// where the store's UNIQUE constraint decides.
	}

	if err := o.txRepo.Insert(ctx, tx); err != nil {
		if errors.Is(err, ports.ErrDuplicateKey) {
			o.gate.Release(ctx, key)
			existing, lookupErr := o.txRepo.GetByIdempotencyKey(ctx, key)
			if lookupErr != nil {
				return nil, apperror.InternalError(lookupErr)
			}
			if existing != nil {
				return existing, nil
			}
		}
		return nil, apperror.ErrDatabaseError(err)
	}

	o.appendAudit(ctx, &tx.ID, domain.AuditPaymentInitiated, "", "")

	eventType := ports.EventTypePaymentInitiated
	if blocked {
		eventType = ports.EventTypePaymentFailed
	}
	evt := ports.PaymentEvent{Transaction: *tx, EventType: eventType, EventTimestamp: now}
	if err := o.bus.Publish(ctx, ports.TopicPaymentEvents, tx.ID.String(), evt); err != nil {
		o.log.Warn().Err(err).Str("transaction_id", tx.ID.String()).Msg("failed to publish payment event")
	}

	if blocked {
		o.enqueueWebhookIfConfigured(ctx, tx)
	}

	return tx, nil
}

// Process advances one transaction from PENDING through the provider
// call to a terminal status. Idempotent under at-least-once redelivery:
// a non-PENDING transaction is a no-op, and the CAS is the sole
// serialization point against a concurrent consumer.
func (o *paymentOrchestrator) Process(ctx context.Context, txID uuid.UUID) error {
	tx, err := o.txRepo.GetByID(ctx, txID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if tx == nil {
		o.log.Warn().Str("transaction_id", txID.String()).Msg("process called for unknown transaction")
		return nil
	}
	if tx.Status != domain.TransactionStatusPending {
		o.log.Info().Str("transaction_id", txID.String()).Str("status", string(tx.Status)).Msg("process no-op: transaction already advanced")
		return nil
	}

	ok, err := o.txRepo.UpdateStatus(ctx, txID, domain.TransactionStatusPending, domain.TransactionStatusProcessing, nil, nil)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if !ok {
		o.log.Info().Str("transaction_id", txID.String()).Msg("lost CAS race to another consumer")
		return nil
	}
	o.appendAudit(ctx, &txID, domain.AuditPaymentProcessed, "", "")

	chargeCtx, cancel := context.WithTimeout(ctx, o.providerTimeout)
	result, chargeErr := o.provider.Charge(chargeCtx, tx)
	cancel()
	if chargeErr != nil {
		code, message := classifyProviderError(chargeErr)
		// A provider that stalls past the deadline may surface the abort
		// as its own error type; the expired charge context is
		// authoritative either way.
		if errors.Is(chargeCtx.Err(), context.DeadlineExceeded) {
			code, message = domain.ErrorCodeProviderTimeout, "provider call timed out"
		}
		return o.finishFailed(ctx, tx, code, message)
	}
	if !result.OK {
		code := result.Code
		if code == "" {
			code = domain.ErrorCodeProcessingError
		}
		return o.finishFailed(ctx, tx, code, result.Message)
	}

	return o.finishSuccess(ctx, tx, result)
}

func (o *paymentOrchestrator) finishSuccess(ctx context.Context, tx *domain.Transaction, result *ports.ChargeResult) error {
	if result.ProviderRef != "" {
		tx.ProviderRef = &result.ProviderRef
	}
	if result.ClientSecret != "" {
		enc, err := o.encSvc.Encrypt(result.ClientSecret)
		if err != nil {
			o.log.Warn().Err(err).Str("transaction_id", tx.ID.String()).Msg("failed to encrypt provider client secret")
		} else {
			tx.ProviderSecretEnc = &enc
		}
	}

	ok, err := o.txRepo.UpdateStatus(ctx, tx.ID, domain.TransactionStatusProcessing, domain.TransactionStatusSuccess, nil, nil)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if !ok {
		o.log.Warn().Str("transaction_id", tx.ID.String()).Msg("CAS to SUCCESS lost race; leaving as redelivered no-op")
		return nil
	}

	tx.Status = domain.TransactionStatusSuccess
	o.appendAudit(ctx, &tx.ID, domain.AuditPaymentSuccess, "", "")
	o.publishTerminal(ctx, tx, ports.EventTypePaymentSuccess)
	o.enqueueWebhookIfConfigured(ctx, tx)
	o.log.Info().Str("transaction_id", tx.ID.String()).Str("reference_id", tx.ReferenceID).Msg("payment succeeded")
	return nil
}

func (o *paymentOrchestrator) finishFailed(ctx context.Context, tx *domain.Transaction, code, message string) error {
	ok, err := o.txRepo.UpdateStatus(ctx, tx.ID, domain.TransactionStatusProcessing, domain.TransactionStatusFailed, &code, &message)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if !ok {
		o.log.Warn().Str("transaction_id", tx.ID.String()).Msg("CAS to FAILED lost race; leaving as redelivered no-op")
		return nil
	}

	tx.Status = domain.TransactionStatusFailed
	tx.ErrorCode = &code
	tx.ErrorMessage = &message
	o.appendAudit(ctx, &tx.ID, domain.AuditPaymentFailed, fmt.Sprintf(`{"error_code":"%s"}`, code), "")
	o.publishTerminal(ctx, tx, ports.EventTypePaymentFailed)
	o.enqueueWebhookIfConfigured(ctx, tx)
	o.log.Error().Str("transaction_id", tx.ID.String()).Str("error_code", code).Str("error_message", message).Msg("payment failed")
	return nil
}

func (o *paymentOrchestrator) publishTerminal(ctx context.Context, tx *domain.Transaction, eventType string) {
	evt := ports.PaymentEvent{Transaction: *tx, EventType: eventType, EventTimestamp: time.Now().UTC()}
	if err := o.bus.Publish(ctx, ports.TopicPaymentResults, tx.ID.String(), evt); err != nil {
		o.log.Warn().Err(err).Str("transaction_id", tx.ID.String()).Msg("failed to publish terminal event")
	}
}

func (o *paymentOrchestrator) enqueueWebhookIfConfigured(ctx context.Context, tx *domain.Transaction) {
	if tx.WebhookURL == nil || *tx.WebhookURL == "" {
		return
	}
	if err := o.webhooks.Enqueue(ctx, tx); err != nil {
		o.log.Warn().Err(err).Str("transaction_id", tx.ID.String()).Msg("failed to enqueue webhook event")
	}
}

func (o *paymentOrchestrator) appendAudit(ctx context.Context, txID *uuid.UUID, eventType domain.AuditEventType, data string, ip string) {
	entry := &domain.AuditLog{
		ID:            uuid.New(),
		TransactionID: txID,
		EventType:     eventType,
		IPAddress:     ip,
		CreatedAt:     time.Now().UTC(),
	}
	if data != "" {
		entry.EventData = []byte(data)
	}
	if err := o.auditRepo.Append(ctx, entry); err != nil {
		o.log.Warn().Err(err).Str("event_type", string(eventType)).Msg("failed to append audit log")
	}
}

// FetchStatus returns the current transaction by id or reference_id, with
// no side effects.
func (o *paymentOrchestrator) FetchStatus(ctx context.Context, idOrReference string) (*domain.Transaction, error) {
	if id, err := uuid.Parse(idOrReference); err == nil {
		tx, err := o.txRepo.GetByID(ctx, id)
		if err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}
		if tx != nil {
			return tx, nil
		}
	}
	tx, err := o.txRepo.GetByReference(ctx, idOrReference)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if tx == nil {
		return nil, apperror.ErrNotFound("transaction")
	}
	return tx, nil
}

func validatePaymentRequest(req ports.PaymentRequest) error {
	if req.Amount.Sign() <= 0 {
		return apperror.Validation("amount must be greater than zero")
	}
	switch req.PaymentMethod {
	case domain.PaymentMethodCard:
		if req.CardPAN == "" || req.CardCVV == "" {
			return apperror.Validation("card payment requires pan and cvv")
		}
	case domain.PaymentMethodBank:
		if req.BankAccount == "" || req.BankRouting == "" {
			return apperror.Validation("bank payment requires account and routing numbers")
		}
	case domain.PaymentMethodWallet:
		if req.WalletID == "" {
			return apperror.Validation("wallet payment requires a wallet id")
		}
	default:
		return apperror.Validation("unsupported payment method")
	}
	return nil
}

// classifyProviderError maps an unexpected ProviderAdapter error (as
// opposed to a ChargeResult{OK:false}) to a stable error code.
func classifyProviderError(err error) (code string, message string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrorCodeProviderTimeout, "provider call timed out"
	}
	return domain.ErrorCodeProcessingError, err.Error()
}
