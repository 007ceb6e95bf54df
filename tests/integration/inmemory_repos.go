package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"

	"github.com/google/uuid"
)

// --- In-Memory Merchant Repo ---

type inMemoryMerchantRepo struct {
	mu        sync.RWMutex
	merchants map[uuid.UUID]*domain.Merchant
}

func newInMemoryMerchantRepo() *inMemoryMerchantRepo {
	return &inMemoryMerchantRepo{merchants: make(map[uuid.UUID]*domain.Merchant)}
}

func (r *inMemoryMerchantRepo) Create(ctx context.Context, m *domain.Merchant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.merchants {
		if existing.Username == m.Username {
			return fmt.Errorf("username already exists")
		}
	}
	r.merchants[m.ID] = m
	return nil
}

func (r *inMemoryMerchantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.merchants[id]
	if !ok {
		return nil, nil
	}
	return m, nil
}

func (r *inMemoryMerchantRepo) GetByAccessKey(ctx context.Context, accessKey string) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.merchants {
		if m.AccessKey == accessKey {
			return m, nil
		}
	}
	return nil, nil
}

func (r *inMemoryMerchantRepo) GetByUsername(ctx context.Context, username string) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.merchants {
		if m.Username == username {
			return m, nil
		}
	}
	return nil, nil
}

func (r *inMemoryMerchantRepo) Update(ctx context.Context, m *domain.Merchant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.merchants[m.ID]; !ok {
		return fmt.Errorf("merchant not found")
	}
	r.merchants[m.ID] = m
	return nil
}

// --- In-Memory Transaction Repo ---
//
// Grounded on the CAS discipline ports.TransactionRepository documents:
// UpdateStatus is the sole serialization point for the state machine, so
// the in-memory version guards it with the same mutex as every other
// method rather than relying on map access being atomic.

type inMemoryTransactionRepo struct {
	mu           sync.Mutex
	transactions map[uuid.UUID]*domain.Transaction
	byReference  map[string]uuid.UUID
	byIdemKey    map[string]uuid.UUID
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{
		transactions: make(map[uuid.UUID]*domain.Transaction),
		byReference:  make(map[string]uuid.UUID),
		byIdemKey:    make(map[string]uuid.UUID),
	}
}

func (r *inMemoryTransactionRepo) Insert(ctx context.Context, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byReference[t.ReferenceID]; exists {
		return ports.ErrDuplicateKey
	}
	if t.IdempotencyKey != nil {
		if _, exists := r.byIdemKey[*t.IdempotencyKey]; exists {
			return ports.ErrDuplicateKey
		}
	}
	cp := *t
	r.transactions[t.ID] = &cp
	r.byReference[t.ReferenceID] = t.ID
	if t.IdempotencyKey != nil {
		r.byIdemKey[*t.IdempotencyKey] = t.ID
	}
	return nil
}

func (r *inMemoryTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryTransactionRepo) GetByReference(ctx context.Context, referenceID string) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byReference[referenceID]
	if !ok {
		return nil, nil
	}
	cp := *r.transactions[id]
	return &cp, nil
}

func (r *inMemoryTransactionRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byIdemKey[key]
	if !ok {
		return nil, nil
	}
	cp := *r.transactions[id]
	return &cp, nil
}

func (r *inMemoryTransactionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.TransactionStatus, errCode, errMsg *string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[id]
	if !ok {
		return false, nil
	}
	if t.Status != from {
		return false, nil
	}
	t.Status = to
	t.ErrorCode = errCode
	t.ErrorMessage = errMsg
	if to == domain.TransactionStatusSuccess || to == domain.TransactionStatusFailed || to == domain.TransactionStatusCancelled {
		now := time.Now().UTC()
		t.ProcessedAt = &now
	}
	return true, nil
}

func (r *inMemoryTransactionRepo) List(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []domain.Transaction
	for _, t := range r.transactions {
		if t.MerchantID != params.MerchantID {
			continue
		}
		if params.Status != nil && t.Status != *params.Status {
			continue
		}
		matched = append(matched, *t)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.Before(matched[j].CreatedAt) })

	total := int64(len(matched))
	page, pageSize := params.Page, params.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return matched, total, nil
	}
	start := (page - 1) * pageSize
	if start >= len(matched) {
		return []domain.Transaction{}, total, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *inMemoryTransactionRepo) GetStats(ctx context.Context, merchantID uuid.UUID, periodStart *int64) (*ports.TransactionStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := &ports.TransactionStats{}
	for _, t := range r.transactions {
		if t.MerchantID != merchantID {
			continue
		}
		if periodStart != nil && t.CreatedAt.Unix() < *periodStart {
			continue
		}
		stats.TotalTransactions++
		switch t.Status {
		case domain.TransactionStatusPending:
			stats.Pending++
		case domain.TransactionStatusProcessing:
			stats.Processing++
		case domain.TransactionStatusSuccess:
			stats.Successful++
		case domain.TransactionStatusFailed:
			stats.Failed++
		case domain.TransactionStatusCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

// --- In-Memory Audit Repo ---

type inMemoryAuditRepo struct {
	mu      sync.Mutex
	entries []*domain.AuditLog
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{}
}

func (r *inMemoryAuditRepo) Append(ctx context.Context, entry *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *inMemoryAuditRepo) all() []*domain.AuditLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.AuditLog, len(r.entries))
	copy(out, r.entries)
	return out
}

// --- In-Memory Webhook Repo ---

type inMemoryWebhookRepo struct {
	mu     sync.Mutex
	events map[uuid.UUID]*domain.WebhookEvent
}

func newInMemoryWebhookRepo() *inMemoryWebhookRepo {
	return &inMemoryWebhookRepo{events: make(map[uuid.UUID]*domain.WebhookEvent)}
}

func (r *inMemoryWebhookRepo) Insert(ctx context.Context, evt *domain.WebhookEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *evt
	r.events[evt.ID] = &cp
	return nil
}

func (r *inMemoryWebhookRepo) FindPending(ctx context.Context, now time.Time, limit int) ([]domain.WebhookEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var pending []domain.WebhookEvent
	for _, evt := range r.events {
		if evt.IsTerminal() {
			continue
		}
		if evt.NextRetryAt != nil && evt.NextRetryAt.After(now) {
			continue
		}
		pending = append(pending, *evt)
		if len(pending) >= limit {
			break
		}
	}
	return pending, nil
}

func (r *inMemoryWebhookRepo) RecordAttempt(ctx context.Context, id uuid.UUID, status *int, body *string, nextRetryAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	evt, ok := r.events[id]
	if !ok {
		return fmt.Errorf("webhook event not found")
	}
	evt.Attempts++
	evt.ResponseStatus = status
	evt.ResponseBody = body
	evt.NextRetryAt = nextRetryAt
	evt.UpdatedAt = time.Now().UTC()
	return nil
}

// --- In-Memory Event Bus ---
//
// Mirrors ports.EventBus with synchronous, same-process fan-out: each
// Subscribe call gets its own goroutine draining a dedicated channel per
// topic, which is enough to exercise the orchestrator wiring
// end-to-end without a real broker.

type inMemoryBus struct {
	mu   sync.Mutex
	subs map[string][]chan ports.PaymentEvent
}

func newInMemoryBus() *inMemoryBus {
	return &inMemoryBus{subs: make(map[string][]chan ports.PaymentEvent)}
}

func (b *inMemoryBus) Publish(ctx context.Context, topic, key string, evt ports.PaymentEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs[topic] {
		ch <- evt
	}
	return nil
}

func (b *inMemoryBus) Subscribe(ctx context.Context, topic, groupID string, handler ports.EventHandler) error {
	ch := make(chan ports.PaymentEvent, 64)
	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], ch)
	b.mu.Unlock()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case evt := <-ch:
				_ = handler(ctx, evt)
			}
		}
	}()
	return nil
}

func (b *inMemoryBus) Close() error { return nil }
