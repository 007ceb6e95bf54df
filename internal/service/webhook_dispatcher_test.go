package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		PollInterval:   50 * time.Millisecond,
		RequestTimeout: 2 * time.Second,
		BatchSize:      10,
		RetryBaseDelay: time.Second,
	}
}

func TestWebhookDispatcher_Deliver_SuccessMarksTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	repo := mocks.NewMockWebhookRepository(ctrl)
	auditRepo := mocks.NewMockAuditRepository(ctrl)
	dispatcher := NewWebhookDispatcher(repo, auditRepo, testDispatcherConfig(), zerolog.Nop())

	evt := &domain.WebhookEvent{ID: uuid.New(), TransactionID: uuid.New(), URL: server.URL, MaxAttempts: 3}

	repo.EXPECT().RecordAttempt(gomock.Any(), evt.ID, gomock.Any(), gomock.Any(), nil).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, status *int, _ *string, nextRetryAt *time.Time) error {
			assert.Equal(t, 200, *status)
			assert.Nil(t, nextRetryAt)
			return nil
		})
	auditRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, log *domain.AuditLog) error {
		assert.Equal(t, domain.AuditWebhookSent, log.EventType)
		return nil
	})

	dispatcher.deliver(context.Background(), evt)
}

func TestWebhookDispatcher_Deliver_NonTerminalFailureSchedulesRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	repo := mocks.NewMockWebhookRepository(ctrl)
	auditRepo := mocks.NewMockAuditRepository(ctrl)
	dispatcher := NewWebhookDispatcher(repo, auditRepo, testDispatcherConfig(), zerolog.Nop())

	evt := &domain.WebhookEvent{ID: uuid.New(), TransactionID: uuid.New(), URL: server.URL, Attempts: 0, MaxAttempts: 3}

	repo.EXPECT().RecordAttempt(gomock.Any(), evt.ID, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, status *int, _ *string, nextRetryAt *time.Time) error {
			assert.Equal(t, 503, *status)
			assert.NotNil(t, nextRetryAt)
			assert.True(t, nextRetryAt.After(time.Now().UTC()))
			return nil
		})

	dispatcher.deliver(context.Background(), evt)
}

func TestWebhookDispatcher_Deliver_ExhaustedAttemptsIsTerminalFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	repo := mocks.NewMockWebhookRepository(ctrl)
	auditRepo := mocks.NewMockAuditRepository(ctrl)
	dispatcher := NewWebhookDispatcher(repo, auditRepo, testDispatcherConfig(), zerolog.Nop())

	evt := &domain.WebhookEvent{ID: uuid.New(), TransactionID: uuid.New(), URL: server.URL, Attempts: 2, MaxAttempts: 3}

	repo.EXPECT().RecordAttempt(gomock.Any(), evt.ID, gomock.Any(), gomock.Any(), nil).Return(nil)
	auditRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, log *domain.AuditLog) error {
		assert.Equal(t, domain.AuditWebhookFailed, log.EventType)
		return nil
	})

	dispatcher.deliver(context.Background(), evt)
}

func TestWebhookDispatcher_Deliver_TransportErrorTreatedAsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockWebhookRepository(ctrl)
	auditRepo := mocks.NewMockAuditRepository(ctrl)
	dispatcher := NewWebhookDispatcher(repo, auditRepo, testDispatcherConfig(), zerolog.Nop())

	evt := &domain.WebhookEvent{ID: uuid.New(), TransactionID: uuid.New(), URL: "http://127.0.0.1:1", Attempts: 0, MaxAttempts: 3}

	repo.EXPECT().RecordAttempt(gomock.Any(), evt.ID, (*int)(nil), gomock.Any(), gomock.Any()).Return(nil)

	dispatcher.deliver(context.Background(), evt)
}

func TestWebhookDispatcher_Backoff_Exponential(t *testing.T) {
	dispatcher := &WebhookDispatcher{cfg: DispatcherConfig{RetryBaseDelay: time.Second}}

	d1 := dispatcher.backoff(1)
	d2 := dispatcher.backoff(2)

	assert.InDelta(t, time.Second.Seconds(), d1.Seconds(), 0.3)
	assert.InDelta(t, (2 * time.Second).Seconds(), d2.Seconds(), 0.6)
}
