package postgres

import (
	"context"
	"testing"
	"time"

	"payment-orchestrator/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRepo_Append(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)

	txID := uuid.New()
	entry := &domain.AuditLog{
		ID:            uuid.New(),
		TransactionID: &txID,
		EventType:     domain.AuditPaymentInitiated,
		EventData:     []byte(`{"amount":"100.00"}`),
		IPAddress:     "203.0.113.5",
		CreatedAt:     time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(
			entry.ID, entry.TransactionID, string(entry.EventType), entry.EventData,
			entry.UserID, entry.IPAddress, entry.UserAgent, entry.CreatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Append(context.Background(), entry)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Append_NonTransactional(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)

	userID := uuid.New().String()
	entry := &domain.AuditLog{
		ID:        uuid.New(),
		EventType: domain.AuditMerchantLogin,
		UserID:    &userID,
		IPAddress: "203.0.113.5",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(
			entry.ID, (*uuid.UUID)(nil), string(entry.EventType), entry.EventData,
			entry.UserID, entry.IPAddress, entry.UserAgent, entry.CreatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Append(context.Background(), entry)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
