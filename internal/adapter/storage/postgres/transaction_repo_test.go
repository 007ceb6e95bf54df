package postgres

import (
	"context"
	"testing"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(merchantID uuid.UUID) *domain.Transaction {
	now := time.Now().UTC().Truncate(time.Microsecond)
	key := "idem-key-001"
	return &domain.Transaction{
		ID:              uuid.New(),
		ReferenceID:     "TXN1700000000000abcd1234",
		IdempotencyKey:  &key,
		Amount:          decimal.NewFromFloat(100.00),
		Currency:        "USD",
		MerchantID:      merchantID,
		PaymentMethod:   domain.PaymentMethodCard,
		PaymentProvider: "stripe",
		Status:          domain.TransactionStatusPending,
		FraudScore:      decimal.NewFromFloat(0.1),
		Metadata:        []byte(`{}`),
		CreatedAt:       now,
	}
}

func txColumns() []string {
	return []string{"id", "reference_id", "idempotency_key", "amount", "currency", "user_id", "merchant_id",
		"payment_method", "payment_provider", "status", "fraud_score", "error_code", "error_message",
		"provider_ref", "provider_secret_enc", "webhook_url", "webhook_attempts", "webhook_last_attempt",
		"metadata", "created_at", "processed_at"}
}

func txRow(t *domain.Transaction) *pgxmock.Rows {
	return pgxmock.NewRows(txColumns()).AddRow(
		t.ID, t.ReferenceID, t.IdempotencyKey, t.Amount, t.Currency, t.UserID, t.MerchantID,
		t.PaymentMethod, t.PaymentProvider, t.Status, t.FraudScore, t.ErrorCode, t.ErrorMessage,
		t.ProviderRef, t.ProviderSecretEnc, t.WebhookURL, t.WebhookAttempts, t.WebhookLastAttempt,
		t.Metadata, t.CreatedAt, t.ProcessedAt,
	)
}

func TestTransactionRepo_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New())

	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(
			txn.ID, txn.ReferenceID, txn.IdempotencyKey, txn.Amount, txn.Currency, txn.UserID, txn.MerchantID,
			txn.PaymentMethod, txn.PaymentProvider, txn.Status, txn.FraudScore, txn.ErrorCode, txn.ErrorMessage,
			txn.ProviderRef, txn.ProviderSecretEnc, txn.WebhookURL, txn.WebhookAttempts, txn.WebhookLastAttempt,
			txn.Metadata, txn.CreatedAt, txn.ProcessedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Insert(context.Background(), txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_Insert_DuplicateKey(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New())

	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(
			txn.ID, txn.ReferenceID, txn.IdempotencyKey, txn.Amount, txn.Currency, txn.UserID, txn.MerchantID,
			txn.PaymentMethod, txn.PaymentProvider, txn.Status, txn.FraudScore, txn.ErrorCode, txn.ErrorMessage,
			txn.ProviderRef, txn.ProviderSecretEnc, txn.WebhookURL, txn.WebhookAttempts, txn.WebhookLastAttempt,
			txn.Metadata, txn.CreatedAt, txn.ProcessedAt,
		).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err = repo.Insert(context.Background(), txn)
	assert.ErrorIs(t, err, ports.ErrDuplicateKey)
}

func TestTransactionRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE id").
		WithArgs(txn.ID).
		WillReturnRows(txRow(txn))

	result, err := repo.GetByID(context.Background(), txn.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, txn.ID, result.ID)
	assert.Equal(t, txn.ReferenceID, result.ReferenceID)
	assert.True(t, txn.Amount.Equal(result.Amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(txColumns()))

	result, err := repo.GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByIdempotencyKey(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE idempotency_key").
		WithArgs(*txn.IdempotencyKey).
		WillReturnRows(txRow(txn))

	result, err := repo.GetByIdempotencyKey(context.Background(), *txn.IdempotencyKey)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, txn.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_UpdateStatus_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txID := uuid.New()

	mock.ExpectExec("UPDATE transactions SET status").
		WithArgs(domain.TransactionStatusProcessing, (*string)(nil), (*string)(nil), txID, domain.TransactionStatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	ok, err := repo.UpdateStatus(context.Background(), txID, domain.TransactionStatusPending, domain.TransactionStatusProcessing, nil, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_UpdateStatus_LostRace(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txID := uuid.New()

	mock.ExpectExec("UPDATE transactions SET status").
		WithArgs(domain.TransactionStatusProcessing, (*string)(nil), (*string)(nil), txID, domain.TransactionStatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := repo.UpdateStatus(context.Background(), txID, domain.TransactionStatusPending, domain.TransactionStatusProcessing, nil, nil)
	require.NoError(t, err)
	assert.False(t, ok, "CAS miss must not surface as an error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	merchantID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE merchant_id").
		WithArgs(merchantID).
		WillReturnRows(pgxmock.NewRows(
			[]string{"total", "pending", "processing", "successful", "failed", "cancelled"},
		).AddRow(int64(100), int64(5), int64(3), int64(80), int64(10), int64(2)))

	stats, err := repo.GetStats(context.Background(), merchantID, nil)
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, int64(100), stats.TotalTransactions)
	assert.Equal(t, int64(80), stats.Successful)
	assert.Equal(t, int64(10), stats.Failed)
	assert.Equal(t, int64(2), stats.Cancelled)
	assert.NoError(t, mock.ExpectationsWereMet())
}
