package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReportingService_ListTransactions_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepository(ctrl)
	svc := NewReportingService(mockRepo)

	merchantID := uuid.New()
	params := ports.TransactionListParams{MerchantID: merchantID, Page: 1, PageSize: 20}
	want := []domain.Transaction{{ID: uuid.New(), MerchantID: merchantID, CreatedAt: time.Now()}}

	mockRepo.EXPECT().List(gomock.Any(), params).Return(want, int64(1), nil)

	got, total, err := svc.ListTransactions(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, int64(1), total)
}

func TestReportingService_ListTransactions_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepository(ctrl)
	svc := NewReportingService(mockRepo)

	mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(0), errors.New("db down"))

	_, _, err := svc.ListTransactions(context.Background(), ports.TransactionListParams{})
	require.Error(t, err)
}

func TestReportingService_GetStats_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepository(ctrl)
	svc := NewReportingService(mockRepo)

	merchantID := uuid.New()
	want := &ports.TransactionStats{TotalTransactions: 10, Successful: 8, Failed: 2}

	mockRepo.EXPECT().GetStats(gomock.Any(), merchantID, (*int64)(nil)).Return(want, nil)

	got, err := svc.GetStats(context.Background(), merchantID, nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReportingService_GetStats_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepository(ctrl)
	svc := NewReportingService(mockRepo)

	mockRepo.EXPECT().GetStats(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.GetStats(context.Background(), uuid.New(), nil)
	require.Error(t, err)
}
