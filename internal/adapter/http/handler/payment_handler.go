package handler

import (
	"payment-orchestrator/internal/adapter/http/dto"
	"payment-orchestrator/internal/adapter/http/middleware"
	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/apperror"
	"payment-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentHandler exposes the Payment Orchestrator over HTTP per
// HTTP: POST /initiate and GET /status/{id}.
type PaymentHandler struct {
	orchestrator ports.PaymentOrchestrator
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(orchestrator ports.PaymentOrchestrator) *PaymentHandler {
	return &PaymentHandler{orchestrator: orchestrator}
}

// Initiate handles POST /api/v1/payments/initiate. It always returns
// 202 on a resolved (new or duplicate) transaction: admission is
// idempotent, never a replay of side effects.
func (h *PaymentHandler) Initiate(c *gin.Context) {
	merchantID, ok := c.Get(middleware.CtxMerchantID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		response.Error(c, apperror.Validation("amount must be a valid decimal number"))
		return
	}

	tx, err := h.orchestrator.Initiate(c.Request.Context(), ports.PaymentRequest{
		IdempotencyKey: req.IdempotencyKey,
		UserID:         req.UserID,
		MerchantID:     merchantID.(uuid.UUID),
		Amount:         amount,
		Currency:       req.Currency,
		PaymentMethod:  domain.PaymentMethod(req.PaymentMethod),
		Provider:       req.Provider,
		WebhookURL:     req.WebhookURL,
		Metadata:       req.Metadata,
		CardPAN:        req.CardPAN,
		CardCVV:        req.CardCVV,
		BankAccount:    req.BankAccount,
		BankRouting:    req.BankRouting,
		WalletID:       req.WalletID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, toPaymentResponse(tx))
}

// Status handles GET /api/v1/payments/status/{id}. id is tried first as
// a transaction id, falling back to reference_id.
func (h *PaymentHandler) Status(c *gin.Context) {
	idOrRef := c.Param("id")

	tx, err := h.orchestrator.FetchStatus(c.Request.Context(), idOrRef)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toPaymentResponse(tx))
}

// toPaymentResponse converts domain.Transaction to its wire DTO, never
// exposing the raw card/bank fields or the encrypted provider secret.
func toPaymentResponse(tx *domain.Transaction) dto.PaymentResponse {
	resp := dto.PaymentResponse{
		ID:            tx.ID.String(),
		ReferenceID:   tx.ReferenceID,
		Amount:        tx.Amount.String(),
		Currency:      tx.Currency,
		PaymentMethod: string(tx.PaymentMethod),
		Status:        string(tx.Status),
		FraudScore:    tx.FraudScore.String(),
		ErrorCode:     tx.ErrorCode,
		ErrorMessage:  tx.ErrorMessage,
		CreatedAt:     tx.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if tx.ProcessedAt != nil {
		s := tx.ProcessedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.ProcessedAt = &s
	}
	return resp
}
