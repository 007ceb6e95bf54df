package dto

import "encoding/json"

// RegisterRequest is the request body for merchant registration.
type RegisterRequest struct {
	Username     string  `json:"username" binding:"required,min=3,max=50"`
	Password     string  `json:"password" binding:"required,min=8,max=128"`
	MerchantName string  `json:"merchant_name" binding:"required,min=1,max=100"`
	WebhookURL   *string `json:"webhook_url,omitempty" binding:"omitempty,safe_url"`
}

// LoginRequest is the request body for merchant login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	MerchantID string `json:"merchant_id"`
	AccessKey  string `json:"access_key"`
	SecretKey  string `json:"secret_key"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// UpdateWebhookRequest updates the merchant's webhook URL.
type UpdateWebhookRequest struct {
	WebhookURL *string `json:"webhook_url" binding:"omitempty,safe_url"`
}

// PaymentRequest is the request body for POST /api/v1/payments/initiate
// Amount is a fixed-point decimal string;
// method-specific fields are validated by the orchestrator, not here, so
// the 400 taxonomy stays centralized in one place.
type PaymentRequest struct {
	IdempotencyKey *string         `json:"idempotency_key,omitempty" binding:"omitempty,max=255"`
	UserID         *string         `json:"user_id,omitempty"`
	Amount         string          `json:"amount" binding:"required"`
	Currency       string          `json:"currency" binding:"required,len=3"`
	PaymentMethod  string          `json:"payment_method" binding:"required,oneof=CARD WALLET BANK"`
	Provider       string          `json:"provider,omitempty"`
	WebhookURL     *string         `json:"webhook_url,omitempty" binding:"omitempty,safe_url"`
	Metadata       json.RawMessage `json:"metadata,omitempty"`

	// Method-specific fields; echoed to no response and never persisted raw.
	CardPAN     string `json:"card_pan,omitempty"`
	CardCVV     string `json:"card_cvv,omitempty"`
	BankAccount string `json:"bank_account,omitempty"`
	BankRouting string `json:"bank_routing,omitempty"`
	WalletID    string `json:"wallet_id,omitempty"`
}

// PaymentResponse is the response body for both the initiate and status
// endpoints: a snapshot of the transaction, never the raw
// card/bank fields.
type PaymentResponse struct {
	ID             string  `json:"id"`
	ReferenceID    string  `json:"reference_id"`
	Amount         string  `json:"amount"`
	Currency       string  `json:"currency"`
	PaymentMethod  string  `json:"payment_method"`
	Status         string  `json:"status"`
	FraudScore     string  `json:"fraud_score"`
	ErrorCode      *string `json:"error_code,omitempty"`
	ErrorMessage   *string `json:"error_message,omitempty"`
	CreatedAt      string  `json:"created_at"`
	ProcessedAt    *string `json:"processed_at,omitempty"`
}

// DashboardStatsResponse is the response for dashboard statistics,
// mirroring ports.TransactionStats.
type DashboardStatsResponse struct {
	TotalTransactions int64 `json:"total_transactions"`
	Pending           int64 `json:"pending"`
	Processing        int64 `json:"processing"`
	Successful        int64 `json:"successful"`
	Failed            int64 `json:"failed"`
	Cancelled         int64 `json:"cancelled"`
}

// TransactionListResponse wraps a paginated transaction list.
type TransactionListResponse struct {
	Items      []PaymentResponse `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}
