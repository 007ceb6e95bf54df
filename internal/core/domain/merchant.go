package domain

import (
	"time"

	"github.com/google/uuid"
)

// MerchantStatus gates whether a merchant may sign requests or log in.
type MerchantStatus string

const (
	MerchantStatusActive      MerchantStatus = "ACTIVE"
	MerchantStatusSuspended   MerchantStatus = "SUSPENDED"
	MerchantStatusDeactivated MerchantStatus = "DEACTIVATED"
)

// Merchant is an account that owns transactions. PasswordHash and the
// sealed secret key never serialize.
type Merchant struct {
	ID           uuid.UUID      `json:"id"`
	Username     string         `json:"username"`
	PasswordHash string         `json:"-"`
	MerchantName string         `json:"merchant_name"`
	AccessKey    string         `json:"access_key"`
	SecretKeyEnc string         `json:"-"`
	WebhookURL   *string        `json:"webhook_url,omitempty"`
	Status       MerchantStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// IsActive reports whether the account may authenticate.
func (m *Merchant) IsActive() bool { return m.Status == MerchantStatusActive }
