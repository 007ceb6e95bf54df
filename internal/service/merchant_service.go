package service

import (
	"context"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/apperror"

	"github.com/google/uuid"
)

// merchantService covers merchant self-service: profile, webhook URL, and
// credential rotation.
type merchantService struct {
	merchantRepo ports.MerchantRepository
	encSvc       ports.EncryptionService
}

func NewMerchantService(merchantRepo ports.MerchantRepository, encSvc ports.EncryptionService) ports.MerchantManagementService {
	return &merchantService{merchantRepo: merchantRepo, encSvc: encSvc}
}

func (s *merchantService) GetProfile(ctx context.Context, merchantID uuid.UUID) (*ports.MerchantProfile, error) {
	merchant, err := s.load(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	return &ports.MerchantProfile{
		ID:           merchant.ID,
		Username:     merchant.Username,
		MerchantName: merchant.MerchantName,
		WebhookURL:   merchant.WebhookURL,
		Status:       merchant.Status,
		CreatedAt:    merchant.CreatedAt.Format(time.RFC3339),
	}, nil
}

// UpdateWebhookURL sets or clears (nil) the webhook URL stored on the
// merchant profile. Admission does not read it: a transaction's webhook
// target is the webhook_url of its own initiate request.
func (s *merchantService) UpdateWebhookURL(ctx context.Context, merchantID uuid.UUID, webhookURL *string) error {
	merchant, err := s.load(ctx, merchantID)
	if err != nil {
		return err
	}
	merchant.WebhookURL = webhookURL
	merchant.UpdatedAt = time.Now().UTC()

	if err := s.merchantRepo.Update(ctx, merchant); err != nil {
		return apperror.InternalError(err)
	}
	return nil
}

// RotateKeys replaces both credentials. The old pair stops verifying as
// soon as the row commits; the new secret key is only ever shown here.
func (s *merchantService) RotateKeys(ctx context.Context, merchantID uuid.UUID) (*ports.RotateKeysResponse, error) {
	merchant, err := s.load(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	accessKey, secretKey, err := newCredentialPair()
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	secretKeyEnc, err := s.encSvc.Encrypt(secretKey)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(err)
	}

	merchant.AccessKey = accessKey
	merchant.SecretKeyEnc = secretKeyEnc
	merchant.UpdatedAt = time.Now().UTC()

	if err := s.merchantRepo.Update(ctx, merchant); err != nil {
		return nil, apperror.InternalError(err)
	}
	return &ports.RotateKeysResponse{AccessKey: accessKey, SecretKey: secretKey}, nil
}

func (s *merchantService) load(ctx context.Context, merchantID uuid.UUID) (*domain.Merchant, error) {
	merchant, err := s.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if merchant == nil {
		return nil, apperror.ErrNotFound("merchant")
	}
	return merchant, nil
}
