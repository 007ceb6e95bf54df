package handler

import (
	"payment-orchestrator/internal/adapter/http/dto"
	"payment-orchestrator/internal/adapter/http/middleware"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/apperror"
	"payment-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MerchantHandler serves the JWT-guarded merchant self-service routes.
type MerchantHandler struct {
	merchantSvc ports.MerchantManagementService
}

func NewMerchantHandler(merchantSvc ports.MerchantManagementService) *MerchantHandler {
	return &MerchantHandler{merchantSvc: merchantSvc}
}

// authedMerchantID pulls the merchant identity the JWT middleware stored.
func authedMerchantID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxMerchantID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	return v.(uuid.UUID), true
}

// GetProfile returns the authenticated merchant's account view.
func (h *MerchantHandler) GetProfile(c *gin.Context) {
	merchantID, ok := authedMerchantID(c)
	if !ok {
		return
	}

	profile, err := h.merchantSvc.GetProfile(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"id":            profile.ID.String(),
		"username":      profile.Username,
		"merchant_name": profile.MerchantName,
		"webhook_url":   profile.WebhookURL,
		"status":        string(profile.Status),
		"created_at":    profile.CreatedAt,
	})
}

// UpdateWebhookURL sets or clears the webhook URL on the merchant
// profile. Transaction webhooks go to the webhook_url given on each
// initiate request, not to this URL.
func (h *MerchantHandler) UpdateWebhookURL(c *gin.Context) {
	merchantID, ok := authedMerchantID(c)
	if !ok {
		return
	}

	var req dto.UpdateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.merchantSvc.UpdateWebhookURL(c.Request.Context(), merchantID, req.WebhookURL); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"message": "webhook URL updated"})
}

// RotateKeys replaces the merchant's credential pair and returns the new
// secret exactly once.
func (h *MerchantHandler) RotateKeys(c *gin.Context) {
	merchantID, ok := authedMerchantID(c)
	if !ok {
		return
	}

	result, err := h.merchantSvc.RotateKeys(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{
		"access_key": result.AccessKey,
		"secret_key": result.SecretKey,
	})
}
