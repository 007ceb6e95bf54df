package middleware

import (
	"encoding/json"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates middleware that records successful merchant-facing
// write operations (registration, login, key management) through
// ports.AuditService. It never touches the transactional audit trail the
// orchestrator writes directly through AuditRepository.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		switch c.Request.Method {
		case "GET", "HEAD", "OPTIONS":
			return
		}

		eventType := mapPathToEventType(c.Request.URL.Path, c.Request.Method)
		if eventType == "" {
			return
		}

		var userID *string
		if mid, exists := c.Get(CtxMerchantID); exists {
			if id, ok := mid.(uuid.UUID); ok {
				s := id.String()
				userID = &s
			}
		}

		data, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		_ = auditSvc.Record(c.Request.Context(), &domain.AuditLog{
			ID:        uuid.New(),
			EventType: eventType,
			EventData: data,
			UserID:    userID,
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			CreatedAt: time.Now().UTC(),
		})
	}
}

func mapPathToEventType(path, method string) domain.AuditEventType {
	switch {
	case path == "/api/v1/auth/register" && method == "POST":
		return domain.AuditMerchantRegistered
	case path == "/api/v1/auth/login" && method == "POST":
		return domain.AuditMerchantLogin
	case path == "/api/v1/merchants/me/webhook" && method == "PUT":
		return domain.AuditWebhookURLUpdated
	case path == "/api/v1/merchants/me/rotate-keys" && method == "POST":
		return domain.AuditKeysRotated
	}
	return ""
}
