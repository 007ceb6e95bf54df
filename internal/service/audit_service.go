package service

import (
	"context"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"

	"github.com/rs/zerolog"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService creates a new audit service. Records the HTTP-layer
// events (registration, login, key rotation) that sit outside the
// orchestrator's own AuditRepository writes.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Record persists an audit entry and mirrors it to the structured logger.
func (s *auditService) Record(ctx context.Context, entry *domain.AuditLog) error {
	event := s.log.Info().Str("event_type", string(entry.EventType)).Str("ip", entry.IPAddress)
	if entry.TransactionID != nil {
		event = event.Str("transaction_id", entry.TransactionID.String())
	}
	event.Msg("audit")

	if err := s.repo.Append(ctx, entry); err != nil {
		s.log.Warn().Err(err).Str("event_type", string(entry.EventType)).Msg("failed to persist audit log")
		return err
	}
	return nil
}
