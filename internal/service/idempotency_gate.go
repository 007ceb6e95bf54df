package service

import (
	"context"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// idempotencyGate composes the fast cache and the durable store to
// guarantee at most one transaction row per non-null idempotency key.
// The store is authoritative; the cache is best-effort.
type idempotencyGate struct {
	cache   ports.IdempotencyCache
	txRepo  ports.TransactionRepository
	ttl     time.Duration
	log     zerolog.Logger
}

// NewIdempotencyGate creates the Idempotency Gate.
func NewIdempotencyGate(cache ports.IdempotencyCache, txRepo ports.TransactionRepository, ttl time.Duration, log zerolog.Logger) ports.IdempotencyGate {
	return &idempotencyGate{cache: cache, txRepo: txRepo, ttl: ttl, log: log}
}

// Lookup consults the cache first; on miss, falls through to the store
// and repopulates the cache on a store hit.
func (g *idempotencyGate) Lookup(ctx context.Context, key string) (*domain.Transaction, error) {
	txIDStr, err := g.cache.Lookup(ctx, key)
	if err != nil {
		g.log.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency cache lookup failed, falling through to store")
	} else if txIDStr != "" {
		txID, parseErr := uuid.Parse(txIDStr)
		if parseErr == nil {
			tx, getErr := g.txRepo.GetByID(ctx, txID)
			if getErr == nil && tx != nil {
				return tx, nil
			}
		}
	}

	tx, err := g.txRepo.GetByIdempotencyKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, nil
	}

	if _, err := g.cache.Reserve(ctx, key, tx.ID.String(), g.ttl); err != nil {
		g.log.Warn().Err(err).Str("idempotency_key", key).Msg("failed to repopulate idempotency cache")
	}
	return tx, nil
}

// Reserve atomically claims key for txID in the fast cache. A false
// result (no error) means another caller already won the race; the
// caller must re-run Lookup rather than treat this as a failure.
func (g *idempotencyGate) Reserve(ctx context.Context, key string, txID uuid.UUID) (bool, error) {
	ok, err := g.cache.Reserve(ctx, key, txID.String(), g.ttl)
	if err != nil {
		// Cache unavailable: let the caller proceed to the store insert,
		// whose UNIQUE constraint is the fallback arbiter.
		g.log.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency cache reserve failed, deferring to store constraint")
		return true, nil
	}
	return ok, nil
}

// Release removes a reservation. Only called on abort-before-insert;
// never on a failure path after the row exists.
func (g *idempotencyGate) Release(ctx context.Context, key string) {
	if err := g.cache.Release(ctx, key); err != nil {
		g.log.Warn().Err(err).Str("idempotency_key", key).Msg("failed to release idempotency reservation")
	}
}

// Generate returns a fresh random key for callers that omit one.
func (g *idempotencyGate) Generate() (string, error) {
	return domain.GenerateIdempotencyKey()
}
