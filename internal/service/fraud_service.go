package service

import (
	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"

	"github.com/shopspring/decimal"
)

var (
	bucketHigh   = decimal.NewFromInt(10000)
	bucketMid    = decimal.NewFromInt(1000)
	bucketLow    = decimal.NewFromInt(100)
	tinyAmount   = decimal.NewFromInt(1)
	hugeAmount   = decimal.NewFromInt(50000)
	scoreOne     = decimal.NewFromInt(1)
	scoreZero    = decimal.Zero
)

// fraudScorer implements ports.FraudScorer: a pure, deterministic
// sum of weighted risk signals, clamped to [0,1]. It holds no store
// handle and performs no I/O, so identical input always yields identical
// output.
type fraudScorer struct {
	enabled   bool
	threshold decimal.Decimal
}

// NewFraudScorer creates a fraud scorer gated by threshold. When enabled
// is false, Score always returns zero (disabled mode).
func NewFraudScorer(enabled bool, threshold float64) ports.FraudScorer {
	return &fraudScorer{enabled: enabled, threshold: decimal.NewFromFloat(threshold)}
}

func (f *fraudScorer) Score(in ports.FraudCheckInput) decimal.Decimal {
	if !f.enabled {
		return scoreZero
	}

	score := decimal.Zero

	switch {
	case in.Amount.GreaterThanOrEqual(bucketHigh):
		score = score.Add(decimal.NewFromFloat(0.40))
	case in.Amount.GreaterThanOrEqual(bucketMid):
		score = score.Add(decimal.NewFromFloat(0.20))
	case in.Amount.GreaterThanOrEqual(bucketLow):
		score = score.Add(decimal.NewFromFloat(0.10))
	}

	switch in.PaymentMethod {
	case domain.PaymentMethodCard:
		score = score.Add(decimal.NewFromFloat(0.10))
	case domain.PaymentMethodWallet:
		score = score.Add(decimal.NewFromFloat(0.05))
	case domain.PaymentMethodBank:
		score = score.Add(decimal.NewFromFloat(0.15))
	}

	if in.PaymentMethod == domain.PaymentMethodCard {
		if !domain.ValidPAN(in.CardPAN) {
			score = score.Add(decimal.NewFromFloat(0.30))
		}
		if !domain.ValidCVV(in.CardCVV) {
			score = score.Add(decimal.NewFromFloat(0.20))
		}
		if domain.KnownTestPANs[in.CardPAN] {
			score = score.Add(decimal.NewFromFloat(0.10))
		}
	}

	if in.Amount.Mod(scoreOne).IsZero() {
		score = score.Add(decimal.NewFromFloat(0.05))
	}
	if in.Amount.LessThanOrEqual(tinyAmount) {
		score = score.Add(decimal.NewFromFloat(0.10))
	}
	if in.Amount.GreaterThanOrEqual(hugeAmount) {
		score = score.Add(decimal.NewFromFloat(0.30))
	}

	if score.GreaterThan(scoreOne) {
		return scoreOne
	}
	if score.LessThan(scoreZero) {
		return scoreZero
	}
	return score
}

func (f *fraudScorer) ShouldBlock(score decimal.Decimal) bool {
	return score.GreaterThanOrEqual(f.threshold)
}
