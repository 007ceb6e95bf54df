package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "payment-orchestrator/internal/adapter/storage/redis"
	"payment-orchestrator/pkg/apperror"
	"payment-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule is a per-endpoint-group budget.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the budgets per endpoint group. Initiate
// and status are merchant API traffic; the rest guard the dashboard and
// account surface.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"payments_initiate": {Limit: 100, Window: time.Minute},
		"payments_status":   {Limit: 300, Window: time.Minute},
		"auth_login":        {Limit: 10, Window: time.Minute},
		"auth_register":     {Limit: 5, Window: time.Hour},
		"dashboard":         {Limit: 60, Window: time.Minute},
	}
}

// RateLimiter enforces rule for group, keyed by merchant identity when
// known and client IP otherwise. A failing limiter store fails open.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateLimitSubject(c) + ":" + group

		res, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limiter degraded, admitting request")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(res.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt, 10))

		if !res.Allowed {
			retryAfter := res.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}
		c.Next()
	}
}

func rateLimitSubject(c *gin.Context) string {
	if ak := c.GetHeader(HeaderAccessKey); ak != "" {
		return ak
	}
	if id, ok := c.Get(CtxMerchantID); ok {
		return fmt.Sprintf("%v", id)
	}
	return c.ClientIP()
}
