package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/apperror"
	"payment-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Headers carried on HMAC-signed merchant requests.
const (
	HeaderAccessKey = "X-Merchant-Access-Key"
	HeaderSignature = "X-Signature"
	HeaderTimestamp = "X-Timestamp"
	HeaderNonce     = "X-Nonce"
)

// Gin context keys set after authentication.
const (
	CtxMerchantID  = "merchant_id"
	CtxAccessKey   = "access_key"
	CtxMerchantKey = "merchant"
)

const (
	// A signed request older or newer than this is rejected outright; the
	// nonce TTL only has to cover the same window plus clock skew.
	maxTimestampDrift = 60 * time.Second
	nonceTTL          = 120 * time.Second
)

func abortWith(c *gin.Context, err error) {
	response.Error(c, err)
	c.Abort()
}

// HMACAuth authenticates merchant payment requests: timestamp window,
// per-merchant nonce replay check, then signature over the canonical
// string METHOD|PATH|TIMESTAMP|NONCE|BODY.
func HMACAuth(
	merchantRepo ports.MerchantRepository,
	encSvc ports.EncryptionService,
	sigSvc ports.SignatureService,
	nonceStore ports.NonceStore,
	log zerolog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessKey := c.GetHeader(HeaderAccessKey)
		signature := c.GetHeader(HeaderSignature)
		nonce := c.GetHeader(HeaderNonce)
		tsHeader := c.GetHeader(HeaderTimestamp)
		if accessKey == "" || signature == "" || nonce == "" || tsHeader == "" {
			abortWith(c, apperror.ErrInvalidAccessKey())
			return
		}

		timestamp, err := strconv.ParseInt(tsHeader, 10, 64)
		if err != nil || outsideDrift(timestamp) {
			abortWith(c, apperror.ErrTimestampExpired())
			return
		}

		merchant, err := lookupActiveMerchant(c, merchantRepo, accessKey)
		if err != nil {
			abortWith(c, err)
			return
		}

		fresh, err := nonceStore.CheckAndSet(c.Request.Context(), merchant.ID.String(), nonce, nonceTTL)
		if err != nil {
			// A down nonce store degrades to timestamp-window protection
			// only; refusing all traffic would be worse.
			log.Warn().Err(err).Msg("nonce store unavailable, skipping replay check")
		} else if !fresh {
			abortWith(c, apperror.ErrNonceUsed())
			return
		}

		secretKey, err := encSvc.Decrypt(merchant.SecretKeyEnc)
		if err != nil {
			log.Error().Err(err).Str("merchant_id", merchant.ID.String()).Msg("cannot unseal merchant secret key")
			abortWith(c, apperror.InternalError(err))
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			abortWith(c, apperror.Validation("unreadable request body"))
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		canonical := sigSvc.BuildCanonicalString(c.Request.Method, c.Request.URL.Path, timestamp, nonce, string(body))
		if !sigSvc.Verify(secretKey, canonical, signature) {
			abortWith(c, apperror.ErrInvalidSignature())
			return
		}

		c.Set(CtxMerchantID, merchant.ID)
		c.Set(CtxAccessKey, merchant.AccessKey)
		c.Set(CtxMerchantKey, merchant)
		c.Next()
	}
}

func outsideDrift(timestamp int64) bool {
	delta := time.Now().Unix() - timestamp
	if delta < 0 {
		delta = -delta
	}
	return delta > int64(maxTimestampDrift.Seconds())
}

func lookupActiveMerchant(c *gin.Context, repo ports.MerchantRepository, accessKey string) (*domain.Merchant, error) {
	merchant, err := repo.GetByAccessKey(c.Request.Context(), accessKey)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if merchant == nil {
		return nil, apperror.ErrInvalidAccessKey()
	}
	if !merchant.IsActive() {
		return nil, apperror.ErrMerchantSuspended()
	}
	return merchant, nil
}

// JWTAuth guards the dashboard routes with a Bearer session token.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			abortWith(c, apperror.ErrInvalidToken())
			return
		}

		claims, err := tokenSvc.Validate(token)
		if err != nil {
			abortWith(c, apperror.ErrInvalidToken())
			return
		}

		c.Set(CtxMerchantID, claims.MerchantID)
		c.Set(CtxAccessKey, claims.AccessKey)
		c.Next()
	}
}

// RequestLogger emits one structured line per request, levelled by the
// response status.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		evt := log.Info()
		switch {
		case status >= http.StatusInternalServerError:
			evt = log.Error()
		case status >= http.StatusBadRequest:
			evt = log.Warn()
		}
		evt.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery converts a handler panic into a 500 without killing the worker.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": apperror.CodeDatabase,
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
