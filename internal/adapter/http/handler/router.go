package handler

import (
	"payment-orchestrator/internal/adapter/http/middleware"
	redisStore "payment-orchestrator/internal/adapter/storage/redis"
	"payment-orchestrator/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps carries everything SetupRouter wires. Nil-able fields switch
// their feature off (rate limiting, merchant self-service, audit trail),
// which the tests use to exercise routes in isolation.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	Orchestrator   ports.PaymentOrchestrator
	ReportingSvc   ports.ReportingService
	MerchantRepo   ports.MerchantRepository
	EncSvc         ports.EncryptionService
	SigSvc         ports.SignatureService
	NonceStore     ports.NonceStore
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore
	HealthCheckers []ports.HealthChecker
	MerchantSvc    ports.MerchantManagementService
	AuditSvc       ports.AuditService
	Logger         zerolog.Logger
}

// SetupRouter builds the gin engine. Three authentication zones: public
// (register/login/health/swagger), HMAC-signed (the merchant payment API
// surface), and JWT (dashboard + account management).
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20))
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	swagger.GET("", SwaggerUI)
	swagger.GET("/spec", SwaggerSpec)

	rules := middleware.DefaultRateLimitRules()
	throttle := func(group string) gin.HandlerFunc {
		rule, known := rules[group]
		if deps.RateLimitStore == nil || !known {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	auth.POST("/register", throttle("auth_register"), authHandler.Register)
	auth.POST("/login", throttle("auth_login"), authHandler.Login)

	paymentHandler := NewPaymentHandler(deps.Orchestrator)
	hmacAuth := middleware.HMACAuth(deps.MerchantRepo, deps.EncSvc, deps.SigSvc, deps.NonceStore, deps.Logger)
	payments := v1.Group("/payments", hmacAuth)
	payments.POST("/initiate", throttle("payments_initiate"), paymentHandler.Initiate)
	payments.GET("/status/:id", throttle("payments_status"), paymentHandler.Status)

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	dashboardHandler := NewDashboardHandler(deps.ReportingSvc)
	v1.GET("/dashboard/stats", jwtAuth, throttle("dashboard"), dashboardHandler.GetStats)
	v1.GET("/transactions", jwtAuth, throttle("dashboard"), dashboardHandler.ListTransactions)

	if deps.MerchantSvc != nil {
		merchantHandler := NewMerchantHandler(deps.MerchantSvc)
		me := v1.Group("/merchants/me", jwtAuth)
		me.GET("", throttle("dashboard"), merchantHandler.GetProfile)
		me.PUT("/webhook", throttle("dashboard"), merchantHandler.UpdateWebhookURL)
		me.POST("/rotate-keys", throttle("dashboard"), merchantHandler.RotateKeys)
	}

	return r
}
