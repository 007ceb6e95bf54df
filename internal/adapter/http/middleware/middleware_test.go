package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/internal/core/ports/mocks"
	"payment-orchestrator/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type hmacFixture struct {
	repo   *mocks.MockMerchantRepository
	enc    *mocks.MockEncryptionService
	sig    *mocks.MockSignatureService
	nonces *mocks.MockNonceStore
	router *gin.Engine
	hitIDs []uuid.UUID
}

func newHMACFixture(t *testing.T) *hmacFixture {
	ctrl := gomock.NewController(t)
	f := &hmacFixture{
		repo:   mocks.NewMockMerchantRepository(ctrl),
		enc:    mocks.NewMockEncryptionService(ctrl),
		sig:    mocks.NewMockSignatureService(ctrl),
		nonces: mocks.NewMockNonceStore(ctrl),
	}
	f.router = gin.New()
	f.router.POST("/pay", HMACAuth(f.repo, f.enc, f.sig, f.nonces, zerolog.Nop()), func(c *gin.Context) {
		if id, ok := c.Get(CtxMerchantID); ok {
			f.hitIDs = append(f.hitIDs, id.(uuid.UUID))
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return f
}

func signedRequest(body, accessKey, signature, nonce string, ts int64) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/pay", strings.NewReader(body))
	req.Header.Set(HeaderAccessKey, accessKey)
	req.Header.Set(HeaderSignature, signature)
	req.Header.Set(HeaderNonce, nonce)
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(ts, 10))
	return req
}

func TestHMACRejectsUnsignedRequest(t *testing.T) {
	f := newHMACFixture(t)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/pay", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, f.hitIDs)
}

func TestHMACRejectsStaleTimestamp(t *testing.T) {
	f := newHMACFixture(t)

	for _, ts := range []int64{
		time.Now().Add(-2 * time.Minute).Unix(), // too old
		time.Now().Add(2 * time.Minute).Unix(),  // too far ahead
	} {
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, signedRequest("", "ak", "sig", "n", ts))
		assert.Equal(t, http.StatusForbidden, w.Code)
	}
}

func TestHMACRejectsUnknownAccessKey(t *testing.T) {
	f := newHMACFixture(t)
	f.repo.EXPECT().GetByAccessKey(gomock.Any(), "ak_ghost").Return(nil, nil)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, signedRequest("", "ak_ghost", "sig", "n", time.Now().Unix()))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHMACRejectsSuspendedMerchant(t *testing.T) {
	f := newHMACFixture(t)
	f.repo.EXPECT().GetByAccessKey(gomock.Any(), "ak_frozen").Return(&domain.Merchant{
		ID:     uuid.New(),
		Status: domain.MerchantStatusSuspended,
	}, nil)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, signedRequest("", "ak_frozen", "sig", "n", time.Now().Unix()))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHMACRejectsReplayedNonce(t *testing.T) {
	f := newHMACFixture(t)
	merchantID := uuid.New()
	f.repo.EXPECT().GetByAccessKey(gomock.Any(), "ak_1").Return(&domain.Merchant{
		ID:     merchantID,
		Status: domain.MerchantStatusActive,
	}, nil)
	f.nonces.EXPECT().CheckAndSet(gomock.Any(), merchantID.String(), "seen", nonceTTL).Return(false, nil)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, signedRequest("", "ak_1", "sig", "seen", time.Now().Unix()))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHMACAcceptsValidSignature(t *testing.T) {
	f := newHMACFixture(t)
	merchantID := uuid.New()
	ts := time.Now().Unix()
	body := `{"amount":"49.99"}`

	f.repo.EXPECT().GetByAccessKey(gomock.Any(), "ak_ok").Return(&domain.Merchant{
		ID:           merchantID,
		AccessKey:    "ak_ok",
		SecretKeyEnc: "sealed",
		Status:       domain.MerchantStatusActive,
	}, nil)
	f.nonces.EXPECT().CheckAndSet(gomock.Any(), merchantID.String(), "n-1", nonceTTL).Return(true, nil)
	f.enc.EXPECT().Decrypt("sealed").Return("sk_plain", nil)
	f.sig.EXPECT().BuildCanonicalString("POST", "/pay", ts, "n-1", body).Return("canon")
	f.sig.EXPECT().Verify("sk_plain", "canon", "good-sig").Return(true)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, signedRequest(body, "ak_ok", "good-sig", "n-1", ts))

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, f.hitIDs, 1)
	assert.Equal(t, merchantID, f.hitIDs[0])
}

func TestHMACRejectsBadSignature(t *testing.T) {
	f := newHMACFixture(t)
	merchantID := uuid.New()
	ts := time.Now().Unix()

	f.repo.EXPECT().GetByAccessKey(gomock.Any(), "ak_ok").Return(&domain.Merchant{
		ID:           merchantID,
		Status:       domain.MerchantStatusActive,
		SecretKeyEnc: "sealed",
	}, nil)
	f.nonces.EXPECT().CheckAndSet(gomock.Any(), merchantID.String(), "n-2", nonceTTL).Return(true, nil)
	f.enc.EXPECT().Decrypt("sealed").Return("sk_plain", nil)
	f.sig.EXPECT().BuildCanonicalString("POST", "/pay", ts, "n-2", "").Return("canon")
	f.sig.EXPECT().Verify("sk_plain", "canon", "forged").Return(false)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, signedRequest("", "ak_ok", "forged", "n-2", ts))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func jwtRouter(tokenSvc ports.TokenService, captured *uuid.UUID) *gin.Engine {
	r := gin.New()
	r.GET("/dash", JWTAuth(tokenSvc, zerolog.Nop()), func(c *gin.Context) {
		if id, ok := c.Get(CtxMerchantID); ok {
			*captured = id.(uuid.UUID)
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestJWTRejectsMissingOrMalformedHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	var captured uuid.UUID
	router := jwtRouter(tokenSvc, &captured)

	for _, header := range []string{"", "Basic abc", "Bearer ", "token-without-scheme"} {
		req := httptest.NewRequest(http.MethodGet, "/dash", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header=%q", header)
	}
}

func TestJWTValidatesAndExposesClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	merchantID := uuid.New()
	tokenSvc.EXPECT().Validate("tok").Return(&ports.TokenClaims{MerchantID: merchantID, AccessKey: "ak"}, nil)

	var captured uuid.UUID
	router := jwtRouter(tokenSvc, &captured)

	req := httptest.NewRequest(http.MethodGet, "/dash", nil)
	req.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, merchantID, captured)
}

func TestJWTRejectsInvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate("bad").Return(nil, assert.AnError)

	var captured uuid.UUID
	router := jwtRouter(tokenSvc, &captured)

	req := httptest.NewRequest(http.MethodGet, "/dash", nil)
	req.Header.Set("Authorization", "Bearer bad")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecoveryTurnsPanicInto500(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(zerolog.Nop()))
	router.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apperror.CodeDatabase, body["error_code"])
}
