package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionSecret = "unit-test-session-signing-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := NewJWTTokenService(sessionSecret, time.Hour, "payment-gateway")
	merchantID := uuid.New()

	token, expiresAt, err := svc.Generate(merchantID, "ak_live_77")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, merchantID, claims.MerchantID)
	assert.Equal(t, "ak_live_77", claims.AccessKey)
}

func TestSessionTokenExpiryEnforced(t *testing.T) {
	svc := NewJWTTokenService(sessionSecret, -time.Minute, "payment-gateway")

	token, _, err := svc.Generate(uuid.New(), "ak")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestSessionTokenSecretMismatch(t *testing.T) {
	issuer := NewJWTTokenService("secret-one", time.Hour, "gw")
	verifier := NewJWTTokenService("secret-two", time.Hour, "gw")

	token, _, err := issuer.Generate(uuid.New(), "ak")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestSessionTokenRejectsJunk(t *testing.T) {
	svc := NewJWTTokenService(sessionSecret, time.Hour, "gw")

	for _, token := range []string{"", "a.b.c", "Bearer whatever"} {
		_, err := svc.Validate(token)
		assert.Error(t, err, "token=%q", token)
	}
}
