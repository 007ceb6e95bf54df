package service

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAESKey = "6368616e676520746869732070617373776f726420746f206120736563726574"

func TestEncryptionKeyValidation(t *testing.T) {
	cases := []struct {
		name string
		key  string
	}{
		{"not hex", "zz"},
		{"too short", "abcd"},
		{"31 bytes", testAESKey[:62]},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAESEncryptionService(tc.key)
			assert.Error(t, err)
		})
	}

	_, err := NewAESEncryptionService(testAESKey)
	assert.NoError(t, err)
}

func TestEncryptRoundTrip(t *testing.T) {
	svc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)

	for _, plaintext := range []string{"", "pi_3MtwBwLkdIwHu7ix28a3tqPa_secret_YrKJUKribcBjcG8HVhfZluoGH", "sk_live_abc"} {
		sealed, err := svc.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, sealed)

		_, err = base64.StdEncoding.DecodeString(sealed)
		require.NoError(t, err, "ciphertext must be base64")

		opened, err := svc.Decrypt(sealed)
		require.NoError(t, err)
		assert.Equal(t, plaintext, opened)
	}
}

func TestEncryptNonceIsRandom(t *testing.T) {
	svc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)

	a, err := svc.Encrypt("same input")
	require.NoError(t, err)
	b, err := svc.Encrypt("same input")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "a fresh nonce must make repeated ciphertexts differ")
}

func TestDecryptRejectsTampering(t *testing.T) {
	svc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)

	sealed, err := svc.Encrypt("client_secret")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(sealed)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0x01

	_, err = svc.Decrypt(base64.StdEncoding.EncodeToString(raw))
	assert.Error(t, err, "GCM must refuse a flipped ciphertext bit")
}

func TestDecryptRejectsWrongKey(t *testing.T) {
	svcA, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)
	svcB, err := NewAESEncryptionService("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	require.NoError(t, err)

	sealed, err := svcA.Encrypt("payload")
	require.NoError(t, err)

	_, err = svcB.Decrypt(sealed)
	assert.Error(t, err)
}

func TestDecryptRejectsGarbage(t *testing.T) {
	svc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)

	for _, input := range []string{"!!not base64!!", "YWJj"} { // second decodes to 3 bytes, shorter than a nonce
		_, err := svc.Decrypt(input)
		assert.Error(t, err, "input %q", input)
	}
}
