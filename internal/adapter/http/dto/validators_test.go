package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeTrimsAndEscapes(t *testing.T) {
	req := PaymentRequest{
		Amount:        "  49.99  ",
		Currency:      " USD ",
		PaymentMethod: "CARD",
		CardPAN:       "  4242424242424242 ",
		Provider:      "stripe<script>alert(1)</script>",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "49.99", req.Amount)
	assert.Equal(t, "USD", req.Currency)
	assert.Equal(t, "4242424242424242", req.CardPAN)
	assert.NotContains(t, req.Provider, "<script>")
	assert.Contains(t, req.Provider, "&lt;script&gt;")
}

func TestSanitizeFollowsStringPointers(t *testing.T) {
	url := "\thttps://shop.example/hooks \n"
	req := RegisterRequest{Username: " acme ", Password: "pw-123456", MerchantName: "Acme", WebhookURL: &url}
	SanitizeStruct(&req)

	assert.Equal(t, "acme", req.Username)
	require.NotNil(t, req.WebhookURL)
	assert.Equal(t, "https://shop.example/hooks", *req.WebhookURL)

	req.WebhookURL = nil
	SanitizeStruct(&req) // nil pointer fields are skipped
	assert.Nil(t, req.WebhookURL)
}

func TestSanitizeIgnoresNonStructInput(t *testing.T) {
	SanitizeStruct("scalar")
	SanitizeStruct(nil)
	n := 7
	SanitizeStruct(&n)
}

func TestSafeIDPattern(t *testing.T) {
	valid := []string{"TXN1722500000ab12cd34", "order_42", "a.b-c", "K1"}
	for _, s := range valid {
		assert.True(t, safeIDRe.MatchString(s), "should accept %q", s)
	}

	invalid := []string{"", "two words", "semi;colon", "angle<id>", "line\nbreak", "ref/../etc"}
	for _, s := range invalid {
		assert.False(t, safeIDRe.MatchString(s), "should reject %q", s)
	}
}

func TestSafeURLAcceptsOnlyHTTP(t *testing.T) {
	cases := map[string]bool{
		"https://shop.example/hooks": true,
		"http://localhost:9999/cb":   true,
		"ftp://shop.example/hooks":   false,
		"javascript:alert(1)":        false,
		"not a url":                  false,
	}
	for raw, want := range cases {
		assert.Equal(t, want, validHTTPURL(raw), "url=%q", raw)
	}
}
