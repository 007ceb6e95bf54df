package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// HMACSignatureService signs and verifies the canonical request string the
// merchant payment API authenticates with. Outbound webhook deliveries are
// not signed.
type HMACSignatureService struct{}

func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

// Sign returns lowercase-hex HMAC-SHA256(secretKey, payload).
func (s *HMACSignatureService) Sign(secretKey, payload string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares in constant time.
func (s *HMACSignatureService) Verify(secretKey, payload, signature string) bool {
	return hmac.Equal([]byte(s.Sign(secretKey, payload)), []byte(signature))
}

// BuildCanonicalString joins METHOD|PATH|TIMESTAMP|NONCE|BODY. The pipe
// separator is safe because method/path/nonce never contain one and the
// body is the final field.
func (s *HMACSignatureService) BuildCanonicalString(method, path string, timestamp int64, nonce, body string) string {
	return strings.Join([]string{method, path, strconv.FormatInt(timestamp, 10), nonce, body}, "|")
}
