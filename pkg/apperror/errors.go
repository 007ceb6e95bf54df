package apperror

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned in the error envelope. Grouped by
// concern: request signing (SEC), payment admission (PAY), merchant
// sessions (AUTH), throttling (RATE), infrastructure (SYS).
const (
	CodeInvalidAccessKey = "SEC_001"
	CodeInvalidSignature = "SEC_002"
	CodeStaleTimestamp   = "SEC_003"
	CodeNonceReplayed    = "SEC_004"

	CodeValidation = "PAY_002"
	CodeNotFound   = "PAY_004"

	CodeInvalidCredentials = "AUTH_001"
	CodeUsernameTaken      = "AUTH_002"
	CodeInvalidToken       = "AUTH_003"
	CodeMerchantSuspended  = "AUTH_004"

	CodeRateLimited = "RATE_001"

	CodeDatabase   = "SYS_001"
	CodeEncryption = "SYS_003"
	CodeTransient  = "SYS_004"
)

// AppError carries a machine code, a client-safe message, and the HTTP
// status it maps to. The wrapped Err stays server-side only.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// New builds an AppError with no wrapped cause.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// Wrap builds an AppError around an internal cause.
func Wrap(code, message string, httpStatus int, err error) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

// Request-signing failures on the HMAC-authenticated payment surface.

func ErrInvalidAccessKey() *AppError {
	return New(CodeInvalidAccessKey, "Unknown access key", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New(CodeInvalidSignature, "Request signature mismatch", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New(CodeStaleTimestamp, "Request timestamp outside the accepted window", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New(CodeNonceReplayed, "Nonce already consumed", http.StatusForbidden)
}

// Admission failures. Validation errors surface as 400 with no row
// persisted. A fraud block is not an AppError at all: it is absorbed into
// the transaction as a FAILED row and returned with 202.

func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// Merchant session failures.

func ErrInvalidCredentials() *AppError {
	return New(CodeInvalidCredentials, "Invalid username or password", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New(CodeUsernameTaken, "Username already registered", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired session token", http.StatusUnauthorized)
}

func ErrMerchantSuspended() *AppError {
	return New(CodeMerchantSuspended, "Merchant account suspended", http.StatusForbidden)
}

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimited, "Too many requests", http.StatusTooManyRequests)
}

// Infrastructure failures. ErrTransientInfra marks an idempotency-gate
// outage during admission, which Initiate surfaces as 503. Storage
// failures in Process come back as ErrDatabaseError, and the bus consumer
// returns them upward so redelivery retries the same transaction.

func ErrDatabaseError(err error) *AppError {
	return Wrap(CodeDatabase, "Storage failure", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap(CodeEncryption, "Encryption failure", http.StatusInternalServerError, err)
}

func ErrTransientInfra(err error) *AppError {
	return Wrap(CodeTransient, "Upstream dependency unavailable", http.StatusServiceUnavailable, err)
}

// InternalError is the catch-all for unexpected server-side failures.
func InternalError(err error) *AppError {
	return Wrap(CodeDatabase, "Internal server error", http.StatusInternalServerError, err)
}
