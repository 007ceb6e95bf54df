package response

import (
	"errors"
	"net/http"
	"time"

	"payment-orchestrator/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Envelope is the success body: payload plus request correlation fields.
type Envelope struct {
	Data      any    `json:"data"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// ErrorEnvelope is the error body. ErrorCode is machine-readable; the
// message is always client-safe (wrapped causes never serialize).
type ErrorEnvelope struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// OK writes a 200 envelope.
func OK(c *gin.Context, data any) { write(c, http.StatusOK, data) }

// Created writes a 201 envelope.
func Created(c *gin.Context, data any) { write(c, http.StatusCreated, data) }

// Accepted writes a 202 envelope. Payment admission uses this: the
// transaction is durably PENDING but the provider call has not happened
// yet.
func Accepted(c *gin.Context, data any) { write(c, http.StatusAccepted, data) }

func write(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{
		Data:      data,
		RequestID: requestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Error maps err onto the error envelope. An *apperror.AppError anywhere
// in the chain dictates the status and code; anything else collapses to
// an opaque 500.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "SYS_000"
	message := "Internal server error"

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status = appErr.HTTPStatus
		code = appErr.Code
		message = appErr.Message
	}

	c.JSON(status, ErrorEnvelope{
		ErrorCode: code,
		Message:   message,
		RequestID: requestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func requestID(c *gin.Context) string {
	if v, ok := c.Get("request_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return uuid.NewString()
}
