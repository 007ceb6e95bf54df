package handler

import (
	"strconv"
	"time"

	"payment-orchestrator/internal/adapter/http/dto"
	"payment-orchestrator/internal/adapter/http/middleware"
	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/apperror"
	"payment-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DashboardHandler exposes merchant-facing transaction reporting (the store's
// List/GetStats), out of the orchestrator's hot path.
type DashboardHandler struct {
	reportingSvc ports.ReportingService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(reportingSvc ports.ReportingService) *DashboardHandler {
	return &DashboardHandler{reportingSvc: reportingSvc}
}

// GetStats handles GET /api/v1/dashboard/stats?period=day|week|month|all.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	merchantID, ok := c.Get(middleware.CtxMerchantID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	periodStart := periodStartFor(c.DefaultQuery("period", "all"))

	stats, err := h.reportingSvc.GetStats(c.Request.Context(), merchantID.(uuid.UUID), periodStart)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.DashboardStatsResponse{
		TotalTransactions: stats.TotalTransactions,
		Pending:           stats.Pending,
		Processing:        stats.Processing,
		Successful:        stats.Successful,
		Failed:            stats.Failed,
		Cancelled:         stats.Cancelled,
	})
}

// ListTransactions handles GET /api/v1/transactions?page=&page_size=&status=.
func (h *DashboardHandler) ListTransactions(c *gin.Context) {
	merchantID, ok := c.Get(middleware.CtxMerchantID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	params := ports.TransactionListParams{
		MerchantID: merchantID.(uuid.UUID),
		Page:       page,
		PageSize:   pageSize,
	}
	if status := c.Query("status"); status != "" {
		s := domain.TransactionStatus(status)
		params.Status = &s
	}

	items, total, err := h.reportingSvc.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.TransactionListResponse{
		Items:    make([]dto.PaymentResponse, 0, len(items)),
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	}
	if params.PageSize > 0 {
		resp.TotalPages = int((total + int64(params.PageSize) - 1) / int64(params.PageSize))
	}
	for i := range items {
		resp.Items = append(resp.Items, toPaymentResponse(&items[i]))
	}

	response.OK(c, resp)
}

// periodStartFor maps a coarse period label to a Unix timestamp floor.
// "all" (or anything unrecognized) returns nil: no lower bound.
func periodStartFor(period string) *int64 {
	now := time.Now().UTC()
	var start time.Time
	switch period {
	case "day":
		start = now.AddDate(0, 0, -1)
	case "week":
		start = now.AddDate(0, 0, -7)
	case "month":
		start = now.AddDate(0, -1, 0)
	default:
		return nil
	}
	ts := start.Unix()
	return &ts
}
