package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bukukita/bkk_backend/internal/apperrors"
	portssvc "github.com/bukukita/bkk_backend/internal/core/ports/services"
	"github.com/bukukita/bkk_backend/internal/dto"
	"github.com/bukukita/bkk_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the report routes of a business.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.financialSummary)
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/cash-flow", h.cashFlow)
	}
}

// reportQuery is the parsed form of the shared report query parameters.
type reportQuery struct {
	from    *time.Time
	to      *time.Time
	capital decimal.Decimal
	userID  string
}

// bindReportQuery parses from/to/capital and resolves the caller. It writes
// the error response itself and reports success through the bool.
func bindReportQuery(c *gin.Context) (reportQuery, bool) {
	var q reportQuery
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return q, false
	}

	from, err := parseDateParam(params.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid 'from' date, expected YYYY-MM-DD"})
		return q, false
	}
	to, err := parseDateParam(params.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid 'to' date, expected YYYY-MM-DD"})
		return q, false
	}

	userID, found := middleware.GetUserIDFromContext(c)
	if !found {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return q, false
	}

	q.from = from
	q.to = to
	q.capital = params.Capital
	q.userID = userID
	return q, true
}

func (h *reportingHandler) financialSummary(c *gin.Context) {
	businessID := c.Param("businessID")
	q, ok := bindReportQuery(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.FinancialSummary(c.Request.Context(), businessID, q.from, q.to, q.userID)
	if err != nil {
		h.respondError(c, err, "Failed to compute financial summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *reportingHandler) trialBalance(c *gin.Context) {
	businessID := c.Param("businessID")
	q, ok := bindReportQuery(c)
	if !ok {
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), businessID, q.from, q.to, q.userID)
	if err != nil {
		h.respondError(c, err, "Failed to compute trial balance")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) balanceSheet(c *gin.Context) {
	businessID := c.Param("businessID")
	q, ok := bindReportQuery(c)
	if !ok {
		return
	}

	sheet, err := h.reportingService.BalanceSheet(c.Request.Context(), businessID, q.from, q.to, q.capital, q.userID)
	if err != nil {
		h.respondError(c, err, "Failed to compute balance sheet")
		return
	}
	c.JSON(http.StatusOK, sheet)
}

func (h *reportingHandler) cashFlow(c *gin.Context) {
	businessID := c.Param("businessID")
	q, ok := bindReportQuery(c)
	if !ok {
		return
	}

	flow, err := h.reportingService.CashFlow(c.Request.Context(), businessID, q.from, q.to, q.capital, q.userID)
	if err != nil {
		h.respondError(c, err, "Failed to compute cash flow")
		return
	}
	c.JSON(http.StatusOK, flow)
}

// respondError maps service errors to HTTP status codes.
func (h *reportingHandler) respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
