package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bukukita/bkk_backend/internal/apperrors"
	"github.com/bukukita/bkk_backend/internal/core/accounting"
	"github.com/bukukita/bkk_backend/internal/core/domain"
	portssvc "github.com/bukukita/bkk_backend/internal/core/ports/services"
	"github.com/bukukita/bkk_backend/internal/core/services"
	"github.com/bukukita/bkk_backend/internal/dto"
	"github.com/bukukita/bkk_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionService
	accountService     portssvc.AccountService
}

func newTransactionHandler(ts portssvc.TransactionService, as portssvc.AccountService) *transactionHandler {
	return &transactionHandler{transactionService: ts, accountService: as}
}

// RegisterTransactionRoutes registers the transaction routes of a business.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionService, accountService portssvc.AccountService) {
	h := newTransactionHandler(transactionService, accountService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.POST("/quick", h.createQuickTransaction)
		transactions.POST("/validate", h.validateTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.PUT("/:transactionID", h.updateTransaction)
		transactions.DELETE("/:transactionID", h.softDeleteTransaction)
		transactions.POST("/:transactionID/restore", h.restoreTransaction)
		transactions.POST("/:transactionID/reclassify-cogs", h.reclassifyStockToCOGS)
	}
}

// displayCategoryFor derives the "STOCK" label for inventory purchases. The
// stored category stays VAR; only the presentation changes.
func displayCategoryFor(txn *domain.Transaction, accountsByID map[string]domain.Account) string {
	posting, ok := txn.Posting.(domain.DoubleEntryPosting)
	if !ok {
		return ""
	}
	debit, found := accountsByID[posting.DebitAccountID]
	if !found {
		return ""
	}
	if accounting.IsStockTransaction(*txn, &debit) {
		return "STOCK"
	}
	return ""
}

func (h *transactionHandler) chartByID(c *gin.Context, businessID, userID string) (map[string]domain.Account, error) {
	accounts, err := h.accountService.ListAccounts(c.Request.Context(), businessID, userID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Account, len(accounts))
	for _, account := range accounts {
		byID[account.AccountID] = account
	}
	return byID, nil
}

func (h *transactionHandler) createTransaction(c *gin.Context) {
	businessID := c.Param("businessID")

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, result, err := h.transactionService.CreateTransaction(c.Request.Context(), businessID, req, userID)
	h.respondCreateResult(c, businessID, userID, txn, result, err)
}

func (h *transactionHandler) createQuickTransaction(c *gin.Context) {
	businessID := c.Param("businessID")

	var req dto.QuickTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, result, err := h.transactionService.CreateQuickTransaction(c.Request.Context(), businessID, req, userID)
	h.respondCreateResult(c, businessID, userID, txn, result, err)
}

// respondCreateResult renders the shared outcome of both creation paths:
// validation findings come back as data with a 400, a persisted transaction
// with its warnings as a 201.
func (h *transactionHandler) respondCreateResult(c *gin.Context, businessID, userID string, txn *domain.Transaction, result domain.ValidationResult, err error) {
	if err != nil {
		h.respondError(c, err, "Failed to create transaction")
		return
	}
	if !result.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{"validation": result})
		return
	}

	displayCategory := ""
	if byID, chartErr := h.chartByID(c, businessID, userID); chartErr == nil {
		displayCategory = displayCategoryFor(txn, byID)
	}

	c.JSON(http.StatusCreated, gin.H{
		"transaction": dto.ToTransactionResponse(txn, displayCategory),
		"validation":  result,
	})
}

func (h *transactionHandler) validateTransaction(c *gin.Context) {
	businessID := c.Param("businessID")

	var req dto.ValidateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.transactionService.ValidateTransaction(c.Request.Context(), businessID, req, userID)
	if err != nil {
		h.respondError(c, err, "Failed to validate transaction")
		return
	}

	// Always 200: findings are data for inline form rendering.
	c.JSON(http.StatusOK, result)
}

func (h *transactionHandler) listTransactions(c *gin.Context) {
	businessID := c.Param("businessID")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	from, err := parseDateParam(params.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid 'from' date, expected YYYY-MM-DD"})
		return
	}
	to, err := parseDateParam(params.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid 'to' date, expected YYYY-MM-DD"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	transactions, err := h.transactionService.ListTransactions(c.Request.Context(), businessID, from, to, userID)
	if err != nil {
		h.respondError(c, err, "Failed to list transactions")
		return
	}

	byID, err := h.chartByID(c, businessID, userID)
	if err != nil {
		h.respondError(c, err, "Failed to list transactions")
		return
	}

	resp := dto.ListTransactionsResponse{Transactions: make([]dto.TransactionResponse, 0, len(transactions))}
	for i := range transactions {
		resp.Transactions = append(resp.Transactions,
			dto.ToTransactionResponse(&transactions[i], displayCategoryFor(&transactions[i], byID)))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *transactionHandler) getTransaction(c *gin.Context) {
	businessID := c.Param("businessID")
	transactionID := c.Param("transactionID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), businessID, transactionID, userID)
	if err != nil {
		h.respondError(c, err, "Failed to retrieve transaction")
		return
	}

	displayCategory := ""
	if byID, chartErr := h.chartByID(c, businessID, userID); chartErr == nil {
		displayCategory = displayCategoryFor(txn, byID)
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn, displayCategory))
}

func (h *transactionHandler) updateTransaction(c *gin.Context) {
	businessID := c.Param("businessID")
	transactionID := c.Param("transactionID")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, result, err := h.transactionService.UpdateTransaction(c.Request.Context(), businessID, transactionID, req, userID)
	if err != nil {
		h.respondError(c, err, "Failed to update transaction")
		return
	}
	if !result.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{"validation": result})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transaction": dto.ToTransactionResponse(txn, ""),
		"validation":  result,
	})
}

func (h *transactionHandler) softDeleteTransaction(c *gin.Context) {
	businessID := c.Param("businessID")
	transactionID := c.Param("transactionID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.transactionService.SoftDeleteTransaction(c.Request.Context(), businessID, transactionID, userID); err != nil {
		h.respondError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *transactionHandler) restoreTransaction(c *gin.Context) {
	businessID := c.Param("businessID")
	transactionID := c.Param("transactionID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.transactionService.RestoreTransaction(c.Request.Context(), businessID, transactionID, userID); err != nil {
		h.respondError(c, err, "Failed to restore transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *transactionHandler) reclassifyStockToCOGS(c *gin.Context) {
	businessID := c.Param("businessID")
	transactionID := c.Param("transactionID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.transactionService.ReclassifyStockToCOGS(c.Request.Context(), businessID, transactionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotStockTransaction), errors.Is(err, services.ErrNoExpenseAccount):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			h.respondError(c, err, "Failed to reclassify transaction")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn, ""))
}

// respondError maps service errors to HTTP status codes.
func (h *transactionHandler) respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// parseDateParam parses an optional YYYY-MM-DD query parameter.
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
