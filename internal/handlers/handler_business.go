package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bukukita/bkk_backend/internal/core/ports/services"
	"github.com/bukukita/bkk_backend/internal/dto"
	"github.com/bukukita/bkk_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// businessHandler handles HTTP requests related to businesses.
type businessHandler struct {
	businessService portssvc.BusinessService
}

func newBusinessHandler(bs portssvc.BusinessService) *businessHandler {
	return &businessHandler{businessService: bs}
}

// registerBusinessRoutes registers routes related to businesses.
func registerBusinessRoutes(rg *gin.RouterGroup, businessService portssvc.BusinessService) {
	h := newBusinessHandler(businessService)

	businesses := rg.Group("/businesses")
	{
		businesses.POST("", h.createBusiness)
		businesses.GET("", h.listBusinesses)
	}
}

// createBusiness creates a business and seeds its system chart of accounts.
func (h *businessHandler) createBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	business, err := h.businessService.CreateBusiness(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create business", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create business"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToBusinessResponse(business))
}

// listBusinesses lists the businesses the caller is a member of.
func (h *businessHandler) listBusinesses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	businesses, err := h.businessService.ListBusinessesForUser(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list businesses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list businesses"})
		return
	}

	resp := dto.ListBusinessesResponse{Businesses: make([]dto.BusinessResponse, 0, len(businesses))}
	for i := range businesses {
		resp.Businesses = append(resp.Businesses, dto.ToBusinessResponse(&businesses[i]))
	}
	c.JSON(http.StatusOK, resp)
}
