package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Murlidhar08/settlr-sub001/internal/core/ports/services"
	"github.com/Murlidhar08/settlr-sub001/internal/dto"
	"github.com/Murlidhar08/settlr-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

type businessHandler struct {
	businessService portssvc.BusinessSvcFacade
	identityService portssvc.IdentitySvcFacade
}

func registerBusinessRoutes(rg *gin.RouterGroup, businessService portssvc.BusinessSvcFacade, identityService portssvc.IdentitySvcFacade) {
	h := &businessHandler{businessService: businessService, identityService: identityService}

	businesses := rg.Group("/businesses")
	{
		businesses.GET("", h.listBusinesses)
		businesses.POST("", h.createBusiness)
		businesses.GET("/current", h.getCurrentBusiness)
		businesses.PUT("/current", h.renameCurrentBusiness)
		businesses.POST("/switch", h.switchBusiness)
	}
}

// listBusinesses godoc
// @Summary List the caller's businesses
// @Tags businesses
// @Produce  json
// @Success 200 {object} dto.ListBusinessesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list businesses"
// @Security BearerAuth
// @Router /businesses [get]
func (h *businessHandler) listBusinesses(c *gin.Context) {
	businesses, err := h.businessService.ListBusinesses(c.Request.Context(), middleware.GetAuthContext(c).UserID)
	if err != nil {
		respondError(c, err, "Failed to list businesses")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBusinessesResponse(businesses))
}

// createBusiness godoc
// @Summary Create a business
// @Description Creates a business owned by the caller together with its Cash and Bank system accounts
// @Tags businesses
// @Accept  json
// @Produce  json
// @Param   business body dto.CreateBusinessRequest true "Business details"
// @Success 201 {object} dto.BusinessResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create business"
// @Security BearerAuth
// @Router /businesses [post]
func (h *businessHandler) createBusiness(c *gin.Context) {
	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}

	business, err := h.businessService.CreateBusiness(c.Request.Context(), middleware.GetAuthContext(c).UserID, req.Name)
	if err != nil {
		respondError(c, err, "Failed to create business")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Business created", slog.String("created_business_id", business.BusinessID))
	c.JSON(http.StatusCreated, dto.ToBusinessResponse(business))
}

// getCurrentBusiness godoc
// @Summary Get the active business
// @Tags businesses
// @Produce  json
// @Success 200 {object} dto.BusinessResponse
// @Failure 401 {object} ErrorResponse "Unauthorized or no active business"
// @Security BearerAuth
// @Router /businesses/current [get]
func (h *businessHandler) getCurrentBusiness(c *gin.Context) {
	business, err := h.businessService.GetBusiness(c.Request.Context(), middleware.GetAuthContext(c))
	if err != nil {
		respondError(c, err, "Failed to retrieve business")
		return
	}
	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

// renameCurrentBusiness godoc
// @Summary Rename the active business
// @Tags businesses
// @Accept  json
// @Produce  json
// @Param   business body dto.RenameBusinessRequest true "New name"
// @Success 200 {object} dto.BusinessResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized or no active business"
// @Security BearerAuth
// @Router /businesses/current [put]
func (h *businessHandler) renameCurrentBusiness(c *gin.Context) {
	var req dto.RenameBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}

	business, err := h.businessService.RenameBusiness(c.Request.Context(), middleware.GetAuthContext(c), req.Name)
	if err != nil {
		respondError(c, err, "Failed to rename business")
		return
	}
	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

// switchBusiness godoc
// @Summary Switch the active business
// @Description Issues a new token bound to another business owned by the caller
// @Tags businesses
// @Accept  json
// @Produce  json
// @Param   business body dto.SwitchBusinessRequest true "Target business"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Business not accessible"
// @Security BearerAuth
// @Router /businesses/switch [post]
func (h *businessHandler) switchBusiness(c *gin.Context) {
	var req dto.SwitchBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}

	session, err := h.identityService.SwitchBusiness(c.Request.Context(), middleware.GetAuthContext(c), req.BusinessID)
	if err != nil {
		respondError(c, err, "Failed to switch business")
		return
	}
	c.JSON(http.StatusOK, toLoginResponse(session))
}
