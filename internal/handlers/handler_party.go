package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Murlidhar08/settlr-sub001/internal/core/ports/services"
	"github.com/Murlidhar08/settlr-sub001/internal/dto"
	"github.com/Murlidhar08/settlr-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

type partyHandler struct {
	partyService portssvc.PartySvcFacade
}

func registerPartyRoutes(rg *gin.RouterGroup, partyService portssvc.PartySvcFacade) {
	h := &partyHandler{partyService: partyService}

	parties := rg.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/:partyID", h.getParty)
		parties.PUT("/:partyID", h.updateParty)
		parties.DELETE("/:partyID", h.deleteParty)
	}
}

// createParty godoc
// @Summary Create a party
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create party"
// @Security BearerAuth
// @Router /parties [post]
func (h *partyHandler) createParty(c *gin.Context) {
	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), middleware.GetAuthContext(c), req)
	if err != nil {
		respondError(c, err, "Failed to create party")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

// listParties godoc
// @Summary List parties
// @Tags parties
// @Produce  json
// @Param   type query string false "CUSTOMER or SUPPLIER"
// @Success 200 {object} dto.ListPartiesResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list parties"
// @Security BearerAuth
// @Router /parties [get]
func (h *partyHandler) listParties(c *gin.Context) {
	var params dto.ListPartiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "query parameters")
		return
	}

	parties, err := h.partyService.ListParties(c.Request.Context(), middleware.GetAuthContext(c), params.PartyType)
	if err != nil {
		respondError(c, err, "Failed to list parties")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPartiesResponse(parties))
}

// getParty godoc
// @Summary Get a party by ID
// @Tags parties
// @Produce  json
// @Param   partyID path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Security BearerAuth
// @Router /parties/{partyID} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	party, err := h.partyService.GetParty(c.Request.Context(), middleware.GetAuthContext(c), c.Param("partyID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve party")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// updateParty godoc
// @Summary Update a party
// @Description Only the name and contact number can change
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   partyID path string true "Party ID"
// @Param   party body dto.UpdatePartyRequest true "Fields to update"
// @Success 200 {object} dto.PartyResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Security BearerAuth
// @Router /parties/{partyID} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}

	party, err := h.partyService.UpdateParty(c.Request.Context(), middleware.GetAuthContext(c), c.Param("partyID"), req)
	if err != nil {
		respondError(c, err, "Failed to update party")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// deleteParty godoc
// @Summary Delete a party
// @Description Deletes the party and all of its transactions, and unlinks its accounts
// @Tags parties
// @Produce  json
// @Param   partyID path string true "Party ID"
// @Success 200 {object} dto.DeletePartyResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Failure 500 {object} ErrorResponse "Failed to delete party"
// @Security BearerAuth
// @Router /parties/{partyID} [delete]
func (h *partyHandler) deleteParty(c *gin.Context) {
	partyID := c.Param("partyID")
	deleted, err := h.partyService.DeleteParty(c.Request.Context(), middleware.GetAuthContext(c), partyID)
	if err != nil {
		respondError(c, err, "Failed to delete party")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Party deleted",
		slog.String("party_id", partyID), slog.Int64("deleted_transactions", deleted))
	c.JSON(http.StatusOK, dto.DeletePartyResponse{Success: true, DeletedTransactions: deleted})
}
