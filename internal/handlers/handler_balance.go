package handlers

import (
	"net/http"

	portssvc "github.com/Murlidhar08/settlr-sub001/internal/core/ports/services"
	"github.com/Murlidhar08/settlr-sub001/internal/dto"
	"github.com/Murlidhar08/settlr-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

type balanceHandler struct {
	balanceService portssvc.BalanceSvc
}

func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvc) {
	h := &balanceHandler{balanceService: balanceService}

	balances := rg.Group("/balances")
	{
		balances.GET("", h.listBalances)
		balances.GET("/summary", h.getSummary)
	}
}

// listBalances godoc
// @Summary List account balances
// @Description Balances of every active account, derived from the full transaction log
// @Tags balances
// @Produce  json
// @Success 200 {object} dto.ListAccountBalancesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to calculate balances"
// @Security BearerAuth
// @Router /balances [get]
func (h *balanceHandler) listBalances(c *gin.Context) {
	balances, err := h.balanceService.ListAccountBalances(c.Request.Context(), middleware.GetAuthContext(c))
	if err != nil {
		respondError(c, err, "Failed to calculate balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountBalancesResponse(balances))
}

// getSummary godoc
// @Summary Balance totals per account type
// @Tags balances
// @Produce  json
// @Success 200 {object} dto.BalanceSummaryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to calculate balance summary"
// @Security BearerAuth
// @Router /balances/summary [get]
func (h *balanceHandler) getSummary(c *gin.Context) {
	summary, err := h.balanceService.GetBalanceSummary(c.Request.Context(), middleware.GetAuthContext(c))
	if err != nil {
		respondError(c, err, "Failed to calculate balance summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSummaryResponse(summary))
}
