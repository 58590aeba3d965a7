package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bankingsystem/internal/services"
)

type FundHandler struct {
	Service *services.FundService
}

type investRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

func NewFundHandler(service *services.FundService) *FundHandler {
	return &FundHandler{Service: service}
}

// @Summary  List fund catalog
// @Tags     Funds
// @Produce  json
// @Success  200  {array}  models.Fund
// @Router   /funds [get]
func (h *FundHandler) List(c *gin.Context) {
	funds, err := h.Service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, funds)
}

// @Summary  Get fund by id
// @Tags     Funds
// @Produce  json
// @Param    id   path      int  true  "Fund ID"
// @Success  200  {object}  models.Fund
// @Failure  404  {object}  map[string]string
// @Router   /funds/{id} [get]
func (h *FundHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	fund, err := h.Service.GetByID(id)
	if err != nil || fund == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Fund not found"})
		return
	}
	c.JSON(http.StatusOK, fund)
}

// @Summary      Invest into a fund
// @Description  Records an investment for the authenticated client
// @Tags         Funds
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id          path      int            true  "Fund ID"
// @Param        investment  body      investRequest  true  "Investment data"
// @Success      200         {object}  map[string]string
// @Failure      400         {object}  map[string]string
// @Router       /funds/{id}/invest [post]
func (h *FundHandler) Invest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	clientID, ok := tokenClientID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	var req investRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Service.Invest(clientID, id, req.Amount); err != nil {
		if errors.Is(err, services.ErrFundNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fund not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Investment recorded successfully"})
}
