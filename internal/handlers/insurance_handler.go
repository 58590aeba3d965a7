package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bankingsystem/internal/services"
)

type InsuranceHandler struct {
	Service *services.InsuranceService
}

type purchaseRequest struct {
	PurchaseDate   string  `json:"purchase_date" binding:"required"` // "2006-01-02"
	PremiumAmount  float64 `json:"premium_amount" binding:"required"`
	CoveragePeriod int     `json:"coverage_period" binding:"required"`
}

func NewInsuranceHandler(service *services.InsuranceService) *InsuranceHandler {
	return &InsuranceHandler{Service: service}
}

// @Summary  List insurance catalog
// @Tags     Insurances
// @Produce  json
// @Success  200  {array}  models.Insurance
// @Router   /insurances [get]
func (h *InsuranceHandler) List(c *gin.Context) {
	insurances, err := h.Service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, insurances)
}

// @Summary  Get insurance by id
// @Tags     Insurances
// @Produce  json
// @Param    id   path      int  true  "Insurance ID"
// @Success  200  {object}  models.Insurance
// @Failure  404  {object}  map[string]string
// @Router   /insurances/{id} [get]
func (h *InsuranceHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	ins, err := h.Service.GetByID(id)
	if err != nil || ins == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Insurance not found"})
		return
	}
	c.JSON(http.StatusOK, ins)
}

// @Summary      Purchase an insurance
// @Description  Records a purchase for the authenticated client
// @Tags         Insurances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      int              true  "Insurance ID"
// @Param        purchase  body      purchaseRequest  true  "Purchase data"
// @Success      200       {object}  map[string]string
// @Failure      400       {object}  map[string]string
// @Router       /insurances/{id}/purchase [post]
func (h *InsuranceHandler) Purchase(c *gin.Context) {
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

	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid purchase_date"})
		return
	}

	if _, err := h.Service.Purchase(clientID, id, purchaseDate, req.PremiumAmount, req.CoveragePeriod); err != nil {
		if errors.Is(err, services.ErrInsuranceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Insurance not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Insurance purchased successfully"})
}
