package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bankingsystem/internal/models"
	"bankingsystem/internal/services"
)

type CardHandler struct {
	Service *services.CardService
}

type createCardRequest struct {
	Number     string `json:"number" binding:"required"`
	Type       string `json:"type" binding:"required"`
	ClientID   int    `json:"client_id" binding:"required"`
	ExpiryDate string `json:"expiry_date"` // "2006-01-02", optional
}

func NewCardHandler(service *services.CardService) *CardHandler {
	return &CardHandler{Service: service}
}

// @Summary  Issue a bank card
// @Tags     BankCards
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    card  body      createCardRequest  true  "Card data"
// @Success  200   {object}  map[string]string
// @Failure  400   {object}  map[string]string
// @Router   /bank-cards [post]
func (h *CardHandler) Create(c *gin.Context) {
	var req createCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card := &models.BankCard{
		Number:   req.Number,
		Type:     req.Type,
		ClientID: req.ClientID,
	}
	if req.ExpiryDate != "" {
		exp, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expiry_date"})
			return
		}
		card.ExpiryDate = &exp
	}

	if err := h.Service.Issue(card); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bank card created successfully"})
}

// @Summary  List a client's cards
// @Tags     BankCards
// @Produce  json
// @Security BearerAuth
// @Param    id   path     int  true  "Client ID"
// @Success  200  {array}  models.BankCard
// @Router   /bank-cards/client/{id} [get]
func (h *CardHandler) ListByClient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	cards, err := h.Service.ListByClient(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cards)
}
