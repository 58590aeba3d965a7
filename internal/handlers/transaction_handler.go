package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bankingsystem/internal/services"
)

type TransactionHandler struct {
	Service *services.BankingService
}

type transferRequest struct {
	FromCard    string  `json:"from_card" binding:"required"`
	ToCard      string  `json:"to_card" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
}

func NewTransactionHandler(service *services.BankingService) *TransactionHandler {
	return &TransactionHandler{Service: service}
}

// @Summary      Transfer funds between cards
// @Description  Appends a ledger entry; both card numbers must exist
// @Tags         Transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        transfer  body      transferRequest  true  "Transfer data"
// @Success      200       {object}  map[string]string
// @Failure      400       {object}  map[string]string
// @Router       /transactions/transfer [post]
func (h *TransactionHandler) Transfer(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.Service.Transfer(req.FromCard, req.ToCard, req.Amount, req.Description)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCard) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card numbers"})
			return
		}
		log.Printf("[transactions][transfer] failed: err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Printf("[transactions][transfer] success txID=%d amount=%.2f", tx.ID, tx.Amount)

	c.JSON(http.StatusOK, gin.H{"message": "Transfer successful"})
}

// @Summary  List a client's transactions
// @Tags     Transactions
// @Produce  json
// @Security BearerAuth
// @Param    id   path     int  true  "Client ID"
// @Success  200  {array}  models.Transaction
// @Router   /transactions/{id} [get]
func (h *TransactionHandler) ListByClient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	transactions, err := h.Service.ListByClient(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, transactions)
}
