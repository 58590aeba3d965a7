package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bankingsystem/internal/services"
)

type ClientHandler struct {
	Service *services.ClientService
}

type updateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	IDCard  string `json:"national_id" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address"`
}

func NewClientHandler(service *services.ClientService) *ClientHandler {
	return &ClientHandler{Service: service}
}

// @Summary  List clients
// @Tags     Clients
// @Produce  json
// @Security BearerAuth
// @Success  200  {array}  models.Client
// @Router   /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "100"))
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 100
	}
	offset := (page - 1) * size

	clients, err := h.Service.List(size, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// @Summary  Get client by id
// @Tags     Clients
// @Produce  json
// @Security BearerAuth
// @Param    id   path      int  true  "Client ID"
// @Success  200  {object}  models.Client
// @Failure  404  {object}  map[string]string
// @Router   /clients/{id} [get]
func (h *ClientHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	client, err := h.Service.GetByID(id)
	if err != nil || client == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// @Summary  Update client profile
// @Tags     Clients
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id      path      int                  true  "Client ID"
// @Param    client  body      updateClientRequest  true  "Profile data"
// @Success  200     {object}  map[string]string
// @Failure  404     {object}  map[string]string
// @Router   /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	existing, err := h.Service.GetByID(id)
	if err != nil || existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	var req updateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing.Name = req.Name
	existing.Email = req.Email
	existing.IDCard = req.IDCard
	existing.Phone = req.Phone
	existing.Address = req.Address

	if err := h.Service.Update(existing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client updated successfully"})
}
