package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"bankingsystem/internal/models"
	"bankingsystem/internal/services"
)

type AuthHandler struct {
	ClientService *services.ClientService
	AuthService   *services.AuthService
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	IDCard   string `json:"national_id" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
	Address  string `json:"address"`
}

func NewAuthHandler(clientService *services.ClientService, authService *services.AuthService) *AuthHandler {
	return &AuthHandler{ClientService: clientService, AuthService: authService}
}

// @Summary      Log in
// @Description  Verifies credentials and returns a bearer access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Credentials"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	email := strings.TrimSpace(req.Email)

	client, err := h.AuthService.VerifyClient(email, req.Password)
	if err != nil {
		log.Printf("[auth][login] verify failed for email=%q: err=%v", email, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if client == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.AuthService.GenerateToken(client)
	if err != nil {
		log.Printf("[auth][login] sign token failed for clientID=%d: err=%v", client.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate access token"})
		return
	}
	log.Printf("[auth][login] success clientID=%d", client.ID)

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// @Summary      Register a client
// @Description  Creates a client account; email, phone and national id must be unused
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        client  body      registerRequest  true  "Client data"
// @Success      200     {object}  map[string]interface{}
// @Failure      400     {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := &models.Client{
		Name:    req.Name,
		Email:   strings.TrimSpace(req.Email),
		IDCard:  req.IDCard,
		Phone:   req.Phone,
		Address: req.Address,
	}
	id, err := h.ClientService.Register(client, req.Password)
	if err != nil {
		log.Printf("[auth][register] failed for email=%q: err=%v", client.Email, err)
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "client already exists: " + pqErr.Detail})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Printf("[auth][register] success clientID=%d", id)

	c.JSON(http.StatusOK, gin.H{
		"message":   "Client registered successfully",
		"client_id": id,
	})
}
