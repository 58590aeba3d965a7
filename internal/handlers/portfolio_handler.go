package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bankingsystem/internal/pdf"
	"bankingsystem/internal/services"
)

type PortfolioHandler struct {
	Service   *services.PortfolioService
	Generator pdf.Generator
}

func NewPortfolioHandler(service *services.PortfolioService, generator pdf.Generator) *PortfolioHandler {
	return &PortfolioHandler{Service: service, Generator: generator}
}

// @Summary  Get client portfolio
// @Tags     Portfolio
// @Produce  json
// @Security BearerAuth
// @Param    id   path      int  true  "Client ID"
// @Success  200  {object}  models.Portfolio
// @Failure  404  {object}  map[string]string
// @Router   /portfolio/{id} [get]
func (h *PortfolioHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	portfolio, err := h.Service.GetClientPortfolio(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if portfolio == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, portfolio)
}

// @Summary  Download portfolio statement as PDF
// @Tags     Portfolio
// @Produce  application/pdf
// @Security BearerAuth
// @Param    id   path  int  true  "Client ID"
// @Success  200  {file}    binary
// @Failure  404  {object}  map[string]string
// @Router   /portfolio/{id}/statement [get]
func (h *PortfolioHandler) DownloadStatement(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	portfolio, err := h.Service.GetClientPortfolio(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if portfolio == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	data, err := h.Generator.GenerateStatement(portfolio)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("statement_client_%d.pdf", id)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
