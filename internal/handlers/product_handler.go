package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bankingsystem/internal/services"
)

// ProductHandler serves the finance-product and property catalogs.
type ProductHandler struct {
	Service *services.ProductService
}

func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{Service: service}
}

// @Summary  List finance products
// @Tags     Catalog
// @Produce  json
// @Success  200  {array}  models.FinanceProduct
// @Router   /finance-products [get]
func (h *ProductHandler) ListFinanceProducts(c *gin.Context) {
	products, err := h.Service.ListFinanceProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// @Summary  Get finance product by id
// @Tags     Catalog
// @Produce  json
// @Param    id   path      int  true  "Product ID"
// @Success  200  {object}  models.FinanceProduct
// @Failure  404  {object}  map[string]string
// @Router   /finance-products/{id} [get]
func (h *ProductHandler) GetFinanceProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	product, err := h.Service.GetFinanceProduct(id)
	if err != nil || product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Finance product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// @Summary  List properties
// @Tags     Catalog
// @Produce  json
// @Success  200  {array}  models.Property
// @Router   /properties [get]
func (h *ProductHandler) ListProperties(c *gin.Context) {
	properties, err := h.Service.ListProperties()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, properties)
}

// @Summary  Get property by id
// @Tags     Catalog
// @Produce  json
// @Param    id   path      int  true  "Property ID"
// @Success  200  {object}  models.Property
// @Failure  404  {object}  map[string]string
// @Router   /properties/{id} [get]
func (h *ProductHandler) GetProperty(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	property, err := h.Service.GetProperty(id)
	if err != nil || property == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	c.JSON(http.StatusOK, property)
}
