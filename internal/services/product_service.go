package services

import (
	"bankingsystem/internal/models"
	"bankingsystem/internal/repositories"
)

// ProductService serves the read-only finance-product and property
// catalogs. Items are created by an out-of-band administrative process.
type ProductService struct {
	FinanceRepo  *repositories.FinanceProductRepository
	PropertyRepo *repositories.PropertyRepository
}

func NewProductService(financeRepo *repositories.FinanceProductRepository, propertyRepo *repositories.PropertyRepository) *ProductService {
	return &ProductService{FinanceRepo: financeRepo, PropertyRepo: propertyRepo}
}

func (s *ProductService) GetFinanceProduct(id int) (*models.FinanceProduct, error) {
	return s.FinanceRepo.GetByID(id)
}

func (s *ProductService) ListFinanceProducts() ([]*models.FinanceProduct, error) {
	return s.FinanceRepo.List()
}

func (s *ProductService) GetProperty(id int) (*models.Property, error) {
	return s.PropertyRepo.GetByID(id)
}

func (s *ProductService) ListProperties() ([]*models.Property, error) {
	return s.PropertyRepo.List()
}
