package services

import (
	"errors"
	"time"

	"bankingsystem/internal/models"
	"bankingsystem/internal/repositories"
)

var ErrInsuranceNotFound = errors.New("insurance not found")

type InsuranceService struct {
	Repo repositories.InsuranceRepository
}

func NewInsuranceService(repo repositories.InsuranceRepository) *InsuranceService {
	return &InsuranceService{Repo: repo}
}

func (s *InsuranceService) GetByID(id int) (*models.Insurance, error) {
	return s.Repo.GetByID(id)
}

func (s *InsuranceService) List() ([]*models.Insurance, error) {
	return s.Repo.List()
}

// Purchase appends a junction record for the client. The catalog item must
// exist; the client id comes from the caller's token.
func (s *InsuranceService) Purchase(clientID, insuranceID int, purchaseDate time.Time, premiumAmount float64, coveragePeriod int) (*models.InsurancePurchase, error) {
	ins, err := s.Repo.GetByID(insuranceID)
	if err != nil {
		return nil, err
	}
	if ins == nil {
		return nil, ErrInsuranceNotFound
	}

	p := &models.InsurancePurchase{
		ClientID:       clientID,
		InsuranceID:    insuranceID,
		PurchaseDate:   purchaseDate,
		PremiumAmount:  premiumAmount,
		CoveragePeriod: coveragePeriod,
	}
	id, err := s.Repo.CreatePurchase(p)
	if err != nil {
		return nil, err
	}
	p.ID = int(id)
	return p, nil
}
