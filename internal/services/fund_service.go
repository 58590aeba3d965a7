package services

import (
	"errors"
	"time"

	"bankingsystem/internal/models"
	"bankingsystem/internal/repositories"
)

var ErrFundNotFound = errors.New("fund not found")

type FundService struct {
	Repo repositories.FundRepository
}

func NewFundService(repo repositories.FundRepository) *FundService {
	return &FundService{Repo: repo}
}

func (s *FundService) GetByID(id int) (*models.Fund, error) {
	return s.Repo.GetByID(id)
}

func (s *FundService) List() ([]*models.Fund, error) {
	return s.Repo.List()
}

// Invest appends a junction record for the client's investment in a fund.
func (s *FundService) Invest(clientID, fundID int, amount float64) (*models.FundInvestment, error) {
	fund, err := s.Repo.GetByID(fundID)
	if err != nil {
		return nil, err
	}
	if fund == nil {
		return nil, ErrFundNotFound
	}

	inv := &models.FundInvestment{
		ClientID:   clientID,
		FundID:     fundID,
		Amount:     amount,
		InvestedAt: time.Now(),
	}
	id, err := s.Repo.CreateInvestment(inv)
	if err != nil {
		return nil, err
	}
	inv.ID = int(id)
	return inv, nil
}
