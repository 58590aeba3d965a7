package services

import (
	"bankingsystem/internal/models"
	"bankingsystem/internal/repositories"
)

type PortfolioService struct {
	ClientRepo    repositories.ClientRepository
	CardRepo      repositories.BankCardRepository
	TxRepo        repositories.TransactionRepository
	InsuranceRepo repositories.InsuranceRepository
	FundRepo      repositories.FundRepository
}

func NewPortfolioService(
	clientRepo repositories.ClientRepository,
	cardRepo repositories.BankCardRepository,
	txRepo repositories.TransactionRepository,
	insuranceRepo repositories.InsuranceRepository,
	fundRepo repositories.FundRepository,
) *PortfolioService {
	return &PortfolioService{
		ClientRepo:    clientRepo,
		CardRepo:      cardRepo,
		TxRepo:        txRepo,
		InsuranceRepo: insuranceRepo,
		FundRepo:      fundRepo,
	}
}

// GetClientPortfolio assembles the read-only composite view: the client,
// their cards, every transaction touching those cards on either side, and
// their insurance purchases and fund investments. Returns (nil, nil) for
// an unknown client.
func (s *PortfolioService) GetClientPortfolio(clientID int) (*models.Portfolio, error) {
	client, err := s.ClientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}

	cards, err := s.CardRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.TxRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	purchases, err := s.InsuranceRepo.ListPurchasesByClient(clientID)
	if err != nil {
		return nil, err
	}
	investments, err := s.FundRepo.ListInvestmentsByClient(clientID)
	if err != nil {
		return nil, err
	}

	return &models.Portfolio{
		Client:             client,
		BankCards:          cards,
		RecentTransactions: transactions,
		Insurances:         purchases,
		Investments:        investments,
	}, nil
}
