package services

import (
	"errors"
	"strings"
	"time"

	"bankingsystem/internal/models"
	"bankingsystem/internal/repositories"
)

type CardService struct {
	Repo       repositories.BankCardRepository
	ClientRepo repositories.ClientRepository
}

func NewCardService(repo repositories.BankCardRepository, clientRepo repositories.ClientRepository) *CardService {
	return &CardService{Repo: repo, ClientRepo: clientRepo}
}

// Issue creates a card for an existing client. Card number uniqueness is
// enforced by the primary key.
func (s *CardService) Issue(card *models.BankCard) error {
	if strings.TrimSpace(card.Number) == "" {
		return errors.New("card number is required")
	}
	owner, err := s.ClientRepo.GetByID(card.ClientID)
	if err != nil {
		return err
	}
	if owner == nil {
		return errors.New("client not found")
	}
	if card.CreatedAt.IsZero() {
		card.CreatedAt = time.Now()
	}
	return s.Repo.Create(card)
}

func (s *CardService) GetByNumber(number string) (*models.BankCard, error) {
	return s.Repo.GetByNumber(number)
}

func (s *CardService) ListByClient(clientID int) ([]*models.BankCard, error) {
	return s.Repo.ListByClient(clientID)
}
