package services

import (
	"errors"
	"log"
	"time"

	"bankingsystem/internal/models"
	"bankingsystem/internal/repositories"
)

// ErrInvalidCard is returned when either side of a transfer does not exist.
// Deliberately does not say which side.
var ErrInvalidCard = errors.New("invalid card numbers")

type BankingService struct {
	CardRepo repositories.BankCardRepository
	TxRepo   repositories.TransactionRepository
	Notifier *NotifyService
}

func NewBankingService(cardRepo repositories.BankCardRepository, txRepo repositories.TransactionRepository, notifier *NotifyService) *BankingService {
	return &BankingService{CardRepo: cardRepo, TxRepo: txRepo, Notifier: notifier}
}

// Transfer validates that both cards exist and appends one ledger entry
// with a server-assigned timestamp. The schema tracks no balances, so no
// amount or balance validation happens here; replaying the same request
// appends another entry.
func (s *BankingService) Transfer(fromCard, toCard string, amount float64, description string) (*models.Transaction, error) {
	src, err := s.CardRepo.GetByNumber(fromCard)
	if err != nil {
		return nil, err
	}
	dst, err := s.CardRepo.GetByNumber(toCard)
	if err != nil {
		return nil, err
	}
	if src == nil || dst == nil {
		return nil, ErrInvalidCard
	}

	tx := &models.Transaction{
		FromCard:    fromCard,
		ToCard:      toCard,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now(),
	}
	id, err := s.TxRepo.Create(tx)
	if err != nil {
		return nil, err
	}
	tx.ID = int(id)

	if s.Notifier != nil {
		if err := s.Notifier.TransferExecuted(tx); err != nil {
			log.Printf("[banking][transfer] warning: telegram notify failed: %v", err)
		}
	}

	return tx, nil
}

func (s *BankingService) ListByClient(clientID int) ([]*models.Transaction, error) {
	return s.TxRepo.ListByClient(clientID)
}
