package repositories

import (
	"database/sql"
	"fmt"

	"bankingsystem/internal/models"
)

type BankCardRepository interface {
	Create(card *models.BankCard) error
	GetByNumber(number string) (*models.BankCard, error)
	ListByClient(clientID int) ([]*models.BankCard, error)
}

type bankCardRepository struct {
	db *sql.DB
}

func NewBankCardRepository(db *sql.DB) BankCardRepository {
	return &bankCardRepository{db: db}
}

func (r *bankCardRepository) Create(card *models.BankCard) error {
	const q = `
                INSERT INTO bank_cards (number, type, client_id, expiry_date, created_at)
                VALUES ($1, $2, $3, $4, $5)
        `
	if _, err := r.db.Exec(q, card.Number, card.Type, card.ClientID, card.ExpiryDate, card.CreatedAt); err != nil {
		return fmt.Errorf("create bank card: %w", err)
	}
	return nil
}

func (r *bankCardRepository) GetByNumber(number string) (*models.BankCard, error) {
	const q = `
                SELECT number, type, client_id, expiry_date, created_at
                FROM bank_cards
                WHERE number=$1
        `
	var card models.BankCard
	if err := r.db.QueryRow(q, number).Scan(&card.Number, &card.Type, &card.ClientID, &card.ExpiryDate, &card.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank card: %w", err)
	}
	return &card, nil
}

func (r *bankCardRepository) ListByClient(clientID int) ([]*models.BankCard, error) {
	const q = `
                SELECT number, type, client_id, expiry_date, created_at
                FROM bank_cards
                WHERE client_id=$1
                ORDER BY created_at DESC
        `
	rows, err := r.db.Query(q, clientID)
	if err != nil {
		return nil, fmt.Errorf("list bank cards: %w", err)
	}
	defer rows.Close()

	var res []*models.BankCard
	for rows.Next() {
		var card models.BankCard
		if err := rows.Scan(&card.Number, &card.Type, &card.ClientID, &card.ExpiryDate, &card.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &card)
	}
	return res, rows.Err()
}
