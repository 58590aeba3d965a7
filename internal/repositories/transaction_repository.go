package repositories

import (
	"database/sql"
	"fmt"

	"bankingsystem/internal/models"
)

type TransactionRepository interface {
	Create(tx *models.Transaction) (int64, error)
	ListByClient(clientID int) ([]*models.Transaction, error)
	ListByCard(number string) ([]*models.Transaction, error)
}

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(tx *models.Transaction) (int64, error) {
	const q = `
                INSERT INTO transactions (from_card, to_card, amount, description, created_at)
                VALUES ($1, $2, $3, $4, $5)
                RETURNING id
        `
	var id int64
	if err := r.db.QueryRow(q, tx.FromCard, tx.ToCard, tx.Amount, tx.Description, tx.CreatedAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("create transaction: %w", err)
	}
	return id, nil
}

// ListByClient returns every transaction where either side's card belongs
// to the client. A single query keeps the result duplicate-free even when
// the client owns both cards of a transfer.
func (r *transactionRepository) ListByClient(clientID int) ([]*models.Transaction, error) {
	const q = `
                SELECT t.id, t.from_card, t.to_card, t.amount, t.description, t.created_at
                FROM transactions t
                WHERE t.from_card IN (SELECT number FROM bank_cards WHERE client_id=$1)
                   OR t.to_card   IN (SELECT number FROM bank_cards WHERE client_id=$1)
                ORDER BY t.created_at DESC
        `
	return r.queryList(q, clientID)
}

func (r *transactionRepository) ListByCard(number string) ([]*models.Transaction, error) {
	const q = `
                SELECT id, from_card, to_card, amount, description, created_at
                FROM transactions
                WHERE from_card=$1 OR to_card=$1
                ORDER BY created_at DESC
        `
	return r.queryList(q, number)
}

func (r *transactionRepository) queryList(q string, arg interface{}) ([]*models.Transaction, error) {
	rows, err := r.db.Query(q, arg)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var res []*models.Transaction
	for rows.Next() {
		var tx models.Transaction
		var desc sql.NullString
		if err := rows.Scan(&tx.ID, &tx.FromCard, &tx.ToCard, &tx.Amount, &desc, &tx.CreatedAt); err != nil {
			return nil, err
		}
		tx.Description = desc.String
		res = append(res, &tx)
	}
	return res, rows.Err()
}
