package models

import "time"

// Transaction is an append-only ledger entry between two cards.
// There is no balance column anywhere in the schema: a transfer only
// records that it happened.
type Transaction struct {
	ID          int       `json:"id"`
	FromCard    string    `json:"from_card"`
	ToCard      string    `json:"to_card"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"transaction_date"`
}
