package models

import "time"

// BankCard is identified by its number; a client owns zero or more cards.
type BankCard struct {
	Number     string     `json:"number"`
	Type       string     `json:"type"`
	ClientID   int        `json:"client_id"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
