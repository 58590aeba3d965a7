package models

import "time"

type Insurance struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Person   string  `json:"person"`
	Year     int     `json:"year"`
	Project  string  `json:"project"`
	Provider string  `json:"provider,omitempty"`
}

// InsurancePurchase links a client to a purchased insurance product.
type InsurancePurchase struct {
	ID             int       `json:"id"`
	ClientID       int       `json:"client_id"`
	InsuranceID    int       `json:"insurance_id"`
	PurchaseDate   time.Time `json:"purchase_date"`
	PremiumAmount  float64   `json:"premium_amount"`
	CoveragePeriod int       `json:"coverage_period"`
}
