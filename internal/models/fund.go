package models

import "time"

type Fund struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	RiskLevel string  `json:"risk_level"`
	ManagerID int     `json:"manager_id"`
	Benchmark string  `json:"benchmark,omitempty"`
}

// FundInvestment links a client to a fund they invested in.
type FundInvestment struct {
	ID         int       `json:"id"`
	ClientID   int       `json:"client_id"`
	FundID     int       `json:"fund_id"`
	Amount     float64   `json:"amount"`
	InvestedAt time.Time `json:"invested_at"`
}
