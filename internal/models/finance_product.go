package models

type FinanceProduct struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Amount         float64 `json:"amount"`
	Year           int     `json:"year"`
	RiskAssessment string  `json:"risk_assessment,omitempty"`
}
