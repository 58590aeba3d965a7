package models

// Portfolio is the aggregated read-only view of a client's holdings.
type Portfolio struct {
	Client             *Client              `json:"client"`
	BankCards          []*BankCard          `json:"bank_cards"`
	RecentTransactions []*Transaction       `json:"recent_transactions"`
	Insurances         []*InsurancePurchase `json:"insurances"`
	Investments        []*FundInvestment    `json:"investments"`
}
