package pdf

import (
	"bytes"
	"testing"
	"time"

	"bankingsystem/internal/models"
)

func samplePortfolio() *models.Portfolio {
	return &models.Portfolio{
		Client: &models.Client{
			ID:    1,
			Name:  "Alice",
			Email: "alice@example.com",
			Phone: "100",
		},
		BankCards: []*models.BankCard{
			{Number: "4000-0001", Type: "debit", ClientID: 1},
		},
		RecentTransactions: []*models.Transaction{
			{ID: 1, FromCard: "4000-0001", ToCard: "4000-0002", Amount: 55.5, CreatedAt: time.Now()},
		},
	}
}

func TestGenerateStatement(t *testing.T) {
	g := NewStatementGenerator()

	data, err := g.GenerateStatement(samplePortfolio())
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("empty statement")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("not a PDF, first bytes: %q", data[:8])
	}
}

func TestGenerateStatementEmptyPortfolio(t *testing.T) {
	g := NewStatementGenerator()

	p := &models.Portfolio{Client: &models.Client{ID: 2, Name: "Bob", Email: "b@x"}}
	data, err := g.GenerateStatement(p)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("not a PDF")
	}
}
