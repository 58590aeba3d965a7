package services

import (
	"errors"
	"testing"
	"time"

	"bankingsystem/internal/models"
)

func TestInsurancePurchase(t *testing.T) {
	repo := newFakeInsuranceRepo()
	repo.items[1] = &models.Insurance{ID: 1, Name: "Life", Amount: 1000}
	s := NewInsuranceService(repo)

	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	p, err := s.Purchase(5, 1, date, 120.50, 12)
	if err != nil {
		t.Fatal(err)
	}
	if p.ID <= 0 || p.ClientID != 5 || p.InsuranceID != 1 {
		t.Fatalf("purchase=%+v", p)
	}
	if len(repo.purchases) != 1 {
		t.Fatalf("purchases=%d want=1", len(repo.purchases))
	}
}

func TestInsurancePurchaseUnknownCatalogItem(t *testing.T) {
	s := NewInsuranceService(newFakeInsuranceRepo())

	if _, err := s.Purchase(5, 99, time.Now(), 10, 6); !errors.Is(err, ErrInsuranceNotFound) {
		t.Fatalf("want ErrInsuranceNotFound, got %v", err)
	}
}

func TestFundInvest(t *testing.T) {
	repo := newFakeFundRepo()
	repo.items[3] = &models.Fund{ID: 3, Name: "Index", RiskLevel: "low", ManagerID: 1}
	s := NewFundService(repo)

	inv, err := s.Invest(5, 3, 2500)
	if err != nil {
		t.Fatal(err)
	}
	if inv.ID <= 0 || inv.Amount != 2500 || inv.InvestedAt.IsZero() {
		t.Fatalf("investment=%+v", inv)
	}

	if _, err := s.Invest(5, 99, 100); !errors.Is(err, ErrFundNotFound) {
		t.Fatalf("want ErrFundNotFound, got %v", err)
	}
}
