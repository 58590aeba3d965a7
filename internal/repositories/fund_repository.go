package repositories

import (
	"database/sql"
	"fmt"

	"bankingsystem/internal/models"
)

type FundRepository interface {
	GetByID(id int) (*models.Fund, error)
	List() ([]*models.Fund, error)
	CreateInvestment(inv *models.FundInvestment) (int64, error)
	ListInvestmentsByClient(clientID int) ([]*models.FundInvestment, error)
}

type fundRepository struct {
	db *sql.DB
}

func NewFundRepository(db *sql.DB) FundRepository {
	return &fundRepository{db: db}
}

func (r *fundRepository) GetByID(id int) (*models.Fund, error) {
	const q = `
                SELECT id, name, type, amount, risk_level, manager_id, benchmark
                FROM funds
                WHERE id=$1
        `
	var f models.Fund
	var benchmark sql.NullString
	if err := r.db.QueryRow(q, id).Scan(&f.ID, &f.Name, &f.Type, &f.Amount, &f.RiskLevel, &f.ManagerID, &benchmark); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get fund: %w", err)
	}
	f.Benchmark = benchmark.String
	return &f, nil
}

func (r *fundRepository) List() ([]*models.Fund, error) {
	const q = `
                SELECT id, name, type, amount, risk_level, manager_id, benchmark
                FROM funds
                ORDER BY id
        `
	rows, err := r.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list funds: %w", err)
	}
	defer rows.Close()

	var res []*models.Fund
	for rows.Next() {
		var f models.Fund
		var benchmark sql.NullString
		if err := rows.Scan(&f.ID, &f.Name, &f.Type, &f.Amount, &f.RiskLevel, &f.ManagerID, &benchmark); err != nil {
			return nil, err
		}
		f.Benchmark = benchmark.String
		res = append(res, &f)
	}
	return res, rows.Err()
}

func (r *fundRepository) CreateInvestment(inv *models.FundInvestment) (int64, error) {
	const q = `
                INSERT INTO client_funds (client_id, fund_id, amount, invested_at)
                VALUES ($1, $2, $3, $4)
                RETURNING id
        `
	var id int64
	if err := r.db.QueryRow(q, inv.ClientID, inv.FundID, inv.Amount, inv.InvestedAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("create fund investment: %w", err)
	}
	return id, nil
}

func (r *fundRepository) ListInvestmentsByClient(clientID int) ([]*models.FundInvestment, error) {
	const q = `
                SELECT id, client_id, fund_id, amount, invested_at
                FROM client_funds
                WHERE client_id=$1
                ORDER BY invested_at DESC
        `
	rows, err := r.db.Query(q, clientID)
	if err != nil {
		return nil, fmt.Errorf("list fund investments: %w", err)
	}
	defer rows.Close()

	var res []*models.FundInvestment
	for rows.Next() {
		var inv models.FundInvestment
		if err := rows.Scan(&inv.ID, &inv.ClientID, &inv.FundID, &inv.Amount, &inv.InvestedAt); err != nil {
			return nil, err
		}
		res = append(res, &inv)
	}
	return res, rows.Err()
}
