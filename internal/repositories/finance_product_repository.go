package repositories

import (
	"database/sql"
	"fmt"

	"bankingsystem/internal/models"
)

type FinanceProductRepository struct {
	db *sql.DB
}

func NewFinanceProductRepository(db *sql.DB) *FinanceProductRepository {
	return &FinanceProductRepository{db: db}
}

func (r *FinanceProductRepository) GetByID(id int) (*models.FinanceProduct, error) {
	const q = `
                SELECT id, name, description, amount, year, risk_assessment
                FROM finance_products
                WHERE id=$1
        `
	var p models.FinanceProduct
	var risk sql.NullString
	if err := r.db.QueryRow(q, id).Scan(&p.ID, &p.Name, &p.Description, &p.Amount, &p.Year, &risk); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get finance product: %w", err)
	}
	p.RiskAssessment = risk.String
	return &p, nil
}

func (r *FinanceProductRepository) List() ([]*models.FinanceProduct, error) {
	const q = `
                SELECT id, name, description, amount, year, risk_assessment
                FROM finance_products
                ORDER BY id
        `
	rows, err := r.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list finance products: %w", err)
	}
	defer rows.Close()

	var res []*models.FinanceProduct
	for rows.Next() {
		var p models.FinanceProduct
		var risk sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Amount, &p.Year, &risk); err != nil {
			return nil, err
		}
		p.RiskAssessment = risk.String
		res = append(res, &p)
	}
	return res, rows.Err()
}
