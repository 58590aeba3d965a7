package repositories

import (
	"database/sql"
	"fmt"

	"bankingsystem/internal/models"
)

type InsuranceRepository interface {
	GetByID(id int) (*models.Insurance, error)
	List() ([]*models.Insurance, error)
	CreatePurchase(p *models.InsurancePurchase) (int64, error)
	ListPurchasesByClient(clientID int) ([]*models.InsurancePurchase, error)
}

type insuranceRepository struct {
	db *sql.DB
}

func NewInsuranceRepository(db *sql.DB) InsuranceRepository {
	return &insuranceRepository{db: db}
}

func (r *insuranceRepository) GetByID(id int) (*models.Insurance, error) {
	const q = `
                SELECT id, name, amount, person, year, project, provider
                FROM insurances
                WHERE id=$1
        `
	var ins models.Insurance
	var provider sql.NullString
	if err := r.db.QueryRow(q, id).Scan(&ins.ID, &ins.Name, &ins.Amount, &ins.Person, &ins.Year, &ins.Project, &provider); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get insurance: %w", err)
	}
	ins.Provider = provider.String
	return &ins, nil
}

func (r *insuranceRepository) List() ([]*models.Insurance, error) {
	const q = `
                SELECT id, name, amount, person, year, project, provider
                FROM insurances
                ORDER BY id
        `
	rows, err := r.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list insurances: %w", err)
	}
	defer rows.Close()

	var res []*models.Insurance
	for rows.Next() {
		var ins models.Insurance
		var provider sql.NullString
		if err := rows.Scan(&ins.ID, &ins.Name, &ins.Amount, &ins.Person, &ins.Year, &ins.Project, &provider); err != nil {
			return nil, err
		}
		ins.Provider = provider.String
		res = append(res, &ins)
	}
	return res, rows.Err()
}

func (r *insuranceRepository) CreatePurchase(p *models.InsurancePurchase) (int64, error) {
	const q = `
                INSERT INTO client_insurances (client_id, insurance_id, purchase_date, premium_amount, coverage_period)
                VALUES ($1, $2, $3, $4, $5)
                RETURNING id
        `
	var id int64
	if err := r.db.QueryRow(q, p.ClientID, p.InsuranceID, p.PurchaseDate, p.PremiumAmount, p.CoveragePeriod).Scan(&id); err != nil {
		return 0, fmt.Errorf("create insurance purchase: %w", err)
	}
	return id, nil
}

func (r *insuranceRepository) ListPurchasesByClient(clientID int) ([]*models.InsurancePurchase, error) {
	const q = `
                SELECT id, client_id, insurance_id, purchase_date, premium_amount, coverage_period
                FROM client_insurances
                WHERE client_id=$1
                ORDER BY purchase_date DESC
        `
	rows, err := r.db.Query(q, clientID)
	if err != nil {
		return nil, fmt.Errorf("list insurance purchases: %w", err)
	}
	defer rows.Close()

	var res []*models.InsurancePurchase
	for rows.Next() {
		var p models.InsurancePurchase
		if err := rows.Scan(&p.ID, &p.ClientID, &p.InsuranceID, &p.PurchaseDate, &p.PremiumAmount, &p.CoveragePeriod); err != nil {
			return nil, err
		}
		res = append(res, &p)
	}
	return res, rows.Err()
}
