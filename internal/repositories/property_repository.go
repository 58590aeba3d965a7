package repositories

import (
	"database/sql"
	"fmt"

	"bankingsystem/internal/models"
)

type PropertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) GetByID(id int) (*models.Property, error) {
	const q = `
                SELECT id, type, status, quantity, income, location
                FROM properties
                WHERE id=$1
        `
	var p models.Property
	var location sql.NullString
	if err := r.db.QueryRow(q, id).Scan(&p.ID, &p.Type, &p.Status, &p.Quantity, &p.Income, &location); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get property: %w", err)
	}
	p.Location = location.String
	return &p, nil
}

func (r *PropertyRepository) List() ([]*models.Property, error) {
	const q = `
                SELECT id, type, status, quantity, income, location
                FROM properties
                ORDER BY id
        `
	rows, err := r.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	var res []*models.Property
	for rows.Next() {
		var p models.Property
		var location sql.NullString
		if err := rows.Scan(&p.ID, &p.Type, &p.Status, &p.Quantity, &p.Income, &location); err != nil {
			return nil, err
		}
		p.Location = location.String
		res = append(res, &p)
	}
	return res, rows.Err()
}
