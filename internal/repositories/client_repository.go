package repositories

import (
	"database/sql"
	"fmt"

	"bankingsystem/internal/models"
)

type ClientRepository interface {
	Create(client *models.Client) (int64, error)
	GetByID(id int) (*models.Client, error)
	GetByEmail(email string) (*models.Client, error)
	Update(client *models.Client) error
	List(limit, offset int) ([]*models.Client, error)
}

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(client *models.Client) (int64, error) {
	const q = `
                INSERT INTO clients (name, email, id_card, phone, password_hash, address, created_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7)
                RETURNING id
        `
	var id int64
	if err := r.db.QueryRow(q,
		client.Name,
		client.Email,
		client.IDCard,
		client.Phone,
		client.PasswordHash,
		client.Address,
		client.CreatedAt,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("create client: %w", err)
	}
	return id, nil
}

func (r *clientRepository) GetByID(id int) (*models.Client, error) {
	const q = `
                SELECT id, name, email, id_card, phone, password_hash, address, created_at
                FROM clients
                WHERE id=$1
        `
	var c models.Client
	var address sql.NullString
	if err := r.db.QueryRow(q, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.IDCard, &c.Phone, &c.PasswordHash, &address, &c.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	c.Address = address.String
	return &c, nil
}

func (r *clientRepository) GetByEmail(email string) (*models.Client, error) {
	const q = `
                SELECT id, name, email, id_card, phone, password_hash, address, created_at
                FROM clients
                WHERE email=$1
        `
	var c models.Client
	var address sql.NullString
	if err := r.db.QueryRow(q, email).Scan(
		&c.ID, &c.Name, &c.Email, &c.IDCard, &c.Phone, &c.PasswordHash, &address, &c.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by email: %w", err)
	}
	c.Address = address.String
	return &c, nil
}

func (r *clientRepository) Update(client *models.Client) error {
	const q = `
                UPDATE clients
                SET name=$1, email=$2, id_card=$3, phone=$4, address=$5
                WHERE id=$6
        `
	if _, err := r.db.Exec(q, client.Name, client.Email, client.IDCard, client.Phone, client.Address, client.ID); err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

func (r *clientRepository) List(limit, offset int) ([]*models.Client, error) {
	const q = `
                SELECT id, name, email, id_card, phone, password_hash, address, created_at
                FROM clients
                ORDER BY created_at DESC
                LIMIT $1 OFFSET $2
        `
	rows, err := r.db.Query(q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var res []*models.Client
	for rows.Next() {
		var c models.Client
		var address sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.IDCard, &c.Phone, &c.PasswordHash, &address, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Address = address.String
		res = append(res, &c)
	}
	return res, rows.Err()
}
