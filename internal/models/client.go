package models

import "time"

// Client is an account holder.
type Client struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	IDCard       string    `json:"national_id"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"` // не отдаём наружу
	Address      string    `json:"address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
