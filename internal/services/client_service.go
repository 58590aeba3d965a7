package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"bankingsystem/internal/models"
	"bankingsystem/internal/repositories"
)

type ClientService struct {
	Repo         repositories.ClientRepository
	EmailService EmailService
	AuthService  *AuthService
}

func NewClientService(repo repositories.ClientRepository, emailService EmailService, authService *AuthService) *ClientService {
	return &ClientService{
		Repo:         repo,
		EmailService: emailService,
		AuthService:  authService,
	}
}

// Register hashes the plain password and creates the client. Uniqueness of
// email/phone/id_card is enforced by the store constraints, not here.
func (s *ClientService) Register(client *models.Client, plainPassword string) (int64, error) {
	if strings.TrimSpace(client.Name) == "" {
		return 0, errors.New("name is required")
	}
	if strings.TrimSpace(client.Email) == "" {
		return 0, errors.New("email is required")
	}
	if strings.TrimSpace(plainPassword) == "" {
		return 0, errors.New("password is required")
	}

	hash, err := s.AuthService.HashPassword(plainPassword)
	if err != nil {
		return 0, err
	}
	client.PasswordHash = hash
	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now()
	}

	id, err := s.Repo.Create(client)
	if err != nil {
		return 0, err
	}
	client.ID = int(id)

	if s.EmailService != nil {
		if err := s.EmailService.SendWelcomeEmail(client.Email, client.Name); err != nil {
			// warn but do not fail registration
			log.Printf("[client][register] warning: failed to send welcome email to %s: %v", client.Email, err)
		}
	}

	return id, nil
}

func (s *ClientService) GetByID(id int) (*models.Client, error) {
	return s.Repo.GetByID(id)
}

func (s *ClientService) Update(client *models.Client) error {
	if strings.TrimSpace(client.Name) == "" {
		return errors.New("name is required")
	}
	return s.Repo.Update(client)
}

func (s *ClientService) List(limit, offset int) ([]*models.Client, error) {
	return s.Repo.List(limit, offset)
}
