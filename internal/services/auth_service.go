package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"bankingsystem/internal/middleware"
	"bankingsystem/internal/models"
	"bankingsystem/internal/repositories"
)

// AuthService проверяет учётные данные и выпускает access-токены.
type AuthService struct {
	Repo repositories.ClientRepository
	TTL  time.Duration
}

func NewAuthService(repo repositories.ClientRepository, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{Repo: repo, TTL: ttl}
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *AuthService) CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// VerifyClient resolves credentials to a client via the unique email index.
// Returns (nil, nil) when the email is unknown or the password does not match.
func (s *AuthService) VerifyClient(email, password string) (*models.Client, error) {
	client, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if client == nil || !s.CheckPassword(client.PasswordHash, password) {
		return nil, nil
	}
	return client, nil
}

func (s *AuthService) GenerateToken(client *models.Client) (string, error) {
	claims := &middleware.Claims{
		ClientID: client.ID,
		Email:    client.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.TTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(middleware.JWTKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
