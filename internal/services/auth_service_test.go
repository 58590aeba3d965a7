package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bankingsystem/internal/middleware"
	"bankingsystem/internal/models"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	s := NewAuthService(newFakeClientRepo(), time.Hour)

	hash, err := s.HashPassword("s3cret")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal the plain password")
	}
	if !s.CheckPassword(hash, "s3cret") {
		t.Fatal("correct password rejected")
	}
	if s.CheckPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
}

func TestVerifyClient(t *testing.T) {
	repo := newFakeClientRepo()
	s := NewAuthService(repo, time.Hour)

	hash, err := s.HashPassword("pass123")
	if err != nil {
		t.Fatal(err)
	}
	id, err := repo.Create(&models.Client{
		Name:         "Alice",
		Email:        "alice@example.com",
		IDCard:       "ID-1",
		Phone:        "100",
		PasswordHash: hash,
	})
	if err != nil {
		t.Fatal(err)
	}

	client, err := s.VerifyClient("alice@example.com", "pass123")
	if err != nil {
		t.Fatal(err)
	}
	if client == nil || client.ID != int(id) {
		t.Fatalf("got=%+v want clientID=%d", client, id)
	}

	if got, _ := s.VerifyClient("alice@example.com", "wrong"); got != nil {
		t.Fatalf("wrong password: got=%+v want nil", got)
	}
	if got, _ := s.VerifyClient("nobody@example.com", "pass123"); got != nil {
		t.Fatalf("unknown email: got=%+v want nil", got)
	}
}

func TestGenerateTokenClaims(t *testing.T) {
	s := NewAuthService(newFakeClientRepo(), 24*time.Hour)
	client := &models.Client{ID: 7, Email: "bob@example.com"}

	tokenStr, err := s.GenerateToken(client)
	if err != nil {
		t.Fatal(err)
	}

	claims := &middleware.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return middleware.JWTKey, nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parse token: err=%v valid=%v", err, token != nil && token.Valid)
	}
	if claims.ClientID != 7 || claims.Email != "bob@example.com" {
		t.Fatalf("claims=%+v want client_id=7 email=bob@example.com", claims)
	}

	// expiry roughly 24h out
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Fatalf("ttl=%s want ~24h", ttl)
	}
}
