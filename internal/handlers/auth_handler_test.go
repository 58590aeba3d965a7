package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"bankingsystem/internal/services"
)

func newAuthRouter() (*gin.Engine, *stubClientRepo) {
	gin.SetMode(gin.TestMode)
	repo := newStubClientRepo()
	authService := services.NewAuthService(repo, time.Hour)
	clientService := services.NewClientService(repo, nil, authService)
	h := NewAuthHandler(clientService, authService)

	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	return r, repo
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	r, _ := newAuthRouter()

	w := postJSON(r, "/api/auth/register", gin.H{
		"name":        "Alice",
		"email":       "alice@example.com",
		"national_id": "ID-1",
		"phone":       "100",
		"password":    "s3cret",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register status=%d body=%s", w.Code, w.Body.String())
	}
	var reg struct {
		Message  string `json:"message"`
		ClientID int64  `json:"client_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &reg); err != nil {
		t.Fatal(err)
	}
	if reg.ClientID <= 0 {
		t.Fatalf("client_id=%d want positive", reg.ClientID)
	}

	w = postJSON(r, "/api/auth/login", gin.H{"email": "alice@example.com", "password": "s3cret"})
	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d body=%s", w.Code, w.Body.String())
	}
	var login struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil {
		t.Fatal(err)
	}
	if login.AccessToken == "" || login.TokenType != "bearer" {
		t.Fatalf("login response=%+v", login)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := newAuthRouter()

	postJSON(r, "/api/auth/register", gin.H{
		"name":        "Alice",
		"email":       "alice@example.com",
		"national_id": "ID-1",
		"phone":       "100",
		"password":    "s3cret",
	})

	if w := postJSON(r, "/api/auth/login", gin.H{"email": "alice@example.com", "password": "wrong"}); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: status=%d want=401", w.Code)
	}
	if w := postJSON(r, "/api/auth/login", gin.H{"email": "nobody@example.com", "password": "s3cret"}); w.Code != http.StatusUnauthorized {
		t.Fatalf("unknown email: status=%d want=401", w.Code)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := newAuthRouter()

	body := gin.H{
		"name":        "Alice",
		"email":       "alice@example.com",
		"national_id": "ID-1",
		"phone":       "100",
		"password":    "s3cret",
	}
	if w := postJSON(r, "/api/auth/register", body); w.Code != http.StatusOK {
		t.Fatalf("first register status=%d", w.Code)
	}
	if w := postJSON(r, "/api/auth/register", body); w.Code != http.StatusBadRequest {
		t.Fatalf("second register status=%d want=400", w.Code)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	r, _ := newAuthRouter()

	if w := postJSON(r, "/api/auth/register", gin.H{"name": "Alice"}); w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want=400", w.Code)
	}
}
