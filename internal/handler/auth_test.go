package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"

	"github.com/rachtours/tour-reservation/internal/repository"
	"github.com/rachtours/tour-reservation/internal/utils"
)

func newAuthHandler(t *testing.T, adminToken, passwordHash string) (*AuthHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := testConfig()
	cfg.AdminToken = adminToken
	cfg.AdminPasswordHash = passwordHash
	return NewAuthHandler(cfg, repository.NewTokenRepo(db)), mock
}

func TestLoginWrongPassword(t *testing.T) {
	h, mock := newAuthHandler(t, "hunter2", "")

	c, rec := postJSON("/api/auth/login", `{"password":"wrong"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("rejected login touched the DB: %v", err)
	}
}

func TestLoginMissingPassword(t *testing.T) {
	h, _ := newAuthHandler(t, "hunter2", "")

	c, rec := postJSON("/api/auth/login", `{}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLoginIssuesTokensAndCookie(t *testing.T) {
	h, mock := newAuthHandler(t, "hunter2", "")

	mock.ExpectExec("INSERT INTO refresh_tokens").
		WillReturnResult(sqlmock.NewResult(1, 1))

	c, rec := postJSON("/api/auth/login", `{"password":"hunter2"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success      bool   `json:"success"`
		Token        string `json:"token"`
		RefreshToken string `json:"refreshToken"`
		ExpiresIn    int    `json:"expiresIn"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Token == "" || resp.RefreshToken == "" {
		t.Fatalf("incomplete login response: %+v", resp)
	}
	if resp.ExpiresIn != 3600 {
		t.Fatalf("expiresIn = %d, want 3600", resp.ExpiresIn)
	}

	// The access token must be a valid admin JWT.
	tok, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("access token invalid: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["role"] != utils.AdminRole {
		t.Fatalf("role claim = %v", claims["role"])
	}

	cookieFound := false
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "token" && ck.HttpOnly && ck.Value == resp.Token {
			cookieFound = true
		}
	}
	if !cookieFound {
		t.Fatal("HttpOnly token cookie not set")
	}
}

func TestLoginWithPasswordHash(t *testing.T) {
	hash, err := utils.HashPassword("s3cret", 4)
	if err != nil {
		t.Fatal(err)
	}
	h, mock := newAuthHandler(t, "", hash)

	mock.ExpectExec("INSERT INTO refresh_tokens").
		WillReturnResult(sqlmock.NewResult(1, 1))

	c, rec := postJSON("/api/auth/login", `{"password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestRefreshUnknownToken(t *testing.T) {
	h, mock := newAuthHandler(t, "hunter2", "")

	mock.ExpectQuery("SELECT expires_at, revoked_at FROM refresh_tokens").
		WillReturnRows(sqlmock.NewRows([]string{"expires_at", "revoked_at"}))

	c, rec := postJSON("/api/auth/refresh", `{"refreshToken":"deadbeef"}`)
	if err := h.Refresh(c); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestRefreshRevokedToken(t *testing.T) {
	h, mock := newAuthHandler(t, "hunter2", "")

	mock.ExpectQuery("SELECT expires_at, revoked_at FROM refresh_tokens").
		WillReturnRows(sqlmock.NewRows([]string{"expires_at", "revoked_at"}).
			AddRow(time.Now().Add(24*time.Hour), time.Now()))

	c, rec := postJSON("/api/auth/refresh", `{"refreshToken":"deadbeef"}`)
	if err := h.Refresh(c); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Message != "Token has been revoked" {
		t.Fatalf("message = %q", resp.Message)
	}
}

func TestRefreshExpiredToken(t *testing.T) {
	h, mock := newAuthHandler(t, "hunter2", "")

	mock.ExpectQuery("SELECT expires_at, revoked_at FROM refresh_tokens").
		WillReturnRows(sqlmock.NewRows([]string{"expires_at", "revoked_at"}).
			AddRow(time.Now().Add(-time.Hour), nil))

	c, rec := postJSON("/api/auth/refresh", `{"refreshToken":"deadbeef"}`)
	if err := h.Refresh(c); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Message != "Invalid or expired refresh token" {
		t.Fatalf("message = %q", resp.Message)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	h, mock := newAuthHandler(t, "hunter2", "")

	mock.ExpectExec("UPDATE refresh_tokens SET revoked_at").
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, rec := postJSON("/api/auth/logout", `{"refreshToken":"deadbeef"}`)
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}

	cleared := false
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "token" && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("token cookie was not cleared")
	}
}
