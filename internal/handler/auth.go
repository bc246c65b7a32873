package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rachtours/tour-reservation/internal/config"
	"github.com/rachtours/tour-reservation/internal/repository"
	"github.com/rachtours/tour-reservation/internal/utils"
)

// AuthHandler implements the single-operator admin session: a password
// login that issues a short-lived JWT access token plus an opaque
// refresh token whose hash lives in the database.  Because revocation is
// a row update, a logout survives server restarts.
type AuthHandler struct {
	Cfg    config.Config
	Tokens *repository.TokenRepo
}

func NewAuthHandler(cfg config.Config, t *repository.TokenRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Tokens: t}
}

type loginReq struct {
	Password string `json:"password"`
}

type refreshReq struct {
	RefreshToken string `json:"refreshToken"`
}

// checkPassword verifies the admin credential.  A bcrypt hash is
// preferred when configured; the plain shared token is compared in
// constant time as the fallback.
func (h *AuthHandler) checkPassword(password string) bool {
	if h.Cfg.AdminPasswordHash != "" {
		return utils.VerifyPassword(h.Cfg.AdminPasswordHash, password)
	}
	return utils.SecretsEqual(password, h.Cfg.AdminToken)
}

// setTokenCookie installs the HttpOnly access token cookie web clients
// authenticate with.
func (h *AuthHandler) setTokenCookie(c echo.Context, token string, exp time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  exp,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.Cfg.Env == "prod",
		SameSite: http.SameSiteStrictMode,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Password is required",
		})
	}
	if !h.checkPassword(req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"success": false, "message": "Invalid credentials",
		})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Failed to issue token",
		})
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Failed to issue token",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()
	if err := h.Tokens.StoreRefresh(ctx, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Failed to issue token",
		})
	}

	h.setTokenCookie(c, access.Token, access.Exp)
	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"message":      "Logged in successfully",
		"token":        access.Token,
		"refreshToken": refresh.Raw,
		"expiresIn":    h.Cfg.AccessTTLMin * 60,
	})
}

// Refresh handles POST /api/auth/refresh.  A live refresh token yields a
// new access token only; the refresh token itself is not rotated.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Refresh token required",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()
	err := h.Tokens.ValidateRefresh(ctx, utils.HashRefreshRaw(req.RefreshToken))
	switch {
	case err == nil:
		// live token, fall through
	case errors.Is(err, repository.ErrTokenRevoked):
		return c.JSON(http.StatusForbidden, echo.Map{
			"success": false, "message": "Token has been revoked",
		})
	case errors.Is(err, sql.ErrNoRows), errors.Is(err, repository.ErrTokenExpired):
		return c.JSON(http.StatusForbidden, echo.Map{
			"success": false, "message": "Invalid or expired refresh token",
		})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Failed to refresh token",
		})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Failed to issue token",
		})
	}
	h.setTokenCookie(c, access.Token, access.Exp)
	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"token":     access.Token,
		"expiresIn": h.Cfg.AccessTTLMin * 60,
	})
}

// Logout handles POST /api/auth/logout.  The refresh token, when sent,
// is revoked server-side; the cookie is cleared either way.  Logout is
// deliberately idempotent and never fails on an unknown token.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshReq
	_ = c.Bind(&req)
	if req.RefreshToken != "" {
		ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
		defer cancel()
		_ = h.Tokens.RevokeByHash(ctx, utils.HashRefreshRaw(req.RefreshToken))
	}

	c.SetCookie(&http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Logged out"})
}
