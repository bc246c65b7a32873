package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/rachtours/tour-reservation/internal/utils"
)

// AdminAuth validates an admin access token and guards the admin routes.
// Mobile clients send the token as a bearer header; web clients rely on
// the HttpOnly "token" cookie set at login.  The header wins when both
// are present.  An expired token yields 401 so the client knows to
// refresh; any other invalid token yields 403.
func AdminAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := ""
			if auth := c.Request().Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				raw = strings.TrimPrefix(auth, "Bearer ")
			}
			if raw == "" {
				if ck, err := c.Cookie("token"); err == nil {
					raw = ck.Value
				}
			}
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false, "message": "Unauthorized: Missing token",
				})
			}

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					return c.JSON(http.StatusUnauthorized, echo.Map{
						"success": false, "message": "Token expired. Please refresh or login again.",
					})
				}
				return c.JSON(http.StatusForbidden, echo.Map{
					"success": false, "message": "Forbidden: Invalid token",
				})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok || !tok.Valid {
				return c.JSON(http.StatusForbidden, echo.Map{
					"success": false, "message": "Forbidden: Invalid token",
				})
			}
			if role, _ := claims["role"].(string); role != utils.AdminRole {
				return c.JSON(http.StatusForbidden, echo.Map{
					"success": false, "message": "Forbidden: Invalid token",
				})
			}

			c.Set("role", claims["role"])
			c.Set("jti", claims["jti"])
			return next(c)
		}
	}
}
