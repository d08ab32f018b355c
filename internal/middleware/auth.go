package middleware

import (
	"net/http"
	"thriftstore/internal/service"

	"github.com/labstack/echo/v4"
)

const (
	userIDKey   = "user_id"
	userNameKey = "user_name"
)

// Session resolves the session cookie into the current user on every request.
// A missing, unknown, or expired token just leaves the request anonymous.
func Session(authService service.AuthService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err == nil && cookie.Value != "" {
				user, err := authService.UserFromSession(c.Request().Context(), cookie.Value)
				if err == nil && user != nil {
					c.Set(userIDKey, user.GoogleID)
					c.Set(userNameKey, user.Name)
				}
			}
			return next(c)
		}
	}
}

// RequireAuth redirects anonymous requests to the login flow before any
// handler can touch storage.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := UserID(c); !ok {
				return c.Redirect(http.StatusFound, "/auth/google")
			}
			return next(c)
		}
	}
}

func UserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(userIDKey).(string)
	return userID, ok && userID != ""
}

func UserName(c echo.Context) string {
	name, _ := c.Get(userNameKey).(string)
	return name
}
