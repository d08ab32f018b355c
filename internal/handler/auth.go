package handler

import (
	"net/http"
	"thriftstore/internal/service"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const stateCookieName = "oauth_state"

type AuthHandler struct {
	authService service.AuthService
	cookieName  string
}

func NewAuthHandler(authService service.AuthService, cookieName string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieName:  cookieName,
	}
}

// Login kicks off the provider redirect dance. The state token is mirrored in
// a short-lived cookie and checked again at the callback.
func (h *AuthHandler) Login(c echo.Context) error {
	state := uuid.NewString()

	c.SetCookie(&http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
	})

	return c.Redirect(http.StatusFound, h.authService.LoginURL(state))
}

func (h *AuthHandler) Callback(c echo.Context) error {
	ctx := c.Request().Context()

	stateCookie, err := c.Cookie(stateCookieName)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != c.QueryParam("state") {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid oauth state")
	}

	code := c.QueryParam("code")
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing auth code")
	}

	session, err := h.authService.HandleCallback(ctx, code)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
	})

	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	if cookie, err := c.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		if err := h.authService.Logout(ctx, cookie.Value); err != nil {
			return err
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return c.Redirect(http.StatusFound, "/")
}
