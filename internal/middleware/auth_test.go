package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"thriftstore/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	users map[string]*model.User
}

func (s *stubAuthService) LoginURL(string) string { return "https://accounts.example/auth" }

func (s *stubAuthService) HandleCallback(context.Context, string) (*model.Session, error) {
	return nil, nil
}

func (s *stubAuthService) Logout(context.Context, string) error { return nil }

func (s *stubAuthService) UserFromSession(_ context.Context, token string) (*model.User, error) {
	return s.users[token], nil
}

func TestRequireAuthRedirectsAnonymousToLogin(t *testing.T) {
	e := echo.New()
	handlerRan := false
	e.GET("/cart", func(c echo.Context) error {
		handlerRan = true
		return c.NoContent(http.StatusOK)
	}, RequireAuth())

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/google", rec.Header().Get(echo.HeaderLocation))
	assert.False(t, handlerRan, "handler must not run for anonymous requests")
}

func TestSessionMiddlewareResolvesCookieToUser(t *testing.T) {
	auth := &stubAuthService{users: map[string]*model.User{
		"tok-1": {GoogleID: "g-1", Name: "Ada"},
	}}

	e := echo.New()
	e.Use(Session(auth, "session_token"))
	e.GET("/cart", func(c echo.Context) error {
		userID, ok := UserID(c)
		require.True(t, ok)
		assert.Equal(t, "g-1", userID)
		assert.Equal(t, "Ada", UserName(c))
		return c.NoContent(http.StatusOK)
	}, RequireAuth())

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: "tok-1"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionMiddlewareIgnoresUnknownToken(t *testing.T) {
	auth := &stubAuthService{users: map[string]*model.User{}}

	e := echo.New()
	e.Use(Session(auth, "session_token"))
	e.GET("/cart", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RequireAuth())

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: "tok-unknown"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/google", rec.Header().Get(echo.HeaderLocation))
}
