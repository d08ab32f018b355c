package server

import (
	"thriftstore/internal/handler"
	appmiddleware "thriftstore/internal/middleware"
	"thriftstore/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	authHandler     *handler.AuthHandler
	catalogHandler  *handler.CatalogHandler
	favoriteHandler *handler.FavoriteHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
}

func NewServer(
	authService service.AuthService,
	catalogService service.CatalogService,
	favoriteService service.FavoriteService,
	cartService service.CartService,
	checkoutService service.CheckoutService,
	sessionCookieName string,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(appmiddleware.Session(authService, sessionCookieName))

	s := &Server{
		echo:            e,
		authHandler:     handler.NewAuthHandler(authService, sessionCookieName),
		catalogHandler:  handler.NewCatalogHandler(catalogService, favoriteService),
		favoriteHandler: handler.NewFavoriteHandler(favoriteService),
		cartHandler:     handler.NewCartHandler(cartService),
		checkoutHandler: handler.NewCheckoutHandler(checkoutService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/api/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- public catalog --------
	s.echo.GET("/", s.catalogHandler.ListProducts)
	s.echo.GET("/product/:id", s.catalogHandler.GetProduct)
	s.echo.GET("/category/:name", s.catalogHandler.ByCategory)
	s.echo.GET("/search", s.catalogHandler.Search)

	// -------- auth --------
	s.echo.GET("/auth/google", s.authHandler.Login)
	s.echo.GET("/auth/google/callback", s.authHandler.Callback)
	s.echo.GET("/logout", s.authHandler.Logout)

	// -------- logged-in shopper --------
	authed := s.echo.Group("", appmiddleware.RequireAuth())
	authed.GET("/favorites", s.favoriteHandler.List)
	authed.POST("/favorites/toggle", s.favoriteHandler.Toggle)
	authed.GET("/cart", s.cartHandler.View)
	authed.POST("/cart/add", s.cartHandler.Add)
	authed.POST("/cart/remove", s.cartHandler.Remove)
	authed.GET("/checkout", s.checkoutHandler.Checkout)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
