package handler

import (
	"errors"
	"net/http"
	"strconv"
	"thriftstore/internal/middleware"
	"thriftstore/internal/service"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// Add merges the posted quantity (default 1) into the user's cart row for the
// product, then sends the browser to the cart view.
func (h *CartHandler) Add(c echo.Context) error {
	ctx := c.Request().Context()
	userID, _ := middleware.UserID(c)

	productID, err := parseProductID(c.FormValue("productId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid productId")
	}

	quantity := int32(1)
	if raw := c.FormValue("quantity"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
		quantity = int32(parsed)
	}

	if err := h.cartService.Add(ctx, userID, productID, quantity); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return err
	}

	return c.Redirect(http.StatusFound, "/cart")
}

func (h *CartHandler) Remove(c echo.Context) error {
	ctx := c.Request().Context()
	userID, _ := middleware.UserID(c)

	productID, err := parseProductID(c.FormValue("productId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid productId")
	}

	if err := h.cartService.Remove(ctx, userID, productID); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, "/cart")
}

func (h *CartHandler) View(c echo.Context) error {
	ctx := c.Request().Context()
	userID, _ := middleware.UserID(c)

	view, err := h.cartService.View(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}
