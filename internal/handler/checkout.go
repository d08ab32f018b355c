package handler

import (
	"errors"
	"net/http"
	"thriftstore/internal/client"
	"thriftstore/internal/middleware"
	"thriftstore/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// Checkout converts the current cart into a gateway order and returns the
// fields the payment page needs. Gateway failures surface distinctly from
// internal ones.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	userID, _ := middleware.UserID(c)
	userName := middleware.UserName(c)

	view, err := h.checkoutService.Checkout(ctx, userID, userName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			return echo.NewHTTPError(http.StatusConflict, "cart is empty")
		case errors.Is(err, client.ErrGateway):
			return echo.NewHTTPError(http.StatusBadGateway, "checkout failed")
		default:
			return err
		}
	}

	return c.JSON(http.StatusOK, view)
}
