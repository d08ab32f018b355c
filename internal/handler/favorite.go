package handler

import (
	"net/http"
	"strconv"
	"thriftstore/internal/middleware"
	"thriftstore/internal/service"

	"github.com/labstack/echo/v4"
)

type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

func (h *FavoriteHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	userID, _ := middleware.UserID(c)

	products, err := h.favoriteService.List(ctx, userID)
	if err != nil {
		return err
	}

	views := toProductViews(products, nil)
	for i := range views {
		views[i].IsFavorite = true
	}

	return c.JSON(http.StatusOK, views)
}

// Toggle flips the favorite and sends the browser back where it came from.
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	ctx := c.Request().Context()
	userID, _ := middleware.UserID(c)

	productID, err := parseProductID(c.FormValue("productId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid productId")
	}

	if _, err := h.favoriteService.Toggle(ctx, userID, productID); err != nil {
		return err
	}

	back := c.Request().Referer()
	if back == "" {
		back = "/"
	}
	return c.Redirect(http.StatusFound, back)
}

func parseProductID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
