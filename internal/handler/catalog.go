package handler

import (
	"errors"
	"net/http"
	"thriftstore/internal/dto"
	"thriftstore/internal/middleware"
	"thriftstore/internal/model"
	"thriftstore/internal/service"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogService  service.CatalogService
	favoriteService service.FavoriteService
}

func NewCatalogHandler(catalogService service.CatalogService, favoriteService service.FavoriteService) *CatalogHandler {
	return &CatalogHandler{
		catalogService:  catalogService,
		favoriteService: favoriteService,
	}
}

// ListProducts is the home page feed: every product, newest first, with the
// favorite flag filled in when a user is logged in.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.catalogService.List(ctx)
	if err != nil {
		return err
	}

	favoriteIDs := map[uint]bool{}
	if userID, ok := middleware.UserID(c); ok {
		favoriteIDs, err = h.favoriteService.IDSet(ctx, userID)
		if err != nil {
			return err
		}
	}

	return c.JSON(http.StatusOK, toProductViews(products, favoriteIDs))
}

func (h *CatalogHandler) ByCategory(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.catalogService.ByCategory(ctx, c.Param("name"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProductViews(products, nil))
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := parseProductID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	product, err := h.catalogService.Get(ctx, productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return err
	}

	views := toProductViews([]*model.Product{product}, nil)
	return c.JSON(http.StatusOK, views[0])
}

func (h *CatalogHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.catalogService.Search(ctx, c.QueryParam("q"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProductViews(products, nil))
}

func toProductViews(products []*model.Product, favoriteIDs map[uint]bool) []dto.ProductView {
	views := make([]dto.ProductView, len(products))
	for i, product := range products {
		views[i] = dto.ProductView{
			ID:          product.ID,
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
			Category:    product.Category,
			IsFavorite:  favoriteIDs[product.ID],
		}
	}
	return views
}
