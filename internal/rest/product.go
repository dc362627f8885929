package rest

import (
	"context"
	"net/http"
	"strconv"

	"insureAdvisor/domain"
	"insureAdvisor/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

// CatalogService exposes the read-only product table. The catalog is
// loaded once at startup and immutable afterwards, so there is no write
// path here.
type CatalogService interface {
	Products(ctx context.Context) ([]domain.Product, error)
	ProductByID(ctx context.Context, id uint64) (domain.Product, error)
}

type ProductHandler struct {
	catalog CatalogService
}

func NewProductHandler(catalog CatalogService) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
	}
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	products, err := h.catalog.Products(c.Request().Context())
	if err != nil {
		logger.Error("failed to list products", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

func (h *ProductHandler) GetProductByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	product, err := h.catalog.ProductByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(statusForError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(product))
}
