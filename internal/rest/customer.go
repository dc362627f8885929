package rest

import (
	"context"
	"net/http"
	"strconv"

	"insureAdvisor/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type CustomerService interface {
	CustomerByID(ctx context.Context, id uint) (domain.Customer, error)
}

type CustomerHandler struct {
	customers CustomerService
}

func NewCustomerHandler(customers CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customers: customers,
	}
}

func (h *CustomerHandler) GetCustomerByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid customer id"})
	}

	customer, err := h.customers.CustomerByID(c.Request().Context(), uint(id))
	if err != nil {
		return c.JSON(statusForError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(customer))
}
