package controller

import (
	"strconv"

	"github.com/alimikegami/e-commerce/pkg/errs"
	"github.com/labstack/echo/v4"
)

const productIDParam = "productId"

func pathProductID(e echo.Context) (int, error) {
	productID, err := strconv.Atoi(e.Param(productIDParam))
	if err != nil {
		return 0, errs.BadRequest("Type mismatch.")
	}
	return productID, nil
}

func queryProductID(e echo.Context) (int, error) {
	raw := e.QueryParam(productIDParam)
	if raw == "" {
		return 0, errs.BadRequest("Required int parameter '%s' is not present", productIDParam)
	}

	productID, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.BadRequest("Type mismatch.")
	}
	return productID, nil
}

func bindBody(e echo.Context, body interface{}) error {
	if err := e.Bind(body); err != nil {
		return errs.BadRequest("Failed to read request: %v", err)
	}
	return nil
}
