package controller

import (
	"github.com/alimikegami/e-commerce/internal/dto"
	"github.com/alimikegami/e-commerce/internal/service"
	"github.com/alimikegami/e-commerce/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductCompositeController struct {
	service service.ProductCompositeService
}

func CreateProductCompositeController(g *echo.Group, service service.ProductCompositeService) {
	c := ProductCompositeController{
		service: service,
	}
	g.POST("/product-composite", c.CreateProduct)
	g.GET("/product-composite/:productId", c.GetProduct)
	g.DELETE("/product-composite/:productId", c.DeleteProduct)
}

func (c *ProductCompositeController) CreateProduct(e echo.Context) error {
	var body dto.ProductAggregate
	if err := bindBody(e, &body); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "CreateCompositeProduct").Msg("")
		return response.WriteErrorResponse(e, err)
	}

	if err := c.service.CreateProduct(e.Request().Context(), body); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, nil)
}

func (c *ProductCompositeController) GetProduct(e echo.Context) error {
	productID, err := pathProductID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	aggregate, err := c.service.GetProduct(e.Request().Context(), productID)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, aggregate)
}

func (c *ProductCompositeController) DeleteProduct(e echo.Context) error {
	productID, err := pathProductID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	if err := c.service.DeleteProduct(e.Request().Context(), productID); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, nil)
}
