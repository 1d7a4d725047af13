package controller

import (
	"github.com/alimikegami/e-commerce/internal/dto"
	"github.com/alimikegami/e-commerce/internal/service"
	"github.com/alimikegami/e-commerce/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(g *echo.Group, service service.ProductService) {
	c := ProductController{
		service: service,
	}
	g.POST("/product", c.CreateProduct)
	g.GET("/product/:productId", c.GetProduct)
	g.DELETE("/product/:productId", c.DeleteProduct)
}

func (c *ProductController) CreateProduct(e echo.Context) error {
	var body dto.Product
	if err := bindBody(e, &body); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "CreateProduct").Msg("")
		return response.WriteErrorResponse(e, err)
	}

	product, err := c.service.CreateProduct(e.Request().Context(), body)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, product)
}

func (c *ProductController) GetProduct(e echo.Context) error {
	productID, err := pathProductID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	product, err := c.service.GetProduct(e.Request().Context(), productID)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, product)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	productID, err := pathProductID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	if err := c.service.DeleteProduct(e.Request().Context(), productID); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, nil)
}
