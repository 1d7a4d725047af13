package controller

import (
	"github.com/alimikegami/e-commerce/internal/dto"
	"github.com/alimikegami/e-commerce/internal/service"
	"github.com/alimikegami/e-commerce/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ReviewController struct {
	service service.ReviewService
}

func CreateReviewController(g *echo.Group, service service.ReviewService) {
	c := ReviewController{
		service: service,
	}
	g.POST("/review", c.CreateReview)
	g.GET("/review", c.GetReviews)
	g.DELETE("/review", c.DeleteReviews)
}

func (c *ReviewController) CreateReview(e echo.Context) error {
	var body dto.Review
	if err := bindBody(e, &body); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "CreateReview").Msg("")
		return response.WriteErrorResponse(e, err)
	}

	review, err := c.service.CreateReview(e.Request().Context(), body)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, review)
}

func (c *ReviewController) GetReviews(e echo.Context) error {
	productID, err := queryProductID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	reviews, err := c.service.GetReviews(e.Request().Context(), productID)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, reviews)
}

func (c *ReviewController) DeleteReviews(e echo.Context) error {
	productID, err := queryProductID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	if err := c.service.DeleteReviews(e.Request().Context(), productID); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, nil)
}
