package controller

import (
	"github.com/alimikegami/e-commerce/internal/dto"
	"github.com/alimikegami/e-commerce/internal/service"
	"github.com/alimikegami/e-commerce/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type RecommendationController struct {
	service service.RecommendationService
}

func CreateRecommendationController(g *echo.Group, service service.RecommendationService) {
	c := RecommendationController{
		service: service,
	}
	g.POST("/recommendation", c.CreateRecommendation)
	g.GET("/recommendation", c.GetRecommendations)
	g.DELETE("/recommendation", c.DeleteRecommendations)
}

func (c *RecommendationController) CreateRecommendation(e echo.Context) error {
	var body dto.Recommendation
	if err := bindBody(e, &body); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "CreateRecommendation").Msg("")
		return response.WriteErrorResponse(e, err)
	}

	recommendation, err := c.service.CreateRecommendation(e.Request().Context(), body)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, recommendation)
}

func (c *RecommendationController) GetRecommendations(e echo.Context) error {
	productID, err := queryProductID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	recommendations, err := c.service.GetRecommendations(e.Request().Context(), productID)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, recommendations)
}

func (c *RecommendationController) DeleteRecommendations(e echo.Context) error {
	productID, err := queryProductID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	if err := c.service.DeleteRecommendations(e.Request().Context(), productID); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, nil)
}
