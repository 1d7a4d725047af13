package service

import (
	"context"
	"errors"

	"github.com/alimikegami/e-commerce/internal/dto"
	"github.com/alimikegami/e-commerce/internal/integration"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type ProductCompositeServiceImpl struct {
	integration    integration.ProductCompositeIntegration
	serviceAddress string
}

func CreateProductCompositeService(integration integration.ProductCompositeIntegration, serviceAddress string) ProductCompositeService {
	return &ProductCompositeServiceImpl{integration: integration, serviceAddress: serviceAddress}
}

// CreateProduct publishes the product first, then every recommendation and
// review. Once the product is accepted, a failing child publish is logged and
// the remaining children are still attempted.
func (s *ProductCompositeServiceImpl) CreateProduct(ctx context.Context, body dto.ProductAggregate) (err error) {
	if err = validateProductID(body.ProductID); err != nil {
		return
	}

	log.Ctx(ctx).Debug().Str("component", "CreateCompositeProduct").Msgf("will create a new composite entity for product.id: %d", body.ProductID)

	product := dto.Product{ProductID: body.ProductID, Name: body.Name, Weight: body.Weight}
	if _, err = s.integration.CreateProduct(ctx, product); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "CreateCompositeProduct").Msg("createCompositeProduct failed")
		return
	}

	for _, summary := range body.Recommendations {
		if _, err := s.integration.CreateRecommendation(ctx, dto.RecommendationFromSummary(body.ProductID, summary)); err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("component", "CreateCompositeProduct").Int("recommendationId", summary.RecommendationID).Msg("failed to publish recommendation")
		}
	}

	for _, summary := range body.Reviews {
		if _, err := s.integration.CreateReview(ctx, dto.ReviewFromSummary(body.ProductID, summary)); err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("component", "CreateCompositeProduct").Int("reviewId", summary.ReviewID).Msg("failed to publish review")
		}
	}

	log.Ctx(ctx).Debug().Str("component", "CreateCompositeProduct").Msgf("composite entities created for productId: %d", body.ProductID)
	return nil
}

// GetProduct fetches the three parts concurrently. The first error that is
// not absorbed by the integration's degrade policy fails the aggregate.
func (s *ProductCompositeServiceImpl) GetProduct(ctx context.Context, productID int) (aggregate dto.ProductAggregate, err error) {
	if err = validateProductID(productID); err != nil {
		return
	}

	log.Ctx(ctx).Debug().Str("component", "GetCompositeProduct").Msgf("will get composite product info for product.id=%d", productID)

	var (
		product         dto.Product
		recommendations []dto.Recommendation
		reviews         []dto.Review
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		product, err = s.integration.GetProduct(gctx, productID)
		return
	})
	g.Go(func() (err error) {
		recommendations, err = s.integration.GetRecommendations(gctx, productID)
		return
	})
	g.Go(func() (err error) {
		reviews, err = s.integration.GetReviews(gctx, productID)
		return
	})

	if err = g.Wait(); err != nil {
		return
	}

	return createProductAggregate(product, recommendations, reviews, s.serviceAddress), nil
}

func (s *ProductCompositeServiceImpl) DeleteProduct(ctx context.Context, productID int) (err error) {
	if err = validateProductID(productID); err != nil {
		return
	}

	log.Ctx(ctx).Debug().Str("component", "DeleteCompositeProduct").Msgf("will delete a product aggregate for product.id: %d", productID)

	err = errors.Join(
		s.integration.DeleteProduct(ctx, productID),
		s.integration.DeleteRecommendations(ctx, productID),
		s.integration.DeleteReviews(ctx, productID),
	)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "DeleteCompositeProduct").Msg("delete failed")
	}
	return
}

func createProductAggregate(product dto.Product, recommendations []dto.Recommendation, reviews []dto.Review, serviceAddress string) dto.ProductAggregate {
	recommendationSummaries := make([]dto.RecommendationSummary, 0, len(recommendations))
	for _, r := range recommendations {
		recommendationSummaries = append(recommendationSummaries, dto.RecommendationSummaryFromRecommendation(r))
	}

	reviewSummaries := make([]dto.ReviewSummary, 0, len(reviews))
	for _, r := range reviews {
		reviewSummaries = append(reviewSummaries, dto.ReviewSummaryFromReview(r))
	}

	addresses := dto.ServiceAddresses{
		CompositeAddress: serviceAddress,
		ProductAddress:   product.ServiceAddress,
	}
	if len(recommendations) > 0 {
		addresses.RecommendationAddress = recommendations[0].ServiceAddress
	}
	if len(reviews) > 0 {
		addresses.ReviewAddress = reviews[0].ServiceAddress
	}

	return dto.ProductAggregate{
		ProductID:        product.ProductID,
		Name:             product.Name,
		Weight:           product.Weight,
		Recommendations:  recommendationSummaries,
		Reviews:          reviewSummaries,
		ServiceAddresses: addresses,
	}
}
