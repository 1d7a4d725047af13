package service

import (
	"context"

	"github.com/alimikegami/e-commerce/internal/dto"
)

type ProductService interface {
	CreateProduct(ctx context.Context, body dto.Product) (product dto.Product, err error)
	GetProduct(ctx context.Context, productID int) (product dto.Product, err error)
	DeleteProduct(ctx context.Context, productID int) (err error)
	HandleEvent(ctx context.Context, event dto.Event) (err error)
	Health(ctx context.Context) dto.Health
}

type RecommendationService interface {
	CreateRecommendation(ctx context.Context, body dto.Recommendation) (recommendation dto.Recommendation, err error)
	GetRecommendations(ctx context.Context, productID int) (data []dto.Recommendation, err error)
	DeleteRecommendations(ctx context.Context, productID int) (err error)
	HandleEvent(ctx context.Context, event dto.Event) (err error)
	Health(ctx context.Context) dto.Health
}

type ReviewService interface {
	CreateReview(ctx context.Context, body dto.Review) (review dto.Review, err error)
	GetReviews(ctx context.Context, productID int) (data []dto.Review, err error)
	DeleteReviews(ctx context.Context, productID int) (err error)
	HandleEvent(ctx context.Context, event dto.Event) (err error)
	Health(ctx context.Context) dto.Health
}

type ProductCompositeService interface {
	CreateProduct(ctx context.Context, body dto.ProductAggregate) (err error)
	GetProduct(ctx context.Context, productID int) (aggregate dto.ProductAggregate, err error)
	DeleteProduct(ctx context.Context, productID int) (err error)
}

// HealthService reports the composite view of the downstream services.
type HealthService interface {
	Poll(ctx context.Context)
	Health(ctx context.Context) dto.Health
}
