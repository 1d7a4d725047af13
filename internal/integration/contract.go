package integration

import (
	"context"

	"github.com/alimikegami/e-commerce/internal/dto"
)

// ProductCompositeIntegration is the composite service's only gateway to the
// product, recommendation and review services. Reads are synchronous HTTP
// calls; creates and deletes are published as events and return as soon as
// the channel accepts them.
type ProductCompositeIntegration interface {
	CreateProduct(ctx context.Context, body dto.Product) (dto.Product, error)
	GetProduct(ctx context.Context, productID int) (dto.Product, error)
	DeleteProduct(ctx context.Context, productID int) error

	CreateRecommendation(ctx context.Context, body dto.Recommendation) (dto.Recommendation, error)
	GetRecommendations(ctx context.Context, productID int) ([]dto.Recommendation, error)
	DeleteRecommendations(ctx context.Context, productID int) error

	CreateReview(ctx context.Context, body dto.Review) (dto.Review, error)
	GetReviews(ctx context.Context, productID int) ([]dto.Review, error)
	DeleteReviews(ctx context.Context, productID int) error
}
