package repository

import (
	"context"

	"github.com/alimikegami/e-commerce/internal/domain"
)

// ProductRepository and its siblings share one contract: Save fails with
// errs.ErrDuplicateKey when the natural key already exists, and Update fails
// with errs.ErrOptimisticLock when the stored version differs from the one
// carried by the entity.
type ProductRepository interface {
	Save(ctx context.Context, data domain.Product) (product domain.Product, err error)
	Update(ctx context.Context, data domain.Product) (product domain.Product, err error)
	FindByProductID(ctx context.Context, productID int) (product domain.Product, err error)
	DeleteByProductID(ctx context.Context, productID int) (err error)
	CreateIndexes(ctx context.Context) (err error)
	Ping(ctx context.Context) (err error)
}

type RecommendationRepository interface {
	Save(ctx context.Context, data domain.Recommendation) (recommendation domain.Recommendation, err error)
	Update(ctx context.Context, data domain.Recommendation) (recommendation domain.Recommendation, err error)
	FindByProductID(ctx context.Context, productID int) (data []domain.Recommendation, err error)
	DeleteByProductID(ctx context.Context, productID int) (err error)
	CreateIndexes(ctx context.Context) (err error)
	Ping(ctx context.Context) (err error)
}

type ReviewRepository interface {
	Save(ctx context.Context, data domain.Review) (review domain.Review, err error)
	Update(ctx context.Context, data domain.Review) (review domain.Review, err error)
	FindByProductID(ctx context.Context, productID int) (data []domain.Review, err error)
	DeleteByProductID(ctx context.Context, productID int) (err error)
	CreateSchema(ctx context.Context) (err error)
	Ping(ctx context.Context) (err error)
}
