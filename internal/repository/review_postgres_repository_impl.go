package repository

import (
	"context"
	"errors"

	"github.com/alimikegami/e-commerce/internal/domain"
	"github.com/alimikegami/e-commerce/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const uniqueViolation = "23505"

const reviewSchema = `
CREATE TABLE IF NOT EXISTS reviews (
	id SERIAL PRIMARY KEY,
	version INT NOT NULL DEFAULT 0,
	product_id INT NOT NULL,
	review_id INT NOT NULL,
	author VARCHAR(255) NOT NULL,
	subject VARCHAR(255) NOT NULL,
	content TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS reviews_unique_idx ON reviews (product_id, review_id);`

type PostgresReviewRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewPostgresReviewRepository(db *sqlx.DB) ReviewRepository {
	return &PostgresReviewRepositoryImpl{db: db}
}

func (r *PostgresReviewRepositoryImpl) CreateSchema(ctx context.Context) (err error) {
	_, err = r.db.ExecContext(ctx, reviewSchema)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CreateSchema").Msg("")
	}

	return
}

func (r *PostgresReviewRepositoryImpl) Save(ctx context.Context, data domain.Review) (review domain.Review, err error) {
	data.Version = 0
	row := r.db.QueryRowxContext(ctx,
		"INSERT INTO reviews (version, product_id, review_id, author, subject, content) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id",
		data.Version, data.ProductID, data.ReviewID, data.Author, data.Subject, data.Content)

	err = row.Scan(&data.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return review, errs.ErrDuplicateKey
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "SaveReview").Msg("")
		return
	}

	return data, nil
}

func (r *PostgresReviewRepositoryImpl) Update(ctx context.Context, data domain.Review) (review domain.Review, err error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE reviews SET author = $1, subject = $2, content = $3, version = version + 1 WHERE id = $4 AND version = $5",
		data.Author, data.Subject, data.Content, data.ID, data.Version)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateReview").Msg("")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateReview").Msg("")
		return
	}

	if affected == 0 {
		log.Ctx(ctx).Warn().Str("component", "UpdateReview").Int("productId", data.ProductID).Int("reviewId", data.ReviewID).Msg("stale review version")
		return review, errs.ErrOptimisticLock
	}

	data.Version++
	return data, nil
}

func (r *PostgresReviewRepositoryImpl) FindByProductID(ctx context.Context, productID int) (data []domain.Review, err error) {
	data = []domain.Review{}
	err = r.db.SelectContext(ctx, &data,
		"SELECT id, version, product_id, review_id, author, subject, content FROM reviews WHERE product_id = $1 ORDER BY review_id",
		productID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "FindReviews").Msg("")
		return nil, err
	}

	return data, nil
}

func (r *PostgresReviewRepositoryImpl) DeleteByProductID(ctx context.Context, productID int) (err error) {
	_, err = r.db.ExecContext(ctx, "DELETE FROM reviews WHERE product_id = $1", productID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteReviews").Msg("")
	}

	return
}

func (r *PostgresReviewRepositoryImpl) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
