package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alimikegami/e-commerce/internal/domain"
	"github.com/alimikegami/e-commerce/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockReviewRepository(t *testing.T) (sqlmock.Sqlmock, ReviewRepository) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return mock, CreateNewPostgresReviewRepository(sqlx.NewDb(db, "postgres"))
}

func sampleReview() domain.Review {
	return domain.Review{ProductID: 1, ReviewID: 2, Author: "a", Subject: "s", Content: "c"}
}

var reviewColumns = []string{"id", "version", "product_id", "review_id", "author", "subject", "content"}

func TestPostgresReviewRepository_Save(t *testing.T) {
	mock, repo := newMockReviewRepository(t)
	review := sampleReview()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reviews (version, product_id, review_id, author, subject, content) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id")).
		WithArgs(0, review.ProductID, review.ReviewID, review.Author, review.Subject, review.Content).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))

	saved, err := repo.Save(context.Background(), review)

	require.NoError(t, err)
	assert.Equal(t, int64(10), saved.ID)
	assert.Equal(t, 0, saved.Version)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReviewRepository_SaveDuplicate(t *testing.T) {
	mock, repo := newMockReviewRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reviews")).
		WillReturnError(&pq.Error{Code: uniqueViolation, Message: "duplicate key value violates unique constraint \"reviews_unique_idx\""})

	_, err := repo.Save(context.Background(), sampleReview())

	assert.ErrorIs(t, err, errs.ErrDuplicateKey)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReviewRepository_SaveOtherError(t *testing.T) {
	mock, repo := newMockReviewRepository(t)
	dbErr := errors.New("connection reset")

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reviews")).WillReturnError(dbErr)

	_, err := repo.Save(context.Background(), sampleReview())

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, errs.ErrDuplicateKey)
}

func TestPostgresReviewRepository_FindByProductID(t *testing.T) {
	mock, repo := newMockReviewRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, version, product_id, review_id, author, subject, content FROM reviews WHERE product_id = $1 ORDER BY review_id")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(reviewColumns).
			AddRow(int64(1), 0, 1, 1, "a1", "s1", "c1").
			AddRow(int64(2), 3, 1, 2, "a2", "s2", "c2"))

	reviews, err := repo.FindByProductID(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, 2, reviews[1].ReviewID)
	assert.Equal(t, 3, reviews[1].Version)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReviewRepository_FindByProductIDEmpty(t *testing.T) {
	mock, repo := newMockReviewRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reviews WHERE product_id = $1")).
		WithArgs(113).
		WillReturnRows(sqlmock.NewRows(reviewColumns))

	reviews, err := repo.FindByProductID(context.Background(), 113)

	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestPostgresReviewRepository_DeleteByProductIDIsIdempotent(t *testing.T) {
	mock, repo := newMockReviewRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reviews WHERE product_id = $1")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reviews WHERE product_id = $1")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteByProductID(context.Background(), 1))
	require.NoError(t, repo.DeleteByProductID(context.Background(), 1))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReviewRepository_UpdateOptimisticLock(t *testing.T) {
	mock, repo := newMockReviewRepository(t)
	updateQuery := regexp.QuoteMeta("UPDATE reviews SET author = $1, subject = $2, content = $3, version = version + 1 WHERE id = $4 AND version = $5")

	first := sampleReview()
	first.ID = 10
	first.Author = "first"
	second := sampleReview()
	second.ID = 10
	second.Author = "second"

	mock.ExpectExec(updateQuery).
		WithArgs("first", first.Subject, first.Content, int64(10), 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(updateQuery).
		WithArgs("second", second.Subject, second.Content, int64(10), 0).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.Update(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Version)

	_, err = repo.Update(context.Background(), second)
	assert.ErrorIs(t, err, errs.ErrOptimisticLock)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReviewRepository_CreateSchema(t *testing.T) {
	mock, repo := newMockReviewRepository(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS reviews").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.CreateSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
