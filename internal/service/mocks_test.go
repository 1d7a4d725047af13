package service

import (
	"context"

	"github.com/alimikegami/e-commerce/internal/domain"
	"github.com/alimikegami/e-commerce/internal/dto"
	"github.com/alimikegami/e-commerce/pkg/httpclient"
	"github.com/stretchr/testify/mock"
)

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Save(ctx context.Context, data domain.Product) (domain.Product, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *mockProductRepository) Update(ctx context.Context, data domain.Product) (domain.Product, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *mockProductRepository) FindByProductID(ctx context.Context, productID int) (domain.Product, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *mockProductRepository) DeleteByProductID(ctx context.Context, productID int) error {
	return m.Called(ctx, productID).Error(0)
}

func (m *mockProductRepository) CreateIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockProductRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockRecommendationRepository struct {
	mock.Mock
}

func (m *mockRecommendationRepository) Save(ctx context.Context, data domain.Recommendation) (domain.Recommendation, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(domain.Recommendation), args.Error(1)
}

func (m *mockRecommendationRepository) Update(ctx context.Context, data domain.Recommendation) (domain.Recommendation, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(domain.Recommendation), args.Error(1)
}

func (m *mockRecommendationRepository) FindByProductID(ctx context.Context, productID int) ([]domain.Recommendation, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]domain.Recommendation), args.Error(1)
}

func (m *mockRecommendationRepository) DeleteByProductID(ctx context.Context, productID int) error {
	return m.Called(ctx, productID).Error(0)
}

func (m *mockRecommendationRepository) CreateIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockRecommendationRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) Save(ctx context.Context, data domain.Review) (domain.Review, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(domain.Review), args.Error(1)
}

func (m *mockReviewRepository) Update(ctx context.Context, data domain.Review) (domain.Review, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(domain.Review), args.Error(1)
}

func (m *mockReviewRepository) FindByProductID(ctx context.Context, productID int) ([]domain.Review, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepository) DeleteByProductID(ctx context.Context, productID int) error {
	return m.Called(ctx, productID).Error(0)
}

func (m *mockReviewRepository) CreateSchema(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockReviewRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockIntegration struct {
	mock.Mock
}

func (m *mockIntegration) CreateProduct(ctx context.Context, body dto.Product) (dto.Product, error) {
	args := m.Called(ctx, body)
	return args.Get(0).(dto.Product), args.Error(1)
}

func (m *mockIntegration) GetProduct(ctx context.Context, productID int) (dto.Product, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(dto.Product), args.Error(1)
}

func (m *mockIntegration) DeleteProduct(ctx context.Context, productID int) error {
	return m.Called(ctx, productID).Error(0)
}

func (m *mockIntegration) CreateRecommendation(ctx context.Context, body dto.Recommendation) (dto.Recommendation, error) {
	args := m.Called(ctx, body)
	return args.Get(0).(dto.Recommendation), args.Error(1)
}

func (m *mockIntegration) GetRecommendations(ctx context.Context, productID int) ([]dto.Recommendation, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]dto.Recommendation), args.Error(1)
}

func (m *mockIntegration) DeleteRecommendations(ctx context.Context, productID int) error {
	return m.Called(ctx, productID).Error(0)
}

func (m *mockIntegration) CreateReview(ctx context.Context, body dto.Review) (dto.Review, error) {
	args := m.Called(ctx, body)
	return args.Get(0).(dto.Review), args.Error(1)
}

func (m *mockIntegration) GetReviews(ctx context.Context, productID int) ([]dto.Review, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]dto.Review), args.Error(1)
}

func (m *mockIntegration) DeleteReviews(ctx context.Context, productID int) error {
	return m.Called(ctx, productID).Error(0)
}

type mockRequestSender struct {
	mock.Mock
}

func (m *mockRequestSender) SendRequest(ctx context.Context, req httpclient.HttpRequest) (int, []byte, error) {
	args := m.Called(ctx, req.URL)
	body, _ := args.Get(1).([]byte)
	return args.Int(0), body, args.Error(2)
}
