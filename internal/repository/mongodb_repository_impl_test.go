package repository

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/alimikegami/e-commerce/internal/domain"
	"github.com/alimikegami/e-commerce/pkg/errs"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBRepositoryTestSuite needs a running server, e.g.
// MONGODB_TEST_URI=mongodb://localhost:27017 go test ./internal/repository/...
type MongoDBRepositoryTestSuite struct {
	suite.Suite
	client             *mongo.Client
	db                 *mongo.Database
	productRepo        ProductRepository
	recommendationRepo RecommendationRepository
}

func (s *MongoDBRepositoryTestSuite) SetupSuite() {
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		s.T().Skip("MONGODB_TEST_URI is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	s.Require().NoError(err)
	s.Require().NoError(client.Ping(ctx, nil))

	s.client = client
	s.db = client.Database(fmt.Sprintf("repository_test_%d", time.Now().UnixNano()))
	s.productRepo = CreateNewMongoDBProductRepository(s.db)
	s.recommendationRepo = CreateNewMongoDBRecommendationRepository(s.db)

	s.Require().NoError(s.productRepo.CreateIndexes(ctx))
	s.Require().NoError(s.recommendationRepo.CreateIndexes(ctx))
}

func (s *MongoDBRepositoryTestSuite) TearDownSuite() {
	if s.client == nil {
		return
	}
	s.Require().NoError(s.db.Drop(context.Background()))
	s.Require().NoError(s.client.Disconnect(context.Background()))
}

func (s *MongoDBRepositoryTestSuite) SetupTest() {
	ctx := context.Background()
	_, err := s.db.Collection(productCollection).DeleteMany(ctx, map[string]interface{}{})
	s.Require().NoError(err)
	_, err = s.db.Collection(recommendationCollection).DeleteMany(ctx, map[string]interface{}{})
	s.Require().NoError(err)
}

func (s *MongoDBRepositoryTestSuite) Test_ProductCreateAndFind() {
	ctx := context.Background()

	saved, err := s.productRepo.Save(ctx, domain.Product{ProductID: 1, Name: "n", Weight: 1})
	s.Require().NoError(err)
	s.False(saved.ID.IsZero())

	found, err := s.productRepo.FindByProductID(ctx, 1)
	s.Require().NoError(err)
	s.Equal(saved, found)

	_, err = s.productRepo.FindByProductID(ctx, 2)
	s.ErrorIs(err, errs.ErrNotFound)
}

func (s *MongoDBRepositoryTestSuite) Test_ProductDuplicate() {
	ctx := context.Background()

	_, err := s.productRepo.Save(ctx, domain.Product{ProductID: 1, Name: "n", Weight: 1})
	s.Require().NoError(err)

	_, err = s.productRepo.Save(ctx, domain.Product{ProductID: 1, Name: "other", Weight: 2})
	s.ErrorIs(err, errs.ErrDuplicateKey)

	count, err := s.db.Collection(productCollection).CountDocuments(ctx, map[string]interface{}{})
	s.Require().NoError(err)
	s.EqualValues(1, count)
}

func (s *MongoDBRepositoryTestSuite) Test_ProductOptimisticLock() {
	ctx := context.Background()

	saved, err := s.productRepo.Save(ctx, domain.Product{ProductID: 1, Name: "n", Weight: 1})
	s.Require().NoError(err)

	first, err := s.productRepo.FindByProductID(ctx, 1)
	s.Require().NoError(err)
	second, err := s.productRepo.FindByProductID(ctx, 1)
	s.Require().NoError(err)

	first.Name = "first"
	_, err = s.productRepo.Update(ctx, first)
	s.Require().NoError(err)

	second.Name = "second"
	_, err = s.productRepo.Update(ctx, second)
	s.ErrorIs(err, errs.ErrOptimisticLock)

	stored, err := s.productRepo.FindByProductID(ctx, 1)
	s.Require().NoError(err)
	s.Equal(saved.ID, stored.ID)
	s.Equal(1, stored.Version)
	s.Equal("first", stored.Name)
}

func (s *MongoDBRepositoryTestSuite) Test_ProductConcurrentUpdates() {
	ctx := context.Background()

	_, err := s.productRepo.Save(ctx, domain.Product{ProductID: 1, Name: "n", Weight: 1})
	s.Require().NoError(err)

	stale, err := s.productRepo.FindByProductID(ctx, 1)
	s.Require().NoError(err)

	var wg sync.WaitGroup
	results := make(chan error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			copied := stale
			copied.Weight = i
			_, err := s.productRepo.Update(ctx, copied)
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, errs.ErrOptimisticLock)
	}
	s.Equal(1, succeeded)
}

func (s *MongoDBRepositoryTestSuite) Test_RecommendationLifecycle() {
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := s.recommendationRepo.Save(ctx, domain.Recommendation{ProductID: 1, RecommendationID: i, Author: "a", Rating: i, Content: "c"})
		s.Require().NoError(err)
	}

	_, err := s.recommendationRepo.Save(ctx, domain.Recommendation{ProductID: 1, RecommendationID: 1})
	s.ErrorIs(err, errs.ErrDuplicateKey)

	recommendations, err := s.recommendationRepo.FindByProductID(ctx, 1)
	s.Require().NoError(err)
	s.Len(recommendations, 3)
	s.Equal(3, recommendations[2].RecommendationID)

	s.Require().NoError(s.recommendationRepo.DeleteByProductID(ctx, 1))
	s.Require().NoError(s.recommendationRepo.DeleteByProductID(ctx, 1))

	recommendations, err = s.recommendationRepo.FindByProductID(ctx, 1)
	s.Require().NoError(err)
	s.Empty(recommendations)
}

func TestMongoDBRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MongoDBRepositoryTestSuite))
}
