package repository

import (
	"context"
	"errors"

	"github.com/alimikegami/e-commerce/internal/domain"
	"github.com/alimikegami/e-commerce/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const recommendationCollection = "recommendations"

type MongoDBRecommendationRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBRecommendationRepository(db *mongo.Database) RecommendationRepository {
	return &MongoDBRecommendationRepositoryImpl{db: db}
}

func (r *MongoDBRecommendationRepositoryImpl) CreateIndexes(ctx context.Context) (err error) {
	_, err = r.db.Collection(recommendationCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "productId", Value: 1}, {Key: "recommendationId", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("prod-rec-id"),
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CreateIndexes").Msg("")
	}

	return
}

func (r *MongoDBRecommendationRepositoryImpl) Save(ctx context.Context, data domain.Recommendation) (recommendation domain.Recommendation, err error) {
	data.Version = 0
	result, err := r.db.Collection(recommendationCollection).InsertOne(ctx, data)
	if err != nil {
		if err = translateWriteError(err); errors.Is(err, errs.ErrDuplicateKey) {
			return recommendation, err
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "SaveRecommendation").Msg("")
		return
	}

	data.ID = result.InsertedID.(primitive.ObjectID)
	return data, nil
}

func (r *MongoDBRecommendationRepositoryImpl) Update(ctx context.Context, data domain.Recommendation) (recommendation domain.Recommendation, err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}, {Key: "version", Value: data.Version}}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "author", Value: data.Author},
			{Key: "rating", Value: data.Rating},
			{Key: "content", Value: data.Content},
		}},
		{Key: "$inc", Value: bson.D{{Key: "version", Value: 1}}},
	}

	result, err := r.db.Collection(recommendationCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateRecommendation").Msg("Failed to update recommendation")
		return
	}

	if result.MatchedCount == 0 {
		log.Ctx(ctx).Warn().Str("component", "UpdateRecommendation").Int("productId", data.ProductID).Int("recommendationId", data.RecommendationID).Msg("stale recommendation version")
		return recommendation, errs.ErrOptimisticLock
	}

	data.Version++
	return data, nil
}

func (r *MongoDBRecommendationRepositoryImpl) FindByProductID(ctx context.Context, productID int) (data []domain.Recommendation, err error) {
	filter := bson.D{{Key: "productId", Value: productID}}
	opts := options.Find().SetSort(bson.D{{Key: "recommendationId", Value: 1}})

	cursor, err := r.db.Collection(recommendationCollection).Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "FindRecommendations").Msg("")
		return
	}

	data = []domain.Recommendation{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "FindRecommendations").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBRecommendationRepositoryImpl) DeleteByProductID(ctx context.Context, productID int) (err error) {
	filter := bson.D{{Key: "productId", Value: productID}}

	_, err = r.db.Collection(recommendationCollection).DeleteMany(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteRecommendations").Msg("")
	}

	return
}

func (r *MongoDBRecommendationRepositoryImpl) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, nil)
}
