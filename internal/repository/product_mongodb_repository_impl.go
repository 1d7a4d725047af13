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

const productCollection = "products"

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) CreateIndexes(ctx context.Context) (err error) {
	_, err = r.db.Collection(productCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "productId", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("product-id"),
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CreateIndexes").Msg("")
	}

	return
}

func (r *MongoDBProductRepositoryImpl) Save(ctx context.Context, data domain.Product) (product domain.Product, err error) {
	data.Version = 0
	result, err := r.db.Collection(productCollection).InsertOne(ctx, data)
	if err != nil {
		if err = translateWriteError(err); errors.Is(err, errs.ErrDuplicateKey) {
			return product, err
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "SaveProduct").Msg("")
		return
	}

	data.ID = result.InsertedID.(primitive.ObjectID)
	return data, nil
}

func (r *MongoDBProductRepositoryImpl) Update(ctx context.Context, data domain.Product) (product domain.Product, err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}, {Key: "version", Value: data.Version}}
	update := bson.D{
		{Key: "$set", Value: bson.D{{Key: "name", Value: data.Name}, {Key: "weight", Value: data.Weight}}},
		{Key: "$inc", Value: bson.D{{Key: "version", Value: 1}}},
	}

	result, err := r.db.Collection(productCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("Failed to update product")
		return
	}

	if result.MatchedCount == 0 {
		log.Ctx(ctx).Warn().Str("component", "UpdateProduct").Int("productId", data.ProductID).Int("version", data.Version).Msg("stale product version")
		return product, errs.ErrOptimisticLock
	}

	data.Version++
	return data, nil
}

func (r *MongoDBProductRepositoryImpl) FindByProductID(ctx context.Context, productID int) (product domain.Product, err error) {
	filter := bson.D{{Key: "productId", Value: productID}}

	err = r.db.Collection(productCollection).FindOne(ctx, filter, options.FindOne()).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return product, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "FindProductByProductID").Msg("")
		return product, err
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) DeleteByProductID(ctx context.Context, productID int) (err error) {
	filter := bson.D{{Key: "productId", Value: productID}}

	_, err = r.db.Collection(productCollection).DeleteMany(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
	}

	return
}

// translateWriteError maps a unique index violation to errs.ErrDuplicateKey.
func translateWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateKey
	}
	return err
}

func (r *MongoDBProductRepositoryImpl) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, nil)
}
