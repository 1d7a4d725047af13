package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Recommendation struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Version          int                `bson:"version"`
	ProductID        int                `bson:"productId"`
	RecommendationID int                `bson:"recommendationId"`
	Author           string             `bson:"author"`
	Rating           int                `bson:"rating"`
	Content          string             `bson:"content"`
}
