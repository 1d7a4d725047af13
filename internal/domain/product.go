package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Product struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Version   int                `bson:"version"`
	ProductID int                `bson:"productId"`
	Name      string             `bson:"name"`
	Weight    int                `bson:"weight"`
}
