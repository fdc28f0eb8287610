package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistItem marks a product as saved by a user.
type WishlistItem struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ProductID string             `json:"productId" bson:"productId"`
	Email     string             `json:"email" bson:"email"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
