package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem links a product to a user's cart. ProductID is the hex
// ObjectID of the product, stored as a string.
type CartItem struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ProductID string             `json:"productId" bson:"productId"`
	Email     string             `json:"email" bson:"email"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
