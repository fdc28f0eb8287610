package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
