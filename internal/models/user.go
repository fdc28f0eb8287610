package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a store account holder. Role and status are free-form
// strings managed by the admin panel.
type User struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Role      string             `json:"role" bson:"role"`
	Status    string             `json:"status" bson:"status"`
	CreatedBy string             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
