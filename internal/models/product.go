package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry. Field names follow the collection's
// camelCase document schema.
type Product struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title" binding:"required"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	Category     string             `json:"category" bson:"category" binding:"required"`
	Type         string             `json:"type,omitempty" bson:"type,omitempty"`
	Brand        string             `json:"brand,omitempty" bson:"brand,omitempty"`
	SellingPrice float64            `json:"sellingPrice" bson:"sellingPrice" binding:"required"`
	Images       []string           `json:"images,omitempty" bson:"images,omitempty"`
	SellerEmail  string             `json:"sellerEmail,omitempty" bson:"sellerEmail,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProductPage is the response of the filtered product listing. Count
// covers the whole filtered set; Categories and Brands are the
// distinct values within Products only, i.e. within the current page.
type ProductPage struct {
	Count      int64     `json:"count"`
	Page       int       `json:"page"`
	Size       int       `json:"size"`
	Products   []Product `json:"products"`
	Categories []string  `json:"categories"`
	Brands     []string  `json:"brands"`
}
