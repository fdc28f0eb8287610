package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gadget-galaxy/internal/models"
)

type CategoryRepository struct {
	collection *mongo.Collection
}

func NewCategoryRepository(collection *mongo.Collection) *CategoryRepository {
	return &CategoryRepository{collection: collection}
}

// FindAll lists every category, newest first.
func (r *CategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := make([]models.Category, 0)
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
