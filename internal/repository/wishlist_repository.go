package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gadget-galaxy/internal/clock"
	"gadget-galaxy/internal/models"
)

type WishlistRepository struct {
	collection *mongo.Collection
	clock      clock.Clock
}

func NewWishlistRepository(collection *mongo.Collection, clk clock.Clock) *WishlistRepository {
	return &WishlistRepository{collection: collection, clock: clk}
}

// FindByEmail lists one user's wishlist, newest first.
func (r *WishlistRepository) FindByEmail(ctx context.Context, email string) ([]models.WishlistItem, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.WishlistItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *WishlistRepository) Create(ctx context.Context, item *models.WishlistItem) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	item.ID = primitive.NewObjectID()
	item.CreatedAt = r.clock.Now()

	_, err := r.collection.InsertOne(ctx, item)
	return err
}

func (r *WishlistRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
