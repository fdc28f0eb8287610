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

type CartRepository struct {
	collection *mongo.Collection
	clock      clock.Clock
}

func NewCartRepository(collection *mongo.Collection, clk clock.Clock) *CartRepository {
	return &CartRepository{collection: collection, clock: clk}
}

// FindByEmail lists one user's cart items, newest first.
func (r *CartRepository) FindByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.CartItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartRepository) Create(ctx context.Context, item *models.CartItem) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	item.ID = primitive.NewObjectID()
	item.CreatedAt = r.clock.Now()

	_, err := r.collection.InsertOne(ctx, item)
	return err
}

// UpdateQuantity sets the quantity of one cart item.
func (r *CartRepository) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	update := bson.M{"$set": bson.M{"quantity": quantity}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CartRepository) Delete(ctx context.Context, id string) error {
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

// DeleteByProduct removes every cart item referencing the given
// product. Used for cleanup when a product is deleted.
func (r *CartRepository) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := r.collection.DeleteMany(ctx, bson.M{"productId": productID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
