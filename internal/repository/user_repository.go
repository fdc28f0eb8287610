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

type UserRepository struct {
	collection *mongo.Collection
	clock      clock.Clock
}

func NewUserRepository(collection *mongo.Collection, clk clock.Clock) *UserRepository {
	return &UserRepository{collection: collection, clock: clk}
}

// FindAll lists every user, newest first.
func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	var user models.User
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts a user unless the email is already taken, in which
// case it returns ErrDuplicate and writes nothing.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	err := r.collection.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return ErrDuplicate
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	now := r.clock.Now()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err = r.collection.InsertOne(ctx, user)
	return err
}

// UpdateRole sets the role field of one user.
func (r *UserRepository) UpdateRole(ctx context.Context, id, role string) error {
	return r.setField(ctx, id, "role", role)
}

// UpdateStatus sets the status field of one user.
func (r *UserRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.setField(ctx, id, "status", status)
}

func (r *UserRepository) setField(ctx context.Context, id, field, value string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	update := bson.M{"$set": bson.M{
		field:       value,
		"updatedAt": r.clock.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
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
