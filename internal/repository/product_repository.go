package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gadget-galaxy/internal/clock"
	"gadget-galaxy/internal/models"
	"gadget-galaxy/internal/query"
)

const (
	writeTimeout  = 5 * time.Second
	lookupTimeout = 3 * time.Second
	queryTimeout  = 10 * time.Second
)

type ProductRepository struct {
	collection *mongo.Collection
	clock      clock.Clock
}

func NewProductRepository(collection *mongo.Collection, clk clock.Clock) *ProductRepository {
	return &ProductRepository{collection: collection, clock: clk}
}

// Create inserts a product with a fresh ID and server-stamped timestamps.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	now := r.clock.Now()
	product.ID = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, product)
	return err
}

// FindAll lists every product, newest first.
func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var product models.Product
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Search runs the filtered, sorted, paginated product listing. The
// total count covers the whole filtered set regardless of the page
// window; the facets cover the returned page only.
func (r *ProductRepository) Search(ctx context.Context, params query.Params) (*models.ProductPage, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := params.Filter()

	// Count the filtered set in parallel with the page fetch.
	countCh := make(chan int64, 1)
	errCh := make(chan error, 1)
	go func() {
		count, err := r.collection.CountDocuments(ctx, filter)
		if err != nil {
			errCh <- err
			return
		}
		countCh <- count
	}()

	opts := options.Find().
		SetSort(params.SortOrder()).
		SetSkip(params.Skip()).
		SetLimit(params.Limit())

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	var count int64
	select {
	case count = <-countCh:
	case err := <-errCh:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return &models.ProductPage{
		Count:      count,
		Page:       params.Page,
		Size:       params.Size,
		Products:   products,
		Categories: query.Categories(products),
		Brands:     query.Brands(products),
	}, nil
}

// Update merge-updates the given fields onto one product.
func (r *ProductRepository) Update(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	fields["updatedAt"] = r.clock.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
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
