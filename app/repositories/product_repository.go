package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
)

// ProductRepository is the MongoDB-backed ProductStore.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(col *mongo.Collection) *ProductRepository {
	return &ProductRepository{col: col}
}

// NextID scans for the highest catalog id and returns it plus one.
// An empty collection starts the sequence at 1.
func (r *ProductRepository) NextID(ctx context.Context) (int, error) {
	defer metrics.ObserveStoreOp("product.next_id", time.Now())

	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})
	var last models.Product
	err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return last.CatalogID + 1, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	defer metrics.ObserveStoreOp("product.create", time.Now())

	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *ProductRepository) DeleteByCatalogID(ctx context.Context, id int) error {
	defer metrics.ObserveStoreOp("product.delete", time.Now())

	err := r.col.FindOneAndDelete(ctx, bson.M{"id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil // idempotent
	}
	return err
}

func (r *ProductRepository) All(ctx context.Context) ([]models.Product, error) {
	defer metrics.ObserveStoreOp("product.all", time.Now())

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Latest fetches the newest n documents by _id and reverses them so
// the result reads in insertion order, matching a tail slice of the
// full collection.
func (r *ProductRepository) Latest(ctx context.Context, n int) ([]models.Product, error) {
	defer metrics.ObserveStoreOp("product.latest", time.Now())

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(int64(n))
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
		products[i], products[j] = products[j], products[i]
	}
	return products, nil
}

func (r *ProductRepository) ByCategory(ctx context.Context, category string, n int) ([]models.Product, error) {
	defer metrics.ObserveStoreOp("product.by_category", time.Now())

	opts := options.Find().SetLimit(int64(n))
	cursor, err := r.col.Find(ctx, bson.M{"category": category}, opts)
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
