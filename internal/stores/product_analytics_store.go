package stores

import (
	"context"
	"errors"
	"fmt"

	"marketplace-analytics/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductAnalyticsStore is the keyed persistence contract for the
// per-product aggregate.
//
//go:generate mockgen -source=product_analytics_store.go -destination=./mocks/product_analytics_store_mock.go -package=mocks
type ProductAnalyticsStore interface {
	Get(ctx context.Context, productID string) (*models.ProductAnalytics, error)
	Upsert(ctx context.Context, product *models.ProductAnalytics) error
}

const productAnalyticsCollection = "product_analytics"

type mongoProductAnalyticsStore struct {
	collection *mongo.Collection
}

func NewMongoProductAnalyticsStore(database *mongo.Database) ProductAnalyticsStore {
	return &mongoProductAnalyticsStore{collection: database.Collection(productAnalyticsCollection)}
}

func (s *mongoProductAnalyticsStore) Get(ctx context.Context, productID string) (*models.ProductAnalytics, error) {
	var product models.ProductAnalytics
	err := s.collection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.NewEmptyProductAnalytics(productID), nil
		}
		return nil, fmt.Errorf("failed to get product analytics: %w", err)
	}
	return &product, nil
}

func (s *mongoProductAnalyticsStore) Upsert(ctx context.Context, product *models.ProductAnalytics) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": product.ProductID}, product, opts); err != nil {
		return fmt.Errorf("failed to upsert product analytics: %w", err)
	}
	return nil
}
