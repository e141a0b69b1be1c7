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

// UserAnalyticsStore is the keyed persistence contract for the per-user
// aggregate. Get returns an empty default for an unknown key so the caller
// always performs read-then-write, never a blind overwrite.
//
//go:generate mockgen -source=user_analytics_store.go -destination=./mocks/user_analytics_store_mock.go -package=mocks
type UserAnalyticsStore interface {
	Get(ctx context.Context, userID string) (*models.UserAnalytics, error)
	Upsert(ctx context.Context, user *models.UserAnalytics) error
}

const userAnalyticsCollection = "user_analytics"

type mongoUserAnalyticsStore struct {
	collection *mongo.Collection
}

func NewMongoUserAnalyticsStore(database *mongo.Database) UserAnalyticsStore {
	return &mongoUserAnalyticsStore{collection: database.Collection(userAnalyticsCollection)}
}

func (s *mongoUserAnalyticsStore) Get(ctx context.Context, userID string) (*models.UserAnalytics, error) {
	var user models.UserAnalytics
	err := s.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.NewEmptyUserAnalytics(userID), nil
		}
		return nil, fmt.Errorf("failed to get user analytics: %w", err)
	}
	return &user, nil
}

func (s *mongoUserAnalyticsStore) Upsert(ctx context.Context, user *models.UserAnalytics) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": user.UserID}, user, opts); err != nil {
		return fmt.Errorf("failed to upsert user analytics: %w", err)
	}
	return nil
}
