package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"marketplace-analytics/internal/models"
	"marketplace-analytics/internal/shared/filestorages"
)

// File-backed implementations of the analytics stores for local runs
// without a document database. One JSON document per key; Put replaces the
// document atomically, which matches the mongo upsert contract closely
// enough for a single-process setup.

type fileUserAnalyticsStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewFileUserAnalyticsStore(fileStorage filestorages.FileStorage) UserAnalyticsStore {
	return &fileUserAnalyticsStore{fileStorage: fileStorage, dir: "user-analytics"}
}

func (s *fileUserAnalyticsStore) Get(ctx context.Context, userID string) (*models.UserAnalytics, error) {
	var user models.UserAnalytics
	found, err := readJSONDocument(ctx, s.fileStorage, documentKey(s.dir, userID), &user)
	if err != nil {
		return nil, fmt.Errorf("failed to get user analytics: %w", err)
	}
	if !found {
		return models.NewEmptyUserAnalytics(userID), nil
	}
	return &user, nil
}

func (s *fileUserAnalyticsStore) Upsert(ctx context.Context, user *models.UserAnalytics) error {
	if err := writeJSONDocument(ctx, s.fileStorage, documentKey(s.dir, user.UserID), user); err != nil {
		return fmt.Errorf("failed to upsert user analytics: %w", err)
	}
	return nil
}

type fileProductAnalyticsStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewFileProductAnalyticsStore(fileStorage filestorages.FileStorage) ProductAnalyticsStore {
	return &fileProductAnalyticsStore{fileStorage: fileStorage, dir: "product-analytics"}
}

func (s *fileProductAnalyticsStore) Get(ctx context.Context, productID string) (*models.ProductAnalytics, error) {
	var product models.ProductAnalytics
	found, err := readJSONDocument(ctx, s.fileStorage, documentKey(s.dir, productID), &product)
	if err != nil {
		return nil, fmt.Errorf("failed to get product analytics: %w", err)
	}
	if !found {
		return models.NewEmptyProductAnalytics(productID), nil
	}
	return &product, nil
}

func (s *fileProductAnalyticsStore) Upsert(ctx context.Context, product *models.ProductAnalytics) error {
	if err := writeJSONDocument(ctx, s.fileStorage, documentKey(s.dir, product.ProductID), product); err != nil {
		return fmt.Errorf("failed to upsert product analytics: %w", err)
	}
	return nil
}

func documentKey(dir, id string) string {
	return fmt.Sprintf("%s/%s.json", dir, id)
}

// readJSONDocument reports found=false when the key does not exist.
func readJSONDocument(ctx context.Context, storage filestorages.FileStorage, key string, out any) (bool, error) {
	readCloser, err := storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return false, nil
		}
		return false, err
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

func writeJSONDocument(ctx context.Context, storage filestorages.FileStorage, key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return storage.Put(ctx, key, bytes.NewReader(data))
}
