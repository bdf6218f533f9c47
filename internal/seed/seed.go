// Package seed loads the starter product catalog at process startup.
// Seeding is a one-time action: it only runs when the products
// collection is empty, and a failure never blocks startup.
package seed

import (
	"context"
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/bazaar-baba/backend/internal/catalog"
)

// Run bulk-inserts the products from the JSON file at path when the
// collection is empty; otherwise it does nothing. Errors are logged
// and swallowed so the API still starts against a seeded-or-not store.
func Run(ctx context.Context, store *catalog.Store, path string) {
	logger := log.WithField("component", "seed")

	n, err := store.Count(ctx)
	if err != nil {
		logger.WithError(err).Error("seed skipped: could not count products")
		return
	}
	if n > 0 {
		logger.WithField("products", n).Info("database already seeded, skipping")
		return
	}

	docs, err := LoadFile(path)
	if err != nil {
		logger.WithError(err).WithField("path", path).Warn("seed skipped")
		return
	}

	count, err := store.BulkInsert(ctx, docs)
	if err != nil {
		logger.WithError(err).Error("seeding products failed")
		return
	}
	logger.WithField("count", count).Info("seeded products")
}

// LoadFile reads a JSON array of product documents.
func LoadFile(path string) ([]catalog.ProductCreate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var docs []catalog.ProductCreate
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
