package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection names used across the backend.
const (
	ProductsCollection = "products"
	OrdersCollection   = "orders"
)

// Sort names a field to order results by. Desc reverses the order.
// String fields compare lexicographically.
type Sort struct {
	Field string
	Desc  bool
}

// Gateway exposes collection-scoped document operations, independent of
// entity semantics. Documents travel in and out as raw bson so callers
// decide how (and whether) each record decodes.
type Gateway interface {
	// FindOne returns the first document matching filter, or (nil, nil)
	// when nothing matches.
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.Raw, error)

	// FindAll returns every document matching filter, ordered by sort
	// when non-nil. A nil or empty filter matches everything.
	FindAll(ctx context.Context, collection string, filter bson.M, sort *Sort) ([]bson.Raw, error)

	// InsertOne appends a single document. Uniqueness is not checked
	// here; a unique index declared via EnsureIndex rejects duplicates
	// at the storage layer.
	InsertOne(ctx context.Context, collection string, doc interface{}) error

	// InsertMany appends documents in order and reports how many landed.
	InsertMany(ctx context.Context, collection string, docs []interface{}) (int, error)

	// DeleteOne removes at most one matching document, reporting 0 or 1.
	DeleteOne(ctx context.Context, collection string, filter bson.M) (int64, error)

	// DeleteMany removes every matching document.
	DeleteMany(ctx context.Context, collection string, filter bson.M) (int64, error)

	// Count reports how many documents match filter.
	Count(ctx context.Context, collection string, filter bson.M) (int64, error)

	// EnsureIndex declares an index on field. Idempotent.
	EnsureIndex(ctx context.Context, collection, field string, unique bool) error
}

// EnsureIndexes declares the indexes the backend relies on: the unique
// product id constraint, the order id constraint, and the orderTime
// index backing the descending sort on order listings.
func EnsureIndexes(ctx context.Context, gw Gateway) error {
	if err := gw.EnsureIndex(ctx, ProductsCollection, "id", true); err != nil {
		return err
	}
	if err := gw.EnsureIndex(ctx, OrdersCollection, "id", true); err != nil {
		return err
	}
	return gw.EnsureIndex(ctx, OrdersCollection, "orderTime", false)
}
