package catalog

import (
	"context"

	validatorv10 "github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bazaar-baba/backend/internal/storage"
	"github.com/bazaar-baba/backend/internal/validation"
)

// Store encapsulates operations on the products collection.
type Store struct {
	gw         storage.Gateway
	collection string
	validate   *validatorv10.Validate
	logger     *log.Entry
}

// NewStore creates a product Store over the given gateway.
func NewStore(gw storage.Gateway) *Store {
	return &Store{
		gw:         gw,
		collection: storage.ProductsCollection,
		validate:   validation.New(),
		logger:     log.WithField("component", "catalog"),
	}
}

// All returns every product. Storage faults degrade to an empty slice:
// the listing favors availability, so a caller cannot tell "empty"
// from "failed" here. The fault is logged, never surfaced.
func (s *Store) All(ctx context.Context) []Product {
	raws, err := s.gw.FindAll(ctx, s.collection, bson.M{}, nil)
	if err != nil {
		storage.Degrade(s.logger, "list products", err)
		return []Product{}
	}
	out := make([]Product, 0, len(raws))
	for _, raw := range raws {
		var p Product
		if err := bson.Unmarshal(raw, &p); err != nil {
			// a malformed document drops out of the listing rather
			// than failing the whole read
			s.logger.WithError(err).Warn("skipping undecodable product document")
			continue
		}
		out = append(out, p)
	}
	return out
}

// ByID looks a product up by its caller-assigned id field. Absence
// covers both not-found and a storage fault (the fault is logged).
func (s *Store) ByID(ctx context.Context, id string) *Product {
	raw, err := s.gw.FindOne(ctx, s.collection, bson.M{"id": id})
	if err != nil {
		storage.Degrade(s.logger.WithField("id", id), "get product", err)
		return nil
	}
	if raw == nil {
		return nil
	}
	var p Product
	if err := bson.Unmarshal(raw, &p); err != nil {
		storage.Degrade(s.logger.WithField("id", id), "decode product", err)
		return nil
	}
	return &p
}

// Create validates the payload and persists it, returning the stored
// entity. Persistence faults propagate. Duplicate ids are NOT checked
// here: the boundary layer pre-checks via ByID, and the unique index
// is the last-resort guard.
func (s *Store) Create(ctx context.Context, input ProductCreate) (Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return Product{}, err
	}
	p := Product(input)
	if err := s.gw.InsertOne(ctx, s.collection, p); err != nil {
		return Product{}, storage.Propagate(s.logger.WithField("id", p.ID), "insert product", err)
	}
	return p, nil
}

// BulkInsert persists a batch of seed documents and reports how many
// landed. Used only by startup seeding and the admin tool; faults
// propagate.
func (s *Store) BulkInsert(ctx context.Context, docs []ProductCreate) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	items := make([]interface{}, 0, len(docs))
	for _, d := range docs {
		items = append(items, d)
	}
	n, err := s.gw.InsertMany(ctx, s.collection, items)
	if err != nil {
		return n, storage.Propagate(s.logger, "bulk insert products", err)
	}
	return n, nil
}

// Count reports how many products are stored.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.gw.Count(ctx, s.collection, bson.M{})
}
