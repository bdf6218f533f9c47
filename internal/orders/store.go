package orders

import (
	"context"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bazaar-baba/backend/internal/storage"
	"github.com/bazaar-baba/backend/internal/validation"
)

// Store encapsulates operations on the orders collection.
type Store struct {
	gw         storage.Gateway
	collection string
	validate   *validatorv10.Validate
	logger     *log.Entry
	nowFunc    func() time.Time
}

// NewStore creates an order Store over the given gateway.
func NewStore(gw storage.Gateway) *Store {
	return &Store{
		gw:         gw,
		collection: storage.OrdersCollection,
		validate:   validation.New(),
		logger:     log.WithField("component", "orders"),
		nowFunc:    time.Now,
	}
}

// All returns every order sorted by orderTime descending (string
// comparison). Storage faults degrade to an empty slice, logged.
func (s *Store) All(ctx context.Context) []Order {
	sort := &storage.Sort{Field: "orderTime", Desc: true}
	raws, err := s.gw.FindAll(ctx, s.collection, bson.M{}, sort)
	if err != nil {
		storage.Degrade(s.logger, "list orders", err)
		return []Order{}
	}
	out := make([]Order, 0, len(raws))
	for _, raw := range raws {
		var o Order
		if err := bson.Unmarshal(raw, &o); err != nil {
			s.logger.WithError(err).Warn("skipping undecodable order document")
			continue
		}
		out = append(out, o)
	}
	return out
}

// ByID looks an order up by its caller-assigned id field. Absence
// covers both not-found and a storage fault (logged).
func (s *Store) ByID(ctx context.Context, id string) *Order {
	raw, err := s.gw.FindOne(ctx, s.collection, bson.M{"id": id})
	if err != nil {
		storage.Degrade(s.logger.WithField("id", id), "get order", err)
		return nil
	}
	if raw == nil {
		return nil
	}
	var o Order
	if err := bson.Unmarshal(raw, &o); err != nil {
		storage.Degrade(s.logger.WithField("id", id), "decode order", err)
		return nil
	}
	return &o
}

// Create validates the payload, stamps created_at with the current
// server time and persists the order. Persistence faults propagate.
// Unlike product creation there is no duplicate-id pre-check anywhere
// on this path; the unique index is the only guard.
func (s *Store) Create(ctx context.Context, input OrderCreate) (Order, error) {
	input.Normalize()
	if err := s.validate.Struct(input); err != nil {
		return Order{}, err
	}
	o := Order{
		ID:             input.ID,
		OrderTime:      input.OrderTime,
		Products:       input.Products,
		TotalCostCents: input.TotalCostCents,
		CreatedAt:      s.nowFunc().UTC(),
	}
	if err := s.gw.InsertOne(ctx, s.collection, o); err != nil {
		return Order{}, storage.Propagate(s.logger.WithField("id", o.ID), "insert order", err)
	}
	return o, nil
}

// Delete removes the order with the given id and reports whether a
// document was actually removed. Storage faults degrade to false
// (logged), matching the read-side policy.
func (s *Store) Delete(ctx context.Context, id string) bool {
	n, err := s.gw.DeleteOne(ctx, s.collection, bson.M{"id": id})
	if err != nil {
		storage.Degrade(s.logger.WithField("id", id), "delete order", err)
		return false
	}
	return n > 0
}

// Count reports how many orders are stored.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.gw.Count(ctx, s.collection, bson.M{})
}
