// Package memory provides an in-memory Gateway used by tests and the
// local tooling. It honors unique indexes, field-equality filters and
// lexicographic sorts, which is everything the backend asks of the
// real store.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bazaar-baba/backend/internal/storage"
)

// ErrDuplicateKey reports a unique-index violation on insert.
var ErrDuplicateKey = errors.New("duplicate key")

// Gateway is a mutex-guarded document store keyed by collection name.
type Gateway struct {
	mu      sync.Mutex
	colls   map[string][]bson.Raw
	unique  map[string]map[string]bool // collection -> unique-indexed fields
	failErr error
}

var _ storage.Gateway = (*Gateway)(nil)

// NewGateway returns an empty store.
func NewGateway() *Gateway {
	return &Gateway{
		colls:  map[string][]bson.Raw{},
		unique: map[string]map[string]bool{},
	}
}

// ForceError makes every subsequent operation fail with err until
// called again with nil. Tests use this to exercise fault handling.
func (g *Gateway) ForceError(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failErr = err
}

func (g *Gateway) FindOne(ctx context.Context, collection string, filter bson.M) (bson.Raw, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failErr != nil {
		return nil, g.failErr
	}
	for _, doc := range g.colls[collection] {
		if matches(doc, filter) {
			return doc, nil
		}
	}
	return nil, nil
}

func (g *Gateway) FindAll(ctx context.Context, collection string, filter bson.M, s *storage.Sort) ([]bson.Raw, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failErr != nil {
		return nil, g.failErr
	}
	var out []bson.Raw
	for _, doc := range g.colls[collection] {
		if matches(doc, filter) {
			out = append(out, doc)
		}
	}
	if s != nil {
		sort.SliceStable(out, func(i, j int) bool {
			a := out[i].Lookup(s.Field).String()
			b := out[j].Lookup(s.Field).String()
			if s.Desc {
				return a > b
			}
			return a < b
		})
	}
	return out, nil
}

func (g *Gateway) InsertOne(ctx context.Context, collection string, doc interface{}) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failErr != nil {
		return g.failErr
	}
	return g.insertLocked(collection, doc)
}

func (g *Gateway) InsertMany(ctx context.Context, collection string, docs []interface{}) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failErr != nil {
		return 0, g.failErr
	}
	for i, doc := range docs {
		if err := g.insertLocked(collection, doc); err != nil {
			return i, err
		}
	}
	return len(docs), nil
}

func (g *Gateway) insertLocked(collection string, doc interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	for field := range g.unique[collection] {
		val := bson.Raw(raw).Lookup(field)
		for _, existing := range g.colls[collection] {
			if val.Equal(existing.Lookup(field)) {
				return fmt.Errorf("%w: %s=%s in %s", ErrDuplicateKey, field, val.String(), collection)
			}
		}
	}
	g.colls[collection] = append(g.colls[collection], bson.Raw(raw))
	return nil
}

func (g *Gateway) DeleteOne(ctx context.Context, collection string, filter bson.M) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failErr != nil {
		return 0, g.failErr
	}
	docs := g.colls[collection]
	for i, doc := range docs {
		if matches(doc, filter) {
			g.colls[collection] = append(docs[:i:i], docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (g *Gateway) DeleteMany(ctx context.Context, collection string, filter bson.M) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failErr != nil {
		return 0, g.failErr
	}
	var kept []bson.Raw
	var removed int64
	for _, doc := range g.colls[collection] {
		if matches(doc, filter) {
			removed++
			continue
		}
		kept = append(kept, doc)
	}
	g.colls[collection] = kept
	return removed, nil
}

func (g *Gateway) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failErr != nil {
		return 0, g.failErr
	}
	var n int64
	for _, doc := range g.colls[collection] {
		if matches(doc, filter) {
			n++
		}
	}
	return n, nil
}

func (g *Gateway) EnsureIndex(ctx context.Context, collection, field string, unique bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failErr != nil {
		return g.failErr
	}
	if !unique {
		return nil // nothing to enforce; sort works regardless
	}
	if g.unique[collection] == nil {
		g.unique[collection] = map[string]bool{}
	}
	g.unique[collection][field] = true
	return nil
}

// matches reports whether doc satisfies every field-equality predicate
// in filter. A nil or empty filter matches everything.
func matches(doc bson.Raw, filter bson.M) bool {
	for field, want := range filter {
		got := doc.Lookup(field)
		if !got.Equal(rawValue(want)) {
			return false
		}
	}
	return true
}

func rawValue(v interface{}) bson.RawValue {
	b, err := bson.Marshal(bson.M{"v": v})
	if err != nil {
		return bson.RawValue{}
	}
	return bson.Raw(b).Lookup("v")
}
