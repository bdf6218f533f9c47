package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo implements Gateway on top of a MongoDB database. The handle is
// created once at process start, shared by every in-flight request
// (the driver is safe for concurrent use), and closed at process stop
// by whoever called Connect.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB, verifies the connection with a ping and
// returns a gateway bound to the named database.
func Connect(ctx context.Context, uri, database string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &Mongo{client: client, db: client.Database(database)}, nil
}

// Ping reports whether the server is still reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close releases the underlying connection pool.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) FindOne(ctx context.Context, collection string, filter bson.M) (bson.Raw, error) {
	if filter == nil {
		filter = bson.M{}
	}
	raw, err := m.db.Collection(collection).FindOne(ctx, filter).Raw()
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find one: %w", err)
	}
	return raw, nil
}

func (m *Mongo) FindAll(ctx context.Context, collection string, filter bson.M, sort *Sort) ([]bson.Raw, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find()
	if sort != nil {
		dir := 1
		if sort.Desc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: sort.Field, Value: dir}})
	}
	cur, err := m.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	defer cur.Close(ctx)

	var docs []bson.Raw
	for cur.Next(ctx) {
		// cur.Current is reused between iterations; copy it out.
		raw := make(bson.Raw, len(cur.Current))
		copy(raw, cur.Current)
		docs = append(docs, raw)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}
	return docs, nil
}

func (m *Mongo) InsertOne(ctx context.Context, collection string, doc interface{}) error {
	if _, err := m.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert one: %w", err)
	}
	return nil
}

func (m *Mongo) InsertMany(ctx context.Context, collection string, docs []interface{}) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	res, err := m.db.Collection(collection).InsertMany(ctx, docs)
	if res != nil && err != nil {
		// ordered bulk insert stops at the first failure; report what landed
		return len(res.InsertedIDs), fmt.Errorf("insert many: %w", err)
	}
	if err != nil {
		return 0, fmt.Errorf("insert many: %w", err)
	}
	return len(res.InsertedIDs), nil
}

func (m *Mongo) DeleteOne(ctx context.Context, collection string, filter bson.M) (int64, error) {
	res, err := m.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete one: %w", err)
	}
	return res.DeletedCount, nil
}

func (m *Mongo) DeleteMany(ctx context.Context, collection string, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	res, err := m.db.Collection(collection).DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete many: %w", err)
	}
	return res.DeletedCount, nil
}

func (m *Mongo) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	n, err := m.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

func (m *Mongo) EnsureIndex(ctx context.Context, collection, field string, unique bool) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(unique),
	}
	if _, err := m.db.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("create index %s.%s: %w", collection, field, err)
	}
	return nil
}
