package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bazaar-baba/backend/internal/storage"
)

func TestInsertAndFindOne(t *testing.T) {
	g := NewGateway()
	ctx := context.Background()

	require.NoError(t, g.InsertOne(ctx, "products", bson.M{"id": "p1", "name": "socks"}))

	raw, err := g.FindOne(ctx, "products", bson.M{"id": "p1"})
	require.NoError(t, err)
	require.NotNil(t, raw)
	require.Equal(t, "socks", raw.Lookup("name").StringValue())

	missing, err := g.FindOne(ctx, "products", bson.M{"id": "nope"})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestUniqueIndexRejectsDuplicates(t *testing.T) {
	g := NewGateway()
	ctx := context.Background()

	require.NoError(t, g.EnsureIndex(ctx, "products", "id", true))
	require.NoError(t, g.InsertOne(ctx, "products", bson.M{"id": "p1"}))

	err := g.InsertOne(ctx, "products", bson.M{"id": "p1"})
	require.ErrorIs(t, err, ErrDuplicateKey)

	n, err := g.Count(ctx, "products", bson.M{})
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestInsertManyStopsAtDuplicate(t *testing.T) {
	g := NewGateway()
	ctx := context.Background()
	require.NoError(t, g.EnsureIndex(ctx, "products", "id", true))

	docs := []interface{}{
		bson.M{"id": "a"},
		bson.M{"id": "b"},
		bson.M{"id": "a"}, // dup
		bson.M{"id": "c"},
	}
	n, err := g.InsertMany(ctx, "products", docs)
	require.ErrorIs(t, err, ErrDuplicateKey)
	require.Equal(t, 2, n)
}

func TestFindAllSorted(t *testing.T) {
	g := NewGateway()
	ctx := context.Background()

	for _, ts := range []string{"2024-01-01", "2024-03-01", "2024-02-01"} {
		require.NoError(t, g.InsertOne(ctx, "orders", bson.M{"id": ts, "orderTime": ts}))
	}

	docs, err := g.FindAll(ctx, "orders", nil, &storage.Sort{Field: "orderTime", Desc: true})
	require.NoError(t, err)
	require.Len(t, docs, 3)

	var got []string
	for _, d := range docs {
		got = append(got, d.Lookup("orderTime").StringValue())
	}
	require.Equal(t, []string{"2024-03-01", "2024-02-01", "2024-01-01"}, got)
}

func TestDeleteOneAndMany(t *testing.T) {
	g := NewGateway()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.InsertOne(ctx, "orders", bson.M{"id": id}))
	}

	n, err := g.DeleteOne(ctx, "orders", bson.M{"id": "b"})
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	n, err = g.DeleteOne(ctx, "orders", bson.M{"id": "b"})
	require.NoError(t, err)
	require.EqualValues(t, 0, n)

	n, err = g.DeleteMany(ctx, "orders", bson.M{})
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}

func TestForceError(t *testing.T) {
	g := NewGateway()
	ctx := context.Background()
	boom := errors.New("connection reset")

	g.ForceError(boom)
	_, err := g.FindAll(ctx, "products", nil, nil)
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, g.InsertOne(ctx, "products", bson.M{"id": "x"}), boom)

	g.ForceError(nil)
	require.NoError(t, g.InsertOne(ctx, "products", bson.M{"id": "x"}))
}
