package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bazaar-baba/backend/internal/storage/memory"
)

func validInput(id, orderTime string) OrderCreate {
	return OrderCreate{
		ID:        id,
		OrderTime: orderTime,
		Products: []OrderItem{
			{ProductID: "p1", Quantity: 2, DeliveryOptionID: "2"},
			{ProductID: "p2", Quantity: 1},
		},
		TotalCostCents: 3185,
	}
}

func TestCreateStampsCreatedAt(t *testing.T) {
	gw := memory.NewGateway()
	store := NewStore(gw)
	ctx := context.Background()

	fixed := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	store.nowFunc = func() time.Time { return fixed }

	created, err := store.Create(ctx, validInput("o1", "2024-06-01T12:00:00Z"))
	require.NoError(t, err)
	require.Equal(t, fixed, created.CreatedAt)
	require.Equal(t, "o1", created.ID)
	require.Equal(t, 3185, created.TotalCostCents)

	got := store.ByID(ctx, "o1")
	require.NotNil(t, got)
	require.False(t, got.CreatedAt.IsZero())
	// bson datetimes carry millisecond precision
	require.WithinDuration(t, fixed, got.CreatedAt, time.Millisecond)
}

func TestCreateDefaultsDeliveryOption(t *testing.T) {
	store := NewStore(memory.NewGateway())
	ctx := context.Background()

	created, err := store.Create(ctx, validInput("o1", "2024-06-01"))
	require.NoError(t, err)
	require.Equal(t, "2", created.Products[0].DeliveryOptionID)
	require.Equal(t, "1", created.Products[1].DeliveryOptionID)
}

func TestCreateRejectsMissingFields(t *testing.T) {
	store := NewStore(memory.NewGateway())
	ctx := context.Background()

	_, err := store.Create(ctx, OrderCreate{OrderTime: "2024-06-01"})
	require.Error(t, err)

	_, err = store.Create(ctx, OrderCreate{ID: "o1", OrderTime: "2024-06-01"})
	require.Error(t, err) // no products

	n, cerr := store.Count(ctx)
	require.NoError(t, cerr)
	require.EqualValues(t, 0, n)
}

func TestAllSortedByOrderTimeDescending(t *testing.T) {
	gw := memory.NewGateway()
	store := NewStore(gw)
	ctx := context.Background()

	for i, ts := range []string{"2024-01-01", "2024-03-01", "2024-02-01"} {
		in := validInput(string(rune('a'+i)), ts)
		_, err := store.Create(ctx, in)
		require.NoError(t, err)
	}

	got := store.All(ctx)
	require.Len(t, got, 3)
	var times []string
	for _, o := range got {
		times = append(times, o.OrderTime)
	}
	require.Equal(t, []string{"2024-03-01", "2024-02-01", "2024-01-01"}, times)
}

func TestAllDegradesToEmptyOnFault(t *testing.T) {
	gw := memory.NewGateway()
	store := NewStore(gw)
	ctx := context.Background()

	_, err := store.Create(ctx, validInput("o1", "2024-06-01"))
	require.NoError(t, err)

	gw.ForceError(errors.New("no reachable servers"))
	got := store.All(ctx)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestDeleteSemantics(t *testing.T) {
	gw := memory.NewGateway()
	store := NewStore(gw)
	ctx := context.Background()

	_, err := store.Create(ctx, validInput("o1", "2024-06-01"))
	require.NoError(t, err)

	require.True(t, store.Delete(ctx, "o1"))
	require.Nil(t, store.ByID(ctx, "o1"))

	// missing id: false, collection untouched
	require.False(t, store.Delete(ctx, "o1"))
	n, err := store.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)
}

func TestDeleteDegradesToFalseOnFault(t *testing.T) {
	gw := memory.NewGateway()
	store := NewStore(gw)
	ctx := context.Background()

	_, err := store.Create(ctx, validInput("o1", "2024-06-01"))
	require.NoError(t, err)

	gw.ForceError(errors.New("connection reset"))
	require.False(t, store.Delete(ctx, "o1"))

	// the order is still there once the store recovers
	gw.ForceError(nil)
	require.NotNil(t, store.ByID(ctx, "o1"))
}

func TestCreatePropagatesStorageFault(t *testing.T) {
	gw := memory.NewGateway()
	store := NewStore(gw)

	gw.ForceError(errors.New("server selection timeout"))
	_, err := store.Create(context.Background(), validInput("o1", "2024-06-01"))
	require.Error(t, err)
}
