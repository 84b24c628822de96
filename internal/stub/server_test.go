package stub

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/shopfast/storefront-go/internal/api"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestStub(t *testing.T) (*api.Client, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	server := NewServer(nil, 15*time.Second)
	server.now = clock.Now

	srv := httptest.NewServer(server.Router())
	t.Cleanup(srv.Close)

	return api.NewClient("shopfast-stub", srv.URL, srv.Client(), nil), clock
}

func TestCatalogEndpoints(t *testing.T) {
	c, _ := newTestStub(t)
	products := api.NewProductClient(c)

	list, err := products.ListProducts(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, list)

	got, err := products.GetProduct(context.Background(), list[0].ID)
	require.NoError(t, err)
	require.Equal(t, list[0], got)

	_, err = products.GetProduct(context.Background(), "nope")
	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
}

func TestOrderLifecycle(t *testing.T) {
	c, clock := newTestStub(t)
	orders := api.NewOrderClient(c)

	req := api.OrderRequest{
		Items: []api.OrderItem{
			{ProductID: "p1", Quantity: 2, Price: 10},
			{ProductID: "p2", Quantity: 1, Price: 5},
		},
		Customer: api.Customer{Email: "jo@example.com", FirstName: "Jo", LastName: "Smith"},
		Total:    25,
	}

	submitted, err := orders.SubmitOrder(context.Background(), req, "key-1")
	require.NoError(t, err)
	require.NotEmpty(t, submitted.OrderID)
	require.Equal(t, "placed", submitted.Status)

	// Status advances one step per interval, and never runs past delivered.
	expect := []string{"placed", "confirmed", "processing", "shipped", "delivered", "delivered"}
	for i, want := range expect {
		o, err := orders.GetOrder(context.Background(), submitted.OrderID)
		require.NoError(t, err)
		require.Equal(t, want, o.Status, "step %d", i)
		require.Equal(t, req.Items, o.Items)
		require.Equal(t, 25.0, o.Total)
		clock.Advance(15 * time.Second)
	}
}

func TestSubmitOrderIdempotency(t *testing.T) {
	c, _ := newTestStub(t)
	orders := api.NewOrderClient(c)

	req := api.OrderRequest{Items: []api.OrderItem{{ProductID: "p1", Quantity: 1, Price: 10}}, Total: 10}

	first, err := orders.SubmitOrder(context.Background(), req, "retry-key")
	require.NoError(t, err)

	// The same key maps to the order already created for it.
	second, err := orders.SubmitOrder(context.Background(), req, "retry-key")
	require.NoError(t, err)
	require.Equal(t, first.OrderID, second.OrderID)

	// A different key is a different order.
	third, err := orders.SubmitOrder(context.Background(), req, "other-key")
	require.NoError(t, err)
	require.NotEqual(t, first.OrderID, third.OrderID)

	list, err := orders.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestSubmitOrderRejectsEmptyItems(t *testing.T) {
	c, _ := newTestStub(t)

	_, err := api.NewOrderClient(c).SubmitOrder(context.Background(), api.OrderRequest{}, "")
	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, 400, reqErr.StatusCode)
}

func TestGetOrderNotFound(t *testing.T) {
	c, _ := newTestStub(t)

	_, err := api.NewOrderClient(c).GetOrder(context.Background(), "missing")
	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, 404, reqErr.StatusCode)
}

func TestInventoryEndpoint(t *testing.T) {
	c, _ := newTestStub(t)
	inventory := api.NewInventoryClient(c)

	rec, err := inventory.GetAvailability(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, "p1", rec.ProductID)
	require.Positive(t, rec.Available)

	_, err = inventory.GetAvailability(context.Background(), "nope")
	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
}
