package checkout_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/cafe-gateway/internal/config"
	"github.com/your-org/cafe-gateway/internal/domain/cart"
	"github.com/your-org/cafe-gateway/internal/domain/checkout"
	"github.com/your-org/cafe-gateway/internal/domain/menu"
	"github.com/your-org/cafe-gateway/internal/domain/order"
	"github.com/your-org/cafe-gateway/internal/infrastructure/upstream"
)

const sid = "checkout-session"

type memStore struct {
	carts map[string][]cart.Item
}

func newMemStore() *memStore {
	return &memStore{carts: make(map[string][]cart.Item)}
}

func (m *memStore) Load(_ context.Context, sessionID string) ([]cart.Item, error) {
	return append([]cart.Item{}, m.carts[sessionID]...), nil
}

func (m *memStore) Save(_ context.Context, sessionID string, items []cart.Item) error {
	m.carts[sessionID] = append([]cart.Item{}, items...)
	return nil
}

func (m *memStore) Clear(_ context.Context, sessionID string) error {
	delete(m.carts, sessionID)
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testLookup() *menu.Lookup {
	l := menu.NewLookup()
	l.Replace([]menu.Menu{
		{ID: 1, Name: "Americano", Price: 50},
		{ID: 2, Name: "Latte", Price: 80},
	})
	return l
}

func newService(t *testing.T, upstreamURL string, store cart.Store) (*checkout.Service, *cart.Service) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Upstream.BaseURL = upstreamURL
	cfg.Upstream.Timeout = 5 * time.Second

	api := upstream.NewClient(cfg)
	lookup := testLookup()
	cartService := cart.NewService(store, lookup, testLogger())
	return checkout.NewService(api, cartService, lookup, testLogger()), cartService
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	var received order.Order
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		created := received
		created.ID = 7
		created.OrderedOn = "2024-05-01T10:00:00Z"
		w.WriteHeader(http.StatusCreated)
		assert.NoError(t, json.NewEncoder(w).Encode(created))
	}))
	defer server.Close()

	store := newMemStore()
	store.carts[sid] = []cart.Item{
		{MenuID: 1, Quantity: 2},
		{MenuID: 2, Quantity: 1, Option: "less ice"},
	}

	svc, _ := newService(t, server.URL, store)

	req := &checkout.SubmitRequest{Name: gofakeit.Name(), Tel: gofakeit.Phone()}
	created, err := svc.Submit(ctx, sid, req)
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)

	// The upstream received a denormalized snapshot with the total the
	// user saw: 2 x 50 + 1 x 80
	assert.Equal(t, req.Name, received.Name)
	assert.Equal(t, req.Tel, received.Tel)
	assert.Equal(t, 180.0, received.TotalPrice)

	lines, err := received.DecodeLines()
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, order.Line{MenuID: 1, MenuName: "Americano", Quantity: 2}, lines[0])
	assert.Equal(t, order.Line{MenuID: 2, MenuName: "Latte", Quantity: 1, Option: "less ice"}, lines[1])

	// Success clears the cart and its persisted record
	_, ok := store.carts[sid]
	assert.False(t, ok)
}

func TestSubmitUpstreamFailureLeavesCartIntact(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	store := newMemStore()
	before := []cart.Item{{MenuID: 1, Quantity: 2}}
	store.carts[sid] = append([]cart.Item{}, before...)

	svc, _ := newService(t, server.URL, store)

	_, err := svc.Submit(ctx, sid, &checkout.SubmitRequest{Name: "somchai", Tel: "0812345678"})
	require.Error(t, err)
	assert.True(t, upstream.IsServer(err))
	assert.Equal(t, before, store.carts[sid])
}

func TestSubmitNetworkFailureLeavesCartIntact(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	store := newMemStore()
	before := []cart.Item{{MenuID: 2, Quantity: 1, Option: "hot"}}
	store.carts[sid] = append([]cart.Item{}, before...)

	svc, _ := newService(t, server.URL, store)

	_, err := svc.Submit(ctx, sid, &checkout.SubmitRequest{Name: "somchai", Tel: "0812345678"})
	require.Error(t, err)
	assert.True(t, upstream.IsServer(err))
	assert.Equal(t, before, store.carts[sid])
}

func TestSubmitEmptyCart(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no upstream call expected for an empty cart")
	}))
	defer server.Close()

	svc, _ := newService(t, server.URL, newMemStore())

	_, err := svc.Submit(ctx, sid, &checkout.SubmitRequest{Name: "somchai", Tel: "0812345678"})
	require.ErrorIs(t, err, checkout.ErrEmptyCart)
}

func TestSubmitUnresolvableMenuPricesAtZero(t *testing.T) {
	ctx := context.Background()

	var received order.Order
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.NoError(t, json.NewEncoder(w).Encode(received))
	}))
	defer server.Close()

	store := newMemStore()
	store.carts[sid] = []cart.Item{{MenuID: 99, Quantity: 3}}

	svc, _ := newService(t, server.URL, store)

	_, err := svc.Submit(ctx, sid, &checkout.SubmitRequest{Name: "somchai", Tel: "0812345678"})
	require.NoError(t, err)

	assert.Zero(t, received.TotalPrice)
	lines, err := received.DecodeLines()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Empty(t, lines[0].MenuName)
}
