package order_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/cafe-gateway/internal/config"
	"github.com/your-org/cafe-gateway/internal/domain/order"
	"github.com/your-org/cafe-gateway/internal/infrastructure/upstream"
)

func newService(t *testing.T, upstreamURL string) *order.Service {
	t.Helper()

	cfg := &config.Config{}
	cfg.Upstream.BaseURL = upstreamURL
	cfg.Upstream.Timeout = 5 * time.Second

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return order.NewService(upstream.NewClient(cfg), logger)
}

func TestListDecodesOrderItems(t *testing.T) {
	ctx := context.Background()

	upstreamOrders := []order.Order{
		{
			ID:         1,
			Name:       "somchai",
			Tel:        "0812345678",
			Items:      `[{"menu_id":1,"menu_name":"Americano","quantity":2,"menu_option":"no sugar"}]`,
			TotalPrice: 100,
			OrderedOn:  "2024-05-01T10:00:00Z",
		},
		{
			ID:    2,
			Name:  "malee",
			Items: `this is not json`,
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.NoError(t, json.NewEncoder(w).Encode(upstreamOrders))
	}))
	defer server.Close()

	views, err := newService(t, server.URL).List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)

	require.Len(t, views[0].Lines, 1)
	assert.Equal(t, order.Line{MenuID: 1, MenuName: "Americano", Quantity: 2, Option: "no sugar"}, views[0].Lines[0])
	assert.Equal(t, 100.0, views[0].TotalPrice)

	// A malformed order_item hides lines but keeps the order visible
	assert.Equal(t, "malee", views[1].Name)
	assert.Nil(t, views[1].Lines)
}

func TestFind(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewEncoder(w).Encode([]order.Order{
			{ID: 1, Name: "somchai", Items: "[]"},
			{ID: 2, Name: "malee", Items: "[]"},
		}))
	}))
	defer server.Close()

	svc := newService(t, server.URL)

	found, err := svc.Find(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "malee", found.Name)

	_, err = svc.Find(ctx, 42)
	require.ErrorIs(t, err, order.ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	require.NoError(t, newService(t, server.URL).Delete(ctx, 5))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/orders/5", gotPath)
}

func TestDeleteUpstreamFailure(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	err := newService(t, server.URL).Delete(ctx, 5)
	require.Error(t, err)
	assert.True(t, upstream.IsServer(err))
}
