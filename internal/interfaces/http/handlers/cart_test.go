package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/cafe-gateway/internal/config"
	"github.com/your-org/cafe-gateway/internal/domain/cart"
	"github.com/your-org/cafe-gateway/internal/domain/checkout"
	"github.com/your-org/cafe-gateway/internal/domain/menu"
	"github.com/your-org/cafe-gateway/internal/infrastructure/upstream"
	"github.com/your-org/cafe-gateway/internal/interfaces/http/handlers"
	"github.com/your-org/cafe-gateway/internal/interfaces/http/middleware"
)

const sid = "handler-session"

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

// fixedSession pins the cart session id so tests skip cookie handling
func fixedSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.SessionIDKey, sid)
		c.Next()
	}
}

func newRouter(t *testing.T, store cart.Store, upstreamURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Upstream.BaseURL = upstreamURL
	cfg.Upstream.Timeout = 5 * time.Second

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	lookup := menu.NewLookup()
	lookup.Replace([]menu.Menu{
		{ID: 1, Name: "Americano", Price: 50},
		{ID: 2, Name: "Latte", Price: 80},
	})

	cartService := cart.NewService(store, lookup, logger)
	cartHandler := handlers.NewCartHandler(cartService, cfg)

	api := upstream.NewClient(cfg)
	checkoutService := checkout.NewService(api, cartService, lookup, logger)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)

	router := gin.New()
	group := router.Group("/api/v1")
	group.Use(fixedSession())
	group.GET("/cart", cartHandler.GetCart)
	group.POST("/cart/items", cartHandler.AddToCart)
	group.PUT("/cart/items/:id", cartHandler.UpdateCartItem)
	group.DELETE("/cart/items/:id", cartHandler.RemoveFromCart)
	group.PUT("/cart/items/:id/option", cartHandler.StageOption)
	group.POST("/cart/items/:id/option", cartHandler.CommitOption)
	group.POST("/orders", checkoutHandler.Submit)

	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddToCartFlow(t *testing.T) {
	store := newMemStore()
	router := newRouter(t, store, "http://unused")

	w := doJSON(router, http.MethodPost, "/api/v1/cart/items", `{"menu_id":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Adding the same menu again is a soft failure with a notice
	w = doJSON(router, http.MethodPost, "/api/v1/cart/items", `{"menu_id":1}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	require.Len(t, store.carts[sid], 1)
	assert.Equal(t, 1, store.carts[sid][0].Quantity)

	// Unknown menus are rejected
	w = doJSON(router, http.MethodPost, "/api/v1/cart/items", `{"menu_id":99}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateAndRemoveCartItem(t *testing.T) {
	store := newMemStore()
	router := newRouter(t, store, "http://unused")

	doJSON(router, http.MethodPost, "/api/v1/cart/items", `{"menu_id":1}`)

	w := doJSON(router, http.MethodPut, "/api/v1/cart/items/1", `{"quantity":4}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, store.carts[sid][0].Quantity)

	// Omitted quantity removes the item, same as zero
	w = doJSON(router, http.MethodPut, "/api/v1/cart/items/1", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.carts[sid])

	w = doJSON(router, http.MethodDelete, "/api/v1/cart/items/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionStageAndCommit(t *testing.T) {
	store := newMemStore()
	router := newRouter(t, store, "http://unused")

	doJSON(router, http.MethodPost, "/api/v1/cart/items", `{"menu_id":2}`)

	w := doJSON(router, http.MethodPut, "/api/v1/cart/items/2/option", `{"menu_option":"less ice"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.carts[sid][0].Option, "staged option must not touch the cart line")

	w = doJSON(router, http.MethodPost, "/api/v1/cart/items/2/option", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "less ice", store.carts[sid][0].Option)
}

func TestGetCartTotals(t *testing.T) {
	store := newMemStore()
	store.carts[sid] = []cart.Item{
		{MenuID: 1, Quantity: 2},
		{MenuID: 2, Quantity: 1},
	}
	router := newRouter(t, store, "http://unused")

	w := doJSON(router, http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data cart.View `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 180.0, resp.Data.TotalPrice)
	assert.Equal(t, 3, resp.Data.TotalQuantity)
}

func TestSubmitOrderMapsErrors(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		router := newRouter(t, newMemStore(), "http://unused")

		w := doJSON(router, http.MethodPost, "/api/v1/orders", `{"order_name":"somchai","order_tel":"0812345678"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing contact fields", func(t *testing.T) {
		router := newRouter(t, newMemStore(), "http://unused")

		w := doJSON(router, http.MethodPost, "/api/v1/orders", `{"order_name":"somchai"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("upstream failure is retryable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		store := newMemStore()
		store.carts[sid] = []cart.Item{{MenuID: 1, Quantity: 1}}
		router := newRouter(t, store, server.URL)

		w := doJSON(router, http.MethodPost, "/api/v1/orders", `{"order_name":"somchai","order_tel":"0812345678"}`)
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Len(t, store.carts[sid], 1, "failed submission leaves the cart intact")
	})

	t.Run("success clears the cart", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			body["order_id"] = 9
			w.WriteHeader(http.StatusCreated)
			assert.NoError(t, json.NewEncoder(w).Encode(body))
		}))
		defer server.Close()

		store := newMemStore()
		store.carts[sid] = []cart.Item{{MenuID: 1, Quantity: 2}}
		router := newRouter(t, store, server.URL)

		w := doJSON(router, http.MethodPost, "/api/v1/orders", `{"order_name":"somchai","order_tel":"0812345678"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Empty(t, store.carts[sid])
	})
}
