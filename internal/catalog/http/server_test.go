package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketshoes/cart-service/internal/catalog/app"
	"github.com/rocketshoes/cart-service/internal/catalog/domain"
	"github.com/rocketshoes/cart-service/internal/catalog/infra/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	repo := memory.NewRepo([]memory.Item{
		{Product: domain.Product{ID: 1, Name: "Sneakers", Price: 139.9, Image: "/images/sneakers.jpg"}, Stock: 3},
		{Product: domain.Product{ID: 2, Name: "Boots", Price: 199.9, Image: "/images/boots.jpg"}, Stock: 0},
	})
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(NewServer(app.NewService(repo), log).Router())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestListProducts(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/products")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []domain.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	require.Len(t, products, 2)
	require.Equal(t, "Sneakers", products[0].Name)
}

func TestGetProduct(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/products/1")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var p domain.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	require.Equal(t, int64(1), p.ID)
	require.InDelta(t, 139.9, p.Price, 1e-9)
}

func TestGetProduct_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/products/99")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetProduct_BadID(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/products/abc")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetStock(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/stock/2")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var s domain.Stock
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&s))
	require.Equal(t, int64(2), s.ID)
	require.Zero(t, s.Amount)
}

func TestGetStock_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/stock/99")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
