package cataloghttp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/products/1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"name":"Sneakers","price":139.9,"image":"/images/sneakers.jpg"}`))
	})
	mux.HandleFunc("/stock/1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"amount":3}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestProduct(t *testing.T) {
	srv := testServer(t)
	c := NewClient(srv.URL, time.Second)

	p, err := c.Product(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), p.ID)
	require.Equal(t, "Sneakers", p.Name)
	require.InDelta(t, 139.9, p.Price, 1e-9)
	require.Equal(t, "/images/sneakers.jpg", p.Image)
}

func TestProduct_NotFound(t *testing.T) {
	srv := testServer(t)
	c := NewClient(srv.URL, time.Second)

	_, err := c.Product(context.Background(), 99)
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
}

func TestStock(t *testing.T) {
	srv := testServer(t)
	c := NewClient(srv.URL, time.Second)

	amount, err := c.Stock(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(3), amount)
}

func TestStock_ServerDown(t *testing.T) {
	srv := testServer(t)
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second)
	_, err := c.Stock(context.Background(), 1)
	require.Error(t, err)
}

func TestProduct_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, time.Second)
	_, err := c.Product(context.Background(), 1)
	require.Error(t, err)
}

func TestRequestHonoursContext(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	t.Cleanup(func() { close(block); srv.Close() })

	c := NewClient(srv.URL, time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Stock(ctx, 1)
	require.Error(t, err)
}
