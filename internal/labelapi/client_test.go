package labelapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelkit/label-console/internal/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL)
	require.NoError(t, err)
	return client, srv
}

func TestNewClient_InvalidURL(t *testing.T) {
	tests := []string{"", "localhost:5001", "ftp://example.com", "http://"}

	for _, raw := range tests {
		_, err := NewClient(raw)
		assert.Error(t, err, "expected error for %q", raw)
	}
}

func TestClient_SearchProducts(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, ProductsPath, r.URL.Path)
		assert.Equal(t, "sugar 1kg", r.URL.Query().Get("q"))
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"Sugar","quantity":1,"measure":"KG","barcode":"111","mrp":48,"retail_price":42.5}]`))
	})

	products, err := client.SearchProducts(context.Background(), "sugar 1kg")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, model.Product{Name: "Sugar", Quantity: 1, Measure: "KG", Barcode: "111", MRP: 48, RetailPrice: 42.5}, products[0])
}

func TestClient_SearchProducts_Empty(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	products, err := client.SearchProducts(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestClient_SearchProducts_StatusError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database locked", http.StatusInternalServerError)
	})

	_, err := client.SearchProducts(context.Background(), "sugar")
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.Code)
	assert.Equal(t, "database locked", se.Message)
}

func TestClient_PreviewURL(t *testing.T) {
	client, err := NewClient("http://labels.local:5001/shop/")
	require.NoError(t, err)

	got := client.PreviewURL("8901", "My Store", "12/2026")
	assert.Equal(t, "http://labels.local:5001/shop/preview?barcode=8901&exp=12%2F2026&store=My+Store", got)
}

func TestClient_FetchPreview(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PreviewPath, r.URL.Path)
		assert.Equal(t, "111", r.URL.Query().Get("barcode"))
		assert.Equal(t, "Store", r.URL.Query().Get("store"))
		assert.Equal(t, "01/27", r.URL.Query().Get("exp"))
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	})

	data, err := client.FetchPreview(context.Background(), "111", "Store", "01/27")
	require.NoError(t, err)
	assert.Equal(t, png, data)
}

func TestClient_FetchPreview_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Product not found", http.StatusNotFound)
	})

	_, err := client.FetchPreview(context.Background(), "missing", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Product not found")
}

func TestClient_Print_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, PrintPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req model.PrintRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, model.PrintRequest{Barcode: "111", Count: 5, StoreName: "Store", Exp: "01/27"}, req)

		_, _ = w.Write([]byte(`{"ok":true,"printed":5,"errors":[]}`))
	})

	result, err := client.Print(context.Background(), model.PrintRequest{Barcode: "111", Count: 5, StoreName: "Store", Exp: "01/27"})
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, 5, result.Printed)
}

func TestClient_Print_ApplicationFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"ok":false,"printed":2,"errors":["jam"]}`))
	})

	result, err := client.Print(context.Background(), model.PrintRequest{Barcode: "111", Count: 5})
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, 2, result.Printed)
	assert.Equal(t, "jam", result.JoinedErrors())
}

func TestClient_Print_SingleErrorField(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"ok":false,"error":"product not found"}`))
	})

	result, err := client.Print(context.Background(), model.PrintRequest{Barcode: "999", Count: 1})
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, "product not found", result.JoinedErrors())
}

func TestClient_Print_OKFlagIgnoredOnErrorStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"ok":true,"printed":1}`))
	})

	result, err := client.Print(context.Background(), model.PrintRequest{Barcode: "111", Count: 1})
	require.NoError(t, err)
	assert.False(t, result.OK)
}

func TestClient_Print_UnstructuredError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
	})

	_, err := client.Print(context.Background(), model.PrintRequest{Barcode: "111", Count: 1})
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadGateway, se.Code)
}

func TestClient_Print_Validation(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	_, err := client.Print(context.Background(), model.PrintRequest{Barcode: "", Count: 1})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = client.Print(context.Background(), model.PrintRequest{Barcode: "111", Count: 0})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	assert.Equal(t, 0, calls)
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	client, err := NewClient(srv.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.SearchProducts(ctx, "sugar")
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
	assert.Equal(t, "request timed out", Describe(err))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "", Describe(nil))
	assert.Equal(t, "label server returned status 404: Product not found",
		Describe(&StatusError{Code: 404, Message: "Product not found"}))
	assert.Equal(t, "label server returned status 500", Describe(&StatusError{Code: 500}))
	assert.Equal(t, "connection refused", Describe(errors.New("connection refused ")))
}
