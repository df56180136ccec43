package lookupapi_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"orderflow/internal/adapters/out/lookupapi"
	"orderflow/internal/core/domain/model/lookup"
	"orderflow/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *lookupapi.Client {
	return lookupapi.NewClient(lookupapi.Config{
		BaseURL:    baseURL,
		TimeoutSec: 2,
		RetryMax:   0,
	})
}

func TestClient_Lookup(t *testing.T) {
	ctx := t.Context()

	t.Run("should decode numeric payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/orders/7", r.URL.Path)
			fmt.Fprint(w, `{"status": "success", "value": 75}`)
		}))
		defer server.Close()

		resp, err := newTestClient(server.URL).Lookup(ctx, 7)

		require.NoError(t, err)
		assert.True(t, resp.Succeeded())

		value, ok := resp.Payload.Number()
		require.True(t, ok)
		assert.True(t, value.Equal(decimal.NewFromInt(75)))
	})

	t.Run("should treat numeric string payload as a number", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status": "success", "value": "42.5"}`)
		}))
		defer server.Close()

		resp, err := newTestClient(server.URL).Lookup(ctx, 7)

		require.NoError(t, err)

		value, ok := resp.Payload.Number()
		require.True(t, ok)
		assert.True(t, value.Equal(decimal.NewFromFloat(42.5)))
	})

	t.Run("should keep non-numeric string payload as text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status": "success", "value": "not-a-number"}`)
		}))
		defer server.Close()

		resp, err := newTestClient(server.URL).Lookup(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, lookup.PayloadText, resp.Payload.Kind())

		text, ok := resp.Payload.Text()
		require.True(t, ok)
		assert.Equal(t, "not-a-number", text)
	})

	t.Run("should treat structured payload as opaque", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status": "success", "value": {"nested": true}}`)
		}))
		defer server.Close()

		resp, err := newTestClient(server.URL).Lookup(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, lookup.PayloadOther, resp.Payload.Kind())
	})

	t.Run("should treat missing payload as opaque", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status": "success"}`)
		}))
		defer server.Close()

		resp, err := newTestClient(server.URL).Lookup(ctx, 7)

		require.NoError(t, err)
		assert.True(t, resp.Succeeded())
		assert.Equal(t, lookup.PayloadOther, resp.Payload.Kind())
	})

	t.Run("should pass through error status responses", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status": "error"}`)
		}))
		defer server.Close()

		resp, err := newTestClient(server.URL).Lookup(ctx, 7)

		require.NoError(t, err)
		assert.False(t, resp.Succeeded())
	})

	t.Run("should map non-2xx answers to error status, not a fault", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		resp, err := newTestClient(server.URL).Lookup(ctx, 7)

		require.NoError(t, err)
		assert.False(t, resp.Succeeded())
		assert.Equal(t, lookup.PayloadOther, resp.Payload.Kind())
	})

	t.Run("should wrap transport failures as a lookup fault", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // connection refused from now on

		_, err := newTestClient(server.URL).Lookup(ctx, 7)

		require.Error(t, err)
		require.ErrorIs(t, err, ports.ErrLookupUnavailable)
	})

	t.Run("should wrap undecodable bodies as a lookup fault", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `not json at all`)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Lookup(ctx, 7)

		require.Error(t, err)
		require.ErrorIs(t, err, ports.ErrLookupUnavailable)
	})
}
