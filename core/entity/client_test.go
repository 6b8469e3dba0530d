package entity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("Valid config", func(t *testing.T) {
		c, err := NewClient(Config{URL: "http://localhost:9040"})
		assert.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("Missing URL", func(t *testing.T) {
		c, err := NewClient(Config{})
		assert.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestRequestMany(t *testing.T) {
	t.Run("Posts wrapped batch", func(t *testing.T) {
		var got []requestInput
		var apiKey string

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/entity/request", r.URL.Path)
			apiKey = r.Header.Get("X-Api-Key")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c, err := NewClient(Config{URL: srv.URL, ApiKey: "secret"})
		require.NoError(t, err)

		items := []Item{
			{Token: "t1", Location: "loc"},
			{Token: "", Location: "loc"}, // invalid, skipped
			{Token: "t2", Location: "loc"},
		}

		err = c.RequestMany(context.Background(), TypeEntry, OperationCreate, items)
		require.NoError(t, err)

		assert.Equal(t, "secret", apiKey)
		require.Len(t, got, 2)
		assert.Equal(t, OperationCreate, got[0].Operation)
		assert.Equal(t, TypeEntry, got[0].Type)
		assert.Equal(t, "t1", got[0].Params.Token)
		assert.Equal(t, "t2", got[1].Params.Token)
	})

	t.Run("Empty batch is a no-op", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		c, err := NewClient(Config{URL: srv.URL})
		require.NoError(t, err)

		err = c.RequestMany(context.Background(), TypeEntry, OperationDelete, nil)
		assert.NoError(t, err)
		assert.False(t, called)
	})

	t.Run("Backend rejection surfaces as error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusBadGateway)
		}))
		defer srv.Close()

		c, err := NewClient(Config{URL: srv.URL})
		require.NoError(t, err)

		err = c.RequestMany(context.Background(), TypeEntry, OperationDelete, []Item{{Token: "t", Location: "l"}})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status 502")
	})
}
